package maxtree

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxtree/grid"
)

// parallelMinPixels is the smallest image for which the pixel remap is split
// across workers.
const parallelMinPixels = 1 << 16

// Option configures a Tree via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunable parameters of a Tree.
type Options struct {
	// Logger receives Debug records for every structural edit and Warn
	// records for rejected edits.
	Logger logrus.FieldLogger

	// Workers, if > 1, splits per-pixel remaps of large images across a
	// goroutine pool of this size. 0 and 1 both mean sequential.
	Workers int

	// Conn is the flood-fill stencil used by Reconstruct. When unset it
	// defaults to grid.DefaultConnectivity of the image.
	Conn grid.Connectivity

	connSet bool
	err     error
}

// DefaultOptions returns Options with:
//   - the standard logrus logger
//   - sequential remaps (Workers == 0)
//   - the default connectivity of the image's dimensionality.
func DefaultOptions() Options {
	return Options{
		Logger:  logrus.StandardLogger(),
		Workers: 0,
	}
}

// WithLogger routes edit logs to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the size of the pixel-remap goroutine pool.
//
//	n > 1:  parallel remap on images of at least 65536 pixels
//	n <= 1: sequential (n < 0 is invalid → ErrOptionViolation)
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithConnectivity selects the reconstruction stencil. New rejects a
// stencil that does not match the image dimensionality with grid.ErrConnectivity.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
		o.connSet = true
	}
}
