// Package grid defines core types, connectivity stencils and sentinel errors
// for the grid subpackage of github.com/katalvlaran/maxtree.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrBadShape indicates a non-positive extent or an unsupported number of dimensions.
	ErrBadShape = errors.New("grid: invalid shape")
	// ErrOutOfBounds indicates a point or linear index outside the image.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrConnectivity indicates a connectivity that does not match the shape's dimensionality.
	ErrConnectivity = errors.New("grid: connectivity does not match dimensionality")
)

// Connectivity selects the neighbor stencil used by flood fills.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in 2-D: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
	// Conn6 uses the 6 face neighbors of a voxel.
	Conn6
	// Conn18 adds the 12 edge neighbors to Conn6.
	Conn18
	// Conn26 adds the 8 corner neighbors to Conn18.
	Conn26
)

// String returns the stencil name, e.g. "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	case Conn6:
		return "conn6"
	case Conn18:
		return "conn18"
	case Conn26:
		return "conn26"
	default:
		return "conn?"
	}
}

// Dims reports the dimensionality the stencil is defined for (2 or 3),
// or 0 for an unknown value.
func (c Connectivity) Dims() int {
	switch c {
	case Conn4, Conn8:
		return 2
	case Conn6, Conn18, Conn26:
		return 3
	default:
		return 0
	}
}

// DefaultConnectivity returns Conn4 for 2-D and Conn6 for 3-D.
func DefaultConnectivity(dims int) Connectivity {
	if dims == 3 {
		return Conn6
	}

	return Conn4
}

// Point is a pixel (or voxel) position. Z is always 0 for 2-D shapes.
type Point struct {
	X, Y, Z int
}

// Axis returns the coordinate along axis a (0 = X, 1 = Y, 2 = Z).
func (p Point) Axis(a int) int {
	switch a {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Shape is the extent of an image. Dims is 2 or 3; Depth is 1 for 2-D images.
// Linear indices are row-major with X varying fastest:
// idx = (Z*Height + Y)*Width + X.
type Shape struct {
	Dims                 int
	Width, Height, Depth int
}
