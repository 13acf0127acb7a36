package grid

import "fmt"

// Mask is a boolean image over a Shape, stored flat in linear-index order.
type Mask struct {
	Shape Shape
	Bits  []bool
}

// NewMask allocates an all-false mask over s.
// Returns ErrBadShape if s is malformed.
// Complexity: O(size) time and memory.
func NewMask(s Shape) (*Mask, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Mask{Shape: s, Bits: make([]bool, s.Size())}, nil
}

// At reports whether the pixel at p is set; out-of-bounds points read as false.
// Complexity: O(1).
func (m *Mask) At(p Point) bool {
	if !m.Shape.InBounds(p) {
		return false
	}

	return m.Bits[m.Shape.index(p)]
}

// Set marks the pixel at p.
// Returns ErrOutOfBounds if p lies outside the mask.
// Complexity: O(1).
func (m *Mask) Set(p Point) error {
	idx, err := m.Shape.Index(p)
	if err != nil {
		return err
	}
	m.Bits[idx] = true

	return nil
}

// Count returns the number of set pixels.
// Complexity: O(size).
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}

	return n
}

// Crop returns a new Mask holding the box [lo, hi] (both corners inclusive).
// For 2-D masks the Z coordinates of lo and hi must be 0.
// Returns ErrOutOfBounds if the box is empty or exceeds the mask.
// Complexity: O(box volume).
func (m *Mask) Crop(lo, hi Point) (*Mask, error) {
	if !m.Shape.InBounds(lo) || !m.Shape.InBounds(hi) ||
		lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
		return nil, fmt.Errorf("Mask.Crop(%v,%v) on %s: %w", lo, hi, m.Shape, ErrOutOfBounds)
	}
	out := Shape{
		Dims:   m.Shape.Dims,
		Width:  hi.X - lo.X + 1,
		Height: hi.Y - lo.Y + 1,
		Depth:  hi.Z - lo.Z + 1,
	}
	bits := make([]bool, out.Size())
	var x, y, z, src, dst int
	for z = 0; z < out.Depth; z++ {
		for y = 0; y < out.Height; y++ {
			// rows are contiguous in both masks
			src = m.Shape.index(Point{X: lo.X, Y: lo.Y + y, Z: lo.Z + z})
			dst = (z*out.Height + y) * out.Width
			for x = 0; x < out.Width; x++ {
				bits[dst+x] = m.Bits[src+x]
			}
		}
	}

	return &Mask{Shape: out, Bits: bits}, nil
}
