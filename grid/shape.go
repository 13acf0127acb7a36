package grid

import "fmt"

// NewShape2D returns the shape of a width×height image.
// Returns ErrBadShape if either extent is not positive.
// Complexity: O(1).
func NewShape2D(width, height int) (Shape, error) {
	if width <= 0 || height <= 0 {
		return Shape{}, fmt.Errorf("NewShape2D(%d,%d): %w", width, height, ErrBadShape)
	}

	return Shape{Dims: 2, Width: width, Height: height, Depth: 1}, nil
}

// NewShape3D returns the shape of a width×height×depth volume.
// Returns ErrBadShape if any extent is not positive.
// Complexity: O(1).
func NewShape3D(width, height, depth int) (Shape, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return Shape{}, fmt.Errorf("NewShape3D(%d,%d,%d): %w", width, height, depth, ErrBadShape)
	}

	return Shape{Dims: 3, Width: width, Height: height, Depth: depth}, nil
}

// Validate reports ErrBadShape for a zero-value or otherwise malformed Shape.
func (s Shape) Validate() error {
	if s.Dims != 2 && s.Dims != 3 {
		return fmt.Errorf("Shape.Validate: dims=%d: %w", s.Dims, ErrBadShape)
	}
	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 || (s.Dims == 2 && s.Depth != 1) {
		return fmt.Errorf("Shape.Validate: %v: %w", s, ErrBadShape)
	}

	return nil
}

// Size returns the number of pixels.
// Complexity: O(1).
func (s Shape) Size() int {
	return s.Width * s.Height * s.Depth
}

// Extent returns the length of axis a (0 = X, 1 = Y, 2 = Z).
func (s Shape) Extent(a int) int {
	switch a {
	case 0:
		return s.Width
	case 1:
		return s.Height
	default:
		return s.Depth
	}
}

// String renders the shape as "WxH" or "WxHxD".
func (s Shape) String() string {
	if s.Dims == 3 {
		return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Depth)
	}

	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// InBounds reports whether p lies within the image.
// Complexity: O(1).
func (s Shape) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Width &&
		p.Y >= 0 && p.Y < s.Height &&
		p.Z >= 0 && p.Z < s.Depth
}

// Index maps p to its row-major linear index.
// Returns ErrOutOfBounds if p lies outside the image.
// Complexity: O(1).
func (s Shape) Index(p Point) (int, error) {
	if !s.InBounds(p) {
		return 0, fmt.Errorf("Shape.Index(%d,%d,%d): %w", p.X, p.Y, p.Z, ErrOutOfBounds)
	}

	return s.index(p), nil
}

// index is Index without the bounds check.
func (s Shape) index(p Point) int {
	return (p.Z*s.Height+p.Y)*s.Width + p.X
}

// Coordinate converts a linear index back to a Point.
// The caller guarantees 0 ≤ idx < Size().
// Complexity: O(1).
func (s Shape) Coordinate(idx int) Point {
	plane := s.Width * s.Height
	z := idx / plane
	rem := idx - z*plane

	return Point{X: rem % s.Width, Y: rem / s.Width, Z: z}
}

// Offsets returns the neighbor stencil of c for this shape.
// Returns ErrConnectivity if c is not defined for s.Dims.
// Complexity: O(d).
func (s Shape) Offsets(c Connectivity) ([]Point, error) {
	if c.Dims() != s.Dims {
		return nil, fmt.Errorf("Shape.Offsets(%s) on %dD: %w", c, s.Dims, ErrConnectivity)
	}
	switch c {
	case Conn4:
		return []Point{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}}, nil
	case Conn8:
		return []Point{{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}}, nil
	case Conn6:
		return cubeOffsets(1), nil
	case Conn18:
		return cubeOffsets(2), nil
	default:
		return cubeOffsets(3), nil
	}
}

// cubeOffsets lists every offset in the 3×3×3 cube, except the center,
// with at most maxNonZero non-zero components, in z, y, x order.
func cubeOffsets(maxNonZero int) []Point {
	out := make([]Point, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nz := abs(dx) + abs(dy) + abs(dz)
				if nz == 0 || nz > maxNonZero {
					continue
				}
				out = append(out, Point{X: dx, Y: dy, Z: dz})
			}
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Neighbor returns the linear index of idx shifted by off, and false if the
// shifted position falls outside the image.
// Complexity: O(1).
func (s Shape) Neighbor(idx int, off Point) (int, bool) {
	p := s.Coordinate(idx)
	q := Point{X: p.X + off.X, Y: p.Y + off.Y, Z: p.Z + off.Z}
	if !s.InBounds(q) {
		return 0, false
	}

	return s.index(q), true
}
