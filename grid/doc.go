// Package grid describes the pixel lattice a component tree lives on:
// 2-D images and 3-D volumes addressed by a single row-major linear index.
//
// What:
//
//   - Shape holds the extent of an image (Width × Height, or Width × Height × Depth).
//   - Point and the linear index are interchangeable through Shape.Index / Shape.Coordinate.
//   - Connectivity selects the neighbor stencil (Conn4/Conn8 in 2-D, Conn6/Conn18/Conn26 in 3-D).
//   - Mask is a boolean image over a Shape, with bounding-box cropping.
//
// Why:
//
//   - Per-pixel node maps, seed pixels and flood fills all speak in linear indices;
//     keeping the geometry in one place keeps their arithmetic consistent.
//
// Complexity:
//
//   - Index, Coordinate, InBounds: O(1).
//   - Offsets: O(d), d = number of neighbors (4, 8, 6, 18 or 26).
//   - Mask.Crop: O(size of the cropped box).
//
// Errors:
//
//   - ErrBadShape: non-positive extent or unsupported dimensionality.
//   - ErrOutOfBounds: a point or linear index outside the image.
//   - ErrConnectivity: a connectivity that does not match the shape's dimensionality.
package grid
