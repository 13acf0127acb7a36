// File: validate.go
// Role: single source of truth for node-table and pixel-index invariants.
// All checks are pure and return plain sentinels wrapped with position context.

package maxtree

import (
	"fmt"

	"github.com/katalvlaran/maxtree/grid"
)

// Validate re-checks every structural invariant of the tree: topological
// parent order, child counts, bounding boxes, seed positions and the range
// of every pixel index entry. A non-nil result means the tree was corrupted; edits made
// through this package never produce one.
// Complexity: O(N + P).
func (t *Tree) Validate() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := checkForest(&t.nodes); err != nil {
		return treeErrorf("Validate", err)
	}
	if err := checkPixels(&t.nodes, t.index, t.shape); err != nil {
		return treeErrorf("Validate", err)
	}
	if err := checkBoxes(&t.nodes, t.shape); err != nil {
		return treeErrorf("Validate", err)
	}

	return nil
}

type namedColumn struct {
	name string
	col  []int
}

// checkColumns ensures every column has one row per node and that the
// bounding-box columns exist exactly for the image axes.
func checkColumns(nt *NodeTable, shape grid.Shape) error {
	n := nt.Len()
	if n == 0 {
		return ErrEmptyTree
	}
	cols := []namedColumn{
		{"NChild", nt.NChild},
		{"Level", nt.Level},
		{"Area", nt.Area},
		{"Seed", nt.Seed},
	}
	for a := 0; a < shape.Dims; a++ {
		cols = append(cols,
			namedColumn{fmt.Sprintf("Min[%d]", a), nt.Min[a]},
			namedColumn{fmt.Sprintf("Max[%d]", a), nt.Max[a]},
		)
	}
	for _, c := range cols {
		if len(c.col) != n {
			return fmt.Errorf("column %s has %d rows, want %d: %w", c.name, len(c.col), n, ErrLengthMismatch)
		}
	}
	if shape.Dims == 2 && (nt.Min[2] != nil || nt.Max[2] != nil) {
		return fmt.Errorf("Z bounding-box columns on a 2-D tree: %w", ErrLengthMismatch)
	}

	return nil
}

// checkOrder verifies Parent[0] == 0 and 0 <= Parent[i] < i for i > 0.
// It must pass before the parent column is used as an index.
func checkOrder(parent []int) error {
	if len(parent) == 0 {
		return ErrEmptyTree
	}
	if parent[0] != 0 {
		return fmt.Errorf("root parent is %d: %w", parent[0], ErrBrokenForest)
	}
	for i := 1; i < len(parent); i++ {
		if p := parent[i]; p < 0 || p >= i {
			return fmt.Errorf("node %d has parent %d: %w", i, p, ErrBrokenForest)
		}
	}

	return nil
}

// checkForest verifies the parent order and that NChild agrees with it.
func checkForest(nt *NodeTable) error {
	if err := checkOrder(nt.Parent); err != nil {
		return err
	}
	counts := make([]int, nt.Len())
	countChildren(nt.Parent, counts)
	for i, c := range counts {
		if c != nt.NChild[i] {
			return fmt.Errorf("node %d has %d children, column says %d: %w", i, c, nt.NChild[i], ErrChildCount)
		}
	}

	return nil
}

// checkPixels verifies seeds lie inside the image and every pixel index
// entry names an existing node.
func checkPixels(nt *NodeTable, index []int, shape grid.Shape) error {
	n, size := nt.Len(), shape.Size()
	for i, s := range nt.Seed {
		if s < 0 || s >= size {
			return fmt.Errorf("seed %d of node %d outside %s: %w", s, i, shape, ErrPixelOutOfRange)
		}
	}
	for p, id := range index {
		if id < 0 || id >= n {
			return fmt.Errorf("pixel %d maps to node %d of %d: %w", p, id, n, ErrPixelOutOfRange)
		}
	}

	return nil
}

// checkBoxes verifies 0 <= Min <= Max < extent on every image axis and that
// each seed lies inside its node's box. Seeds must already be in the image.
func checkBoxes(nt *NodeTable, shape grid.Shape) error {
	var lo, hi int
	var seed grid.Point
	for a := 0; a < shape.Dims; a++ {
		ext := shape.Extent(a)
		for i := range nt.Min[a] {
			lo, hi = nt.Min[a][i], nt.Max[a][i]
			if lo < 0 || lo > hi || hi >= ext {
				return fmt.Errorf("node %d box [%d, %d] on axis %d outside [0, %d): %w",
					i, lo, hi, a, ext, ErrPixelOutOfRange)
			}
		}
	}
	for i, s := range nt.Seed {
		seed = shape.Coordinate(s)
		for a := 0; a < shape.Dims; a++ {
			if c := seed.Axis(a); c < nt.Min[a][i] || c > nt.Max[a][i] {
				return fmt.Errorf("seed %d of node %d outside its box on axis %d: %w", s, i, a, ErrPixelOutOfRange)
			}
		}
	}

	return nil
}

// countChildren fills nchild from parent; nchild must be zeroed and as long as parent.
func countChildren(parent, nchild []int) {
	for i := 1; i < len(parent); i++ {
		nchild[parent[i]]++
	}
}
