// Package maxtree defines the node table, the Tree type and sentinel errors.
package maxtree

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/maxtree/grid"
)

// Sentinel errors for maxtree operations.
var (
	// ErrEmptyTree indicates a node table without a root.
	ErrEmptyTree = errors.New("maxtree: node table is empty")

	// ErrLengthMismatch indicates a column, mask or remap table whose length
	// does not match the node count or the image size.
	ErrLengthMismatch = errors.New("maxtree: length mismatch")

	// ErrNodeOutOfRange indicates a node id outside [0, Len()).
	ErrNodeOutOfRange = errors.New("maxtree: node id out of range")

	// ErrPixelOutOfRange indicates a pixel position outside the image.
	ErrPixelOutOfRange = errors.New("maxtree: pixel out of range")

	// ErrBranchOutOfRange indicates a sub-branch index outside [0, NumSubBranches()).
	ErrBranchOutOfRange = errors.New("maxtree: sub-branch index out of range")

	// ErrRootRemoval indicates a removal mask that marks the root.
	ErrRootRemoval = errors.New("maxtree: root cannot be removed")

	// ErrInvalidLUT indicates a remap table that does not map every node to
	// itself (survivors) or to its nearest surviving ancestor (removed nodes).
	ErrInvalidLUT = errors.New("maxtree: invalid remap table")

	// ErrBrokenForest indicates parent pointers that are not in topological order.
	ErrBrokenForest = errors.New("maxtree: parent column violates topological order")

	// ErrChildCount indicates a child-count column inconsistent with the parent column.
	ErrChildCount = errors.New("maxtree: child count inconsistent with parents")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maxtree: invalid option supplied")
)

// treeErrorf wraps an underlying error with Tree method context.
func treeErrorf(method string, err error) error {
	return fmt.Errorf("Tree.%s: %w", method, err)
}

// NodeTable is the column-wise node storage. Row i of every column describes
// node i. Min[a] and Max[a] hold the inclusive bounding box along axis a
// (0 = X, 1 = Y, 2 = Z); the Z columns are nil for 2-D trees.
//
// Area counts the pixels of the whole component, descendants included.
// Seed is the linear index of one pixel inside the component.
type NodeTable struct {
	Parent []int
	NChild []int
	Level  []int
	Area   []int
	Seed   []int
	Min    [3][]int
	Max    [3][]int
}

// Len returns the number of rows.
func (nt *NodeTable) Len() int {
	return len(nt.Parent)
}

// clone returns a deep copy of the table.
func (nt *NodeTable) clone() NodeTable {
	out := NodeTable{
		Parent: cloneInts(nt.Parent),
		NChild: cloneInts(nt.NChild),
		Level:  cloneInts(nt.Level),
		Area:   cloneInts(nt.Area),
		Seed:   cloneInts(nt.Seed),
	}
	for a := 0; a < 3; a++ {
		out.Min[a] = cloneInts(nt.Min[a])
		out.Max[a] = cloneInts(nt.Max[a])
	}

	return out
}

// cloneInts copies s, preserving nil.
func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// Node is a single row of the table, as returned by Tree.Node.
type Node struct {
	ID     int
	Parent int
	NChild int
	Level  int
	Area   int
	Seed   grid.Point
	Min    grid.Point
	Max    grid.Point
}

// Extent returns the bounding-box length along axis a.
func (n Node) Extent(a int) int {
	return n.Max.Axis(a) - n.Min.Axis(a) + 1
}

// Tree is a max-tree over an image: the node table, the pixel index and
// the lazily derived topology caches.
//
// mu guards every field; queries that rebuild the caches take it too.
type Tree struct {
	mu sync.Mutex

	shape   grid.Shape
	conn    grid.Connectivity
	offsets []grid.Point
	opts    Options

	nodes NodeTable
	index []int // pixel → deepest node, len == shape.Size()

	// children cache: children of i are children[childCum[i]-NChild[i] : childCum[i]]
	childrenOK bool
	childCum   []int
	children   []int

	// sub-branch cache: branch b is branches[branchCum[b] : branchCum[b+1]]
	branchesOK bool
	branchCum  []int
	branches   []int
}
