package maxtree

import (
	"fmt"

	"github.com/katalvlaran/maxtree/grid"
)

// New builds a Tree from an already-constructed node table and pixel index.
// Both are deep-copied. A nil table.NChild is derived from the parent column;
// a non-nil one must agree with it.
//
// Stage 1 (Options): apply opts, surface ErrOptionViolation, resolve connectivity.
// Stage 2 (Validate): column lengths, topological order, child counts,
// seed positions, pixel index range and bounding boxes.
// Stage 3 (Finalize): copy inputs into a fresh Tree with invalid caches.
//
// Complexity: O(N + P) time and memory.
func New(table NodeTable, index []int, shape grid.Shape, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if !o.connSet {
		o.Conn = grid.DefaultConnectivity(shape.Dims)
	}
	offsets, err := shape.Offsets(o.Conn)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	nodes := table.clone()
	if nodes.NChild == nil && nodes.Parent != nil {
		if err = checkOrder(nodes.Parent); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		nodes.NChild = make([]int, len(nodes.Parent))
		countChildren(nodes.Parent, nodes.NChild)
	}
	if err = checkColumns(&nodes, shape); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if len(index) != shape.Size() {
		return nil, fmt.Errorf("New: pixel index has %d entries, image %s has %d: %w",
			len(index), shape, shape.Size(), ErrLengthMismatch)
	}
	if err = checkForest(&nodes); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err = checkPixels(&nodes, index, shape); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err = checkBoxes(&nodes, shape); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Tree{
		shape:   shape,
		conn:    o.Conn,
		offsets: offsets,
		opts:    o,
		nodes:   nodes,
		index:   cloneInts(index),
	}, nil
}

// Len returns the number of nodes.
// Complexity: O(1).
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.nodes.Len()
}

// Shape returns the image shape.
func (t *Tree) Shape() grid.Shape {
	return t.shape
}

// Dims returns 2 for images and 3 for volumes.
func (t *Tree) Dims() int {
	return t.shape.Dims
}

// Connectivity returns the reconstruction stencil.
func (t *Tree) Connectivity() grid.Connectivity {
	return t.conn
}

// Nodes returns a deep copy of the node table.
// Complexity: O(N).
func (t *Tree) Nodes() NodeTable {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.nodes.clone()
}

// PixelIndex returns a copy of the pixel → node map in linear-index order.
// Complexity: O(P).
func (t *Tree) PixelIndex() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return cloneInts(t.index)
}

// Node returns row id of the node table.
// Returns ErrNodeOutOfRange for an invalid id.
// Complexity: O(1).
func (t *Tree) Node(id int) (Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkNode(id); err != nil {
		return Node{}, treeErrorf("Node", err)
	}

	return t.row(id), nil
}

// row assembles a Node from the columns. Caller holds mu.
func (t *Tree) row(id int) Node {
	nt := &t.nodes
	n := Node{
		ID:     id,
		Parent: nt.Parent[id],
		NChild: nt.NChild[id],
		Level:  nt.Level[id],
		Area:   nt.Area[id],
		Seed:   t.shape.Coordinate(nt.Seed[id]),
	}
	n.Min.X, n.Max.X = nt.Min[0][id], nt.Max[0][id]
	n.Min.Y, n.Max.Y = nt.Min[1][id], nt.Max[1][id]
	if t.shape.Dims == 3 {
		n.Min.Z, n.Max.Z = nt.Min[2][id], nt.Max[2][id]
	}

	return n
}

// checkNode reports ErrNodeOutOfRange for ids outside [0, Len()).
func (t *Tree) checkNode(id int) error {
	if id < 0 || id >= t.nodes.Len() {
		return fmt.Errorf("node %d of %d: %w", id, t.nodes.Len(), ErrNodeOutOfRange)
	}

	return nil
}

// Clone returns an independent deep copy of the tree. The copy shares no
// buffers with t and starts with invalid caches.
// Complexity: O(N + P).
func (t *Tree) Clone() *Tree {
	t.mu.Lock()
	defer t.mu.Unlock()

	offsets := make([]grid.Point, len(t.offsets))
	copy(offsets, t.offsets)

	return &Tree{
		shape:   t.shape,
		conn:    t.conn,
		offsets: offsets,
		opts:    t.opts,
		nodes:   t.nodes.clone(),
		index:   cloneInts(t.index),
	}
}

// invalidate drops both topology caches. Caller holds mu.
func (t *Tree) invalidate() {
	t.childrenOK = false
	t.childCum, t.children = nil, nil
	t.branchesOK = false
	t.branchCum, t.branches = nil, nil
}
