package maxtree

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/maxtree/grid"
)

// Reconstruct returns the connected component represented by node as a
// boolean mask. The fill starts at the node's seed pixel and accepts a
// neighbor when the pixel index assigns it to node or to one of node's
// descendants; it is bounded only by the image.
//
// With bboxOnly set the mask is cropped to the node's bounding box.
//
// Returns ErrNodeOutOfRange for an invalid id, and ErrBrokenForest if the
// seed pixel does not belong to the node.
// Complexity: O(N + A·d) time, O(P) memory.
func (t *Tree) Reconstruct(node int, bboxOnly bool) (*grid.Mask, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkNode(node); err != nil {
		return nil, treeErrorf("Reconstruct", err)
	}

	members := roaring.NewBitmap()
	for _, id := range t.descendants(node) {
		members.Add(uint32(id))
	}
	seed := t.nodes.Seed[node]
	if !members.Contains(uint32(t.index[seed])) {
		return nil, treeErrorf("Reconstruct",
			fmt.Errorf("seed %d of node %d maps to node %d: %w", seed, node, t.index[seed], ErrBrokenForest))
	}

	cc, err := grid.NewMask(t.shape)
	if err != nil {
		return nil, treeErrorf("Reconstruct", err)
	}
	t.fill(cc, seed, members)
	if !bboxOnly {
		return cc, nil
	}

	n := t.row(node)
	out, err := cc.Crop(n.Min, n.Max)
	if err != nil {
		return nil, treeErrorf("Reconstruct", err)
	}

	return out, nil
}

// fill marks in cc every pixel reachable from seed through pixels whose
// node is in members. The queue replaces recursion so component size does
// not bound stack depth.
func (t *Tree) fill(cc *grid.Mask, seed int, members *roaring.Bitmap) {
	queue := []int{seed}
	cc.Bits[seed] = true
	var u, v int
	var ok bool
	for qi := 0; qi < len(queue); qi++ {
		u = queue[qi]
		for _, off := range t.offsets {
			v, ok = t.shape.Neighbor(u, off)
			if !ok || cc.Bits[v] || !members.Contains(uint32(t.index[v])) {
				continue
			}
			cc.Bits[v] = true
			queue = append(queue, v)
		}
	}
}
