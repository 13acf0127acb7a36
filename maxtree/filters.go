// File: filters.go
// Role: attribute filters built on Prune and ContractDR.
// Every filter protects the root: its mask bit is cleared before the edit.

package maxtree

// AreaOpen prunes every node whose area is strictly below minArea and
// returns the number of removed nodes. The threshold is exclusive: a node
// with Area == minArea survives, so AreaOpen(n+1) removes areas up to n.
// Area never grows towards the leaves, so the mask already removes whole
// branches.
// Complexity: O(N + P).
func (t *Tree) AreaOpen(minArea int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	area := t.nodes.Area
	mask := make([]bool, len(area))
	for i := 1; i < len(area); i++ {
		mask[i] = area[i] < minArea
	}
	return t.pruneLocked("AreaOpen", mask)
}

// BBoxFilter prunes every node whose bounding box is shorter than dx along
// X, dy along Y and, for volumes, dz along Z, and returns the number of
// removed nodes. dz is ignored for 2-D trees.
// Complexity: O(N + P).
func (t *Tree) BBoxFilter(dx, dy, dz int) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	nt := &t.nodes
	mask := make([]bool, nt.Len())
	var small bool
	for i := 1; i < len(mask); i++ {
		small = nt.Max[0][i]-nt.Min[0][i]+1 < dx && nt.Max[1][i]-nt.Min[1][i]+1 < dy
		if t.shape.Dims == 3 {
			small = small && nt.Max[2][i]-nt.Min[2][i]+1 < dz
		}
		mask[i] = small
	}
	return t.pruneLocked("BBoxFilter", mask)
}

// PruneFunc prunes every non-root node for which remove returns true,
// together with its descendants, and returns the number of removed nodes.
// remove must not call back into t.
// Complexity: O(N·cost(remove) + P).
func (t *Tree) PruneFunc(remove func(n Node) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	mask := make([]bool, t.nodes.Len())
	for i := 1; i < len(mask); i++ {
		mask[i] = remove(t.row(i))
	}
	return t.pruneLocked("PruneFunc", mask)
}

// ContractFunc removes, by the direct rule, every non-root node for which
// keep returns false, and returns the number of removed nodes.
// keep must not call back into t.
// Complexity: O(N·cost(keep) + P).
func (t *Tree) ContractFunc(keep func(n Node) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	mask := make([]bool, t.nodes.Len())
	mask[0] = true
	for i := 1; i < len(mask); i++ {
		mask[i] = keep(t.row(i))
	}
	toRemove, lut := contractLUT(t.nodes.Parent, mask)
	return t.compactLocked("ContractFunc", toRemove, lut)
}

// pruneLocked runs Prune on a mask already known to be well formed.
// Caller holds mu.
func (t *Tree) pruneLocked(op string, mask []bool) int {
	removed, lut := pruneLUT(t.nodes.Parent, mask)

	return t.compactLocked(op, removed, lut)
}
