package maxtree

import (
	"fmt"
)

// Prune removes whole branches: every node marked in toPrune together with
// all of its descendants. Pixels of removed nodes move to the nearest
// surviving ancestor. This is the removal procedure for non-increasing
// filters, where a removed node's descendants must go with it.
//
// Marking the root is rejected with ErrRootRemoval; a mask whose length is
// not Len() is rejected with ErrLengthMismatch. Rejected calls leave the
// tree untouched. An all-false mask is a no-op.
//
// Complexity: O(N + P).
func (t *Tree) Prune(toPrune []bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkMask(toPrune); err != nil {
		return t.reject("Prune", err)
	}
	if toPrune[0] {
		return t.reject("Prune", ErrRootRemoval)
	}
	removed, lut := pruneLUT(t.nodes.Parent, toPrune)
	t.compactLocked("Prune", removed, lut)

	return nil
}

// ContractDR applies the direct rule: every node with keep[i] == false is
// removed on its own and its children are reattached to the nearest
// surviving ancestor. The root is always kept, whatever keep[0] says;
// the caller's slice is not modified.
//
// A mask whose length is not Len() is rejected with ErrLengthMismatch and
// the tree is left untouched.
//
// Complexity: O(N + P).
func (t *Tree) ContractDR(keep []bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkMask(keep); err != nil {
		return t.reject("ContractDR", err)
	}
	toRemove, lut := contractLUT(t.nodes.Parent, keep)
	t.compactLocked("ContractDR", toRemove, lut)

	return nil
}

// pruneLUT propagates removal down the tree in one forward pass and maps
// every removed node to its nearest surviving ancestor.
// Relies on Parent[i] < i, so the parent's entries are final when i is visited.
func pruneLUT(parent []int, toPrune []bool) (removed []bool, lut []int) {
	n := len(parent)
	removed = make([]bool, n)
	lut = make([]int, n)
	lut[0] = 0
	var p int
	for i := 1; i < n; i++ {
		p = parent[i]
		removed[i] = toPrune[i] || removed[p]
		if removed[i] {
			lut[i] = lut[p]
		} else {
			lut[i] = i
		}
	}

	return removed, lut
}

// contractLUT maps every removed node to its nearest kept ancestor in one
// forward pass. The root is kept unconditionally.
func contractLUT(parent []int, keep []bool) (toRemove []bool, lut []int) {
	n := len(parent)
	toRemove = make([]bool, n)
	lut = make([]int, n)
	lut[0] = 0
	for i := 1; i < n; i++ {
		if keep[i] {
			lut[i] = i
			continue
		}
		toRemove[i] = true
		lut[i] = lut[parent[i]]
	}

	return toRemove, lut
}

// checkMask reports ErrLengthMismatch when mask does not have one entry per node.
func (t *Tree) checkMask(mask []bool) error {
	if len(mask) != t.nodes.Len() {
		return fmt.Errorf("mask has %d entries, tree has %d nodes: %w", len(mask), t.nodes.Len(), ErrLengthMismatch)
	}

	return nil
}

// reject logs a refused edit and wraps err with method context.
func (t *Tree) reject(method string, err error) error {
	err = treeErrorf(method, err)
	t.opts.Logger.WithField("op", method).Warn(err)

	return err
}
