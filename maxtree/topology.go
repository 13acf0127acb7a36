// File: topology.go
// Role: lazily cached topology queries over the parent column.
// Determinism:
//   - Children are listed in ascending id order.
//   - Descendants are listed breadth-first, starting with the queried node.
//   - Sub-branches are discovered depth-first from the root, children in ascending order.
// Caching:
//   - childrenOK / branchesOK are cleared by every structural edit and by Clone;
//     the next query rebuilds the CSR layout in O(N).

package maxtree

import (
	"fmt"
)

// Children returns the direct children of node in ascending id order.
// A leaf yields an empty slice. The result is a copy.
// Returns ErrNodeOutOfRange for an invalid id.
// Complexity: O(N) after an edit, O(k) otherwise.
func (t *Tree) Children(node int) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkNode(node); err != nil {
		return nil, treeErrorf("Children", err)
	}
	t.ensureChildren()

	return cloneInts(t.childrenOf(node)), nil
}

// Descendants returns node and every node below it. For the root this is
// every id in order; for a leaf it is {node}; otherwise node is followed by
// its descendants in breadth-first order.
// Returns ErrNodeOutOfRange for an invalid id.
// Complexity: O(N) after an edit, O(k) otherwise.
func (t *Tree) Descendants(node int) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkNode(node); err != nil {
		return nil, treeErrorf("Descendants", err)
	}

	return t.descendants(node), nil
}

// descendants is Descendants without locking or validation.
func (t *Tree) descendants(node int) []int {
	if node == 0 {
		all := make([]int, t.nodes.Len())
		for i := range all {
			all[i] = i
		}
		return all
	}
	if t.nodes.NChild[node] == 0 {
		return []int{node}
	}
	t.ensureChildren()
	out := []int{node}
	for qi := 0; qi < len(out); qi++ {
		out = append(out, t.childrenOf(out[qi])...)
	}

	return out
}

// NumSubBranches returns the number of maximal single-child chains.
// Complexity: O(N) after an edit, O(1) otherwise.
func (t *Tree) NumSubBranches() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureBranches()

	return len(t.branchCum) - 1
}

// SubBranch returns the members of sub-branch index, top to bottom.
// A sub-branch is a maximal chain in which every member except the last has
// exactly one child; branch 0 starts at the root.
// Returns ErrBranchOutOfRange for an invalid index.
// Complexity: O(N) after an edit, O(k) otherwise.
func (t *Tree) SubBranch(index int) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureBranches()
	if index < 0 || index >= len(t.branchCum)-1 {
		return nil, treeErrorf("SubBranch",
			fmt.Errorf("branch %d of %d: %w", index, len(t.branchCum)-1, ErrBranchOutOfRange))
	}

	return cloneInts(t.branches[t.branchCum[index]:t.branchCum[index+1]]), nil
}

// Ancestors returns node, its parent, and so on up to and including the root.
// Returns ErrNodeOutOfRange for an invalid id.
// Complexity: O(depth).
func (t *Tree) Ancestors(node int) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkNode(node); err != nil {
		return nil, treeErrorf("Ancestors", err)
	}
	parent := t.nodes.Parent
	out := []int{node}
	for node != 0 {
		node = parent[node]
		out = append(out, node)
	}

	return out, nil
}

// BifAncestor returns the nearest proper ancestor of node that has more
// than one child, i.e. the branching point above node. It returns 0 when no
// such ancestor exists, and for the root itself.
// Returns ErrNodeOutOfRange for an invalid id.
// Complexity: O(depth).
func (t *Tree) BifAncestor(node int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkNode(node); err != nil {
		return 0, treeErrorf("BifAncestor", err)
	}
	parent, nchild := t.nodes.Parent, t.nodes.NChild
	for node != 0 {
		node = parent[node]
		if nchild[node] > 1 {
			return node, nil
		}
	}

	return 0, nil
}

// childrenOf slices the cached children of node. Caller holds mu and has
// called ensureChildren.
func (t *Tree) childrenOf(node int) []int {
	end := t.childCum[node]

	return t.children[end-t.nodes.NChild[node] : end]
}

// ensureChildren builds the CSR children list: childCum is the inclusive
// running sum of NChild, and each id is bucketed into its parent's slot.
func (t *Tree) ensureChildren() {
	if t.childrenOK {
		return
	}
	n := t.nodes.Len()
	nchild, parent := t.nodes.NChild, t.nodes.Parent
	cum := make([]int, n)
	next := make([]int, n) // next free slot per parent
	acc := 0
	for i := 0; i < n; i++ {
		next[i] = acc
		acc += nchild[i]
		cum[i] = acc
	}
	list := make([]int, acc)
	var p int
	for i := 1; i < n; i++ {
		p = parent[i]
		list[next[p]] = i
		next[p]++
	}
	t.childCum, t.children = cum, list
	t.childrenOK = true
}

// ensureBranches partitions the tree into sub-branches. Each node is visited
// once: an only child extends its parent's branch, every other node opens
// a new one.
func (t *Tree) ensureBranches() {
	if t.branchesOK {
		return
	}
	t.ensureChildren()
	n := t.nodes.Len()
	flat := make([]int, 0, n)
	cum := []int{0}
	stack := []int{0}
	var cur, j int
	var kids []int
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for {
			flat = append(flat, cur)
			kids = t.childrenOf(cur)
			if len(kids) == 1 {
				cur = kids[0]
				continue
			}
			// pushed in reverse so the smallest child opens the next branch
			for j = len(kids) - 1; j >= 0; j-- {
				stack = append(stack, kids[j])
			}
			break
		}
		cum = append(cum, len(flat))
	}
	t.branchCum, t.branches = cum, flat
	t.branchesOK = true
}
