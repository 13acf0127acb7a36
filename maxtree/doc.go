// Package maxtree implements the structural-edit engine of a max-tree
// (component tree): a hierarchy of nested connected components of a 2-D
// image or 3-D volume, ordered by threshold level.
//
// What:
//
//   - NodeTable stores the tree column-wise (parent, child count, level, area,
//     seed pixel, per-axis bounding box). Nodes are referenced only by index.
//   - The pixel index maps every pixel to the deepest node containing it.
//   - Prune removes whole branches; ContractDR removes arbitrary nodes and
//     reattaches their children to the nearest surviving ancestor. Both only
//     compute a remap table and hand it to Compact, which rewrites the pixel
//     index and the parent column and drops the removed rows.
//   - Children, Descendants and SubBranch answer topology queries from a lazily
//     built cache that every structural edit invalidates.
//   - Reconstruct recovers the pixels of a node by flood fill from its seed.
//
// Invariants (checked by New and Validate):
//
//   - Parent[0] == 0 and Parent[i] < i for every i > 0 (topological order),
//     so single forward passes propagate ancestor state without recursion.
//   - NChild[i] equals the number of nodes whose parent is i.
//   - Every pixel index entry lies in [0, Len()).
//   - The root is never removed.
//
// Edits are all-or-nothing: inputs are validated before any state changes,
// and nothing after validation can fail.
//
// Complexity:
//
//   - Prune, ContractDR, Compact: O(N + P), N nodes and P pixels.
//   - Children, Descendants, SubBranch: O(N) on the first call after an edit, then O(k).
//   - Reconstruct: O(N + A·d), A the component area and d the stencil size.
//
// Errors:
//
//   - ErrEmptyTree, ErrLengthMismatch: malformed construction input or masks.
//   - ErrNodeOutOfRange, ErrPixelOutOfRange, ErrBranchOutOfRange: bad ids or positions.
//   - ErrRootRemoval: a prune mask that marks the root.
//   - ErrInvalidLUT: a remap table that does not send nodes to their nearest survivor.
//   - ErrBrokenForest, ErrChildCount: invariant violations.
//   - ErrOptionViolation: invalid Option value.
package maxtree
