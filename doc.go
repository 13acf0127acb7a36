// Package maxtree is the entry point of a library for editing max-trees
// (component trees) of 2-D images and 3-D volumes in place.
//
// A max-tree describes every connected component of every upper level set
// of an image. Building one is somebody else's job; this module takes an
// already-built tree, stored as a columnar node table plus a per-pixel node
// index, and keeps it consistent while nodes are removed.
//
// The work is organized under two subpackages:
//
//	grid/     image shapes, linear indexing, neighbor stencils and boolean masks
//	maxtree/  the Tree: structural edits, topology queries, reconstruction
//	          and attribute filters
//
// Quick example (area opening on a 4×3 image):
//
//	0 0 0 0        0 0 0 0
//	0 3 3 0   ->   0 3 3 0
//	0 3 7 0        0 3 3 0
//
//	tr, _ := maxtree.New(table, index, shape)
//	tr.AreaOpen(2)
//	img := tr.Image()
//
// Removal follows two rules. Prune drops a node with its whole subtree, as
// non-increasing filters require. ContractDR (the direct rule) drops nodes
// one by one and reattaches their children. Both end in one compaction pass
// that renumbers the survivors densely and keeps parents ahead of children.
//
//	go get github.com/katalvlaran/maxtree
package maxtree
