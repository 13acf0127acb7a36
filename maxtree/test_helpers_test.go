package maxtree_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxtree/grid"
	"github.com/katalvlaran/maxtree/maxtree"
)

// quietLogger returns a logger that discards output, so tests stay silent.
func quietLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()

	return l
}

// chainTable builds the 5-node chain 0←1←2←3←4 over a 10×10 image.
// Node k owns the first areas[k] pixels in linear order; each component is a
// run of whole rows (plus a partial row for node 4), so all are 4-connected.
//
//	areas  = [100, 80, 50, 20, 5]
//	levels = [0, 1, 2, 3, 4]
func chainTable() (maxtree.NodeTable, []int, grid.Shape) {
	shape, _ := grid.NewShape2D(10, 10)
	areas := []int{100, 80, 50, 20, 5}
	index := make([]int, shape.Size())
	for p := range index {
		for k := len(areas) - 1; k >= 0; k-- {
			if p < areas[k] {
				index[p] = k
				break
			}
		}
	}
	nt := maxtree.NodeTable{
		Parent: []int{0, 0, 1, 2, 3},
		NChild: []int{1, 1, 1, 1, 0},
		Level:  []int{0, 1, 2, 3, 4},
		Area:   areas,
		Seed:   []int{80, 50, 20, 5, 0},
	}
	nt.Min[0] = []int{0, 0, 0, 0, 0}
	nt.Max[0] = []int{9, 9, 9, 9, 4}
	nt.Min[1] = []int{0, 0, 0, 0, 0}
	nt.Max[1] = []int{9, 7, 4, 1, 0}

	return nt, index, shape
}

// branchTable builds a 5-node tree with one bifurcation over an 8×3 image.
//
// Pixel index:
//
//	0 0 0 0 0 0 0 0
//	0 1 1 0 0 3 3 0
//	0 1 2 0 0 0 4 0
//
// Tree:
//
//	0 (level 0, area 24)
//	├── 1 (level 2, area 4)
//	│   └── 2 (level 5, area 1)
//	└── 3 (level 3, area 3)
//	    └── 4 (level 4, area 1)
func branchTable() (maxtree.NodeTable, []int, grid.Shape) {
	shape, _ := grid.NewShape2D(8, 3)
	index := []int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 1, 0, 0, 3, 3, 0,
		0, 1, 2, 0, 0, 0, 4, 0,
	}
	nt := maxtree.NodeTable{
		Parent: []int{0, 0, 1, 0, 3},
		NChild: []int{2, 1, 0, 1, 0},
		Level:  []int{0, 2, 5, 3, 4},
		Area:   []int{24, 4, 1, 3, 1},
		Seed:   []int{0, 9, 18, 13, 22},
	}
	nt.Min[0] = []int{0, 1, 2, 5, 6}
	nt.Max[0] = []int{7, 2, 2, 6, 6}
	nt.Min[1] = []int{0, 1, 2, 1, 2}
	nt.Max[1] = []int{2, 2, 2, 2, 2}

	return nt, index, shape
}

// volumeTable builds a 3-node tree over a 2×2×2 volume: the root holds every
// voxel, node 1 the z=1 plane and node 2 the voxel (1,1,1).
func volumeTable() (maxtree.NodeTable, []int, grid.Shape) {
	shape, _ := grid.NewShape3D(2, 2, 2)
	index := []int{0, 0, 0, 0, 1, 1, 1, 2}
	nt := maxtree.NodeTable{
		Parent: []int{0, 0, 1},
		NChild: []int{1, 1, 0},
		Level:  []int{0, 1, 2},
		Area:   []int{8, 4, 1},
		Seed:   []int{0, 4, 7},
	}
	nt.Min[0], nt.Max[0] = []int{0, 0, 1}, []int{1, 1, 1}
	nt.Min[1], nt.Max[1] = []int{0, 0, 1}, []int{1, 1, 1}
	nt.Min[2], nt.Max[2] = []int{0, 1, 1}, []int{1, 1, 1}

	return nt, index, shape
}

// mustTree wraps New and fails the test on error.
func mustTree(t testing.TB, build func() (maxtree.NodeTable, []int, grid.Shape), opts ...maxtree.Option) *maxtree.Tree {
	t.Helper()
	nt, index, shape := build()
	opts = append([]maxtree.Option{maxtree.WithLogger(quietLogger())}, opts...)
	tr, err := maxtree.New(nt, index, shape, opts...)
	require.NoError(t, err)

	return tr
}

// pixelsOf lists the linear indices that map to node id.
func pixelsOf(index []int, id int) []int {
	var out []int
	for p, v := range index {
		if v == id {
			out = append(out, p)
		}
	}

	return out
}
