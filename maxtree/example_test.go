package maxtree_test

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxtree/grid"
	"github.com/katalvlaran/maxtree/maxtree"
)

////////////////////////////////////////////////////////////////////////////////
// Example: area opening and component reconstruction
////////////////////////////////////////////////////////////////////////////////

// ExampleTree_AreaOpen removes the single-pixel peaks of a 4×3 image and
// prints the filtered image and the surviving component.
//
//	image      tree
//	0 0 0 0    0 (level 0)
//	0 3 3 0    └── 1 (level 3)
//	0 3 7 0        └── 2 (level 7)
func ExampleTree_AreaOpen() {
	shape, _ := grid.NewShape2D(4, 3)
	nt := maxtree.NodeTable{
		Parent: []int{0, 0, 1},
		Level:  []int{0, 3, 7},
		Area:   []int{12, 4, 1},
		Seed:   []int{0, 5, 10},
	}
	nt.Min[0], nt.Max[0] = []int{0, 1, 2}, []int{3, 2, 2}
	nt.Min[1], nt.Max[1] = []int{0, 1, 2}, []int{2, 2, 2}
	index := []int{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 2, 0,
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	tr, err := maxtree.New(nt, index, shape, maxtree.WithLogger(quiet))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("removed:", tr.AreaOpen(2))
	fmt.Println("image:", tr.Image())

	cc, _ := tr.Reconstruct(1, true)
	fmt.Println("component:", cc.Shape, cc.Count())

	// Output:
	// removed: 1
	// image: [0 0 0 0 0 3 3 0 0 3 3 0]
	// component: 2x2 4
}
