package maxtree_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxtree/maxtree"
)

//----------------------------------------------------------------------------//
// Prune
//----------------------------------------------------------------------------//

// TestPrune_ChainScenario prunes nodes with area < 30 from the 5-node chain:
// nodes 3 and 4 go, node 2 becomes a leaf and inherits their pixels.
func TestPrune_ChainScenario(t *testing.T) {
	tr := mustTree(t, chainTable)
	before := tr.PixelIndex()

	area := tr.Nodes().Area
	mask := make([]bool, len(area))
	for i, a := range area {
		mask[i] = a < 30
	}
	require.Equal(t, []bool{false, false, false, true, true}, mask)
	require.NoError(t, tr.Prune(mask))

	nodes := tr.Nodes()
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int{0, 0, 1}, nodes.Parent)
	assert.Equal(t, []int{1, 1, 0}, nodes.NChild)
	assert.Equal(t, []int{100, 80, 50}, nodes.Area)

	after := tr.PixelIndex()
	for p, old := range before {
		switch old {
		case 3, 4:
			assert.Equal(t, 2, after[p], "pixel %d", p)
		default:
			assert.Equal(t, old, after[p], "pixel %d", p)
		}
	}
	require.NoError(t, tr.Validate())
}

// TestPrune_PropagatesToDescendants marks only node 1 of the branch tree and
// expects its child to be removed with it.
func TestPrune_PropagatesToDescendants(t *testing.T) {
	tr := mustTree(t, branchTable)

	require.NoError(t, tr.Prune([]bool{false, true, false, false, false}))

	nodes := tr.Nodes()
	assert.Equal(t, []int{0, 0, 1}, nodes.Parent)
	assert.Equal(t, []int{0, 3, 4}, nodes.Level)
	assert.Equal(t, []int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 1, 1, 0,
		0, 0, 0, 0, 0, 0, 2, 0,
	}, tr.PixelIndex())
}

// TestPrune_LeavesConserveArea prunes only leaves and checks the node count
// drops by the number of leaves and each leaf's pixels move to its parent.
func TestPrune_LeavesConserveArea(t *testing.T) {
	tr := mustTree(t, branchTable)
	before := tr.PixelIndex()
	leafPixels2 := pixelsOf(before, 2)
	leafPixels4 := pixelsOf(before, 4)

	require.NoError(t, tr.Prune([]bool{false, false, true, false, true}))
	assert.Equal(t, 3, tr.Len())

	after := tr.PixelIndex()
	for _, p := range leafPixels2 {
		assert.Equal(t, 1, after[p])
	}
	for _, p := range leafPixels4 {
		assert.Equal(t, 2, after[p], "old node 3 is new node 2")
	}
	assert.Equal(t, 24, len(pixelsOf(after, 0))+len(pixelsOf(after, 1))+len(pixelsOf(after, 2)))
}

// TestPrune_RejectsRoot verifies the root policy: a mask marking the root
// is a usage error and the tree is left untouched.
func TestPrune_RejectsRoot(t *testing.T) {
	tr := mustTree(t, branchTable)
	nodes, index := tr.Nodes(), tr.PixelIndex()

	err := tr.Prune([]bool{true, false, false, false, false})
	require.ErrorIs(t, err, maxtree.ErrRootRemoval)
	assert.Equal(t, nodes, tr.Nodes())
	assert.Equal(t, index, tr.PixelIndex())
}

// TestPrune_LengthMismatch ensures a short mask is refused without side effects.
func TestPrune_LengthMismatch(t *testing.T) {
	tr := mustTree(t, branchTable)
	nodes := tr.Nodes()

	require.ErrorIs(t, tr.Prune([]bool{false, true}), maxtree.ErrLengthMismatch)
	require.ErrorIs(t, tr.ContractDR(make([]bool, 6)), maxtree.ErrLengthMismatch)
	assert.Equal(t, nodes, tr.Nodes())
}

// TestPrune_AllFalseIsIdentity checks that an empty removal mask leaves the
// node table and pixel index bit-for-bit unchanged.
func TestPrune_AllFalseIsIdentity(t *testing.T) {
	tr := mustTree(t, chainTable)
	nodes, index := tr.Nodes(), tr.PixelIndex()

	require.NoError(t, tr.Prune(make([]bool, tr.Len())))
	keep := []bool{true, true, true, true, true}
	require.NoError(t, tr.ContractDR(keep))

	assert.Equal(t, nodes, tr.Nodes())
	assert.Equal(t, index, tr.PixelIndex())
}

//----------------------------------------------------------------------------//
// ContractDR
//----------------------------------------------------------------------------//

// TestContractDR_Reattaches removes node 3 of the branch tree: node 4 is
// reattached to the root and renumbered to 3.
func TestContractDR_Reattaches(t *testing.T) {
	tr := mustTree(t, branchTable)
	keep := []bool{true, true, true, false, true}

	require.NoError(t, tr.ContractDR(keep))
	assert.Equal(t, []bool{true, true, true, false, true}, keep, "caller mask must not be modified")

	nodes := tr.Nodes()
	assert.Equal(t, []int{0, 0, 1, 0}, nodes.Parent)
	assert.Equal(t, []int{2, 1, 0, 0}, nodes.NChild)
	assert.Equal(t, []int{0, 2, 5, 4}, nodes.Level)
	assert.Equal(t, []int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 1, 0, 0, 0, 0, 0,
		0, 1, 2, 0, 0, 0, 3, 0,
	}, tr.PixelIndex())
	require.NoError(t, tr.Validate())
}

// TestContractDR_MiddleOfChain removes two interior chain nodes; the chain
// stays a chain and the removed nodes' pixels go to their nearest kept ancestor.
func TestContractDR_MiddleOfChain(t *testing.T) {
	tr := mustTree(t, chainTable)
	before := tr.PixelIndex()

	require.NoError(t, tr.ContractDR([]bool{true, false, true, false, true}))

	nodes := tr.Nodes()
	assert.Equal(t, []int{0, 0, 1}, nodes.Parent)
	assert.Equal(t, []int{1, 1, 0}, nodes.NChild)
	assert.Equal(t, []int{0, 2, 4}, nodes.Level)

	want := map[int]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 2}
	after := tr.PixelIndex()
	for p, old := range before {
		assert.Equal(t, want[old], after[p], "pixel %d", p)
	}
}

// TestContractDR_RootProtected passes an all-false keep mask: the tree
// collapses to the root alone, never to zero nodes.
func TestContractDR_RootProtected(t *testing.T) {
	tr := mustTree(t, branchTable)

	require.NoError(t, tr.ContractDR(make([]bool, 5)))

	assert.Equal(t, 1, tr.Len())
	nodes := tr.Nodes()
	assert.Equal(t, []int{0}, nodes.Parent)
	assert.Equal(t, []int{0}, nodes.NChild)
	assert.Equal(t, []int{0}, nodes.Min[0])
	assert.Equal(t, []int{7}, nodes.Max[0])
	for _, id := range tr.PixelIndex() {
		assert.Equal(t, 0, id)
	}

	kids, err := tr.Children(0)
	require.NoError(t, err)
	assert.Empty(t, kids)
	sb, err := tr.SubBranch(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sb)
}

//----------------------------------------------------------------------------//
// Logging
//----------------------------------------------------------------------------//

// TestEdits_AreLogged checks the Debug record of an edit and the Warn record
// of a rejected one.
func TestEdits_AreLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	nt, index, shape := chainTable()
	tr, err := maxtree.New(nt, index, shape, maxtree.WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, tr.Prune([]bool{false, false, false, true, true}))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "Prune", entry.Data["op"])
	assert.Equal(t, 5, entry.Data["nodes_before"])
	assert.Equal(t, 3, entry.Data["nodes_after"])
	assert.Equal(t, 2, entry.Data["removed"])

	require.Error(t, tr.Prune([]bool{true, false, false}))
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Prune", entry.Data["op"])
}
