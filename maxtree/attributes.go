package maxtree

// Rectangularity returns, per node, the ratio of its area to the volume of
// its bounding box. Values lie in (0, 1]; 1 means the component fills its box.
// Complexity: O(N).
func (t *Tree) Rectangularity() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	nt := &t.nodes
	out := make([]float64, nt.Len())
	var box int
	for i := range out {
		box = 1
		for a := 0; a < t.shape.Dims; a++ {
			box *= nt.Max[a][i] - nt.Min[a][i] + 1
		}
		out[i] = float64(nt.Area[i]) / float64(box)
	}

	return out
}

// Image restores the image the tree represents: each pixel takes the level
// of the node it maps to. Applied after a filter it yields the filtered image.
// Complexity: O(P).
func (t *Tree) Image() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	level := t.nodes.Level
	out := make([]int, len(t.index))
	for p, id := range t.index {
		out[p] = level[id]
	}

	return out
}
