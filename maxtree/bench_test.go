package maxtree_test

import (
	"testing"

	"github.com/katalvlaran/maxtree/maxtree"
)

// BenchmarkContractDR measures a direct-rule edit on a 256×256 image.
// The tree is re-cloned outside the timer on every iteration.
// Complexity: O(N + P)
func BenchmarkContractDR(b *testing.B) {
	base := mustTree(b, largeTable)
	keep := []bool{true, false, true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := base.Clone()
		b.StartTimer()
		if err := tr.ContractDR(keep); err != nil {
			b.Fatalf("ContractDR: %v", err)
		}
	}
}

// BenchmarkContractDR_Parallel is BenchmarkContractDR with a 4-worker pool.
// Complexity: O(N + P/workers)
func BenchmarkContractDR_Parallel(b *testing.B) {
	base := mustTree(b, largeTable, maxtree.WithWorkers(4))
	keep := []bool{true, false, true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := base.Clone()
		b.StartTimer()
		if err := tr.ContractDR(keep); err != nil {
			b.Fatalf("ContractDR: %v", err)
		}
	}
}

// BenchmarkReconstruct measures a flood fill covering half the image.
// Complexity: O(A·d)
func BenchmarkReconstruct(b *testing.B) {
	tr := mustTree(b, largeTable)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Reconstruct(1, false); err != nil {
			b.Fatalf("Reconstruct: %v", err)
		}
	}
}
