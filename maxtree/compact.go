package maxtree

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// Compact physically removes the nodes marked in toRemove and renumbers
// the survivors contiguously, preserving their relative order.
// lut must send every surviving node to itself and every removed node to
// its nearest surviving ancestor, which is what Prune and ContractDR compute.
//
// Stage 1 (Validate): lengths, root kept, lut consistent with toRemove.
// Stage 2 (Remap): fix = inclusive prefix count of removed ids;
// pos[i] = lut[i] - fix[lut[i]] is the new id of i's survivor.
// Stage 3 (Apply): rewrite the pixel index and surviving parents through pos,
// drop removed rows, recount children, invalidate caches.
//
// Errors: ErrLengthMismatch, ErrRootRemoval or ErrInvalidLUT, with the tree
// left untouched.
// Complexity: O(N + P).
func (t *Tree) Compact(toRemove []bool, lut []int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRemap(toRemove, lut); err != nil {
		return t.reject("Compact", err)
	}
	t.compactLocked("Compact", toRemove, lut)

	return nil
}

// checkRemap validates a caller-supplied (toRemove, lut) pair.
func (t *Tree) checkRemap(toRemove []bool, lut []int) error {
	n := t.nodes.Len()
	if err := t.checkMask(toRemove); err != nil {
		return err
	}
	if len(lut) != n {
		return fmt.Errorf("lut has %d entries, tree has %d nodes: %w", len(lut), n, ErrLengthMismatch)
	}
	if toRemove[0] {
		return ErrRootRemoval
	}
	if lut[0] != 0 {
		return fmt.Errorf("lut[0] = %d: %w", lut[0], ErrInvalidLUT)
	}
	parent := t.nodes.Parent
	var want, p int
	for i := 1; i < n; i++ {
		switch p = parent[i]; {
		case !toRemove[i]:
			want = i
		case toRemove[p]:
			want = lut[p]
		default:
			want = p
		}
		if lut[i] != want {
			return fmt.Errorf("lut[%d] = %d, want %d: %w", i, lut[i], want, ErrInvalidLUT)
		}
	}

	return nil
}

// compactLocked applies a validated remap. Nothing in here can fail, so an
// edit is either rejected before this point or fully applied.
// It returns the number of removed nodes. Caller holds mu.
func (t *Tree) compactLocked(op string, toRemove []bool, lut []int) int {
	n := t.nodes.Len()
	fix := make([]int, n)
	removed := 0
	for i, r := range toRemove {
		if r {
			removed++
		}
		fix[i] = removed
	}
	log := t.opts.Logger.WithFields(logrus.Fields{
		"op":           op,
		"nodes_before": n,
		"nodes_after":  n - removed,
		"removed":      removed,
	})
	if removed == 0 {
		log.Debug("no nodes removed")
		return 0
	}

	pos := make([]int, n)
	for i, l := range lut {
		pos[i] = l - fix[l]
	}
	t.remapPixels(pos)
	t.nodes = compactTable(&t.nodes, toRemove, pos, n-removed)
	t.invalidate()
	log.Debug("tree compacted")

	return removed
}

// compactTable copies the surviving rows of nt, in order, into a new table
// of size kept, translating parents through pos and recounting children.
func compactTable(nt *NodeTable, toRemove []bool, pos []int, kept int) NodeTable {
	out := NodeTable{
		Parent: make([]int, 0, kept),
		NChild: make([]int, kept),
		Level:  make([]int, 0, kept),
		Area:   make([]int, 0, kept),
		Seed:   make([]int, 0, kept),
	}
	for a := 0; a < 3; a++ {
		if nt.Min[a] != nil {
			out.Min[a] = make([]int, 0, kept)
			out.Max[a] = make([]int, 0, kept)
		}
	}
	for i, r := range toRemove {
		if r {
			continue
		}
		out.Parent = append(out.Parent, pos[nt.Parent[i]])
		out.Level = append(out.Level, nt.Level[i])
		out.Area = append(out.Area, nt.Area[i])
		out.Seed = append(out.Seed, nt.Seed[i])
		for a := 0; a < 3; a++ {
			if nt.Min[a] != nil {
				out.Min[a] = append(out.Min[a], nt.Min[a][i])
				out.Max[a] = append(out.Max[a], nt.Max[a][i])
			}
		}
	}
	countChildren(out.Parent, out.NChild)

	return out
}

// remapPixels rewrites every pixel index entry through pos. Large images are
// split into contiguous chunks on an ants pool when Workers > 1; a chunk the
// pool refuses runs on the calling goroutine, so the rewrite always completes.
// Caller holds mu.
func (t *Tree) remapPixels(pos []int) {
	index := t.index
	workers := t.opts.Workers
	if workers <= 1 || len(index) < parallelMinPixels {
		remapRange(index, pos)
		return
	}
	pool, err := ants.NewPool(workers, ants.WithLogger(t.opts.Logger))
	if err != nil {
		t.opts.Logger.WithError(err).Warn("pixel remap pool unavailable, running sequentially")
		remapRange(index, pos)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	chunk := (len(index) + workers - 1) / workers
	for start := 0; start < len(index); start += chunk {
		end := min(start+chunk, len(index))
		part := index[start:end]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			remapRange(part, pos)
		}
		if err = pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()
}

// remapRange replaces each entry v of part with pos[v].
func remapRange(part, pos []int) {
	for i, v := range part {
		part[i] = pos[v]
	}
}
