package structure

import "github.com/hupe1980/molgo/store"

// bondHash is a CSR-style adjacency over the general bond store: per-atom
// neighbor lists packed into one index array. Rebuilt by Finalize.
type bondHash struct {
	offsets []int
	counts  []int
	indices []int
}

func newBondHash(bonds *store.BondStore, atomCount int) *bondHash {
	h := &bondHash{
		offsets: make([]int, atomCount),
		counts:  make([]int, atomCount),
	}
	nb := bonds.Count()
	for i := 0; i < nb; i++ {
		h.counts[bonds.AtomIndex1[i]]++
		h.counts[bonds.AtomIndex2[i]]++
	}
	total := 0
	for i, c := range h.counts {
		h.offsets[i] = total
		total += c
	}
	h.indices = make([]int, total)
	fill := make([]int, atomCount)
	for i := 0; i < nb; i++ {
		a, b := int(bonds.AtomIndex1[i]), int(bonds.AtomIndex2[i])
		h.indices[h.offsets[a]+fill[a]] = b
		fill[a]++
		h.indices[h.offsets[b]+fill[b]] = a
		fill[b]++
	}
	return h
}

func (h *bondHash) degree(i int) int {
	if i < 0 || i >= len(h.counts) {
		return 0
	}
	return h.counts[i]
}

func (h *bondHash) neighbors(i int) []int {
	if i < 0 || i >= len(h.counts) {
		return nil
	}
	return h.indices[h.offsets[i] : h.offsets[i]+h.counts[i]]
}
