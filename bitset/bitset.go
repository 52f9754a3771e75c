package bitset

import (
	"github.com/bits-and-blooms/bitset"
)

// BitSet is a fixed-length bit vector over row indices.
// It is the materialized result of a selection: bit i is set when row i matched.
//
// The length is fixed at creation and always equals the row count of the store
// the set was computed against. A BitSet computed before a mutation that changed
// row counts must be discarded, not resized.
type BitSet struct {
	bs     *bitset.BitSet
	length int
}

// New creates an empty BitSet of the given length.
func New(length int) *BitSet {
	return &BitSet{
		bs:     bitset.New(uint(length)),
		length: length,
	}
}

// Len returns the fixed length of the set.
func (b *BitSet) Len() int {
	return b.length
}

// Set sets bit i.
func (b *BitSet) Set(i int) {
	b.bs.Set(uint(i))
}

// Clear clears bit i.
func (b *BitSet) Clear(i int) {
	b.bs.Clear(uint(i))
}

// Flip inverts bit i.
func (b *BitSet) Flip(i int) {
	b.bs.Flip(uint(i))
}

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool {
	return b.bs.Test(uint(i))
}

// SetRange sets all bits in [from, to).
func (b *BitSet) SetRange(from, to int) {
	for i := from; i < to; i++ {
		b.bs.Set(uint(i))
	}
}

// ClearRange clears all bits in [from, to).
func (b *BitSet) ClearRange(from, to int) {
	for i := from; i < to; i++ {
		b.bs.Clear(uint(i))
	}
}

// SetAll sets every bit in [0, Len).
func (b *BitSet) SetAll() {
	b.SetRange(0, b.length)
}

// ClearAll clears every bit.
func (b *BitSet) ClearAll() {
	b.bs.ClearAll()
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	return int(b.bs.Count())
}

// Union sets b to the union of b and other. Both sets must have equal length.
func (b *BitSet) Union(other *BitSet) *BitSet {
	b.bs.InPlaceUnion(other.bs)
	return b
}

// Intersection sets b to the intersection of b and other. Both sets must have
// equal length.
func (b *BitSet) Intersection(other *BitSet) *BitSet {
	b.bs.InPlaceIntersection(other.bs)
	return b
}

// Difference clears every bit of b that is set in other. Both sets must have
// equal length.
func (b *BitSet) Difference(other *BitSet) *BitSet {
	b.bs.InPlaceDifference(other.bs)
	return b
}

// Clone returns a deep copy.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		bs:     b.bs.Clone(),
		length: b.length,
	}
}

// Equal reports whether both sets have the same length and the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	return b.length == other.length && b.bs.Equal(other.bs)
}

// ForEach calls fn for every set bit in ascending order. Iteration stops early
// when fn returns false.
func (b *BitSet) ForEach(fn func(i int) bool) {
	for i, ok := b.bs.NextSet(0); ok && int(i) < b.length; i, ok = b.bs.NextSet(i + 1) {
		if !fn(int(i)) {
			return
		}
	}
}

// ToSlice returns the indices of all set bits in ascending order.
func (b *BitSet) ToSlice() []int {
	out := make([]int, 0, b.Count())
	b.ForEach(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}
