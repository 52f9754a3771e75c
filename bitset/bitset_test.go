package bitset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSetBasic(t *testing.T) {
	b := New(100)
	assert.Equal(t, 100, b.Len())
	assert.Equal(t, 0, b.Count())

	b.Set(0)
	b.Set(42)
	b.Set(99)
	assert.Equal(t, 3, b.Count())
	assert.True(t, b.Test(42))
	assert.False(t, b.Test(43))

	b.Clear(42)
	assert.False(t, b.Test(42))
	assert.Equal(t, 2, b.Count())

	b.Flip(1)
	assert.True(t, b.Test(1))
	b.Flip(1)
	assert.False(t, b.Test(1))
}

func TestBitSetRanges(t *testing.T) {
	b := New(64)
	b.SetRange(10, 20)
	assert.Equal(t, 10, b.Count())
	assert.True(t, b.Test(10))
	assert.True(t, b.Test(19))
	assert.False(t, b.Test(20))

	b.ClearRange(12, 15)
	assert.Equal(t, 7, b.Count())
	assert.False(t, b.Test(13))

	b.SetAll()
	assert.Equal(t, 64, b.Count())
	b.ClearAll()
	assert.Equal(t, 0, b.Count())
}

func TestBitSetIteration(t *testing.T) {
	b := New(32)
	want := []int{1, 5, 8, 31}
	for _, i := range want {
		b.Set(i)
	}
	assert.Equal(t, want, b.ToSlice())

	// Early stop
	var seen []int
	b.ForEach(func(i int) bool {
		seen = append(seen, i)
		return len(seen) < 2
	})
	assert.Equal(t, []int{1, 5}, seen)
}

// A.union(B).intersection(A) == A and A.difference(A) is all-clear, for random
// sets of equal length.
func TestBitSetAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(300)
		a := New(n)
		b := New(n)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				a.Set(i)
			}
			if rng.Intn(2) == 0 {
				b.Set(i)
			}
		}

		got := a.Clone().Union(b).Intersection(a)
		require.True(t, got.Equal(a), "A|B & A must equal A")

		diff := a.Clone().Difference(a)
		require.Equal(t, 0, diff.Count(), "A\\A must be empty")
	}
}

func TestBitSetCloneIndependence(t *testing.T) {
	a := New(16)
	a.Set(3)
	c := a.Clone()
	c.Set(4)
	assert.False(t, a.Test(4))
	assert.True(t, c.Test(3))
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(c))
}
