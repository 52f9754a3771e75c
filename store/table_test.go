package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore is a minimal two-column store for exercising the Table base.
type testStore struct {
	Table
	Key []int32
	Pos []float32 // width 3
}

func newTestStore(sizeHint int) *testStore {
	s := &testStore{}
	AddField(&s.Table, "key", 1, &s.Key)
	AddField(&s.Table, "pos", 3, &s.Pos)
	if sizeHint > 0 {
		s.Resize(sizeHint)
	}
	return s
}

func (s *testStore) append(key int32, x, y, z float32) int {
	i := s.Append()
	s.Key[i] = key
	s.Pos[i*3] = x
	s.Pos[i*3+1] = y
	s.Pos[i*3+2] = z
	return i
}

func TestTableGrowth(t *testing.T) {
	s := newTestStore(0)
	assert.Equal(t, 0, s.Capacity())

	for i := 0; i < 1000; i++ {
		s.append(int32(i), float32(i), 0, 0)
	}
	require.Equal(t, 1000, s.Count())
	require.GreaterOrEqual(t, s.Capacity(), 1000)
	require.Len(t, s.Key, s.Capacity())
	require.Len(t, s.Pos, s.Capacity()*3)

	// Values survive re-allocation.
	for i := 0; i < 1000; i++ {
		assert.Equal(t, int32(i), s.Key[i])
		assert.Equal(t, float32(i), s.Pos[i*3])
	}
}

func TestTableResizeTruncates(t *testing.T) {
	s := newTestStore(0)
	for i := 0; i < 10; i++ {
		s.append(int32(i), 0, 0, 0)
	}
	s.Resize(4)
	assert.Equal(t, 4, s.Count())
	assert.Equal(t, 4, s.Capacity())
	assert.Equal(t, int32(3), s.Key[3])
}

func TestTableInsertRecords(t *testing.T) {
	s := newTestStore(0)
	for i := 0; i < 5; i++ {
		s.append(int32(i), float32(i), 0, 0)
	}

	s.InsertRecords(2, 3)
	require.Equal(t, 8, s.Count())

	// Gap is zeroed, tail shifted intact.
	assert.Equal(t, []int32{0, 1, 0, 0, 0, 2, 3, 4}, s.Key[:8])
	assert.Equal(t, float32(2), s.Pos[5*3])

	// Insert at the end.
	s.InsertRecords(8, 1)
	assert.Equal(t, 9, s.Count())
	assert.Equal(t, int32(0), s.Key[8])
}

func TestTableRemoveRecord(t *testing.T) {
	s := newTestStore(0)
	for i := 0; i < 5; i++ {
		s.append(int32(i), float32(i), 0, 0)
	}

	s.RemoveRecord(1)
	require.Equal(t, 4, s.Count())
	assert.Equal(t, []int32{0, 2, 3, 4}, s.Key[:4])
	assert.Equal(t, float32(2), s.Pos[1*3])

	s.RemoveRecords(2, 2)
	require.Equal(t, 2, s.Count())
	assert.Equal(t, []int32{0, 2}, s.Key[:2])
}

func TestTableCopyWithinOverlap(t *testing.T) {
	s := newTestStore(8)
	for i := 0; i < 6; i++ {
		s.append(int32(i), float32(i), 0, 0)
	}

	// Forward overlap: dst ahead of src.
	s.CopyWithin(2, 0, 4)
	assert.Equal(t, []int32{0, 1, 0, 1, 2, 3}, s.Key[:6])

	// Backward overlap: dst behind src.
	s.CopyWithin(0, 1, 4)
	assert.Equal(t, []int32{1, 0, 1, 2, 2, 3}, s.Key[:6])
}

func TestTableSort(t *testing.T) {
	s := newTestStore(0)
	keys := []int32{5, 3, 9, 1, 7, 3, 0}
	for i, k := range keys {
		s.append(k, float32(i), 0, 0)
	}

	s.Sort(func(i, j int) int { return int(s.Key[i]) - int(s.Key[j]) })

	assert.Equal(t, []int32{0, 1, 3, 3, 5, 7, 9}, s.Key[:7])
	// Whole rows move together: the row with key 9 carried pos 2.
	assert.Equal(t, float32(2), s.Pos[6*3])
}

func TestTableSortTieBreak(t *testing.T) {
	s := newTestStore(0)
	for i := 0; i < 20; i++ {
		s.append(int32(i%3), float32(i), 0, 0)
	}

	// Stability must be encoded in cmp: tie-break on the pos column.
	s.Sort(func(i, j int) int {
		if s.Key[i] != s.Key[j] {
			return int(s.Key[i] - s.Key[j])
		}
		if s.Pos[i*3] < s.Pos[j*3] {
			return -1
		}
		return 1
	})

	for i := 1; i < 20; i++ {
		if s.Key[i] == s.Key[i-1] {
			assert.Less(t, s.Pos[(i-1)*3], s.Pos[i*3])
		} else {
			assert.Less(t, s.Key[i-1], s.Key[i])
		}
	}
}

func TestLazyFieldRegistration(t *testing.T) {
	s := NewAtomStore(0)
	for i := 0; i < 10; i++ {
		s.Append()
	}
	require.Nil(t, s.PartialCharge)

	s.EnsurePartialCharge()
	require.True(t, s.HasPartialCharge())
	// Retro-sized to current capacity.
	assert.Len(t, s.PartialCharge, s.Capacity())

	s.PartialCharge[3] = -0.5
	for i := 10; i < 600; i++ {
		s.Append()
	}
	assert.Equal(t, float32(-0.5), s.PartialCharge[3])
}

func TestPackedNames(t *testing.T) {
	tests := []struct{ in string }{
		{"A"}, {"AB"}, {"ABCD"}, {""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.in, UnpackName(PackName(tt.in)))
	}
	// Longer names truncate to four characters.
	assert.Equal(t, "ABCD", UnpackName(PackName("ABCDE")))
}
