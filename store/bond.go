package store

// BondStore holds atom-index pairs with a bond order. The same type backs the
// general bond set, the backbone-only set and the rung (base-pairing) set.
type BondStore struct {
	Table

	AtomIndex1 []uint32
	AtomIndex2 []uint32
	BondOrder  []uint8
}

// NewBondStore creates an empty bond store with capacity for sizeHint records.
func NewBondStore(sizeHint int) *BondStore {
	s := &BondStore{}
	AddField(&s.Table, "atomIndex1", 1, &s.AtomIndex1)
	AddField(&s.Table, "atomIndex2", 1, &s.AtomIndex2)
	AddField(&s.Table, "bondOrder", 1, &s.BondOrder)
	if sizeHint > 0 {
		s.Resize(sizeHint)
	}
	return s
}

// AddBond appends a bond between atom indices a and b with the given order.
// The pair is stored with the smaller index first.
func (s *BondStore) AddBond(a, b int, order int) {
	if b < a {
		a, b = b, a
	}
	i := s.Append()
	s.AtomIndex1[i] = uint32(a)
	s.AtomIndex2[i] = uint32(b)
	s.BondOrder[i] = uint8(order)
}

// Clear drops all bonds but keeps the allocated capacity.
func (s *BondStore) Clear() {
	s.SetCount(0)
}
