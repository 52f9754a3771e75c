package store

// AtomStore holds the per-atom columns. Atoms of one residue occupy a
// contiguous index range described by the owning ResidueStore record.
type AtomStore struct {
	Table

	ResidueIndex []uint32
	AtomTypeID   []uint16
	X            []float32
	Y            []float32
	Z            []float32
	Serial       []int32
	Bfactor      []float32
	Occupancy    []float32
	Altloc       []uint8

	// Charge columns are registered lazily; most loaders never populate them.
	PartialCharge []float32
	FormalCharge  []int8

	hasPartialCharge bool
	hasFormalCharge  bool
}

// NewAtomStore creates an empty atom store with capacity for sizeHint records.
func NewAtomStore(sizeHint int) *AtomStore {
	s := &AtomStore{}
	AddField(&s.Table, "residueIndex", 1, &s.ResidueIndex)
	AddField(&s.Table, "atomTypeId", 1, &s.AtomTypeID)
	AddField(&s.Table, "x", 1, &s.X)
	AddField(&s.Table, "y", 1, &s.Y)
	AddField(&s.Table, "z", 1, &s.Z)
	AddField(&s.Table, "serial", 1, &s.Serial)
	AddField(&s.Table, "bfactor", 1, &s.Bfactor)
	AddField(&s.Table, "occupancy", 1, &s.Occupancy)
	AddField(&s.Table, "altloc", 1, &s.Altloc)
	if sizeHint > 0 {
		s.Resize(sizeHint)
	}
	return s
}

// EnsurePartialCharge registers the partial-charge column on first use.
func (s *AtomStore) EnsurePartialCharge() {
	if !s.hasPartialCharge {
		AddField(&s.Table, "partialCharge", 1, &s.PartialCharge)
		s.hasPartialCharge = true
	}
}

// EnsureFormalCharge registers the formal-charge column on first use.
func (s *AtomStore) EnsureFormalCharge() {
	if !s.hasFormalCharge {
		AddField(&s.Table, "formalCharge", 1, &s.FormalCharge)
		s.hasFormalCharge = true
	}
}

// HasPartialCharge reports whether the partial-charge column exists.
func (s *AtomStore) HasPartialCharge() bool { return s.hasPartialCharge }

// HasFormalCharge reports whether the formal-charge column exists.
func (s *AtomStore) HasFormalCharge() bool { return s.hasFormalCharge }

// GetAltloc returns the alternate-location code of atom i, "" when blank.
func (s *AtomStore) GetAltloc(i int) string {
	if s.Altloc[i] == 0 {
		return ""
	}
	return string(rune(s.Altloc[i]))
}

// SetAltloc stores the first byte of code as the altloc of atom i.
func (s *AtomStore) SetAltloc(i int, code string) {
	if code == "" {
		s.Altloc[i] = 0
		return
	}
	s.Altloc[i] = code[0]
}
