package store

// Secondary-structure tags stored per residue. The tag vocabulary follows the
// DSSP single-letter codes.
const (
	SstrucCoil     = 'l'
	SstrucHelix    = 'h'
	SstrucHelix310 = 'g'
	SstrucHelixPi  = 'i'
	SstrucSheet    = 'e'
	SstrucBridge   = 'b'
	SstrucTurn     = 't'
	SstrucBend     = 's'
)

// IsHelixTag reports whether the tag marks any helix class.
func IsHelixTag(tag uint8) bool {
	return tag == SstrucHelix || tag == SstrucHelix310 || tag == SstrucHelixPi
}

// IsSheetTag reports whether the tag marks a strand or bridge.
func IsSheetTag(tag uint8) bool {
	return tag == SstrucSheet || tag == SstrucBridge
}

// IsTurnTag reports whether the tag marks a turn or bend.
func IsTurnTag(tag uint8) bool {
	return tag == SstrucTurn || tag == SstrucBend
}

// ResidueStore holds the per-residue columns. AtomOffset/AtomCount describe a
// contiguous slice into the AtomStore; after every mutation the slice exactly
// covers the atoms whose ResidueIndex equals the record index.
type ResidueStore struct {
	Table

	ChainIndex    []uint32
	AtomOffset    []uint32
	AtomCount     []uint32
	ResidueTypeID []uint16
	Resno         []int32
	Sstruc        []uint8
	Inscode       []uint8
}

// NewResidueStore creates an empty residue store with capacity for sizeHint
// records.
func NewResidueStore(sizeHint int) *ResidueStore {
	s := &ResidueStore{}
	AddField(&s.Table, "chainIndex", 1, &s.ChainIndex)
	AddField(&s.Table, "atomOffset", 1, &s.AtomOffset)
	AddField(&s.Table, "atomCount", 1, &s.AtomCount)
	AddField(&s.Table, "residueTypeId", 1, &s.ResidueTypeID)
	AddField(&s.Table, "resno", 1, &s.Resno)
	AddField(&s.Table, "sstruc", 1, &s.Sstruc)
	AddField(&s.Table, "inscode", 1, &s.Inscode)
	if sizeHint > 0 {
		s.Resize(sizeHint)
	}
	return s
}

// GetInscode returns the insertion code of residue i, "" when blank.
func (s *ResidueStore) GetInscode(i int) string {
	if s.Inscode[i] == 0 {
		return ""
	}
	return string(rune(s.Inscode[i]))
}

// SetInscode stores the first byte of code as the insertion code of residue i.
func (s *ResidueStore) SetInscode(i int, code string) {
	if code == "" {
		s.Inscode[i] = 0
		return
	}
	s.Inscode[i] = code[0]
}
