package store

// ChainStore holds the per-chain columns. Chain names are packed four bytes to
// a uint32 so the column stays fixed-width.
type ChainStore struct {
	Table

	ModelIndex    []uint16
	ResidueOffset []uint32
	ResidueCount  []uint32
	EntityIndex   []uint16
	Chainname     []uint32
	Chainid       []uint32
}

// NewChainStore creates an empty chain store with capacity for sizeHint
// records.
func NewChainStore(sizeHint int) *ChainStore {
	s := &ChainStore{}
	AddField(&s.Table, "modelIndex", 1, &s.ModelIndex)
	AddField(&s.Table, "residueOffset", 1, &s.ResidueOffset)
	AddField(&s.Table, "residueCount", 1, &s.ResidueCount)
	AddField(&s.Table, "entityIndex", 1, &s.EntityIndex)
	AddField(&s.Table, "chainname", 1, &s.Chainname)
	AddField(&s.Table, "chainid", 1, &s.Chainid)
	if sizeHint > 0 {
		s.Resize(sizeHint)
	}
	return s
}

// PackName packs up to four bytes of name into a uint32.
func PackName(name string) uint32 {
	var v uint32
	for i := 0; i < len(name) && i < 4; i++ {
		v |= uint32(name[i]) << (8 * i)
	}
	return v
}

// UnpackName reverses PackName.
func UnpackName(v uint32) string {
	var b []byte
	for i := 0; i < 4; i++ {
		c := byte(v >> (8 * i))
		if c == 0 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

// GetChainname returns the chain name of chain i.
func (s *ChainStore) GetChainname(i int) string { return UnpackName(s.Chainname[i]) }

// SetChainname stores up to four characters of name as the chain name of i.
func (s *ChainStore) SetChainname(i int, name string) { s.Chainname[i] = PackName(name) }

// GetChainid returns the chain id of chain i.
func (s *ChainStore) GetChainid(i int) string { return UnpackName(s.Chainid[i]) }

// SetChainid stores up to four characters of id as the chain id of i.
func (s *ChainStore) SetChainid(i int, id string) { s.Chainid[i] = PackName(id) }
