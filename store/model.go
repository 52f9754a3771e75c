package store

// ModelStore holds the per-model columns. ChainOffset/ChainCount describe a
// contiguous slice into the ChainStore.
type ModelStore struct {
	Table

	ChainOffset []uint32
	ChainCount  []uint32
}

// NewModelStore creates an empty model store with capacity for sizeHint
// records.
func NewModelStore(sizeHint int) *ModelStore {
	s := &ModelStore{}
	AddField(&s.Table, "chainOffset", 1, &s.ChainOffset)
	AddField(&s.Table, "chainCount", 1, &s.ChainCount)
	if sizeHint > 0 {
		s.Resize(sizeHint)
	}
	return s
}
