package store

import "strings"

// AtomType is an immutable, shared descriptor for (atom name, element).
// Many atom records reference one descriptor through their AtomTypeID.
type AtomType struct {
	Atomname string
	Element  string
	Number   int8
	VdW      float32
	Covalent float32
}

// NewAtomType builds a descriptor, guessing the element from the atom name
// when none is given.
func NewAtomType(atomname, element string) *AtomType {
	element = strings.ToUpper(element)
	if element == "" {
		element = GuessElement(atomname)
	}
	info := lookupElement(element)
	return &AtomType{
		Atomname: atomname,
		Element:  element,
		Number:   info.Number,
		VdW:      info.VdW,
		Covalent: info.Covalent,
	}
}

// IsMetal reports whether the descriptor's element is a metal.
func (at *AtomType) IsMetal() bool {
	return metalNumbers[at.Number]
}

// IsHydrogen reports whether the descriptor is a hydrogen (or deuterium).
func (at *AtomType) IsHydrogen() bool {
	return at.Number == 1
}

// AtomTypeRegistry deduplicates AtomType descriptors. Add returns an existing
// id when the content key matches; Remove retires a descriptor only once no
// atom record references it.
type AtomTypeRegistry struct {
	store *AtomStore
	dict  map[string]uint16
	types map[uint16]*AtomType
	next  uint16
}

// NewAtomTypeRegistry creates a registry scanning the given atom store for
// usage on removal.
func NewAtomTypeRegistry(store *AtomStore) *AtomTypeRegistry {
	return &AtomTypeRegistry{
		store: store,
		dict:  make(map[string]uint16),
		types: make(map[uint16]*AtomType),
	}
}

func atomTypeKey(atomname, element string) string {
	return atomname + "|" + element
}

// Add returns the id of the descriptor for (atomname, element), allocating a
// new one when the content key is unseen.
func (r *AtomTypeRegistry) Add(atomname, element string) uint16 {
	at := NewAtomType(atomname, element)
	key := atomTypeKey(at.Atomname, at.Element)
	if id, ok := r.dict[key]; ok {
		return id
	}
	id := r.next
	r.next++
	r.dict[key] = id
	r.types[id] = at
	return id
}

// Get returns the descriptor for id, or nil.
func (r *AtomTypeRegistry) Get(id uint16) *AtomType {
	return r.types[id]
}

// Remove retires the descriptor for id if no atom record still references it.
// Callers invoke Remove for every row that stops referencing a type; the
// registry, not the caller, decides actual deletion. The usage scan is O(rows).
func (r *AtomTypeRegistry) Remove(id uint16) {
	at, ok := r.types[id]
	if !ok {
		return
	}
	ids := r.store.AtomTypeID
	for i := 0; i < r.store.Count(); i++ {
		if ids[i] == id {
			return
		}
	}
	delete(r.dict, atomTypeKey(at.Atomname, at.Element))
	delete(r.types, id)
}

// Count returns the number of live descriptors.
func (r *AtomTypeRegistry) Count() int {
	return len(r.types)
}
