package structure

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// NameIndex is an inverted index from atom name, element and residue name to
// row bitmaps. It is rebuilt by Finalize and serves as a fast path for
// selections that reduce to a single name constraint.
type NameIndex struct {
	atomnames map[string]*roaring.Bitmap // atom rows
	elements  map[string]*roaring.Bitmap // atom rows
	resnames  map[string]*roaring.Bitmap // residue rows
}

// BuildNameIndex scans the structure and builds the inverted index.
func BuildNameIndex(s *Structure) *NameIndex {
	idx := &NameIndex{
		atomnames: make(map[string]*roaring.Bitmap),
		elements:  make(map[string]*roaring.Bitmap),
		resnames:  make(map[string]*roaring.Bitmap),
	}

	ap := s.AtomProxy(0)
	n := s.AtomStore.Count()
	for i := 0; i < n; i++ {
		ap.Index = i
		idx.add(idx.atomnames, ap.Atomname(), i)
		idx.add(idx.elements, ap.Element(), i)
	}

	rp := s.ResidueProxy(0)
	for i := 0; i < s.ResidueStore.Count(); i++ {
		rp.Index = i
		idx.add(idx.resnames, rp.Resname(), i)
	}
	return idx
}

func (idx *NameIndex) add(m map[string]*roaring.Bitmap, key string, row int) {
	if key == "" {
		return
	}
	bm, ok := m[key]
	if !ok {
		bm = roaring.New()
		m[key] = bm
	}
	bm.Add(uint32(row))
}

// AtomsNamed returns the atom rows carrying the given atom name, or nil.
func (idx *NameIndex) AtomsNamed(name string) *roaring.Bitmap {
	return idx.atomnames[name]
}

// AtomsOfElement returns the atom rows carrying the given element, or nil.
func (idx *NameIndex) AtomsOfElement(element string) *roaring.Bitmap {
	return idx.elements[element]
}

// ResiduesNamed returns the residue rows carrying the given residue name,
// or nil.
func (idx *NameIndex) ResiduesNamed(resname string) *roaring.Bitmap {
	return idx.resnames[resname]
}
