package structure

import "github.com/hupe1980/molgo/store"

// AtomData is one atom of a residue template.
type AtomData struct {
	Atomname  string
	Element   string
	X, Y, Z   float32
	Serial    int32
	Occupancy float32
	Bfactor   float32
	Altloc    string
}

// ResidueData is a detached residue template used by the mutation engine:
// either extracted from an existing structure or supplied by a template
// library. Bond indices are residue-local.
type ResidueData struct {
	Resname string
	Hetero  bool
	Inscode string
	Sstruc  uint8
	Resno   int32
	Atoms   []AtomData
	Bonds   store.ResidueBonds
}

// Clone returns a deep copy, so geometry transforms never touch the caller's
// template.
func (rd *ResidueData) Clone() *ResidueData {
	out := *rd
	out.Atoms = append([]AtomData(nil), rd.Atoms...)
	out.Bonds = store.ResidueBonds{
		AtomIndices1: append([]int(nil), rd.Bonds.AtomIndices1...),
		AtomIndices2: append([]int(nil), rd.Bonds.AtomIndices2...),
		BondOrders:   append([]int(nil), rd.Bonds.BondOrders...),
	}
	return &out
}

// AtomIndexByName returns the template-local index of the first atom with the
// given name, or -1.
func (rd *ResidueData) AtomIndexByName(name string) int {
	for i := range rd.Atoms {
		if rd.Atoms[i].Atomname == name {
			return i
		}
	}
	return -1
}

// ExtractResidue copies residue residueIndex of s into a detached template,
// including its intra-residue bonds rebased to residue-local indices.
func ExtractResidue(s *Structure, residueIndex int) *ResidueData {
	rp := s.ResidueProxy(residueIndex)
	as := s.AtomStore

	rd := &ResidueData{
		Resname: rp.Resname(),
		Inscode: rp.Inscode(),
		Sstruc:  rp.Sstruc(),
		Resno:   rp.Resno(),
	}
	if rt := rp.ResidueType(); rt != nil {
		rd.Hetero = rt.Hetero
	}

	off, end := rp.AtomOffset(), rp.AtomEnd()
	for i := off; i < end; i++ {
		at := s.AtomTypes.Get(as.AtomTypeID[i])
		ad := AtomData{
			X: as.X[i], Y: as.Y[i], Z: as.Z[i],
			Serial:    as.Serial[i],
			Occupancy: as.Occupancy[i],
			Bfactor:   as.Bfactor[i],
			Altloc:    as.GetAltloc(i),
		}
		if at != nil {
			ad.Atomname = at.Atomname
			ad.Element = at.Element
		}
		rd.Atoms = append(rd.Atoms, ad)
	}

	bs := s.BondStore
	for i := 0; i < bs.Count(); i++ {
		a, b := int(bs.AtomIndex1[i]), int(bs.AtomIndex2[i])
		if a >= off && a < end && b >= off && b < end {
			rd.Bonds.AtomIndices1 = append(rd.Bonds.AtomIndices1, a-off)
			rd.Bonds.AtomIndices2 = append(rd.Bonds.AtomIndices2, b-off)
			rd.Bonds.BondOrders = append(rd.Bonds.BondOrders, int(bs.BondOrder[i]))
		}
	}
	return rd
}
