package structure

import "github.com/hupe1980/molgo/store"

// AtomProxy is a flyweight view over one atom record. Re-pointing the proxy
// (assigning Index) is O(1) and allocation-free; it is the iteration primitive
// of every traversal.
//
// A proxy is a scoped, single-use-at-a-time cursor: holding one across a
// mutation that shifts rows yields stale reads.
type AtomProxy struct {
	Structure *Structure
	Index     int

	as *store.AtomStore
	rs *store.ResidueStore
	cs *store.ChainStore
}

// AtomProxy returns a new proxy pointed at atom index.
func (s *Structure) AtomProxy(index int) *AtomProxy {
	return &AtomProxy{
		Structure: s,
		Index:     index,
		as:        s.AtomStore,
		rs:        s.ResidueStore,
		cs:        s.ChainStore,
	}
}

// X returns the x coordinate.
func (p *AtomProxy) X() float32 { return p.as.X[p.Index] }

// Y returns the y coordinate.
func (p *AtomProxy) Y() float32 { return p.as.Y[p.Index] }

// Z returns the z coordinate.
func (p *AtomProxy) Z() float32 { return p.as.Z[p.Index] }

// Serial returns the atom serial number.
func (p *AtomProxy) Serial() int32 { return p.as.Serial[p.Index] }

// Occupancy returns the occupancy.
func (p *AtomProxy) Occupancy() float32 { return p.as.Occupancy[p.Index] }

// Bfactor returns the temperature factor.
func (p *AtomProxy) Bfactor() float32 { return p.as.Bfactor[p.Index] }

// Altloc returns the alternate-location code, "" when blank.
func (p *AtomProxy) Altloc() string { return p.as.GetAltloc(p.Index) }

// ResidueIndex returns the owning residue's index.
func (p *AtomProxy) ResidueIndex() int { return int(p.as.ResidueIndex[p.Index]) }

// ChainIndex returns the owning chain's index.
func (p *AtomProxy) ChainIndex() int { return int(p.rs.ChainIndex[p.ResidueIndex()]) }

// ModelIndex returns the owning model's index.
func (p *AtomProxy) ModelIndex() int { return int(p.cs.ModelIndex[p.ChainIndex()]) }

// AtomType returns the shared atom-type descriptor.
func (p *AtomProxy) AtomType() *store.AtomType {
	return p.Structure.AtomTypes.Get(p.as.AtomTypeID[p.Index])
}

// ResidueType returns the owning residue's shared type descriptor.
func (p *AtomProxy) ResidueType() *store.ResidueType {
	return p.Structure.ResidueTypes.Get(p.rs.ResidueTypeID[p.ResidueIndex()])
}

// Atomname returns the atom name.
func (p *AtomProxy) Atomname() string {
	if at := p.AtomType(); at != nil {
		return at.Atomname
	}
	return ""
}

// Element returns the element symbol.
func (p *AtomProxy) Element() string {
	if at := p.AtomType(); at != nil {
		return at.Element
	}
	return ""
}

// Resname returns the owning residue's name.
func (p *AtomProxy) Resname() string {
	if rt := p.ResidueType(); rt != nil {
		return rt.Resname
	}
	return ""
}

// Resno returns the owning residue's number.
func (p *AtomProxy) Resno() int32 { return p.rs.Resno[p.ResidueIndex()] }

// Inscode returns the owning residue's insertion code, "" when blank.
func (p *AtomProxy) Inscode() string { return p.rs.GetInscode(p.ResidueIndex()) }

// Sstruc returns the owning residue's secondary-structure tag.
func (p *AtomProxy) Sstruc() uint8 { return p.rs.Sstruc[p.ResidueIndex()] }

// Chainname returns the owning chain's name.
func (p *AtomProxy) Chainname() string { return p.cs.GetChainname(p.ChainIndex()) }

// indexInResidue returns the residue-local offset of this atom.
func (p *AtomProxy) indexInResidue() int {
	return p.Index - int(p.rs.AtomOffset[p.ResidueIndex()])
}

// IsBackbone reports whether the atom plays a backbone role in its residue's
// polymer class.
func (p *AtomProxy) IsBackbone() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsBackboneAtom(p.indexInResidue(), p.Structure.AtomTypes)
}

// IsSidechain reports whether the atom belongs to a polymer residue but is
// not backbone.
func (p *AtomProxy) IsSidechain() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsPolymer() && !rt.IsBackboneAtom(p.indexInResidue(), p.Structure.AtomTypes)
}

// IsPolymer reports whether the owning residue is part of a polymer.
func (p *AtomProxy) IsPolymer() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsPolymer()
}

// IsProtein reports whether the owning residue is an amino acid.
func (p *AtomProxy) IsProtein() bool {
	rt := p.ResidueType()
	return rt != nil && rt.MoleculeType == store.MoleculeProtein
}

// IsNucleic reports whether the owning residue is a nucleotide.
func (p *AtomProxy) IsNucleic() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsNucleic()
}

// IsRna reports whether the owning residue is an RNA nucleotide.
func (p *AtomProxy) IsRna() bool {
	rt := p.ResidueType()
	return rt != nil && rt.MoleculeType == store.MoleculeRNA
}

// IsDna reports whether the owning residue is a DNA nucleotide.
func (p *AtomProxy) IsDna() bool {
	rt := p.ResidueType()
	return rt != nil && rt.MoleculeType == store.MoleculeDNA
}

// IsWater reports whether the owning residue is a water molecule.
func (p *AtomProxy) IsWater() bool {
	rt := p.ResidueType()
	return rt != nil && rt.MoleculeType == store.MoleculeWater
}

// IsIon reports whether the owning residue is a free ion.
func (p *AtomProxy) IsIon() bool {
	rt := p.ResidueType()
	return rt != nil && rt.MoleculeType == store.MoleculeIon
}

// IsSaccharide reports whether the owning residue is a sugar.
func (p *AtomProxy) IsSaccharide() bool {
	rt := p.ResidueType()
	return rt != nil && rt.MoleculeType == store.MoleculeSaccharide
}

// IsHetero reports the owning residue's heteroatom flag.
func (p *AtomProxy) IsHetero() bool {
	rt := p.ResidueType()
	return rt != nil && rt.Hetero
}

// IsMetal reports whether the atom's element is a metal.
func (p *AtomProxy) IsMetal() bool {
	at := p.AtomType()
	return at != nil && at.IsMetal()
}

// IsBonded reports whether the atom participates in at least one bond.
// Valid after Finalize.
func (p *AtomProxy) IsBonded() bool {
	return p.Structure.IsBonded(p.Index)
}

// IsRing reports whether the atom is part of an intra-residue ring.
func (p *AtomProxy) IsRing() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsRingAtom(p.indexInResidue())
}

// IsAromaticRing reports whether the atom is part of an aromatic ring.
func (p *AtomProxy) IsAromaticRing() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsAromaticRingAtom(p.indexInResidue())
}

// IsPolarHydrogen reports whether the atom is a hydrogen bonded to anything
// but carbon. Valid after Finalize.
func (p *AtomProxy) IsPolarHydrogen() bool {
	at := p.AtomType()
	if at == nil || !at.IsHydrogen() {
		return false
	}
	for _, ni := range p.Structure.BondedAtomIndices(p.Index) {
		nat := p.Structure.AtomTypes.Get(p.as.AtomTypeID[ni])
		if nat != nil && nat.Number == 6 {
			return false
		}
	}
	return p.Structure.IsBonded(p.Index)
}

// IsHelix reports whether the owning residue carries a helix tag.
func (p *AtomProxy) IsHelix() bool { return store.IsHelixTag(p.Sstruc()) }

// IsSheet reports whether the owning residue carries a sheet tag.
func (p *AtomProxy) IsSheet() bool { return store.IsSheetTag(p.Sstruc()) }

// IsTurn reports whether the owning residue carries a turn tag.
func (p *AtomProxy) IsTurn() bool { return store.IsTurnTag(p.Sstruc()) }
