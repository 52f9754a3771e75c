package structure

import "github.com/hupe1980/molgo/store"

// ResidueProxy is a flyweight view over one residue record.
type ResidueProxy struct {
	Structure *Structure
	Index     int

	rs *store.ResidueStore
	cs *store.ChainStore
}

// ResidueProxy returns a new proxy pointed at residue index.
func (s *Structure) ResidueProxy(index int) *ResidueProxy {
	return &ResidueProxy{
		Structure: s,
		Index:     index,
		rs:        s.ResidueStore,
		cs:        s.ChainStore,
	}
}

// ChainIndex returns the owning chain's index.
func (p *ResidueProxy) ChainIndex() int { return int(p.rs.ChainIndex[p.Index]) }

// ModelIndex returns the owning model's index.
func (p *ResidueProxy) ModelIndex() int { return int(p.cs.ModelIndex[p.ChainIndex()]) }

// AtomOffset returns the index of the residue's first atom.
func (p *ResidueProxy) AtomOffset() int { return int(p.rs.AtomOffset[p.Index]) }

// AtomCount returns the number of atoms in the residue.
func (p *ResidueProxy) AtomCount() int { return int(p.rs.AtomCount[p.Index]) }

// AtomEnd returns one past the index of the residue's last atom.
func (p *ResidueProxy) AtomEnd() int { return p.AtomOffset() + p.AtomCount() }

// Resno returns the residue number.
func (p *ResidueProxy) Resno() int32 { return p.rs.Resno[p.Index] }

// Inscode returns the insertion code, "" when blank.
func (p *ResidueProxy) Inscode() string { return p.rs.GetInscode(p.Index) }

// Sstruc returns the secondary-structure tag.
func (p *ResidueProxy) Sstruc() uint8 { return p.rs.Sstruc[p.Index] }

// Chainname returns the owning chain's name.
func (p *ResidueProxy) Chainname() string { return p.cs.GetChainname(p.ChainIndex()) }

// ResidueType returns the shared type descriptor.
func (p *ResidueProxy) ResidueType() *store.ResidueType {
	return p.Structure.ResidueTypes.Get(p.rs.ResidueTypeID[p.Index])
}

// Resname returns the residue name.
func (p *ResidueProxy) Resname() string {
	if rt := p.ResidueType(); rt != nil {
		return rt.Resname
	}
	return ""
}

// MoleculeType returns the residue's polymer classification.
func (p *ResidueProxy) MoleculeType() store.MoleculeType {
	if rt := p.ResidueType(); rt != nil {
		return rt.MoleculeType
	}
	return store.MoleculeUnknown
}

// IsProtein reports whether the residue is an amino acid.
func (p *ResidueProxy) IsProtein() bool { return p.MoleculeType() == store.MoleculeProtein }

// IsNucleic reports whether the residue is a nucleotide.
func (p *ResidueProxy) IsNucleic() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsNucleic()
}

// IsRna reports whether the residue is an RNA nucleotide.
func (p *ResidueProxy) IsRna() bool { return p.MoleculeType() == store.MoleculeRNA }

// IsDna reports whether the residue is a DNA nucleotide.
func (p *ResidueProxy) IsDna() bool { return p.MoleculeType() == store.MoleculeDNA }

// IsWater reports whether the residue is a water molecule.
func (p *ResidueProxy) IsWater() bool { return p.MoleculeType() == store.MoleculeWater }

// IsIon reports whether the residue is a free ion.
func (p *ResidueProxy) IsIon() bool { return p.MoleculeType() == store.MoleculeIon }

// IsSaccharide reports whether the residue is a sugar.
func (p *ResidueProxy) IsSaccharide() bool { return p.MoleculeType() == store.MoleculeSaccharide }

// IsPolymer reports whether the residue belongs to a polymer class.
func (p *ResidueProxy) IsPolymer() bool {
	rt := p.ResidueType()
	return rt != nil && rt.IsPolymer()
}

// IsHetero reports the heteroatom flag.
func (p *ResidueProxy) IsHetero() bool {
	rt := p.ResidueType()
	return rt != nil && rt.Hetero
}

// IsHelix reports whether the residue carries a helix tag.
func (p *ResidueProxy) IsHelix() bool { return store.IsHelixTag(p.Sstruc()) }

// IsSheet reports whether the residue carries a sheet tag.
func (p *ResidueProxy) IsSheet() bool { return store.IsSheetTag(p.Sstruc()) }

// IsTurn reports whether the residue carries a turn tag.
func (p *ResidueProxy) IsTurn() bool { return store.IsTurnTag(p.Sstruc()) }

// EachAtom calls fn with a reused atom proxy for every atom of the residue.
func (p *ResidueProxy) EachAtom(fn func(*AtomProxy), test func(*AtomProxy) bool) {
	ap := p.Structure.AtomProxy(0)
	end := p.AtomEnd()
	for i := p.AtomOffset(); i < end; i++ {
		ap.Index = i
		if test != nil && !test(ap) {
			continue
		}
		fn(ap)
	}
}

// FindAtomIndex returns the structure-level index of the first atom with the
// given name, or -1.
func (p *ResidueProxy) FindAtomIndex(name string) int {
	rt := p.ResidueType()
	if rt == nil {
		return -1
	}
	local := rt.AtomIndexByName(name, p.Structure.AtomTypes)
	if local < 0 || local >= p.AtomCount() {
		return -1
	}
	return p.AtomOffset() + local
}

// TraceAtomIndex returns the structure-level index of the trace atom
// (CA for protein, C4' for nucleic), or -1.
func (p *ResidueProxy) TraceAtomIndex() int {
	rt := p.ResidueType()
	if rt == nil || rt.TraceAtomIndex < 0 || rt.TraceAtomIndex >= p.AtomCount() {
		return -1
	}
	return p.AtomOffset() + rt.TraceAtomIndex
}

// BackboneStartAtomIndex returns the structure-level index of the backbone
// start atom (N / P), or -1.
func (p *ResidueProxy) BackboneStartAtomIndex() int {
	rt := p.ResidueType()
	if rt == nil || rt.BackboneStartAtomIndex < 0 || rt.BackboneStartAtomIndex >= p.AtomCount() {
		return -1
	}
	return p.AtomOffset() + rt.BackboneStartAtomIndex
}

// BackboneEndAtomIndex returns the structure-level index of the backbone end
// atom (C / O3'), or -1.
func (p *ResidueProxy) BackboneEndAtomIndex() int {
	rt := p.ResidueType()
	if rt == nil || rt.BackboneEndAtomIndex < 0 || rt.BackboneEndAtomIndex >= p.AtomCount() {
		return -1
	}
	return p.AtomOffset() + rt.BackboneEndAtomIndex
}

// RungEndAtomIndex returns the structure-level index of the rung end atom of
// a nucleotide, or -1.
func (p *ResidueProxy) RungEndAtomIndex() int {
	rt := p.ResidueType()
	if rt == nil || rt.RungEndAtomIndex < 0 || rt.RungEndAtomIndex >= p.AtomCount() {
		return -1
	}
	return p.AtomOffset() + rt.RungEndAtomIndex
}

// ChainProxy is a flyweight view over one chain record.
type ChainProxy struct {
	Structure *Structure
	Index     int

	cs *store.ChainStore
}

// ChainProxy returns a new proxy pointed at chain index.
func (s *Structure) ChainProxy(index int) *ChainProxy {
	return &ChainProxy{Structure: s, Index: index, cs: s.ChainStore}
}

// ModelIndex returns the owning model's index.
func (p *ChainProxy) ModelIndex() int { return int(p.cs.ModelIndex[p.Index]) }

// ResidueOffset returns the index of the chain's first residue.
func (p *ChainProxy) ResidueOffset() int { return int(p.cs.ResidueOffset[p.Index]) }

// ResidueCount returns the number of residues in the chain.
func (p *ChainProxy) ResidueCount() int { return int(p.cs.ResidueCount[p.Index]) }

// ResidueEnd returns one past the index of the chain's last residue.
func (p *ChainProxy) ResidueEnd() int { return p.ResidueOffset() + p.ResidueCount() }

// Chainname returns the chain name.
func (p *ChainProxy) Chainname() string { return p.cs.GetChainname(p.Index) }

// Chainid returns the chain id.
func (p *ChainProxy) Chainid() string { return p.cs.GetChainid(p.Index) }

// EntityIndex returns the entity index.
func (p *ChainProxy) EntityIndex() int { return int(p.cs.EntityIndex[p.Index]) }

// EachResidue calls fn with a reused residue proxy for every residue of the
// chain.
func (p *ChainProxy) EachResidue(fn func(*ResidueProxy), test func(*ResidueProxy) bool) {
	rp := p.Structure.ResidueProxy(0)
	end := p.ResidueEnd()
	for i := p.ResidueOffset(); i < end; i++ {
		rp.Index = i
		if test != nil && !test(rp) {
			continue
		}
		fn(rp)
	}
}

// ModelProxy is a flyweight view over one model record.
type ModelProxy struct {
	Structure *Structure
	Index     int

	ms *store.ModelStore
}

// ModelProxy returns a new proxy pointed at model index.
func (s *Structure) ModelProxy(index int) *ModelProxy {
	return &ModelProxy{Structure: s, Index: index, ms: s.ModelStore}
}

// ChainOffset returns the index of the model's first chain.
func (p *ModelProxy) ChainOffset() int { return int(p.ms.ChainOffset[p.Index]) }

// ChainCount returns the number of chains in the model.
func (p *ModelProxy) ChainCount() int { return int(p.ms.ChainCount[p.Index]) }

// EachChain calls fn with a reused chain proxy for every chain of the model.
func (p *ModelProxy) EachChain(fn func(*ChainProxy), test func(*ChainProxy) bool) {
	cp := p.Structure.ChainProxy(0)
	end := p.ChainOffset() + p.ChainCount()
	for i := p.ChainOffset(); i < end; i++ {
		cp.Index = i
		if test != nil && !test(cp) {
			continue
		}
		fn(cp)
	}
}
