package structure

import "log/slog"

// Builder is the loader-facing appender. Loaders call the Add methods in
// strictly ascending order per entity level (model, chain, residue, atom) and
// Finish exactly once after all rows are written; Finish registers the final
// residue type and runs the finalize step.
//
// All atom and residue types are registered through the registries; loaders
// never write raw type ids.
type Builder struct {
	s *Structure

	curModel   int
	curChain   int
	curResidue int

	curResAtoms []uint16
	curResname  string
	curHetero   bool
	curChem     string
}

// NewBuilder creates a builder over a fresh structure.
func NewBuilder(name string, logger *slog.Logger) *Builder {
	return &Builder{
		s:          New(name, logger),
		curModel:   -1,
		curChain:   -1,
		curResidue: -1,
	}
}

// AddModel starts a new model.
func (b *Builder) AddModel() int {
	b.closeResidue()
	ms := b.s.ModelStore
	i := ms.Append()
	ms.ChainOffset[i] = uint32(b.s.ChainStore.Count())
	ms.ChainCount[i] = 0
	b.curModel = i
	b.curChain = -1
	return i
}

// AddChain starts a new chain in the current model.
func (b *Builder) AddChain(chainname, chainid string) int {
	b.closeResidue()
	cs := b.s.ChainStore
	i := cs.Append()
	cs.ModelIndex[i] = uint16(b.curModel)
	cs.ResidueOffset[i] = uint32(b.s.ResidueStore.Count())
	cs.ResidueCount[i] = 0
	cs.SetChainname(i, chainname)
	cs.SetChainid(i, chainid)
	b.s.ModelStore.ChainCount[b.curModel]++
	b.curChain = i
	return i
}

// AddResidue starts a new residue in the current chain.
func (b *Builder) AddResidue(resname string, resno int32, hetero bool, sstruc uint8, inscode string) int {
	b.closeResidue()
	rs := b.s.ResidueStore
	i := rs.Append()
	rs.ChainIndex[i] = uint32(b.curChain)
	rs.AtomOffset[i] = uint32(b.s.AtomStore.Count())
	rs.AtomCount[i] = 0
	rs.Resno[i] = resno
	rs.Sstruc[i] = sstruc
	rs.SetInscode(i, inscode)
	b.s.ChainStore.ResidueCount[b.curChain]++

	b.curResidue = i
	b.curResAtoms = b.curResAtoms[:0]
	b.curResname = resname
	b.curHetero = hetero
	b.curChem = ""
	return i
}

// AddAtom appends an atom to the current residue and returns its index.
// Optional columns (occupancy, bfactor, altloc, charges) are written through
// the returned index.
func (b *Builder) AddAtom(atomname, element string, x, y, z float32, serial int32) int {
	as := b.s.AtomStore
	i := as.Append()
	as.ResidueIndex[i] = uint32(b.curResidue)
	as.X[i] = x
	as.Y[i] = y
	as.Z[i] = z
	as.Serial[i] = serial
	as.Occupancy[i] = 1

	id := b.s.AtomTypes.Add(atomname, element)
	as.AtomTypeID[i] = id
	b.curResAtoms = append(b.curResAtoms, id)
	b.s.ResidueStore.AtomCount[b.curResidue]++
	return i
}

// closeResidue registers the residue type of the residue under construction.
func (b *Builder) closeResidue() {
	if b.curResidue < 0 {
		return
	}
	id := b.s.ResidueTypes.Add(b.curResname, b.curResAtoms, b.curHetero, b.curChem)
	b.s.ResidueStore.ResidueTypeID[b.curResidue] = id
	b.curResidue = -1
}

// Structure returns the structure under construction without finalizing.
func (b *Builder) Structure() *Structure { return b.s }

// Finish registers the trailing residue type, finalizes derived data and
// returns the completed structure.
func (b *Builder) Finish() *Structure {
	b.closeResidue()
	b.s.Finalize()
	return b.s
}
