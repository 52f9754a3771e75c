package structure

import "github.com/hupe1980/molgo/store"

// Mutation engine: structural edits that keep the offset/count contiguity
// invariants intact. Every path that could leave a residue or chain empty
// performs cascading cleanup before returning, and every path that stops
// referencing a type descriptor notifies the owning registry.
//
// All operations are synchronous and single-writer; callers must not hold
// proxies or BitSets across them.

// InsertResidue opens a new residue row at newIndex owned by chainIndex.
// The atom offset/count are placeholders resolved by AssignAtomsToResidue.
// Residue numbers of the shifted rows in the same chain are advanced so chain
// numbering stays monotonic.
func (s *Structure) InsertResidue(chainIndex, newIndex int, rd *ResidueData) {
	rs := s.ResidueStore
	as := s.AtomStore
	cs := s.ChainStore

	// Residue number for the new row: the successor's number when splicing
	// into the middle of the chain, else predecessor + 1.
	resno := int32(1)
	if newIndex < rs.Count() && int(rs.ChainIndex[newIndex]) == chainIndex {
		resno = rs.Resno[newIndex]
	} else if newIndex > 0 && int(rs.ChainIndex[newIndex-1]) == chainIndex {
		resno = rs.Resno[newIndex-1] + 1
	}

	rs.InsertRecords(newIndex, 1)

	// Atoms owned by shifted residues follow their owner.
	for i := 0; i < as.Count(); i++ {
		if int(as.ResidueIndex[i]) >= newIndex {
			as.ResidueIndex[i]++
		}
	}

	// Chains whose slice starts at or after the insertion point move up.
	for c := 0; c < cs.Count(); c++ {
		if c != chainIndex && int(cs.ResidueOffset[c]) >= newIndex {
			cs.ResidueOffset[c]++
		}
	}
	cs.ResidueCount[chainIndex]++

	// Advance numbering of the shifted rows within the same chain.
	for i := newIndex + 1; i < rs.Count(); i++ {
		if int(rs.ChainIndex[i]) == chainIndex {
			rs.Resno[i]++
		}
	}

	rs.ChainIndex[newIndex] = uint32(chainIndex)
	rs.Resno[newIndex] = resno
	rs.Sstruc[newIndex] = rd.Sstruc
	rs.SetInscode(newIndex, rd.Inscode)
	rs.AtomCount[newIndex] = 0
	if newIndex+1 < rs.Count() {
		rs.AtomOffset[newIndex] = rs.AtomOffset[newIndex+1]
	} else {
		rs.AtomOffset[newIndex] = uint32(as.Count())
	}

	s.bumpVersion()
}

// AssignAtomsToResidue fills the residue created by InsertResidue with the
// template's atoms: grows the atom store at the residue's offset, remaps
// every index that references atoms at or after that offset, writes the new
// rows and registers the atom and residue types. Template bonds are copied
// with indices rebased to the new offset.
func (s *Structure) AssignAtomsToResidue(residueIndex int, rd *ResidueData) {
	rs := s.ResidueStore
	as := s.AtomStore

	n := len(rd.Atoms)
	offset := int(rs.AtomOffset[residueIndex])

	as.InsertRecords(offset, n)

	for r := 0; r < rs.Count(); r++ {
		if r != residueIndex && int(rs.AtomOffset[r]) >= offset {
			rs.AtomOffset[r] += uint32(n)
		}
	}
	for _, bs := range s.bondStores() {
		for i := 0; i < bs.Count(); i++ {
			if int(bs.AtomIndex1[i]) >= offset {
				bs.AtomIndex1[i] += uint32(n)
			}
			if int(bs.AtomIndex2[i]) >= offset {
				bs.AtomIndex2[i] += uint32(n)
			}
		}
	}

	typeIDs := make([]uint16, n)
	for k, ad := range rd.Atoms {
		i := offset + k
		as.ResidueIndex[i] = uint32(residueIndex)
		as.X[i] = ad.X
		as.Y[i] = ad.Y
		as.Z[i] = ad.Z
		as.Serial[i] = ad.Serial
		as.Occupancy[i] = ad.Occupancy
		as.Bfactor[i] = ad.Bfactor
		as.SetAltloc(i, ad.Altloc)
		typeIDs[k] = s.AtomTypes.Add(ad.Atomname, ad.Element)
		as.AtomTypeID[i] = typeIDs[k]
	}
	rs.AtomCount[residueIndex] = uint32(n)

	rtID := s.ResidueTypes.Add(rd.Resname, typeIDs, rd.Hetero, "")
	rs.ResidueTypeID[residueIndex] = rtID

	if len(rd.Bonds.AtomIndices1) > 0 {
		if rt := s.ResidueTypes.Get(rtID); rt != nil {
			rt.SetBonds(&rd.Bonds)
		}
		for k := range rd.Bonds.AtomIndices1 {
			s.BondStore.AddBond(
				offset+rd.Bonds.AtomIndices1[k],
				offset+rd.Bonds.AtomIndices2[k],
				rd.Bonds.BondOrders[k],
			)
		}
	}

	s.bumpVersion()
}

// RemoveAtoms deletes count atom rows starting at index: the owning residues'
// atom counts shrink, unused type descriptors are retired (residues keeping
// only part of their atoms are re-registered under a new residue type),
// trailing rows shift down with serials renumbered, bonds touching the removed
// range are dropped and survivors rebased, residues left empty are removed
// with cascade to chains left empty, and derived data is recomputed.
func (s *Structure) RemoveAtoms(index, count int) {
	rs := s.ResidueStore
	as := s.AtomStore

	removedPerResidue := make(map[int]int)
	removedTypes := make(map[uint16]struct{})
	for i := index; i < index+count; i++ {
		removedPerResidue[int(as.ResidueIndex[i])]++
		removedTypes[as.AtomTypeID[i]] = struct{}{}
	}
	for ri, c := range removedPerResidue {
		rs.AtomCount[ri] -= uint32(c)
	}

	// Drop bonds with an endpoint in the removed range; rebase survivors.
	for _, bs := range s.bondStores() {
		keep := 0
		for i := 0; i < bs.Count(); i++ {
			a, b := int(bs.AtomIndex1[i]), int(bs.AtomIndex2[i])
			if (a >= index && a < index+count) || (b >= index && b < index+count) {
				continue
			}
			if a >= index+count {
				a -= count
			}
			if b >= index+count {
				b -= count
			}
			bs.AtomIndex1[keep] = uint32(a)
			bs.AtomIndex2[keep] = uint32(b)
			bs.BondOrder[keep] = bs.BondOrder[i]
			keep++
		}
		bs.SetCount(keep)
	}

	as.RemoveRecords(index, count)
	for i := index; i < as.Count(); i++ {
		as.Serial[i] -= int32(count)
	}

	for id := range removedTypes {
		s.AtomTypes.Remove(id)
	}

	// Partially emptied residues reference new content: re-register their
	// type from the surviving atoms and retire the old descriptor.
	s.rebuildResidueOffsets()
	for ri, c := range removedPerResidue {
		if c == 0 || rs.AtomCount[ri] == 0 {
			continue
		}
		oldID := rs.ResidueTypeID[ri]
		old := s.ResidueTypes.Get(oldID)
		if old == nil {
			continue
		}
		off, end := int(rs.AtomOffset[ri]), int(rs.AtomOffset[ri]+rs.AtomCount[ri])
		ids := make([]uint16, 0, end-off)
		for i := off; i < end; i++ {
			ids = append(ids, as.AtomTypeID[i])
		}
		rs.ResidueTypeID[ri] = s.ResidueTypes.Add(old.Resname, ids, old.Hetero, old.ChemCompType)
		s.ResidueTypes.Remove(oldID)
	}

	s.removeEmptyResidues()
	s.Finalize()
}

// RemoveResidue deletes residue index, through atom removal when the residue
// has atoms (which cascades the empty residue row away), else by splicing the
// row directly. Removing a residue from the middle of a chain leaves the
// chain intact with a numbering gap; the chain is not split at the
// discontinuity.
func (s *Structure) RemoveResidue(index int) {
	rs := s.ResidueStore
	if rs.AtomCount[index] > 0 {
		s.RemoveAtoms(int(rs.AtomOffset[index]), int(rs.AtomCount[index]))
		return
	}
	s.spliceResidue(index)
	s.removeEmptyChains()
	s.Finalize()
}

// RemoveChain deletes chain index and everything it owns.
func (s *Structure) RemoveChain(index int) {
	cs := s.ChainStore
	rs := s.ResidueStore

	first := int(cs.ResidueOffset[index])
	n := int(cs.ResidueCount[index])

	atomStart, atomCount := -1, 0
	for r := first; r < first+n; r++ {
		if rs.AtomCount[r] == 0 {
			continue
		}
		if atomStart < 0 {
			atomStart = int(rs.AtomOffset[r])
		}
		atomCount += int(rs.AtomCount[r])
	}

	if atomStart >= 0 {
		// Residues empty out and cascade, taking the chain with them.
		s.RemoveAtoms(atomStart, atomCount)
		return
	}

	// The chain owned only atom-less residues (or none at all).
	for first < rs.Count() && int(rs.ChainIndex[first]) == index {
		s.spliceResidue(first)
	}
	s.removeEmptyChains()
	s.Finalize()
}

// AppendResiduesToChain grows the chain terminus by the given templates, one
// at a time, aligning each template's backbone to the current terminus
// geometry and recomputing derived data once per appended residue.
func (s *Structure) AppendResiduesToChain(chainIndex int, rds ...*ResidueData) {
	for _, rd := range rds {
		s.AppendResidueToChain(chainIndex, rd)
	}
}

// MutateResidue replaces residue residueIndex with the template, superposing
// the template's backbone onto the existing residue's backbone so the chain
// geometry is preserved. Residue number, insertion code and secondary
// structure tag carry over from the replaced residue.
func (s *Structure) MutateResidue(residueIndex int, rd *ResidueData) {
	rs := s.ResidueStore
	chainIndex := int(rs.ChainIndex[residueIndex])
	oldResno := rs.Resno[residueIndex]
	oldInscode := rs.GetInscode(residueIndex)
	oldSstruc := rs.Sstruc[residueIndex]

	t := rd.Clone()
	superposeBackbone(s, residueIndex, t)

	// Insert the replacement after the old residue, then drop the old one;
	// inserting first keeps the chain from emptying out mid-edit.
	s.InsertResidue(chainIndex, residueIndex+1, t)
	s.AssignAtomsToResidue(residueIndex+1, t)
	s.RemoveResidue(residueIndex)

	// The replacement now occupies the old position; restore its identity and
	// undo the renumbering the insertion applied downstream.
	rs.Resno[residueIndex] = oldResno
	rs.SetInscode(residueIndex, oldInscode)
	rs.Sstruc[residueIndex] = oldSstruc
	for i := residueIndex + 1; i < rs.Count(); i++ {
		if int(rs.ChainIndex[i]) == chainIndex {
			rs.Resno[i]--
		}
	}

	s.Finalize()
}

func (s *Structure) bondStores() [3]*store.BondStore {
	return [3]*store.BondStore{s.BondStore, s.BackboneBondStore, s.RungBondStore}
}

// spliceResidue removes a residue row that owns no atoms, keeping every
// cross-reference consistent.
func (s *Structure) spliceResidue(index int) {
	rs := s.ResidueStore
	as := s.AtomStore
	cs := s.ChainStore

	typeID := rs.ResidueTypeID[index]
	chainIndex := int(rs.ChainIndex[index])

	rs.RemoveRecord(index)
	s.ResidueTypes.Remove(typeID)

	for i := 0; i < as.Count(); i++ {
		if int(as.ResidueIndex[i]) > index {
			as.ResidueIndex[i]--
		}
	}
	cs.ResidueCount[chainIndex]--
	for c := 0; c < cs.Count(); c++ {
		if int(cs.ResidueOffset[c]) > index {
			cs.ResidueOffset[c]--
		}
	}
}

// removeEmptyResidues splices every residue left with zero atoms, then every
// chain left with zero residues.
func (s *Structure) removeEmptyResidues() {
	rs := s.ResidueStore
	for i := rs.Count() - 1; i >= 0; i-- {
		if rs.AtomCount[i] == 0 {
			s.spliceResidue(i)
		}
	}
	s.removeEmptyChains()
}

// removeEmptyChains splices every chain left with zero residues.
func (s *Structure) removeEmptyChains() {
	cs := s.ChainStore
	rs := s.ResidueStore
	ms := s.ModelStore

	for c := cs.Count() - 1; c >= 0; c-- {
		if cs.ResidueCount[c] != 0 {
			continue
		}
		modelIndex := int(cs.ModelIndex[c])
		cs.RemoveRecord(c)
		ms.ChainCount[modelIndex]--
		for r := 0; r < rs.Count(); r++ {
			if int(rs.ChainIndex[r]) > c {
				rs.ChainIndex[r]--
			}
		}
		for m := 0; m < ms.Count(); m++ {
			if int(ms.ChainOffset[m]) > c {
				ms.ChainOffset[m]--
			}
		}
	}
}

// rebuildResidueOffsets recomputes every residue's atom offset as the running
// sum of atom counts in residue order. Valid because a residue's atoms are
// contiguous and stored in residue order.
func (s *Structure) rebuildResidueOffsets() {
	rs := s.ResidueStore
	total := uint32(0)
	for i := 0; i < rs.Count(); i++ {
		rs.AtomOffset[i] = total
		total += rs.AtomCount[i]
	}
}
