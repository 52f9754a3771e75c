package structure

import "math"

// Bond-length limits in length units (Angstrom).
const (
	peptideBondMax   = 1.9 // C-N / O3'-P linkage upper bound
	disulfideBondMax = 2.5 // SG-SG upper bound
)

// CalculateBonds re-derives all three bond sets from the current store
// contents: intra-residue bonds from the shared residue-type topology,
// inter-residue polymer linkages, disulfide bridges found through the spatial
// index, trace-to-trace backbone bonds and nucleic rung bonds.
func CalculateBonds(s *Structure) {
	s.BondStore.Clear()
	s.BackboneBondStore.Clear()
	s.RungBondStore.Clear()

	calculateBondsWithin(s)
	calculateBondsBetween(s)
	calculateDisulfides(s)
}

// calculateBondsWithin adds every residue's intra-residue bonds, rebased from
// residue-local to structure-level atom indices.
func calculateBondsWithin(s *Structure) {
	as := s.AtomStore
	rp := s.ResidueProxy(0)
	n := s.ResidueStore.Count()
	for i := 0; i < n; i++ {
		rp.Index = i
		rt := rp.ResidueType()
		if rt == nil || rp.AtomCount() < 2 {
			continue
		}
		off, end := rp.AtomOffset(), rp.AtomEnd()
		bonds := rt.Bonds(s.AtomTypes, as.X[off:end], as.Y[off:end], as.Z[off:end])
		for k := range bonds.AtomIndices1 {
			a := off + bonds.AtomIndices1[k]
			b := off + bonds.AtomIndices2[k]
			if a < end && b < end {
				s.BondStore.AddBond(a, b, bonds.BondOrders[k])
			}
		}

		// Nucleic rung: trace atom to base nitrogen.
		if rt.IsNucleic() {
			if t, r := rp.TraceAtomIndex(), rp.RungEndAtomIndex(); t >= 0 && r >= 0 {
				s.RungBondStore.AddBond(t, r, 1)
			}
		}
	}
}

// calculateBondsBetween connects consecutive polymer residues of a chain:
// backbone-end to backbone-start in the general set, trace to trace in the
// backbone-only set.
func calculateBondsBetween(s *Structure) {
	s.EachResidueN(2, func(w []*ResidueProxy) {
		r1, r2 := w[0], w[1]
		t1, t2 := r1.ResidueType(), r2.ResidueType()
		if t1 == nil || t2 == nil || !t1.IsPolymer() || !t2.IsPolymer() {
			return
		}
		if t1.IsNucleic() != t2.IsNucleic() {
			return
		}

		e := r1.BackboneEndAtomIndex()
		b := r2.BackboneStartAtomIndex()
		if e >= 0 && b >= 0 && atomDistance(s, e, b) <= peptideBondMax {
			s.BondStore.AddBond(e, b, 1)

			if ta, tb := r1.TraceAtomIndex(), r2.TraceAtomIndex(); ta >= 0 && tb >= 0 {
				s.BackboneBondStore.AddBond(ta, tb, 1)
			}
		}
	})
}

// calculateDisulfides finds SG-SG pairs of distinct cysteines through the
// spatial index.
func calculateDisulfides(s *Structure) {
	if s.SpatialHash == nil {
		return
	}
	as := s.AtomStore
	ap := s.AtomProxy(0)
	var scratch []int
	n := as.Count()
	for i := 0; i < n; i++ {
		ap.Index = i
		if ap.Atomname() != "SG" {
			continue
		}
		scratch = s.SpatialHash.Within(as.X, as.Y, as.Z, as.X[i], as.Y[i], as.Z[i], disulfideBondMax, scratch[:0])
		for _, j := range scratch {
			// Only record each pair once, and never within one residue.
			if j <= i || as.ResidueIndex[j] == as.ResidueIndex[i] {
				continue
			}
			pj := s.AtomTypes.Get(as.AtomTypeID[j])
			if pj != nil && pj.Atomname == "SG" {
				s.BondStore.AddBond(i, j, 1)
			}
		}
	}
}

func atomDistance(s *Structure, i, j int) float64 {
	as := s.AtomStore
	dx := float64(as.X[i] - as.X[j])
	dy := float64(as.Y[i] - as.Y[j])
	dz := float64(as.Z[i] - as.Z[j])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
