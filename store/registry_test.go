package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomTypeDedup(t *testing.T) {
	as := NewAtomStore(0)
	reg := NewAtomTypeRegistry(as)

	ca1 := reg.Add("CA", "C")
	ca2 := reg.Add("CA", "C")
	n := reg.Add("N", "N")

	assert.Equal(t, ca1, ca2)
	assert.NotEqual(t, ca1, n)
	assert.Equal(t, 2, reg.Count())

	at := reg.Get(ca1)
	require.NotNil(t, at)
	assert.Equal(t, "CA", at.Atomname)
	assert.Equal(t, "C", at.Element)
	assert.Equal(t, int8(6), at.Number)
}

func TestAtomTypeElementGuess(t *testing.T) {
	as := NewAtomStore(0)
	reg := NewAtomTypeRegistry(as)

	id := reg.Add("O5'", "")
	assert.Equal(t, "O", reg.Get(id).Element)

	id = reg.Add("1HB", "")
	assert.Equal(t, "H", reg.Get(id).Element)

	id = reg.Add("ZN", "ZN")
	assert.True(t, reg.Get(id).IsMetal())
}

// Removing all-but-one referencing atom leaves the descriptor alive; removing
// the last reference deletes it.
func TestAtomTypeRefCounting(t *testing.T) {
	as := NewAtomStore(0)
	reg := NewAtomTypeRegistry(as)

	id := reg.Add("CA", "C")
	for i := 0; i < 3; i++ {
		j := as.Append()
		as.AtomTypeID[j] = id
	}
	require.Equal(t, 1, reg.Count())

	// Drop two of the three referencing rows.
	as.RemoveRecord(2)
	reg.Remove(id)
	as.RemoveRecord(1)
	reg.Remove(id)
	assert.Equal(t, 1, reg.Count(), "still referenced by one row")

	as.RemoveRecord(0)
	reg.Remove(id)
	assert.Equal(t, 0, reg.Count(), "last reference gone")
	assert.Nil(t, reg.Get(id))
}

func residueFixture(t *testing.T) (*AtomTypeRegistry, *ResidueTypeRegistry, *ResidueStore) {
	t.Helper()
	as := NewAtomStore(0)
	areg := NewAtomTypeRegistry(as)
	rs := NewResidueStore(0)
	rreg := NewResidueTypeRegistry(rs, areg)
	return areg, rreg, rs
}

func TestResidueTypeDedupAndClassify(t *testing.T) {
	areg, rreg, _ := residueFixture(t)

	ids := []uint16{
		areg.Add("N", "N"), areg.Add("CA", "C"), areg.Add("C", "C"), areg.Add("O", "O"),
	}

	ala1 := rreg.Add("ALA", ids, false, "")
	ala2 := rreg.Add("ALA", ids, false, "")
	gly := rreg.Add("GLY", ids, false, "")
	assert.Equal(t, ala1, ala2)
	assert.NotEqual(t, ala1, gly)

	rt := rreg.Get(ala1)
	require.NotNil(t, rt)
	assert.Equal(t, MoleculeProtein, rt.MoleculeType)
	assert.True(t, rt.IsPolymer())
	assert.Equal(t, 1, rt.TraceAtomIndex)
	assert.Equal(t, 0, rt.BackboneStartAtomIndex)
	assert.Equal(t, 2, rt.BackboneEndAtomIndex)

	hoh := rreg.Get(rreg.Add("HOH", []uint16{areg.Add("O", "O")}, true, ""))
	assert.Equal(t, MoleculeWater, hoh.MoleculeType)

	na := rreg.Get(rreg.Add("NA", []uint16{areg.Add("NA", "NA")}, true, ""))
	assert.Equal(t, MoleculeIon, na.MoleculeType)
}

func TestResidueTypeNucleic(t *testing.T) {
	areg, rreg, _ := residueFixture(t)

	mk := func(names ...string) []uint16 {
		out := make([]uint16, len(names))
		for i, n := range names {
			out[i] = areg.Add(n, "")
		}
		return out
	}

	rna := rreg.Get(rreg.Add("G", mk("P", "O5'", "C5'", "C4'", "C3'", "O3'", "O2'", "C1'", "N1"), false, ""))
	assert.Equal(t, MoleculeRNA, rna.MoleculeType)
	assert.True(t, rna.IsNucleic())
	assert.Equal(t, 8, rna.RungEndAtomIndex, "purine rung ends at N1")

	dna := rreg.Get(rreg.Add("DT", mk("P", "O5'", "C5'", "C4'", "C3'", "O3'", "C1'", "N3"), false, ""))
	assert.Equal(t, MoleculeDNA, dna.MoleculeType)
	assert.Equal(t, 7, dna.RungEndAtomIndex, "pyrimidine rung ends at N3")
}

func TestResidueTypeBondsAndRings(t *testing.T) {
	areg, rreg, _ := residueFixture(t)

	// A planar five-ring of carbons with unit spacing, plus one distant atom.
	names := []string{"C1", "C2", "C3", "C4", "C5", "CX"}
	ids := make([]uint16, len(names))
	for i, n := range names {
		ids[i] = areg.Add(n, "C")
	}
	id := rreg.Add("PHE", ids, false, "")
	rt := rreg.Get(id)

	// Regular pentagon, edge length ~1.4 A.
	x := []float32{1.19, 0.37, -0.96, -0.96, 0.37, 10}
	y := []float32{0, 1.13, 0.70, -0.70, -1.13, 10}
	z := make([]float32, 6)

	bonds := rt.Bonds(areg, x, y, z)
	require.NotNil(t, bonds)
	assert.Equal(t, 5, len(bonds.AtomIndices1), "pentagon edges only")

	for i := 0; i < 5; i++ {
		assert.True(t, rt.IsRingAtom(i), "ring atom %d", i)
		assert.True(t, rt.IsAromaticRingAtom(i))
	}
	assert.False(t, rt.IsRingAtom(5))

	// Cached: second call returns the same topology.
	assert.Same(t, bonds, rt.Bonds(areg, x, y, z))
}

func TestResidueTypeRefCounting(t *testing.T) {
	areg, rreg, rs := residueFixture(t)

	ids := []uint16{areg.Add("N", "N"), areg.Add("CA", "C"), areg.Add("C", "C")}
	id := rreg.Add("ALA", ids, false, "")

	i := rs.Append()
	rs.ResidueTypeID[i] = id
	j := rs.Append()
	rs.ResidueTypeID[j] = id

	rs.RemoveRecord(1)
	rreg.Remove(id)
	assert.Equal(t, 1, rreg.Count())

	rs.RemoveRecord(0)
	rreg.Remove(id)
	assert.Equal(t, 0, rreg.Count())
}
