package structure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/molgo/structure"
	"github.com/hupe1980/molgo/testutil"
)

func TestBuilderCounts(t *testing.T) {
	s := testutil.MakeProtein(5)

	assert.Equal(t, 1, s.ModelCount())
	assert.Equal(t, 1, s.ChainCount())
	assert.Equal(t, 5, s.ResidueCount())
	assert.Equal(t, 25, s.AtomCount())
}

func TestProxyAccessors(t *testing.T) {
	s := testutil.MakeProtein(3)

	ap := s.AtomProxy(0)
	assert.Equal(t, "N", ap.Atomname())
	assert.Equal(t, "N", ap.Element())
	assert.Equal(t, "ALA", ap.Resname())
	assert.Equal(t, int32(1), ap.Resno())
	assert.Equal(t, "A", ap.Chainname())
	assert.Equal(t, 0, ap.ModelIndex())

	// Re-point into the second residue.
	ap.Index = 6
	assert.Equal(t, "CA", ap.Atomname())
	assert.Equal(t, int32(2), ap.Resno())
	assert.Equal(t, 1, ap.ResidueIndex())
}

func TestBackboneSidechainRoles(t *testing.T) {
	s := testutil.MakeProtein(1)

	names := map[string]bool{}
	s.EachAtom(func(ap *structure.AtomProxy) {
		names[ap.Atomname()] = ap.IsBackbone()
	}, nil)

	assert.True(t, names["N"])
	assert.True(t, names["CA"])
	assert.True(t, names["C"])
	assert.True(t, names["O"])
	assert.False(t, names["CB"])

	cb := s.ResidueProxy(0).FindAtomIndex("CB")
	require.GreaterOrEqual(t, cb, 0)
	ap := s.AtomProxy(cb)
	assert.True(t, ap.IsSidechain())
}

func TestResidueRoleIndices(t *testing.T) {
	s := testutil.MakeProtein(2)
	rp := s.ResidueProxy(1)

	assert.Equal(t, rp.AtomOffset()+1, rp.TraceAtomIndex())
	assert.Equal(t, rp.AtomOffset()+0, rp.BackboneStartAtomIndex())
	assert.Equal(t, rp.AtomOffset()+2, rp.BackboneEndAtomIndex())
	assert.Equal(t, -1, rp.RungEndAtomIndex())
}

func TestCalculateBonds(t *testing.T) {
	s := testutil.MakeProtein(5)

	// 4 covalent bonds per residue plus 4 peptide linkages.
	assert.Equal(t, 5*4+4, s.BondStore.Count())
	// Trace-to-trace backbone bonds, one per linkage.
	assert.Equal(t, 4, s.BackboneBondStore.Count())
	assert.Equal(t, 0, s.RungBondStore.Count())

	for i := 0; i < s.AtomCount(); i++ {
		assert.True(t, s.IsBonded(i), "atom %d should be bonded", i)
	}

	// The peptide bond connects C of residue i to N of residue i+1.
	c := s.ResidueProxy(0).BackboneEndAtomIndex()
	n := s.ResidueProxy(1).BackboneStartAtomIndex()
	assert.Contains(t, s.BondedAtomIndices(c), n)
}

func TestSecondaryStructureTags(t *testing.T) {
	s := testutil.MakeProtein(30)

	assert.False(t, s.ResidueProxy(0).IsHelix())
	assert.True(t, s.ResidueProxy(10).IsHelix())
	assert.True(t, s.ResidueProxy(19).IsHelix())
	assert.True(t, s.ResidueProxy(25).IsSheet())
	assert.False(t, s.ResidueProxy(25).IsHelix())
}

func TestSpatialHashWithin(t *testing.T) {
	s := testutil.MakeProtein(3)
	as := s.AtomStore

	got := s.SpatialHash.Within(as.X, as.Y, as.Z, as.X[0], as.Y[0], as.Z[0], 1.5, nil)
	assert.Contains(t, got, 0)
	assert.Contains(t, got, 1) // CA at 1.36
	assert.NotContains(t, got, 2)

	// Query far outside the populated volume.
	empty := s.SpatialHash.Within(as.X, as.Y, as.Z, 500, 500, 500, 3, nil)
	assert.Empty(t, empty)
}

func TestNameIndex(t *testing.T) {
	s := testutil.MakeProtein(7)

	ca := s.NameIndex.AtomsNamed("CA")
	require.NotNil(t, ca)
	assert.Equal(t, uint64(7), ca.GetCardinality())

	carbons := s.NameIndex.AtomsOfElement("C")
	require.NotNil(t, carbons)
	assert.Equal(t, uint64(3*7), carbons.GetCardinality())

	ala := s.NameIndex.ResiduesNamed("ALA")
	require.NotNil(t, ala)
	assert.Equal(t, uint64(7), ala.GetCardinality())

	assert.Nil(t, s.NameIndex.AtomsNamed("ZZ"))
}

func TestEachResidueN(t *testing.T) {
	s := testutil.MakeSystem(4)

	var pairs int
	s.EachResidueN(2, func(w []*structure.ResidueProxy) {
		pairs++
		assert.Equal(t, w[0].ChainIndex(), w[1].ChainIndex())
	})
	// 3 protein pairs plus 3 solvent pairs; no window spans the chain break.
	assert.Equal(t, 6, pairs)
}

func TestBoundingBox(t *testing.T) {
	s := testutil.MakeProtein(2)

	bb := s.BoundingBox
	require.NotNil(t, bb)
	assert.InDelta(t, 0, float64(bb.MinX), 1e-5)
	assert.InDelta(t, 3.8+2.5, float64(bb.MaxX), 1e-5)

	cx, _, _ := bb.Center()
	assert.InDelta(t, 6.3/2, float64(cx), 1e-5)
}

func TestCgMonomerTraversal(t *testing.T) {
	s := testutil.MakeProtein(4)

	var count int
	s.EachCgMonomer(func(p *structure.CgMonomerProxy) {
		x, _, _ := p.Position()
		want := float64(1.3 + 3.8*float32(count))
		assert.True(t, math.Abs(float64(x)-want) < 1e-4)
		count++
	}, nil)
	assert.Equal(t, 4, count)
}

func TestVersionMovesOnEdit(t *testing.T) {
	s := testutil.MakeProtein(3)

	v := s.Version()
	s.RemoveResidue(2)
	assert.Greater(t, s.Version(), v)
}

func TestExtractResidue(t *testing.T) {
	s := testutil.MakeProtein(3)

	rd := structure.ExtractResidue(s, 1)
	assert.Equal(t, "ALA", rd.Resname)
	require.Len(t, rd.Atoms, 5)
	assert.Equal(t, "N", rd.Atoms[0].Atomname)
	// Intra-residue bonds only, rebased to local indices.
	assert.Len(t, rd.Bonds.AtomIndices1, 4)
	for _, i := range rd.Bonds.AtomIndices1 {
		assert.Less(t, i, 5)
	}
}
