package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/molgo/structure"
	"github.com/hupe1980/molgo/testutil"
)

func countAtoms(s *structure.Structure, f AtomFilter) int {
	var n int
	s.EachAtom(func(*structure.AtomProxy) { n++ }, f.Test)
	return n
}

func countResidues(s *structure.Structure, f ResidueFilter) int {
	var n int
	s.EachResidue(func(*structure.ResidueProxy) { n++ }, f.Test)
	return n
}

func TestAtomNameSelection(t *testing.T) {
	s := testutil.MakeProtein(46)

	sel := New(".CA")
	require.NoError(t, sel.Err)
	f := CompileAtomTest(sel)

	var matched int
	s.EachAtom(func(ap *structure.AtomProxy) {
		matched++
		assert.Equal(t, "CA", ap.Atomname())
	}, f.Test)
	assert.Equal(t, 46, matched)
}

func TestQualifierCombination(t *testing.T) {
	s := testutil.MakeProtein(10)

	// CA atoms of residues 1-2 only.
	f := CompileAtomTest(New("1-2 and .CA"))
	assert.Equal(t, 2, countAtoms(s, f))

	// Sigils in one chunk behave like the conjunction.
	f = CompileAtomTest(New(":A.CA"))
	assert.Equal(t, 10, countAtoms(s, f))

	f = CompileAtomTest(New(":B.CA"))
	assert.Equal(t, 0, countAtoms(s, f))
}

func TestKeywordSelections(t *testing.T) {
	s := testutil.MakeSystem(4)

	assert.Equal(t, 4, countAtoms(s, CompileAtomTest(New("water or ion"))))
	assert.Equal(t, 20, countAtoms(s, CompileAtomTest(New("protein"))))
	assert.Equal(t, 4, countAtoms(s, CompileAtomTest(New("hetero"))))
	assert.Equal(t, 16, countAtoms(s, CompileAtomTest(New("backbone"))))
	assert.Equal(t, 4, countAtoms(s, CompileAtomTest(New("sidechain"))))
	assert.Equal(t, 1, countAtoms(s, CompileAtomTest(New("metal"))))
	assert.Equal(t, 24, countAtoms(s, CompileAtomTest(New("all"))))
	assert.Equal(t, 0, countAtoms(s, CompileAtomTest(New("none"))))

	// The LIGAND composite excludes polymer, water and ions; this system has
	// nothing else.
	assert.Equal(t, 0, countAtoms(s, CompileAtomTest(New("ligand"))))
}

func TestHelixSelection(t *testing.T) {
	s := testutil.MakeProtein(30)

	assert.Equal(t, 10, countResidues(s, CompileResidueTest(New("helix"))))
	assert.Equal(t, 5, countResidues(s, CompileResidueTest(New("sheet"))))
	assert.Equal(t, 50, countAtoms(s, CompileAtomTest(New("helix"))))
}

func TestAtomIndexList(t *testing.T) {
	s := testutil.MakeProtein(3)

	f := CompileAtomTest(New("@0,6,14"))
	assert.Equal(t, 3, countAtoms(s, f))
}

func TestTriStateAtResidueLevel(t *testing.T) {
	s := testutil.MakeSystem(3)

	// An atom-name constraint does not apply at residue level; every residue
	// resolves to not-applicable and is included.
	f := CompileResidueTest(New(".CA"))
	assert.Equal(t, s.ResidueCount(), countResidues(s, f))

	// Negation preserves not-applicable.
	f = CompileResidueTest(New("not .CA"))
	assert.Equal(t, s.ResidueCount(), countResidues(s, f))

	// Mixed chunk: the residue-number part still applies.
	f = CompileResidueTest(New("2.CA"))
	assert.Equal(t, 2, countResidues(s, f)) // resno 2 in each chain
}

func TestCompileIdempotence(t *testing.T) {
	s := testutil.MakeSystem(5)
	sel := New("( water or 2-3 ) and not backbone")
	require.NoError(t, sel.Err)

	f1 := CompileAtomTest(sel)
	f2 := CompileAtomTest(sel)
	s.EachAtom(func(ap *structure.AtomProxy) {
		assert.Equal(t, f1(ap), f2(ap))
	}, nil)

	// NOT NOT X equals X at every atom.
	fx := CompileAtomTest(New("water or 2-3"))
	fnn := CompileAtomTest(New("not not ( water or 2-3 )"))
	s.EachAtom(func(ap *structure.AtomProxy) {
		assert.Equal(t, fx(ap), fnn(ap))
	}, nil)
}

func TestErrorTreeCompilesToConstantFalse(t *testing.T) {
	s := testutil.MakeProtein(3)

	sel := New("10-")
	require.Error(t, sel.Err)

	assert.Equal(t, 0, countAtoms(s, CompileAtomTest(sel)))
	assert.Equal(t, 0, countResidues(s, CompileResidueTest(sel)))
}

func TestOnlyVariantsPruneForeignLeaves(t *testing.T) {
	s := testutil.MakeSystem(3)

	// Chain-only pruning keeps the chain constraint and drops the atom name.
	f := CompileChainOnlyTest(New(".CA and :A"))
	var chains []string
	s.EachChain(func(cp *structure.ChainProxy) {
		chains = append(chains, cp.Chainname())
	}, f.Test)
	assert.Equal(t, []string{"A"}, chains)

	// A tree with no chain-level content prunes to no constraint.
	f = CompileChainOnlyTest(New(".CA"))
	assert.Nil(t, f)

	var all int
	s.EachChain(func(*structure.ChainProxy) { all++ }, f.Test)
	assert.Equal(t, 2, all)
}

func TestFullPruneKeepsEveryEntity(t *testing.T) {
	s := testutil.MakeSystem(3)

	// Pure atom-level expressions carry no coarse-level content; the pruned
	// pre-filters must pass everything through, never reject it.
	cf := CompileChainOnlyTest(New(".CA"))
	assert.Nil(t, cf)
	var chains int
	s.EachChain(func(*structure.ChainProxy) { chains++ }, cf.Test)
	assert.Equal(t, 2, chains)

	rf := CompileResidueOnlyTest(New("backbone"))
	assert.Nil(t, rf)
	assert.Equal(t, 7, countResidues(s, rf))

	mf := CompileModelOnlyTest(New(".CA and backbone"))
	assert.Nil(t, mf)
	var models int
	s.EachModel(func(*structure.ModelProxy) { models++ }, mf.Test)
	assert.Equal(t, 1, models)

	// A malformed tree still compiles to constant false after pruning.
	cf = CompileChainOnlyTest(New("10-"))
	require.NotNil(t, cf)
	chains = 0
	s.EachChain(func(*structure.ChainProxy) { chains++ }, cf.Test)
	assert.Zero(t, chains)
}

func TestCgMonomerTest(t *testing.T) {
	s := testutil.MakeSystem(4)

	f := CompileCgMonomerTest(New("protein"))
	var beads int
	s.EachCgMonomer(func(*structure.CgMonomerProxy) { beads++ }, f.Test)
	assert.Equal(t, 4, beads)

	f = CompileCgMonomerTest(New("water"))
	beads = 0
	s.EachCgMonomer(func(*structure.CgMonomerProxy) { beads++ }, f.Test)
	assert.Equal(t, 3, beads)
}

func TestModelTest(t *testing.T) {
	s := testutil.MakeProtein(2)

	f := CompileModelTest(New("/0"))
	var models int
	s.EachModel(func(*structure.ModelProxy) { models++ }, f.Test)
	assert.Equal(t, 1, models)

	f = CompileModelTest(New("/3"))
	models = 0
	s.EachModel(func(*structure.ModelProxy) { models++ }, f.Test)
	assert.Equal(t, 0, models)
}
