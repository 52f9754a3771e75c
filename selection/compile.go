package selection

import (
	"slices"

	"github.com/hupe1980/molgo/store"
	"github.com/hupe1980/molgo/structure"
)

// Filters are tri-state closures over the flyweight proxies. A nil filter
// means "no constraint": Test accepts everything. Traversals skip an entity
// only on a definite false; not-applicable resolves to include, so one rule
// tree serves every entity level.

// AtomFilter tests one atom.
type AtomFilter func(*structure.AtomProxy) Tri

// Test resolves the tri-state for traversal: true and not-applicable include.
func (f AtomFilter) Test(p *structure.AtomProxy) bool { return f == nil || f(p) != TriFalse }

// ResidueFilter tests one residue.
type ResidueFilter func(*structure.ResidueProxy) Tri

// Test resolves the tri-state for traversal.
func (f ResidueFilter) Test(p *structure.ResidueProxy) bool { return f == nil || f(p) != TriFalse }

// ChainFilter tests one chain.
type ChainFilter func(*structure.ChainProxy) Tri

// Test resolves the tri-state for traversal.
func (f ChainFilter) Test(p *structure.ChainProxy) bool { return f == nil || f(p) != TriFalse }

// ModelFilter tests one model.
type ModelFilter func(*structure.ModelProxy) Tri

// Test resolves the tri-state for traversal.
func (f ModelFilter) Test(p *structure.ModelProxy) bool { return f == nil || f(p) != TriFalse }

// CgFilter tests one coarse-grained bead.
type CgFilter func(*structure.CgMonomerProxy) Tri

// Test resolves the tri-state for traversal.
func (f CgFilter) Test(p *structure.CgMonomerProxy) bool { return f == nil || f(p) != TriFalse }

// Level identifies the entity granularity a test runs at.
type Level uint8

const (
	LevelAtom Level = iota
	LevelResidue
	LevelChain
	LevelModel
)

// CompileAtomTest compiles the selection into an atom-level test. A nil
// selection compiles to nil (no constraint); an error-carrying tree compiles
// to constant false.
func CompileAtomTest(s *Selection) AtomFilter {
	rule, ok := compileRoot(s)
	if rule == nil {
		if ok {
			return nil
		}
		return func(*structure.AtomProxy) Tri { return TriFalse }
	}
	return func(p *structure.AtomProxy) Tri { return evalRule(rule, func(r *Rule) Tri { return atomLeaf(r, p) }) }
}

// CompileResidueTest compiles the selection into a residue-level test.
// Atom-granularity constraints evaluate as not-applicable.
func CompileResidueTest(s *Selection) ResidueFilter {
	rule, ok := compileRoot(s)
	if rule == nil {
		if ok {
			return nil
		}
		return func(*structure.ResidueProxy) Tri { return TriFalse }
	}
	return func(p *structure.ResidueProxy) Tri {
		return evalRule(rule, func(r *Rule) Tri { return residueLeaf(r, residueView{p}) })
	}
}

// CompileChainTest compiles the selection into a chain-level test.
func CompileChainTest(s *Selection) ChainFilter {
	rule, ok := compileRoot(s)
	if rule == nil {
		if ok {
			return nil
		}
		return func(*structure.ChainProxy) Tri { return TriFalse }
	}
	return func(p *structure.ChainProxy) Tri { return evalRule(rule, func(r *Rule) Tri { return chainLeaf(r, p) }) }
}

// CompileModelTest compiles the selection into a model-level test.
func CompileModelTest(s *Selection) ModelFilter {
	rule, ok := compileRoot(s)
	if rule == nil {
		if ok {
			return nil
		}
		return func(*structure.ModelProxy) Tri { return TriFalse }
	}
	return func(p *structure.ModelProxy) Tri { return evalRule(rule, func(r *Rule) Tri { return modelLeaf(r, p) }) }
}

// CompileCgMonomerTest compiles the selection into a coarse-grained bead
// test with residue-granularity semantics.
func CompileCgMonomerTest(s *Selection) CgFilter {
	rule, ok := compileRoot(s)
	if rule == nil {
		if ok {
			return nil
		}
		return func(*structure.CgMonomerProxy) Tri { return TriFalse }
	}
	return func(p *structure.CgMonomerProxy) Tri {
		return evalRule(rule, func(r *Rule) Tri { return residueLeaf(r, cgView{p}) })
	}
}

// CompileResidueOnlyTest prunes atom-granularity leaves before compiling, for
// cheap residue-level pre-rejection. A tree with no residue-level content
// compiles to nil (no constraint).
func CompileResidueOnlyTest(s *Selection) ResidueFilter {
	return CompileResidueTest(pruneSelection(s, LevelResidue))
}

// CompileChainOnlyTest prunes everything below chain granularity before
// compiling.
func CompileChainOnlyTest(s *Selection) ChainFilter {
	return CompileChainTest(pruneSelection(s, LevelChain))
}

// CompileModelOnlyTest prunes everything below model granularity before
// compiling.
func CompileModelOnlyTest(s *Selection) ModelFilter {
	return CompileModelTest(pruneSelection(s, LevelModel))
}

// compileRoot resolves the selection into the rule to evaluate. The boolean
// distinguishes "no constraint" (nil, true) from "constant false" (nil,
// false).
func compileRoot(s *Selection) (*Rule, bool) {
	if s == nil {
		return nil, true
	}
	if s.Err != nil {
		return nil, false
	}
	if s.Rule == nil {
		// Pruned to nothing: no constraint, not a failure.
		return nil, true
	}
	if s.Rule.Error != nil {
		return nil, false
	}
	return s.Rule, true
}

// evalRule aggregates the tri-state over a node: AND short-circuits on a
// definite false, OR on a definite true, and a node whose children are all
// not-applicable is itself not-applicable. Negation is applied last and
// leaves not-applicable unchanged.
func evalRule(r *Rule, leaf func(*Rule) Tri) Tri {
	if r.Error != nil {
		return TriFalse
	}
	out := TriNA
	switch {
	case r.IsLeaf():
		out = leaf(r)
	case r.Operator == OpOr:
		for _, c := range r.Rules {
			v := evalRule(c, leaf)
			if v == TriTrue {
				out = TriTrue
				break
			}
			if v == TriFalse {
				out = TriFalse
			}
		}
	default:
		for _, c := range r.Rules {
			v := evalRule(c, leaf)
			if v == TriFalse {
				out = TriFalse
				break
			}
			if v == TriTrue {
				out = TriTrue
			}
		}
	}
	if r.Negate {
		out = out.Not()
	}
	return out
}

// atomLeaf evaluates a leaf at atom granularity; every constraint applies.
func atomLeaf(r *Rule, p *structure.AtomProxy) Tri {
	any := false
	if r.Keyword != KwUnset {
		any = true
		if !atomKeyword(r.Keyword, p) {
			return TriFalse
		}
	}
	if len(r.Resnames) > 0 {
		any = true
		if !containsName(r.Resnames, p.Resname()) {
			return TriFalse
		}
	}
	if r.HasResno {
		any = true
		if n := p.Resno(); n < r.Resno[0] || n > r.Resno[1] {
			return TriFalse
		}
	}
	if r.HasInscode {
		any = true
		if p.Inscode() != r.Inscode {
			return TriFalse
		}
	}
	if r.HasChain {
		any = true
		if p.Chainname() != r.Chainname {
			return TriFalse
		}
	}
	if r.HasModel {
		any = true
		if p.ModelIndex() != r.Model {
			return TriFalse
		}
	}
	if r.HasAtomname {
		any = true
		if p.Atomname() != r.Atomname {
			return TriFalse
		}
	}
	if r.HasElement {
		any = true
		if p.Element() != r.Element {
			return TriFalse
		}
	}
	if r.HasAltloc {
		any = true
		if p.Altloc() != r.Altloc {
			return TriFalse
		}
	}
	if len(r.AtomIndices) > 0 {
		any = true
		if _, ok := slices.BinarySearch(r.AtomIndices, p.Index); !ok {
			return TriFalse
		}
	}
	if !any {
		return TriNA
	}
	return TriTrue
}

func atomKeyword(kw Keyword, p *structure.AtomProxy) bool {
	switch kw {
	case KwAll:
		return true
	case KwNone:
		return false
	case KwProtein:
		return p.IsProtein()
	case KwNucleic:
		return p.IsNucleic()
	case KwRna:
		return p.IsRna()
	case KwDna:
		return p.IsDna()
	case KwPolymer:
		return p.IsPolymer()
	case KwWater:
		return p.IsWater()
	case KwIon:
		return p.IsIon()
	case KwSaccharide:
		return p.IsSaccharide()
	case KwHetero:
		return p.IsHetero()
	case KwHelix:
		return p.IsHelix()
	case KwSheet:
		return p.IsSheet()
	case KwTurn:
		return p.IsTurn()
	case KwBackbone:
		return p.IsBackbone()
	case KwSidechain:
		return p.IsSidechain()
	case KwBonded:
		return p.IsBonded()
	case KwRing:
		return p.IsRing()
	case KwAromaticRing:
		return p.IsAromaticRing()
	case KwMetal:
		return p.IsMetal()
	case KwPolarH:
		return p.IsPolarHydrogen()
	}
	return false
}

// residueEntity is the residue-granularity field surface shared by residue
// proxies and coarse-grained beads.
type residueEntity interface {
	Resname() string
	Resno() int32
	Inscode() string
	Chainname() string
	ModelIndex() int
	IsProtein() bool
	IsNucleic() bool
	IsRna() bool
	IsDna() bool
	IsPolymer() bool
	IsWater() bool
	IsIon() bool
	IsSaccharide() bool
	IsHetero() bool
	IsHelix() bool
	IsSheet() bool
	IsTurn() bool
}

type residueView struct{ *structure.ResidueProxy }

type cgView struct{ *structure.CgMonomerProxy }

func (v cgView) IsProtein() bool { return v.MoleculeType() == store.MoleculeProtein }

func (v cgView) IsNucleic() bool { return v.IsRna() || v.IsDna() }

func (v cgView) IsRna() bool { return v.MoleculeType() == store.MoleculeRNA }

func (v cgView) IsDna() bool { return v.MoleculeType() == store.MoleculeDNA }

func (v cgView) IsWater() bool { return v.MoleculeType() == store.MoleculeWater }

func (v cgView) IsIon() bool { return v.MoleculeType() == store.MoleculeIon }

func (v cgView) IsSaccharide() bool { return v.MoleculeType() == store.MoleculeSaccharide }

func (v cgView) IsHelix() bool { return store.IsHelixTag(v.Sstruc()) }

func (v cgView) IsSheet() bool { return store.IsSheetTag(v.Sstruc()) }

func (v cgView) IsTurn() bool { return store.IsTurnTag(v.Sstruc()) }

// residueLeaf evaluates a leaf at residue granularity. Atom-granularity
// constraints (atom name, element, altloc, index list, atom-only keywords)
// are not applicable here.
func residueLeaf(r *Rule, p residueEntity) Tri {
	any := false
	if r.Keyword != KwUnset {
		matched, applicable := residueKeyword(r.Keyword, p)
		if applicable {
			any = true
			if !matched {
				return TriFalse
			}
		}
	}
	if len(r.Resnames) > 0 {
		any = true
		if !containsName(r.Resnames, p.Resname()) {
			return TriFalse
		}
	}
	if r.HasResno {
		any = true
		if n := p.Resno(); n < r.Resno[0] || n > r.Resno[1] {
			return TriFalse
		}
	}
	if r.HasInscode {
		any = true
		if p.Inscode() != r.Inscode {
			return TriFalse
		}
	}
	if r.HasChain {
		any = true
		if p.Chainname() != r.Chainname {
			return TriFalse
		}
	}
	if r.HasModel {
		any = true
		if p.ModelIndex() != r.Model {
			return TriFalse
		}
	}
	if !any {
		return TriNA
	}
	return TriTrue
}

func residueKeyword(kw Keyword, p residueEntity) (matched, applicable bool) {
	switch kw {
	case KwAll:
		return true, true
	case KwNone:
		return false, true
	case KwProtein:
		return p.IsProtein(), true
	case KwNucleic:
		return p.IsNucleic(), true
	case KwRna:
		return p.IsRna(), true
	case KwDna:
		return p.IsDna(), true
	case KwPolymer:
		return p.IsPolymer(), true
	case KwWater:
		return p.IsWater(), true
	case KwIon:
		return p.IsIon(), true
	case KwSaccharide:
		return p.IsSaccharide(), true
	case KwHetero:
		return p.IsHetero(), true
	case KwHelix:
		return p.IsHelix(), true
	case KwSheet:
		return p.IsSheet(), true
	case KwTurn:
		return p.IsTurn(), true
	}
	return false, false
}

// chainLeaf evaluates a leaf at chain granularity: only chain and model
// constraints (and ALL/NONE) apply.
func chainLeaf(r *Rule, p *structure.ChainProxy) Tri {
	any := false
	switch r.Keyword {
	case KwAll:
		any = true
	case KwNone:
		return TriFalse
	}
	if r.HasChain {
		any = true
		if p.Chainname() != r.Chainname {
			return TriFalse
		}
	}
	if r.HasModel {
		any = true
		if p.ModelIndex() != r.Model {
			return TriFalse
		}
	}
	if !any {
		return TriNA
	}
	return TriTrue
}

// modelLeaf evaluates a leaf at model granularity: only the model constraint
// (and ALL/NONE) applies.
func modelLeaf(r *Rule, p *structure.ModelProxy) Tri {
	any := false
	switch r.Keyword {
	case KwAll:
		any = true
	case KwNone:
		return TriFalse
	}
	if r.HasModel {
		any = true
		if p.Index != r.Model {
			return TriFalse
		}
	}
	if !any {
		return TriNA
	}
	return TriTrue
}

// pruneSelection drops leaves whose constraints are all foreign to the
// requested level, yielding a cheaper pre-filter tree. A tree pruned to
// nothing yields a nil-rule selection, which compiles to "no constraint".
func pruneSelection(s *Selection, level Level) *Selection {
	if s == nil || s.Err != nil || s.Rule == nil {
		return s
	}
	return &Selection{Input: s.Input, Rule: pruneRule(s.Rule, level)}
}

func pruneRule(r *Rule, level Level) *Rule {
	if r == nil || r.Error != nil {
		return r
	}
	if r.IsLeaf() {
		if leafApplicable(r, level) {
			return r
		}
		return nil
	}
	kept := make([]*Rule, 0, len(r.Rules))
	for _, c := range r.Rules {
		if pc := pruneRule(c, level); pc != nil {
			kept = append(kept, pc)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	out := *r
	out.Rules = kept
	return &out
}

func leafApplicable(r *Rule, level Level) bool {
	switch level {
	case LevelModel:
		return r.HasModel || r.Keyword == KwAll || r.Keyword == KwNone
	case LevelChain:
		return r.HasModel || r.HasChain || r.Keyword == KwAll || r.Keyword == KwNone
	case LevelResidue:
		if r.HasModel || r.HasChain || r.HasResno || r.HasInscode || len(r.Resnames) > 0 {
			return true
		}
		switch r.Keyword {
		case KwUnset, KwBackbone, KwSidechain, KwBonded, KwRing, KwAromaticRing, KwMetal, KwPolarH:
			return false
		}
		return true
	default:
		return true
	}
}

func containsName(sorted []string, name string) bool {
	_, ok := slices.BinarySearch(sorted, name)
	return ok
}
