package molgo

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/molgo/bitset"
	"github.com/hupe1980/molgo/selection"
	"github.com/hupe1980/molgo/structure"
)

// Engine is the facade over one structure: selection evaluation with a
// version-keyed result cache, and selection-driven edits. Like the structure
// itself it is single-threaded; the host serializes calls.
type Engine struct {
	s     *structure.Structure
	opts  options
	cache map[string]*cachedSelection
}

type cachedSelection struct {
	bits    *bitset.BitSet
	version uint64
}

// New creates an engine over the given finalized structure.
func New(s *structure.Structure, optFns ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	return &Engine{
		s:     s,
		opts:  applyOptions(optFns),
		cache: make(map[string]*cachedSelection),
	}, nil
}

// Structure returns the underlying structure.
func (e *Engine) Structure() *structure.Structure { return e.s }

// Version returns the structure's modification counter. Callers holding a
// BitSet across edits can detect staleness with EnsureFresh.
func (e *Engine) Version() uint64 { return e.s.Version() }

// EnsureFresh returns ErrStaleSelection when version predates the current
// structure version.
func (e *Engine) EnsureFresh(version uint64) error {
	if version != e.s.Version() {
		return &ErrStaleSelection{Have: version, Want: e.s.Version()}
	}
	return nil
}

// Atom returns a bounds-checked proxy for one atom row.
func (e *Engine) Atom(index int) (*structure.AtomProxy, error) {
	if index < 0 || index >= e.s.AtomCount() {
		return nil, &ErrIndexOutOfRange{Index: index, Count: e.s.AtomCount()}
	}
	return e.s.AtomProxy(index), nil
}

// Residue returns a bounds-checked proxy for one residue row.
func (e *Engine) Residue(index int) (*structure.ResidueProxy, error) {
	if index < 0 || index >= e.s.ResidueCount() {
		return nil, &ErrIndexOutOfRange{Index: index, Count: e.s.ResidueCount()}
	}
	return e.s.ResidueProxy(index), nil
}

// Chain returns a bounds-checked proxy for one chain row.
func (e *Engine) Chain(index int) (*structure.ChainProxy, error) {
	if index < 0 || index >= e.s.ChainCount() {
		return nil, &ErrIndexOutOfRange{Index: index, Count: e.s.ChainCount()}
	}
	return e.s.ChainProxy(index), nil
}

// Select evaluates the selection at atom granularity and returns the matching
// atom rows as a BitSet. A malformed selection returns an empty BitSet plus
// the parse reason; it never panics. The result is a copy; the cached value
// stays keyed to the structure version it was computed at.
func (e *Engine) Select(input string) (*bitset.BitSet, error) {
	return e.selectLevel("atom|"+input, input, e.evalAtoms, e.s.AtomCount())
}

// SelectResidues evaluates the selection at residue granularity.
// Atom-granularity constraints resolve to not-applicable and include.
func (e *Engine) SelectResidues(input string) (*bitset.BitSet, error) {
	return e.selectLevel("residue|"+input, input, e.evalResidues, e.s.ResidueCount())
}

// SelectChains evaluates the selection at chain granularity.
func (e *Engine) SelectChains(input string) (*bitset.BitSet, error) {
	return e.selectLevel("chain|"+input, input, e.evalChains, e.s.ChainCount())
}

func (e *Engine) selectLevel(key, input string, eval func(*selection.Selection) *bitset.BitSet, length int) (*bitset.BitSet, error) {
	start := time.Now()

	if !e.opts.cacheDisabled {
		if c, ok := e.cache[key]; ok && c.version == e.s.Version() {
			e.opts.metricsCollector.RecordSelect(c.bits.Count(), true, time.Since(start), nil)
			e.opts.logger.LogSelect(input, c.bits.Count(), true, nil)
			return c.bits.Clone(), nil
		}
	}

	parseStart := time.Now()
	sel := selection.New(input)
	e.opts.metricsCollector.RecordParse(time.Since(parseStart), sel.Err)
	if sel.Err != nil {
		e.opts.metricsCollector.RecordSelect(0, false, time.Since(start), sel.Err)
		e.opts.logger.LogSelect(input, 0, false, sel.Err)
		return bitset.New(length), sel.Err
	}

	bits := eval(sel)
	if !e.opts.cacheDisabled {
		if len(e.cache) >= e.opts.cacheMaxEntries {
			e.evictCache()
		}
		e.cache[key] = &cachedSelection{bits: bits.Clone(), version: e.s.Version()}
	}
	e.opts.metricsCollector.RecordSelect(bits.Count(), false, time.Since(start), nil)
	e.opts.logger.LogSelect(input, bits.Count(), false, nil)
	return bits, nil
}

// evictCache makes room for one more entry: stale versions go first, then an
// arbitrary live entry.
func (e *Engine) evictCache() {
	for k, c := range e.cache {
		if c.version != e.s.Version() {
			delete(e.cache, k)
		}
	}
	for k := range e.cache {
		if len(e.cache) < e.opts.cacheMaxEntries {
			return
		}
		delete(e.cache, k)
	}
}

func (e *Engine) evalAtoms(sel *selection.Selection) *bitset.BitSet {
	bits := bitset.New(e.s.AtomCount())
	if bm := e.nameIndexBitmap(sel.Rule); bm != nil {
		it := bm.Iterator()
		for it.HasNext() {
			bits.Set(int(it.Next()))
		}
		return bits
	}
	test := selection.CompileAtomTest(sel)
	e.s.EachAtom(func(p *structure.AtomProxy) { bits.Set(p.Index) }, test.Test)
	return bits
}

func (e *Engine) evalResidues(sel *selection.Selection) *bitset.BitSet {
	bits := bitset.New(e.s.ResidueCount())
	test := selection.CompileResidueTest(sel)
	e.s.EachResidue(func(p *structure.ResidueProxy) { bits.Set(p.Index) }, test.Test)
	return bits
}

func (e *Engine) evalChains(sel *selection.Selection) *bitset.BitSet {
	bits := bitset.New(e.s.ChainCount())
	test := selection.CompileChainTest(sel)
	e.s.EachChain(func(p *structure.ChainProxy) { bits.Set(p.Index) }, test.Test)
	return bits
}

// nameIndexBitmap resolves the fast path: a single positive leaf that
// constrains only the atom name, or only the element, is answered from the
// inverted name index instead of a full scan.
func (e *Engine) nameIndexBitmap(r *selection.Rule) *roaring.Bitmap {
	if r == nil || r.Error != nil || !r.IsLeaf() || r.Negate || e.s.NameIndex == nil {
		return nil
	}
	if r.Keyword != selection.KwUnset || len(r.Resnames) > 0 || r.HasResno ||
		r.HasChain || r.HasInscode || r.HasModel || r.HasAltloc || len(r.AtomIndices) > 0 {
		return nil
	}
	switch {
	case r.HasAtomname && !r.HasElement:
		if bm := e.s.NameIndex.AtomsNamed(r.Atomname); bm != nil {
			return bm
		}
		return roaring.New()
	case r.HasElement && !r.HasAtomname:
		if bm := e.s.NameIndex.AtomsOfElement(r.Element); bm != nil {
			return bm
		}
		return roaring.New()
	}
	return nil
}

// RemoveSelected removes every atom matched by the selection and returns the
// number removed. Matching rows are removed in contiguous runs from the top
// so earlier indices stay valid while the engine cascades cleanup.
func (e *Engine) RemoveSelected(input string) (int, error) {
	start := time.Now()

	bits, err := e.Select(input)
	if err != nil {
		return 0, err
	}

	removed := 0
	i := e.s.AtomCount() - 1
	for i >= 0 {
		if !bits.Test(i) {
			i--
			continue
		}
		end := i
		for i >= 0 && bits.Test(i) {
			i--
		}
		runStart := i + 1
		e.s.RemoveAtoms(runStart, end-runStart+1)
		removed += end - runStart + 1
	}

	if removed > 0 {
		e.opts.metricsCollector.RecordEdit("remove_atoms", time.Since(start))
		e.opts.logger.LogEdit("remove_atoms", e.s.AtomCount(), e.s.ResidueCount(), e.s.ChainCount())
	}
	return removed, nil
}
