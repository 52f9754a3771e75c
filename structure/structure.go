package structure

import (
	"io"
	"log/slog"

	"github.com/hupe1980/molgo/store"
)

// Structure is the in-process aggregate of the molecular model: the columnar
// stores, the type registries and the derived data (bonds, bounding volume,
// spatial index, name index) recomputed by Finalize.
//
// A structure is single-writer and single-address-space. Every operation runs
// to completion on the calling goroutine; the host serializes edits.
type Structure struct {
	Name string

	AtomStore    *store.AtomStore
	ResidueStore *store.ResidueStore
	ChainStore   *store.ChainStore
	ModelStore   *store.ModelStore

	BondStore         *store.BondStore
	BackboneBondStore *store.BondStore
	RungBondStore     *store.BondStore

	AtomTypes    *store.AtomTypeRegistry
	ResidueTypes *store.ResidueTypeRegistry

	BoundingBox *BoundingBox
	SpatialHash *SpatialHash
	NameIndex   *NameIndex

	bondHash *bondHash

	version uint64
	logger  *slog.Logger
}

// New creates an empty structure. A nil logger disables logging.
func New(name string, logger *slog.Logger) *Structure {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Structure{
		Name:              name,
		AtomStore:         store.NewAtomStore(0),
		ResidueStore:      store.NewResidueStore(0),
		ChainStore:        store.NewChainStore(0),
		ModelStore:        store.NewModelStore(0),
		BondStore:         store.NewBondStore(0),
		BackboneBondStore: store.NewBondStore(0),
		RungBondStore:     store.NewBondStore(0),
		logger:            logger,
	}
	s.AtomTypes = store.NewAtomTypeRegistry(s.AtomStore)
	s.ResidueTypes = store.NewResidueTypeRegistry(s.ResidueStore, s.AtomTypes)
	return s
}

// Version returns the modification counter. It moves on every structural edit
// and on Finalize; consumers key cached selections on it.
func (s *Structure) Version() uint64 { return s.version }

func (s *Structure) bumpVersion() { s.version++ }

// AtomCount returns the number of atom records.
func (s *Structure) AtomCount() int { return s.AtomStore.Count() }

// ResidueCount returns the number of residue records.
func (s *Structure) ResidueCount() int { return s.ResidueStore.Count() }

// ChainCount returns the number of chain records.
func (s *Structure) ChainCount() int { return s.ChainStore.Count() }

// ModelCount returns the number of model records.
func (s *Structure) ModelCount() int { return s.ModelStore.Count() }

// Finalize recomputes every derived structure from the current store
// contents: bounding volume, spatial index, bond sets, bond adjacency and the
// inverted name index. Loaders call it exactly once after writing all rows;
// the mutation engine calls it after each edit. Derived data is not kept live
// during a multi-step edit.
func (s *Structure) Finalize() {
	s.BoundingBox = CalculateBoundingBox(s)
	s.SpatialHash = NewSpatialHash(s)
	CalculateBonds(s)
	s.bondHash = newBondHash(s.BondStore, s.AtomStore.Count())
	s.NameIndex = BuildNameIndex(s)
	s.bumpVersion()

	s.logger.Debug("structure finalized",
		"name", s.Name,
		"atoms", s.AtomCount(),
		"residues", s.ResidueCount(),
		"chains", s.ChainCount(),
		"bonds", s.BondStore.Count(),
	)
}

// EachAtom calls fn with a reused atom proxy for every atom, in index order.
// A non-nil test skips atoms for which it returns false.
func (s *Structure) EachAtom(fn func(*AtomProxy), test func(*AtomProxy) bool) {
	ap := s.AtomProxy(0)
	n := s.AtomStore.Count()
	for i := 0; i < n; i++ {
		ap.Index = i
		if test != nil && !test(ap) {
			continue
		}
		fn(ap)
	}
}

// EachResidue calls fn with a reused residue proxy for every residue.
func (s *Structure) EachResidue(fn func(*ResidueProxy), test func(*ResidueProxy) bool) {
	rp := s.ResidueProxy(0)
	n := s.ResidueStore.Count()
	for i := 0; i < n; i++ {
		rp.Index = i
		if test != nil && !test(rp) {
			continue
		}
		fn(rp)
	}
}

// EachChain calls fn with a reused chain proxy for every chain.
func (s *Structure) EachChain(fn func(*ChainProxy), test func(*ChainProxy) bool) {
	cp := s.ChainProxy(0)
	n := s.ChainStore.Count()
	for i := 0; i < n; i++ {
		cp.Index = i
		if test != nil && !test(cp) {
			continue
		}
		fn(cp)
	}
}

// EachModel calls fn with a reused model proxy for every model.
func (s *Structure) EachModel(fn func(*ModelProxy), test func(*ModelProxy) bool) {
	mp := s.ModelProxy(0)
	n := s.ModelStore.Count()
	for i := 0; i < n; i++ {
		mp.Index = i
		if test != nil && !test(mp) {
			continue
		}
		fn(mp)
	}
}

// EachResidueN slides a window of n consecutive residues of the same chain
// over the structure and calls fn with the window's proxies. Used for
// adjacency checks over polymer stretches.
func (s *Structure) EachResidueN(n int, fn func([]*ResidueProxy)) {
	count := s.ResidueStore.Count()
	if count < n {
		return
	}
	window := make([]*ResidueProxy, n)
	for i := range window {
		window[i] = s.ResidueProxy(0)
	}
	cs := s.ResidueStore.ChainIndex
	for i := 0; i+n <= count; i++ {
		if cs[i] != cs[i+n-1] {
			continue
		}
		for j := range window {
			window[j].Index = i + j
		}
		fn(window)
	}
}

// IsBonded reports whether atom index i participates in at least one bond.
// Valid after Finalize.
func (s *Structure) IsBonded(i int) bool {
	return s.bondHash != nil && s.bondHash.degree(i) > 0
}

// BondedAtomIndices returns the atom indices bonded to atom i. Valid after
// Finalize.
func (s *Structure) BondedAtomIndices(i int) []int {
	if s.bondHash == nil {
		return nil
	}
	return s.bondHash.neighbors(i)
}
