// Package molgo is an in-process structural engine for molecular models.
//
// A structure holds atoms, residues, chains and models in columnar stores
// with flyweight proxy access, deduplicating type registries, derived bond
// sets, a spatial index and an inverted name index. On top of the stores sit
// a textual selection language compiled to tri-state predicates, a BitSet
// representation for materialized selections, and a mutation engine for
// structural edits that preserves the hierarchy's contiguity invariants.
//
// The facade in this package evaluates selections with a version-keyed cache
// and a name-index fast path:
//
//	s := loadStructure()
//	eng, err := molgo.New(s)
//	if err != nil {
//		log.Fatal(err)
//	}
//	calphas, err := eng.Select(".CA and :A")
//
// Everything is single-threaded by design: stores, proxies and edits run to
// completion on the calling goroutine, and the host application serializes
// mutations.
package molgo
