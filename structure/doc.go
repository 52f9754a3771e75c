// Package structure assembles the columnar stores, type registries and
// derived data into the molecular model aggregate, and layers the flyweight
// proxy views, the loader-facing builder and the mutation engine on top.
//
// Access follows the flyweight pattern: proxies are cheap index-carrying
// views over the shared stores, re-pointed by assigning Index rather than
// reallocated. Traversal helpers reuse a single proxy per level.
//
// Edits go through the mutation engine (InsertResidue, AssignAtomsToResidue,
// RemoveAtoms, RemoveResidue, RemoveChain, AppendResidueToChain,
// MutateResidue), which preserves the contiguity invariants of the hierarchy
// and refreshes derived data via Finalize.
package structure
