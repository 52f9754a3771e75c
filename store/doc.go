// Package store implements the columnar storage layer of molgo: a generic
// resizable Table of named, fixed-width, same-length columns, the concrete
// Atom/Residue/Chain/Model/Bond stores built on it, and the deduplicating
// atom-type and residue-type registries.
//
// Concrete stores expose their columns as plain typed slices for allocation-
// free traversal; the Table re-binds those slices through pointer-backed
// columns whenever growth re-allocates.
package store
