// Package testutil provides the shared structure fixtures used across the
// package tests.
//
// This package is intended for use in tests and benchmarks only. It builds
// small finalized structures with known geometry so that traversal, bond,
// selection and edit assertions can use exact counts.
//
// # Fixtures
//
//	s := testutil.MakeProtein(10) // one poly-alanine chain
//	s := testutil.MakeSystem(10)  // protein plus waters and an ion
//	rd := testutil.AlanineTemplate()
package testutil
