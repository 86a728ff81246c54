// Package slow holds the reference implementations of the nanops functions.
//
// Every function has the same signature and result as its counterpart in
// package nanops but is written for clarity on top of gonum's floats and stat
// packages: lanes are filtered into fresh slices, moving windows are
// recomputed from scratch at every position and partial sorts are full sorts.
// The benchmark harness reports how much faster nanops is than this package,
// and the tests use it as the oracle for nanops results.
package slow
