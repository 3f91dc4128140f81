// Package crates defines the top of the IR: declaration records, ordered
// declaration groups, the crate container, and the crate-layer visitors,
// which extend the statement-layer visitors.
//
// A crate's Declarations slice is the authoritative traversal order.
// Visitors resolve group ids against the per-kind maps and visit each
// resolved record exactly once; map iteration order is never relied on.
// Map entries that no group references are not traversed.
//
// The package also carries the passes that live at the crate boundary:
// declaration-group computation from a dependency graph (Tarjan),
// structural validation, and deterministic pretty printing.
package crates
