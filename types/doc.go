// Package types defines the type-layer nodes of the IR and the
// type-layer visitors, which extend the literal-layer visitors from
// package values.
//
// The catalogue here is representative rather than exhaustive: the point
// is the structural pattern by which node types integrate with the
// traversal framework. Sums are sealed interfaces with value-type
// variants; enum tags (RefKind, BuiltinTy) and identifier types are
// opaque leaves with total defaults.
package types
