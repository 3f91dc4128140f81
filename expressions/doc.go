// Package expressions defines the expression-layer nodes of the IR
// (places, operands, constants, rvalues) and the expression-layer
// visitors, which extend the type-layer visitors.
//
// The builtin function identifier (BuiltinFunID) is an enum tag outside
// the recursive family and is handled as an opaque leaf, like the
// operator tags.
package expressions
