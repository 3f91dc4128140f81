// Package statements defines the statement-layer nodes of the IR
// (statements, blocks, switches, calls, function bodies) and the
// statement-layer visitors, which extend the expression-layer visitors.
//
// AbortKind is a sum type but sits outside the recursive family: the
// visitors treat it as an opaque leaf, so overriding VisitAbortKind is
// the only way to look inside an abort.
package statements
