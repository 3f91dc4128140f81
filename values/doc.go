// Package values defines the literal and primitive value model at the base
// of the IR, together with the literal-layer visitors.
//
// This is the foundational layer: every other IR package imports values;
// values imports only ids. Values are produced once by the extraction
// pipeline and are immutable afterwards — traversals read them or build
// new, structurally parallel ones, never mutate in place.
//
// Key design constraints:
//   - Scalars store an unbounded *big.Int next to a width tag, so range
//     checking and width-generic arithmetic happen before any fixed-width
//     encoding is chosen. The range invariant is the producer's to uphold;
//     WellFormed is a helper, not a constructor-time check.
//   - Floats store their canonical textual form, never a native float:
//     native floats have no total order and no map-key-safe equality
//     (NaN, signed zero), and the literal layer needs both.
package values
