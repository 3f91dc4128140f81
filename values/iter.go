package values

import "math/big"

// Iter is the read-only traversal over the literal layer.
//
// One method per node type, shaped (env, node). The environment E is an
// ambient value threaded down unchanged by every default; a node override
// may thread a modified environment to its children. Any observable
// effect of an Iter pass lives in state owned by the visitor instance,
// never in a return value.
//
// *big.Int, the width tags and the primitive payloads (bool, rune,
// string, []byte) are opaque leaves: they are referenced by the IR but
// are not part of its recursive family, so each gets one explicit leaf
// method whose default does nothing. The defaults are total; a freshly
// embedded IterBase is a usable (if silent) visitor with no overrides.
type Iter[E any] interface {
	VisitLiteral(env E, l Literal)
	VisitScalarValue(env E, v ScalarValue)
	VisitFloatValue(env E, v FloatValue)
	VisitLiteralTy(env E, t LiteralTy)

	// Opaque leaves.
	VisitBigInt(env E, v *big.Int)
	VisitIntegerTy(env E, t IntegerTy)
	VisitFloatTy(env E, t FloatTy)
	VisitBool(env E, b bool)
	VisitChar(env E, c rune)
	VisitStr(env E, s string)
	VisitByteStr(env E, bs []byte)
}

// IterBase supplies the default depth-first behavior for every literal
// layer node. Self must be the outermost visitor: default recursion
// dispatches children through Self, so overriding one method anywhere in
// a visitor built on this base redirects every path that reaches that
// node kind. Concrete visitors embed the base of the highest layer they
// need and wire Self via the layer's NewIterBase constructor.
type IterBase[E any] struct {
	Self Iter[E]
}

// NewIterBase returns a base whose default recursion dispatches through
// self.
func NewIterBase[E any](self Iter[E]) IterBase[E] {
	return IterBase[E]{Self: self}
}

func (b *IterBase[E]) self() Iter[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *IterBase[E]) VisitLiteral(env E, l Literal)         { IterLiteral(b.self(), env, l) }
func (b *IterBase[E]) VisitScalarValue(env E, v ScalarValue) { IterScalarValue(b.self(), env, v) }
func (b *IterBase[E]) VisitFloatValue(env E, v FloatValue)   { IterFloatValue(b.self(), env, v) }
func (b *IterBase[E]) VisitLiteralTy(env E, t LiteralTy)     { IterLiteralTy(b.self(), env, t) }

// Leaf defaults: no action.
func (b *IterBase[E]) VisitBigInt(E, *big.Int)     {}
func (b *IterBase[E]) VisitIntegerTy(E, IntegerTy) {}
func (b *IterBase[E]) VisitFloatTy(E, FloatTy)     {}
func (b *IterBase[E]) VisitBool(E, bool)           {}
func (b *IterBase[E]) VisitChar(E, rune)           {}
func (b *IterBase[E]) VisitStr(E, string)          {}
func (b *IterBase[E]) VisitByteStr(E, []byte)      {}

// IterLiteral performs the default one-level recursion for a literal,
// dispatching each immediate child through v. Overrides call it to get
// default-for-children behavior.
func IterLiteral[E any](v Iter[E], env E, l Literal) {
	switch lit := l.(type) {
	case LScalar:
		v.VisitScalarValue(env, lit.Value)
	case LFloat:
		v.VisitFloatValue(env, lit.Value)
	case LBool:
		v.VisitBool(env, bool(lit))
	case LChar:
		v.VisitChar(env, rune(lit))
	case LByteStr:
		v.VisitByteStr(env, []byte(lit))
	case LStr:
		v.VisitStr(env, string(lit))
	}
}

// IterScalarValue visits the scalar's fields in declaration order.
func IterScalarValue[E any](v Iter[E], env E, s ScalarValue) {
	v.VisitBigInt(env, s.Value)
	v.VisitIntegerTy(env, s.IntTy)
}

// IterFloatValue visits the float's fields in declaration order.
func IterFloatValue[E any](v Iter[E], env E, f FloatValue) {
	v.VisitStr(env, f.Value)
	v.VisitFloatTy(env, f.FloatTy)
}

// IterLiteralTy visits the width tag carried by the literal type, if any.
func IterLiteralTy[E any](v Iter[E], env E, t LiteralTy) {
	switch ty := t.(type) {
	case TyInteger:
		v.VisitIntegerTy(env, ty.IntTy)
	case TyFloat:
		v.VisitFloatTy(env, ty.FloatTy)
	case TyBool, TyChar:
		// No payload.
	}
}
