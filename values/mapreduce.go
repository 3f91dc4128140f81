package values

import "math/big"

// MapReduce combines Map and Reduce in a single pass: each method returns
// the transformed node and the folded accumulator. Running Map then
// Reduce separately is observably equivalent; the single pass exists so
// large immutable subtrees are not rebuilt twice.
//
// The map law (variant preservation) and the monoid laws both apply; leaf
// defaults return (input unchanged, Zero).
type MapReduce[E, A any] interface {
	Monoid() Monoid[A]

	MapReduceLiteral(env E, l Literal) (Literal, A)
	MapReduceScalarValue(env E, v ScalarValue) (ScalarValue, A)
	MapReduceFloatValue(env E, v FloatValue) (FloatValue, A)
	MapReduceLiteralTy(env E, t LiteralTy) (LiteralTy, A)

	// Opaque leaves.
	MapReduceBigInt(env E, v *big.Int) (*big.Int, A)
	MapReduceIntegerTy(env E, t IntegerTy) (IntegerTy, A)
	MapReduceFloatTy(env E, t FloatTy) (FloatTy, A)
	MapReduceBool(env E, b bool) (bool, A)
	MapReduceChar(env E, c rune) (rune, A)
	MapReduceStr(env E, s string) (string, A)
	MapReduceByteStr(env E, bs []byte) ([]byte, A)
}

// MapReduceBase supplies the single-pass defaults for every literal layer
// node. See IterBase for the Self discipline.
type MapReduceBase[E, A any] struct {
	Self MapReduce[E, A]
	M    Monoid[A]
}

// NewMapReduceBase returns a base folding with m, dispatching through
// self.
func NewMapReduceBase[E, A any](self MapReduce[E, A], m Monoid[A]) MapReduceBase[E, A] {
	return MapReduceBase[E, A]{Self: self, M: m}
}

func (b *MapReduceBase[E, A]) self() MapReduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapReduceBase[E, A]) Monoid() Monoid[A] { return b.M }

func (b *MapReduceBase[E, A]) MapReduceLiteral(env E, l Literal) (Literal, A) {
	return RebuildFoldLiteral(b.self(), env, l)
}

func (b *MapReduceBase[E, A]) MapReduceScalarValue(env E, v ScalarValue) (ScalarValue, A) {
	return RebuildFoldScalarValue(b.self(), env, v)
}

func (b *MapReduceBase[E, A]) MapReduceFloatValue(env E, v FloatValue) (FloatValue, A) {
	return RebuildFoldFloatValue(b.self(), env, v)
}

func (b *MapReduceBase[E, A]) MapReduceLiteralTy(env E, t LiteralTy) (LiteralTy, A) {
	return RebuildFoldLiteralTy(b.self(), env, t)
}

// Leaf defaults: (input unchanged, neutral element).
func (b *MapReduceBase[E, A]) MapReduceBigInt(_ E, v *big.Int) (*big.Int, A) {
	return v, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceIntegerTy(_ E, t IntegerTy) (IntegerTy, A) {
	return t, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceFloatTy(_ E, t FloatTy) (FloatTy, A) {
	return t, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceBool(_ E, v bool) (bool, A) {
	return v, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceChar(_ E, c rune) (rune, A) {
	return c, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceStr(_ E, s string) (string, A) {
	return s, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceByteStr(_ E, bs []byte) ([]byte, A) {
	return bs, b.M.Zero()
}

// RebuildFoldLiteral transforms and folds the literal's children in one
// pass, preserving the outer variant.
func RebuildFoldLiteral[E, A any](v MapReduce[E, A], env E, l Literal) (Literal, A) {
	switch lit := l.(type) {
	case LScalar:
		sv, acc := v.MapReduceScalarValue(env, lit.Value)
		return LScalar{Value: sv}, acc
	case LFloat:
		fv, acc := v.MapReduceFloatValue(env, lit.Value)
		return LFloat{Value: fv}, acc
	case LBool:
		bv, acc := v.MapReduceBool(env, bool(lit))
		return LBool(bv), acc
	case LChar:
		cv, acc := v.MapReduceChar(env, rune(lit))
		return LChar(cv), acc
	case LByteStr:
		bs, acc := v.MapReduceByteStr(env, []byte(lit))
		return LByteStr(bs), acc
	case LStr:
		sv, acc := v.MapReduceStr(env, string(lit))
		return LStr(sv), acc
	default:
		return l, v.Monoid().Zero()
	}
}

// RebuildFoldScalarValue transforms and folds the scalar's fields in
// declaration order.
func RebuildFoldScalarValue[E, A any](v MapReduce[E, A], env E, s ScalarValue) (ScalarValue, A) {
	m := v.Monoid()
	value, a1 := v.MapReduceBigInt(env, s.Value)
	intTy, a2 := v.MapReduceIntegerTy(env, s.IntTy)
	return ScalarValue{Value: value, IntTy: intTy}, m.Plus(a1, a2)
}

// RebuildFoldFloatValue transforms and folds the float's fields in
// declaration order.
func RebuildFoldFloatValue[E, A any](v MapReduce[E, A], env E, f FloatValue) (FloatValue, A) {
	m := v.Monoid()
	value, a1 := v.MapReduceStr(env, f.Value)
	floatTy, a2 := v.MapReduceFloatTy(env, f.FloatTy)
	return FloatValue{Value: value, FloatTy: floatTy}, m.Plus(a1, a2)
}

// RebuildFoldLiteralTy transforms and folds the width tag under the
// original variant.
func RebuildFoldLiteralTy[E, A any](v MapReduce[E, A], env E, t LiteralTy) (LiteralTy, A) {
	switch ty := t.(type) {
	case TyInteger:
		intTy, acc := v.MapReduceIntegerTy(env, ty.IntTy)
		return TyInteger{IntTy: intTy}, acc
	case TyFloat:
		floatTy, acc := v.MapReduceFloatTy(env, ty.FloatTy)
		return TyFloat{FloatTy: floatTy}, acc
	default:
		return t, v.Monoid().Zero()
	}
}
