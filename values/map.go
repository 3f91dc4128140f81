package values

import "math/big"

// Map is the structure-preserving transformation over the literal layer.
//
// The map law: a conforming implementation never changes which variant a
// node is — it only changes what is nested inside. The defaults rebuild
// each node from its mapped children under the same variant, so the law
// holds by construction for everything a consumer does not override; an
// override must return a value of the same node type and keep the variant
// identity.
//
// Leaf defaults return the input unchanged.
type Map[E any] interface {
	MapLiteral(env E, l Literal) Literal
	MapScalarValue(env E, v ScalarValue) ScalarValue
	MapFloatValue(env E, v FloatValue) FloatValue
	MapLiteralTy(env E, t LiteralTy) LiteralTy

	// Opaque leaves.
	MapBigInt(env E, v *big.Int) *big.Int
	MapIntegerTy(env E, t IntegerTy) IntegerTy
	MapFloatTy(env E, t FloatTy) FloatTy
	MapBool(env E, b bool) bool
	MapChar(env E, c rune) rune
	MapStr(env E, s string) string
	MapByteStr(env E, bs []byte) []byte
}

// MapBase supplies the rebuilding defaults for every literal layer node.
// See IterBase for the Self discipline.
type MapBase[E any] struct {
	Self Map[E]
}

// NewMapBase returns a base whose default recursion dispatches through
// self.
func NewMapBase[E any](self Map[E]) MapBase[E] {
	return MapBase[E]{Self: self}
}

func (b *MapBase[E]) self() Map[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapBase[E]) MapLiteral(env E, l Literal) Literal {
	return RebuildLiteral(b.self(), env, l)
}

func (b *MapBase[E]) MapScalarValue(env E, v ScalarValue) ScalarValue {
	return RebuildScalarValue(b.self(), env, v)
}

func (b *MapBase[E]) MapFloatValue(env E, v FloatValue) FloatValue {
	return RebuildFloatValue(b.self(), env, v)
}

func (b *MapBase[E]) MapLiteralTy(env E, t LiteralTy) LiteralTy {
	return RebuildLiteralTy(b.self(), env, t)
}

// Leaf defaults: identity.
func (b *MapBase[E]) MapBigInt(_ E, v *big.Int) *big.Int    { return v }
func (b *MapBase[E]) MapIntegerTy(_ E, t IntegerTy) IntegerTy { return t }
func (b *MapBase[E]) MapFloatTy(_ E, t FloatTy) FloatTy     { return t }
func (b *MapBase[E]) MapBool(_ E, v bool) bool              { return v }
func (b *MapBase[E]) MapChar(_ E, c rune) rune              { return c }
func (b *MapBase[E]) MapStr(_ E, s string) string           { return s }
func (b *MapBase[E]) MapByteStr(_ E, bs []byte) []byte      { return bs }

// RebuildLiteral maps each immediate child through v and reconstructs the
// literal under its original variant.
func RebuildLiteral[E any](v Map[E], env E, l Literal) Literal {
	switch lit := l.(type) {
	case LScalar:
		return LScalar{Value: v.MapScalarValue(env, lit.Value)}
	case LFloat:
		return LFloat{Value: v.MapFloatValue(env, lit.Value)}
	case LBool:
		return LBool(v.MapBool(env, bool(lit)))
	case LChar:
		return LChar(v.MapChar(env, rune(lit)))
	case LByteStr:
		return LByteStr(v.MapByteStr(env, []byte(lit)))
	case LStr:
		return LStr(v.MapStr(env, string(lit)))
	default:
		return l
	}
}

// RebuildScalarValue maps the scalar's fields in declaration order.
func RebuildScalarValue[E any](v Map[E], env E, s ScalarValue) ScalarValue {
	return ScalarValue{
		Value: v.MapBigInt(env, s.Value),
		IntTy: v.MapIntegerTy(env, s.IntTy),
	}
}

// RebuildFloatValue maps the float's fields in declaration order.
func RebuildFloatValue[E any](v Map[E], env E, f FloatValue) FloatValue {
	return FloatValue{
		Value:   v.MapStr(env, f.Value),
		FloatTy: v.MapFloatTy(env, f.FloatTy),
	}
}

// RebuildLiteralTy maps the width tag under the original variant.
func RebuildLiteralTy[E any](v Map[E], env E, t LiteralTy) LiteralTy {
	switch ty := t.(type) {
	case TyInteger:
		return TyInteger{IntTy: v.MapIntegerTy(env, ty.IntTy)}
	case TyFloat:
		return TyFloat{FloatTy: v.MapFloatTy(env, ty.FloatTy)}
	default:
		return t
	}
}
