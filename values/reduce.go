package values

import "math/big"

// Monoid supplies the accumulation contract shared by Reduce and
// MapReduce: Zero is the neutral element, Plus combines two accumulators.
// Plus must be associative and Zero must be its left and right identity
// for separate Map-then-Reduce passes to agree with one MapReduce pass.
// Plus need not be commutative: children always fold left to right in
// field declaration order.
type Monoid[A any] struct {
	Zero func() A
	Plus func(a, b A) A
}

// SumMonoid accumulates integer counts.
func SumMonoid() Monoid[int] {
	return Monoid[int]{
		Zero: func() int { return 0 },
		Plus: func(a, b int) int { return a + b },
	}
}

// ConcatMonoid accumulates strings left to right. Concatenation is
// associative but not commutative, which makes it a good probe for
// traversal-order determinism.
func ConcatMonoid() Monoid[string] {
	return Monoid[string]{
		Zero: func() string { return "" },
		Plus: func(a, b string) string { return a + b },
	}
}

// AppendMonoid accumulates slices left to right without mutating either
// operand.
func AppendMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Zero: func() []T { return nil },
		Plus: func(a, b []T) []T {
			if len(a) == 0 {
				return b
			}
			if len(b) == 0 {
				return a
			}
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// Reduce is the accumulating traversal over the literal layer.
//
// Each method folds a node to a value of the accumulator type A. Defaults
// fold every immediate child left to right with Plus starting from Zero;
// opaque leaves contribute Zero. A concrete visitor supplies the monoid,
// normally by storing one in its ReduceBase.
type Reduce[E, A any] interface {
	Monoid() Monoid[A]

	ReduceLiteral(env E, l Literal) A
	ReduceScalarValue(env E, v ScalarValue) A
	ReduceFloatValue(env E, v FloatValue) A
	ReduceLiteralTy(env E, t LiteralTy) A

	// Opaque leaves.
	ReduceBigInt(env E, v *big.Int) A
	ReduceIntegerTy(env E, t IntegerTy) A
	ReduceFloatTy(env E, t FloatTy) A
	ReduceBool(env E, b bool) A
	ReduceChar(env E, c rune) A
	ReduceStr(env E, s string) A
	ReduceByteStr(env E, bs []byte) A
}

// ReduceBase supplies the folding defaults for every literal layer node.
// See IterBase for the Self discipline.
type ReduceBase[E, A any] struct {
	Self Reduce[E, A]
	M    Monoid[A]
}

// NewReduceBase returns a base folding with m, dispatching through self.
func NewReduceBase[E, A any](self Reduce[E, A], m Monoid[A]) ReduceBase[E, A] {
	return ReduceBase[E, A]{Self: self, M: m}
}

func (b *ReduceBase[E, A]) self() Reduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *ReduceBase[E, A]) Monoid() Monoid[A] { return b.M }

func (b *ReduceBase[E, A]) ReduceLiteral(env E, l Literal) A {
	return FoldLiteral(b.self(), env, l)
}

func (b *ReduceBase[E, A]) ReduceScalarValue(env E, v ScalarValue) A {
	return FoldScalarValue(b.self(), env, v)
}

func (b *ReduceBase[E, A]) ReduceFloatValue(env E, v FloatValue) A {
	return FoldFloatValue(b.self(), env, v)
}

func (b *ReduceBase[E, A]) ReduceLiteralTy(env E, t LiteralTy) A {
	return FoldLiteralTy(b.self(), env, t)
}

// Leaf defaults: the neutral element.
func (b *ReduceBase[E, A]) ReduceBigInt(E, *big.Int) A     { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceIntegerTy(E, IntegerTy) A { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceFloatTy(E, FloatTy) A     { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceBool(E, bool) A           { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceChar(E, rune) A           { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceStr(E, string) A          { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceByteStr(E, []byte) A      { return b.M.Zero() }

// FoldLiteral folds the literal's immediate children left to right.
func FoldLiteral[E, A any](v Reduce[E, A], env E, l Literal) A {
	switch lit := l.(type) {
	case LScalar:
		return v.ReduceScalarValue(env, lit.Value)
	case LFloat:
		return v.ReduceFloatValue(env, lit.Value)
	case LBool:
		return v.ReduceBool(env, bool(lit))
	case LChar:
		return v.ReduceChar(env, rune(lit))
	case LByteStr:
		return v.ReduceByteStr(env, []byte(lit))
	case LStr:
		return v.ReduceStr(env, string(lit))
	default:
		return v.Monoid().Zero()
	}
}

// FoldScalarValue folds the scalar's fields in declaration order.
func FoldScalarValue[E, A any](v Reduce[E, A], env E, s ScalarValue) A {
	m := v.Monoid()
	return m.Plus(v.ReduceBigInt(env, s.Value), v.ReduceIntegerTy(env, s.IntTy))
}

// FoldFloatValue folds the float's fields in declaration order.
func FoldFloatValue[E, A any](v Reduce[E, A], env E, f FloatValue) A {
	m := v.Monoid()
	return m.Plus(v.ReduceStr(env, f.Value), v.ReduceFloatTy(env, f.FloatTy))
}

// FoldLiteralTy folds the width tag carried by the literal type, if any.
func FoldLiteralTy[E, A any](v Reduce[E, A], env E, t LiteralTy) A {
	switch ty := t.(type) {
	case TyInteger:
		return v.ReduceIntegerTy(env, ty.IntTy)
	case TyFloat:
		return v.ReduceFloatTy(env, ty.FloatTy)
	default:
		return v.Monoid().Zero()
	}
}
