package values

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type none = struct{}

// leafRecorder counts which opaque-leaf handlers fire during an Iter pass.
type leafRecorder struct {
	IterBase[none]
	bigInts int
	bools   int
	chars   int
}

func newLeafRecorder() *leafRecorder {
	r := &leafRecorder{}
	r.IterBase = NewIterBase[none](r)
	return r
}

func (r *leafRecorder) VisitBigInt(_ none, _ *big.Int) { r.bigInts++ }
func (r *leafRecorder) VisitBool(_ none, _ bool)       { r.bools++ }
func (r *leafRecorder) VisitChar(_ none, _ rune)       { r.chars++ }

func TestLeafIsolation(t *testing.T) {
	// A char or bool literal never reaches the integer-leaf handler,
	// and a scalar never reaches the char/bool handlers.
	r := newLeafRecorder()
	r.VisitLiteral(none{}, LChar('x'))
	r.VisitLiteral(none{}, LBool(true))
	assert.Equal(t, 0, r.bigInts)
	assert.Equal(t, 1, r.bools)
	assert.Equal(t, 1, r.chars)

	r = newLeafRecorder()
	r.VisitLiteral(none{}, LScalar{Value: NewScalar(5, I32)})
	assert.Equal(t, 1, r.bigInts)
	assert.Equal(t, 0, r.bools)
	assert.Equal(t, 0, r.chars)
}

// bigIntCounter reduces a tree to the number of big integers in it.
type bigIntCounter struct {
	ReduceBase[none, int]
}

func newBigIntCounter() *bigIntCounter {
	c := &bigIntCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, SumMonoid())
	return c
}

func (c *bigIntCounter) ReduceBigInt(_ none, _ *big.Int) int { return 1 }

func TestReduceScalarExample(t *testing.T) {
	// {value = 5, int_ty = I32} with zero = 0, plus = +, leaf = 1 yields 1.
	c := newBigIntCounter()
	got := c.ReduceLiteral(none{}, LScalar{Value: NewScalar(5, I32)})
	assert.Equal(t, 1, got)
}

// negator maps every big integer to its negation.
type negator struct {
	MapBase[none]
}

func newNegator() *negator {
	n := &negator{}
	n.MapBase = NewMapBase[none](n)
	return n
}

func (n *negator) MapBigInt(_ none, v *big.Int) *big.Int {
	return new(big.Int).Neg(v)
}

func TestMapScalarExample(t *testing.T) {
	// {value = 5, int_ty = I32} mapped with leaf = negate yields
	// {value = -5, int_ty = I32}.
	n := newNegator()
	got := n.MapLiteral(none{}, LScalar{Value: NewScalar(5, I32)})

	want := LScalar{Value: NewScalar(-5, I32)}
	require.IsType(t, LScalar{}, got)
	assert.True(t, LiteralsEqual(want, got))
}

func TestMapIdentityLaw(t *testing.T) {
	// Mapping with all-identity leaf transforms returns a structurally
	// equal value for any input.
	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)

	inputs := []Literal{
		LScalar{Value: NewScalar(-42, I64)},
		LFloat{Value: FloatValue{Value: "3.25", FloatTy: F32}},
		LBool(true),
		LChar('λ'),
		LByteStr{0xde, 0xad},
		LStr("hello"),
	}
	for _, in := range inputs {
		out := id.MapLiteral(none{}, in)
		assert.True(t, LiteralsEqual(in, out), "identity map changed %v", in)
		assert.Equal(t, in.VariantName(), out.VariantName())
	}
}

func TestMapPreservesVariant(t *testing.T) {
	n := newNegator()
	inputs := []Literal{
		LScalar{Value: NewScalar(7, U8)},
		LFloat{Value: FloatValue{Value: "0.5", FloatTy: F16}},
		LBool(false),
		LChar('z'),
		LByteStr{0x01},
		LStr("s"),
	}
	for _, in := range inputs {
		out := n.MapLiteral(none{}, in)
		assert.Equal(t, in.VariantName(), out.VariantName())
	}
}

func TestMapDoesNotMutateInput(t *testing.T) {
	in := LScalar{Value: NewScalar(5, I32)}
	n := newNegator()
	_ = n.MapLiteral(none{}, in)
	assert.Equal(t, int64(5), in.Value.Value.Int64())
}

// mapReduceNegCounter negates big integers and counts them in one pass.
type mapReduceNegCounter struct {
	MapReduceBase[none, int]
}

func newMapReduceNegCounter() *mapReduceNegCounter {
	v := &mapReduceNegCounter{}
	v.MapReduceBase = NewMapReduceBase[none, int](v, SumMonoid())
	return v
}

func (v *mapReduceNegCounter) MapReduceBigInt(_ none, b *big.Int) (*big.Int, int) {
	return new(big.Int).Neg(b), 1
}

func TestMapReduceMatchesMapThenReduce(t *testing.T) {
	inputs := []Literal{
		LScalar{Value: NewScalar(5, I32)},
		LScalar{Value: NewScalar(-9, Isize)},
		LFloat{Value: FloatValue{Value: "1.0", FloatTy: F64}},
		LBool(true),
		LStr("x"),
	}

	neg := newNegator()
	cnt := newBigIntCounter()
	mr := newMapReduceNegCounter()

	for _, in := range inputs {
		mapped := neg.MapLiteral(none{}, in)
		folded := cnt.ReduceLiteral(none{}, mapped)

		got, acc := mr.MapReduceLiteral(none{}, in)
		assert.True(t, LiteralsEqual(mapped, got), "trees differ for %v", in)
		assert.Equal(t, folded, acc, "accumulators differ for %v", in)
	}
}

// leafTagger reduces leaves to distinguishable strings so concatenation
// order exposes the traversal order.
type leafTagger struct {
	ReduceBase[none, string]
}

func newLeafTagger() *leafTagger {
	v := &leafTagger{}
	v.ReduceBase = NewReduceBase[none, string](v, ConcatMonoid())
	return v
}

func (v *leafTagger) ReduceBigInt(_ none, b *big.Int) string    { return "v(" + b.String() + ")" }
func (v *leafTagger) ReduceIntegerTy(_ none, t IntegerTy) string { return "t(" + t.String() + ")" }

func TestReduceDeterministicOrder(t *testing.T) {
	// Concatenation is associative but not commutative: the fold must
	// follow field declaration order (value before width tag), and two
	// passes over structurally equal trees must agree exactly.
	lit := LScalar{Value: NewScalar(3, I16)}

	got := newLeafTagger().ReduceLiteral(none{}, lit)
	assert.Equal(t, "v(3)t(i16)", got)
	assert.Equal(t, got, newLeafTagger().ReduceLiteral(none{}, lit))
}

func TestDefaultsAreTotal(t *testing.T) {
	// A visitor with no overrides must handle every variant without
	// panicking and with neutral results.
	iter := &struct{ IterBase[none] }{}
	iter.IterBase = NewIterBase[none](iter)
	red := &struct{ ReduceBase[none, int] }{}
	red.ReduceBase = NewReduceBase[none, int](red, SumMonoid())

	all := []Literal{
		LScalar{Value: NewScalar(1, U32)},
		LFloat{Value: FloatValue{Value: "2.0", FloatTy: F128}},
		LBool(false),
		LChar('c'),
		LByteStr(nil),
		LStr(""),
	}
	for _, l := range all {
		iter.VisitLiteral(none{}, l)
		assert.Equal(t, 0, red.ReduceLiteral(none{}, l))
	}
}
