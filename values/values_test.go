package values

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralSealed(t *testing.T) {
	// Compile-time check that every variant satisfies the sealed sums.
	var _ Literal = LScalar{}
	var _ Literal = LFloat{}
	var _ Literal = LBool(true)
	var _ Literal = LChar('x')
	var _ Literal = LByteStr{0x01}
	var _ Literal = LStr("s")

	var _ LiteralTy = TyInteger{}
	var _ LiteralTy = TyFloat{}
	var _ LiteralTy = TyBool{}
	var _ LiteralTy = TyChar{}
}

func TestIntegerTyNames(t *testing.T) {
	tests := []struct {
		ty     IntegerTy
		name   string
		signed bool
		bits   uint
	}{
		{Isize, "isize", true, 0},
		{I8, "i8", true, 8},
		{I32, "i32", true, 32},
		{I128, "i128", true, 128},
		{Usize, "usize", false, 0},
		{U16, "u16", false, 16},
		{U64, "u64", false, 64},
		{U128, "u128", false, 128},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.ty.String())
		assert.Equal(t, tt.signed, tt.ty.Signed())
		assert.Equal(t, tt.bits, tt.ty.Bits())
	}
}

func TestIntegerTyContains(t *testing.T) {
	tests := []struct {
		ty   IntegerTy
		v    int64
		want bool
	}{
		{I8, 127, true},
		{I8, 128, false},
		{I8, -128, true},
		{I8, -129, false},
		{U8, 255, true},
		{U8, 256, false},
		{U8, -1, false},
		{I32, 1 << 31, false},
		{I32, 1<<31 - 1, true},
		{U64, 0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ty.Contains(big.NewInt(tt.v)),
			"%s.Contains(%d)", tt.ty, tt.v)
	}
}

func TestIntegerTyContainsWide(t *testing.T) {
	// 2^127 - 1 fits i128; 2^127 does not.
	max := new(big.Int).Lsh(big.NewInt(1), 127)
	over := new(big.Int).Set(max)
	max.Sub(max, big.NewInt(1))

	assert.True(t, I128.Contains(max))
	assert.False(t, I128.Contains(over))
	assert.True(t, U128.Contains(over))
}

func TestScalarWellFormed(t *testing.T) {
	assert.True(t, NewScalar(5, I32).WellFormed())
	assert.False(t, ScalarValue{Value: big.NewInt(300), IntTy: U8}.WellFormed())
	assert.False(t, ScalarValue{IntTy: I32}.WellFormed())
}

func TestScalarOrdering(t *testing.T) {
	a := NewScalar(1, I32)
	b := NewScalar(2, I32)
	c := NewScalar(2, I64)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, b.Compare(NewScalar(2, I32)))
	// Same value, different width: ordered by the tag.
	assert.Equal(t, -1, b.Compare(c))
	assert.True(t, b.Equal(NewScalar(2, I32)))
	assert.False(t, b.Equal(c))
}

func TestFloatValueTextualOrder(t *testing.T) {
	// The float layer orders by textual form; NaN and signed zero are
	// ordinary strings here, which is the point of the representation.
	nan := FloatValue{Value: "NaN", FloatTy: F64}
	negZero := FloatValue{Value: "-0.0", FloatTy: F64}
	posZero := FloatValue{Value: "0.0", FloatTy: F64}

	assert.Equal(t, 0, nan.Compare(nan))
	assert.True(t, nan.Equal(nan))
	assert.NotEqual(t, 0, negZero.Compare(posZero))
	assert.Equal(t, -1, FloatValue{Value: "1.5", FloatTy: F32}.Compare(
		FloatValue{Value: "1.5", FloatTy: F64}))
}

func TestLiteralCompareVariantOrder(t *testing.T) {
	ordered := []Literal{
		LScalar{Value: NewScalar(0, I8)},
		LFloat{Value: FloatValue{Value: "0.0", FloatTy: F32}},
		LBool(false),
		LChar('a'),
		LByteStr{0x00},
		LStr("a"),
	}
	for i := range ordered {
		for j := range ordered {
			got := CompareLiteral(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%v < %v", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%v > %v", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got)
			}
		}
	}
}

func TestLiteralCompareWithinVariant(t *testing.T) {
	assert.Equal(t, -1, CompareLiteral(LBool(false), LBool(true)))
	assert.Equal(t, 1, CompareLiteral(LChar('b'), LChar('a')))
	assert.Equal(t, -1, CompareLiteral(LStr("a"), LStr("b")))
	assert.Equal(t, -1, CompareLiteral(LByteStr{0x01}, LByteStr{0x01, 0x02}))
	assert.True(t, LiteralsEqual(
		LScalar{Value: NewScalar(5, I32)},
		LScalar{Value: NewScalar(5, I32)},
	))
}

func TestTypeOf(t *testing.T) {
	ty, ok := TypeOf(LScalar{Value: NewScalar(5, I32)})
	require.True(t, ok)
	assert.Equal(t, TyInteger{IntTy: I32}, ty)

	ty, ok = TypeOf(LFloat{Value: FloatValue{Value: "2.5", FloatTy: F64}})
	require.True(t, ok)
	assert.Equal(t, TyFloat{FloatTy: F64}, ty)

	ty, ok = TypeOf(LBool(true))
	require.True(t, ok)
	assert.Equal(t, TyBool{}, ty)

	_, ok = TypeOf(LStr("no tag"))
	assert.False(t, ok)
}

func TestRendering(t *testing.T) {
	assert.Equal(t, "5: i32", NewScalar(5, I32).String())
	assert.Equal(t, "2.5: f64", FloatValue{Value: "2.5", FloatTy: F64}.String())
	assert.Equal(t, "true", LBool(true).String())
	assert.Equal(t, "'a'", LChar('a').String())
	assert.Equal(t, `"hi"`, LStr("hi").String())
	assert.Equal(t, `b"0102"`, LByteStr{0x01, 0x02}.String())
	assert.Equal(t, "bool", TyBool{}.String())
	assert.Equal(t, "i64", TyInteger{IntTy: I64}.String())
}
