package values

import (
	"fmt"
	"math/big"
	"strings"
)

// IntegerTy is the width tag of an integer literal or scalar.
type IntegerTy int

const (
	Isize IntegerTy = iota
	I8
	I16
	I32
	I64
	I128
	Usize
	U8
	U16
	U32
	U64
	U128
)

var integerTyNames = [...]string{
	Isize: "isize",
	I8:    "i8",
	I16:   "i16",
	I32:   "i32",
	I64:   "i64",
	I128:  "i128",
	Usize: "usize",
	U8:    "u8",
	U16:   "u16",
	U32:   "u32",
	U64:   "u64",
	U128:  "u128",
}

func (t IntegerTy) String() string {
	if t < 0 || int(t) >= len(integerTyNames) {
		return fmt.Sprintf("IntegerTy(%d)", int(t))
	}
	return integerTyNames[t]
}

// Signed reports whether the tag denotes a signed width.
func (t IntegerTy) Signed() bool { return t <= I128 }

// Bits returns the bit width of the tag, or 0 for the pointer-sized tags
// whose width is target dependent.
func (t IntegerTy) Bits() uint {
	switch t {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64:
		return 64
	case I128, U128:
		return 128
	default:
		return 0
	}
}

// Bounds returns the inclusive [min, max] range implied by the tag.
// Pointer-sized tags use their widest possible interpretation (64 bits).
func (t IntegerTy) Bounds() (min, max *big.Int) {
	bits := t.Bits()
	if bits == 0 {
		bits = 64
	}
	one := big.NewInt(1)
	if t.Signed() {
		// [-2^(bits-1), 2^(bits-1)-1]
		max = new(big.Int).Lsh(one, bits-1)
		min = new(big.Int).Neg(max)
		max.Sub(max, one)
		return min, max
	}
	// [0, 2^bits-1]
	max = new(big.Int).Lsh(one, bits)
	max.Sub(max, one)
	return new(big.Int), max
}

// Contains reports whether v fits the range implied by the tag.
func (t IntegerTy) Contains(v *big.Int) bool {
	min, max := t.Bounds()
	return v.Cmp(min) >= 0 && v.Cmp(max) <= 0
}

// FloatTy is the width tag of a float literal.
type FloatTy int

const (
	F16 FloatTy = iota
	F32
	F64
	F128
)

var floatTyNames = [...]string{
	F16:  "f16",
	F32:  "f32",
	F64:  "f64",
	F128: "f128",
}

func (t FloatTy) String() string {
	if t < 0 || int(t) >= len(floatTyNames) {
		return fmt.Sprintf("FloatTy(%d)", int(t))
	}
	return floatTyNames[t]
}

// LiteralTy describes the type of a literal without holding a value.
//
// This is a sealed interface: only TyInteger, TyFloat, TyBool and TyChar
// implement it. The marker method keeps the sum closed so type switches
// over it stay exhaustive.
type LiteralTy interface {
	literalTy()
	// VariantName names the outer variant, for diagnostics and for
	// checking that mapping preserves variants.
	VariantName() string
	// String renders the literal type for printing.
	String() string
}

// TyInteger is an integer literal type with its width.
type TyInteger struct {
	IntTy IntegerTy
}

// TyFloat is a float literal type with its width.
type TyFloat struct {
	FloatTy FloatTy
}

// TyBool is the boolean literal type.
type TyBool struct{}

// TyChar is the character literal type.
type TyChar struct{}

func (TyInteger) literalTy() {}
func (TyFloat) literalTy()   {}
func (TyBool) literalTy()    {}
func (TyChar) literalTy()    {}

func (TyInteger) VariantName() string { return "Integer" }
func (TyFloat) VariantName() string   { return "Float" }
func (TyBool) VariantName() string    { return "Bool" }
func (TyChar) VariantName() string    { return "Char" }

func (t TyInteger) String() string { return t.IntTy.String() }
func (t TyFloat) String() string   { return t.FloatTy.String() }
func (TyBool) String() string      { return "bool" }
func (TyChar) String() string      { return "char" }

// literalTyIndex fixes the variant order used by CompareLiteralTy.
func literalTyIndex(t LiteralTy) int {
	switch t.(type) {
	case TyInteger:
		return 0
	case TyFloat:
		return 1
	case TyBool:
		return 2
	case TyChar:
		return 3
	default:
		return 4
	}
}

// CompareLiteralTy is a total order over literal types: variant index
// first, then the width tag.
func CompareLiteralTy(a, b LiteralTy) int {
	if c := literalTyIndex(a) - literalTyIndex(b); c != 0 {
		return sign(c)
	}
	switch at := a.(type) {
	case TyInteger:
		return sign(int(at.IntTy) - int(b.(TyInteger).IntTy))
	case TyFloat:
		return sign(int(at.FloatTy) - int(b.(TyFloat).FloatTy))
	default:
		return 0
	}
}

// ScalarValue pairs an unbounded-precision integer with its width tag.
//
// Well-formedness (the integer fits the tag's range) is an invariant owed
// by the producer, deliberately not enforced here: storing the unbounded
// integer lets overflow checks and width-generic arithmetic run uniformly
// before a fixed-width encoding is picked.
type ScalarValue struct {
	Value *big.Int
	IntTy IntegerTy
}

// NewScalar builds a scalar from a machine integer, which always fits.
func NewScalar(v int64, ty IntegerTy) ScalarValue {
	return ScalarValue{Value: big.NewInt(v), IntTy: ty}
}

// WellFormed reports whether the stored integer fits the width tag.
func (s ScalarValue) WellFormed() bool {
	return s.Value != nil && s.IntTy.Contains(s.Value)
}

// Equal is structural equality.
func (s ScalarValue) Equal(o ScalarValue) bool {
	return s.Compare(o) == 0
}

// Compare orders scalars field by field: value first, then width tag.
func (s ScalarValue) Compare(o ScalarValue) int {
	if c := s.Value.Cmp(o.Value); c != 0 {
		return c
	}
	return sign(int(s.IntTy) - int(o.IntTy))
}

func (s ScalarValue) String() string {
	return fmt.Sprintf("%s: %s", s.Value, s.IntTy)
}

// FloatValue pairs the canonical textual form of a float with its width
// tag. Equality and ordering derive from the text, which is total where
// native float comparison is not.
type FloatValue struct {
	Value   string
	FloatTy FloatTy
}

func (f FloatValue) Equal(o FloatValue) bool {
	return f == o
}

// Compare orders floats by their textual form, then by width tag.
func (f FloatValue) Compare(o FloatValue) int {
	if c := strings.Compare(f.Value, o.Value); c != 0 {
		return c
	}
	return sign(int(f.FloatTy) - int(o.FloatTy))
}

func (f FloatValue) String() string {
	return fmt.Sprintf("%s: %s", f.Value, f.FloatTy)
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
