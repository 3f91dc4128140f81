package values

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
)

// Literal is the leaf value type referenced by constant operands
// throughout the IR.
//
// Sealed: only LScalar, LFloat, LBool, LChar, LByteStr and LStr implement
// it. Variants are value types; a Literal is never mutated after
// construction.
type Literal interface {
	literalNode()
	// VariantName names the outer variant, for diagnostics and for
	// checking that mapping preserves variants.
	VariantName() string
	// String renders the literal for printing.
	String() string
}

// LScalar is an integer literal.
type LScalar struct {
	Value ScalarValue
}

// LFloat is a float literal.
type LFloat struct {
	Value FloatValue
}

// LBool is a boolean literal.
type LBool bool

// LChar is a character literal.
type LChar rune

// LByteStr is a byte-string literal, an ordered sequence of byte values.
type LByteStr []byte

// LStr is a string literal.
type LStr string

func (LScalar) literalNode()  {}
func (LFloat) literalNode()   {}
func (LBool) literalNode()    {}
func (LChar) literalNode()    {}
func (LByteStr) literalNode() {}
func (LStr) literalNode()     {}

func (LScalar) VariantName() string  { return "Scalar" }
func (LFloat) VariantName() string   { return "Float" }
func (LBool) VariantName() string    { return "Bool" }
func (LChar) VariantName() string    { return "Char" }
func (LByteStr) VariantName() string { return "ByteStr" }
func (LStr) VariantName() string     { return "Str" }

func (l LScalar) String() string { return l.Value.String() }
func (l LFloat) String() string  { return l.Value.String() }
func (l LBool) String() string   { return fmt.Sprintf("%t", bool(l)) }
func (l LChar) String() string   { return fmt.Sprintf("%q", rune(l)) }
func (l LByteStr) String() string {
	return fmt.Sprintf("b\"%x\"", []byte(l))
}
func (l LStr) String() string { return fmt.Sprintf("%q", string(l)) }

// literalIndex fixes the variant order used by CompareLiteral.
func literalIndex(l Literal) int {
	switch l.(type) {
	case LScalar:
		return 0
	case LFloat:
		return 1
	case LBool:
		return 2
	case LChar:
		return 3
	case LByteStr:
		return 4
	case LStr:
		return 5
	default:
		return 6
	}
}

// CompareLiteral is a total order over literals: variant index first,
// then field by field within the variant.
func CompareLiteral(a, b Literal) int {
	if c := literalIndex(a) - literalIndex(b); c != 0 {
		return sign(c)
	}
	switch av := a.(type) {
	case LScalar:
		return av.Value.Compare(b.(LScalar).Value)
	case LFloat:
		return av.Value.Compare(b.(LFloat).Value)
	case LBool:
		bv := b.(LBool)
		switch {
		case av == bv:
			return 0
		case bool(!av):
			return -1
		default:
			return 1
		}
	case LChar:
		return sign(int(av) - int(b.(LChar)))
	case LByteStr:
		return bytes.Compare([]byte(av), []byte(b.(LByteStr)))
	case LStr:
		return strings.Compare(string(av), string(b.(LStr)))
	default:
		return 0
	}
}

// LiteralsEqual is structural equality over literals.
func LiteralsEqual(a, b Literal) bool {
	return CompareLiteral(a, b) == 0
}

// TypeOf returns the literal type tag of a literal, when it has one.
// Byte strings and strings are sequence literals with no literal type tag
// of their own; TypeOf returns (nil, false) for them.
func TypeOf(l Literal) (LiteralTy, bool) {
	switch lit := l.(type) {
	case LScalar:
		return TyInteger{IntTy: lit.Value.IntTy}, true
	case LFloat:
		return TyFloat{FloatTy: lit.Value.FloatTy}, true
	case LBool:
		return TyBool{}, true
	case LChar:
		return TyChar{}, true
	default:
		return nil, false
	}
}

// CloneBigInt returns a defensive copy of v, or nil for nil.
// Consumer map overrides use it so transformed trees share no mutable
// big.Int state with their inputs.
func CloneBigInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
