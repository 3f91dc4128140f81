package expressions

import (
	"fmt"

	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// BorrowKind distinguishes the ways a reference can be taken.
type BorrowKind int

const (
	BorrowShared BorrowKind = iota
	BorrowMut
)

func (k BorrowKind) String() string {
	if k == BorrowMut {
		return "mut"
	}
	return "shared"
}

// UnOp is a unary operator tag.
type UnOp int

const (
	UnNot UnOp = iota
	UnNeg
)

func (op UnOp) String() string {
	if op == UnNeg {
		return "-"
	}
	return "!"
}

// BinOp is a binary operator tag.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
)

var binOpNames = [...]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinRem: "%",
	BinEq: "==", BinNe: "!=", BinLt: "<", BinLe: "<=", BinGt: ">", BinGe: ">=",
}

func (op BinOp) String() string {
	if op < 0 || int(op) >= len(binOpNames) {
		return fmt.Sprintf("BinOp(%d)", int(op))
	}
	return binOpNames[op]
}

// BuiltinFunID identifies a builtin function the extraction pipeline
// assumes rather than extracts. Earlier revisions of the producer called
// these "assumed" functions; the role is the same.
type BuiltinFunID int

const (
	BuiltinBoxNew BuiltinFunID = iota
	BuiltinBoxFree
	BuiltinArrayIndex
	BuiltinSliceIndex
	BuiltinSliceLen
)

var builtinFunNames = [...]string{
	BuiltinBoxNew:     "BoxNew",
	BuiltinBoxFree:    "BoxFree",
	BuiltinArrayIndex: "ArrayIndex",
	BuiltinSliceIndex: "SliceIndex",
	BuiltinSliceLen:   "SliceLen",
}

func (f BuiltinFunID) String() string {
	if f < 0 || int(f) >= len(builtinFunNames) {
		return fmt.Sprintf("BuiltinFunID(%d)", int(f))
	}
	return builtinFunNames[f]
}

// FieldProjKind says what a field projection projects out of. Sealed.
type FieldProjKind interface {
	fieldProjKind()
	VariantName() string
}

// FkAdt projects a field out of a declared ADT, optionally inside one of
// its variants.
type FkAdt struct {
	ID      ids.TypeDeclID
	Variant *ids.VariantID
}

// FkTuple projects a field out of a tuple of the given arity.
type FkTuple struct {
	Arity int
}

func (FkAdt) fieldProjKind()   {}
func (FkTuple) fieldProjKind() {}

func (FkAdt) VariantName() string   { return "Adt" }
func (FkTuple) VariantName() string { return "Tuple" }

// Projection is one step of a place projection. Sealed.
type Projection interface {
	projection()
	VariantName() string
}

// PDeref dereferences.
type PDeref struct{}

// PField selects a field.
type PField struct {
	Kind  FieldProjKind
	Field ids.FieldID
}

func (PDeref) projection() {}
func (PField) projection() {}

func (PDeref) VariantName() string { return "Deref" }
func (PField) VariantName() string { return "Field" }

// Place is a path to a memory location: a local variable plus a
// projection chain.
type Place struct {
	Var        ids.VarID
	Projection []Projection
}

// FunID identifies a callable: a declared function or a builtin. Sealed.
type FunID interface {
	funID()
	VariantName() string
}

// FRegular references a declared function.
type FRegular struct {
	ID ids.FunDeclID
}

// FBuiltin references a builtin function.
type FBuiltin struct {
	Builtin BuiltinFunID
}

func (FRegular) funID() {}
func (FBuiltin) funID() {}

func (FRegular) VariantName() string { return "Regular" }
func (FBuiltin) VariantName() string { return "Builtin" }

// FnPtr is an instantiated reference to a callable.
type FnPtr struct {
	Func FunID
	Args types.GenericArgs
}

// RawConstant is the value part of a constant expression. Sealed.
type RawConstant interface {
	rawConstant()
	VariantName() string
}

// CLiteral is a concrete literal constant.
type CLiteral struct {
	Value values.Literal
}

// CVar references a const generic variable.
type CVar struct {
	ID ids.ConstGenericVarID
}

// CFnPtr is a function pointer constant.
type CFnPtr struct {
	Ptr FnPtr
}

func (CLiteral) rawConstant() {}
func (CVar) rawConstant()     {}
func (CFnPtr) rawConstant()   {}

func (CLiteral) VariantName() string { return "Literal" }
func (CVar) VariantName() string     { return "Var" }
func (CFnPtr) VariantName() string   { return "FnPtr" }

// ConstantExpr pairs a raw constant with its type.
type ConstantExpr struct {
	Value RawConstant
	Ty    types.Ty
}

// Operand is an input to an rvalue or call. Sealed.
type Operand interface {
	operand()
	VariantName() string
}

// OpCopy reads a place without consuming it.
type OpCopy struct {
	Place Place
}

// OpMove reads and consumes a place.
type OpMove struct {
	Place Place
}

// OpConst is a constant operand.
type OpConst struct {
	Const ConstantExpr
}

func (OpCopy) operand()  {}
func (OpMove) operand()  {}
func (OpConst) operand() {}

func (OpCopy) VariantName() string  { return "Copy" }
func (OpMove) VariantName() string  { return "Move" }
func (OpConst) VariantName() string { return "Const" }

// AggregateKind says what an aggregate rvalue builds. Sealed.
type AggregateKind interface {
	aggregateKind()
	VariantName() string
}

// AkAdt builds a declared ADT, tuple or builtin, optionally a specific
// variant.
type AkAdt struct {
	ID      types.TypeID
	Variant *ids.VariantID
	Args    types.GenericArgs
}

// AkArray builds a fixed-length array.
type AkArray struct {
	Ty  types.Ty
	Len types.ConstGeneric
}

func (AkAdt) aggregateKind()   {}
func (AkArray) aggregateKind() {}

func (AkAdt) VariantName() string   { return "Adt" }
func (AkArray) VariantName() string { return "Array" }

// Rvalue is the right-hand side of an assignment. Sealed.
type Rvalue interface {
	rvalue()
	VariantName() string
}

// RvUse forwards an operand.
type RvUse struct {
	Operand Operand
}

// RvRef takes a reference to a place.
type RvRef struct {
	Place Place
	Kind  BorrowKind
}

// RvUnary applies a unary operator.
type RvUnary struct {
	Op      UnOp
	Operand Operand
}

// RvBinary applies a binary operator.
type RvBinary struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// RvDiscriminant reads the discriminant of an enum value.
type RvDiscriminant struct {
	Place Place
}

// RvGlobal reads a global.
type RvGlobal struct {
	ID ids.GlobalDeclID
}

// RvAggregate builds an aggregate value from operands.
type RvAggregate struct {
	Kind     AggregateKind
	Operands []Operand
}

func (RvUse) rvalue()          {}
func (RvRef) rvalue()          {}
func (RvUnary) rvalue()        {}
func (RvBinary) rvalue()       {}
func (RvDiscriminant) rvalue() {}
func (RvGlobal) rvalue()       {}
func (RvAggregate) rvalue()    {}

func (RvUse) VariantName() string          { return "Use" }
func (RvRef) VariantName() string          { return "Ref" }
func (RvUnary) VariantName() string        { return "UnaryOp" }
func (RvBinary) VariantName() string       { return "BinaryOp" }
func (RvDiscriminant) VariantName() string { return "Discriminant" }
func (RvGlobal) VariantName() string       { return "Global" }
func (RvAggregate) VariantName() string    { return "Aggregate" }
