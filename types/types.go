package types

import (
	"fmt"

	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

// RefKind distinguishes shared from mutable borrows.
type RefKind int

const (
	RefShared RefKind = iota
	RefMut
)

func (k RefKind) String() string {
	if k == RefMut {
		return "mut"
	}
	return "shared"
}

// BuiltinTy identifies a builtin type handled like a primitive.
type BuiltinTy int

const (
	BuiltinBox BuiltinTy = iota
	BuiltinArray
	BuiltinSlice
	BuiltinStr
)

var builtinTyNames = [...]string{
	BuiltinBox:   "Box",
	BuiltinArray: "Array",
	BuiltinSlice: "Slice",
	BuiltinStr:   "Str",
}

func (t BuiltinTy) String() string {
	if t < 0 || int(t) >= len(builtinTyNames) {
		return fmt.Sprintf("BuiltinTy(%d)", int(t))
	}
	return builtinTyNames[t]
}

// TypeID identifies the head of an ADT type: a declared ADT, the tuple
// constructor, or a builtin. Sealed.
type TypeID interface {
	typeID()
	VariantName() string
}

// IDAdt references a declared ADT.
type IDAdt struct {
	ID ids.TypeDeclID
}

// IDTuple is the tuple constructor (unit is the 0-tuple).
type IDTuple struct{}

// IDBuiltin references a builtin type.
type IDBuiltin struct {
	Builtin BuiltinTy
}

func (IDAdt) typeID()     {}
func (IDTuple) typeID()   {}
func (IDBuiltin) typeID() {}

func (IDAdt) VariantName() string     { return "Adt" }
func (IDTuple) VariantName() string   { return "Tuple" }
func (IDBuiltin) VariantName() string { return "Builtin" }

// ConstGeneric is a const generic value: a global constant, a const
// generic variable, or a concrete literal. Sealed.
type ConstGeneric interface {
	constGeneric()
	VariantName() string
}

// CgGlobal references a global constant.
type CgGlobal struct {
	ID ids.GlobalDeclID
}

// CgVar references a const generic variable.
type CgVar struct {
	ID ids.ConstGenericVarID
}

// CgValue holds a concrete literal value.
type CgValue struct {
	Value values.Literal
}

func (CgGlobal) constGeneric() {}
func (CgVar) constGeneric()    {}
func (CgValue) constGeneric()  {}

func (CgGlobal) VariantName() string { return "Global" }
func (CgVar) VariantName() string    { return "Var" }
func (CgValue) VariantName() string  { return "Value" }

// Ty is a type. Sealed.
type Ty interface {
	tyNode()
	VariantName() string
}

// TAdt is an ADT application: user ADTs, tuples and builtins alike.
type TAdt struct {
	ID   TypeID
	Args GenericArgs
}

// TVar is a type variable.
type TVar struct {
	ID ids.TypeVarID
}

// TLiteral is a literal type.
type TLiteral struct {
	Ty values.LiteralTy
}

// TNever is the type of computations that do not return.
type TNever struct{}

// TRef is a borrow.
type TRef struct {
	Pointee Ty
	Kind    RefKind
}

// TRawPtr is a raw pointer.
type TRawPtr struct {
	Pointee Ty
	Kind    RefKind
}

// TArrow is a function pointer type.
type TArrow struct {
	Inputs []Ty
	Output Ty
}

func (TAdt) tyNode()     {}
func (TVar) tyNode()     {}
func (TLiteral) tyNode() {}
func (TNever) tyNode()   {}
func (TRef) tyNode()     {}
func (TRawPtr) tyNode()  {}
func (TArrow) tyNode()   {}

func (TAdt) VariantName() string     { return "Adt" }
func (TVar) VariantName() string     { return "TypeVar" }
func (TLiteral) VariantName() string { return "Literal" }
func (TNever) VariantName() string   { return "Never" }
func (TRef) VariantName() string     { return "Ref" }
func (TRawPtr) VariantName() string  { return "RawPtr" }
func (TArrow) VariantName() string   { return "Arrow" }

// GenericArgs instantiates the generic parameters of a type or function.
type GenericArgs struct {
	Types         []Ty
	ConstGenerics []ConstGeneric
}

// IsEmpty reports whether no arguments are supplied.
func (a GenericArgs) IsEmpty() bool {
	return len(a.Types) == 0 && len(a.ConstGenerics) == 0
}

// TypeVar is a type variable binder.
type TypeVar struct {
	Index ids.TypeVarID
	Name  string
}

// ConstGenericVar is a const generic variable binder.
type ConstGenericVar struct {
	Index ids.ConstGenericVarID
	Name  string
	Ty    values.LiteralTy
}

// GenericParams binds the generic parameters of a declaration.
type GenericParams struct {
	Types         []TypeVar
	ConstGenerics []ConstGenericVar
}

// Field is a field of a struct or enum variant. Name is empty for
// positional fields.
type Field struct {
	Name string
	Ty   Ty
}

// Variant is one variant of an enum.
type Variant struct {
	Name   string
	Fields []Field
}

// TypeDeclKind is the body of a type declaration. Sealed.
type TypeDeclKind interface {
	typeDeclKind()
	VariantName() string
}

// KStruct is a structure with ordered fields.
type KStruct struct {
	Fields []Field
}

// KEnum is an enumeration with ordered variants.
type KEnum struct {
	Variants []Variant
}

// KOpaque is a type whose definition is not extracted: a local type
// marked opaque, or an external one.
type KOpaque struct{}

func (KStruct) typeDeclKind() {}
func (KEnum) typeDeclKind()   {}
func (KOpaque) typeDeclKind() {}

func (KStruct) VariantName() string { return "Struct" }
func (KEnum) VariantName() string   { return "Enum" }
func (KOpaque) VariantName() string { return "Opaque" }

// TypeDecl is a type declaration.
type TypeDecl struct {
	ID       ids.TypeDeclID
	Name     string
	Generics GenericParams
	Kind     TypeDeclKind
}
