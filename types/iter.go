package types

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

// Iter extends the literal-layer read-only traversal with the node types
// introduced at the type layer. Methods for literal nodes are inherited
// from values.Iter; this layer adds exactly the node kinds it introduces.
type Iter[E any] interface {
	values.Iter[E]

	VisitTy(env E, t Ty)
	VisitTypeID(env E, id TypeID)
	VisitConstGeneric(env E, cg ConstGeneric)
	VisitGenericArgs(env E, args GenericArgs)
	VisitGenericParams(env E, params GenericParams)
	VisitTypeVar(env E, tv TypeVar)
	VisitConstGenericVar(env E, cgv ConstGenericVar)
	VisitField(env E, f Field)
	VisitVariant(env E, vr Variant)
	VisitTypeDeclKind(env E, k TypeDeclKind)
	VisitTypeDecl(env E, d *TypeDecl)

	// Opaque leaves introduced at this layer.
	VisitRefKind(env E, k RefKind)
	VisitBuiltinTy(env E, t BuiltinTy)
	VisitTypeDeclID(env E, id ids.TypeDeclID)
	VisitTypeVarID(env E, id ids.TypeVarID)
	VisitConstGenericVarID(env E, id ids.ConstGenericVarID)
	VisitGlobalDeclID(env E, id ids.GlobalDeclID)
}

// IterBase extends values.IterBase with type-layer defaults. The ancestor
// base supplies the literal defaults; each node type has exactly one
// source of defaults, the layer that introduces it.
type IterBase[E any] struct {
	values.IterBase[E]
	Self Iter[E]
}

// NewIterBase wires self through the whole ancestor chain.
func NewIterBase[E any](self Iter[E]) IterBase[E] {
	return IterBase[E]{
		IterBase: values.NewIterBase[E](self),
		Self:     self,
	}
}

func (b *IterBase[E]) self() Iter[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *IterBase[E]) VisitTy(env E, t Ty)                       { IterTy(b.self(), env, t) }
func (b *IterBase[E]) VisitTypeID(env E, id TypeID)              { IterTypeID(b.self(), env, id) }
func (b *IterBase[E]) VisitConstGeneric(env E, cg ConstGeneric)  { IterConstGeneric(b.self(), env, cg) }
func (b *IterBase[E]) VisitGenericArgs(env E, a GenericArgs)     { IterGenericArgs(b.self(), env, a) }
func (b *IterBase[E]) VisitGenericParams(env E, p GenericParams) { IterGenericParams(b.self(), env, p) }
func (b *IterBase[E]) VisitTypeVar(env E, tv TypeVar)            { IterTypeVar(b.self(), env, tv) }
func (b *IterBase[E]) VisitConstGenericVar(env E, v ConstGenericVar) {
	IterConstGenericVar(b.self(), env, v)
}
func (b *IterBase[E]) VisitField(env E, f Field)               { IterField(b.self(), env, f) }
func (b *IterBase[E]) VisitVariant(env E, vr Variant)          { IterVariant(b.self(), env, vr) }
func (b *IterBase[E]) VisitTypeDeclKind(env E, k TypeDeclKind) { IterTypeDeclKind(b.self(), env, k) }
func (b *IterBase[E]) VisitTypeDecl(env E, d *TypeDecl)        { IterTypeDecl(b.self(), env, d) }

// Leaf defaults: no action.
func (b *IterBase[E]) VisitRefKind(E, RefKind)                       {}
func (b *IterBase[E]) VisitBuiltinTy(E, BuiltinTy)                   {}
func (b *IterBase[E]) VisitTypeDeclID(E, ids.TypeDeclID)             {}
func (b *IterBase[E]) VisitTypeVarID(E, ids.TypeVarID)               {}
func (b *IterBase[E]) VisitConstGenericVarID(E, ids.ConstGenericVarID) {}
func (b *IterBase[E]) VisitGlobalDeclID(E, ids.GlobalDeclID)         {}

// IterTy performs the default one-level recursion for a type.
func IterTy[E any](v Iter[E], env E, t Ty) {
	switch ty := t.(type) {
	case TAdt:
		v.VisitTypeID(env, ty.ID)
		v.VisitGenericArgs(env, ty.Args)
	case TVar:
		v.VisitTypeVarID(env, ty.ID)
	case TLiteral:
		v.VisitLiteralTy(env, ty.Ty)
	case TNever:
		// No payload.
	case TRef:
		v.VisitTy(env, ty.Pointee)
		v.VisitRefKind(env, ty.Kind)
	case TRawPtr:
		v.VisitTy(env, ty.Pointee)
		v.VisitRefKind(env, ty.Kind)
	case TArrow:
		for _, in := range ty.Inputs {
			v.VisitTy(env, in)
		}
		v.VisitTy(env, ty.Output)
	}
}

// IterTypeID visits the payload of a type identifier.
func IterTypeID[E any](v Iter[E], env E, id TypeID) {
	switch i := id.(type) {
	case IDAdt:
		v.VisitTypeDeclID(env, i.ID)
	case IDTuple:
		// No payload.
	case IDBuiltin:
		v.VisitBuiltinTy(env, i.Builtin)
	}
}

// IterConstGeneric visits the payload of a const generic value.
func IterConstGeneric[E any](v Iter[E], env E, cg ConstGeneric) {
	switch c := cg.(type) {
	case CgGlobal:
		v.VisitGlobalDeclID(env, c.ID)
	case CgVar:
		v.VisitConstGenericVarID(env, c.ID)
	case CgValue:
		v.VisitLiteral(env, c.Value)
	}
}

// IterGenericArgs visits types then const generics, in order.
func IterGenericArgs[E any](v Iter[E], env E, a GenericArgs) {
	for _, t := range a.Types {
		v.VisitTy(env, t)
	}
	for _, cg := range a.ConstGenerics {
		v.VisitConstGeneric(env, cg)
	}
}

// IterGenericParams visits type binders then const generic binders.
func IterGenericParams[E any](v Iter[E], env E, p GenericParams) {
	for _, tv := range p.Types {
		v.VisitTypeVar(env, tv)
	}
	for _, cgv := range p.ConstGenerics {
		v.VisitConstGenericVar(env, cgv)
	}
}

// IterTypeVar visits the binder's fields in declaration order.
func IterTypeVar[E any](v Iter[E], env E, tv TypeVar) {
	v.VisitTypeVarID(env, tv.Index)
	v.VisitStr(env, tv.Name)
}

// IterConstGenericVar visits the binder's fields in declaration order.
func IterConstGenericVar[E any](v Iter[E], env E, cgv ConstGenericVar) {
	v.VisitConstGenericVarID(env, cgv.Index)
	v.VisitStr(env, cgv.Name)
	v.VisitLiteralTy(env, cgv.Ty)
}

// IterField visits the field's name then its type.
func IterField[E any](v Iter[E], env E, f Field) {
	v.VisitStr(env, f.Name)
	v.VisitTy(env, f.Ty)
}

// IterVariant visits the variant's name then its fields.
func IterVariant[E any](v Iter[E], env E, vr Variant) {
	v.VisitStr(env, vr.Name)
	for _, f := range vr.Fields {
		v.VisitField(env, f)
	}
}

// IterTypeDeclKind visits the declaration body's children.
func IterTypeDeclKind[E any](v Iter[E], env E, k TypeDeclKind) {
	switch kind := k.(type) {
	case KStruct:
		for _, f := range kind.Fields {
			v.VisitField(env, f)
		}
	case KEnum:
		for _, vr := range kind.Variants {
			v.VisitVariant(env, vr)
		}
	case KOpaque:
		// No payload.
	}
}

// IterTypeDecl visits the declaration's fields in declaration order.
func IterTypeDecl[E any](v Iter[E], env E, d *TypeDecl) {
	if d == nil {
		return
	}
	v.VisitTypeDeclID(env, d.ID)
	v.VisitStr(env, d.Name)
	v.VisitGenericParams(env, d.Generics)
	v.VisitTypeDeclKind(env, d.Kind)
}
