package types

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

// Reduce extends the literal-layer accumulating traversal with the
// type-layer node kinds. Children fold left to right in field declaration
// order; opaque leaves contribute the neutral element.
type Reduce[E, A any] interface {
	values.Reduce[E, A]

	ReduceTy(env E, t Ty) A
	ReduceTypeID(env E, id TypeID) A
	ReduceConstGeneric(env E, cg ConstGeneric) A
	ReduceGenericArgs(env E, args GenericArgs) A
	ReduceGenericParams(env E, params GenericParams) A
	ReduceTypeVar(env E, tv TypeVar) A
	ReduceConstGenericVar(env E, cgv ConstGenericVar) A
	ReduceField(env E, f Field) A
	ReduceVariant(env E, vr Variant) A
	ReduceTypeDeclKind(env E, k TypeDeclKind) A
	ReduceTypeDecl(env E, d *TypeDecl) A

	// Opaque leaves introduced at this layer.
	ReduceRefKind(env E, k RefKind) A
	ReduceBuiltinTy(env E, t BuiltinTy) A
	ReduceTypeDeclID(env E, id ids.TypeDeclID) A
	ReduceTypeVarID(env E, id ids.TypeVarID) A
	ReduceConstGenericVarID(env E, id ids.ConstGenericVarID) A
	ReduceGlobalDeclID(env E, id ids.GlobalDeclID) A
}

// ReduceBase extends values.ReduceBase with type-layer folding defaults.
type ReduceBase[E, A any] struct {
	values.ReduceBase[E, A]
	Self Reduce[E, A]
}

// NewReduceBase wires self and the monoid through the ancestor chain.
func NewReduceBase[E, A any](self Reduce[E, A], m values.Monoid[A]) ReduceBase[E, A] {
	return ReduceBase[E, A]{
		ReduceBase: values.NewReduceBase[E, A](self, m),
		Self:       self,
	}
}

func (b *ReduceBase[E, A]) self() Reduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *ReduceBase[E, A]) ReduceTy(env E, t Ty) A          { return FoldTy(b.self(), env, t) }
func (b *ReduceBase[E, A]) ReduceTypeID(env E, id TypeID) A { return FoldTypeID(b.self(), env, id) }
func (b *ReduceBase[E, A]) ReduceConstGeneric(env E, cg ConstGeneric) A {
	return FoldConstGeneric(b.self(), env, cg)
}
func (b *ReduceBase[E, A]) ReduceGenericArgs(env E, a GenericArgs) A {
	return FoldGenericArgs(b.self(), env, a)
}
func (b *ReduceBase[E, A]) ReduceGenericParams(env E, p GenericParams) A {
	return FoldGenericParams(b.self(), env, p)
}
func (b *ReduceBase[E, A]) ReduceTypeVar(env E, tv TypeVar) A {
	return FoldTypeVar(b.self(), env, tv)
}
func (b *ReduceBase[E, A]) ReduceConstGenericVar(env E, cgv ConstGenericVar) A {
	return FoldConstGenericVar(b.self(), env, cgv)
}
func (b *ReduceBase[E, A]) ReduceField(env E, f Field) A      { return FoldField(b.self(), env, f) }
func (b *ReduceBase[E, A]) ReduceVariant(env E, vr Variant) A { return FoldVariant(b.self(), env, vr) }
func (b *ReduceBase[E, A]) ReduceTypeDeclKind(env E, k TypeDeclKind) A {
	return FoldTypeDeclKind(b.self(), env, k)
}
func (b *ReduceBase[E, A]) ReduceTypeDecl(env E, d *TypeDecl) A {
	return FoldTypeDecl(b.self(), env, d)
}

// Leaf defaults: the neutral element.
func (b *ReduceBase[E, A]) ReduceRefKind(E, RefKind) A                       { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceBuiltinTy(E, BuiltinTy) A                   { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceTypeDeclID(E, ids.TypeDeclID) A             { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceTypeVarID(E, ids.TypeVarID) A               { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceConstGenericVarID(E, ids.ConstGenericVarID) A { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceGlobalDeclID(E, ids.GlobalDeclID) A         { return b.M.Zero() }

// FoldTy folds a type's immediate children left to right.
func FoldTy[E, A any](v Reduce[E, A], env E, t Ty) A {
	m := v.Monoid()
	switch ty := t.(type) {
	case TAdt:
		return m.Plus(v.ReduceTypeID(env, ty.ID), v.ReduceGenericArgs(env, ty.Args))
	case TVar:
		return v.ReduceTypeVarID(env, ty.ID)
	case TLiteral:
		return v.ReduceLiteralTy(env, ty.Ty)
	case TRef:
		return m.Plus(v.ReduceTy(env, ty.Pointee), v.ReduceRefKind(env, ty.Kind))
	case TRawPtr:
		return m.Plus(v.ReduceTy(env, ty.Pointee), v.ReduceRefKind(env, ty.Kind))
	case TArrow:
		acc := m.Zero()
		for _, in := range ty.Inputs {
			acc = m.Plus(acc, v.ReduceTy(env, in))
		}
		return m.Plus(acc, v.ReduceTy(env, ty.Output))
	default:
		return m.Zero()
	}
}

// FoldTypeID folds the payload of a type identifier.
func FoldTypeID[E, A any](v Reduce[E, A], env E, id TypeID) A {
	switch i := id.(type) {
	case IDAdt:
		return v.ReduceTypeDeclID(env, i.ID)
	case IDBuiltin:
		return v.ReduceBuiltinTy(env, i.Builtin)
	default:
		return v.Monoid().Zero()
	}
}

// FoldConstGeneric folds the payload of a const generic value.
func FoldConstGeneric[E, A any](v Reduce[E, A], env E, cg ConstGeneric) A {
	switch c := cg.(type) {
	case CgGlobal:
		return v.ReduceGlobalDeclID(env, c.ID)
	case CgVar:
		return v.ReduceConstGenericVarID(env, c.ID)
	case CgValue:
		return v.ReduceLiteral(env, c.Value)
	default:
		return v.Monoid().Zero()
	}
}

// FoldGenericArgs folds types then const generics, in order.
func FoldGenericArgs[E, A any](v Reduce[E, A], env E, a GenericArgs) A {
	m := v.Monoid()
	acc := m.Zero()
	for _, t := range a.Types {
		acc = m.Plus(acc, v.ReduceTy(env, t))
	}
	for _, cg := range a.ConstGenerics {
		acc = m.Plus(acc, v.ReduceConstGeneric(env, cg))
	}
	return acc
}

// FoldGenericParams folds type binders then const generic binders.
func FoldGenericParams[E, A any](v Reduce[E, A], env E, p GenericParams) A {
	m := v.Monoid()
	acc := m.Zero()
	for _, tv := range p.Types {
		acc = m.Plus(acc, v.ReduceTypeVar(env, tv))
	}
	for _, cgv := range p.ConstGenerics {
		acc = m.Plus(acc, v.ReduceConstGenericVar(env, cgv))
	}
	return acc
}

// FoldTypeVar folds the binder's fields in declaration order.
func FoldTypeVar[E, A any](v Reduce[E, A], env E, tv TypeVar) A {
	m := v.Monoid()
	return m.Plus(v.ReduceTypeVarID(env, tv.Index), v.ReduceStr(env, tv.Name))
}

// FoldConstGenericVar folds the binder's fields in declaration order.
func FoldConstGenericVar[E, A any](v Reduce[E, A], env E, cgv ConstGenericVar) A {
	m := v.Monoid()
	acc := v.ReduceConstGenericVarID(env, cgv.Index)
	acc = m.Plus(acc, v.ReduceStr(env, cgv.Name))
	return m.Plus(acc, v.ReduceLiteralTy(env, cgv.Ty))
}

// FoldField folds the field's name then its type.
func FoldField[E, A any](v Reduce[E, A], env E, f Field) A {
	m := v.Monoid()
	return m.Plus(v.ReduceStr(env, f.Name), v.ReduceTy(env, f.Ty))
}

// FoldVariant folds the variant's name then its fields.
func FoldVariant[E, A any](v Reduce[E, A], env E, vr Variant) A {
	m := v.Monoid()
	acc := v.ReduceStr(env, vr.Name)
	for _, f := range vr.Fields {
		acc = m.Plus(acc, v.ReduceField(env, f))
	}
	return acc
}

// FoldTypeDeclKind folds the declaration body's children.
func FoldTypeDeclKind[E, A any](v Reduce[E, A], env E, k TypeDeclKind) A {
	m := v.Monoid()
	switch kind := k.(type) {
	case KStruct:
		acc := m.Zero()
		for _, f := range kind.Fields {
			acc = m.Plus(acc, v.ReduceField(env, f))
		}
		return acc
	case KEnum:
		acc := m.Zero()
		for _, vr := range kind.Variants {
			acc = m.Plus(acc, v.ReduceVariant(env, vr))
		}
		return acc
	default:
		return m.Zero()
	}
}

// FoldTypeDecl folds the declaration's fields in declaration order.
func FoldTypeDecl[E, A any](v Reduce[E, A], env E, d *TypeDecl) A {
	m := v.Monoid()
	if d == nil {
		return m.Zero()
	}
	acc := v.ReduceTypeDeclID(env, d.ID)
	acc = m.Plus(acc, v.ReduceStr(env, d.Name))
	acc = m.Plus(acc, v.ReduceGenericParams(env, d.Generics))
	return m.Plus(acc, v.ReduceTypeDeclKind(env, d.Kind))
}
