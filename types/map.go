package types

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

// Map extends the literal-layer structure-preserving transformation with
// the type-layer node kinds. The map law holds here too: defaults rebuild
// every node under its original variant.
type Map[E any] interface {
	values.Map[E]

	MapTy(env E, t Ty) Ty
	MapTypeID(env E, id TypeID) TypeID
	MapConstGeneric(env E, cg ConstGeneric) ConstGeneric
	MapGenericArgs(env E, args GenericArgs) GenericArgs
	MapGenericParams(env E, params GenericParams) GenericParams
	MapTypeVar(env E, tv TypeVar) TypeVar
	MapConstGenericVar(env E, cgv ConstGenericVar) ConstGenericVar
	MapField(env E, f Field) Field
	MapVariant(env E, vr Variant) Variant
	MapTypeDeclKind(env E, k TypeDeclKind) TypeDeclKind
	MapTypeDecl(env E, d *TypeDecl) *TypeDecl

	// Opaque leaves introduced at this layer.
	MapRefKind(env E, k RefKind) RefKind
	MapBuiltinTy(env E, t BuiltinTy) BuiltinTy
	MapTypeDeclID(env E, id ids.TypeDeclID) ids.TypeDeclID
	MapTypeVarID(env E, id ids.TypeVarID) ids.TypeVarID
	MapConstGenericVarID(env E, id ids.ConstGenericVarID) ids.ConstGenericVarID
	MapGlobalDeclID(env E, id ids.GlobalDeclID) ids.GlobalDeclID
}

// MapBase extends values.MapBase with type-layer rebuilding defaults.
type MapBase[E any] struct {
	values.MapBase[E]
	Self Map[E]
}

// NewMapBase wires self through the whole ancestor chain.
func NewMapBase[E any](self Map[E]) MapBase[E] {
	return MapBase[E]{
		MapBase: values.NewMapBase[E](self),
		Self:    self,
	}
}

func (b *MapBase[E]) self() Map[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapBase[E]) MapTy(env E, t Ty) Ty               { return RebuildTy(b.self(), env, t) }
func (b *MapBase[E]) MapTypeID(env E, id TypeID) TypeID  { return RebuildTypeID(b.self(), env, id) }
func (b *MapBase[E]) MapConstGeneric(env E, cg ConstGeneric) ConstGeneric {
	return RebuildConstGeneric(b.self(), env, cg)
}
func (b *MapBase[E]) MapGenericArgs(env E, a GenericArgs) GenericArgs {
	return RebuildGenericArgs(b.self(), env, a)
}
func (b *MapBase[E]) MapGenericParams(env E, p GenericParams) GenericParams {
	return RebuildGenericParams(b.self(), env, p)
}
func (b *MapBase[E]) MapTypeVar(env E, tv TypeVar) TypeVar {
	return RebuildTypeVar(b.self(), env, tv)
}
func (b *MapBase[E]) MapConstGenericVar(env E, cgv ConstGenericVar) ConstGenericVar {
	return RebuildConstGenericVar(b.self(), env, cgv)
}
func (b *MapBase[E]) MapField(env E, f Field) Field       { return RebuildField(b.self(), env, f) }
func (b *MapBase[E]) MapVariant(env E, vr Variant) Variant { return RebuildVariant(b.self(), env, vr) }
func (b *MapBase[E]) MapTypeDeclKind(env E, k TypeDeclKind) TypeDeclKind {
	return RebuildTypeDeclKind(b.self(), env, k)
}
func (b *MapBase[E]) MapTypeDecl(env E, d *TypeDecl) *TypeDecl {
	return RebuildTypeDecl(b.self(), env, d)
}

// Leaf defaults: identity.
func (b *MapBase[E]) MapRefKind(_ E, k RefKind) RefKind         { return k }
func (b *MapBase[E]) MapBuiltinTy(_ E, t BuiltinTy) BuiltinTy   { return t }
func (b *MapBase[E]) MapTypeDeclID(_ E, id ids.TypeDeclID) ids.TypeDeclID { return id }
func (b *MapBase[E]) MapTypeVarID(_ E, id ids.TypeVarID) ids.TypeVarID    { return id }
func (b *MapBase[E]) MapConstGenericVarID(_ E, id ids.ConstGenericVarID) ids.ConstGenericVarID {
	return id
}
func (b *MapBase[E]) MapGlobalDeclID(_ E, id ids.GlobalDeclID) ids.GlobalDeclID { return id }

// RebuildTy rebuilds a type from its mapped children under the original
// variant.
func RebuildTy[E any](v Map[E], env E, t Ty) Ty {
	switch ty := t.(type) {
	case TAdt:
		return TAdt{
			ID:   v.MapTypeID(env, ty.ID),
			Args: v.MapGenericArgs(env, ty.Args),
		}
	case TVar:
		return TVar{ID: v.MapTypeVarID(env, ty.ID)}
	case TLiteral:
		return TLiteral{Ty: v.MapLiteralTy(env, ty.Ty)}
	case TNever:
		return ty
	case TRef:
		return TRef{
			Pointee: v.MapTy(env, ty.Pointee),
			Kind:    v.MapRefKind(env, ty.Kind),
		}
	case TRawPtr:
		return TRawPtr{
			Pointee: v.MapTy(env, ty.Pointee),
			Kind:    v.MapRefKind(env, ty.Kind),
		}
	case TArrow:
		inputs := make([]Ty, len(ty.Inputs))
		for i, in := range ty.Inputs {
			inputs[i] = v.MapTy(env, in)
		}
		return TArrow{Inputs: inputs, Output: v.MapTy(env, ty.Output)}
	default:
		return t
	}
}

// RebuildTypeID rebuilds a type identifier under the original variant.
func RebuildTypeID[E any](v Map[E], env E, id TypeID) TypeID {
	switch i := id.(type) {
	case IDAdt:
		return IDAdt{ID: v.MapTypeDeclID(env, i.ID)}
	case IDBuiltin:
		return IDBuiltin{Builtin: v.MapBuiltinTy(env, i.Builtin)}
	default:
		return id
	}
}

// RebuildConstGeneric rebuilds a const generic under the original variant.
func RebuildConstGeneric[E any](v Map[E], env E, cg ConstGeneric) ConstGeneric {
	switch c := cg.(type) {
	case CgGlobal:
		return CgGlobal{ID: v.MapGlobalDeclID(env, c.ID)}
	case CgVar:
		return CgVar{ID: v.MapConstGenericVarID(env, c.ID)}
	case CgValue:
		return CgValue{Value: v.MapLiteral(env, c.Value)}
	default:
		return cg
	}
}

// RebuildGenericArgs maps every argument, keeping order.
func RebuildGenericArgs[E any](v Map[E], env E, a GenericArgs) GenericArgs {
	out := GenericArgs{}
	if a.Types != nil {
		out.Types = make([]Ty, len(a.Types))
		for i, t := range a.Types {
			out.Types[i] = v.MapTy(env, t)
		}
	}
	if a.ConstGenerics != nil {
		out.ConstGenerics = make([]ConstGeneric, len(a.ConstGenerics))
		for i, cg := range a.ConstGenerics {
			out.ConstGenerics[i] = v.MapConstGeneric(env, cg)
		}
	}
	return out
}

// RebuildGenericParams maps every binder, keeping order.
func RebuildGenericParams[E any](v Map[E], env E, p GenericParams) GenericParams {
	out := GenericParams{}
	if p.Types != nil {
		out.Types = make([]TypeVar, len(p.Types))
		for i, tv := range p.Types {
			out.Types[i] = v.MapTypeVar(env, tv)
		}
	}
	if p.ConstGenerics != nil {
		out.ConstGenerics = make([]ConstGenericVar, len(p.ConstGenerics))
		for i, cgv := range p.ConstGenerics {
			out.ConstGenerics[i] = v.MapConstGenericVar(env, cgv)
		}
	}
	return out
}

// RebuildTypeVar maps the binder's fields in declaration order.
func RebuildTypeVar[E any](v Map[E], env E, tv TypeVar) TypeVar {
	return TypeVar{
		Index: v.MapTypeVarID(env, tv.Index),
		Name:  v.MapStr(env, tv.Name),
	}
}

// RebuildConstGenericVar maps the binder's fields in declaration order.
func RebuildConstGenericVar[E any](v Map[E], env E, cgv ConstGenericVar) ConstGenericVar {
	return ConstGenericVar{
		Index: v.MapConstGenericVarID(env, cgv.Index),
		Name:  v.MapStr(env, cgv.Name),
		Ty:    v.MapLiteralTy(env, cgv.Ty),
	}
}

// RebuildField maps the field's name then its type.
func RebuildField[E any](v Map[E], env E, f Field) Field {
	return Field{
		Name: v.MapStr(env, f.Name),
		Ty:   v.MapTy(env, f.Ty),
	}
}

// RebuildVariant maps the variant's name then its fields.
func RebuildVariant[E any](v Map[E], env E, vr Variant) Variant {
	out := Variant{Name: v.MapStr(env, vr.Name)}
	if vr.Fields != nil {
		out.Fields = make([]Field, len(vr.Fields))
		for i, f := range vr.Fields {
			out.Fields[i] = v.MapField(env, f)
		}
	}
	return out
}

// RebuildTypeDeclKind rebuilds the declaration body under the original
// variant.
func RebuildTypeDeclKind[E any](v Map[E], env E, k TypeDeclKind) TypeDeclKind {
	switch kind := k.(type) {
	case KStruct:
		fields := make([]Field, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = v.MapField(env, f)
		}
		return KStruct{Fields: fields}
	case KEnum:
		variants := make([]Variant, len(kind.Variants))
		for i, vr := range kind.Variants {
			variants[i] = v.MapVariant(env, vr)
		}
		return KEnum{Variants: variants}
	default:
		return k
	}
}

// RebuildTypeDecl maps the declaration's fields in declaration order.
// The result is a new record; the input is never mutated.
func RebuildTypeDecl[E any](v Map[E], env E, d *TypeDecl) *TypeDecl {
	if d == nil {
		return nil
	}
	return &TypeDecl{
		ID:       v.MapTypeDeclID(env, d.ID),
		Name:     v.MapStr(env, d.Name),
		Generics: v.MapGenericParams(env, d.Generics),
		Kind:     v.MapTypeDeclKind(env, d.Kind),
	}
}
