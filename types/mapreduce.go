package types

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

// MapReduce extends the literal-layer single-pass map+reduce with the
// type-layer node kinds.
type MapReduce[E, A any] interface {
	values.MapReduce[E, A]

	MapReduceTy(env E, t Ty) (Ty, A)
	MapReduceTypeID(env E, id TypeID) (TypeID, A)
	MapReduceConstGeneric(env E, cg ConstGeneric) (ConstGeneric, A)
	MapReduceGenericArgs(env E, args GenericArgs) (GenericArgs, A)
	MapReduceGenericParams(env E, params GenericParams) (GenericParams, A)
	MapReduceTypeVar(env E, tv TypeVar) (TypeVar, A)
	MapReduceConstGenericVar(env E, cgv ConstGenericVar) (ConstGenericVar, A)
	MapReduceField(env E, f Field) (Field, A)
	MapReduceVariant(env E, vr Variant) (Variant, A)
	MapReduceTypeDeclKind(env E, k TypeDeclKind) (TypeDeclKind, A)
	MapReduceTypeDecl(env E, d *TypeDecl) (*TypeDecl, A)

	// Opaque leaves introduced at this layer.
	MapReduceRefKind(env E, k RefKind) (RefKind, A)
	MapReduceBuiltinTy(env E, t BuiltinTy) (BuiltinTy, A)
	MapReduceTypeDeclID(env E, id ids.TypeDeclID) (ids.TypeDeclID, A)
	MapReduceTypeVarID(env E, id ids.TypeVarID) (ids.TypeVarID, A)
	MapReduceConstGenericVarID(env E, id ids.ConstGenericVarID) (ids.ConstGenericVarID, A)
	MapReduceGlobalDeclID(env E, id ids.GlobalDeclID) (ids.GlobalDeclID, A)
}

// MapReduceBase extends values.MapReduceBase with type-layer defaults.
type MapReduceBase[E, A any] struct {
	values.MapReduceBase[E, A]
	Self MapReduce[E, A]
}

// NewMapReduceBase wires self and the monoid through the ancestor chain.
func NewMapReduceBase[E, A any](self MapReduce[E, A], m values.Monoid[A]) MapReduceBase[E, A] {
	return MapReduceBase[E, A]{
		MapReduceBase: values.NewMapReduceBase[E, A](self, m),
		Self:          self,
	}
}

func (b *MapReduceBase[E, A]) self() MapReduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapReduceBase[E, A]) MapReduceTy(env E, t Ty) (Ty, A) {
	return RebuildFoldTy(b.self(), env, t)
}
func (b *MapReduceBase[E, A]) MapReduceTypeID(env E, id TypeID) (TypeID, A) {
	return RebuildFoldTypeID(b.self(), env, id)
}
func (b *MapReduceBase[E, A]) MapReduceConstGeneric(env E, cg ConstGeneric) (ConstGeneric, A) {
	return RebuildFoldConstGeneric(b.self(), env, cg)
}
func (b *MapReduceBase[E, A]) MapReduceGenericArgs(env E, a GenericArgs) (GenericArgs, A) {
	return RebuildFoldGenericArgs(b.self(), env, a)
}
func (b *MapReduceBase[E, A]) MapReduceGenericParams(env E, p GenericParams) (GenericParams, A) {
	return RebuildFoldGenericParams(b.self(), env, p)
}
func (b *MapReduceBase[E, A]) MapReduceTypeVar(env E, tv TypeVar) (TypeVar, A) {
	return RebuildFoldTypeVar(b.self(), env, tv)
}
func (b *MapReduceBase[E, A]) MapReduceConstGenericVar(env E, cgv ConstGenericVar) (ConstGenericVar, A) {
	return RebuildFoldConstGenericVar(b.self(), env, cgv)
}
func (b *MapReduceBase[E, A]) MapReduceField(env E, f Field) (Field, A) {
	return RebuildFoldField(b.self(), env, f)
}
func (b *MapReduceBase[E, A]) MapReduceVariant(env E, vr Variant) (Variant, A) {
	return RebuildFoldVariant(b.self(), env, vr)
}
func (b *MapReduceBase[E, A]) MapReduceTypeDeclKind(env E, k TypeDeclKind) (TypeDeclKind, A) {
	return RebuildFoldTypeDeclKind(b.self(), env, k)
}
func (b *MapReduceBase[E, A]) MapReduceTypeDecl(env E, d *TypeDecl) (*TypeDecl, A) {
	return RebuildFoldTypeDecl(b.self(), env, d)
}

// Leaf defaults: (input unchanged, neutral element).
func (b *MapReduceBase[E, A]) MapReduceRefKind(_ E, k RefKind) (RefKind, A) {
	return k, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceBuiltinTy(_ E, t BuiltinTy) (BuiltinTy, A) {
	return t, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceTypeDeclID(_ E, id ids.TypeDeclID) (ids.TypeDeclID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceTypeVarID(_ E, id ids.TypeVarID) (ids.TypeVarID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceConstGenericVarID(_ E, id ids.ConstGenericVarID) (ids.ConstGenericVarID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceGlobalDeclID(_ E, id ids.GlobalDeclID) (ids.GlobalDeclID, A) {
	return id, b.M.Zero()
}

// RebuildFoldTy transforms and folds a type in one pass, preserving the
// outer variant.
func RebuildFoldTy[E, A any](v MapReduce[E, A], env E, t Ty) (Ty, A) {
	m := v.Monoid()
	switch ty := t.(type) {
	case TAdt:
		id, a1 := v.MapReduceTypeID(env, ty.ID)
		args, a2 := v.MapReduceGenericArgs(env, ty.Args)
		return TAdt{ID: id, Args: args}, m.Plus(a1, a2)
	case TVar:
		id, acc := v.MapReduceTypeVarID(env, ty.ID)
		return TVar{ID: id}, acc
	case TLiteral:
		lt, acc := v.MapReduceLiteralTy(env, ty.Ty)
		return TLiteral{Ty: lt}, acc
	case TRef:
		pointee, a1 := v.MapReduceTy(env, ty.Pointee)
		kind, a2 := v.MapReduceRefKind(env, ty.Kind)
		return TRef{Pointee: pointee, Kind: kind}, m.Plus(a1, a2)
	case TRawPtr:
		pointee, a1 := v.MapReduceTy(env, ty.Pointee)
		kind, a2 := v.MapReduceRefKind(env, ty.Kind)
		return TRawPtr{Pointee: pointee, Kind: kind}, m.Plus(a1, a2)
	case TArrow:
		acc := m.Zero()
		inputs := make([]Ty, len(ty.Inputs))
		for i, in := range ty.Inputs {
			var a A
			inputs[i], a = v.MapReduceTy(env, in)
			acc = m.Plus(acc, a)
		}
		output, a := v.MapReduceTy(env, ty.Output)
		return TArrow{Inputs: inputs, Output: output}, m.Plus(acc, a)
	default:
		return t, m.Zero()
	}
}

// RebuildFoldTypeID transforms and folds a type identifier in one pass.
func RebuildFoldTypeID[E, A any](v MapReduce[E, A], env E, id TypeID) (TypeID, A) {
	switch i := id.(type) {
	case IDAdt:
		did, acc := v.MapReduceTypeDeclID(env, i.ID)
		return IDAdt{ID: did}, acc
	case IDBuiltin:
		bt, acc := v.MapReduceBuiltinTy(env, i.Builtin)
		return IDBuiltin{Builtin: bt}, acc
	default:
		return id, v.Monoid().Zero()
	}
}

// RebuildFoldConstGeneric transforms and folds a const generic in one
// pass.
func RebuildFoldConstGeneric[E, A any](v MapReduce[E, A], env E, cg ConstGeneric) (ConstGeneric, A) {
	switch c := cg.(type) {
	case CgGlobal:
		id, acc := v.MapReduceGlobalDeclID(env, c.ID)
		return CgGlobal{ID: id}, acc
	case CgVar:
		id, acc := v.MapReduceConstGenericVarID(env, c.ID)
		return CgVar{ID: id}, acc
	case CgValue:
		val, acc := v.MapReduceLiteral(env, c.Value)
		return CgValue{Value: val}, acc
	default:
		return cg, v.Monoid().Zero()
	}
}

// RebuildFoldGenericArgs transforms and folds every argument in order.
func RebuildFoldGenericArgs[E, A any](v MapReduce[E, A], env E, args GenericArgs) (GenericArgs, A) {
	m := v.Monoid()
	acc := m.Zero()
	out := GenericArgs{}
	if args.Types != nil {
		out.Types = make([]Ty, len(args.Types))
		for i, t := range args.Types {
			var a A
			out.Types[i], a = v.MapReduceTy(env, t)
			acc = m.Plus(acc, a)
		}
	}
	if args.ConstGenerics != nil {
		out.ConstGenerics = make([]ConstGeneric, len(args.ConstGenerics))
		for i, cg := range args.ConstGenerics {
			var a A
			out.ConstGenerics[i], a = v.MapReduceConstGeneric(env, cg)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldGenericParams transforms and folds every binder in order.
func RebuildFoldGenericParams[E, A any](v MapReduce[E, A], env E, p GenericParams) (GenericParams, A) {
	m := v.Monoid()
	acc := m.Zero()
	out := GenericParams{}
	if p.Types != nil {
		out.Types = make([]TypeVar, len(p.Types))
		for i, tv := range p.Types {
			var a A
			out.Types[i], a = v.MapReduceTypeVar(env, tv)
			acc = m.Plus(acc, a)
		}
	}
	if p.ConstGenerics != nil {
		out.ConstGenerics = make([]ConstGenericVar, len(p.ConstGenerics))
		for i, cgv := range p.ConstGenerics {
			var a A
			out.ConstGenerics[i], a = v.MapReduceConstGenericVar(env, cgv)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldTypeVar transforms and folds the binder's fields in order.
func RebuildFoldTypeVar[E, A any](v MapReduce[E, A], env E, tv TypeVar) (TypeVar, A) {
	m := v.Monoid()
	index, a1 := v.MapReduceTypeVarID(env, tv.Index)
	name, a2 := v.MapReduceStr(env, tv.Name)
	return TypeVar{Index: index, Name: name}, m.Plus(a1, a2)
}

// RebuildFoldConstGenericVar transforms and folds the binder's fields in
// order.
func RebuildFoldConstGenericVar[E, A any](v MapReduce[E, A], env E, cgv ConstGenericVar) (ConstGenericVar, A) {
	m := v.Monoid()
	index, a1 := v.MapReduceConstGenericVarID(env, cgv.Index)
	name, a2 := v.MapReduceStr(env, cgv.Name)
	ty, a3 := v.MapReduceLiteralTy(env, cgv.Ty)
	return ConstGenericVar{Index: index, Name: name, Ty: ty}, m.Plus(m.Plus(a1, a2), a3)
}

// RebuildFoldField transforms and folds the field's name then type.
func RebuildFoldField[E, A any](v MapReduce[E, A], env E, f Field) (Field, A) {
	m := v.Monoid()
	name, a1 := v.MapReduceStr(env, f.Name)
	ty, a2 := v.MapReduceTy(env, f.Ty)
	return Field{Name: name, Ty: ty}, m.Plus(a1, a2)
}

// RebuildFoldVariant transforms and folds the variant's name then fields.
func RebuildFoldVariant[E, A any](v MapReduce[E, A], env E, vr Variant) (Variant, A) {
	m := v.Monoid()
	name, acc := v.MapReduceStr(env, vr.Name)
	out := Variant{Name: name}
	if vr.Fields != nil {
		out.Fields = make([]Field, len(vr.Fields))
		for i, f := range vr.Fields {
			var a A
			out.Fields[i], a = v.MapReduceField(env, f)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldTypeDeclKind transforms and folds the declaration body under
// the original variant.
func RebuildFoldTypeDeclKind[E, A any](v MapReduce[E, A], env E, k TypeDeclKind) (TypeDeclKind, A) {
	m := v.Monoid()
	switch kind := k.(type) {
	case KStruct:
		acc := m.Zero()
		fields := make([]Field, len(kind.Fields))
		for i, f := range kind.Fields {
			var a A
			fields[i], a = v.MapReduceField(env, f)
			acc = m.Plus(acc, a)
		}
		return KStruct{Fields: fields}, acc
	case KEnum:
		acc := m.Zero()
		variants := make([]Variant, len(kind.Variants))
		for i, vr := range kind.Variants {
			var a A
			variants[i], a = v.MapReduceVariant(env, vr)
			acc = m.Plus(acc, a)
		}
		return KEnum{Variants: variants}, acc
	default:
		return k, m.Zero()
	}
}

// RebuildFoldTypeDecl transforms and folds the declaration's fields in
// order, returning a new record.
func RebuildFoldTypeDecl[E, A any](v MapReduce[E, A], env E, d *TypeDecl) (*TypeDecl, A) {
	m := v.Monoid()
	if d == nil {
		return nil, m.Zero()
	}
	id, a1 := v.MapReduceTypeDeclID(env, d.ID)
	name, a2 := v.MapReduceStr(env, d.Name)
	generics, a3 := v.MapReduceGenericParams(env, d.Generics)
	kind, a4 := v.MapReduceTypeDeclKind(env, d.Kind)
	acc := m.Plus(m.Plus(a1, a2), m.Plus(a3, a4))
	return &TypeDecl{ID: id, Name: name, Generics: generics, Kind: kind}, acc
}
