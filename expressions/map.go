package expressions

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
)

// Map extends the type-layer structure-preserving transformation with
// the expression-layer node kinds.
type Map[E any] interface {
	types.Map[E]

	MapPlace(env E, p Place) Place
	MapProjection(env E, pr Projection) Projection
	MapFieldProjKind(env E, k FieldProjKind) FieldProjKind
	MapOperand(env E, op Operand) Operand
	MapConstantExpr(env E, c ConstantExpr) ConstantExpr
	MapRawConstant(env E, rc RawConstant) RawConstant
	MapFnPtr(env E, fp FnPtr) FnPtr
	MapFunID(env E, f FunID) FunID
	MapRvalue(env E, rv Rvalue) Rvalue
	MapAggregateKind(env E, k AggregateKind) AggregateKind

	// Opaque leaves introduced at this layer.
	MapVarID(env E, id ids.VarID) ids.VarID
	MapFieldID(env E, id ids.FieldID) ids.FieldID
	MapVariantID(env E, id ids.VariantID) ids.VariantID
	MapFunDeclID(env E, id ids.FunDeclID) ids.FunDeclID
	MapBorrowKind(env E, k BorrowKind) BorrowKind
	MapUnOp(env E, op UnOp) UnOp
	MapBinOp(env E, op BinOp) BinOp
	MapBuiltinFunID(env E, f BuiltinFunID) BuiltinFunID
}

// MapBase extends types.MapBase with expression-layer defaults.
type MapBase[E any] struct {
	types.MapBase[E]
	Self Map[E]
}

// NewMapBase wires self through the whole ancestor chain.
func NewMapBase[E any](self Map[E]) MapBase[E] {
	return MapBase[E]{
		MapBase: types.NewMapBase[E](self),
		Self:    self,
	}
}

func (b *MapBase[E]) self() Map[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapBase[E]) MapPlace(env E, p Place) Place { return RebuildPlace(b.self(), env, p) }
func (b *MapBase[E]) MapProjection(env E, pr Projection) Projection {
	return RebuildProjection(b.self(), env, pr)
}
func (b *MapBase[E]) MapFieldProjKind(env E, k FieldProjKind) FieldProjKind {
	return RebuildFieldProjKind(b.self(), env, k)
}
func (b *MapBase[E]) MapOperand(env E, op Operand) Operand {
	return RebuildOperand(b.self(), env, op)
}
func (b *MapBase[E]) MapConstantExpr(env E, c ConstantExpr) ConstantExpr {
	return RebuildConstantExpr(b.self(), env, c)
}
func (b *MapBase[E]) MapRawConstant(env E, rc RawConstant) RawConstant {
	return RebuildRawConstant(b.self(), env, rc)
}
func (b *MapBase[E]) MapFnPtr(env E, fp FnPtr) FnPtr { return RebuildFnPtr(b.self(), env, fp) }
func (b *MapBase[E]) MapFunID(env E, f FunID) FunID  { return RebuildFunID(b.self(), env, f) }
func (b *MapBase[E]) MapRvalue(env E, rv Rvalue) Rvalue {
	return RebuildRvalue(b.self(), env, rv)
}
func (b *MapBase[E]) MapAggregateKind(env E, k AggregateKind) AggregateKind {
	return RebuildAggregateKind(b.self(), env, k)
}

// Leaf defaults: identity.
func (b *MapBase[E]) MapVarID(_ E, id ids.VarID) ids.VarID             { return id }
func (b *MapBase[E]) MapFieldID(_ E, id ids.FieldID) ids.FieldID       { return id }
func (b *MapBase[E]) MapVariantID(_ E, id ids.VariantID) ids.VariantID { return id }
func (b *MapBase[E]) MapFunDeclID(_ E, id ids.FunDeclID) ids.FunDeclID { return id }
func (b *MapBase[E]) MapBorrowKind(_ E, k BorrowKind) BorrowKind       { return k }
func (b *MapBase[E]) MapUnOp(_ E, op UnOp) UnOp                        { return op }
func (b *MapBase[E]) MapBinOp(_ E, op BinOp) BinOp                     { return op }
func (b *MapBase[E]) MapBuiltinFunID(_ E, f BuiltinFunID) BuiltinFunID { return f }

// RebuildPlace maps the base variable then each projection step.
func RebuildPlace[E any](v Map[E], env E, p Place) Place {
	out := Place{Var: v.MapVarID(env, p.Var)}
	if p.Projection != nil {
		out.Projection = make([]Projection, len(p.Projection))
		for i, pr := range p.Projection {
			out.Projection[i] = v.MapProjection(env, pr)
		}
	}
	return out
}

// RebuildProjection rebuilds a projection step under its variant.
func RebuildProjection[E any](v Map[E], env E, pr Projection) Projection {
	switch proj := pr.(type) {
	case PField:
		return PField{
			Kind:  v.MapFieldProjKind(env, proj.Kind),
			Field: v.MapFieldID(env, proj.Field),
		}
	default:
		return pr
	}
}

// RebuildFieldProjKind rebuilds a field projection kind under its
// variant.
func RebuildFieldProjKind[E any](v Map[E], env E, k FieldProjKind) FieldProjKind {
	switch fk := k.(type) {
	case FkAdt:
		out := FkAdt{ID: v.MapTypeDeclID(env, fk.ID)}
		if fk.Variant != nil {
			variant := v.MapVariantID(env, *fk.Variant)
			out.Variant = &variant
		}
		return out
	default:
		return k
	}
}

// RebuildOperand rebuilds an operand under its variant.
func RebuildOperand[E any](v Map[E], env E, op Operand) Operand {
	switch o := op.(type) {
	case OpCopy:
		return OpCopy{Place: v.MapPlace(env, o.Place)}
	case OpMove:
		return OpMove{Place: v.MapPlace(env, o.Place)}
	case OpConst:
		return OpConst{Const: v.MapConstantExpr(env, o.Const)}
	default:
		return op
	}
}

// RebuildConstantExpr maps the constant's value then its type.
func RebuildConstantExpr[E any](v Map[E], env E, c ConstantExpr) ConstantExpr {
	return ConstantExpr{
		Value: v.MapRawConstant(env, c.Value),
		Ty:    v.MapTy(env, c.Ty),
	}
}

// RebuildRawConstant rebuilds a raw constant under its variant.
func RebuildRawConstant[E any](v Map[E], env E, rc RawConstant) RawConstant {
	switch c := rc.(type) {
	case CLiteral:
		return CLiteral{Value: v.MapLiteral(env, c.Value)}
	case CVar:
		return CVar{ID: v.MapConstGenericVarID(env, c.ID)}
	case CFnPtr:
		return CFnPtr{Ptr: v.MapFnPtr(env, c.Ptr)}
	default:
		return rc
	}
}

// RebuildFnPtr maps the callable then its generic arguments.
func RebuildFnPtr[E any](v Map[E], env E, fp FnPtr) FnPtr {
	return FnPtr{
		Func: v.MapFunID(env, fp.Func),
		Args: v.MapGenericArgs(env, fp.Args),
	}
}

// RebuildFunID rebuilds a callable identifier under its variant.
func RebuildFunID[E any](v Map[E], env E, f FunID) FunID {
	switch fid := f.(type) {
	case FRegular:
		return FRegular{ID: v.MapFunDeclID(env, fid.ID)}
	case FBuiltin:
		return FBuiltin{Builtin: v.MapBuiltinFunID(env, fid.Builtin)}
	default:
		return f
	}
}

// RebuildRvalue rebuilds an rvalue under its variant.
func RebuildRvalue[E any](v Map[E], env E, rv Rvalue) Rvalue {
	switch r := rv.(type) {
	case RvUse:
		return RvUse{Operand: v.MapOperand(env, r.Operand)}
	case RvRef:
		return RvRef{
			Place: v.MapPlace(env, r.Place),
			Kind:  v.MapBorrowKind(env, r.Kind),
		}
	case RvUnary:
		return RvUnary{
			Op:      v.MapUnOp(env, r.Op),
			Operand: v.MapOperand(env, r.Operand),
		}
	case RvBinary:
		return RvBinary{
			Op:    v.MapBinOp(env, r.Op),
			Left:  v.MapOperand(env, r.Left),
			Right: v.MapOperand(env, r.Right),
		}
	case RvDiscriminant:
		return RvDiscriminant{Place: v.MapPlace(env, r.Place)}
	case RvGlobal:
		return RvGlobal{ID: v.MapGlobalDeclID(env, r.ID)}
	case RvAggregate:
		out := RvAggregate{Kind: v.MapAggregateKind(env, r.Kind)}
		if r.Operands != nil {
			out.Operands = make([]Operand, len(r.Operands))
			for i, op := range r.Operands {
				out.Operands[i] = v.MapOperand(env, op)
			}
		}
		return out
	default:
		return rv
	}
}

// RebuildAggregateKind rebuilds an aggregate kind under its variant.
func RebuildAggregateKind[E any](v Map[E], env E, k AggregateKind) AggregateKind {
	switch ak := k.(type) {
	case AkAdt:
		out := AkAdt{ID: v.MapTypeID(env, ak.ID)}
		if ak.Variant != nil {
			variant := v.MapVariantID(env, *ak.Variant)
			out.Variant = &variant
		}
		out.Args = v.MapGenericArgs(env, ak.Args)
		return out
	case AkArray:
		return AkArray{
			Ty:  v.MapTy(env, ak.Ty),
			Len: v.MapConstGeneric(env, ak.Len),
		}
	default:
		return k
	}
}
