package expressions

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// MapReduce extends the type-layer single-pass map+reduce with the
// expression-layer node kinds.
type MapReduce[E, A any] interface {
	types.MapReduce[E, A]

	MapReducePlace(env E, p Place) (Place, A)
	MapReduceProjection(env E, pr Projection) (Projection, A)
	MapReduceFieldProjKind(env E, k FieldProjKind) (FieldProjKind, A)
	MapReduceOperand(env E, op Operand) (Operand, A)
	MapReduceConstantExpr(env E, c ConstantExpr) (ConstantExpr, A)
	MapReduceRawConstant(env E, rc RawConstant) (RawConstant, A)
	MapReduceFnPtr(env E, fp FnPtr) (FnPtr, A)
	MapReduceFunID(env E, f FunID) (FunID, A)
	MapReduceRvalue(env E, rv Rvalue) (Rvalue, A)
	MapReduceAggregateKind(env E, k AggregateKind) (AggregateKind, A)

	// Opaque leaves introduced at this layer.
	MapReduceVarID(env E, id ids.VarID) (ids.VarID, A)
	MapReduceFieldID(env E, id ids.FieldID) (ids.FieldID, A)
	MapReduceVariantID(env E, id ids.VariantID) (ids.VariantID, A)
	MapReduceFunDeclID(env E, id ids.FunDeclID) (ids.FunDeclID, A)
	MapReduceBorrowKind(env E, k BorrowKind) (BorrowKind, A)
	MapReduceUnOp(env E, op UnOp) (UnOp, A)
	MapReduceBinOp(env E, op BinOp) (BinOp, A)
	MapReduceBuiltinFunID(env E, f BuiltinFunID) (BuiltinFunID, A)
}

// MapReduceBase extends types.MapReduceBase with expression-layer
// defaults.
type MapReduceBase[E, A any] struct {
	types.MapReduceBase[E, A]
	Self MapReduce[E, A]
}

// NewMapReduceBase wires self and the monoid through the ancestor chain.
func NewMapReduceBase[E, A any](self MapReduce[E, A], m values.Monoid[A]) MapReduceBase[E, A] {
	return MapReduceBase[E, A]{
		MapReduceBase: types.NewMapReduceBase[E, A](self, m),
		Self:          self,
	}
}

func (b *MapReduceBase[E, A]) self() MapReduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapReduceBase[E, A]) MapReducePlace(env E, p Place) (Place, A) {
	return RebuildFoldPlace(b.self(), env, p)
}
func (b *MapReduceBase[E, A]) MapReduceProjection(env E, pr Projection) (Projection, A) {
	return RebuildFoldProjection(b.self(), env, pr)
}
func (b *MapReduceBase[E, A]) MapReduceFieldProjKind(env E, k FieldProjKind) (FieldProjKind, A) {
	return RebuildFoldFieldProjKind(b.self(), env, k)
}
func (b *MapReduceBase[E, A]) MapReduceOperand(env E, op Operand) (Operand, A) {
	return RebuildFoldOperand(b.self(), env, op)
}
func (b *MapReduceBase[E, A]) MapReduceConstantExpr(env E, c ConstantExpr) (ConstantExpr, A) {
	return RebuildFoldConstantExpr(b.self(), env, c)
}
func (b *MapReduceBase[E, A]) MapReduceRawConstant(env E, rc RawConstant) (RawConstant, A) {
	return RebuildFoldRawConstant(b.self(), env, rc)
}
func (b *MapReduceBase[E, A]) MapReduceFnPtr(env E, fp FnPtr) (FnPtr, A) {
	return RebuildFoldFnPtr(b.self(), env, fp)
}
func (b *MapReduceBase[E, A]) MapReduceFunID(env E, f FunID) (FunID, A) {
	return RebuildFoldFunID(b.self(), env, f)
}
func (b *MapReduceBase[E, A]) MapReduceRvalue(env E, rv Rvalue) (Rvalue, A) {
	return RebuildFoldRvalue(b.self(), env, rv)
}
func (b *MapReduceBase[E, A]) MapReduceAggregateKind(env E, k AggregateKind) (AggregateKind, A) {
	return RebuildFoldAggregateKind(b.self(), env, k)
}

// Leaf defaults: (input unchanged, neutral element).
func (b *MapReduceBase[E, A]) MapReduceVarID(_ E, id ids.VarID) (ids.VarID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceFieldID(_ E, id ids.FieldID) (ids.FieldID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceVariantID(_ E, id ids.VariantID) (ids.VariantID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceFunDeclID(_ E, id ids.FunDeclID) (ids.FunDeclID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceBorrowKind(_ E, k BorrowKind) (BorrowKind, A) {
	return k, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceUnOp(_ E, op UnOp) (UnOp, A) {
	return op, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceBinOp(_ E, op BinOp) (BinOp, A) {
	return op, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceBuiltinFunID(_ E, f BuiltinFunID) (BuiltinFunID, A) {
	return f, b.M.Zero()
}

// RebuildFoldPlace transforms and folds the base variable then each
// projection step.
func RebuildFoldPlace[E, A any](v MapReduce[E, A], env E, p Place) (Place, A) {
	m := v.Monoid()
	variable, acc := v.MapReduceVarID(env, p.Var)
	out := Place{Var: variable}
	if p.Projection != nil {
		out.Projection = make([]Projection, len(p.Projection))
		for i, pr := range p.Projection {
			var a A
			out.Projection[i], a = v.MapReduceProjection(env, pr)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldProjection transforms and folds a projection step under its
// variant.
func RebuildFoldProjection[E, A any](v MapReduce[E, A], env E, pr Projection) (Projection, A) {
	m := v.Monoid()
	switch proj := pr.(type) {
	case PField:
		kind, a1 := v.MapReduceFieldProjKind(env, proj.Kind)
		field, a2 := v.MapReduceFieldID(env, proj.Field)
		return PField{Kind: kind, Field: field}, m.Plus(a1, a2)
	default:
		return pr, m.Zero()
	}
}

// RebuildFoldFieldProjKind transforms and folds a field projection kind
// under its variant.
func RebuildFoldFieldProjKind[E, A any](v MapReduce[E, A], env E, k FieldProjKind) (FieldProjKind, A) {
	m := v.Monoid()
	switch fk := k.(type) {
	case FkAdt:
		id, acc := v.MapReduceTypeDeclID(env, fk.ID)
		out := FkAdt{ID: id}
		if fk.Variant != nil {
			variant, a := v.MapReduceVariantID(env, *fk.Variant)
			out.Variant = &variant
			acc = m.Plus(acc, a)
		}
		return out, acc
	default:
		return k, m.Zero()
	}
}

// RebuildFoldOperand transforms and folds an operand under its variant.
func RebuildFoldOperand[E, A any](v MapReduce[E, A], env E, op Operand) (Operand, A) {
	switch o := op.(type) {
	case OpCopy:
		place, acc := v.MapReducePlace(env, o.Place)
		return OpCopy{Place: place}, acc
	case OpMove:
		place, acc := v.MapReducePlace(env, o.Place)
		return OpMove{Place: place}, acc
	case OpConst:
		c, acc := v.MapReduceConstantExpr(env, o.Const)
		return OpConst{Const: c}, acc
	default:
		return op, v.Monoid().Zero()
	}
}

// RebuildFoldConstantExpr transforms and folds the constant's value then
// its type.
func RebuildFoldConstantExpr[E, A any](v MapReduce[E, A], env E, c ConstantExpr) (ConstantExpr, A) {
	m := v.Monoid()
	value, a1 := v.MapReduceRawConstant(env, c.Value)
	ty, a2 := v.MapReduceTy(env, c.Ty)
	return ConstantExpr{Value: value, Ty: ty}, m.Plus(a1, a2)
}

// RebuildFoldRawConstant transforms and folds a raw constant under its
// variant.
func RebuildFoldRawConstant[E, A any](v MapReduce[E, A], env E, rc RawConstant) (RawConstant, A) {
	switch c := rc.(type) {
	case CLiteral:
		value, acc := v.MapReduceLiteral(env, c.Value)
		return CLiteral{Value: value}, acc
	case CVar:
		id, acc := v.MapReduceConstGenericVarID(env, c.ID)
		return CVar{ID: id}, acc
	case CFnPtr:
		ptr, acc := v.MapReduceFnPtr(env, c.Ptr)
		return CFnPtr{Ptr: ptr}, acc
	default:
		return rc, v.Monoid().Zero()
	}
}

// RebuildFoldFnPtr transforms and folds the callable then its generic
// arguments.
func RebuildFoldFnPtr[E, A any](v MapReduce[E, A], env E, fp FnPtr) (FnPtr, A) {
	m := v.Monoid()
	fn, a1 := v.MapReduceFunID(env, fp.Func)
	args, a2 := v.MapReduceGenericArgs(env, fp.Args)
	return FnPtr{Func: fn, Args: args}, m.Plus(a1, a2)
}

// RebuildFoldFunID transforms and folds a callable identifier under its
// variant.
func RebuildFoldFunID[E, A any](v MapReduce[E, A], env E, f FunID) (FunID, A) {
	switch fid := f.(type) {
	case FRegular:
		id, acc := v.MapReduceFunDeclID(env, fid.ID)
		return FRegular{ID: id}, acc
	case FBuiltin:
		builtin, acc := v.MapReduceBuiltinFunID(env, fid.Builtin)
		return FBuiltin{Builtin: builtin}, acc
	default:
		return f, v.Monoid().Zero()
	}
}

// RebuildFoldRvalue transforms and folds an rvalue under its variant.
func RebuildFoldRvalue[E, A any](v MapReduce[E, A], env E, rv Rvalue) (Rvalue, A) {
	m := v.Monoid()
	switch r := rv.(type) {
	case RvUse:
		op, acc := v.MapReduceOperand(env, r.Operand)
		return RvUse{Operand: op}, acc
	case RvRef:
		place, a1 := v.MapReducePlace(env, r.Place)
		kind, a2 := v.MapReduceBorrowKind(env, r.Kind)
		return RvRef{Place: place, Kind: kind}, m.Plus(a1, a2)
	case RvUnary:
		op, a1 := v.MapReduceUnOp(env, r.Op)
		operand, a2 := v.MapReduceOperand(env, r.Operand)
		return RvUnary{Op: op, Operand: operand}, m.Plus(a1, a2)
	case RvBinary:
		op, a1 := v.MapReduceBinOp(env, r.Op)
		left, a2 := v.MapReduceOperand(env, r.Left)
		right, a3 := v.MapReduceOperand(env, r.Right)
		return RvBinary{Op: op, Left: left, Right: right}, m.Plus(m.Plus(a1, a2), a3)
	case RvDiscriminant:
		place, acc := v.MapReducePlace(env, r.Place)
		return RvDiscriminant{Place: place}, acc
	case RvGlobal:
		id, acc := v.MapReduceGlobalDeclID(env, r.ID)
		return RvGlobal{ID: id}, acc
	case RvAggregate:
		kind, acc := v.MapReduceAggregateKind(env, r.Kind)
		out := RvAggregate{Kind: kind}
		if r.Operands != nil {
			out.Operands = make([]Operand, len(r.Operands))
			for i, op := range r.Operands {
				var a A
				out.Operands[i], a = v.MapReduceOperand(env, op)
				acc = m.Plus(acc, a)
			}
		}
		return out, acc
	default:
		return rv, m.Zero()
	}
}

// RebuildFoldAggregateKind transforms and folds an aggregate kind under
// its variant.
func RebuildFoldAggregateKind[E, A any](v MapReduce[E, A], env E, k AggregateKind) (AggregateKind, A) {
	m := v.Monoid()
	switch ak := k.(type) {
	case AkAdt:
		id, acc := v.MapReduceTypeID(env, ak.ID)
		out := AkAdt{ID: id}
		if ak.Variant != nil {
			variant, a := v.MapReduceVariantID(env, *ak.Variant)
			out.Variant = &variant
			acc = m.Plus(acc, a)
		}
		var a A
		out.Args, a = v.MapReduceGenericArgs(env, ak.Args)
		return out, m.Plus(acc, a)
	case AkArray:
		ty, a1 := v.MapReduceTy(env, ak.Ty)
		length, a2 := v.MapReduceConstGeneric(env, ak.Len)
		return AkArray{Ty: ty, Len: length}, m.Plus(a1, a2)
	default:
		return k, m.Zero()
	}
}
