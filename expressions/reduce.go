package expressions

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// Reduce extends the type-layer accumulating traversal with the
// expression-layer node kinds.
type Reduce[E, A any] interface {
	types.Reduce[E, A]

	ReducePlace(env E, p Place) A
	ReduceProjection(env E, pr Projection) A
	ReduceFieldProjKind(env E, k FieldProjKind) A
	ReduceOperand(env E, op Operand) A
	ReduceConstantExpr(env E, c ConstantExpr) A
	ReduceRawConstant(env E, rc RawConstant) A
	ReduceFnPtr(env E, fp FnPtr) A
	ReduceFunID(env E, f FunID) A
	ReduceRvalue(env E, rv Rvalue) A
	ReduceAggregateKind(env E, k AggregateKind) A

	// Opaque leaves introduced at this layer.
	ReduceVarID(env E, id ids.VarID) A
	ReduceFieldID(env E, id ids.FieldID) A
	ReduceVariantID(env E, id ids.VariantID) A
	ReduceFunDeclID(env E, id ids.FunDeclID) A
	ReduceBorrowKind(env E, k BorrowKind) A
	ReduceUnOp(env E, op UnOp) A
	ReduceBinOp(env E, op BinOp) A
	ReduceBuiltinFunID(env E, f BuiltinFunID) A
}

// ReduceBase extends types.ReduceBase with expression-layer folding
// defaults.
type ReduceBase[E, A any] struct {
	types.ReduceBase[E, A]
	Self Reduce[E, A]
}

// NewReduceBase wires self and the monoid through the ancestor chain.
func NewReduceBase[E, A any](self Reduce[E, A], m values.Monoid[A]) ReduceBase[E, A] {
	return ReduceBase[E, A]{
		ReduceBase: types.NewReduceBase[E, A](self, m),
		Self:       self,
	}
}

func (b *ReduceBase[E, A]) self() Reduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *ReduceBase[E, A]) ReducePlace(env E, p Place) A { return FoldPlace(b.self(), env, p) }
func (b *ReduceBase[E, A]) ReduceProjection(env E, pr Projection) A {
	return FoldProjection(b.self(), env, pr)
}
func (b *ReduceBase[E, A]) ReduceFieldProjKind(env E, k FieldProjKind) A {
	return FoldFieldProjKind(b.self(), env, k)
}
func (b *ReduceBase[E, A]) ReduceOperand(env E, op Operand) A {
	return FoldOperand(b.self(), env, op)
}
func (b *ReduceBase[E, A]) ReduceConstantExpr(env E, c ConstantExpr) A {
	return FoldConstantExpr(b.self(), env, c)
}
func (b *ReduceBase[E, A]) ReduceRawConstant(env E, rc RawConstant) A {
	return FoldRawConstant(b.self(), env, rc)
}
func (b *ReduceBase[E, A]) ReduceFnPtr(env E, fp FnPtr) A { return FoldFnPtr(b.self(), env, fp) }
func (b *ReduceBase[E, A]) ReduceFunID(env E, f FunID) A  { return FoldFunID(b.self(), env, f) }
func (b *ReduceBase[E, A]) ReduceRvalue(env E, rv Rvalue) A {
	return FoldRvalue(b.self(), env, rv)
}
func (b *ReduceBase[E, A]) ReduceAggregateKind(env E, k AggregateKind) A {
	return FoldAggregateKind(b.self(), env, k)
}

// Leaf defaults: the neutral element.
func (b *ReduceBase[E, A]) ReduceVarID(E, ids.VarID) A           { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceFieldID(E, ids.FieldID) A       { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceVariantID(E, ids.VariantID) A   { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceFunDeclID(E, ids.FunDeclID) A   { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceBorrowKind(E, BorrowKind) A     { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceUnOp(E, UnOp) A                 { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceBinOp(E, BinOp) A               { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceBuiltinFunID(E, BuiltinFunID) A { return b.M.Zero() }

// FoldPlace folds the base variable then each projection step.
func FoldPlace[E, A any](v Reduce[E, A], env E, p Place) A {
	m := v.Monoid()
	acc := v.ReduceVarID(env, p.Var)
	for _, pr := range p.Projection {
		acc = m.Plus(acc, v.ReduceProjection(env, pr))
	}
	return acc
}

// FoldProjection folds the payload of a projection step.
func FoldProjection[E, A any](v Reduce[E, A], env E, pr Projection) A {
	m := v.Monoid()
	switch proj := pr.(type) {
	case PField:
		return m.Plus(v.ReduceFieldProjKind(env, proj.Kind), v.ReduceFieldID(env, proj.Field))
	default:
		return m.Zero()
	}
}

// FoldFieldProjKind folds the payload of a field projection kind.
func FoldFieldProjKind[E, A any](v Reduce[E, A], env E, k FieldProjKind) A {
	m := v.Monoid()
	switch fk := k.(type) {
	case FkAdt:
		acc := v.ReduceTypeDeclID(env, fk.ID)
		if fk.Variant != nil {
			acc = m.Plus(acc, v.ReduceVariantID(env, *fk.Variant))
		}
		return acc
	default:
		return m.Zero()
	}
}

// FoldOperand folds the payload of an operand.
func FoldOperand[E, A any](v Reduce[E, A], env E, op Operand) A {
	switch o := op.(type) {
	case OpCopy:
		return v.ReducePlace(env, o.Place)
	case OpMove:
		return v.ReducePlace(env, o.Place)
	case OpConst:
		return v.ReduceConstantExpr(env, o.Const)
	default:
		return v.Monoid().Zero()
	}
}

// FoldConstantExpr folds the constant's value then its type.
func FoldConstantExpr[E, A any](v Reduce[E, A], env E, c ConstantExpr) A {
	m := v.Monoid()
	return m.Plus(v.ReduceRawConstant(env, c.Value), v.ReduceTy(env, c.Ty))
}

// FoldRawConstant folds the payload of a raw constant.
func FoldRawConstant[E, A any](v Reduce[E, A], env E, rc RawConstant) A {
	switch c := rc.(type) {
	case CLiteral:
		return v.ReduceLiteral(env, c.Value)
	case CVar:
		return v.ReduceConstGenericVarID(env, c.ID)
	case CFnPtr:
		return v.ReduceFnPtr(env, c.Ptr)
	default:
		return v.Monoid().Zero()
	}
}

// FoldFnPtr folds the callable then its generic arguments.
func FoldFnPtr[E, A any](v Reduce[E, A], env E, fp FnPtr) A {
	m := v.Monoid()
	return m.Plus(v.ReduceFunID(env, fp.Func), v.ReduceGenericArgs(env, fp.Args))
}

// FoldFunID folds the payload of a callable identifier.
func FoldFunID[E, A any](v Reduce[E, A], env E, f FunID) A {
	switch fid := f.(type) {
	case FRegular:
		return v.ReduceFunDeclID(env, fid.ID)
	case FBuiltin:
		return v.ReduceBuiltinFunID(env, fid.Builtin)
	default:
		return v.Monoid().Zero()
	}
}

// FoldRvalue folds the payload of an rvalue.
func FoldRvalue[E, A any](v Reduce[E, A], env E, rv Rvalue) A {
	m := v.Monoid()
	switch r := rv.(type) {
	case RvUse:
		return v.ReduceOperand(env, r.Operand)
	case RvRef:
		return m.Plus(v.ReducePlace(env, r.Place), v.ReduceBorrowKind(env, r.Kind))
	case RvUnary:
		return m.Plus(v.ReduceUnOp(env, r.Op), v.ReduceOperand(env, r.Operand))
	case RvBinary:
		acc := v.ReduceBinOp(env, r.Op)
		acc = m.Plus(acc, v.ReduceOperand(env, r.Left))
		return m.Plus(acc, v.ReduceOperand(env, r.Right))
	case RvDiscriminant:
		return v.ReducePlace(env, r.Place)
	case RvGlobal:
		return v.ReduceGlobalDeclID(env, r.ID)
	case RvAggregate:
		acc := v.ReduceAggregateKind(env, r.Kind)
		for _, op := range r.Operands {
			acc = m.Plus(acc, v.ReduceOperand(env, op))
		}
		return acc
	default:
		return m.Zero()
	}
}

// FoldAggregateKind folds the payload of an aggregate kind.
func FoldAggregateKind[E, A any](v Reduce[E, A], env E, k AggregateKind) A {
	m := v.Monoid()
	switch ak := k.(type) {
	case AkAdt:
		acc := v.ReduceTypeID(env, ak.ID)
		if ak.Variant != nil {
			acc = m.Plus(acc, v.ReduceVariantID(env, *ak.Variant))
		}
		return m.Plus(acc, v.ReduceGenericArgs(env, ak.Args))
	case AkArray:
		return m.Plus(v.ReduceTy(env, ak.Ty), v.ReduceConstGeneric(env, ak.Len))
	default:
		return m.Zero()
	}
}
