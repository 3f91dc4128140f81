package expressions

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
)

// Iter extends the type-layer read-only traversal with the
// expression-layer node kinds.
type Iter[E any] interface {
	types.Iter[E]

	VisitPlace(env E, p Place)
	VisitProjection(env E, pr Projection)
	VisitFieldProjKind(env E, k FieldProjKind)
	VisitOperand(env E, op Operand)
	VisitConstantExpr(env E, c ConstantExpr)
	VisitRawConstant(env E, rc RawConstant)
	VisitFnPtr(env E, fp FnPtr)
	VisitFunID(env E, f FunID)
	VisitRvalue(env E, rv Rvalue)
	VisitAggregateKind(env E, k AggregateKind)

	// Opaque leaves introduced at this layer.
	VisitVarID(env E, id ids.VarID)
	VisitFieldID(env E, id ids.FieldID)
	VisitVariantID(env E, id ids.VariantID)
	VisitFunDeclID(env E, id ids.FunDeclID)
	VisitBorrowKind(env E, k BorrowKind)
	VisitUnOp(env E, op UnOp)
	VisitBinOp(env E, op BinOp)
	VisitBuiltinFunID(env E, f BuiltinFunID)
}

// IterBase extends types.IterBase with expression-layer defaults.
type IterBase[E any] struct {
	types.IterBase[E]
	Self Iter[E]
}

// NewIterBase wires self through the whole ancestor chain.
func NewIterBase[E any](self Iter[E]) IterBase[E] {
	return IterBase[E]{
		IterBase: types.NewIterBase[E](self),
		Self:     self,
	}
}

func (b *IterBase[E]) self() Iter[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *IterBase[E]) VisitPlace(env E, p Place)              { IterPlace(b.self(), env, p) }
func (b *IterBase[E]) VisitProjection(env E, pr Projection)   { IterProjection(b.self(), env, pr) }
func (b *IterBase[E]) VisitFieldProjKind(env E, k FieldProjKind) {
	IterFieldProjKind(b.self(), env, k)
}
func (b *IterBase[E]) VisitOperand(env E, op Operand)          { IterOperand(b.self(), env, op) }
func (b *IterBase[E]) VisitConstantExpr(env E, c ConstantExpr) { IterConstantExpr(b.self(), env, c) }
func (b *IterBase[E]) VisitRawConstant(env E, rc RawConstant)  { IterRawConstant(b.self(), env, rc) }
func (b *IterBase[E]) VisitFnPtr(env E, fp FnPtr)              { IterFnPtr(b.self(), env, fp) }
func (b *IterBase[E]) VisitFunID(env E, f FunID)               { IterFunID(b.self(), env, f) }
func (b *IterBase[E]) VisitRvalue(env E, rv Rvalue)            { IterRvalue(b.self(), env, rv) }
func (b *IterBase[E]) VisitAggregateKind(env E, k AggregateKind) {
	IterAggregateKind(b.self(), env, k)
}

// Leaf defaults: no action.
func (b *IterBase[E]) VisitVarID(E, ids.VarID)           {}
func (b *IterBase[E]) VisitFieldID(E, ids.FieldID)       {}
func (b *IterBase[E]) VisitVariantID(E, ids.VariantID)   {}
func (b *IterBase[E]) VisitFunDeclID(E, ids.FunDeclID)   {}
func (b *IterBase[E]) VisitBorrowKind(E, BorrowKind)     {}
func (b *IterBase[E]) VisitUnOp(E, UnOp)                 {}
func (b *IterBase[E]) VisitBinOp(E, BinOp)               {}
func (b *IterBase[E]) VisitBuiltinFunID(E, BuiltinFunID) {}

// IterPlace visits the base variable then each projection step in order.
func IterPlace[E any](v Iter[E], env E, p Place) {
	v.VisitVarID(env, p.Var)
	for _, pr := range p.Projection {
		v.VisitProjection(env, pr)
	}
}

// IterProjection visits the payload of a projection step.
func IterProjection[E any](v Iter[E], env E, pr Projection) {
	switch proj := pr.(type) {
	case PDeref:
		// No payload.
	case PField:
		v.VisitFieldProjKind(env, proj.Kind)
		v.VisitFieldID(env, proj.Field)
	}
}

// IterFieldProjKind visits the payload of a field projection kind.
func IterFieldProjKind[E any](v Iter[E], env E, k FieldProjKind) {
	switch fk := k.(type) {
	case FkAdt:
		v.VisitTypeDeclID(env, fk.ID)
		if fk.Variant != nil {
			v.VisitVariantID(env, *fk.Variant)
		}
	case FkTuple:
		// Arity is plain data.
	}
}

// IterOperand visits the payload of an operand.
func IterOperand[E any](v Iter[E], env E, op Operand) {
	switch o := op.(type) {
	case OpCopy:
		v.VisitPlace(env, o.Place)
	case OpMove:
		v.VisitPlace(env, o.Place)
	case OpConst:
		v.VisitConstantExpr(env, o.Const)
	}
}

// IterConstantExpr visits the constant's value then its type.
func IterConstantExpr[E any](v Iter[E], env E, c ConstantExpr) {
	v.VisitRawConstant(env, c.Value)
	v.VisitTy(env, c.Ty)
}

// IterRawConstant visits the payload of a raw constant.
func IterRawConstant[E any](v Iter[E], env E, rc RawConstant) {
	switch c := rc.(type) {
	case CLiteral:
		v.VisitLiteral(env, c.Value)
	case CVar:
		v.VisitConstGenericVarID(env, c.ID)
	case CFnPtr:
		v.VisitFnPtr(env, c.Ptr)
	}
}

// IterFnPtr visits the callable then its generic arguments.
func IterFnPtr[E any](v Iter[E], env E, fp FnPtr) {
	v.VisitFunID(env, fp.Func)
	v.VisitGenericArgs(env, fp.Args)
}

// IterFunID visits the payload of a callable identifier.
func IterFunID[E any](v Iter[E], env E, f FunID) {
	switch fid := f.(type) {
	case FRegular:
		v.VisitFunDeclID(env, fid.ID)
	case FBuiltin:
		v.VisitBuiltinFunID(env, fid.Builtin)
	}
}

// IterRvalue visits the payload of an rvalue.
func IterRvalue[E any](v Iter[E], env E, rv Rvalue) {
	switch r := rv.(type) {
	case RvUse:
		v.VisitOperand(env, r.Operand)
	case RvRef:
		v.VisitPlace(env, r.Place)
		v.VisitBorrowKind(env, r.Kind)
	case RvUnary:
		v.VisitUnOp(env, r.Op)
		v.VisitOperand(env, r.Operand)
	case RvBinary:
		v.VisitBinOp(env, r.Op)
		v.VisitOperand(env, r.Left)
		v.VisitOperand(env, r.Right)
	case RvDiscriminant:
		v.VisitPlace(env, r.Place)
	case RvGlobal:
		v.VisitGlobalDeclID(env, r.ID)
	case RvAggregate:
		v.VisitAggregateKind(env, r.Kind)
		for _, op := range r.Operands {
			v.VisitOperand(env, op)
		}
	}
}

// IterAggregateKind visits the payload of an aggregate kind.
func IterAggregateKind[E any](v Iter[E], env E, k AggregateKind) {
	switch ak := k.(type) {
	case AkAdt:
		v.VisitTypeID(env, ak.ID)
		if ak.Variant != nil {
			v.VisitVariantID(env, *ak.Variant)
		}
		v.VisitGenericArgs(env, ak.Args)
	case AkArray:
		v.VisitTy(env, ak.Ty)
		v.VisitConstGeneric(env, ak.Len)
	}
}
