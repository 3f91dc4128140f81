package statements

import (
	"github.com/os-checker/charon/expressions"
)

// Iter extends the expression-layer read-only traversal with the
// statement-layer node kinds.
type Iter[E any] interface {
	expressions.Iter[E]

	VisitStatement(env E, s Statement)
	VisitBlock(env E, b Block)
	VisitSwitch(env E, sw Switch)
	VisitSwitchCase(env E, c SwitchCase)
	VisitCall(env E, c Call)
	VisitVar(env E, v Var)
	VisitExprBody(env E, body *ExprBody)
	VisitFunSig(env E, sig FunSig)

	// Opaque leaf introduced at this layer.
	VisitAbortKind(env E, k AbortKind)
}

// IterBase extends expressions.IterBase with statement-layer defaults.
type IterBase[E any] struct {
	expressions.IterBase[E]
	Self Iter[E]
}

// NewIterBase wires self through the whole ancestor chain.
func NewIterBase[E any](self Iter[E]) IterBase[E] {
	return IterBase[E]{
		IterBase: expressions.NewIterBase[E](self),
		Self:     self,
	}
}

func (b *IterBase[E]) self() Iter[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *IterBase[E]) VisitStatement(env E, s Statement)   { IterStatement(b.self(), env, s) }
func (b *IterBase[E]) VisitBlock(env E, bl Block)          { IterBlock(b.self(), env, bl) }
func (b *IterBase[E]) VisitSwitch(env E, sw Switch)        { IterSwitch(b.self(), env, sw) }
func (b *IterBase[E]) VisitSwitchCase(env E, c SwitchCase) { IterSwitchCase(b.self(), env, c) }
func (b *IterBase[E]) VisitCall(env E, c Call)             { IterCall(b.self(), env, c) }
func (b *IterBase[E]) VisitVar(env E, v Var)               { IterVar(b.self(), env, v) }
func (b *IterBase[E]) VisitExprBody(env E, body *ExprBody) { IterExprBody(b.self(), env, body) }
func (b *IterBase[E]) VisitFunSig(env E, sig FunSig)       { IterFunSig(b.self(), env, sig) }

// Leaf default: no action.
func (b *IterBase[E]) VisitAbortKind(E, AbortKind) {}

// IterStatement visits the payload of a statement.
func IterStatement[E any](v Iter[E], env E, s Statement) {
	switch st := s.(type) {
	case SAssign:
		v.VisitPlace(env, st.Place)
		v.VisitRvalue(env, st.Rvalue)
	case SCall:
		v.VisitCall(env, st.Call)
	case SAbort:
		v.VisitAbortKind(env, st.Kind)
	case SSwitch:
		v.VisitSwitch(env, st.Switch)
	case SLoop:
		v.VisitBlock(env, st.Block)
	}
}

// IterBlock visits each statement in order.
func IterBlock[E any](v Iter[E], env E, b Block) {
	for _, s := range b.Statements {
		v.VisitStatement(env, s)
	}
}

// IterSwitch visits the payload of a switch.
func IterSwitch[E any](v Iter[E], env E, sw Switch) {
	switch s := sw.(type) {
	case SwIf:
		v.VisitOperand(env, s.Cond)
		v.VisitBlock(env, s.Then)
		v.VisitBlock(env, s.Else)
	case SwInt:
		v.VisitOperand(env, s.Cond)
		v.VisitIntegerTy(env, s.IntTy)
		for _, c := range s.Cases {
			v.VisitSwitchCase(env, c)
		}
		v.VisitBlock(env, s.Default)
	}
}

// IterSwitchCase visits the guard values then the guarded block.
func IterSwitchCase[E any](v Iter[E], env E, c SwitchCase) {
	for _, sv := range c.Values {
		v.VisitScalarValue(env, sv)
	}
	v.VisitBlock(env, c.Block)
}

// IterCall visits the callable, arguments, then destination.
func IterCall[E any](v Iter[E], env E, c Call) {
	v.VisitFnPtr(env, c.Func)
	for _, a := range c.Args {
		v.VisitOperand(env, a)
	}
	v.VisitPlace(env, c.Dest)
}

// IterVar visits the binding's fields in declaration order.
func IterVar[E any](v Iter[E], env E, lv Var) {
	v.VisitVarID(env, lv.Index)
	v.VisitStr(env, lv.Name)
	v.VisitTy(env, lv.Ty)
}

// IterExprBody visits the locals then the body block.
func IterExprBody[E any](v Iter[E], env E, body *ExprBody) {
	if body == nil {
		return
	}
	for _, lv := range body.Locals {
		v.VisitVar(env, lv)
	}
	v.VisitBlock(env, body.Body)
}

// IterFunSig visits the binders, inputs, then output.
func IterFunSig[E any](v Iter[E], env E, sig FunSig) {
	v.VisitGenericParams(env, sig.Generics)
	for _, in := range sig.Inputs {
		v.VisitTy(env, in)
	}
	v.VisitTy(env, sig.Output)
}
