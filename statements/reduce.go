package statements

import (
	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/values"
)

// Reduce extends the expression-layer accumulating traversal with the
// statement-layer node kinds.
type Reduce[E, A any] interface {
	expressions.Reduce[E, A]

	ReduceStatement(env E, s Statement) A
	ReduceBlock(env E, b Block) A
	ReduceSwitch(env E, sw Switch) A
	ReduceSwitchCase(env E, c SwitchCase) A
	ReduceCall(env E, c Call) A
	ReduceVar(env E, v Var) A
	ReduceExprBody(env E, body *ExprBody) A
	ReduceFunSig(env E, sig FunSig) A

	// Opaque leaf introduced at this layer.
	ReduceAbortKind(env E, k AbortKind) A
}

// ReduceBase extends expressions.ReduceBase with statement-layer folding
// defaults.
type ReduceBase[E, A any] struct {
	expressions.ReduceBase[E, A]
	Self Reduce[E, A]
}

// NewReduceBase wires self and the monoid through the ancestor chain.
func NewReduceBase[E, A any](self Reduce[E, A], m values.Monoid[A]) ReduceBase[E, A] {
	return ReduceBase[E, A]{
		ReduceBase: expressions.NewReduceBase[E, A](self, m),
		Self:       self,
	}
}

func (b *ReduceBase[E, A]) self() Reduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *ReduceBase[E, A]) ReduceStatement(env E, s Statement) A {
	return FoldStatement(b.self(), env, s)
}
func (b *ReduceBase[E, A]) ReduceBlock(env E, bl Block) A { return FoldBlock(b.self(), env, bl) }
func (b *ReduceBase[E, A]) ReduceSwitch(env E, sw Switch) A {
	return FoldSwitch(b.self(), env, sw)
}
func (b *ReduceBase[E, A]) ReduceSwitchCase(env E, c SwitchCase) A {
	return FoldSwitchCase(b.self(), env, c)
}
func (b *ReduceBase[E, A]) ReduceCall(env E, c Call) A { return FoldCall(b.self(), env, c) }
func (b *ReduceBase[E, A]) ReduceVar(env E, v Var) A   { return FoldVar(b.self(), env, v) }
func (b *ReduceBase[E, A]) ReduceExprBody(env E, body *ExprBody) A {
	return FoldExprBody(b.self(), env, body)
}
func (b *ReduceBase[E, A]) ReduceFunSig(env E, sig FunSig) A {
	return FoldFunSig(b.self(), env, sig)
}

// Leaf default: the neutral element.
func (b *ReduceBase[E, A]) ReduceAbortKind(E, AbortKind) A { return b.M.Zero() }

// FoldStatement folds the payload of a statement.
func FoldStatement[E, A any](v Reduce[E, A], env E, s Statement) A {
	m := v.Monoid()
	switch st := s.(type) {
	case SAssign:
		return m.Plus(v.ReducePlace(env, st.Place), v.ReduceRvalue(env, st.Rvalue))
	case SCall:
		return v.ReduceCall(env, st.Call)
	case SAbort:
		return v.ReduceAbortKind(env, st.Kind)
	case SSwitch:
		return v.ReduceSwitch(env, st.Switch)
	case SLoop:
		return v.ReduceBlock(env, st.Block)
	default:
		return m.Zero()
	}
}

// FoldBlock folds each statement left to right.
func FoldBlock[E, A any](v Reduce[E, A], env E, b Block) A {
	m := v.Monoid()
	acc := m.Zero()
	for _, s := range b.Statements {
		acc = m.Plus(acc, v.ReduceStatement(env, s))
	}
	return acc
}

// FoldSwitch folds the payload of a switch.
func FoldSwitch[E, A any](v Reduce[E, A], env E, sw Switch) A {
	m := v.Monoid()
	switch s := sw.(type) {
	case SwIf:
		acc := v.ReduceOperand(env, s.Cond)
		acc = m.Plus(acc, v.ReduceBlock(env, s.Then))
		return m.Plus(acc, v.ReduceBlock(env, s.Else))
	case SwInt:
		acc := v.ReduceOperand(env, s.Cond)
		acc = m.Plus(acc, v.ReduceIntegerTy(env, s.IntTy))
		for _, c := range s.Cases {
			acc = m.Plus(acc, v.ReduceSwitchCase(env, c))
		}
		return m.Plus(acc, v.ReduceBlock(env, s.Default))
	default:
		return m.Zero()
	}
}

// FoldSwitchCase folds the guard values then the guarded block.
func FoldSwitchCase[E, A any](v Reduce[E, A], env E, c SwitchCase) A {
	m := v.Monoid()
	acc := m.Zero()
	for _, sv := range c.Values {
		acc = m.Plus(acc, v.ReduceScalarValue(env, sv))
	}
	return m.Plus(acc, v.ReduceBlock(env, c.Block))
}

// FoldCall folds the callable, arguments, then destination.
func FoldCall[E, A any](v Reduce[E, A], env E, c Call) A {
	m := v.Monoid()
	acc := v.ReduceFnPtr(env, c.Func)
	for _, a := range c.Args {
		acc = m.Plus(acc, v.ReduceOperand(env, a))
	}
	return m.Plus(acc, v.ReducePlace(env, c.Dest))
}

// FoldVar folds the binding's fields in declaration order.
func FoldVar[E, A any](v Reduce[E, A], env E, lv Var) A {
	m := v.Monoid()
	acc := v.ReduceVarID(env, lv.Index)
	acc = m.Plus(acc, v.ReduceStr(env, lv.Name))
	return m.Plus(acc, v.ReduceTy(env, lv.Ty))
}

// FoldExprBody folds the locals then the body block.
func FoldExprBody[E, A any](v Reduce[E, A], env E, body *ExprBody) A {
	m := v.Monoid()
	if body == nil {
		return m.Zero()
	}
	acc := m.Zero()
	for _, lv := range body.Locals {
		acc = m.Plus(acc, v.ReduceVar(env, lv))
	}
	return m.Plus(acc, v.ReduceBlock(env, body.Body))
}

// FoldFunSig folds the binders, inputs, then output.
func FoldFunSig[E, A any](v Reduce[E, A], env E, sig FunSig) A {
	m := v.Monoid()
	acc := v.ReduceGenericParams(env, sig.Generics)
	for _, in := range sig.Inputs {
		acc = m.Plus(acc, v.ReduceTy(env, in))
	}
	return m.Plus(acc, v.ReduceTy(env, sig.Output))
}
