package statements

import (
	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// MapReduce extends the expression-layer single-pass map+reduce with the
// statement-layer node kinds.
type MapReduce[E, A any] interface {
	expressions.MapReduce[E, A]

	MapReduceStatement(env E, s Statement) (Statement, A)
	MapReduceBlock(env E, b Block) (Block, A)
	MapReduceSwitch(env E, sw Switch) (Switch, A)
	MapReduceSwitchCase(env E, c SwitchCase) (SwitchCase, A)
	MapReduceCall(env E, c Call) (Call, A)
	MapReduceVar(env E, v Var) (Var, A)
	MapReduceExprBody(env E, body *ExprBody) (*ExprBody, A)
	MapReduceFunSig(env E, sig FunSig) (FunSig, A)

	// Opaque leaf introduced at this layer.
	MapReduceAbortKind(env E, k AbortKind) (AbortKind, A)
}

// MapReduceBase extends expressions.MapReduceBase with statement-layer
// defaults.
type MapReduceBase[E, A any] struct {
	expressions.MapReduceBase[E, A]
	Self MapReduce[E, A]
}

// NewMapReduceBase wires self and the monoid through the ancestor chain.
func NewMapReduceBase[E, A any](self MapReduce[E, A], m values.Monoid[A]) MapReduceBase[E, A] {
	return MapReduceBase[E, A]{
		MapReduceBase: expressions.NewMapReduceBase[E, A](self, m),
		Self:          self,
	}
}

func (b *MapReduceBase[E, A]) self() MapReduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapReduceBase[E, A]) MapReduceStatement(env E, s Statement) (Statement, A) {
	return RebuildFoldStatement(b.self(), env, s)
}
func (b *MapReduceBase[E, A]) MapReduceBlock(env E, bl Block) (Block, A) {
	return RebuildFoldBlock(b.self(), env, bl)
}
func (b *MapReduceBase[E, A]) MapReduceSwitch(env E, sw Switch) (Switch, A) {
	return RebuildFoldSwitch(b.self(), env, sw)
}
func (b *MapReduceBase[E, A]) MapReduceSwitchCase(env E, c SwitchCase) (SwitchCase, A) {
	return RebuildFoldSwitchCase(b.self(), env, c)
}
func (b *MapReduceBase[E, A]) MapReduceCall(env E, c Call) (Call, A) {
	return RebuildFoldCall(b.self(), env, c)
}
func (b *MapReduceBase[E, A]) MapReduceVar(env E, v Var) (Var, A) {
	return RebuildFoldVar(b.self(), env, v)
}
func (b *MapReduceBase[E, A]) MapReduceExprBody(env E, body *ExprBody) (*ExprBody, A) {
	return RebuildFoldExprBody(b.self(), env, body)
}
func (b *MapReduceBase[E, A]) MapReduceFunSig(env E, sig FunSig) (FunSig, A) {
	return RebuildFoldFunSig(b.self(), env, sig)
}

// Leaf default: (input unchanged, neutral element).
func (b *MapReduceBase[E, A]) MapReduceAbortKind(_ E, k AbortKind) (AbortKind, A) {
	return k, b.M.Zero()
}

// RebuildFoldStatement transforms and folds a statement under its
// variant.
func RebuildFoldStatement[E, A any](v MapReduce[E, A], env E, s Statement) (Statement, A) {
	m := v.Monoid()
	switch st := s.(type) {
	case SAssign:
		place, a1 := v.MapReducePlace(env, st.Place)
		rvalue, a2 := v.MapReduceRvalue(env, st.Rvalue)
		return SAssign{Place: place, Rvalue: rvalue}, m.Plus(a1, a2)
	case SCall:
		call, acc := v.MapReduceCall(env, st.Call)
		return SCall{Call: call}, acc
	case SAbort:
		kind, acc := v.MapReduceAbortKind(env, st.Kind)
		return SAbort{Kind: kind}, acc
	case SSwitch:
		sw, acc := v.MapReduceSwitch(env, st.Switch)
		return SSwitch{Switch: sw}, acc
	case SLoop:
		block, acc := v.MapReduceBlock(env, st.Block)
		return SLoop{Block: block}, acc
	default:
		return s, m.Zero()
	}
}

// RebuildFoldBlock transforms and folds each statement in order.
func RebuildFoldBlock[E, A any](v MapReduce[E, A], env E, b Block) (Block, A) {
	m := v.Monoid()
	acc := m.Zero()
	out := Block{}
	if b.Statements != nil {
		out.Statements = make([]Statement, len(b.Statements))
		for i, s := range b.Statements {
			var a A
			out.Statements[i], a = v.MapReduceStatement(env, s)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldSwitch transforms and folds a switch under its variant.
func RebuildFoldSwitch[E, A any](v MapReduce[E, A], env E, sw Switch) (Switch, A) {
	m := v.Monoid()
	switch s := sw.(type) {
	case SwIf:
		cond, a1 := v.MapReduceOperand(env, s.Cond)
		then, a2 := v.MapReduceBlock(env, s.Then)
		els, a3 := v.MapReduceBlock(env, s.Else)
		return SwIf{Cond: cond, Then: then, Else: els}, m.Plus(m.Plus(a1, a2), a3)
	case SwInt:
		cond, acc := v.MapReduceOperand(env, s.Cond)
		intTy, a := v.MapReduceIntegerTy(env, s.IntTy)
		acc = m.Plus(acc, a)
		out := SwInt{Cond: cond, IntTy: intTy}
		if s.Cases != nil {
			out.Cases = make([]SwitchCase, len(s.Cases))
			for i, c := range s.Cases {
				out.Cases[i], a = v.MapReduceSwitchCase(env, c)
				acc = m.Plus(acc, a)
			}
		}
		out.Default, a = v.MapReduceBlock(env, s.Default)
		return out, m.Plus(acc, a)
	default:
		return sw, m.Zero()
	}
}

// RebuildFoldSwitchCase transforms and folds the guard values then the
// guarded block.
func RebuildFoldSwitchCase[E, A any](v MapReduce[E, A], env E, c SwitchCase) (SwitchCase, A) {
	m := v.Monoid()
	acc := m.Zero()
	out := SwitchCase{}
	if c.Values != nil {
		out.Values = make([]values.ScalarValue, len(c.Values))
		for i, sv := range c.Values {
			var a A
			out.Values[i], a = v.MapReduceScalarValue(env, sv)
			acc = m.Plus(acc, a)
		}
	}
	var a A
	out.Block, a = v.MapReduceBlock(env, c.Block)
	return out, m.Plus(acc, a)
}

// RebuildFoldCall transforms and folds the callable, arguments, then
// destination.
func RebuildFoldCall[E, A any](v MapReduce[E, A], env E, c Call) (Call, A) {
	m := v.Monoid()
	fn, acc := v.MapReduceFnPtr(env, c.Func)
	out := Call{Func: fn}
	if c.Args != nil {
		out.Args = make([]expressions.Operand, len(c.Args))
		for i, arg := range c.Args {
			var a A
			out.Args[i], a = v.MapReduceOperand(env, arg)
			acc = m.Plus(acc, a)
		}
	}
	var a A
	out.Dest, a = v.MapReducePlace(env, c.Dest)
	return out, m.Plus(acc, a)
}

// RebuildFoldVar transforms and folds the binding's fields in order.
func RebuildFoldVar[E, A any](v MapReduce[E, A], env E, lv Var) (Var, A) {
	m := v.Monoid()
	index, a1 := v.MapReduceVarID(env, lv.Index)
	name, a2 := v.MapReduceStr(env, lv.Name)
	ty, a3 := v.MapReduceTy(env, lv.Ty)
	return Var{Index: index, Name: name, Ty: ty}, m.Plus(m.Plus(a1, a2), a3)
}

// RebuildFoldExprBody transforms and folds the locals then the body,
// returning a new record.
func RebuildFoldExprBody[E, A any](v MapReduce[E, A], env E, body *ExprBody) (*ExprBody, A) {
	m := v.Monoid()
	if body == nil {
		return nil, m.Zero()
	}
	acc := m.Zero()
	out := &ExprBody{ArgCount: body.ArgCount}
	if body.Locals != nil {
		out.Locals = make([]Var, len(body.Locals))
		for i, lv := range body.Locals {
			var a A
			out.Locals[i], a = v.MapReduceVar(env, lv)
			acc = m.Plus(acc, a)
		}
	}
	var a A
	out.Body, a = v.MapReduceBlock(env, body.Body)
	return out, m.Plus(acc, a)
}

// RebuildFoldFunSig transforms and folds the binders, inputs, then
// output.
func RebuildFoldFunSig[E, A any](v MapReduce[E, A], env E, sig FunSig) (FunSig, A) {
	m := v.Monoid()
	generics, acc := v.MapReduceGenericParams(env, sig.Generics)
	out := FunSig{Generics: generics}
	if sig.Inputs != nil {
		out.Inputs = make([]types.Ty, len(sig.Inputs))
		for i, in := range sig.Inputs {
			var a A
			out.Inputs[i], a = v.MapReduceTy(env, in)
			acc = m.Plus(acc, a)
		}
	}
	var a A
	out.Output, a = v.MapReduceTy(env, sig.Output)
	return out, m.Plus(acc, a)
}
