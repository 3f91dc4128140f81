package statements

import (
	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// Map extends the expression-layer structure-preserving transformation
// with the statement-layer node kinds.
type Map[E any] interface {
	expressions.Map[E]

	MapStatement(env E, s Statement) Statement
	MapBlock(env E, b Block) Block
	MapSwitch(env E, sw Switch) Switch
	MapSwitchCase(env E, c SwitchCase) SwitchCase
	MapCall(env E, c Call) Call
	MapVar(env E, v Var) Var
	MapExprBody(env E, body *ExprBody) *ExprBody
	MapFunSig(env E, sig FunSig) FunSig

	// Opaque leaf introduced at this layer.
	MapAbortKind(env E, k AbortKind) AbortKind
}

// MapBase extends expressions.MapBase with statement-layer defaults.
type MapBase[E any] struct {
	expressions.MapBase[E]
	Self Map[E]
}

// NewMapBase wires self through the whole ancestor chain.
func NewMapBase[E any](self Map[E]) MapBase[E] {
	return MapBase[E]{
		MapBase: expressions.NewMapBase[E](self),
		Self:    self,
	}
}

func (b *MapBase[E]) self() Map[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapBase[E]) MapStatement(env E, s Statement) Statement {
	return RebuildStatement(b.self(), env, s)
}
func (b *MapBase[E]) MapBlock(env E, bl Block) Block { return RebuildBlock(b.self(), env, bl) }
func (b *MapBase[E]) MapSwitch(env E, sw Switch) Switch {
	return RebuildSwitch(b.self(), env, sw)
}
func (b *MapBase[E]) MapSwitchCase(env E, c SwitchCase) SwitchCase {
	return RebuildSwitchCase(b.self(), env, c)
}
func (b *MapBase[E]) MapCall(env E, c Call) Call { return RebuildCall(b.self(), env, c) }
func (b *MapBase[E]) MapVar(env E, v Var) Var    { return RebuildVar(b.self(), env, v) }
func (b *MapBase[E]) MapExprBody(env E, body *ExprBody) *ExprBody {
	return RebuildExprBody(b.self(), env, body)
}
func (b *MapBase[E]) MapFunSig(env E, sig FunSig) FunSig {
	return RebuildFunSig(b.self(), env, sig)
}

// Leaf default: identity.
func (b *MapBase[E]) MapAbortKind(_ E, k AbortKind) AbortKind { return k }

// RebuildStatement rebuilds a statement under its variant.
func RebuildStatement[E any](v Map[E], env E, s Statement) Statement {
	switch st := s.(type) {
	case SAssign:
		return SAssign{
			Place:  v.MapPlace(env, st.Place),
			Rvalue: v.MapRvalue(env, st.Rvalue),
		}
	case SCall:
		return SCall{Call: v.MapCall(env, st.Call)}
	case SAbort:
		return SAbort{Kind: v.MapAbortKind(env, st.Kind)}
	case SSwitch:
		return SSwitch{Switch: v.MapSwitch(env, st.Switch)}
	case SLoop:
		return SLoop{Block: v.MapBlock(env, st.Block)}
	default:
		return s
	}
}

// RebuildBlock maps each statement in order.
func RebuildBlock[E any](v Map[E], env E, b Block) Block {
	out := Block{}
	if b.Statements != nil {
		out.Statements = make([]Statement, len(b.Statements))
		for i, s := range b.Statements {
			out.Statements[i] = v.MapStatement(env, s)
		}
	}
	return out
}

// RebuildSwitch rebuilds a switch under its variant.
func RebuildSwitch[E any](v Map[E], env E, sw Switch) Switch {
	switch s := sw.(type) {
	case SwIf:
		return SwIf{
			Cond: v.MapOperand(env, s.Cond),
			Then: v.MapBlock(env, s.Then),
			Else: v.MapBlock(env, s.Else),
		}
	case SwInt:
		out := SwInt{
			Cond:  v.MapOperand(env, s.Cond),
			IntTy: v.MapIntegerTy(env, s.IntTy),
		}
		if s.Cases != nil {
			out.Cases = make([]SwitchCase, len(s.Cases))
			for i, c := range s.Cases {
				out.Cases[i] = v.MapSwitchCase(env, c)
			}
		}
		out.Default = v.MapBlock(env, s.Default)
		return out
	default:
		return sw
	}
}

// RebuildSwitchCase maps the guard values then the guarded block.
func RebuildSwitchCase[E any](v Map[E], env E, c SwitchCase) SwitchCase {
	out := SwitchCase{}
	if c.Values != nil {
		out.Values = make([]values.ScalarValue, len(c.Values))
		for i, sv := range c.Values {
			out.Values[i] = v.MapScalarValue(env, sv)
		}
	}
	out.Block = v.MapBlock(env, c.Block)
	return out
}

// RebuildCall maps the callable, arguments, then destination.
func RebuildCall[E any](v Map[E], env E, c Call) Call {
	out := Call{Func: v.MapFnPtr(env, c.Func)}
	if c.Args != nil {
		out.Args = make([]expressions.Operand, len(c.Args))
		for i, a := range c.Args {
			out.Args[i] = v.MapOperand(env, a)
		}
	}
	out.Dest = v.MapPlace(env, c.Dest)
	return out
}

// RebuildVar maps the binding's fields in declaration order.
func RebuildVar[E any](v Map[E], env E, lv Var) Var {
	return Var{
		Index: v.MapVarID(env, lv.Index),
		Name:  v.MapStr(env, lv.Name),
		Ty:    v.MapTy(env, lv.Ty),
	}
}

// RebuildExprBody maps the locals then the body, returning a new record.
func RebuildExprBody[E any](v Map[E], env E, body *ExprBody) *ExprBody {
	if body == nil {
		return nil
	}
	out := &ExprBody{ArgCount: body.ArgCount}
	if body.Locals != nil {
		out.Locals = make([]Var, len(body.Locals))
		for i, lv := range body.Locals {
			out.Locals[i] = v.MapVar(env, lv)
		}
	}
	out.Body = v.MapBlock(env, body.Body)
	return out
}

// RebuildFunSig maps the binders, inputs, then output.
func RebuildFunSig[E any](v Map[E], env E, sig FunSig) FunSig {
	out := FunSig{Generics: v.MapGenericParams(env, sig.Generics)}
	if sig.Inputs != nil {
		out.Inputs = make([]types.Ty, len(sig.Inputs))
		for i, in := range sig.Inputs {
			out.Inputs[i] = v.MapTy(env, in)
		}
	}
	out.Output = v.MapTy(env, sig.Output)
	return out
}
