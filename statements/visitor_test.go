package statements

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

type none = struct{}

func i32Ty() types.Ty {
	return types.TLiteral{Ty: values.TyInteger{IntTy: values.I32}}
}

func constI32(n int64) expressions.Operand {
	return expressions.OpConst{Const: expressions.ConstantExpr{
		Value: expressions.CLiteral{Value: values.LScalar{Value: values.NewScalar(n, values.I32)}},
		Ty:    i32Ty(),
	}}
}

func localPlace(i int) expressions.Place {
	return expressions.Place{Var: ids.VarID(i)}
}

// sampleBody builds:
//
//	local0: i32
//	local0 = 1: i32
//	loop {
//	    switch local0 {
//	        0 => { break 1 }
//	        _ => { local0 = local0 - 1: i32 }
//	    }
//	}
//	return
func sampleBody() *ExprBody {
	return &ExprBody{
		ArgCount: 0,
		Locals:   []Var{{Index: 0, Name: "x", Ty: i32Ty()}},
		Body: Block{Statements: []Statement{
			SAssign{Place: localPlace(0), Rvalue: expressions.RvUse{Operand: constI32(1)}},
			SLoop{Block: Block{Statements: []Statement{
				SSwitch{Switch: SwInt{
					Cond:  expressions.OpCopy{Place: localPlace(0)},
					IntTy: values.I32,
					Cases: []SwitchCase{{
						Values: []values.ScalarValue{values.NewScalar(0, values.I32)},
						Block:  Block{Statements: []Statement{SBreak{Depth: 1}}},
					}},
					Default: Block{Statements: []Statement{
						SAssign{
							Place: localPlace(0),
							Rvalue: expressions.RvBinary{
								Op:    expressions.BinSub,
								Left:  expressions.OpCopy{Place: localPlace(0)},
								Right: constI32(1),
							},
						},
					}},
				}},
			}}},
			SReturn{},
		}},
	}
}

func TestStatementSumsSealed(t *testing.T) {
	var _ Statement = SAssign{}
	var _ Statement = SCall{}
	var _ Statement = SAbort{}
	var _ Statement = SReturn{}
	var _ Statement = SBreak{}
	var _ Statement = SContinue{}
	var _ Statement = SNop{}
	var _ Statement = SSwitch{}
	var _ Statement = SLoop{}

	var _ Switch = SwIf{}
	var _ Switch = SwInt{}

	var _ AbortKind = AbortPanic{}
	var _ AbortKind = AbortUndefinedBehavior{}
}

// bigIntCounter counts literal occurrences anywhere in a body.
type bigIntCounter struct {
	ReduceBase[none, int]
}

func newBigIntCounter() *bigIntCounter {
	c := &bigIntCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *bigIntCounter) ReduceBigInt(_ none, _ *big.Int) int { return 1 }

func TestAncestorMethodsReachableFromStatementLayer(t *testing.T) {
	// Three scalar constants: the initial 1, the case guard 0, and the
	// subtrahend 1. A literal-layer override sees them all through four
	// layers of recursion.
	c := newBigIntCounter()
	assert.Equal(t, 3, c.ReduceExprBody(none{}, sampleBody()))
}

// abortCollector looks inside aborts; everything else is default.
type abortCollector struct {
	IterBase[none]
	names []string
}

func newAbortCollector() *abortCollector {
	a := &abortCollector{}
	a.IterBase = NewIterBase[none](a)
	return a
}

func (a *abortCollector) VisitAbortKind(_ none, k AbortKind) {
	if p, ok := k.(AbortPanic); ok {
		a.names = append(a.names, p.Name)
	}
}

func TestAbortKindIsOpaqueByDefault(t *testing.T) {
	block := Block{Statements: []Statement{
		SAbort{Kind: AbortPanic{Name: "core::panicking::panic"}},
		SAbort{Kind: AbortUndefinedBehavior{}},
	}}

	// The default traversal stops at the leaf without error.
	plain := &struct{ IterBase[none] }{}
	plain.IterBase = NewIterBase[none](plain)
	plain.VisitBlock(none{}, block)

	// An override receives the whole kind.
	a := newAbortCollector()
	a.VisitBlock(none{}, block)
	assert.Equal(t, []string{"core::panicking::panic"}, a.names)
}

func TestMapIdentityAndVariants(t *testing.T) {
	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)

	inputs := []Statement{
		SAssign{Place: localPlace(1), Rvalue: expressions.RvUse{Operand: constI32(9)}},
		SCall{Call: Call{
			Func: expressions.FnPtr{Func: expressions.FRegular{ID: ids.FunDeclID(4)}},
			Args: []expressions.Operand{constI32(2)},
			Dest: localPlace(0),
		}},
		SAbort{Kind: AbortPanic{Name: "overflow"}},
		SReturn{},
		SBreak{Depth: 2},
		SContinue{Depth: 1},
		SNop{},
		SLoop{Block: Block{}},
	}
	for _, in := range inputs {
		out := id.MapStatement(none{}, in)
		assert.Equal(t, in.VariantName(), out.VariantName())
		assert.Equal(t, in, out)
	}

	body := sampleBody()
	mapped := id.MapExprBody(none{}, body)
	require.NotSame(t, body, mapped)
	assert.Equal(t, body, mapped)
}

// caseZeroRewriter bumps every guard scalar by one.
type caseZeroRewriter struct {
	MapBase[none]
}

func newCaseZeroRewriter() *caseZeroRewriter {
	v := &caseZeroRewriter{}
	v.MapBase = NewMapBase[none](v)
	return v
}

func (v *caseZeroRewriter) MapScalarValue(_ none, sv values.ScalarValue) values.ScalarValue {
	return values.ScalarValue{
		Value: new(big.Int).Add(sv.Value, big.NewInt(1)),
		IntTy: sv.IntTy,
	}
}

func TestMapValueOverrideReachesSwitchGuards(t *testing.T) {
	in := sampleBody()
	out := newCaseZeroRewriter().MapExprBody(none{}, in)

	loop := out.Body.Statements[1].(SLoop)
	sw := loop.Block.Statements[0].(SSwitch).Switch.(SwInt)
	require.Len(t, sw.Cases, 1)
	require.Len(t, sw.Cases[0].Values, 1)
	assert.Equal(t, "1: i32", sw.Cases[0].Values[0].String())

	// Input untouched.
	inSw := in.Body.Statements[1].(SLoop).Block.Statements[0].(SSwitch).Switch.(SwInt)
	assert.Equal(t, "0: i32", inSw.Cases[0].Values[0].String())
}

// varUseCounter counts local variable occurrences, binders included.
type varUseCounter struct {
	ReduceBase[none, int]
}

func newVarUseCounter() *varUseCounter {
	c := &varUseCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *varUseCounter) ReduceVarID(_ none, _ ids.VarID) int { return 1 }

// varRenumberer shifts every local variable index up by ten.
type varRenumberer struct {
	MapBase[none]
}

func newVarRenumberer() *varRenumberer {
	v := &varRenumberer{}
	v.MapBase = NewMapBase[none](v)
	return v
}

func (v *varRenumberer) MapVarID(_ none, id ids.VarID) ids.VarID { return id + 10 }

// mrRenumberCounter renumbers locals and counts them in one pass.
type mrRenumberCounter struct {
	MapReduceBase[none, int]
}

func newMRRenumberCounter() *mrRenumberCounter {
	v := &mrRenumberCounter{}
	v.MapReduceBase = NewMapReduceBase[none, int](v, values.SumMonoid())
	return v
}

func (v *mrRenumberCounter) MapReduceVarID(_ none, id ids.VarID) (ids.VarID, int) {
	return id + 10, 1
}

func TestMapReduceConsistencyOnBodies(t *testing.T) {
	in := sampleBody()

	// Map then reduce separately, over the mapped tree.
	mapped := newVarRenumberer().MapExprBody(none{}, in)
	folded := newVarUseCounter().ReduceExprBody(none{}, mapped)

	// One combined pass.
	got, acc := newMRRenumberCounter().MapReduceExprBody(none{}, in)
	assert.Equal(t, mapped, got)
	assert.Equal(t, folded, acc)
	// One binder, the assignment target, the switch scrutinee, and the
	// two in the decrement.
	assert.Equal(t, 5, acc)
}

func TestFunSigTraversal(t *testing.T) {
	sig := FunSig{
		Generics: types.GenericParams{
			Types: []types.TypeVar{{Index: 0, Name: "T"}},
		},
		Inputs: []types.Ty{types.TVar{ID: 0}, i32Ty()},
		Output: types.TRef{Pointee: types.TVar{ID: 0}, Kind: types.RefShared},
	}

	c := &struct{ ReduceBase[none, int] }{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	assert.Equal(t, 0, c.ReduceFunSig(none{}, sig))

	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)
	assert.Equal(t, sig, id.MapFunSig(none{}, sig))
}
