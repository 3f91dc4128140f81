package expressions

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

type none = struct{}

func variantID(i int) *ids.VariantID {
	v := ids.VariantID(i)
	return &v
}

func constOperand(n int64, ty values.IntegerTy) Operand {
	return OpConst{Const: ConstantExpr{
		Value: CLiteral{Value: values.LScalar{Value: values.NewScalar(n, ty)}},
		Ty:    types.TLiteral{Ty: values.TyInteger{IntTy: ty}},
	}}
}

// sampleRvalue builds `x.field0 + 5: i32` over a projected place.
func sampleRvalue() Rvalue {
	return RvBinary{
		Op: BinAdd,
		Left: OpCopy{Place: Place{
			Var: ids.VarID(1),
			Projection: []Projection{
				PDeref{},
				PField{
					Kind:  FkAdt{ID: ids.TypeDeclID(3), Variant: variantID(0)},
					Field: ids.FieldID(0),
				},
			},
		}},
		Right: constOperand(5, values.I32),
	}
}

func TestExpressionSumsSealed(t *testing.T) {
	var _ Projection = PDeref{}
	var _ Projection = PField{}

	var _ FieldProjKind = FkAdt{}
	var _ FieldProjKind = FkTuple{}

	var _ FunID = FRegular{}
	var _ FunID = FBuiltin{}

	var _ RawConstant = CLiteral{}
	var _ RawConstant = CVar{}
	var _ RawConstant = CFnPtr{}

	var _ Operand = OpCopy{}
	var _ Operand = OpMove{}
	var _ Operand = OpConst{}

	var _ AggregateKind = AkAdt{}
	var _ AggregateKind = AkArray{}

	var _ Rvalue = RvUse{}
	var _ Rvalue = RvRef{}
	var _ Rvalue = RvUnary{}
	var _ Rvalue = RvBinary{}
	var _ Rvalue = RvDiscriminant{}
	var _ Rvalue = RvGlobal{}
	var _ Rvalue = RvAggregate{}
}

// varUseCounter counts local variable occurrences.
type varUseCounter struct {
	ReduceBase[none, int]
}

func newVarUseCounter() *varUseCounter {
	c := &varUseCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *varUseCounter) ReduceVarID(_ none, _ ids.VarID) int { return 1 }

func TestReduceCountsPlaceVariables(t *testing.T) {
	c := newVarUseCounter()
	assert.Equal(t, 1, c.ReduceRvalue(none{}, sampleRvalue()))

	agg := RvAggregate{
		Kind: AkAdt{ID: types.IDTuple{}, Variant: nil},
		Operands: []Operand{
			OpMove{Place: Place{Var: ids.VarID(2)}},
			OpCopy{Place: Place{Var: ids.VarID(3)}},
		},
	}
	assert.Equal(t, 2, c.ReduceRvalue(none{}, agg))
}

// bigIntCounter checks that literal-layer leaves remain reachable from
// the expression layer, through constants.
type bigIntCounter struct {
	ReduceBase[none, int]
}

func newBigIntCounter() *bigIntCounter {
	c := &bigIntCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *bigIntCounter) ReduceBigInt(_ none, _ *big.Int) int { return 1 }

func TestAncestorMethodsReachableFromExpressionLayer(t *testing.T) {
	c := newBigIntCounter()
	assert.Equal(t, 1, c.ReduceRvalue(none{}, sampleRvalue()))

	// A const generic value nested in a function pointer's args.
	fnPtr := CFnPtr{Ptr: FnPtr{
		Func: FRegular{ID: ids.FunDeclID(9)},
		Args: types.GenericArgs{
			ConstGenerics: []types.ConstGeneric{
				types.CgValue{Value: values.LScalar{Value: values.NewScalar(2, values.Usize)}},
			},
		},
	}}
	assert.Equal(t, 1, c.ReduceRawConstant(none{}, fnPtr))
}

// iterRecorder records variant names of every rvalue and operand seen.
type iterRecorder struct {
	IterBase[none]
	seen []string
}

func newIterRecorder() *iterRecorder {
	r := &iterRecorder{}
	r.IterBase = NewIterBase[none](r)
	return r
}

func (r *iterRecorder) VisitRvalue(env none, rv Rvalue) {
	r.seen = append(r.seen, "rv:"+rv.VariantName())
	IterRvalue[none](r, env, rv)
}

func (r *iterRecorder) VisitOperand(env none, op Operand) {
	r.seen = append(r.seen, "op:"+op.VariantName())
	IterOperand[none](r, env, op)
}

func TestIterateVisitsChildrenInDeclarationOrder(t *testing.T) {
	r := newIterRecorder()
	r.VisitRvalue(none{}, sampleRvalue())
	assert.Equal(t, []string{"rv:BinaryOp", "op:Copy", "op:Const"}, r.seen)
}

func TestMapIdentityAndVariants(t *testing.T) {
	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)

	inputs := []Rvalue{
		sampleRvalue(),
		RvRef{Place: Place{Var: 0, Projection: []Projection{PDeref{}}}, Kind: BorrowMut},
		RvUnary{Op: UnNeg, Operand: constOperand(1, values.I8)},
		RvDiscriminant{Place: Place{Var: 4}},
		RvGlobal{ID: ids.GlobalDeclID(2)},
		RvAggregate{
			Kind:     AkArray{Ty: types.TNever{}, Len: types.CgVar{ID: 0}},
			Operands: nil,
		},
	}
	for _, in := range inputs {
		out := id.MapRvalue(none{}, in)
		assert.Equal(t, in.VariantName(), out.VariantName())
		assert.Equal(t, in, out)
	}
}

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

func TestMapLeafOverrideRewritesPlaces(t *testing.T) {
	in := sampleRvalue()
	out := newVarRenumberer().MapRvalue(none{}, in)

	bin, ok := out.(RvBinary)
	require.True(t, ok)
	left, ok := bin.Left.(OpCopy)
	require.True(t, ok)
	assert.Equal(t, ids.VarID(11), left.Place.Var)
	// Projections survive the rewrite.
	require.Len(t, left.Place.Projection, 2)
	assert.Equal(t, "Deref", left.Place.Projection[0].VariantName())
	// Input untouched.
	assert.Equal(t, ids.VarID(1), in.(RvBinary).Left.(OpCopy).Place.Var)
}

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

func TestMapReduceConsistencyOnExpressions(t *testing.T) {
	in := RvAggregate{
		Kind: AkAdt{ID: types.IDAdt{ID: ids.TypeDeclID(1)}, Variant: variantID(2)},
		Operands: []Operand{
			OpCopy{Place: Place{Var: ids.VarID(0)}},
			OpMove{Place: Place{Var: ids.VarID(1), Projection: []Projection{PDeref{}}}},
			constOperand(7, values.U16),
		},
	}

	// Map then reduce separately, over the mapped tree.
	mapped := newVarRenumberer().MapRvalue(none{}, in)
	folded := newVarUseCounter().ReduceRvalue(none{}, mapped)

	// One combined pass.
	got, acc := newMRRenumberCounter().MapReduceRvalue(none{}, in)
	assert.Equal(t, mapped, got)
	assert.Equal(t, folded, acc)
	assert.Equal(t, 2, acc)
}

func TestFnPtrTraversal(t *testing.T) {
	fp := FnPtr{
		Func: FBuiltin{Builtin: BuiltinSliceLen},
		Args: types.GenericArgs{
			Types: []types.Ty{types.TVar{ID: ids.TypeVarID(0)}},
		},
	}

	// Builtin callables round-trip unchanged under the identity map.
	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)
	assert.Equal(t, fp, id.MapFnPtr(none{}, fp))

	// Type-layer overrides fire under the callable's generic arguments.
	c := &struct{ ReduceBase[none, int] }{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	assert.Equal(t, 0, c.ReduceFnPtr(none{}, fp))
}
