package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

type none = struct{}

func sampleTy() Ty {
	// Vec<&i32, N> style shape exercising every recursive edge:
	// Adt(builtin, [Ref(Literal(i32), shared)], [Var, Value(5: usize)])
	return TAdt{
		ID: IDBuiltin{Builtin: BuiltinArray},
		Args: GenericArgs{
			Types: []Ty{
				TRef{Pointee: TLiteral{Ty: values.TyInteger{IntTy: values.I32}}, Kind: RefShared},
				TVar{ID: ids.TypeVarID(0)},
			},
			ConstGenerics: []ConstGeneric{
				CgVar{ID: ids.ConstGenericVarID(1)},
				CgValue{Value: values.LScalar{Value: values.NewScalar(5, values.Usize)}},
			},
		},
	}
}

func TestTySealed(t *testing.T) {
	var _ Ty = TAdt{}
	var _ Ty = TVar{}
	var _ Ty = TLiteral{}
	var _ Ty = TNever{}
	var _ Ty = TRef{}
	var _ Ty = TRawPtr{}
	var _ Ty = TArrow{}

	var _ TypeID = IDAdt{}
	var _ TypeID = IDTuple{}
	var _ TypeID = IDBuiltin{}

	var _ ConstGeneric = CgGlobal{}
	var _ ConstGeneric = CgVar{}
	var _ ConstGeneric = CgValue{}

	var _ TypeDeclKind = KStruct{}
	var _ TypeDeclKind = KEnum{}
	var _ TypeDeclKind = KOpaque{}
}

// tyVarCounter counts type variable occurrences anywhere in a tree.
type tyVarCounter struct {
	ReduceBase[none, int]
}

func newTyVarCounter() *tyVarCounter {
	c := &tyVarCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *tyVarCounter) ReduceTypeVarID(_ none, _ ids.TypeVarID) int { return 1 }

func TestReduceCountsThroughNesting(t *testing.T) {
	c := newTyVarCounter()
	assert.Equal(t, 1, c.ReduceTy(none{}, sampleTy()))

	arrow := TArrow{
		Inputs: []Ty{TVar{ID: 0}, TVar{ID: 1}},
		Output: TRef{Pointee: TVar{ID: 2}, Kind: RefMut},
	}
	assert.Equal(t, 3, c.ReduceTy(none{}, arrow))
}

// bigIntCounter reuses the literal-layer leaf through the type layer.
type bigIntCounter struct {
	ReduceBase[none, int]
}

func newBigIntCounter() *bigIntCounter {
	c := &bigIntCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *bigIntCounter) ReduceBigInt(_ none, _ *big.Int) int { return 1 }

func TestAncestorMethodsReachableFromTypeLayer(t *testing.T) {
	// A literal-layer override fires for literals nested under type
	// nodes, via the inherited recursion.
	c := newBigIntCounter()
	assert.Equal(t, 1, c.ReduceTy(none{}, sampleTy()))
	assert.Equal(t, 0, c.ReduceTy(none{}, TNever{}))
}

func TestMapIdentityAndVariants(t *testing.T) {
	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)

	inputs := []Ty{
		sampleTy(),
		TNever{},
		TRawPtr{Pointee: TLiteral{Ty: values.TyBool{}}, Kind: RefMut},
		TArrow{Inputs: []Ty{TVar{ID: 3}}, Output: TNever{}},
	}
	for _, in := range inputs {
		out := id.MapTy(none{}, in)
		assert.Equal(t, in.VariantName(), out.VariantName())
		assert.Equal(t, in, out)
	}
}

// widthWidener maps every i32 width tag to i64, nothing else.
type widthWidener struct {
	MapBase[none]
}

func newWidthWidener() *widthWidener {
	w := &widthWidener{}
	w.MapBase = NewMapBase[none](w)
	return w
}

func (w *widthWidener) MapIntegerTy(_ none, t values.IntegerTy) values.IntegerTy {
	if t == values.I32 {
		return values.I64
	}
	return t
}

func TestMapLeafOverrideRewritesNestedTags(t *testing.T) {
	in := TRef{
		Pointee: TLiteral{Ty: values.TyInteger{IntTy: values.I32}},
		Kind:    RefShared,
	}
	out := newWidthWidener().MapTy(none{}, in)

	ref, ok := out.(TRef)
	require.True(t, ok)
	lit, ok := ref.Pointee.(TLiteral)
	require.True(t, ok)
	assert.Equal(t, values.TyInteger{IntTy: values.I64}, lit.Ty)
	// Input untouched.
	assert.Equal(t, values.TyInteger{IntTy: values.I32}, in.Pointee.(TLiteral).Ty)
}

// mrCounterWidener widens i32 tags and counts them in one pass.
type mrCounterWidener struct {
	MapReduceBase[none, int]
}

func newMRCounterWidener() *mrCounterWidener {
	v := &mrCounterWidener{}
	v.MapReduceBase = NewMapReduceBase[none, int](v, values.SumMonoid())
	return v
}

func (v *mrCounterWidener) MapReduceIntegerTy(_ none, t values.IntegerTy) (values.IntegerTy, int) {
	out := t
	if t == values.I32 {
		out = values.I64
	}
	if out == values.I64 {
		return out, 1
	}
	return out, 0
}

// i64Counter counts i64 width tags; applied after widening it mirrors
// mrCounterWidener's fold half.
type i64Counter struct {
	ReduceBase[none, int]
}

func newI64Counter() *i64Counter {
	c := &i64Counter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *i64Counter) ReduceIntegerTy(_ none, t values.IntegerTy) int {
	if t == values.I64 {
		return 1
	}
	return 0
}

func TestMapReduceConsistencyOnTypes(t *testing.T) {
	in := TArrow{
		Inputs: []Ty{
			TLiteral{Ty: values.TyInteger{IntTy: values.I32}},
			TLiteral{Ty: values.TyInteger{IntTy: values.U8}},
			sampleTy(),
		},
		Output: TLiteral{Ty: values.TyInteger{IntTy: values.I32}},
	}

	// Map then reduce separately, over the mapped tree.
	mapped := newWidthWidener().MapTy(none{}, in)
	folded := newI64Counter().ReduceTy(none{}, mapped)

	// One combined pass.
	got, acc := newMRCounterWidener().MapReduceTy(none{}, in)
	assert.Equal(t, mapped, got)
	assert.Equal(t, folded, acc)
	assert.Equal(t, 3, acc) // two widened inputs plus the one in sampleTy
}

func TestTypeDeclTraversal(t *testing.T) {
	decl := &TypeDecl{
		ID:   ids.TypeDeclID(7),
		Name: "Pair",
		Generics: GenericParams{
			Types: []TypeVar{{Index: 0, Name: "T"}},
		},
		Kind: KStruct{Fields: []Field{
			{Name: "first", Ty: TVar{ID: 0}},
			{Name: "second", Ty: TLiteral{Ty: values.TyInteger{IntTy: values.I32}}},
		}},
	}

	c := newTyVarCounter()
	// One binder occurrence plus one use in the first field.
	assert.Equal(t, 2, c.ReduceTypeDecl(none{}, decl))

	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)
	out := id.MapTypeDecl(none{}, decl)
	require.NotSame(t, decl, out)
	assert.Equal(t, decl, out)
}
