package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

type none = struct{}

func i32Ty() types.Ty {
	return types.TLiteral{Ty: values.TyInteger{IntTy: values.I32}}
}

func pairTy() types.Ty {
	return types.TAdt{ID: types.IDAdt{ID: ids.TypeDeclID(0)}}
}

func retPlace() expressions.Place {
	return expressions.Place{Var: ids.VarID(0)}
}

// testCrate builds a small well-formed crate: a struct, a global, two
// functions, a trait, and an impl, scheduled in dependency order.
func testCrate() *Crate {
	c := NewCrate("demo")

	c.TypeDecls[0] = &types.TypeDecl{
		ID:   0,
		Name: "Pair",
		Kind: types.KStruct{Fields: []types.Field{
			{Name: "first", Ty: i32Ty()},
			{Name: "second", Ty: i32Ty()},
		}},
	}

	c.GlobalDecls[0] = &GlobalDecl{
		ID:   0,
		Name: "LIMIT",
		Ty:   i32Ty(),
		Body: &statements.ExprBody{
			Locals: []statements.Var{{Index: 0, Name: "ret", Ty: i32Ty()}},
			Body: statements.Block{Statements: []statements.Statement{
				statements.SAssign{
					Place: retPlace(),
					Rvalue: expressions.RvUse{Operand: expressions.OpConst{
						Const: expressions.ConstantExpr{
							Value: expressions.CLiteral{Value: values.LScalar{Value: values.NewScalar(5, values.I32)}},
							Ty:    i32Ty(),
						},
					}},
				},
				statements.SReturn{},
			}},
		},
	}

	c.FunDecls[0] = &FunDecl{
		ID:   0,
		Name: "get_limit",
		Sig:  statements.FunSig{Output: i32Ty()},
		Body: &statements.ExprBody{
			Locals: []statements.Var{{Index: 0, Name: "ret", Ty: i32Ty()}},
			Body: statements.Block{Statements: []statements.Statement{
				statements.SAssign{Place: retPlace(), Rvalue: expressions.RvGlobal{ID: 0}},
				statements.SReturn{},
			}},
		},
	}

	c.FunDecls[1] = &FunDecl{
		ID:   1,
		Name: "make_pair",
		Sig: statements.FunSig{
			Inputs: []types.Ty{i32Ty()},
			Output: pairTy(),
		},
		Body: &statements.ExprBody{
			ArgCount: 1,
			Locals: []statements.Var{
				{Index: 0, Name: "ret", Ty: pairTy()},
				{Index: 1, Name: "x", Ty: i32Ty()},
			},
			Body: statements.Block{Statements: []statements.Statement{
				statements.SAssign{
					Place: retPlace(),
					Rvalue: expressions.RvAggregate{
						Kind: expressions.AkAdt{ID: types.IDAdt{ID: 0}},
						Operands: []expressions.Operand{
							expressions.OpCopy{Place: expressions.Place{Var: 1}},
							expressions.OpCopy{Place: expressions.Place{Var: 1}},
						},
					},
				},
				statements.SReturn{},
			}},
		},
	}

	c.TraitDecls[0] = &TraitDecl{
		ID:      0,
		Name:    "Build",
		Methods: []TraitMethod{{Name: "build", FunID: 1}},
	}

	c.TraitImpls[0] = &TraitImpl{
		ID:      0,
		Name:    "BuildForPair",
		TraitID: 0,
		Methods: []TraitMethod{{Name: "build", FunID: 1}},
	}

	c.Declarations = []DeclarationGroup{
		TypeGroup{IDs: []ids.TypeDeclID{0}},
		GlobalGroup{IDs: []ids.GlobalDeclID{0}},
		FunGroup{IDs: []ids.FunDeclID{0}},
		FunGroup{IDs: []ids.FunDeclID{1}},
		TraitDeclGroup{IDs: []ids.TraitDeclID{0}},
		TraitImplGroup{IDs: []ids.TraitImplID{0}},
	}
	return c
}

func TestGroupSumsSealed(t *testing.T) {
	var _ DeclarationGroup = TypeGroup{}
	var _ DeclarationGroup = FunGroup{}
	var _ DeclarationGroup = GlobalGroup{}
	var _ DeclarationGroup = TraitDeclGroup{}
	var _ DeclarationGroup = TraitImplGroup{}
	var _ DeclarationGroup = MixedGroup{}
}

// declRecorder records the name of every declaration record visited.
type declRecorder struct {
	IterBase[none]
	names []string
}

func newDeclRecorder() *declRecorder {
	r := &declRecorder{}
	r.IterBase = NewIterBase[none](r)
	return r
}

func (r *declRecorder) VisitTypeDecl(env none, d *types.TypeDecl) {
	r.names = append(r.names, d.Name)
	types.IterTypeDecl[none](r, env, d)
}
func (r *declRecorder) VisitFunDecl(env none, d *FunDecl) {
	r.names = append(r.names, d.Name)
	IterFunDecl[none](r, env, d)
}
func (r *declRecorder) VisitGlobalDecl(env none, d *GlobalDecl) {
	r.names = append(r.names, d.Name)
	IterGlobalDecl[none](r, env, d)
}
func (r *declRecorder) VisitTraitDecl(env none, d *TraitDecl) {
	r.names = append(r.names, d.Name)
	IterTraitDecl[none](r, env, d)
}
func (r *declRecorder) VisitTraitImpl(env none, d *TraitImpl) {
	r.names = append(r.names, d.Name)
	IterTraitImpl[none](r, env, d)
}

func TestCrateTraversalFollowsDeclarationOrder(t *testing.T) {
	r := newDeclRecorder()
	r.VisitCrate(none{}, testCrate())
	assert.Equal(t, []string{
		"Pair", "LIMIT", "get_limit", "make_pair", "Build", "BuildForPair",
	}, r.names)
}

// funIDCounter counts function id occurrences anywhere in a crate.
type funIDCounter struct {
	ReduceBase[none, int]
}

func newFunIDCounter() *funIDCounter {
	c := &funIDCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *funIDCounter) ReduceFunDeclID(_ none, _ ids.FunDeclID) int { return 1 }

func TestReduceCrateCountsFunctionIDs(t *testing.T) {
	// Two group entries, two record id fields, and one method binding
	// each in the trait and the impl.
	c := newFunIDCounter()
	assert.Equal(t, 6, c.ReduceCrate(none{}, testCrate()))
}

func TestMapCrateIdentity(t *testing.T) {
	id := &struct{ MapBase[none] }{}
	id.MapBase = NewMapBase[none](id)

	in := testCrate()
	out := id.MapCrate(none{}, in)
	require.NotSame(t, in, out)
	assert.Equal(t, in, out)
}

// globalShift renumbers every global declaration id up by a hundred.
type globalShift struct {
	MapBase[none]
}

func newGlobalShift() *globalShift {
	v := &globalShift{}
	v.MapBase = NewMapBase[none](v)
	return v
}

func (v *globalShift) MapGlobalDeclID(_ none, id ids.GlobalDeclID) ids.GlobalDeclID {
	return id + 100
}

func TestMapLeafOverrideRenumbersConsistently(t *testing.T) {
	out := newGlobalShift().MapCrate(none{}, testCrate())

	// The map is rekeyed by the renumbered record.
	require.Contains(t, out.GlobalDecls, ids.GlobalDeclID(100))
	assert.NotContains(t, out.GlobalDecls, ids.GlobalDeclID(0))

	// The group entry follows.
	assert.Equal(t, GlobalGroup{IDs: []ids.GlobalDeclID{100}}, out.Declarations[1])

	// So does the reference buried in get_limit's body.
	body := out.FunDecls[0].Body
	assign := body.Body.Statements[0].(statements.SAssign)
	assert.Equal(t, expressions.RvGlobal{ID: 100}, assign.Rvalue)
}

// globalIDCounter counts global id occurrences.
type globalIDCounter struct {
	ReduceBase[none, int]
}

func newGlobalIDCounter() *globalIDCounter {
	c := &globalIDCounter{}
	c.ReduceBase = NewReduceBase[none, int](c, values.SumMonoid())
	return c
}

func (c *globalIDCounter) ReduceGlobalDeclID(_ none, _ ids.GlobalDeclID) int { return 1 }

// mrGlobalShiftCounter renumbers global ids and counts them in one pass.
type mrGlobalShiftCounter struct {
	MapReduceBase[none, int]
}

func newMRGlobalShiftCounter() *mrGlobalShiftCounter {
	v := &mrGlobalShiftCounter{}
	v.MapReduceBase = NewMapReduceBase[none, int](v, values.SumMonoid())
	return v
}

func (v *mrGlobalShiftCounter) MapReduceGlobalDeclID(_ none, id ids.GlobalDeclID) (ids.GlobalDeclID, int) {
	return id + 100, 1
}

func TestMapReduceConsistencyOnCrates(t *testing.T) {
	in := testCrate()

	// Map then reduce separately, over the mapped crate.
	mapped := newGlobalShift().MapCrate(none{}, in)
	folded := newGlobalIDCounter().ReduceCrate(none{}, mapped)

	// One combined pass.
	got, acc := newMRGlobalShiftCounter().MapReduceCrate(none{}, in)
	assert.Equal(t, mapped, got)
	assert.Equal(t, folded, acc)
	// Group entry, record id field, and the use in get_limit's body.
	assert.Equal(t, 3, acc)
}

func TestSkeletonErasesBodies(t *testing.T) {
	sk := testCrate().Skeleton()
	require.Contains(t, sk.FunDecls, ids.FunDeclID(0))
	assert.Equal(t, "get_limit", sk.FunDecls[0].Name)
	assert.Equal(t, struct{}{}, sk.FunDecls[0].Body)
	assert.Len(t, sk.Declarations, 6)
}
