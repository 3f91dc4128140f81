package crates

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// printCrateFixture keeps the golden output small: one declaration of
// each of type, global and function. The crate name arrives decomposed
// to pin the NFC normalization.
func printCrateFixture() *Crate {
	c := NewCrate("cafe\u0301")

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
		Name: "double",
		Sig: statements.FunSig{
			Inputs: []types.Ty{i32Ty()},
			Output: i32Ty(),
		},
		Body: &statements.ExprBody{
			ArgCount: 1,
			Locals: []statements.Var{
				{Index: 0, Name: "ret", Ty: i32Ty()},
				{Index: 1, Name: "x", Ty: i32Ty()},
			},
			Body: statements.Block{Statements: []statements.Statement{
				statements.SAssign{
					Place: retPlace(),
					Rvalue: expressions.RvBinary{
						Op:    expressions.BinAdd,
						Left:  expressions.OpCopy{Place: expressions.Place{Var: 1}},
						Right: expressions.OpCopy{Place: expressions.Place{Var: 1}},
					},
				},
				statements.SReturn{},
			}},
		},
	}

	c.Declarations = []DeclarationGroup{
		TypeGroup{IDs: []ids.TypeDeclID{0}},
		GlobalGroup{IDs: []ids.GlobalDeclID{0}},
		FunGroup{IDs: []ids.FunDeclID{0}},
	}
	return c
}

func TestPrintCrateGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo_crate", []byte(PrintCrate(printCrateFixture())))
}

func TestPrintCrateNormalizesNames(t *testing.T) {
	out := PrintCrate(printCrateFixture())
	assert.True(t, strings.HasPrefix(out, "crate caf\u00e9\n"))
	assert.NotContains(t, out, "e\u0301")
}

func TestPrintCrateDeterministic(t *testing.T) {
	c := printCrateFixture()
	first := PrintCrate(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PrintCrate(c))
	}
}

func TestPrintCrateControlFlow(t *testing.T) {
	c := testCrate()
	c.FunDecls[0].Body.Body = statements.Block{Statements: []statements.Statement{
		statements.SLoop{Block: statements.Block{Statements: []statements.Statement{
			statements.SSwitch{Switch: statements.SwInt{
				Cond:  expressions.OpCopy{Place: retPlace()},
				IntTy: values.I32,
				Cases: []statements.SwitchCase{{
					Values: []values.ScalarValue{values.NewScalar(0, values.I32)},
					Block: statements.Block{Statements: []statements.Statement{
						statements.SBreak{Depth: 1},
					}},
				}},
				Default: statements.Block{Statements: []statements.Statement{
					statements.SAbort{Kind: statements.AbortPanic{Name: "loop"}},
				}},
			}},
		}}},
		statements.SReturn{},
	}}

	out := PrintCrate(c)
	assert.Contains(t, out, "loop {")
	assert.Contains(t, out, "switch copy _0: i32 {")
	assert.Contains(t, out, "0 => {")
	assert.Contains(t, out, "break 1")
	assert.Contains(t, out, "abort(panic: loop)")
	assert.Contains(t, out, "_ => {")
}

func TestPrintSkeletonOmitsBodies(t *testing.T) {
	out := PrintCrate(printCrateFixture().Skeleton())
	assert.Contains(t, out, "fn double(i32) -> i32\n")
	assert.Contains(t, out, "global LIMIT: i32\n")
	assert.NotContains(t, out, "copy _1")
}
