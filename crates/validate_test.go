package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
)

func statementSelfCall() statements.Statement {
	return statements.SCall{Call: statements.Call{
		Func: expressions.FnPtr{Func: expressions.FRegular{ID: 0}},
		Dest: retPlace(),
	}}
}

func errCodes(errs []CrateError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestCheckCrateAcceptsWellFormed(t *testing.T) {
	assert.Empty(t, CheckCrate(testCrate()))
	assert.Empty(t, CheckCrate(testCrate().Skeleton()))
	assert.Empty(t, CheckCrate[struct{}](nil))
}

func TestCheckCrateGroupDanglingID(t *testing.T) {
	c := testCrate()
	delete(c.TypeDecls, 0)

	errs := CheckCrate(c)
	require.NotEmpty(t, errs)
	assert.Contains(t, errCodes(errs), ErrGroupDanglingID)
	// make_pair still references the deleted type.
	assert.Contains(t, errCodes(errs), ErrDanglingRef)
}

func TestCheckCrateDuplicateSchedule(t *testing.T) {
	c := testCrate()
	c.Declarations = append(c.Declarations, FunGroup{IDs: []ids.FunDeclID{0}})

	errs := CheckCrate(c)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateGroupID, errs[0].Code)
	assert.Equal(t, "Fun@0", errs[0].Decl)
}

func TestCheckCrateOrderViolation(t *testing.T) {
	c := testCrate()
	// Schedule the global after the function that reads it.
	c.Declarations[1], c.Declarations[2] = c.Declarations[2], c.Declarations[1]

	errs := CheckCrate(c)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrOrderViolation, errs[0].Code)
	assert.Equal(t, "Fun@0", errs[0].Decl)
}

func TestCheckCrateUnscheduledDependency(t *testing.T) {
	c := testCrate()
	// The trait stays in the map but loses its schedule slot, so the
	// impl's dependency is no longer placed.
	c.Declarations = append(c.Declarations[:4], c.Declarations[5])

	errs := CheckCrate(c)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrOrderViolation, errs[0].Code)
	assert.Equal(t, "TraitImpl@0", errs[0].Decl)
}

func TestCheckCrateSelfRecursionAllowed(t *testing.T) {
	c := testCrate()
	// A function calling itself depends on its own group, which is fine.
	body := c.FunDecls[0].Body
	body.Body.Statements = append(body.Body.Statements, statementSelfCall())

	assert.Empty(t, CheckCrate(c))
}
