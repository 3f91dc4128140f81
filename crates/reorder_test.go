package crates

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/os-checker/charon/ids"
)

func fun(id int) AnyDeclID    { return AnyDeclID{Kind: KindFun, ID: id} }
func global(id int) AnyDeclID { return AnyDeclID{Kind: KindGlobal, ID: id} }

func TestBuildDeclarationGroupsEmpty(t *testing.T) {
	assert.Nil(t, BuildDeclarationGroups(nil))
	assert.Nil(t, BuildDeclarationGroups(DepGraph{}))
}

func TestRecursiveTrioGroupsBeforeDependent(t *testing.T) {
	// Functions 0, 1, 2 are mutually recursive; function 3 calls into
	// the cycle. The trio must form one group placed before 3's.
	deps := DepGraph{
		fun(0): {fun(1)},
		fun(1): {fun(2)},
		fun(2): {fun(0)},
		fun(3): {fun(0)},
	}

	groups := BuildDeclarationGroups(deps)
	require.Len(t, groups, 2)
	assert.Equal(t, FunGroup{IDs: []ids.FunDeclID{0, 1, 2}}, groups[0])
	assert.Equal(t, FunGroup{IDs: []ids.FunDeclID{3}}, groups[1])
}

func TestMixedCycleBecomesMixedGroup(t *testing.T) {
	// A global whose initializer calls a function that reads the global.
	deps := DepGraph{
		global(0): {fun(0)},
		fun(0):    {global(0)},
		fun(1):    {global(0)},
	}

	groups := BuildDeclarationGroups(deps)
	require.Len(t, groups, 2)
	assert.Equal(t, MixedGroup{IDs: []AnyDeclID{fun(0), global(0)}}, groups[0])
	assert.Equal(t, FunGroup{IDs: []ids.FunDeclID{1}}, groups[1])
}

func TestGroupOrderIsDeterministic(t *testing.T) {
	deps := DepGraph{
		fun(2): {fun(0), fun(1)},
		fun(1): {fun(0)},
		fun(0): nil,
	}

	first := BuildDeclarationGroups(deps)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildDeclarationGroups(deps))
	}
	require.Len(t, first, 3)
	assert.Equal(t, FunGroup{IDs: []ids.FunDeclID{0}}, first[0])
	assert.Equal(t, FunGroup{IDs: []ids.FunDeclID{1}}, first[1])
	assert.Equal(t, FunGroup{IDs: []ids.FunDeclID{2}}, first[2])
}

// The yaml fixtures describe dependency graphs and the groups they must
// produce, keeping the cases declarative.

type yamlDeclID struct {
	Kind string `yaml:"kind"`
	ID   int    `yaml:"id"`
}

type yamlEdge struct {
	From yamlDeclID   `yaml:"from"`
	To   []yamlDeclID `yaml:"to"`
}

type yamlGroup struct {
	Kind string       `yaml:"kind"`
	IDs  []yamlDeclID `yaml:"ids"`
}

type yamlCase struct {
	Name   string      `yaml:"name"`
	Deps   []yamlEdge  `yaml:"deps"`
	Groups []yamlGroup `yaml:"groups"`
}

var yamlKinds = map[string]DeclKind{
	"type":       KindType,
	"fun":        KindFun,
	"global":     KindGlobal,
	"trait_decl": KindTraitDecl,
	"trait_impl": KindTraitImpl,
}

func (y yamlDeclID) decl(t *testing.T) AnyDeclID {
	t.Helper()
	kind, ok := yamlKinds[y.Kind]
	require.True(t, ok, "unknown kind %q", y.Kind)
	return AnyDeclID{Kind: kind, ID: y.ID}
}

func (y yamlGroup) group(t *testing.T) DeclarationGroup {
	t.Helper()
	members := make([]AnyDeclID, len(y.IDs))
	for i, id := range y.IDs {
		members[i] = id.decl(t)
	}
	if y.Kind == "mixed" {
		return MixedGroup{IDs: members}
	}
	kind, ok := yamlKinds[y.Kind]
	require.True(t, ok, "unknown kind %q", y.Kind)
	switch kind {
	case KindType:
		out := TypeGroup{}
		for _, m := range members {
			out.IDs = append(out.IDs, ids.TypeDeclID(m.ID))
		}
		return out
	case KindFun:
		out := FunGroup{}
		for _, m := range members {
			out.IDs = append(out.IDs, ids.FunDeclID(m.ID))
		}
		return out
	case KindGlobal:
		out := GlobalGroup{}
		for _, m := range members {
			out.IDs = append(out.IDs, ids.GlobalDeclID(m.ID))
		}
		return out
	case KindTraitDecl:
		out := TraitDeclGroup{}
		for _, m := range members {
			out.IDs = append(out.IDs, ids.TraitDeclID(m.ID))
		}
		return out
	default:
		out := TraitImplGroup{}
		for _, m := range members {
			out.IDs = append(out.IDs, ids.TraitImplID(m.ID))
		}
		return out
	}
}

func TestBuildDeclarationGroupsFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/reorder.yaml")
	require.NoError(t, err)

	var cases []yamlCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			deps := DepGraph{}
			for _, e := range tc.Deps {
				from := e.From.decl(t)
				for _, to := range e.To {
					deps[from] = append(deps[from], to.decl(t))
				}
				if _, ok := deps[from]; !ok {
					deps[from] = nil
				}
			}

			want := make([]DeclarationGroup, len(tc.Groups))
			for i, g := range tc.Groups {
				want[i] = g.group(t)
			}
			assert.Equal(t, want, BuildDeclarationGroups(deps))
		})
	}
}
