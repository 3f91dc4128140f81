package crates

import (
	"sort"

	"github.com/os-checker/charon/ids"
)

// DepGraph maps a declaration to the declarations it depends on.
type DepGraph map[AnyDeclID][]AnyDeclID

// BuildDeclarationGroups computes the strongly connected components of
// the dependency graph and returns them as declaration groups in
// dependency order: every group's out-of-group dependencies sit in an
// earlier group. Components whose members share a kind become that
// kind's group; the rest become mixed groups. Output is deterministic
// for a given graph.
func BuildDeclarationGroups(deps DepGraph) []DeclarationGroup {
	if len(deps) == 0 {
		return nil
	}

	nodes := collectNodes(deps)
	sccs := tarjanSCC(nodes, deps)

	groups := make([]DeclarationGroup, len(sccs))
	for i, scc := range sccs {
		groups[i] = groupFromSCC(scc)
	}
	return groups
}

// collectNodes gathers every node mentioned in the graph, sorted so the
// traversal order is stable.
func collectNodes(deps DepGraph) []AnyDeclID {
	set := make(map[AnyDeclID]bool, len(deps))
	for node, edges := range deps {
		set[node] = true
		for _, e := range edges {
			set[e] = true
		}
	}
	nodes := make([]AnyDeclID, 0, len(set))
	for node := range set {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return lessAnyDeclID(nodes[i], nodes[j]) })
	return nodes
}

func lessAnyDeclID(a, b AnyDeclID) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.ID < b.ID
}

// tarjanSCC finds strongly connected components. Because edges point at
// dependencies, Tarjan completes a component only after everything it
// depends on, so the emission order is already a dependency order.
func tarjanSCC(nodes []AnyDeclID, deps DepGraph) [][]AnyDeclID {
	var (
		index   = 0
		stack   []AnyDeclID
		indices = make(map[AnyDeclID]int, len(nodes))
		lowlink = make(map[AnyDeclID]int, len(nodes))
		onStack = make(map[AnyDeclID]bool, len(nodes))
		sccs    [][]AnyDeclID
	)

	var strongConnect func(AnyDeclID)
	strongConnect = func(v AnyDeclID) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		edges := append([]AnyDeclID(nil), deps[v]...)
		sort.Slice(edges, func(i, j int) bool { return lessAnyDeclID(edges[i], edges[j]) })
		for _, w := range edges {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []AnyDeclID
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, node := range nodes {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}
	return sccs
}

// groupFromSCC packs one component into a declaration group, choosing
// the kinded variant when every member agrees. Members are sorted by id
// so the group content does not depend on stack pop order.
func groupFromSCC(scc []AnyDeclID) DeclarationGroup {
	sorted := append([]AnyDeclID(nil), scc...)
	sort.Slice(sorted, func(i, j int) bool { return lessAnyDeclID(sorted[i], sorted[j]) })

	kind := sorted[0].Kind
	uniform := true
	for _, id := range sorted[1:] {
		if id.Kind != kind {
			uniform = false
			break
		}
	}
	if !uniform {
		return MixedGroup{IDs: sorted}
	}

	switch kind {
	case KindType:
		out := TypeGroup{IDs: make([]ids.TypeDeclID, len(sorted))}
		for i, id := range sorted {
			out.IDs[i] = ids.TypeDeclID(id.ID)
		}
		return out
	case KindFun:
		out := FunGroup{IDs: make([]ids.FunDeclID, len(sorted))}
		for i, id := range sorted {
			out.IDs[i] = ids.FunDeclID(id.ID)
		}
		return out
	case KindGlobal:
		out := GlobalGroup{IDs: make([]ids.GlobalDeclID, len(sorted))}
		for i, id := range sorted {
			out.IDs[i] = ids.GlobalDeclID(id.ID)
		}
		return out
	case KindTraitDecl:
		out := TraitDeclGroup{IDs: make([]ids.TraitDeclID, len(sorted))}
		for i, id := range sorted {
			out.IDs[i] = ids.TraitDeclID(id.ID)
		}
		return out
	case KindTraitImpl:
		out := TraitImplGroup{IDs: make([]ids.TraitImplID, len(sorted))}
		for i, id := range sorted {
			out.IDs[i] = ids.TraitImplID(id.ID)
		}
		return out
	default:
		return MixedGroup{IDs: sorted}
	}
}
