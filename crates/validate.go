package crates

import (
	"fmt"

	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/values"
)

// Crate validation error codes (C100-C199)
const (
	ErrGroupDanglingID  = "C101" // group lists an id missing from its map
	ErrDuplicateGroupID = "C102" // id appears in more than one group position
	ErrDanglingRef      = "C103" // record references an id missing from its map
	ErrOrderViolation   = "C104" // dependency scheduled after its dependent
)

// CrateError is one structural defect found in a crate.
type CrateError struct {
	Code    string
	Decl    string
	Message string
}

func (e CrateError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Decl, e.Message)
}

// refCollector gathers every declaration id a record mentions. It
// overrides only the five id leaves; the framework's recursion brings
// every occurrence here, bodies included.
type refCollector struct {
	ReduceBase[struct{}, []AnyDeclID]
}

func newRefCollector() *refCollector {
	c := &refCollector{}
	c.ReduceBase = NewReduceBase[struct{}, []AnyDeclID](c, values.AppendMonoid[AnyDeclID]())
	return c
}

func (c *refCollector) ReduceTypeDeclID(_ struct{}, id ids.TypeDeclID) []AnyDeclID {
	return []AnyDeclID{{Kind: KindType, ID: int(id)}}
}
func (c *refCollector) ReduceFunDeclID(_ struct{}, id ids.FunDeclID) []AnyDeclID {
	return []AnyDeclID{{Kind: KindFun, ID: int(id)}}
}
func (c *refCollector) ReduceGlobalDeclID(_ struct{}, id ids.GlobalDeclID) []AnyDeclID {
	return []AnyDeclID{{Kind: KindGlobal, ID: int(id)}}
}
func (c *refCollector) ReduceTraitDeclID(_ struct{}, id ids.TraitDeclID) []AnyDeclID {
	return []AnyDeclID{{Kind: KindTraitDecl, ID: int(id)}}
}
func (c *refCollector) ReduceTraitImplID(_ struct{}, id ids.TraitImplID) []AnyDeclID {
	return []AnyDeclID{{Kind: KindTraitImpl, ID: int(id)}}
}

// declRefs returns the ids referenced by the record behind one kinded
// id, resolved against the crate's maps.
func declRefs[B any](c *GCrate[B], id AnyDeclID) []AnyDeclID {
	col := newRefCollector()
	env := struct{}{}
	switch id.Kind {
	case KindType:
		if d, ok := c.TypeDecls[ids.TypeDeclID(id.ID)]; ok {
			return col.ReduceTypeDecl(env, d)
		}
	case KindFun:
		if d, ok := c.FunDecls[ids.FunDeclID(id.ID)]; ok {
			return col.ReduceFunDecl(env, funDeclView(d))
		}
	case KindGlobal:
		if d, ok := c.GlobalDecls[ids.GlobalDeclID(id.ID)]; ok {
			return col.ReduceGlobalDecl(env, globalDeclView(d))
		}
	case KindTraitDecl:
		if d, ok := c.TraitDecls[ids.TraitDeclID(id.ID)]; ok {
			return col.ReduceTraitDecl(env, d)
		}
	case KindTraitImpl:
		if d, ok := c.TraitImpls[ids.TraitImplID(id.ID)]; ok {
			return col.ReduceTraitImpl(env, d)
		}
	}
	return nil
}

// hasDecl reports whether the crate's matching map has a record for id.
func hasDecl[B any](c *GCrate[B], id AnyDeclID) bool {
	switch id.Kind {
	case KindType:
		_, ok := c.TypeDecls[ids.TypeDeclID(id.ID)]
		return ok
	case KindFun:
		_, ok := c.FunDecls[ids.FunDeclID(id.ID)]
		return ok
	case KindGlobal:
		_, ok := c.GlobalDecls[ids.GlobalDeclID(id.ID)]
		return ok
	case KindTraitDecl:
		_, ok := c.TraitDecls[ids.TraitDeclID(id.ID)]
		return ok
	case KindTraitImpl:
		_, ok := c.TraitImpls[ids.TraitImplID(id.ID)]
		return ok
	default:
		return false
	}
}

// CheckCrate verifies a crate's structural invariants: every id a group
// lists resolves in its map, no id is scheduled twice, every id a
// record references resolves, and references never point at a later
// group. Returns all defects found, in Declarations order.
func CheckCrate[B any](c *GCrate[B]) []CrateError {
	if c == nil {
		return nil
	}
	var errs []CrateError

	// Group position of every scheduled id, first occurrence wins.
	position := make(map[AnyDeclID]int)
	for gi, g := range c.Declarations {
		for _, id := range GroupAnyIDs(g) {
			if prev, dup := position[id]; dup {
				errs = append(errs, CrateError{
					Code:    ErrDuplicateGroupID,
					Decl:    id.String(),
					Message: fmt.Sprintf("already scheduled in group %d, seen again in group %d", prev, gi),
				})
				continue
			}
			position[id] = gi
			if !hasDecl(c, id) {
				errs = append(errs, CrateError{
					Code:    ErrGroupDanglingID,
					Decl:    id.String(),
					Message: fmt.Sprintf("group %d lists an id with no declaration record", gi),
				})
			}
		}
	}

	// Every reference resolves and respects the group order.
	for gi, g := range c.Declarations {
		for _, id := range GroupAnyIDs(g) {
			for _, ref := range declRefs(c, id) {
				if !hasDecl(c, ref) {
					errs = append(errs, CrateError{
						Code:    ErrDanglingRef,
						Decl:    id.String(),
						Message: fmt.Sprintf("references %s, which has no declaration record", ref),
					})
					continue
				}
				refPos, scheduled := position[ref]
				if !scheduled || refPos > gi {
					errs = append(errs, CrateError{
						Code:    ErrOrderViolation,
						Decl:    id.String(),
						Message: fmt.Sprintf("depends on %s, which is not scheduled at or before group %d", ref, gi),
					})
				}
			}
		}
	}
	return errs
}
