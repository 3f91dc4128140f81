package crates

import (
	"fmt"

	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/types"
)

// DeclKind tags the five declaration kinds a crate can hold.
type DeclKind int

const (
	KindType DeclKind = iota
	KindFun
	KindGlobal
	KindTraitDecl
	KindTraitImpl
)

var declKindNames = [...]string{
	KindType:      "Type",
	KindFun:       "Fun",
	KindGlobal:    "Global",
	KindTraitDecl: "TraitDecl",
	KindTraitImpl: "TraitImpl",
}

func (k DeclKind) String() string {
	if k < 0 || int(k) >= len(declKindNames) {
		return fmt.Sprintf("DeclKind(%d)", int(k))
	}
	return declKindNames[k]
}

// AnyDeclID is a declaration id paired with its kind, for contexts that
// span kinds (mixed groups, dependency graphs).
type AnyDeclID struct {
	Kind DeclKind
	ID   int
}

func (a AnyDeclID) String() string {
	return fmt.Sprintf("%s@%d", a.Kind, a.ID)
}

// DeclarationGroup is one strongly connected component of the crate's
// declarations, in dependency order. Sealed. The first five variants hold
// same-kind ids; MixedGroup holds a component that spans kinds.
type DeclarationGroup interface {
	declarationGroup()
	VariantName() string
}

// TypeGroup is a component of type declarations.
type TypeGroup struct {
	IDs []ids.TypeDeclID
}

// FunGroup is a component of function declarations.
type FunGroup struct {
	IDs []ids.FunDeclID
}

// GlobalGroup is a component of global declarations.
type GlobalGroup struct {
	IDs []ids.GlobalDeclID
}

// TraitDeclGroup is a component of trait declarations.
type TraitDeclGroup struct {
	IDs []ids.TraitDeclID
}

// TraitImplGroup is a component of trait implementations.
type TraitImplGroup struct {
	IDs []ids.TraitImplID
}

// MixedGroup is a component whose declarations span kinds.
type MixedGroup struct {
	IDs []AnyDeclID
}

func (TypeGroup) declarationGroup()      {}
func (FunGroup) declarationGroup()       {}
func (GlobalGroup) declarationGroup()    {}
func (TraitDeclGroup) declarationGroup() {}
func (TraitImplGroup) declarationGroup() {}
func (MixedGroup) declarationGroup()     {}

func (TypeGroup) VariantName() string      { return "Type" }
func (FunGroup) VariantName() string       { return "Fun" }
func (GlobalGroup) VariantName() string    { return "Global" }
func (TraitDeclGroup) VariantName() string { return "TraitDecl" }
func (TraitImplGroup) VariantName() string { return "TraitImpl" }
func (MixedGroup) VariantName() string     { return "Mixed" }

// GroupAnyIDs flattens a group into kinded ids, preserving order.
func GroupAnyIDs(g DeclarationGroup) []AnyDeclID {
	switch gr := g.(type) {
	case TypeGroup:
		out := make([]AnyDeclID, len(gr.IDs))
		for i, id := range gr.IDs {
			out[i] = AnyDeclID{Kind: KindType, ID: int(id)}
		}
		return out
	case FunGroup:
		out := make([]AnyDeclID, len(gr.IDs))
		for i, id := range gr.IDs {
			out[i] = AnyDeclID{Kind: KindFun, ID: int(id)}
		}
		return out
	case GlobalGroup:
		out := make([]AnyDeclID, len(gr.IDs))
		for i, id := range gr.IDs {
			out[i] = AnyDeclID{Kind: KindGlobal, ID: int(id)}
		}
		return out
	case TraitDeclGroup:
		out := make([]AnyDeclID, len(gr.IDs))
		for i, id := range gr.IDs {
			out[i] = AnyDeclID{Kind: KindTraitDecl, ID: int(id)}
		}
		return out
	case TraitImplGroup:
		out := make([]AnyDeclID, len(gr.IDs))
		for i, id := range gr.IDs {
			out[i] = AnyDeclID{Kind: KindTraitImpl, ID: int(id)}
		}
		return out
	case MixedGroup:
		out := make([]AnyDeclID, len(gr.IDs))
		copy(out, gr.IDs)
		return out
	default:
		return nil
	}
}

// TraitMethod binds a method name to the function that provides it.
type TraitMethod struct {
	Name  string
	FunID ids.FunDeclID
}

// TraitDecl is a trait declaration.
type TraitDecl struct {
	ID       ids.TraitDeclID
	Name     string
	Generics types.GenericParams
	Methods  []TraitMethod
}

// TraitImpl is an implementation of a trait.
type TraitImpl struct {
	ID      ids.TraitImplID
	Name    string
	TraitID ids.TraitDeclID
	Methods []TraitMethod
}

// GFunDecl is a function declaration, generic in the body type so one
// record shape serves both the full pass and the signature-only pass.
type GFunDecl[B any] struct {
	ID   ids.FunDeclID
	Name string
	Sig  statements.FunSig
	Body B
}

// GGlobalDecl is a global declaration with an initializer body.
type GGlobalDecl[B any] struct {
	ID   ids.GlobalDeclID
	Name string
	Ty   types.Ty
	Body B
}

// GCrate is the crate container. Declarations is the authoritative
// dependency order; the maps resolve ids to records.
type GCrate[B any] struct {
	Name         string
	Declarations []DeclarationGroup

	TypeDecls   map[ids.TypeDeclID]*types.TypeDecl
	FunDecls    map[ids.FunDeclID]*GFunDecl[B]
	GlobalDecls map[ids.GlobalDeclID]*GGlobalDecl[B]
	TraitDecls  map[ids.TraitDeclID]*TraitDecl
	TraitImpls  map[ids.TraitImplID]*TraitImpl
}

// Full-pass records carry structured bodies.
type (
	FunDecl    = GFunDecl[*statements.ExprBody]
	GlobalDecl = GGlobalDecl[*statements.ExprBody]
	Crate      = GCrate[*statements.ExprBody]
)

// Skeleton records carry no bodies.
type (
	FunDeclSkeleton    = GFunDecl[struct{}]
	GlobalDeclSkeleton = GGlobalDecl[struct{}]
	CrateSkeleton      = GCrate[struct{}]
)

// NewCrate returns an empty crate with allocated maps.
func NewCrate(name string) *Crate {
	return &Crate{
		Name:        name,
		TypeDecls:   map[ids.TypeDeclID]*types.TypeDecl{},
		FunDecls:    map[ids.FunDeclID]*FunDecl{},
		GlobalDecls: map[ids.GlobalDeclID]*GlobalDecl{},
		TraitDecls:  map[ids.TraitDeclID]*TraitDecl{},
		TraitImpls:  map[ids.TraitImplID]*TraitImpl{},
	}
}

// Skeleton erases every body, keeping names, signatures and groups.
func (c *GCrate[B]) Skeleton() *CrateSkeleton {
	if c == nil {
		return nil
	}
	out := &CrateSkeleton{
		Name:         c.Name,
		Declarations: c.Declarations,
		TypeDecls:    c.TypeDecls,
		TraitDecls:   c.TraitDecls,
		TraitImpls:   c.TraitImpls,
		FunDecls:     make(map[ids.FunDeclID]*FunDeclSkeleton, len(c.FunDecls)),
		GlobalDecls:  make(map[ids.GlobalDeclID]*GlobalDeclSkeleton, len(c.GlobalDecls)),
	}
	for id, d := range c.FunDecls {
		out.FunDecls[id] = &FunDeclSkeleton{ID: d.ID, Name: d.Name, Sig: d.Sig}
	}
	for id, d := range c.GlobalDecls {
		out.GlobalDecls[id] = &GlobalDeclSkeleton{ID: d.ID, Name: d.Name, Ty: d.Ty}
	}
	return out
}

// bodyExpr extracts the structured body when the crate carries one.
func bodyExpr[B any](b B) *statements.ExprBody {
	if body, ok := any(b).(*statements.ExprBody); ok {
		return body
	}
	return nil
}

// funDeclView presents any-body function records in full-record shape,
// with a nil body when there is none.
func funDeclView[B any](d *GFunDecl[B]) *FunDecl {
	if d == nil {
		return nil
	}
	return &FunDecl{ID: d.ID, Name: d.Name, Sig: d.Sig, Body: bodyExpr(d.Body)}
}

// globalDeclView presents any-body global records in full-record shape.
func globalDeclView[B any](d *GGlobalDecl[B]) *GlobalDecl {
	if d == nil {
		return nil
	}
	return &GlobalDecl{ID: d.ID, Name: d.Name, Ty: d.Ty, Body: bodyExpr(d.Body)}
}
