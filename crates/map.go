package crates

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/types"
)

// Map extends the statement-layer structure-preserving transformation
// with the crate-layer node kinds.
type Map[E any] interface {
	statements.Map[E]

	MapTraitMethod(env E, m TraitMethod) TraitMethod
	MapTraitDecl(env E, d *TraitDecl) *TraitDecl
	MapTraitImpl(env E, d *TraitImpl) *TraitImpl
	MapFunDecl(env E, d *FunDecl) *FunDecl
	MapGlobalDecl(env E, d *GlobalDecl) *GlobalDecl
	MapDeclarationGroup(env E, g DeclarationGroup) DeclarationGroup
	MapAnyDeclID(env E, id AnyDeclID) AnyDeclID
	MapCrate(env E, c *Crate) *Crate

	// Opaque leaves introduced at this layer.
	MapTraitDeclID(env E, id ids.TraitDeclID) ids.TraitDeclID
	MapTraitImplID(env E, id ids.TraitImplID) ids.TraitImplID
	MapDeclKind(env E, k DeclKind) DeclKind
}

// MapBase extends statements.MapBase with crate-layer defaults.
type MapBase[E any] struct {
	statements.MapBase[E]
	Self Map[E]
}

// NewMapBase wires self through the whole ancestor chain.
func NewMapBase[E any](self Map[E]) MapBase[E] {
	return MapBase[E]{
		MapBase: statements.NewMapBase[E](self),
		Self:    self,
	}
}

func (b *MapBase[E]) self() Map[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapBase[E]) MapTraitMethod(env E, m TraitMethod) TraitMethod {
	return RebuildTraitMethod(b.self(), env, m)
}
func (b *MapBase[E]) MapTraitDecl(env E, d *TraitDecl) *TraitDecl {
	return RebuildTraitDecl(b.self(), env, d)
}
func (b *MapBase[E]) MapTraitImpl(env E, d *TraitImpl) *TraitImpl {
	return RebuildTraitImpl(b.self(), env, d)
}
func (b *MapBase[E]) MapFunDecl(env E, d *FunDecl) *FunDecl {
	return RebuildFunDecl(b.self(), env, d)
}
func (b *MapBase[E]) MapGlobalDecl(env E, d *GlobalDecl) *GlobalDecl {
	return RebuildGlobalDecl(b.self(), env, d)
}
func (b *MapBase[E]) MapDeclarationGroup(env E, g DeclarationGroup) DeclarationGroup {
	return RebuildDeclarationGroup(b.self(), env, g)
}
func (b *MapBase[E]) MapAnyDeclID(env E, id AnyDeclID) AnyDeclID {
	return RebuildAnyDeclID(b.self(), env, id)
}
func (b *MapBase[E]) MapCrate(env E, c *Crate) *Crate { return RebuildCrate(b.self(), env, c) }

// Leaf defaults: identity.
func (b *MapBase[E]) MapTraitDeclID(_ E, id ids.TraitDeclID) ids.TraitDeclID { return id }
func (b *MapBase[E]) MapTraitImplID(_ E, id ids.TraitImplID) ids.TraitImplID { return id }
func (b *MapBase[E]) MapDeclKind(_ E, k DeclKind) DeclKind                   { return k }

// RebuildTraitMethod maps the method's fields in declaration order.
func RebuildTraitMethod[E any](v Map[E], env E, m TraitMethod) TraitMethod {
	return TraitMethod{
		Name:  v.MapStr(env, m.Name),
		FunID: v.MapFunDeclID(env, m.FunID),
	}
}

// RebuildTraitDecl maps the trait's fields, returning a new record.
func RebuildTraitDecl[E any](v Map[E], env E, d *TraitDecl) *TraitDecl {
	if d == nil {
		return nil
	}
	out := &TraitDecl{
		ID:       v.MapTraitDeclID(env, d.ID),
		Name:     v.MapStr(env, d.Name),
		Generics: v.MapGenericParams(env, d.Generics),
	}
	if d.Methods != nil {
		out.Methods = make([]TraitMethod, len(d.Methods))
		for i, m := range d.Methods {
			out.Methods[i] = v.MapTraitMethod(env, m)
		}
	}
	return out
}

// RebuildTraitImpl maps the impl's fields, returning a new record.
func RebuildTraitImpl[E any](v Map[E], env E, d *TraitImpl) *TraitImpl {
	if d == nil {
		return nil
	}
	out := &TraitImpl{
		ID:      v.MapTraitImplID(env, d.ID),
		Name:    v.MapStr(env, d.Name),
		TraitID: v.MapTraitDeclID(env, d.TraitID),
	}
	if d.Methods != nil {
		out.Methods = make([]TraitMethod, len(d.Methods))
		for i, m := range d.Methods {
			out.Methods[i] = v.MapTraitMethod(env, m)
		}
	}
	return out
}

// RebuildFunDecl maps the function's fields, returning a new record.
func RebuildFunDecl[E any](v Map[E], env E, d *FunDecl) *FunDecl {
	if d == nil {
		return nil
	}
	return &FunDecl{
		ID:   v.MapFunDeclID(env, d.ID),
		Name: v.MapStr(env, d.Name),
		Sig:  v.MapFunSig(env, d.Sig),
		Body: v.MapExprBody(env, d.Body),
	}
}

// RebuildGlobalDecl maps the global's fields, returning a new record.
func RebuildGlobalDecl[E any](v Map[E], env E, d *GlobalDecl) *GlobalDecl {
	if d == nil {
		return nil
	}
	return &GlobalDecl{
		ID:   v.MapGlobalDeclID(env, d.ID),
		Name: v.MapStr(env, d.Name),
		Ty:   v.MapTy(env, d.Ty),
		Body: v.MapExprBody(env, d.Body),
	}
}

// RebuildDeclarationGroup maps each member id under the group's variant.
func RebuildDeclarationGroup[E any](v Map[E], env E, g DeclarationGroup) DeclarationGroup {
	switch gr := g.(type) {
	case TypeGroup:
		out := TypeGroup{IDs: make([]ids.TypeDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i] = v.MapTypeDeclID(env, id)
		}
		return out
	case FunGroup:
		out := FunGroup{IDs: make([]ids.FunDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i] = v.MapFunDeclID(env, id)
		}
		return out
	case GlobalGroup:
		out := GlobalGroup{IDs: make([]ids.GlobalDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i] = v.MapGlobalDeclID(env, id)
		}
		return out
	case TraitDeclGroup:
		out := TraitDeclGroup{IDs: make([]ids.TraitDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i] = v.MapTraitDeclID(env, id)
		}
		return out
	case TraitImplGroup:
		out := TraitImplGroup{IDs: make([]ids.TraitImplID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i] = v.MapTraitImplID(env, id)
		}
		return out
	case MixedGroup:
		out := MixedGroup{IDs: make([]AnyDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i] = v.MapAnyDeclID(env, id)
		}
		return out
	default:
		return g
	}
}

// RebuildAnyDeclID maps the kind tag then the id through its per-kind
// leaf.
func RebuildAnyDeclID[E any](v Map[E], env E, id AnyDeclID) AnyDeclID {
	out := AnyDeclID{Kind: v.MapDeclKind(env, id.Kind)}
	switch id.Kind {
	case KindType:
		out.ID = int(v.MapTypeDeclID(env, ids.TypeDeclID(id.ID)))
	case KindFun:
		out.ID = int(v.MapFunDeclID(env, ids.FunDeclID(id.ID)))
	case KindGlobal:
		out.ID = int(v.MapGlobalDeclID(env, ids.GlobalDeclID(id.ID)))
	case KindTraitDecl:
		out.ID = int(v.MapTraitDeclID(env, ids.TraitDeclID(id.ID)))
	case KindTraitImpl:
		out.ID = int(v.MapTraitImplID(env, ids.TraitImplID(id.ID)))
	default:
		out.ID = id.ID
	}
	return out
}

// RebuildCrate maps the name, groups, and every record, returning a new
// crate. Rebuilt maps are keyed by the mapped records' own ids.
func RebuildCrate[E any](v Map[E], env E, c *Crate) *Crate {
	if c == nil {
		return nil
	}
	out := &Crate{
		Name:        v.MapStr(env, c.Name),
		TypeDecls:   make(map[ids.TypeDeclID]*types.TypeDecl, len(c.TypeDecls)),
		FunDecls:    make(map[ids.FunDeclID]*FunDecl, len(c.FunDecls)),
		GlobalDecls: make(map[ids.GlobalDeclID]*GlobalDecl, len(c.GlobalDecls)),
		TraitDecls:  make(map[ids.TraitDeclID]*TraitDecl, len(c.TraitDecls)),
		TraitImpls:  make(map[ids.TraitImplID]*TraitImpl, len(c.TraitImpls)),
	}
	if c.Declarations != nil {
		out.Declarations = make([]DeclarationGroup, len(c.Declarations))
		for i, g := range c.Declarations {
			out.Declarations[i] = v.MapDeclarationGroup(env, g)
		}
	}
	for _, d := range c.TypeDecls {
		mapped := v.MapTypeDecl(env, d)
		out.TypeDecls[mapped.ID] = mapped
	}
	for _, d := range c.FunDecls {
		mapped := v.MapFunDecl(env, d)
		out.FunDecls[mapped.ID] = mapped
	}
	for _, d := range c.GlobalDecls {
		mapped := v.MapGlobalDecl(env, d)
		out.GlobalDecls[mapped.ID] = mapped
	}
	for _, d := range c.TraitDecls {
		mapped := v.MapTraitDecl(env, d)
		out.TraitDecls[mapped.ID] = mapped
	}
	for _, d := range c.TraitImpls {
		mapped := v.MapTraitImpl(env, d)
		out.TraitImpls[mapped.ID] = mapped
	}
	return out
}
