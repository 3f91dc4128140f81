package crates

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
)

// Iter extends the statement-layer read-only traversal with the
// crate-layer node kinds. Crate traversal follows the Declarations order
// and resolves ids against the per-kind maps.
type Iter[E any] interface {
	statements.Iter[E]

	VisitTraitMethod(env E, m TraitMethod)
	VisitTraitDecl(env E, d *TraitDecl)
	VisitTraitImpl(env E, d *TraitImpl)
	VisitFunDecl(env E, d *FunDecl)
	VisitGlobalDecl(env E, d *GlobalDecl)
	VisitDeclarationGroup(env E, g DeclarationGroup)
	VisitAnyDeclID(env E, id AnyDeclID)
	VisitCrate(env E, c *Crate)

	// Opaque leaves introduced at this layer.
	VisitTraitDeclID(env E, id ids.TraitDeclID)
	VisitTraitImplID(env E, id ids.TraitImplID)
	VisitDeclKind(env E, k DeclKind)
}

// IterBase extends statements.IterBase with crate-layer defaults.
type IterBase[E any] struct {
	statements.IterBase[E]
	Self Iter[E]
}

// NewIterBase wires self through the whole ancestor chain.
func NewIterBase[E any](self Iter[E]) IterBase[E] {
	return IterBase[E]{
		IterBase: statements.NewIterBase[E](self),
		Self:     self,
	}
}

func (b *IterBase[E]) self() Iter[E] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *IterBase[E]) VisitTraitMethod(env E, m TraitMethod) { IterTraitMethod(b.self(), env, m) }
func (b *IterBase[E]) VisitTraitDecl(env E, d *TraitDecl)    { IterTraitDecl(b.self(), env, d) }
func (b *IterBase[E]) VisitTraitImpl(env E, d *TraitImpl)    { IterTraitImpl(b.self(), env, d) }
func (b *IterBase[E]) VisitFunDecl(env E, d *FunDecl)        { IterFunDecl(b.self(), env, d) }
func (b *IterBase[E]) VisitGlobalDecl(env E, d *GlobalDecl)  { IterGlobalDecl(b.self(), env, d) }
func (b *IterBase[E]) VisitDeclarationGroup(env E, g DeclarationGroup) {
	IterDeclarationGroup(b.self(), env, g)
}
func (b *IterBase[E]) VisitAnyDeclID(env E, id AnyDeclID) { IterAnyDeclID(b.self(), env, id) }
func (b *IterBase[E]) VisitCrate(env E, c *Crate)         { IterCrate(b.self(), env, c) }

// Leaf defaults: no action.
func (b *IterBase[E]) VisitTraitDeclID(E, ids.TraitDeclID) {}
func (b *IterBase[E]) VisitTraitImplID(E, ids.TraitImplID) {}
func (b *IterBase[E]) VisitDeclKind(E, DeclKind)           {}

// IterTraitMethod visits the method's fields in declaration order.
func IterTraitMethod[E any](v Iter[E], env E, m TraitMethod) {
	v.VisitStr(env, m.Name)
	v.VisitFunDeclID(env, m.FunID)
}

// IterTraitDecl visits the trait's fields in declaration order.
func IterTraitDecl[E any](v Iter[E], env E, d *TraitDecl) {
	if d == nil {
		return
	}
	v.VisitTraitDeclID(env, d.ID)
	v.VisitStr(env, d.Name)
	v.VisitGenericParams(env, d.Generics)
	for _, m := range d.Methods {
		v.VisitTraitMethod(env, m)
	}
}

// IterTraitImpl visits the impl's fields in declaration order.
func IterTraitImpl[E any](v Iter[E], env E, d *TraitImpl) {
	if d == nil {
		return
	}
	v.VisitTraitImplID(env, d.ID)
	v.VisitStr(env, d.Name)
	v.VisitTraitDeclID(env, d.TraitID)
	for _, m := range d.Methods {
		v.VisitTraitMethod(env, m)
	}
}

// IterFunDecl visits the function's fields in declaration order.
func IterFunDecl[E any](v Iter[E], env E, d *FunDecl) {
	if d == nil {
		return
	}
	v.VisitFunDeclID(env, d.ID)
	v.VisitStr(env, d.Name)
	v.VisitFunSig(env, d.Sig)
	v.VisitExprBody(env, d.Body)
}

// IterGlobalDecl visits the global's fields in declaration order.
func IterGlobalDecl[E any](v Iter[E], env E, d *GlobalDecl) {
	if d == nil {
		return
	}
	v.VisitGlobalDeclID(env, d.ID)
	v.VisitStr(env, d.Name)
	v.VisitTy(env, d.Ty)
	v.VisitExprBody(env, d.Body)
}

// IterDeclarationGroup visits each member id in group order.
func IterDeclarationGroup[E any](v Iter[E], env E, g DeclarationGroup) {
	switch gr := g.(type) {
	case TypeGroup:
		for _, id := range gr.IDs {
			v.VisitTypeDeclID(env, id)
		}
	case FunGroup:
		for _, id := range gr.IDs {
			v.VisitFunDeclID(env, id)
		}
	case GlobalGroup:
		for _, id := range gr.IDs {
			v.VisitGlobalDeclID(env, id)
		}
	case TraitDeclGroup:
		for _, id := range gr.IDs {
			v.VisitTraitDeclID(env, id)
		}
	case TraitImplGroup:
		for _, id := range gr.IDs {
			v.VisitTraitImplID(env, id)
		}
	case MixedGroup:
		for _, id := range gr.IDs {
			v.VisitAnyDeclID(env, id)
		}
	}
}

// IterAnyDeclID visits the kind tag then dispatches the id to its
// per-kind leaf.
func IterAnyDeclID[E any](v Iter[E], env E, id AnyDeclID) {
	v.VisitDeclKind(env, id.Kind)
	switch id.Kind {
	case KindType:
		v.VisitTypeDeclID(env, ids.TypeDeclID(id.ID))
	case KindFun:
		v.VisitFunDeclID(env, ids.FunDeclID(id.ID))
	case KindGlobal:
		v.VisitGlobalDeclID(env, ids.GlobalDeclID(id.ID))
	case KindTraitDecl:
		v.VisitTraitDeclID(env, ids.TraitDeclID(id.ID))
	case KindTraitImpl:
		v.VisitTraitImplID(env, ids.TraitImplID(id.ID))
	}
}

// IterCrate visits the name, then each group followed by the records it
// resolves to, in Declarations order. Records that no group references
// are not visited.
func IterCrate[E any](v Iter[E], env E, c *Crate) {
	if c == nil {
		return
	}
	v.VisitStr(env, c.Name)
	for _, g := range c.Declarations {
		v.VisitDeclarationGroup(env, g)
		for _, id := range GroupAnyIDs(g) {
			switch id.Kind {
			case KindType:
				if d, ok := c.TypeDecls[ids.TypeDeclID(id.ID)]; ok {
					v.VisitTypeDecl(env, d)
				}
			case KindFun:
				if d, ok := c.FunDecls[ids.FunDeclID(id.ID)]; ok {
					v.VisitFunDecl(env, d)
				}
			case KindGlobal:
				if d, ok := c.GlobalDecls[ids.GlobalDeclID(id.ID)]; ok {
					v.VisitGlobalDecl(env, d)
				}
			case KindTraitDecl:
				if d, ok := c.TraitDecls[ids.TraitDeclID(id.ID)]; ok {
					v.VisitTraitDecl(env, d)
				}
			case KindTraitImpl:
				if d, ok := c.TraitImpls[ids.TraitImplID(id.ID)]; ok {
					v.VisitTraitImpl(env, d)
				}
			}
		}
	}
}
