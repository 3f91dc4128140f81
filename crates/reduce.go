package crates

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/values"
)

// Reduce extends the statement-layer accumulating traversal with the
// crate-layer node kinds.
type Reduce[E, A any] interface {
	statements.Reduce[E, A]

	ReduceTraitMethod(env E, m TraitMethod) A
	ReduceTraitDecl(env E, d *TraitDecl) A
	ReduceTraitImpl(env E, d *TraitImpl) A
	ReduceFunDecl(env E, d *FunDecl) A
	ReduceGlobalDecl(env E, d *GlobalDecl) A
	ReduceDeclarationGroup(env E, g DeclarationGroup) A
	ReduceAnyDeclID(env E, id AnyDeclID) A
	ReduceCrate(env E, c *Crate) A

	// Opaque leaves introduced at this layer.
	ReduceTraitDeclID(env E, id ids.TraitDeclID) A
	ReduceTraitImplID(env E, id ids.TraitImplID) A
	ReduceDeclKind(env E, k DeclKind) A
}

// ReduceBase extends statements.ReduceBase with crate-layer folding
// defaults.
type ReduceBase[E, A any] struct {
	statements.ReduceBase[E, A]
	Self Reduce[E, A]
}

// NewReduceBase wires self and the monoid through the ancestor chain.
func NewReduceBase[E, A any](self Reduce[E, A], m values.Monoid[A]) ReduceBase[E, A] {
	return ReduceBase[E, A]{
		ReduceBase: statements.NewReduceBase[E, A](self, m),
		Self:       self,
	}
}

func (b *ReduceBase[E, A]) self() Reduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *ReduceBase[E, A]) ReduceTraitMethod(env E, m TraitMethod) A {
	return FoldTraitMethod(b.self(), env, m)
}
func (b *ReduceBase[E, A]) ReduceTraitDecl(env E, d *TraitDecl) A {
	return FoldTraitDecl(b.self(), env, d)
}
func (b *ReduceBase[E, A]) ReduceTraitImpl(env E, d *TraitImpl) A {
	return FoldTraitImpl(b.self(), env, d)
}
func (b *ReduceBase[E, A]) ReduceFunDecl(env E, d *FunDecl) A {
	return FoldFunDecl(b.self(), env, d)
}
func (b *ReduceBase[E, A]) ReduceGlobalDecl(env E, d *GlobalDecl) A {
	return FoldGlobalDecl(b.self(), env, d)
}
func (b *ReduceBase[E, A]) ReduceDeclarationGroup(env E, g DeclarationGroup) A {
	return FoldDeclarationGroup(b.self(), env, g)
}
func (b *ReduceBase[E, A]) ReduceAnyDeclID(env E, id AnyDeclID) A {
	return FoldAnyDeclID(b.self(), env, id)
}
func (b *ReduceBase[E, A]) ReduceCrate(env E, c *Crate) A { return FoldCrate(b.self(), env, c) }

// Leaf defaults: the neutral element.
func (b *ReduceBase[E, A]) ReduceTraitDeclID(E, ids.TraitDeclID) A { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceTraitImplID(E, ids.TraitImplID) A { return b.M.Zero() }
func (b *ReduceBase[E, A]) ReduceDeclKind(E, DeclKind) A           { return b.M.Zero() }

// FoldTraitMethod folds the method's fields in declaration order.
func FoldTraitMethod[E, A any](v Reduce[E, A], env E, m TraitMethod) A {
	mo := v.Monoid()
	return mo.Plus(v.ReduceStr(env, m.Name), v.ReduceFunDeclID(env, m.FunID))
}

// FoldTraitDecl folds the trait's fields in declaration order.
func FoldTraitDecl[E, A any](v Reduce[E, A], env E, d *TraitDecl) A {
	m := v.Monoid()
	if d == nil {
		return m.Zero()
	}
	acc := v.ReduceTraitDeclID(env, d.ID)
	acc = m.Plus(acc, v.ReduceStr(env, d.Name))
	acc = m.Plus(acc, v.ReduceGenericParams(env, d.Generics))
	for _, method := range d.Methods {
		acc = m.Plus(acc, v.ReduceTraitMethod(env, method))
	}
	return acc
}

// FoldTraitImpl folds the impl's fields in declaration order.
func FoldTraitImpl[E, A any](v Reduce[E, A], env E, d *TraitImpl) A {
	m := v.Monoid()
	if d == nil {
		return m.Zero()
	}
	acc := v.ReduceTraitImplID(env, d.ID)
	acc = m.Plus(acc, v.ReduceStr(env, d.Name))
	acc = m.Plus(acc, v.ReduceTraitDeclID(env, d.TraitID))
	for _, method := range d.Methods {
		acc = m.Plus(acc, v.ReduceTraitMethod(env, method))
	}
	return acc
}

// FoldFunDecl folds the function's fields in declaration order.
func FoldFunDecl[E, A any](v Reduce[E, A], env E, d *FunDecl) A {
	m := v.Monoid()
	if d == nil {
		return m.Zero()
	}
	acc := v.ReduceFunDeclID(env, d.ID)
	acc = m.Plus(acc, v.ReduceStr(env, d.Name))
	acc = m.Plus(acc, v.ReduceFunSig(env, d.Sig))
	return m.Plus(acc, v.ReduceExprBody(env, d.Body))
}

// FoldGlobalDecl folds the global's fields in declaration order.
func FoldGlobalDecl[E, A any](v Reduce[E, A], env E, d *GlobalDecl) A {
	m := v.Monoid()
	if d == nil {
		return m.Zero()
	}
	acc := v.ReduceGlobalDeclID(env, d.ID)
	acc = m.Plus(acc, v.ReduceStr(env, d.Name))
	acc = m.Plus(acc, v.ReduceTy(env, d.Ty))
	return m.Plus(acc, v.ReduceExprBody(env, d.Body))
}

// FoldDeclarationGroup folds each member id in group order.
func FoldDeclarationGroup[E, A any](v Reduce[E, A], env E, g DeclarationGroup) A {
	m := v.Monoid()
	acc := m.Zero()
	switch gr := g.(type) {
	case TypeGroup:
		for _, id := range gr.IDs {
			acc = m.Plus(acc, v.ReduceTypeDeclID(env, id))
		}
	case FunGroup:
		for _, id := range gr.IDs {
			acc = m.Plus(acc, v.ReduceFunDeclID(env, id))
		}
	case GlobalGroup:
		for _, id := range gr.IDs {
			acc = m.Plus(acc, v.ReduceGlobalDeclID(env, id))
		}
	case TraitDeclGroup:
		for _, id := range gr.IDs {
			acc = m.Plus(acc, v.ReduceTraitDeclID(env, id))
		}
	case TraitImplGroup:
		for _, id := range gr.IDs {
			acc = m.Plus(acc, v.ReduceTraitImplID(env, id))
		}
	case MixedGroup:
		for _, id := range gr.IDs {
			acc = m.Plus(acc, v.ReduceAnyDeclID(env, id))
		}
	}
	return acc
}

// FoldAnyDeclID folds the kind tag then the per-kind id leaf.
func FoldAnyDeclID[E, A any](v Reduce[E, A], env E, id AnyDeclID) A {
	m := v.Monoid()
	acc := v.ReduceDeclKind(env, id.Kind)
	switch id.Kind {
	case KindType:
		return m.Plus(acc, v.ReduceTypeDeclID(env, ids.TypeDeclID(id.ID)))
	case KindFun:
		return m.Plus(acc, v.ReduceFunDeclID(env, ids.FunDeclID(id.ID)))
	case KindGlobal:
		return m.Plus(acc, v.ReduceGlobalDeclID(env, ids.GlobalDeclID(id.ID)))
	case KindTraitDecl:
		return m.Plus(acc, v.ReduceTraitDeclID(env, ids.TraitDeclID(id.ID)))
	case KindTraitImpl:
		return m.Plus(acc, v.ReduceTraitImplID(env, ids.TraitImplID(id.ID)))
	default:
		return acc
	}
}

// FoldCrate folds the name, then each group followed by its resolved
// records, in Declarations order. Map iteration order is never used.
func FoldCrate[E, A any](v Reduce[E, A], env E, c *Crate) A {
	m := v.Monoid()
	if c == nil {
		return m.Zero()
	}
	acc := v.ReduceStr(env, c.Name)
	for _, g := range c.Declarations {
		acc = m.Plus(acc, v.ReduceDeclarationGroup(env, g))
		for _, id := range GroupAnyIDs(g) {
			switch id.Kind {
			case KindType:
				if d, ok := c.TypeDecls[ids.TypeDeclID(id.ID)]; ok {
					acc = m.Plus(acc, v.ReduceTypeDecl(env, d))
				}
			case KindFun:
				if d, ok := c.FunDecls[ids.FunDeclID(id.ID)]; ok {
					acc = m.Plus(acc, v.ReduceFunDecl(env, d))
				}
			case KindGlobal:
				if d, ok := c.GlobalDecls[ids.GlobalDeclID(id.ID)]; ok {
					acc = m.Plus(acc, v.ReduceGlobalDecl(env, d))
				}
			case KindTraitDecl:
				if d, ok := c.TraitDecls[ids.TraitDeclID(id.ID)]; ok {
					acc = m.Plus(acc, v.ReduceTraitDecl(env, d))
				}
			case KindTraitImpl:
				if d, ok := c.TraitImpls[ids.TraitImplID(id.ID)]; ok {
					acc = m.Plus(acc, v.ReduceTraitImpl(env, d))
				}
			}
		}
	}
	return acc
}
