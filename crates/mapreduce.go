package crates

import (
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// MapReduce extends the statement-layer single-pass map+reduce with the
// crate-layer node kinds.
type MapReduce[E, A any] interface {
	statements.MapReduce[E, A]

	MapReduceTraitMethod(env E, m TraitMethod) (TraitMethod, A)
	MapReduceTraitDecl(env E, d *TraitDecl) (*TraitDecl, A)
	MapReduceTraitImpl(env E, d *TraitImpl) (*TraitImpl, A)
	MapReduceFunDecl(env E, d *FunDecl) (*FunDecl, A)
	MapReduceGlobalDecl(env E, d *GlobalDecl) (*GlobalDecl, A)
	MapReduceDeclarationGroup(env E, g DeclarationGroup) (DeclarationGroup, A)
	MapReduceAnyDeclID(env E, id AnyDeclID) (AnyDeclID, A)
	MapReduceCrate(env E, c *Crate) (*Crate, A)

	// Opaque leaves introduced at this layer.
	MapReduceTraitDeclID(env E, id ids.TraitDeclID) (ids.TraitDeclID, A)
	MapReduceTraitImplID(env E, id ids.TraitImplID) (ids.TraitImplID, A)
	MapReduceDeclKind(env E, k DeclKind) (DeclKind, A)
}

// MapReduceBase extends statements.MapReduceBase with crate-layer
// defaults.
type MapReduceBase[E, A any] struct {
	statements.MapReduceBase[E, A]
	Self MapReduce[E, A]
}

// NewMapReduceBase wires self and the monoid through the ancestor chain.
func NewMapReduceBase[E, A any](self MapReduce[E, A], m values.Monoid[A]) MapReduceBase[E, A] {
	return MapReduceBase[E, A]{
		MapReduceBase: statements.NewMapReduceBase[E, A](self, m),
		Self:          self,
	}
}

func (b *MapReduceBase[E, A]) self() MapReduce[E, A] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *MapReduceBase[E, A]) MapReduceTraitMethod(env E, m TraitMethod) (TraitMethod, A) {
	return RebuildFoldTraitMethod(b.self(), env, m)
}
func (b *MapReduceBase[E, A]) MapReduceTraitDecl(env E, d *TraitDecl) (*TraitDecl, A) {
	return RebuildFoldTraitDecl(b.self(), env, d)
}
func (b *MapReduceBase[E, A]) MapReduceTraitImpl(env E, d *TraitImpl) (*TraitImpl, A) {
	return RebuildFoldTraitImpl(b.self(), env, d)
}
func (b *MapReduceBase[E, A]) MapReduceFunDecl(env E, d *FunDecl) (*FunDecl, A) {
	return RebuildFoldFunDecl(b.self(), env, d)
}
func (b *MapReduceBase[E, A]) MapReduceGlobalDecl(env E, d *GlobalDecl) (*GlobalDecl, A) {
	return RebuildFoldGlobalDecl(b.self(), env, d)
}
func (b *MapReduceBase[E, A]) MapReduceDeclarationGroup(env E, g DeclarationGroup) (DeclarationGroup, A) {
	return RebuildFoldDeclarationGroup(b.self(), env, g)
}
func (b *MapReduceBase[E, A]) MapReduceAnyDeclID(env E, id AnyDeclID) (AnyDeclID, A) {
	return RebuildFoldAnyDeclID(b.self(), env, id)
}
func (b *MapReduceBase[E, A]) MapReduceCrate(env E, c *Crate) (*Crate, A) {
	return RebuildFoldCrate(b.self(), env, c)
}

// Leaf defaults: (input unchanged, neutral element).
func (b *MapReduceBase[E, A]) MapReduceTraitDeclID(_ E, id ids.TraitDeclID) (ids.TraitDeclID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceTraitImplID(_ E, id ids.TraitImplID) (ids.TraitImplID, A) {
	return id, b.M.Zero()
}
func (b *MapReduceBase[E, A]) MapReduceDeclKind(_ E, k DeclKind) (DeclKind, A) {
	return k, b.M.Zero()
}

// RebuildFoldTraitMethod transforms and folds the method's fields.
func RebuildFoldTraitMethod[E, A any](v MapReduce[E, A], env E, m TraitMethod) (TraitMethod, A) {
	mo := v.Monoid()
	name, a1 := v.MapReduceStr(env, m.Name)
	funID, a2 := v.MapReduceFunDeclID(env, m.FunID)
	return TraitMethod{Name: name, FunID: funID}, mo.Plus(a1, a2)
}

// RebuildFoldTraitDecl transforms and folds the trait's fields in order.
func RebuildFoldTraitDecl[E, A any](v MapReduce[E, A], env E, d *TraitDecl) (*TraitDecl, A) {
	m := v.Monoid()
	if d == nil {
		return nil, m.Zero()
	}
	id, acc := v.MapReduceTraitDeclID(env, d.ID)
	name, a := v.MapReduceStr(env, d.Name)
	acc = m.Plus(acc, a)
	generics, a := v.MapReduceGenericParams(env, d.Generics)
	acc = m.Plus(acc, a)
	out := &TraitDecl{ID: id, Name: name, Generics: generics}
	if d.Methods != nil {
		out.Methods = make([]TraitMethod, len(d.Methods))
		for i, method := range d.Methods {
			out.Methods[i], a = v.MapReduceTraitMethod(env, method)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldTraitImpl transforms and folds the impl's fields in order.
func RebuildFoldTraitImpl[E, A any](v MapReduce[E, A], env E, d *TraitImpl) (*TraitImpl, A) {
	m := v.Monoid()
	if d == nil {
		return nil, m.Zero()
	}
	id, acc := v.MapReduceTraitImplID(env, d.ID)
	name, a := v.MapReduceStr(env, d.Name)
	acc = m.Plus(acc, a)
	traitID, a := v.MapReduceTraitDeclID(env, d.TraitID)
	acc = m.Plus(acc, a)
	out := &TraitImpl{ID: id, Name: name, TraitID: traitID}
	if d.Methods != nil {
		out.Methods = make([]TraitMethod, len(d.Methods))
		for i, method := range d.Methods {
			out.Methods[i], a = v.MapReduceTraitMethod(env, method)
			acc = m.Plus(acc, a)
		}
	}
	return out, acc
}

// RebuildFoldFunDecl transforms and folds the function's fields in order.
func RebuildFoldFunDecl[E, A any](v MapReduce[E, A], env E, d *FunDecl) (*FunDecl, A) {
	m := v.Monoid()
	if d == nil {
		return nil, m.Zero()
	}
	id, a1 := v.MapReduceFunDeclID(env, d.ID)
	name, a2 := v.MapReduceStr(env, d.Name)
	sig, a3 := v.MapReduceFunSig(env, d.Sig)
	body, a4 := v.MapReduceExprBody(env, d.Body)
	acc := m.Plus(m.Plus(a1, a2), m.Plus(a3, a4))
	return &FunDecl{ID: id, Name: name, Sig: sig, Body: body}, acc
}

// RebuildFoldGlobalDecl transforms and folds the global's fields in
// order.
func RebuildFoldGlobalDecl[E, A any](v MapReduce[E, A], env E, d *GlobalDecl) (*GlobalDecl, A) {
	m := v.Monoid()
	if d == nil {
		return nil, m.Zero()
	}
	id, a1 := v.MapReduceGlobalDeclID(env, d.ID)
	name, a2 := v.MapReduceStr(env, d.Name)
	ty, a3 := v.MapReduceTy(env, d.Ty)
	body, a4 := v.MapReduceExprBody(env, d.Body)
	acc := m.Plus(m.Plus(a1, a2), m.Plus(a3, a4))
	return &GlobalDecl{ID: id, Name: name, Ty: ty, Body: body}, acc
}

// RebuildFoldDeclarationGroup transforms and folds each member id under
// the group's variant.
func RebuildFoldDeclarationGroup[E, A any](v MapReduce[E, A], env E, g DeclarationGroup) (DeclarationGroup, A) {
	m := v.Monoid()
	acc := m.Zero()
	var a A
	switch gr := g.(type) {
	case TypeGroup:
		out := TypeGroup{IDs: make([]ids.TypeDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i], a = v.MapReduceTypeDeclID(env, id)
			acc = m.Plus(acc, a)
		}
		return out, acc
	case FunGroup:
		out := FunGroup{IDs: make([]ids.FunDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i], a = v.MapReduceFunDeclID(env, id)
			acc = m.Plus(acc, a)
		}
		return out, acc
	case GlobalGroup:
		out := GlobalGroup{IDs: make([]ids.GlobalDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i], a = v.MapReduceGlobalDeclID(env, id)
			acc = m.Plus(acc, a)
		}
		return out, acc
	case TraitDeclGroup:
		out := TraitDeclGroup{IDs: make([]ids.TraitDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i], a = v.MapReduceTraitDeclID(env, id)
			acc = m.Plus(acc, a)
		}
		return out, acc
	case TraitImplGroup:
		out := TraitImplGroup{IDs: make([]ids.TraitImplID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i], a = v.MapReduceTraitImplID(env, id)
			acc = m.Plus(acc, a)
		}
		return out, acc
	case MixedGroup:
		out := MixedGroup{IDs: make([]AnyDeclID, len(gr.IDs))}
		for i, id := range gr.IDs {
			out.IDs[i], a = v.MapReduceAnyDeclID(env, id)
			acc = m.Plus(acc, a)
		}
		return out, acc
	default:
		return g, acc
	}
}

// RebuildFoldAnyDeclID transforms and folds the kind tag then the
// per-kind id leaf.
func RebuildFoldAnyDeclID[E, A any](v MapReduce[E, A], env E, id AnyDeclID) (AnyDeclID, A) {
	m := v.Monoid()
	kind, acc := v.MapReduceDeclKind(env, id.Kind)
	out := AnyDeclID{Kind: kind, ID: id.ID}
	switch id.Kind {
	case KindType:
		mapped, a := v.MapReduceTypeDeclID(env, ids.TypeDeclID(id.ID))
		out.ID = int(mapped)
		acc = m.Plus(acc, a)
	case KindFun:
		mapped, a := v.MapReduceFunDeclID(env, ids.FunDeclID(id.ID))
		out.ID = int(mapped)
		acc = m.Plus(acc, a)
	case KindGlobal:
		mapped, a := v.MapReduceGlobalDeclID(env, ids.GlobalDeclID(id.ID))
		out.ID = int(mapped)
		acc = m.Plus(acc, a)
	case KindTraitDecl:
		mapped, a := v.MapReduceTraitDeclID(env, ids.TraitDeclID(id.ID))
		out.ID = int(mapped)
		acc = m.Plus(acc, a)
	case KindTraitImpl:
		mapped, a := v.MapReduceTraitImplID(env, ids.TraitImplID(id.ID))
		out.ID = int(mapped)
		acc = m.Plus(acc, a)
	}
	return out, acc
}

// RebuildFoldCrate transforms and folds a crate in one pass. The
// accumulator covers the name, the groups, and the records the groups
// resolve to, in Declarations order; records that no group references are
// transformed but contribute nothing, matching a separate reduction of
// the transformed crate.
func RebuildFoldCrate[E, A any](v MapReduce[E, A], env E, c *Crate) (*Crate, A) {
	m := v.Monoid()
	if c == nil {
		return nil, m.Zero()
	}
	name, acc := v.MapReduceStr(env, c.Name)
	out := &Crate{
		Name:        name,
		TypeDecls:   make(map[ids.TypeDeclID]*types.TypeDecl, len(c.TypeDecls)),
		FunDecls:    make(map[ids.FunDeclID]*FunDecl, len(c.FunDecls)),
		GlobalDecls: make(map[ids.GlobalDeclID]*GlobalDecl, len(c.GlobalDecls)),
		TraitDecls:  make(map[ids.TraitDeclID]*TraitDecl, len(c.TraitDecls)),
		TraitImpls:  make(map[ids.TraitImplID]*TraitImpl, len(c.TraitImpls)),
	}

	seenTypes := map[ids.TypeDeclID]bool{}
	seenFuns := map[ids.FunDeclID]bool{}
	seenGlobals := map[ids.GlobalDeclID]bool{}
	seenTraitDecls := map[ids.TraitDeclID]bool{}
	seenTraitImpls := map[ids.TraitImplID]bool{}

	if c.Declarations != nil {
		out.Declarations = make([]DeclarationGroup, len(c.Declarations))
		for i, g := range c.Declarations {
			var a A
			out.Declarations[i], a = v.MapReduceDeclarationGroup(env, g)
			acc = m.Plus(acc, a)
			for _, id := range GroupAnyIDs(g) {
				switch id.Kind {
				case KindType:
					key := ids.TypeDeclID(id.ID)
					if d, ok := c.TypeDecls[key]; ok && !seenTypes[key] {
						seenTypes[key] = true
						mapped, a := v.MapReduceTypeDecl(env, d)
						out.TypeDecls[mapped.ID] = mapped
						acc = m.Plus(acc, a)
					}
				case KindFun:
					key := ids.FunDeclID(id.ID)
					if d, ok := c.FunDecls[key]; ok && !seenFuns[key] {
						seenFuns[key] = true
						mapped, a := v.MapReduceFunDecl(env, d)
						out.FunDecls[mapped.ID] = mapped
						acc = m.Plus(acc, a)
					}
				case KindGlobal:
					key := ids.GlobalDeclID(id.ID)
					if d, ok := c.GlobalDecls[key]; ok && !seenGlobals[key] {
						seenGlobals[key] = true
						mapped, a := v.MapReduceGlobalDecl(env, d)
						out.GlobalDecls[mapped.ID] = mapped
						acc = m.Plus(acc, a)
					}
				case KindTraitDecl:
					key := ids.TraitDeclID(id.ID)
					if d, ok := c.TraitDecls[key]; ok && !seenTraitDecls[key] {
						seenTraitDecls[key] = true
						mapped, a := v.MapReduceTraitDecl(env, d)
						out.TraitDecls[mapped.ID] = mapped
						acc = m.Plus(acc, a)
					}
				case KindTraitImpl:
					key := ids.TraitImplID(id.ID)
					if d, ok := c.TraitImpls[key]; ok && !seenTraitImpls[key] {
						seenTraitImpls[key] = true
						mapped, a := v.MapReduceTraitImpl(env, d)
						out.TraitImpls[mapped.ID] = mapped
						acc = m.Plus(acc, a)
					}
				}
			}
		}
	}

	// Unreferenced records are transformed without touching the
	// accumulator.
	for key, d := range c.TypeDecls {
		if !seenTypes[key] {
			mapped, _ := v.MapReduceTypeDecl(env, d)
			out.TypeDecls[mapped.ID] = mapped
		}
	}
	for key, d := range c.FunDecls {
		if !seenFuns[key] {
			mapped, _ := v.MapReduceFunDecl(env, d)
			out.FunDecls[mapped.ID] = mapped
		}
	}
	for key, d := range c.GlobalDecls {
		if !seenGlobals[key] {
			mapped, _ := v.MapReduceGlobalDecl(env, d)
			out.GlobalDecls[mapped.ID] = mapped
		}
	}
	for key, d := range c.TraitDecls {
		if !seenTraitDecls[key] {
			mapped, _ := v.MapReduceTraitDecl(env, d)
			out.TraitDecls[mapped.ID] = mapped
		}
	}
	for key, d := range c.TraitImpls {
		if !seenTraitImpls[key] {
			mapped, _ := v.MapReduceTraitImpl(env, d)
			out.TraitImpls[mapped.ID] = mapped
		}
	}
	return out, acc
}
