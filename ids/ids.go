// Package ids defines the identifier types used to reference declarations
// and variables throughout the IR.
//
// Every identifier is a small integer unique within its declaration kind.
// A distinct Go type per kind keeps the kinds from being mixed up at
// compile time; the underlying integer is the cross-boundary contract with
// the extraction pipeline and must round-trip unchanged.
package ids

import "fmt"

// TypeDeclID identifies a type declaration.
type TypeDeclID int

// FunDeclID identifies a function declaration.
type FunDeclID int

// GlobalDeclID identifies a global (static/const) declaration.
type GlobalDeclID int

// TraitDeclID identifies a trait declaration.
type TraitDeclID int

// TraitImplID identifies a trait implementation.
type TraitImplID int

// TypeVarID identifies a type variable bound by generic parameters.
type TypeVarID int

// ConstGenericVarID identifies a const generic variable.
type ConstGenericVarID int

// FieldID identifies a field within a struct or enum variant.
type FieldID int

// VariantID identifies a variant within an enum.
type VariantID int

// VarID identifies a local variable within a function body.
type VarID int

func (id TypeDeclID) String() string        { return fmt.Sprintf("TypeDecl@%d", int(id)) }
func (id FunDeclID) String() string         { return fmt.Sprintf("FunDecl@%d", int(id)) }
func (id GlobalDeclID) String() string      { return fmt.Sprintf("GlobalDecl@%d", int(id)) }
func (id TraitDeclID) String() string       { return fmt.Sprintf("TraitDecl@%d", int(id)) }
func (id TraitImplID) String() string       { return fmt.Sprintf("TraitImpl@%d", int(id)) }
func (id TypeVarID) String() string         { return fmt.Sprintf("TypeVar@%d", int(id)) }
func (id ConstGenericVarID) String() string { return fmt.Sprintf("ConstGenericVar@%d", int(id)) }
func (id FieldID) String() string           { return fmt.Sprintf("Field@%d", int(id)) }
func (id VariantID) String() string         { return fmt.Sprintf("Variant@%d", int(id)) }
func (id VarID) String() string             { return fmt.Sprintf("Var@%d", int(id)) }
