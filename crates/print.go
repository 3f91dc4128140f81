package crates

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/statements"
	"github.com/os-checker/charon/types"
)

// PrintCrate renders a crate deterministically, walking the
// Declarations order. Names are NFC-normalized so output does not vary
// across producers that emit different Unicode compositions.
func PrintCrate[B any](c *GCrate[B]) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "crate %s\n", printName(c.Name))
	for gi, g := range c.Declarations {
		fmt.Fprintf(&b, "\ngroup %d (%s):\n", gi, g.VariantName())
		for _, id := range GroupAnyIDs(g) {
			printDecl(&b, c, id)
		}
	}
	return b.String()
}

func printName(name string) string {
	return norm.NFC.String(name)
}

func printDecl[B any](b *strings.Builder, c *GCrate[B], id AnyDeclID) {
	switch id.Kind {
	case KindType:
		if d, ok := c.TypeDecls[ids.TypeDeclID(id.ID)]; ok {
			printTypeDecl(b, d)
		}
	case KindFun:
		if d, ok := c.FunDecls[ids.FunDeclID(id.ID)]; ok {
			printFunDecl(b, funDeclView(d))
		}
	case KindGlobal:
		if d, ok := c.GlobalDecls[ids.GlobalDeclID(id.ID)]; ok {
			printGlobalDecl(b, globalDeclView(d))
		}
	case KindTraitDecl:
		if d, ok := c.TraitDecls[ids.TraitDeclID(id.ID)]; ok {
			printTraitDecl(b, d)
		}
	case KindTraitImpl:
		if d, ok := c.TraitImpls[ids.TraitImplID(id.ID)]; ok {
			printTraitImpl(b, d)
		}
	}
}

func printTypeDecl(b *strings.Builder, d *types.TypeDecl) {
	fmt.Fprintf(b, "type %s%s = ", printName(d.Name), renderGenericParams(d.Generics))
	switch k := d.Kind.(type) {
	case types.KStruct:
		b.WriteString("struct {")
		for i, f := range k.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, " %s: %s", printName(f.Name), renderTy(f.Ty))
		}
		b.WriteString(" }\n")
	case types.KEnum:
		b.WriteString("enum {")
		for i, vr := range k.Variants {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, " %s", printName(vr.Name))
			if len(vr.Fields) > 0 {
				b.WriteString("(")
				for j, f := range vr.Fields {
					if j > 0 {
						b.WriteString(", ")
					}
					b.WriteString(renderTy(f.Ty))
				}
				b.WriteString(")")
			}
		}
		b.WriteString(" }\n")
	default:
		b.WriteString("opaque\n")
	}
}

func printFunDecl(b *strings.Builder, d *FunDecl) {
	fmt.Fprintf(b, "fn %s%s(", printName(d.Name), renderGenericParams(d.Sig.Generics))
	for i, in := range d.Sig.Inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderTy(in))
	}
	b.WriteString(")")
	if d.Sig.Output != nil {
		fmt.Fprintf(b, " -> %s", renderTy(d.Sig.Output))
	}
	if d.Body == nil {
		b.WriteString("\n")
		return
	}
	b.WriteString(" {\n")
	for _, lv := range d.Body.Locals {
		fmt.Fprintf(b, "    let %s: %s // %s\n", printName(lv.Name), renderTy(lv.Ty), lv.Index)
	}
	printBlock(b, d.Body.Body, 1)
	b.WriteString("}\n")
}

func printGlobalDecl(b *strings.Builder, d *GlobalDecl) {
	fmt.Fprintf(b, "global %s: %s", printName(d.Name), renderTy(d.Ty))
	if d.Body == nil {
		b.WriteString("\n")
		return
	}
	b.WriteString(" {\n")
	printBlock(b, d.Body.Body, 1)
	b.WriteString("}\n")
}

func printTraitDecl(b *strings.Builder, d *TraitDecl) {
	fmt.Fprintf(b, "trait %s%s {", printName(d.Name), renderGenericParams(d.Generics))
	for i, m := range d.Methods {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s = %s", printName(m.Name), m.FunID)
	}
	b.WriteString(" }\n")
}

func printTraitImpl(b *strings.Builder, d *TraitImpl) {
	fmt.Fprintf(b, "impl %s: %s {", printName(d.Name), d.TraitID)
	for i, m := range d.Methods {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s = %s", printName(m.Name), m.FunID)
	}
	b.WriteString(" }\n")
}

func printBlock(b *strings.Builder, bl statements.Block, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, s := range bl.Statements {
		printStatement(b, s, indent, depth)
	}
}

func printStatement(b *strings.Builder, s statements.Statement, indent string, depth int) {
	switch st := s.(type) {
	case statements.SAssign:
		fmt.Fprintf(b, "%s%s := %s\n", indent, renderPlace(st.Place), renderRvalue(st.Rvalue))
	case statements.SCall:
		fmt.Fprintf(b, "%s%s := call %s(", indent, renderPlace(st.Call.Dest), renderFnPtr(st.Call.Func))
		for i, a := range st.Call.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderOperand(a))
		}
		b.WriteString(")\n")
	case statements.SAbort:
		fmt.Fprintf(b, "%sabort(%s)\n", indent, renderAbort(st.Kind))
	case statements.SReturn:
		fmt.Fprintf(b, "%sreturn\n", indent)
	case statements.SBreak:
		fmt.Fprintf(b, "%sbreak %d\n", indent, st.Depth)
	case statements.SContinue:
		fmt.Fprintf(b, "%scontinue %d\n", indent, st.Depth)
	case statements.SNop:
		fmt.Fprintf(b, "%snop\n", indent)
	case statements.SSwitch:
		printSwitch(b, st.Switch, indent, depth)
	case statements.SLoop:
		fmt.Fprintf(b, "%sloop {\n", indent)
		printBlock(b, st.Block, depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
	}
}

func printSwitch(b *strings.Builder, sw statements.Switch, indent string, depth int) {
	switch s := sw.(type) {
	case statements.SwIf:
		fmt.Fprintf(b, "%sif %s {\n", indent, renderOperand(s.Cond))
		printBlock(b, s.Then, depth+1)
		fmt.Fprintf(b, "%s} else {\n", indent)
		printBlock(b, s.Else, depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
	case statements.SwInt:
		fmt.Fprintf(b, "%sswitch %s: %s {\n", indent, renderOperand(s.Cond), s.IntTy)
		for _, c := range s.Cases {
			vals := make([]string, len(c.Values))
			for i, sv := range c.Values {
				vals[i] = sv.Value.String()
			}
			fmt.Fprintf(b, "%s    %s => {\n", indent, strings.Join(vals, " | "))
			printBlock(b, c.Block, depth+2)
			fmt.Fprintf(b, "%s    }\n", indent)
		}
		fmt.Fprintf(b, "%s    _ => {\n", indent)
		printBlock(b, s.Default, depth+2)
		fmt.Fprintf(b, "%s    }\n", indent)
		fmt.Fprintf(b, "%s}\n", indent)
	}
}

func renderAbort(k statements.AbortKind) string {
	if p, ok := k.(statements.AbortPanic); ok {
		return "panic: " + printName(p.Name)
	}
	return "undefined behavior"
}

func renderGenericParams(p types.GenericParams) string {
	if len(p.Types) == 0 && len(p.ConstGenerics) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.Types)+len(p.ConstGenerics))
	for _, tv := range p.Types {
		parts = append(parts, printName(tv.Name))
	}
	for _, cgv := range p.ConstGenerics {
		parts = append(parts, fmt.Sprintf("const %s: %s", printName(cgv.Name), cgv.Ty))
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func renderTy(t types.Ty) string {
	switch ty := t.(type) {
	case types.TAdt:
		return renderTypeID(ty.ID) + renderGenericArgs(ty.Args)
	case types.TVar:
		return fmt.Sprintf("@%d", int(ty.ID))
	case types.TLiteral:
		return ty.Ty.String()
	case types.TNever:
		return "!"
	case types.TRef:
		if ty.Kind == types.RefMut {
			return "&mut " + renderTy(ty.Pointee)
		}
		return "&" + renderTy(ty.Pointee)
	case types.TRawPtr:
		if ty.Kind == types.RefMut {
			return "*mut " + renderTy(ty.Pointee)
		}
		return "*const " + renderTy(ty.Pointee)
	case types.TArrow:
		ins := make([]string, len(ty.Inputs))
		for i, in := range ty.Inputs {
			ins[i] = renderTy(in)
		}
		return fmt.Sprintf("fn(%s) -> %s", strings.Join(ins, ", "), renderTy(ty.Output))
	default:
		return "?"
	}
}

func renderTypeID(id types.TypeID) string {
	switch i := id.(type) {
	case types.IDAdt:
		return i.ID.String()
	case types.IDTuple:
		return "tuple"
	case types.IDBuiltin:
		return i.Builtin.String()
	default:
		return "?"
	}
}

func renderGenericArgs(a types.GenericArgs) string {
	if len(a.Types) == 0 && len(a.ConstGenerics) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a.Types)+len(a.ConstGenerics))
	for _, t := range a.Types {
		parts = append(parts, renderTy(t))
	}
	for _, cg := range a.ConstGenerics {
		parts = append(parts, renderConstGeneric(cg))
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func renderConstGeneric(cg types.ConstGeneric) string {
	switch c := cg.(type) {
	case types.CgGlobal:
		return c.ID.String()
	case types.CgVar:
		return fmt.Sprintf("@const%d", int(c.ID))
	case types.CgValue:
		return c.Value.String()
	default:
		return "?"
	}
}

func renderPlace(p expressions.Place) string {
	out := fmt.Sprintf("_%d", int(p.Var))
	for _, pr := range p.Projection {
		switch proj := pr.(type) {
		case expressions.PDeref:
			out = "*" + out
		case expressions.PField:
			out = fmt.Sprintf("%s.%d", out, int(proj.Field))
		}
	}
	return out
}

func renderOperand(op expressions.Operand) string {
	switch o := op.(type) {
	case expressions.OpCopy:
		return "copy " + renderPlace(o.Place)
	case expressions.OpMove:
		return "move " + renderPlace(o.Place)
	case expressions.OpConst:
		return renderConstant(o.Const)
	default:
		return "?"
	}
}

func renderConstant(c expressions.ConstantExpr) string {
	switch rc := c.Value.(type) {
	case expressions.CLiteral:
		return rc.Value.String()
	case expressions.CVar:
		return fmt.Sprintf("@const%d", int(rc.ID))
	case expressions.CFnPtr:
		return renderFnPtr(rc.Ptr)
	default:
		return "?"
	}
}

func renderFnPtr(fp expressions.FnPtr) string {
	var name string
	switch f := fp.Func.(type) {
	case expressions.FRegular:
		name = f.ID.String()
	case expressions.FBuiltin:
		name = f.Builtin.String()
	default:
		name = "?"
	}
	return name + renderGenericArgs(fp.Args)
}

func renderRvalue(rv expressions.Rvalue) string {
	switch r := rv.(type) {
	case expressions.RvUse:
		return renderOperand(r.Operand)
	case expressions.RvRef:
		if r.Kind == expressions.BorrowMut {
			return "&mut " + renderPlace(r.Place)
		}
		return "&" + renderPlace(r.Place)
	case expressions.RvUnary:
		return fmt.Sprintf("%s%s", r.Op, renderOperand(r.Operand))
	case expressions.RvBinary:
		return fmt.Sprintf("%s %s %s", renderOperand(r.Left), r.Op, renderOperand(r.Right))
	case expressions.RvDiscriminant:
		return "discriminant(" + renderPlace(r.Place) + ")"
	case expressions.RvGlobal:
		return r.ID.String()
	case expressions.RvAggregate:
		ops := make([]string, len(r.Operands))
		for i, op := range r.Operands {
			ops[i] = renderOperand(op)
		}
		return renderAggregateKind(r.Kind) + "(" + strings.Join(ops, ", ") + ")"
	default:
		return "?"
	}
}

func renderAggregateKind(k expressions.AggregateKind) string {
	switch ak := k.(type) {
	case expressions.AkAdt:
		out := renderTypeID(ak.ID)
		if ak.Variant != nil {
			out = fmt.Sprintf("%s::%d", out, int(*ak.Variant))
		}
		return out + renderGenericArgs(ak.Args)
	case expressions.AkArray:
		return fmt.Sprintf("[%s; %s]", renderTy(ak.Ty), renderConstGeneric(ak.Len))
	default:
		return "?"
	}
}
