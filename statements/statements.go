package statements

import (
	"github.com/os-checker/charon/expressions"
	"github.com/os-checker/charon/ids"
	"github.com/os-checker/charon/types"
	"github.com/os-checker/charon/values"
)

// AbortKind says why control flow aborts. Sealed. The visitors treat it
// as an opaque leaf.
type AbortKind interface {
	abortKind()
	VariantName() string
}

// AbortPanic is a panic with the name of the panicking function.
type AbortPanic struct {
	Name string
}

// AbortUndefinedBehavior marks code the producer proved unreachable or
// undefined.
type AbortUndefinedBehavior struct{}

func (AbortPanic) abortKind()             {}
func (AbortUndefinedBehavior) abortKind() {}

func (AbortPanic) VariantName() string             { return "Panic" }
func (AbortUndefinedBehavior) VariantName() string { return "UndefinedBehavior" }

// Call is a function call: callable, arguments, destination place.
type Call struct {
	Func expressions.FnPtr
	Args []expressions.Operand
	Dest expressions.Place
}

// SwitchCase guards a block with the scalar values that select it.
type SwitchCase struct {
	Values []values.ScalarValue
	Block  Block
}

// Switch is a branch on a condition operand. Sealed.
type Switch interface {
	switchNode()
	VariantName() string
}

// SwIf branches on a boolean condition.
type SwIf struct {
	Cond expressions.Operand
	Then Block
	Else Block
}

// SwInt branches on an integer discriminant.
type SwInt struct {
	Cond    expressions.Operand
	IntTy   values.IntegerTy
	Cases   []SwitchCase
	Default Block
}

func (SwIf) switchNode()  {}
func (SwInt) switchNode() {}

func (SwIf) VariantName() string  { return "If" }
func (SwInt) VariantName() string { return "SwitchInt" }

// Statement is one step of a structured function body. Sealed.
type Statement interface {
	statement()
	VariantName() string
}

// SAssign stores an rvalue into a place.
type SAssign struct {
	Place  expressions.Place
	Rvalue expressions.Rvalue
}

// SCall performs a function call.
type SCall struct {
	Call Call
}

// SAbort aborts control flow.
type SAbort struct {
	Kind AbortKind
}

// SReturn returns from the function.
type SReturn struct{}

// SBreak exits the given number of enclosing loops.
type SBreak struct {
	Depth int
}

// SContinue restarts the loop the given number of levels out.
type SContinue struct {
	Depth int
}

// SNop does nothing.
type SNop struct{}

// SSwitch branches.
type SSwitch struct {
	Switch Switch
}

// SLoop loops over a block until broken out of.
type SLoop struct {
	Block Block
}

func (SAssign) statement()   {}
func (SCall) statement()     {}
func (SAbort) statement()    {}
func (SReturn) statement()   {}
func (SBreak) statement()    {}
func (SContinue) statement() {}
func (SNop) statement()      {}
func (SSwitch) statement()   {}
func (SLoop) statement()     {}

func (SAssign) VariantName() string   { return "Assign" }
func (SCall) VariantName() string     { return "Call" }
func (SAbort) VariantName() string    { return "Abort" }
func (SReturn) VariantName() string   { return "Return" }
func (SBreak) VariantName() string    { return "Break" }
func (SContinue) VariantName() string { return "Continue" }
func (SNop) VariantName() string      { return "Nop" }
func (SSwitch) VariantName() string   { return "Switch" }
func (SLoop) VariantName() string     { return "Loop" }

// Block is a sequence of statements.
type Block struct {
	Statements []Statement
}

// Var is a local variable binding of a function body.
type Var struct {
	Index ids.VarID
	Name  string
	Ty    types.Ty
}

// ExprBody is a structured function body. The first ArgCount locals
// after the return slot are the arguments.
type ExprBody struct {
	ArgCount int
	Locals   []Var
	Body     Block
}

// FunSig is a function signature.
type FunSig struct {
	Generics types.GenericParams
	Inputs   []types.Ty
	Output   types.Ty
}
