// Package config centralizes the fixed names the evaluator and builtin
// registry both need, the way the teacher's internal/config package holds
// trait/type name constants shared across its analyzer and evaluator.
package config

// AnsName is the identifier rebound after every non-void Exec (spec §3/§9).
const AnsName = "ans"

// EConst and PiConst are the two constants installed at Init, alongside ans.
const (
	EConst  = "e"
	PiConst = "pi"
)

// Unary math builtin names: accept Number or List, elementwise on List.
var UnaryMathFuncs = []string{
	"sin", "cos", "tan",
	"asin", "acos", "atan",
	"exp", "ln",
	"abs",
	"floor", "ceil", "round",
	"sqrt", "erf", "gamma",
}

// NotFuncName is the logical-negation unary builtin.
const NotFuncName = "not"

// ComparisonFuncs are the binary (Number, Number) -> {0,1} builtins.
var ComparisonFuncs = []string{"eq", "neq", "gt", "lt", "geq", "leq"}

// Short-circuit boolean and conditional builtin names.
const (
	AndFuncName    = "and"
	OrFuncName     = "or"
	IfElseFuncName = "if_else"
)

// List primitive builtin names.
const (
	LenFuncName     = "len"
	AssignFuncName  = "assign"
	AppendFuncName  = "append"
	SliceFuncName   = "slice"
	ReverseFuncName = "reverse"
)
