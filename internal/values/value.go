// Package values defines the tagged Value union the evaluator produces and
// consumes — spec §3's {Void, Number, List, Lambda} — and the Evaluator
// capability builtins call back into for argument evaluation and
// short-circuiting. Modeled on the teacher's Object interface
// (internal/evaluator/object.go): a small closed set of concrete variants
// dispatched by type switch, each naming its own Kind.
package values

import (
	"strconv"
	"strings"

	"github.com/velalang/vela/internal/ast"
)

// Kind names a Value variant for error messages and type-switch-free checks.
type Kind string

const (
	VoidKind   Kind = "void"
	NumberKind Kind = "number"
	ListKind   Kind = "list"
	LambdaKind Kind = "lambda"
)

// Value is implemented by Void, Number, *List and *Lambda. Void is never
// storable in the environment (spec §3).
type Value interface {
	Kind() Kind
	String() string
}

// Void is the result of an assignment; it carries no data.
type Void struct{}

func (Void) Kind() Kind      { return VoidKind }
func (Void) String() string { return "" }

// Number is a 64-bit floating scalar.
type Number float64

func (Number) Kind() Kind { return NumberKind }
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// List is an ordered sequence of Numbers. Lists of lists are not
// representable (spec §3).
type List struct {
	Elements []float64
}

func NewList(elems []float64) *List { return &List{Elements: elems} }

func (*List) Kind() Kind { return ListKind }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, x := range l.Elements {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Evaluator is the capability a Builtin receives to evaluate the
// unevaluated argument AST nodes it was handed, against whatever
// environment and call-stack state the host evaluator currently holds.
// Defined here (not in internal/eval) so this package — and anything built
// on it, like internal/builtins — never needs to import the evaluator.
type Evaluator interface {
	Eval(node *ast.Node) (Value, error)
}

// BuiltinFunc implements a built-in lambda. It receives the callee's
// unevaluated argument expressions and an Evaluator; it is responsible for
// evaluating whichever arguments it needs, in whatever order it needs them
// (this is what lets `and`/`or`/`if_else` short-circuit — spec §4.5).
type BuiltinFunc func(e Evaluator, args []*ast.Node) (Value, error)

// Lambda is a callable value: either user-defined (Body set, Fn nil) or
// built-in (Fn set, Body nil). Built-ins additionally carry Name so
// substitution can reproduce them as an identifier reference into the
// global environment (spec §4.6).
type Lambda struct {
	Params []string
	Body   *ast.Node
	Fn     BuiltinFunc
	Name   string
}

func (*Lambda) Kind() Kind { return LambdaKind }

func (l *Lambda) IsBuiltin() bool { return l.Fn != nil }

func (l *Lambda) String() string {
	if l.IsBuiltin() {
		return l.Name
	}
	return "@(" + strings.Join(l.Params, ", ") + "){...}"
}
