// Package ast defines the tagged syntax tree produced by internal/parser and
// walked by internal/eval. Every node carries one tag (Kind) and an ordered
// slice of children whose meaning is fixed by that tag — see spec §3.
package ast

// Kind tags the payload a Node carries.
type Kind int

const (
	// Number is a numeric literal; Num holds its value.
	Number Kind = iota
	// Ident is a free or bound identifier reference; Ident holds its name.
	// It also names a PARAM_LIST child (an identifier with no children).
	Ident
	// Assign is `name = rhs`. Ident holds name; Children = [rhs].
	Assign
	// AssignLambda is `name(params) = body`. Ident holds name;
	// Children = [PARAM_LIST, body].
	AssignLambda
	// Neg is unary minus. Children = [operand].
	Neg
	// Add/Sub/Mul/Div/Pow are binary arithmetic. Children = [lhs, rhs].
	Add
	Sub
	Mul
	Div
	Pow
	// Call is a function application. Children = [callee, EXPR_LIST].
	Call
	// Index is `target[idx]`. Children = [target, idx].
	Index
	// List is a list literal. Children = elements.
	List
	// Lambda is an anonymous lambda. Children = [PARAM_LIST, body].
	Lambda
	// ExprList is an ordered argument list. Children = arguments.
	ExprList
	// ParamList is an ordered parameter list. Children are Ident nodes.
	ParamList
)

var kindNames = map[Kind]string{
	Number:       "NUMBER",
	Ident:        "IDENT",
	Assign:       "ASSIGN",
	AssignLambda: "ASSIGN_LAMBDA",
	Neg:          "NEG",
	Add:          "ADD",
	Sub:          "SUB",
	Mul:          "MUL",
	Div:          "DIV",
	Pow:          "POW",
	Call:         "CALL",
	Index:        "INDEX",
	List:         "LIST",
	Lambda:       "LAMBDA",
	ExprList:     "EXPR_LIST",
	ParamList:    "PARAM_LIST",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Node is the single tagged-tree type the whole core shares. User lambda
// values (internal/values) hold a *Node body (their parameter names are
// kept as plain strings); those references must remain valid for the lifetime of the binding that holds
// them, so nodes are never mutated in place once built — substitution always
// produces a fresh tree (see internal/eval/substitute.go).
type Node struct {
	Kind     Kind
	Num      float64 // valid when Kind == Number
	Ident    string  // valid when Kind == Ident, Assign, or AssignLambda
	Children []*Node
}

// NewNumber builds a numeric-literal node.
func NewNumber(v float64) *Node { return &Node{Kind: Number, Num: v} }

// NewIdent builds an identifier-reference node.
func NewIdent(name string) *Node { return &Node{Kind: Ident, Ident: name} }

// ShallowCopy returns a new Node with the same Kind/Num/Ident and a fresh
// Children slice holding the same child pointers (not cloned). Used by
// substitution, which then recurses into the copy's children.
func (n *Node) ShallowCopy() *Node {
	cp := *n
	cp.Children = append([]*Node(nil), n.Children...)
	return &cp
}
