package main

import "github.com/velalang/vela/internal/ast"

// astNode is the JSON-serializable mirror of ast.Node used only by
// --debug-ast. internal/eval never imports encoding/json; this shape
// exists purely for host-side debugging, the way the reference
// implementation's AST::toJSON() was wired only into its own debug CLI
// paths.
type astNode struct {
	Kind     string     `json:"kind"`
	Num      float64    `json:"num,omitempty"`
	Ident    string     `json:"ident,omitempty"`
	Children []*astNode `json:"children,omitempty"`
}

func astJSON(n *ast.Node) *astNode {
	if n == nil {
		return nil
	}
	out := &astNode{
		Kind:  n.Kind.String(),
		Num:   n.Num,
		Ident: n.Ident,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, astJSON(c))
	}
	return out
}
