package eval

import (
	"github.com/velalang/vela/internal/ast"
	"github.com/velalang/vela/internal/values"
)

// substitute returns a fresh copy of body with every free occurrence of an
// identifier in params replaced by its corresponding argument value,
// ported from the reference implementation's Context::substitude(). It is
// capture-avoiding by masking: once a nested LAMBDA's own parameter list
// reuses one of the outer names, that name is no longer substituted inside
// that nested lambda's body, matching the original's scope-shadowing walk.
//
// The returned tree shares no mutable state with body: every node on the
// path to a replaced identifier is copied (ast.ShallowCopy), but subtrees
// in which nothing is replaced are left aliased to the original —
// substitution never mutates body in place.
func substitute(body *ast.Node, params []string, args []values.Value) *ast.Node {
	bind := make(map[string]values.Value, len(params))
	for i, p := range params {
		bind[p] = args[i]
	}
	return subst(body, bind)
}

func subst(n *ast.Node, bind map[string]values.Value) *ast.Node {
	if n == nil || len(bind) == 0 {
		return n
	}

	switch n.Kind {
	case ast.Ident:
		if v, ok := bind[n.Ident]; ok {
			return valueToNode(v)
		}
		return n

	case ast.Lambda:
		// Children = [PARAM_LIST, body]. Any outer binding whose name is
		// reused as one of this lambda's own parameters is masked for the
		// nested body — it refers to the inner parameter there, never the
		// outer argument.
		paramList := n.Children[0]
		inner := bind
		masked := false
		for _, pn := range paramList.Children {
			if _, ok := bind[pn.Ident]; ok {
				if !masked {
					inner = cloneBind(bind)
					masked = true
				}
				delete(inner, pn.Ident)
			}
		}
		if len(inner) == 0 {
			return n
		}
		newBody := subst(n.Children[1], inner)
		if newBody == n.Children[1] {
			return n
		}
		cp := n.ShallowCopy()
		cp.Children[1] = newBody
		return cp

	case ast.AssignLambda:
		// Same masking rule as Lambda, over Children = [PARAM_LIST, body].
		paramList := n.Children[0]
		inner := bind
		masked := false
		for _, pn := range paramList.Children {
			if _, ok := bind[pn.Ident]; ok {
				if !masked {
					inner = cloneBind(bind)
					masked = true
				}
				delete(inner, pn.Ident)
			}
		}
		if len(inner) == 0 {
			return n
		}
		newBody := subst(n.Children[1], inner)
		if newBody == n.Children[1] {
			return n
		}
		cp := n.ShallowCopy()
		cp.Children[1] = newBody
		return cp

	default:
		changed := false
		newChildren := n.Children
		for i, c := range n.Children {
			nc := subst(c, bind)
			if nc != c {
				if !changed {
					newChildren = append([]*ast.Node(nil), n.Children...)
					changed = true
				}
				newChildren[i] = nc
			}
		}
		if !changed {
			return n
		}
		cp := n.ShallowCopy()
		cp.Children = newChildren
		return cp
	}
}

func cloneBind(bind map[string]values.Value) map[string]values.Value {
	out := make(map[string]values.Value, len(bind))
	for k, v := range bind {
		out[k] = v
	}
	return out
}

// valueToNode reconstructs an AST fragment for a substituted argument
// value, so the already-tree-walking evaluator can re-evaluate a call body
// without a second value representation. A List is always rebuilt as a
// fresh LIST-of-literals node (no aliasing back to the original list's
// storage, matching the original's by-value list substitution); a user
// Lambda gets a freshly built PARAM_LIST and shares its existing Body node
// (substitution never deep-clones a lambda's body a second time).
func valueToNode(v values.Value) *ast.Node {
	switch x := v.(type) {
	case values.Number:
		return ast.NewNumber(float64(x))
	case *values.List:
		children := make([]*ast.Node, len(x.Elements))
		for i, e := range x.Elements {
			children[i] = ast.NewNumber(e)
		}
		return &ast.Node{Kind: ast.List, Children: children}
	case *values.Lambda:
		return lambdaNode(x)
	default:
		// Void never reaches here: Context.call rejects a Void argument
		// with WRONG_PARAMETER_TYPE before substituting (see evaluator.go).
		return ast.NewNumber(0)
	}
}

// lambdaNode wraps a Lambda value back into a LAMBDA node so it can be
// substituted into an expression position. For a builtin, a bare IDENT
// referencing its registered name round-trips back through the same
// global lookup the environment would have performed anyway.
func lambdaNode(l *values.Lambda) *ast.Node {
	if l.IsBuiltin() {
		return ast.NewIdent(l.Name)
	}
	params := &ast.Node{Kind: ast.ParamList}
	for _, p := range l.Params {
		params.Children = append(params.Children, ast.NewIdent(p))
	}
	return &ast.Node{Kind: ast.Lambda, Children: []*ast.Node{params, l.Body}}
}
