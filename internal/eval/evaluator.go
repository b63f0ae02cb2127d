// Package eval walks the AST produced by internal/parser against a flat
// Environment, implementing spec §4.4-§4.6: expression evaluation,
// call-by-substitution lambda application and the ans-rebinding contract
// of a REPL session. Structured the way the teacher's evaluator.go walks
// its tree, but over the tagged ast.Node union instead of a polymorphic
// object tree.
package eval

import (
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/velalang/vela/internal/ast"
	"github.com/velalang/vela/internal/config"
	"github.com/velalang/vela/internal/lexer"
	"github.com/velalang/vela/internal/parser"
	"github.com/velalang/vela/internal/values"
	"github.com/velalang/vela/internal/verr"
)

// Context is one evaluation session: its Environment, a logger for debug
// tracing, and a session id stamped into every log line so concurrently
// running hosts (e.g. several REPL processes sharing a log sink) can be
// told apart.
type Context struct {
	Env       *Environment
	Logger    *log.Logger
	SessionID uuid.UUID
}

// New builds a Context with a fresh, uninitialized Environment. Call Init
// before use.
func New(logger *log.Logger) *Context {
	if logger == nil {
		logger = log.Default()
	}
	return &Context{
		Env:       NewEnvironment(),
		Logger:    logger,
		SessionID: uuid.New(),
	}
}

// Init (re)installs the fixed starting environment: ans = 0, the e and pi
// constants, and the full builtin registry. install is supplied by the
// root package (which imports internal/builtins) at call time, keeping
// internal/eval itself free of any dependency on internal/builtins.
func (c *Context) Init(install func(env *Environment)) {
	c.Env.Clear()
	c.Env.Set(config.AnsName, values.Number(0))
	c.Env.Set(config.EConst, values.Number(math.E))
	c.Env.Set(config.PiConst, values.Number(math.Pi))
	if install != nil {
		install(c.Env)
	}
	c.Logger.Printf("session %s: initialized", c.SessionID)
}

// Exec tokenizes, parses and evaluates one line of input, rebinding ans
// only when the result is non-void — the original reference
// implementation's Context::exec() rule, resolved from its source since
// the English spec leaves this case unspecified.
func (c *Context) Exec(input string) (values.Value, error) {
	toks, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	result, err := c.Eval(root)
	if err != nil {
		return nil, err
	}
	if result.Kind() != values.VoidKind {
		c.Env.Set(config.AnsName, result)
	}
	return result, nil
}

// Eval implements values.Evaluator, dispatching on every ast.Kind per
// spec §4.4.
func (c *Context) Eval(n *ast.Node) (values.Value, error) {
	switch n.Kind {
	case ast.Number:
		return values.Number(n.Num), nil

	case ast.Ident:
		v, ok := c.Env.Get(n.Ident)
		if !ok {
			return nil, verr.New(verr.IdentifierUndefined)
		}
		return v, nil

	case ast.Assign:
		rhs, err := c.Eval(n.Children[0])
		if err != nil {
			return nil, err
		}
		c.Env.Set(n.Ident, rhs)
		return values.Void{}, nil

	case ast.AssignLambda:
		params := identNames(n.Children[0])
		lam := &values.Lambda{Params: params, Body: n.Children[1]}
		c.Env.Set(n.Ident, lam)
		return values.Void{}, nil

	case ast.Neg:
		v, err := c.Eval(n.Children[0])
		if err != nil {
			return nil, err
		}
		return negate(v)

	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Pow:
		lhs, err := c.Eval(n.Children[0])
		if err != nil {
			return nil, err
		}
		rhs, err := c.Eval(n.Children[1])
		if err != nil {
			return nil, err
		}
		return binOp(lhs, rhs, opFor(n.Kind))

	case ast.List:
		elems := make([]float64, len(n.Children))
		for i, ch := range n.Children {
			v, err := c.Eval(ch)
			if err != nil {
				return nil, err
			}
			num, ok := v.(values.Number)
			if !ok {
				return nil, verr.New(verr.ListMemberNotDecimal)
			}
			elems[i] = float64(num)
		}
		return values.NewList(elems), nil

	case ast.Lambda:
		return &values.Lambda{Params: identNames(n.Children[0]), Body: n.Children[1]}, nil

	case ast.Index:
		target, err := c.Eval(n.Children[0])
		if err != nil {
			return nil, err
		}
		list, ok := target.(*values.List)
		if !ok {
			return nil, verr.New(verr.ObjectNotList)
		}
		idxVal, err := c.Eval(n.Children[1])
		if err != nil {
			return nil, err
		}
		idxNum, ok := idxVal.(values.Number)
		if !ok {
			return nil, verr.New(verr.IndexNotDecimal)
		}
		// Round-half-away-from-zero, per the reference implementation.
		idx := int(math.Round(float64(idxNum)))
		if idx < 0 || idx >= len(list.Elements) {
			return nil, verr.New(verr.IndexOutOfRange)
		}
		return values.Number(list.Elements[idx]), nil

	case ast.Call:
		calleeNode, argsNode := n.Children[0], n.Children[1]
		callee, err := c.Eval(calleeNode)
		if err != nil {
			return nil, err
		}
		lam, ok := callee.(*values.Lambda)
		if !ok {
			return nil, verr.New(verr.ObjectNotCallable)
		}
		return c.call(lam, argsNode.Children)

	default:
		return nil, verr.New(verr.ParseFailed)
	}
}

// call dispatches to a builtin's Go function or substitutes a user
// lambda's parameters with eagerly evaluated arguments and re-evaluates
// its body — spec §4.5/§4.6, ported from Context::call().
func (c *Context) call(lam *values.Lambda, argNodes []*ast.Node) (values.Value, error) {
	if lam.IsBuiltin() {
		return lam.Fn(c, argNodes)
	}

	if len(argNodes) != len(lam.Params) {
		return nil, verr.New(verr.WrongNumberOfParams)
	}

	args := make([]values.Value, len(argNodes))
	for i, an := range argNodes {
		v, err := c.Eval(an)
		if err != nil {
			return nil, err
		}
		if v.Kind() == values.VoidKind {
			return nil, verr.New(verr.WrongParameterType)
		}
		args[i] = v
	}

	body := substitute(lam.Body, lam.Params, args)
	return c.Eval(body)
}

func identNames(paramList *ast.Node) []string {
	names := make([]string, len(paramList.Children))
	for i, c := range paramList.Children {
		names[i] = c.Ident
	}
	return names
}

func opFor(k ast.Kind) scalarOp {
	switch k {
	case ast.Add:
		return addOp
	case ast.Sub:
		return subOp
	case ast.Mul:
		return mulOp
	case ast.Div:
		return divOp
	case ast.Pow:
		return powOp
	default:
		return addOp
	}
}
