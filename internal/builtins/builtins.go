// Package builtins installs the fixed registry of built-in lambdas spec
// §4.7 names, each implemented directly as a values.BuiltinFunc rather
// than through a macro-expanded table — ported one-for-one from the
// reference implementation's Context::setupInternalFunc() and
// InternalFunc.inl/InternalFunc.cpp, which this package's function bodies
// follow closely enough to keep their exact argument-evaluation order
// (important for and/or/if_else short-circuiting and for which parameter
// a WRONG_PARAMETER_TYPE error blames).
package builtins

import (
	"math"

	"github.com/velalang/vela/internal/ast"
	"github.com/velalang/vela/internal/config"
	"github.com/velalang/vela/internal/values"
	"github.com/velalang/vela/internal/verr"
)

// Binder is the minimal capability this package needs to install itself;
// *eval.Environment satisfies it without this package importing
// internal/eval.
type Binder interface {
	Set(name string, v values.Value)
}

// Install binds every built-in name into env. Call after the ans/e/pi
// constants are set, as Context.Init does.
func Install(env Binder) {
	for name, fn := range unaryMath {
		bind(env, name, []string{"x"}, fn)
	}
	env.Set(config.NotFuncName, builtin(config.NotFuncName, []string{"x"}, notFn))

	for name, fn := range comparisons {
		bind(env, name, []string{"x", "y"}, fn)
	}

	env.Set(config.AndFuncName, builtin(config.AndFuncName, []string{"x", "y"}, andFn))
	env.Set(config.OrFuncName, builtin(config.OrFuncName, []string{"x", "y"}, orFn))
	env.Set(config.IfElseFuncName, builtin(config.IfElseFuncName, []string{"cond", "true", "false"}, ifElseFn))

	env.Set(config.LenFuncName, builtin(config.LenFuncName, []string{"list"}, lenFn))
	env.Set(config.AssignFuncName, builtin(config.AssignFuncName, []string{"list", "idx", "val"}, assignFn))
	env.Set(config.AppendFuncName, builtin(config.AppendFuncName, []string{"list", "val"}, appendFn))
	env.Set(config.SliceFuncName, builtin(config.SliceFuncName, []string{"list", "st", "ed"}, sliceFn))
	env.Set(config.ReverseFuncName, builtin(config.ReverseFuncName, []string{"list"}, reverseFn))
}

func bind(env Binder, name string, params []string, fn values.BuiltinFunc) {
	env.Set(name, builtin(name, params, fn))
}

func builtin(name string, params []string, fn values.BuiltinFunc) *values.Lambda {
	return &values.Lambda{Params: params, Fn: fn, Name: name}
}

// unaryMath maps each spec §4.7 unary math builtin to its elementwise
// scalar implementation.
var unaryMath = map[string]values.BuiltinFunc{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"exp":   unary(math.Exp),
	"ln":    unary(math.Log),
	"abs":   unary(math.Abs),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"sqrt":  unary(math.Sqrt),
	"erf":   unary(math.Erf),
	"gamma": unary(math.Gamma),
}

// unary builds a builtin that applies f to a Number, or elementwise over a
// List, matching UNARY_FUNC_TEMPLATE in the reference implementation.
func unary(f func(float64) float64) values.BuiltinFunc {
	return func(e values.Evaluator, args []*ast.Node) (values.Value, error) {
		if len(args) != 1 {
			return nil, verr.New(verr.WrongNumberOfParams)
		}
		x, err := e.Eval(args[0])
		if err != nil {
			return nil, err
		}
		switch v := x.(type) {
		case values.Number:
			return values.Number(f(float64(v))), nil
		case *values.List:
			out := make([]float64, len(v.Elements))
			for i, e := range v.Elements {
				out[i] = f(e)
			}
			return values.NewList(out), nil
		default:
			return nil, verr.New(verr.WrongParameterType)
		}
	}
}

// notFn is logical negation; like the other unary builtins it also
// applies elementwise to a List (the reference implementation shares the
// same UNARY_FUNC_TEMPLATE for `!`).
func notFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 1 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	x, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	switch v := x.(type) {
	case values.Number:
		return boolNum(v == 0), nil
	case *values.List:
		out := make([]float64, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = boolFloat(e == 0)
		}
		return values.NewList(out), nil
	default:
		return nil, verr.New(verr.WrongParameterType)
	}
}

// comparisons maps each spec §4.7 comparison builtin to its operator.
// Unlike the unary math functions these require both operands to be a
// bare Number (CMP_OPTR_TEMPLATE never broadcasts over a List).
var comparisons = map[string]values.BuiltinFunc{
	"eq":  cmp(func(a, b float64) bool { return a == b }),
	"neq": cmp(func(a, b float64) bool { return a != b }),
	"gt":  cmp(func(a, b float64) bool { return a > b }),
	"lt":  cmp(func(a, b float64) bool { return a < b }),
	"geq": cmp(func(a, b float64) bool { return a >= b }),
	"leq": cmp(func(a, b float64) bool { return a <= b }),
}

func cmp(op func(a, b float64) bool) values.BuiltinFunc {
	return func(e values.Evaluator, args []*ast.Node) (values.Value, error) {
		if len(args) != 2 {
			return nil, verr.New(verr.WrongNumberOfParams)
		}
		x, err := e.Eval(args[0])
		if err != nil {
			return nil, err
		}
		y, err := e.Eval(args[1])
		if err != nil {
			return nil, err
		}
		xn, ok := x.(values.Number)
		if !ok {
			return nil, verr.New(verr.WrongParameterType)
		}
		yn, ok := y.(values.Number)
		if !ok {
			return nil, verr.New(verr.WrongParameterType)
		}
		return boolNum(op(float64(xn), float64(yn))), nil
	}
}

// andFn short-circuits: y is only evaluated once x is known truthy.
func andFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 2 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	x, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	xn, ok := x.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	if xn == 0 {
		return values.Number(0), nil
	}
	y, err := e.Eval(args[1])
	if err != nil {
		return nil, err
	}
	yn, ok := y.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	return boolNum(yn != 0), nil
}

// orFn short-circuits: y is only evaluated once x is known falsy.
func orFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 2 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	x, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	xn, ok := x.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	if xn != 0 {
		return values.Number(1), nil
	}
	y, err := e.Eval(args[1])
	if err != nil {
		return nil, err
	}
	yn, ok := y.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	return boolNum(yn != 0), nil
}

// ifElseFn evaluates only the branch selected by cond, never both.
func ifElseFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 3 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	cond, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	cn, ok := cond.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	if cn != 0 {
		return e.Eval(args[1])
	}
	return e.Eval(args[2])
}

func lenFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 1 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	v, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := v.(*values.List)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	return values.Number(len(l.Elements)), nil
}

// assignFn returns a new list with the element at idx replaced by val —
// the list argument is never mutated in place (spec §3's value semantics).
func assignFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 3 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	lv, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := lv.(*values.List)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	out := append([]float64(nil), l.Elements...)

	iv, err := e.Eval(args[1])
	if err != nil {
		return nil, err
	}
	in, ok := iv.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	idx := int(math.Round(float64(in)))
	if idx < 0 || idx >= len(out) {
		return nil, verr.New(verr.IndexOutOfRange)
	}

	vv, err := e.Eval(args[2])
	if err != nil {
		return nil, err
	}
	vn, ok := vv.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	out[idx] = float64(vn)
	return values.NewList(out), nil
}

// appendFn appends a Number or extends with every element of a List.
func appendFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 2 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	lv, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := lv.(*values.List)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	out := append([]float64(nil), l.Elements...)

	v, err := e.Eval(args[1])
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case values.Number:
		out = append(out, float64(x))
	case *values.List:
		out = append(out, x.Elements...)
	default:
		return nil, verr.New(verr.WrongParameterType)
	}
	return values.NewList(out), nil
}

// sliceFn returns elements [st, ed) of list. st/ed are rounded
// half-away-from-zero, like every other index operation in this package.
func sliceFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 3 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	lv, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := lv.(*values.List)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}

	stv, err := e.Eval(args[1])
	if err != nil {
		return nil, err
	}
	stn, ok := stv.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	st := int(math.Round(float64(stn)))
	if st < 0 || st > len(l.Elements) {
		return nil, verr.New(verr.IndexOutOfRange)
	}

	edv, err := e.Eval(args[2])
	if err != nil {
		return nil, err
	}
	edn, ok := edv.(values.Number)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	ed := int(math.Round(float64(edn)))
	if ed < st || ed < 0 || ed > len(l.Elements) {
		return nil, verr.New(verr.IndexOutOfRange)
	}

	out := append([]float64(nil), l.Elements[st:ed]...)
	return values.NewList(out), nil
}

func reverseFn(e values.Evaluator, args []*ast.Node) (values.Value, error) {
	if len(args) != 1 {
		return nil, verr.New(verr.WrongNumberOfParams)
	}
	lv, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := lv.(*values.List)
	if !ok {
		return nil, verr.New(verr.WrongParameterType)
	}
	out := make([]float64, len(l.Elements))
	for i, x := range l.Elements {
		out[len(out)-1-i] = x
	}
	return values.NewList(out), nil
}

func boolNum(b bool) values.Number {
	if b {
		return 1
	}
	return 0
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
