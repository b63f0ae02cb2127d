package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/vela/internal/ast"
	"github.com/velalang/vela/internal/values"
	"github.com/velalang/vela/internal/verr"
)

// testInstall binds only what these tests exercise directly — the "if_else"
// and "leq" builtins used by the factorial scenario — so this package's
// tests never need to import internal/builtins.
func testInstall(env *Environment) {
	env.Set("if_else", &values.Lambda{
		Params: []string{"cond", "t", "f"},
		Name:   "if_else",
		Fn: func(e values.Evaluator, args []*ast.Node) (values.Value, error) {
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
		},
	})
	env.Set("leq", &values.Lambda{
		Params: []string{"x", "y"},
		Name:   "leq",
		Fn: func(e values.Evaluator, args []*ast.Node) (values.Value, error) {
			x, err := e.Eval(args[0])
			if err != nil {
				return nil, err
			}
			y, err := e.Eval(args[1])
			if err != nil {
				return nil, err
			}
			xn, _ := x.(values.Number)
			yn, _ := y.(values.Number)
			if xn <= yn {
				return values.Number(1), nil
			}
			return values.Number(0), nil
		},
	})
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c := New(nil)
	c.Init(testInstall)
	return c
}

func Test_Exec_arithmeticPrecedence(t *testing.T) {
	c := newTestContext(t)
	v, err := c.Exec("1 + 2*3^2")
	require.NoError(t, err)
	assert.Equal(t, values.Number(19), v)
}

func Test_Exec_ansRebinding_onlyOnNonVoid(t *testing.T) {
	c := newTestContext(t)

	_, err := c.Exec("3 + 4")
	require.NoError(t, err)
	ans, ok := c.Env.Get("ans")
	require.True(t, ok)
	assert.Equal(t, values.Number(7), ans)

	// An assignment produces Void and must not change ans.
	_, err = c.Exec("x = 100")
	require.NoError(t, err)
	ans, ok = c.Env.Get("ans")
	require.True(t, ok)
	assert.Equal(t, values.Number(7), ans)
}

func Test_Exec_identifierUndefined(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("nope")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.IdentifierUndefined))
}

func Test_Exec_assignThenReference(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("x = 5")
	require.NoError(t, err)
	v, err := c.Exec("x + 1")
	require.NoError(t, err)
	assert.Equal(t, values.Number(6), v)
}

func Test_Exec_listBroadcasting(t *testing.T) {
	c := newTestContext(t)
	v, err := c.Exec("[1, 2, 3] * 2")
	require.NoError(t, err)
	l, ok := v.(*values.List)
	require.True(t, ok)
	assert.Equal(t, []float64{2, 4, 6}, l.Elements)
}

func Test_Exec_listList_differentLengths(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("[1, 2] + [1, 2, 3]")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.DifferentListLengths))
}

func Test_Exec_nonCommutative_preservesOperandOrder(t *testing.T) {
	c := newTestContext(t)
	v, err := c.Exec("10 - [1, 2, 3]")
	require.NoError(t, err)
	l := v.(*values.List)
	assert.Equal(t, []float64{9, 8, 7}, l.Elements)
}

func Test_Exec_index_roundHalfAwayFromZero(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("xs = [10, 20, 30, 40]")
	require.NoError(t, err)
	v, err := c.Exec("xs[1.5]")
	require.NoError(t, err)
	assert.Equal(t, values.Number(30), v)
}

func Test_Exec_indexOutOfRange(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("[1,2,3][5]")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.IndexOutOfRange))
}

func Test_Exec_objectNotCallable(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("x = 5")
	require.NoError(t, err)
	_, err = c.Exec("x(1)")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.ObjectNotCallable))
}

func Test_Exec_objectNotList(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("5[0]")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.ObjectNotList))
}

func Test_Exec_wrongNumberOfParams(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("double(x) = x*2")
	require.NoError(t, err)
	_, err = c.Exec("double(1, 2)")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.WrongNumberOfParams))
}

func Test_Exec_userLambda_substitution(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("square(x) = x*x")
	require.NoError(t, err)
	v, err := c.Exec("square(5)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(25), v)
}

func Test_Exec_higherOrder_passLambdaAsArgument(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("apply(f, x) = f(x)")
	require.NoError(t, err)
	_, err = c.Exec("addOne(x) = x + 1")
	require.NoError(t, err)
	v, err := c.Exec("apply(addOne, 9)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(10), v)
}

func Test_Exec_innerLambdaMasksOuterParameter(t *testing.T) {
	c := newTestContext(t)
	// ident's own body is a lambda literal whose parameter reuses the
	// outer parameter's name. Substituting ident's x must not reach
	// inside the nested lambda's body, where x refers to its own
	// parameter instead.
	_, err := c.Exec("ident(x) = @(x){x}")
	require.NoError(t, err)
	inner, err := c.Exec("ident(5)")
	require.NoError(t, err)
	lam, ok := inner.(*values.Lambda)
	require.True(t, ok)

	v, err := c.call(lam, []*ast.Node{ast.NewNumber(7)})
	require.NoError(t, err)
	assert.Equal(t, values.Number(7), v)
}

func Test_Exec_lambdaLiteral_higherOrder(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("twice(f, x) = f(f(x))")
	require.NoError(t, err)
	v, err := c.Exec("twice(@(y){y*2}, 3)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(12), v)
}

func Test_Exec_recursiveFactorialViaIfElse(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("fact(n) = if_else(leq(n, 1), 1, n * fact(n - 1))")
	require.NoError(t, err)
	v, err := c.Exec("fact(5)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(120), v)
}

func Test_Exec_listMemberNotDecimal(t *testing.T) {
	c := newTestContext(t)
	_, err := c.Exec("[1, @(x){x}]")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.ListMemberNotDecimal))
}
