package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/vela/internal/eval"
	"github.com/velalang/vela/internal/values"
	"github.com/velalang/vela/internal/verr"
)

func newSession(t *testing.T) *eval.Context {
	t.Helper()
	c := eval.New(nil)
	c.Init(func(env *eval.Environment) { Install(env) })
	return c
}

func Test_unaryMath_scalarAndList(t *testing.T) {
	c := newSession(t)

	v, err := c.Exec("abs(-3)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(3), v)

	v, err = c.Exec("abs([-1, 2, -3])")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", v.String())
}

func Test_not_logicalNegation(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("not(0)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(1), v)

	v, err = c.Exec("not(5)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(0), v)
}

func Test_comparisons(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("gt(5, 3)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(1), v)

	v, err = c.Exec("eq(5, 3)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(0), v)
}

func Test_and_or_shortCircuit(t *testing.T) {
	c := newSession(t)
	_, err := c.Exec("undefinedVar")
	require.Error(t, err)

	// and(0, undefinedVar) must not evaluate the second argument.
	v, err := c.Exec("and(0, undefinedVar)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(0), v)

	// or(1, undefinedVar) must not evaluate the second argument.
	v, err = c.Exec("or(1, undefinedVar)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(1), v)
}

func Test_ifElse_evaluatesOnlyChosenBranch(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("if_else(1, 42, undefinedVar)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(42), v)

	v, err = c.Exec("if_else(0, undefinedVar, 7)")
	require.NoError(t, err)
	assert.Equal(t, values.Number(7), v)
}

func Test_len(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("len([1, 2, 3, 4])")
	require.NoError(t, err)
	assert.Equal(t, values.Number(4), v)

	_, err = c.Exec("len(5)")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.WrongParameterType))
}

func Test_assign_returnsNewListLeavesOriginalUntouched(t *testing.T) {
	c := newSession(t)
	_, err := c.Exec("xs = [1, 2, 3]")
	require.NoError(t, err)

	v, err := c.Exec("assign(xs, 1, 99)")
	require.NoError(t, err)
	assert.Equal(t, "[1, 99, 3]", v.String())

	orig, _ := c.Env.Get("xs")
	assert.Equal(t, "[1, 2, 3]", orig.String())
}

func Test_assign_indexOutOfRange(t *testing.T) {
	c := newSession(t)
	_, err := c.Exec("assign([1, 2], 5, 0)")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.IndexOutOfRange))
}

func Test_append_numberAndList(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("append([1, 2], 3)")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", v.String())

	v, err = c.Exec("append([1, 2], [3, 4])")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4]", v.String())
}

func Test_slice(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("slice([1, 2, 3, 4, 5], 1, 3)")
	require.NoError(t, err)
	assert.Equal(t, "[2, 3]", v.String())
}

func Test_slice_outOfRange(t *testing.T) {
	c := newSession(t)
	_, err := c.Exec("slice([1, 2, 3], 0, 10)")
	require.Error(t, err)
	assert.True(t, verr.Is(err, verr.IndexOutOfRange))
}

func Test_reverse(t *testing.T) {
	c := newSession(t)
	v, err := c.Exec("reverse([1, 2, 3])")
	require.NoError(t, err)
	assert.Equal(t, "[3, 2, 1]", v.String())
}
