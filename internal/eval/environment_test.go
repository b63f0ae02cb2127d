package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/vela/internal/values"
)

func Test_Environment_GetSet(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.Get("x")
	assert.False(t, ok)

	env.Set("x", values.Number(5))
	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, values.Number(5), v)
}

func Test_Environment_Names_sorted(t *testing.T) {
	env := NewEnvironment()
	env.Set("z", values.Number(1))
	env.Set("a", values.Number(2))
	env.Set("m", values.Number(3))

	assert.Equal(t, []string{"a", "m", "z"}, env.Names())
}

func Test_Environment_Clear(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", values.Number(5))
	env.Clear()
	_, ok := env.Get("x")
	assert.False(t, ok)
}

func Test_Environment_Snapshot_isIndependentCopy(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", values.Number(1))

	snap := env.Snapshot()
	env.Set("y", values.Number(2))

	_, ok := snap["y"]
	assert.False(t, ok, "snapshot must not see bindings added after it was taken")
}
