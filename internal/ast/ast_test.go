package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "ADD", Add.String())
	assert.Equal(t, "PARAM_LIST", ParamList.String())
	assert.Equal(t, "UNKNOWN", Kind(999).String())
}

func Test_ShallowCopy_sharesChildrenButNotSlice(t *testing.T) {
	child := NewNumber(1)
	n := &Node{Kind: List, Children: []*Node{child}}

	cp := n.ShallowCopy()

	assert.Same(t, child, cp.Children[0])

	cp.Children[0] = NewNumber(2)
	assert.Same(t, child, n.Children[0], "mutating the copy's slice must not affect the original")
}

func Test_NewNumber_NewIdent(t *testing.T) {
	n := NewNumber(3.5)
	assert.Equal(t, Number, n.Kind)
	assert.Equal(t, 3.5, n.Num)

	id := NewIdent("x")
	assert.Equal(t, Ident, id.Kind)
	assert.Equal(t, "x", id.Ident)
}
