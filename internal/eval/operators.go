package eval

import (
	"math"

	"github.com/velalang/vela/internal/values"
	"github.com/velalang/vela/internal/verr"
)

// negate implements unary minus, elementwise over a List (spec §4.3,
// ported from the reference implementation's Operators.inl NEG case: every
// element is individually negated, IEEE-754 handles -0/NaN on its own).
func negate(v values.Value) (values.Value, error) {
	switch x := v.(type) {
	case values.Number:
		return -x, nil
	case *values.List:
		out := make([]float64, len(x.Elements))
		for i, e := range x.Elements {
			out[i] = -e
		}
		return values.NewList(out), nil
	default:
		return nil, verr.New(verr.WrongOperandType)
	}
}

// scalarOp is one of the five commutative-shape-agnostic elementwise
// binary ops; op receives (lhs, rhs) in that order so non-commutative
// operators (Sub, Div, Pow) preserve operand order under broadcasting, as
// the original Operators.inl does for every List/Number and Number/List
// combination.
type scalarOp func(a, b float64) float64

// binOp applies op to two Values under the broadcasting rules of spec
// §4.3: Number/Number produces a Number; any combination involving a List
// broadcasts the scalar (if present) against every element, and List/List
// requires equal length and combines elementwise preserving order.
func binOp(lhs, rhs values.Value, op scalarOp) (values.Value, error) {
	switch l := lhs.(type) {
	case values.Number:
		switch r := rhs.(type) {
		case values.Number:
			return values.Number(op(float64(l), float64(r))), nil
		case *values.List:
			out := make([]float64, len(r.Elements))
			for i, e := range r.Elements {
				out[i] = op(float64(l), e)
			}
			return values.NewList(out), nil
		default:
			return nil, verr.New(verr.WrongOperandType)
		}
	case *values.List:
		switch r := rhs.(type) {
		case values.Number:
			out := make([]float64, len(l.Elements))
			for i, e := range l.Elements {
				out[i] = op(e, float64(r))
			}
			return values.NewList(out), nil
		case *values.List:
			if len(l.Elements) != len(r.Elements) {
				return nil, verr.New(verr.DifferentListLengths)
			}
			out := make([]float64, len(l.Elements))
			for i := range l.Elements {
				out[i] = op(l.Elements[i], r.Elements[i])
			}
			return values.NewList(out), nil
		default:
			return nil, verr.New(verr.WrongOperandType)
		}
	default:
		return nil, verr.New(verr.WrongOperandType)
	}
}

func addOp(a, b float64) float64 { return a + b }
func subOp(a, b float64) float64 { return a - b }
func mulOp(a, b float64) float64 { return a * b }
func divOp(a, b float64) float64 { return a / b }
func powOp(a, b float64) float64 { return math.Pow(a, b) }
