// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Graph: arena recording every node built during the forward pass
//   - Value: handle to one node (forward value, gradient, operation record)
//   - ops.Record: how a node was produced, with its local gradient rule
//   - Backward: topological traversal applying the rules from a root
//
// Usage:
//
//	g := autodiff.NewGraph()
//	a := g.Scalar(-2.0)
//	b := g.Scalar(3.0)
//	f := a.Mul(b).Mul(a.Add(b))
//	_ = f.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // -3 -8
package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// DomainError is returned when a real power is undefined.
type DomainError = ops.DomainError

// Value is a handle to a scalar node of a Graph.
//
// Values are cheap to copy. The zero Value is invalid.
type Value struct {
	g   *Graph
	id  ops.NodeID
	gen uint32
}

// Graph returns the graph owning v.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the arena index of v.
func (v Value) ID() ops.NodeID {
	return v.id
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.g.node(v).data
}

// SetData overwrites the forward value.
//
// This exists for gradient-descent updates of parameters between training
// steps. Nodes computed from v are not recomputed.
func (v Value) SetData(x float64) {
	v.g.node(v).data = x
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.g.node(v).grad
}

// SetGrad overwrites the accumulated gradient.
func (v Value) SetGrad(grad float64) {
	v.g.node(v).grad = grad
}

// ZeroGrad resets the accumulated gradient to 0.
//
// Gradients are never reset by the engine; callers zero them between
// independent backward passes.
func (v Value) ZeroGrad() {
	v.g.node(v).grad = 0
}

// Op returns the operation record that produced v.
func (v Value) Op() ops.Record {
	return v.g.node(v).op
}

// IsLeaf reports whether v is an input node.
func (v Value) IsLeaf() bool {
	return v.Op().Kind == ops.KindLeaf
}

// String formats v as Value(data=..., grad=...).
func (v Value) String() string {
	n := v.g.node(v)
	return fmt.Sprintf("Value(data=%g, grad=%g)", n.data, n.grad)
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	a, b := v.g.node(v), v.g.node(o)
	return v.g.push(a.data+b.data, ops.Add(v.id, o.id))
}

// AddScalar returns v + c, wrapping c in a leaf.
func (v Value) AddScalar(c float64) Value {
	return v.Add(v.g.Scalar(c))
}

// Mul returns v * o.
func (v Value) Mul(o Value) Value {
	a, b := v.g.node(v), v.g.node(o)
	return v.g.push(a.data*b.data, ops.Multiply(v.id, o.id))
}

// MulScalar returns v * c, wrapping c in a leaf.
func (v Value) MulScalar(c float64) Value {
	return v.Mul(v.g.Scalar(c))
}

// Neg returns v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v + (-o).
func (v Value) Sub(o Value) Value {
	return v.Add(o.Neg())
}

// SubScalar returns v - c, wrapping c in a leaf.
func (v Value) SubScalar(c float64) Value {
	return v.Sub(v.g.Scalar(c))
}

// Rsub returns c - v, wrapping c in a leaf.
func (v Value) Rsub(c float64) Value {
	return v.g.Scalar(c).Sub(v)
}

// Div returns v * o^-1.
//
// A zero divisor follows IEEE semantics (±Inf or NaN).
func (v Value) Div(o Value) Value {
	return v.Mul(o.PowInt(-1))
}

// DivScalar returns v / c, wrapping c in a leaf.
func (v Value) DivScalar(c float64) Value {
	return v.Div(v.g.Scalar(c))
}

// Rdiv returns c / v, wrapping c in a leaf.
func (v Value) Rdiv(c float64) Value {
	return v.g.Scalar(c).Div(v)
}

// Pow returns v^n.
//
// Returns a *DomainError when v is negative and n is not integral.
func (v Value) Pow(n float64) (Value, error) {
	x, err := ops.Pow(v.g.node(v).data, n)
	if err != nil {
		return Value{}, fmt.Errorf("autodiff: forward of node %d: %w", v.id, err)
	}
	return v.g.push(x, ops.Power(v.id, n)), nil
}

// PowInt returns v^n for an integral exponent, which is always defined.
func (v Value) PowInt(n int) Value {
	e := float64(n)
	return v.g.push(math.Pow(v.g.node(v).data, e), ops.Power(v.id, e))
}

// Tanh returns tanh(v).
func (v Value) Tanh() Value {
	return v.g.push(math.Tanh(v.g.node(v).data), ops.Tanh(v.id))
}

// Sum returns init + vs[0] + vs[1] + ..., built left to right.
func Sum(init Value, vs ...Value) Value {
	out := init
	for _, v := range vs {
		out = out.Add(v)
	}
	return out
}
