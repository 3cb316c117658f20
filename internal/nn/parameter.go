package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Parameter represents a trainable scalar of a network.
//
// The underlying value is a leaf of the model's graph, created before any
// per-step mark so that it survives Graph.Release between iterations.
//
// Example:
//
//	w := nn.NewParameter("w", g.Scalar(0.3))
//	y := w.Value().Mul(x)
//	_ = y.Backward()
//	w.Grad() // x
type Parameter struct {
	name  string
	value autodiff.Value
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, v autodiff.Value) *Parameter {
	return &Parameter{
		name:  name,
		value: v,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the graph node holding the parameter.
func (p *Parameter) Value() autodiff.Value {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// Grad returns the gradient accumulated by the last backward passes.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}

// Update adds delta to the parameter value.
func (p *Parameter) Update(delta float64) {
	p.value.SetData(p.value.Data() + delta)
}
