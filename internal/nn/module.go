// Package nn implements a small feed-forward network on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Parameter: a named trainable scalar
//   - Neuron: tanh(bias + Σ wᵢxᵢ)
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: layers chained input to output
//   - MSELoss: sum of squared errors
//
// Everything here is composition over autodiff.Value; the network adds no
// graph semantics of its own.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all network components.
//
// Modules can be composed:
//
//	mlp := nn.NewMLP(g, nn.MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}})
//	out := mlp.Forward(nn.Inputs(g, []float64{2, 3, -1}))
type Module interface {
	// Forward computes the outputs of the module for the given inputs.
	Forward(xs []autodiff.Value) []autodiff.Value

	// Parameters returns all trainable parameters, in a stable order.
	Parameters() []*Parameter
}

// Inputs wraps a row of raw numbers as leaves of g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return g.Scalars(xs...)
}

// ZeroGrad clears the gradients of params.
//
// The engine never resets gradients; call this before every backward pass
// of a training step.
func ZeroGrad(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
