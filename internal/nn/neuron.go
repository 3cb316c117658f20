package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(bias + Σ wᵢxᵢ) over a fixed number of inputs.
//
// Weights and bias are drawn from U(-1, 1).
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron over nin inputs with parameters in g.
func NewNeuron(g *autodiff.Graph, nin int, rng *rand.Rand) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("NewNeuron: input size must be positive, got %d", nin))
	}

	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = Uniform(g, fmt.Sprintf("w%d", i), rng)
	}

	return &Neuron{
		weights: weights,
		bias:    Uniform(g, "b", rng),
	}
}

// Forward computes the activation for one input row.
//
// The sum starts at the bias and adds each wᵢxᵢ in order.
func (n *Neuron) Forward(xs []autodiff.Value) autodiff.Value {
	if len(xs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(xs)))
	}

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(xs[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}
