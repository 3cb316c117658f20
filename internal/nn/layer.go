package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a row of neurons reading the same inputs.
//
// A layer over `inputs` with `outputs` neurons has outputs*(inputs+1)
// parameters.
type Layer struct {
	inputs  int
	neurons []*Neuron
}

// NewLayer creates a layer of fully connected tanh neurons.
//
// Parameters:
//   - g: Graph that owns the parameters
//   - inputs: Number of inputs of every neuron
//   - outputs: Number of neurons (and outputs)
//   - rng: Source for U(-1, 1) initialization
//
// Returns a new Layer with outputs*(inputs+1) parameters.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLayer(g, 3, 4, rng)
//	len(layer.Parameters()) // 16
func NewLayer(g *autodiff.Graph, inputs, outputs int, rng *rand.Rand) *Layer {
	if outputs <= 0 {
		panic(fmt.Sprintf("NewLayer: output size must be positive, got %d", outputs))
	}

	neurons := make([]*Neuron, outputs)
	for i := range neurons {
		neurons[i] = NewNeuron(g, inputs, rng)
	}
	return &Layer{
		inputs:  inputs,
		neurons: neurons,
	}
}

// Forward evaluates every neuron on xs.
func (l *Layer) Forward(xs []autodiff.Value) []autodiff.Value {
	if len(xs) != l.inputs {
		panic(fmt.Sprintf("Layer.Forward: expected %d inputs, got %d", l.inputs, len(xs)))
	}

	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(xs)
	}
	return out
}

// Parameters returns the parameters of every neuron, neuron by neuron.
func (l *Layer) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(l.neurons)*(l.inputs+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}
