package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLPConfig holds the shape of a multi-layer perceptron.
type MLPConfig struct {
	InputSize  int   // Number of inputs of the first layer
	LayerSizes []int // Output size of each layer, last one is the network output
	Seed       int64 // Initialization seed (0: random)
}

// MLP is a multi-layer perceptron.
//
//	NewMLP(g, MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}})
//
// has 3 inputs, two hidden layers of 4 neurons and one output neuron.
// The layers are chained by a Sequential.
type MLP struct {
	config MLPConfig
	layers []*Layer
	seq    *Sequential
}

// NewMLP creates a multi-layer perceptron.
//
// All parameters are leaves of g, drawn from U(-1, 1) with a generator
// seeded by cfg.Seed.
//
// Parameters:
//   - g: Graph that owns the parameters
//   - cfg: Input size, layer sizes and seed
//
// Returns a new MLP. Each layer contributes outputs*(inputs+1) parameters.
//
// Example:
//
//	g := autodiff.NewGraph()
//	mlp := nn.NewMLP(g, nn.MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}, Seed: 1})
//	len(mlp.Parameters()) // 41
func NewMLP(g *autodiff.Graph, cfg MLPConfig) *MLP {
	if len(cfg.LayerSizes) == 0 {
		panic("NewMLP: at least one layer size is required")
	}

	rng := newRand(cfg.Seed)
	sizes := append([]int{cfg.InputSize}, cfg.LayerSizes...)
	layers := make([]*Layer, len(cfg.LayerSizes))
	seq := NewSequential()
	for i := range layers {
		layers[i] = NewLayer(g, sizes[i], sizes[i+1], rng)
		seq.Add(layers[i])
	}

	return &MLP{
		config: cfg,
		layers: layers,
		seq:    seq,
	}
}

// Forward feeds xs through every layer and returns the last layer's outputs.
func (m *MLP) Forward(xs []autodiff.Value) []autodiff.Value {
	if len(xs) != m.config.InputSize {
		panic(fmt.Sprintf("MLP.Forward: expected %d inputs, got %d", m.config.InputSize, len(xs)))
	}
	return m.seq.Forward(xs)
}

// Parameters returns the parameters of every layer, input layer first.
func (m *MLP) Parameters() []*Parameter {
	return m.seq.Parameters()
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}
