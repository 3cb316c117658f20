package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's outputs become the next module's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(g, 3, 4, rng),
//	    nn.NewLayer(g, 4, 1, rng),
//	)
//
//	out := model.Forward(nn.Inputs(g, []float64{2.0, 3.0, -1.0}))
//
// This is equivalent to:
//
//	h := layer1.Forward(xs)
//	out := layer2.Forward(h)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
//
// Parameters:
//   - modules: List of modules to chain together
//
// Returns a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
//
// An empty Sequential returns its inputs unchanged.
func (s *Sequential) Forward(xs []autodiff.Value) []autodiff.Value {
	out := xs
	for _, module := range s.modules {
		out = module.Forward(out)
	}
	return out
}

// Parameters returns all trainable parameters from all modules, in module
// order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic(fmt.Sprintf("Sequential.Module: index %d out of bounds [0, %d)", index, len(s.modules)))
	}
	return s.modules[index]
}
