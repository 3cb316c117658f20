// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feed-forward network over scalar values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(bias + Σ wᵢxᵢ)
//   - Layer: neurons sharing the same inputs
//   - Sequential: modules chained input to output
//   - MLP: a Sequential of layers
//   - MSELoss: sum of squared errors
//   - Module interface, Parameter
//
// # Basic Usage
//
//	g := autodiff.NewGraph()
//	mlp := nn.NewMLP(g, nn.MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}})
//	out := mlp.Forward(nn.Inputs(g, []float64{2.0, 3.0, -1.0}))
package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all network modules.
type Module = nn.Module

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, v autodiff.Value) *Parameter {
	return nn.NewParameter(name, v)
}

// Neuron computes tanh(bias + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron over nin inputs.
func NewNeuron(g *autodiff.Graph, nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, nin, rng)
}

// Layer is a row of neurons.
type Layer = nn.Layer

// NewLayer creates a layer of outputs neurons over inputs inputs.
func NewLayer(g *autodiff.Graph, inputs, outputs int, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, inputs, outputs, rng)
}

// Sequential chains modules, each one's outputs feeding the next.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// MLPConfig holds the shape of an MLP.
type MLPConfig = nn.MLPConfig

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	mlp := nn.NewMLP(g, nn.MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}})
//	len(mlp.Parameters()) // 41
func NewMLP(g *autodiff.Graph, cfg MLPConfig) *MLP {
	return nn.NewMLP(g, cfg)
}

// MSELoss returns Σ (predᵢ - targetᵢ)².
func MSELoss(preds []autodiff.Value, targets []float64) autodiff.Value {
	return nn.MSELoss(preds, targets)
}

// Inputs wraps a row of raw numbers as leaves of g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return nn.Inputs(g, xs)
}

// ZeroGrad clears the gradients of params.
func ZeroGrad(params []*Parameter) {
	nn.ZeroGrad(params)
}
