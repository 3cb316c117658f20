// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// A Graph records every scalar built during the forward pass. Backward walks
// the nodes reachable from a root in reverse topological order and
// accumulates exact gradients, including for values used more than once.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Scalar(-2.0)
//	    b := g.Scalar(3.0)
//	    f := a.Mul(b).Mul(a.Add(b))
//
//	    if err := f.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(a.Grad(), b.Grad()) // -3 -8
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Graph is the arena of scalar nodes.
type Graph = autodiff.Graph

// Mark is a position in a Graph, see Graph.Release.
type Mark = autodiff.Mark

// Value is a handle to one scalar node.
type Value = autodiff.Value

// DomainError is returned when a real power is undefined
// (negative base, non-integral exponent).
type DomainError = ops.DomainError

// Record describes how a node was derived from its operands.
type Record = ops.Record

// Kind identifies the operation of a Record.
type Kind = ops.Kind

// NodeID addresses a node inside a Graph.
type NodeID = ops.NodeID

// Operation kinds.
const (
	KindLeaf     = ops.KindLeaf
	KindAdd      = ops.KindAdd
	KindMultiply = ops.KindMultiply
	KindPower    = ops.KindPower
	KindTanh     = ops.KindTanh
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Sum returns init + vs[0] + vs[1] + ..., built left to right.
func Sum(init Value, vs ...Value) Value {
	return autodiff.Sum(init, vs...)
}
