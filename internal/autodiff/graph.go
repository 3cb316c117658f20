package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// node is one scalar of the computation graph.
type node struct {
	data float64
	grad float64
	op   ops.Record
	gen  uint32 // generation the slot was written in
}

// Graph is an arena of scalar nodes built during the forward pass.
//
// Nodes are appended in construction order, so every operand has a smaller
// id than the node consuming it and the graph is acyclic by construction.
// Values are handles into the arena; records hold operand ids only.
//
// A Graph is not safe for concurrent use.
//
// Usage:
//
//	g := NewGraph()
//	x := g.Scalar(2.0)
//	y := x.Mul(x).AddScalar(1)
//	if err := y.Backward(); err != nil { ... }
//	fmt.Println(x.Grad()) // 4
type Graph struct {
	nodes []node
	gen   uint32
}

// Mark is a position in a Graph returned by Graph.Mark.
//
// A mark is only valid while every node before it is still the node that
// existed when the mark was taken.
type Mark struct {
	g   *Graph
	n   int
	gen uint32
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64),
		gen:   1,
	}
}

// Scalar creates a leaf node holding x.
func (g *Graph) Scalar(x float64) Value {
	return g.push(x, ops.Leaf())
}

// Scalars creates one leaf node per element of xs.
func (g *Graph) Scalars(xs ...float64) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = g.Scalar(x)
	}
	return vs
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Mark returns the current end of the arena.
func (g *Graph) Mark() Mark {
	return Mark{g: g, n: len(g.nodes), gen: g.gen}
}

// Release drops every node created after m.
//
// Nodes created before the mark (typically model parameters) stay valid, and
// so do their gradients. Handles to released nodes become stale; using one
// panics. A training loop calls Release once per step so the arena does not
// grow with the number of iterations.
//
// Release panics when m belongs to another graph or went stale because an
// earlier Release cut the arena below it.
func (g *Graph) Release(m Mark) {
	if m.g != g {
		panic("Graph.Release: mark belongs to a different graph")
	}
	if m.n > len(g.nodes) {
		panic(fmt.Sprintf("Graph.Release: stale mark %d, graph has %d nodes", m.n, len(g.nodes)))
	}
	// The node just before the mark was rebuilt after the mark was taken.
	if m.n > 0 && g.nodes[m.n-1].gen > m.gen {
		panic(fmt.Sprintf("Graph.Release: stale mark %d (generation %d)", m.n, m.gen))
	}
	if m.n == len(g.nodes) {
		return
	}
	g.nodes = g.nodes[:m.n]
	g.gen++
}

// ZeroGrad resets the gradient of every live node.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// Data implements ops.Store.
func (g *Graph) Data(id ops.NodeID) float64 {
	return g.nodes[id].data
}

// Accumulate implements ops.Store.
func (g *Graph) Accumulate(id ops.NodeID, delta float64) {
	g.nodes[id].grad += delta
}

// push appends a node and returns its handle.
func (g *Graph) push(data float64, op ops.Record) Value {
	id := ops.NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{data: data, op: op, gen: g.gen})
	return Value{g: g, id: id, gen: g.gen}
}

// node resolves a handle, panicking on stale or foreign handles.
func (g *Graph) node(v Value) *node {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	if v.g != g {
		panic("autodiff: values belong to different graphs")
	}
	if int(v.id) >= len(g.nodes) || g.nodes[v.id].gen != v.gen {
		panic(fmt.Sprintf("autodiff: stale value (node %d was released)", v.id))
	}
	return &g.nodes[v.id]
}
