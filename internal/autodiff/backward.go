package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Backward computes d(v)/d(node) for every node reachable from v.
//
// Seeds v's gradient with 1.0 and propagates it with ContinueBackward.
// Gradients accumulate on top of whatever the nodes already hold; zero them
// between independent passes.
//
// Example:
//
//	g := NewGraph()
//	a := g.Scalar(3.0)
//	b := a.Add(a)
//	_ = b.Backward()
//	a.Grad() // 2
func (v Value) Backward() error {
	v.SetGrad(1.0)
	return v.ContinueBackward()
}

// ContinueBackward propagates v's current gradient to its ancestors without
// seeding it first.
//
// Algorithm:
//  1. Depth-first discovery of every node reachable from v (post-order)
//  2. Walk the post-order in reverse, so each node comes after all of its
//     consumers and its gradient is final when its rule runs
//  3. Apply each node's local gradient rule exactly once
//
// The first *DomainError aborts the pass. Nodes processed before it keep the
// gradients they accumulated.
func (v Value) ContinueBackward() error {
	g := v.g
	g.node(v)

	order := g.topoOrder(v.id)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n := &g.nodes[id]
		if err := n.op.Backward(n.data, n.grad, g); err != nil {
			return fmt.Errorf("autodiff: backward through node %d (%s): %w", id, n.op.Kind, err)
		}
	}
	return nil
}

// TopologicalOrder returns the nodes reachable from root, operands before the
// nodes consuming them. The root is last.
func (g *Graph) TopologicalOrder(root Value) []Value {
	g.node(root)

	ids := g.topoOrder(root.id)
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = Value{g: g, id: id, gen: g.nodes[id].gen}
	}
	return out
}

// frame is one entry of the explicit DFS stack. Operands are copied in when
// the frame is pushed.
type frame struct {
	id       ops.NodeID
	operands [2]ops.NodeID
	n        int // number of operands
	next     int // index of the next operand to visit
}

func newFrame(g *Graph, id ops.NodeID) frame {
	operands, n := g.nodes[id].op.OperandIDs()
	return frame{id: id, operands: operands, n: n}
}

// topoOrder builds the depth-first post-order of the nodes reachable from
// root. The stack is explicit so deep graphs (long training expressions) do
// not grow the goroutine stack.
func (g *Graph) topoOrder(root ops.NodeID) []ops.NodeID {
	// Operands always precede their consumer, so ids never exceed root.
	visited := make([]bool, root+1)
	order := make([]ops.NodeID, 0, 16)

	visited[root] = true
	stack := []frame{newFrame(g, root)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < top.n {
			child := top.operands[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, newFrame(g, child))
			}
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}
	return order
}
