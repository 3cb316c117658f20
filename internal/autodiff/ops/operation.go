// Package ops defines the operation records of the scalar computation graph
// and their local gradient rules.
//
// Every node of a graph carries exactly one Record describing how its value
// was produced:
//   - Leaf: raw input or parameter, no operands
//   - Add: x + y (d/dx = 1, d/dy = 1)
//   - Multiply: x * y (d/dx = y, d/dy = x)
//   - Power: x^n for a constant n (d/dx = n * x^(n-1))
//   - Tanh: tanh(x) (d/dx = 1 - tanh²(x))
//
// Records reference operands by NodeID and never own them. The local rules
// are dispatched by a single switch over Kind in Record.Backward.
package ops

import "fmt"

// NodeID addresses a node inside a graph arena.
type NodeID int

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds.
const (
	KindLeaf Kind = iota
	KindAdd
	KindMultiply
	KindPower
	KindTanh
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindAdd:
		return "Add"
	case KindMultiply:
		return "Multiply"
	case KindPower:
		return "Power"
	case KindTanh:
		return "Tanh"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Record describes how a node was derived from its operands.
//
// Y is only meaningful for binary kinds, Exponent only for KindPower.
// The zero Record is a Leaf.
type Record struct {
	Kind     Kind
	X        NodeID
	Y        NodeID
	Exponent float64
}

// Store gives the gradient rules access to operand values and gradients.
// The graph arena implements it.
type Store interface {
	// Data returns the forward value of a node.
	Data(id NodeID) float64

	// Accumulate adds delta to the gradient of a node.
	Accumulate(id NodeID, delta float64)
}

// Leaf returns the no-op record of an input node.
func Leaf() Record {
	return Record{Kind: KindLeaf}
}

// Operands returns the ids this record refers to, in operand order.
// Both entries are returned when a binary op uses the same node twice.
func (r Record) Operands() []NodeID {
	ids, n := r.OperandIDs()
	if n == 0 {
		return nil
	}
	return ids[:n:n]
}

// OperandIDs is the allocation-free form of Operands: the first n entries of
// ids are the operands.
func (r Record) OperandIDs() (ids [2]NodeID, n int) {
	switch r.Kind {
	case KindAdd, KindMultiply:
		return [2]NodeID{r.X, r.Y}, 2
	case KindPower, KindTanh:
		return [2]NodeID{r.X}, 1
	default:
		return ids, 0
	}
}

// Backward applies the local gradient rule of this record.
//
// out is the forward value of the node owning the record, grad its upstream
// gradient. Contributions are accumulated into the operands through s.
// Only KindPower can fail, with a *DomainError.
func (r Record) Backward(out, grad float64, s Store) error {
	switch r.Kind {
	case KindLeaf:
		return nil
	case KindAdd:
		addBackward(r, grad, s)
		return nil
	case KindMultiply:
		mulBackward(r, grad, s)
		return nil
	case KindPower:
		return powBackward(r, grad, s)
	case KindTanh:
		tanhBackward(r, out, grad, s)
		return nil
	default:
		panic(fmt.Sprintf("ops: unknown operation kind %d", uint8(r.Kind)))
	}
}
