package ops

// Add returns the record of output = x + y.
func Add(x, y NodeID) Record {
	return Record{Kind: KindAdd, X: x, Y: y}
}

// addBackward: d(x+y)/dx = d(x+y)/dy = 1, so the gradient flows unchanged to
// both operands. When x == y the node receives both contributions.
func addBackward(r Record, grad float64, s Store) {
	s.Accumulate(r.X, grad)
	s.Accumulate(r.Y, grad)
}
