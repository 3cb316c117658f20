package ops

// Multiply returns the record of output = x * y.
func Multiply(x, y NodeID) Record {
	return Record{Kind: KindMultiply, X: x, Y: y}
}

// mulBackward applies the product rule:
//   - grad_x = y * grad
//   - grad_y = x * grad
func mulBackward(r Record, grad float64, s Store) {
	x, y := s.Data(r.X), s.Data(r.Y)
	s.Accumulate(r.X, y*grad)
	s.Accumulate(r.Y, x*grad)
}
