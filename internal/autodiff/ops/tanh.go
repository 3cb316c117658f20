package ops

// Tanh returns the record of output = tanh(x).
func Tanh(x NodeID) Record {
	return Record{Kind: KindTanh, X: x}
}

// tanhBackward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), and tanh(x) is the output we already have:
// grad_x = (1 - output²) * grad.
func tanhBackward(r Record, out, grad float64, s Store) {
	s.Accumulate(r.X, (1-out*out)*grad)
}
