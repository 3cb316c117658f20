package ops

import (
	"fmt"
	"math"
)

// DomainError reports a real power that is undefined: a negative base raised
// to a non-integral exponent.
type DomainError struct {
	Base     float64
	Exponent float64
}

// Error implements error.
func (e *DomainError) Error() string {
	return fmt.Sprintf("pow: %g ** %g is undefined over the reals", e.Base, e.Exponent)
}

// Power returns the record of output = x^n.
func Power(x NodeID, n float64) Record {
	return Record{Kind: KindPower, X: x, Exponent: n}
}

// Pow computes base^exponent, failing with *DomainError instead of
// returning NaN for a negative base and a non-integral exponent.
func Pow(base, exponent float64) (float64, error) {
	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, &DomainError{Base: base, Exponent: exponent}
	}
	return math.Pow(base, exponent), nil
}

// powBackward applies the power rule: grad_x = n * x^(n-1) * grad.
//
// x is read at backward time, so a base that turned negative after the
// forward pass (e.g. a parameter update) is reported here.
func powBackward(r Record, grad float64, s Store) error {
	n := r.Exponent
	p, err := Pow(s.Data(r.X), n-1)
	if err != nil {
		return err
	}
	s.Accumulate(r.X, n*p*grad)
	return nil
}
