package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// numericalGradient computes df/dx at x using central differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    epsilon,
	})
}

// build evaluates an expression on a fresh graph and returns the input leaf
// together with the output.
type build func(g *autodiff.Graph, x float64) (autodiff.Value, autodiff.Value)

func checkGradient(t *testing.T, fn build, at float64) {
	t.Helper()

	g := autodiff.NewGraph()
	x, y := fn(g, at)
	require.NoError(t, y.Backward())

	f := func(v float64) float64 {
		_, out := fn(autodiff.NewGraph(), v)
		return out.Data()
	}
	numerical := numericalGradient(f, at, 1e-6)

	assert.InEpsilon(t, numerical, x.Grad(), 1e-5,
		"autodiff grad %g differs from numerical grad %g", x.Grad(), numerical)
}

// TestNumericalGradient_Polynomial tests f(x) = x³ - 2x² + x.
func TestNumericalGradient_Polynomial(t *testing.T) {
	checkGradient(t, func(g *autodiff.Graph, v float64) (autodiff.Value, autodiff.Value) {
		x := g.Scalar(v)
		y := x.PowInt(3).Sub(x.PowInt(2).MulScalar(2)).Add(x)
		return x, y
	}, 2.0)
}

// TestNumericalGradient_Rational tests f(x) = (x + 2) / (x² + 1).
func TestNumericalGradient_Rational(t *testing.T) {
	checkGradient(t, func(g *autodiff.Graph, v float64) (autodiff.Value, autodiff.Value) {
		x := g.Scalar(v)
		y := x.AddScalar(2).Div(x.Mul(x).AddScalar(1))
		return x, y
	}, 0.7)
}

// TestNumericalGradient_TanhComposite tests f(x) = tanh(x·tanh(x)) - 1/x.
func TestNumericalGradient_TanhComposite(t *testing.T) {
	checkGradient(t, func(g *autodiff.Graph, v float64) (autodiff.Value, autodiff.Value) {
		x := g.Scalar(v)
		y := x.Mul(x.Tanh()).Tanh().Sub(x.Rdiv(1))
		return x, y
	}, 1.3)
}

// TestNumericalGradient_FractionalPower tests f(x) = sqrt(x) * x.
func TestNumericalGradient_FractionalPower(t *testing.T) {
	checkGradient(t, func(g *autodiff.Graph, v float64) (autodiff.Value, autodiff.Value) {
		x := g.Scalar(v)
		r, err := x.Pow(0.5)
		if err != nil {
			t.Fatal(err)
		}
		return x, r.Mul(x)
	}, 2.25)
}

// TestNumericalGradient_TwoInputs checks both partials of f(a, b) = a·b + tanh(a)/b.
func TestNumericalGradient_TwoInputs(t *testing.T) {
	eval := func(g *autodiff.Graph, a, b float64) (autodiff.Value, autodiff.Value, autodiff.Value) {
		x, y := g.Scalar(a), g.Scalar(b)
		return x, y, x.Mul(y).Add(x.Tanh().Div(y))
	}

	g := autodiff.NewGraph()
	x, y, out := eval(g, 0.4, -1.7)
	require.NoError(t, out.Backward())

	fa := func(v float64) float64 {
		_, _, o := eval(autodiff.NewGraph(), v, -1.7)
		return o.Data()
	}
	fb := func(v float64) float64 {
		_, _, o := eval(autodiff.NewGraph(), 0.4, v)
		return o.Data()
	}

	assert.InEpsilon(t, numericalGradient(fa, 0.4, 1e-6), x.Grad(), 1e-5)
	assert.InEpsilon(t, numericalGradient(fb, -1.7, 1e-6), y.Grad(), 1e-5)
}
