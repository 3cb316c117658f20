package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeuron_Parameters(t *testing.T) {
	g := autodiff.NewGraph()
	n := NewNeuron(g, 3, rand.New(rand.NewSource(1)))

	params := n.Parameters()
	require.Len(t, params, 4)
	assert.Equal(t, "w0", params[0].Name())
	assert.Equal(t, "b", params[3].Name())
	assert.Same(t, n.Bias(), params[3])
	for _, p := range params {
		assert.True(t, p.Value().IsLeaf())
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}
}

func TestNeuron_Forward(t *testing.T) {
	g := autodiff.NewGraph()
	n := NewNeuron(g, 2, rand.New(rand.NewSource(1)))
	n.weights[0].value.SetData(-3.0)
	n.weights[1].value.SetData(1.0)
	n.bias.value.SetData(6.881373)

	x1, x2 := g.Scalar(2.0), g.Scalar(0.0)
	out := n.Forward([]autodiff.Value{x1, x2})
	assert.InDelta(t, 0.7071, out.Data(), 1e-4)

	require.NoError(t, out.Backward())
	assert.InDelta(t, 1.0, n.weights[0].Grad(), 1e-4)
	assert.InDelta(t, 0.0, n.weights[1].Grad(), 1e-4)
	assert.InDelta(t, 0.5, n.bias.Grad(), 1e-4)
	assert.InDelta(t, -1.5, x1.Grad(), 1e-4)
	assert.InDelta(t, 0.5, x2.Grad(), 1e-4)
}

func TestNeuron_WrongInputSize(t *testing.T) {
	g := autodiff.NewGraph()
	n := NewNeuron(g, 2, rand.New(rand.NewSource(1)))

	assert.Panics(t, func() { n.Forward(g.Scalars(1)) })
	assert.Panics(t, func() { NewNeuron(g, 0, rand.New(rand.NewSource(1))) })
}

func TestLayer_Parameters(t *testing.T) {
	g := autodiff.NewGraph()
	l := NewLayer(g, 3, 4, rand.New(rand.NewSource(1)))

	assert.Len(t, l.Parameters(), 4*(3+1))
	assert.Len(t, l.Neurons(), 4)
	assert.Len(t, l.Forward(g.Scalars(1, 2, 3)), 4)
}

func TestMLP_Parameters(t *testing.T) {
	g := autodiff.NewGraph()
	m := NewMLP(g, MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}, Seed: 7})

	assert.Len(t, m.Parameters(), 41)
	assert.Len(t, m.Layers(), 3)
	assert.Equal(t, 41, g.Len())
}

func TestMLP_Forward(t *testing.T) {
	g := autodiff.NewGraph()
	m := NewMLP(g, MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}, Seed: 7})

	out := m.Forward(Inputs(g, []float64{2.0, 3.0, -1.0}))
	require.Len(t, out, 1)
	assert.Greater(t, out[0].Data(), -1.0)
	assert.Less(t, out[0].Data(), 1.0)

	require.NoError(t, out[0].Backward())
	nonZero := 0
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)

	assert.Panics(t, func() { m.Forward(g.Scalars(1, 2)) })
}

func TestMLP_SeedIsDeterministic(t *testing.T) {
	cfg := MLPConfig{InputSize: 2, LayerSizes: []int{3, 1}, Seed: 42}
	a := NewMLP(autodiff.NewGraph(), cfg)
	b := NewMLP(autodiff.NewGraph(), cfg)

	pa, pb := a.Parameters(), b.Parameters()
	require.Len(t, pb, len(pa))
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
	}
}

func TestMLP_NoLayers(t *testing.T) {
	assert.Panics(t, func() { NewMLP(autodiff.NewGraph(), MLPConfig{InputSize: 3}) })
}

func TestMSELoss(t *testing.T) {
	g := autodiff.NewGraph()
	preds := g.Scalars(0.5, -0.25)
	loss := MSELoss(preds, []float64{1.0, -1.0})

	assert.InDelta(t, 0.25+0.5625, loss.Data(), 1e-12)
	require.NoError(t, loss.Backward())
	assert.InDelta(t, 2*(0.5-1.0), preds[0].Grad(), 1e-12)
	assert.InDelta(t, 2*(-0.25+1.0), preds[1].Grad(), 1e-12)

	assert.Panics(t, func() { MSELoss(preds, []float64{1}) })
	assert.Panics(t, func() { MSELoss(nil, nil) })
}

func TestParameter_UpdateAndZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()
	p := NewParameter("w", g.Scalar(2))

	y := p.Value().MulScalar(3)
	require.NoError(t, y.Backward())
	assert.Equal(t, 3.0, p.Grad())

	p.Update(-0.5)
	assert.Equal(t, 1.5, p.Data())

	ZeroGrad([]*Parameter{p})
	assert.Equal(t, 0.0, p.Grad())
}

func TestModule_Interface(t *testing.T) {
	g := autodiff.NewGraph()
	var m Module = NewMLP(g, MLPConfig{InputSize: 1, LayerSizes: []int{1}, Seed: 3})
	var l Module = NewLayer(g, 1, 2, rand.New(rand.NewSource(1)))

	assert.Len(t, m.Parameters(), 2)
	assert.Len(t, l.Parameters(), 4)
	assert.False(t, math.IsNaN(m.Forward(g.Scalars(0.3))[0].Data()))
}

func TestSequential_ChainsLayers(t *testing.T) {
	g := autodiff.NewGraph()
	rng := rand.New(rand.NewSource(1))
	l1, l2 := NewLayer(g, 3, 4, rng), NewLayer(g, 4, 2, rng)
	seq := NewSequential(l1)
	seq.Add(l2)

	assert.Equal(t, 2, seq.Len())
	assert.Same(t, l2, seq.Module(1))
	assert.Len(t, seq.Parameters(), 4*4+2*5)

	xs := g.Scalars(1, -2, 0.5)
	got := seq.Forward(xs)
	want := l2.Forward(l1.Forward(xs))
	require.Len(t, got, 2)
	for i := range got {
		assert.Equal(t, want[i].Data(), got[i].Data())
	}

	assert.Panics(t, func() { seq.Module(2) })
}

func TestSequential_Empty(t *testing.T) {
	g := autodiff.NewGraph()
	seq := NewSequential()
	xs := g.Scalars(1, 2)

	assert.Equal(t, xs, seq.Forward(xs))
	assert.Empty(t, seq.Parameters())
}

func TestMLP_ParametersFollowLayers(t *testing.T) {
	g := autodiff.NewGraph()
	m := NewMLP(g, MLPConfig{InputSize: 2, LayerSizes: []int{3, 1}, Seed: 5})

	var want []*Parameter
	for _, l := range m.Layers() {
		want = append(want, l.Parameters()...)
	}
	assert.Equal(t, want, m.Parameters())
}
