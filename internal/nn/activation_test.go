package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewActivation(t *testing.T) {
	for _, name := range []string{"sigmoid", "relu", "tanh"} {
		act, err := NewActivation(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, act.Name())
	}
}

func TestNewActivation_Unknown(t *testing.T) {
	_, err := NewActivation("softplus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"softplus"`)
}

func TestSigmoid_ForwardAndDeriv(t *testing.T) {
	act := NewSigmoid()
	input := mat.NewDense(1, 3, []float64{-2, 0, 2})

	out, deriv := act.Forward(input, true)

	for j, x := range []float64{-2, 0, 2} {
		s := 1 / (1 + math.Exp(-x))
		assert.InDelta(t, s, out.At(0, j), 1e-12)
		assert.InDelta(t, s*(1-s), deriv.At(0, j), 1e-12)
	}
}

func TestReLU_ForwardAndDeriv(t *testing.T) {
	act := NewReLU()
	input := mat.NewDense(1, 4, []float64{-3, -0.5, 0, 2})

	out, deriv := act.Forward(input, true)

	wantOut := []float64{0, 0, 0, 2}
	wantDeriv := []float64{0, 0, 0, 1}
	for j := range wantOut {
		assert.Equal(t, wantOut[j], out.At(0, j))
		assert.Equal(t, wantDeriv[j], deriv.At(0, j))
	}
}

func TestTanh_ForwardAndDeriv(t *testing.T) {
	act := NewTanh()
	input := mat.NewDense(1, 2, []float64{-1, 1})

	out, deriv := act.Forward(input, true)

	for j, x := range []float64{-1, 1} {
		th := math.Tanh(x)
		assert.InDelta(t, th, out.At(0, j), 1e-12)
		assert.InDelta(t, 1-th*th, deriv.At(0, j), 1e-12)
	}
}

func TestActivation_BackPropagate(t *testing.T) {
	act := NewSigmoid()
	input := mat.NewDense(1, 2, []float64{0, 2})
	act.Forward(input, false)

	grad := mat.NewDense(1, 2, []float64{3, -1})
	upstream := act.BackPropagate(grad)

	for j, x := range []float64{0, 2} {
		s := 1 / (1 + math.Exp(-x))
		assert.InDelta(t, grad.At(0, j)*s*(1-s), upstream.At(0, j), 1e-12)
	}
}

func TestActivation_ForwardWithoutDeriv(t *testing.T) {
	act := NewReLU()
	out, deriv := act.Forward(mat.NewDense(1, 1, []float64{5}), false)
	assert.Equal(t, 5.0, out.At(0, 0))
	assert.Nil(t, deriv)
}

func TestActivation_OptimizeIsNoOp(t *testing.T) {
	act := NewTanh()
	assert.NotPanics(t, func() { act.Optimize(nil) })
}
