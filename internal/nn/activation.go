package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation applies an elementwise nonlinearity with a hand-computed
// derivative. It holds no trainable parameters; Optimize is a no-op.
type Activation struct {
	name  string
	fn    func(float64) float64
	deriv func(float64) float64

	input *mat.Dense // cached by Forward for the backward pass
}

// activationRegistry maps symbolic names to constructors, mirroring the loss
// registry.
var activationRegistry = map[string]func() *Activation{
	"sigmoid": NewSigmoid,
	"relu":    NewReLU,
	"tanh":    NewTanh,
}

// NewActivation resolves a symbolic activation name.
//
// Returns a configuration error naming the identifier when it does not match
// a known activation.
func NewActivation(name string) (*Activation, error) {
	ctor, ok := activationRegistry[name]
	if !ok {
		return nil, fmt.Errorf("nn: unknown activation %q", name)
	}
	return ctor(), nil
}

// NewSigmoid creates a sigmoid activation: σ(x) = 1 / (1 + exp(−x)).
func NewSigmoid() *Activation {
	return &Activation{
		name: "sigmoid",
		fn:   sigmoid,
		deriv: func(x float64) float64 {
			s := sigmoid(x)
			return s * (1 - s)
		},
	}
}

// NewReLU creates a rectified linear activation: f(x) = max(0, x).
func NewReLU() *Activation {
	return &Activation{
		name: "relu",
		fn: func(x float64) float64 {
			return math.Max(0, x)
		},
		deriv: func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		},
	}
}

// NewTanh creates a hyperbolic tangent activation.
func NewTanh() *Activation {
	return &Activation{
		name: "tanh",
		fn:   math.Tanh,
		deriv: func(x float64) float64 {
			t := math.Tanh(x)
			return 1 - t*t
		},
	}
}

// Name returns the activation's symbolic name.
func (a *Activation) Name() string { return a.name }

// Forward applies the nonlinearity elementwise and caches the input. The
// derivative return is f′ evaluated at the input.
func (a *Activation) Forward(input *mat.Dense, returnDeriv bool) (*mat.Dense, *mat.Dense) {
	a.input = input

	r, c := input.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return a.fn(v) }, input)

	if !returnDeriv {
		return out, nil
	}
	deriv := mat.NewDense(r, c, nil)
	deriv.Apply(func(_, _ int, v float64) float64 { return a.deriv(v) }, input)
	return out, deriv
}

// BackPropagate returns grad ⊙ f′(cached input).
func (a *Activation) BackPropagate(grad *mat.Dense) *mat.Dense {
	r, c := grad.Dims()
	upstream := mat.NewDense(r, c, nil)
	upstream.Apply(func(i, j int, v float64) float64 {
		return v * a.deriv(a.input.At(i, j))
	}, grad)
	return upstream
}

// Optimize is a no-op; activations have no parameters.
func (a *Activation) Optimize(Optimizer) {}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
