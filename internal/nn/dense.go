package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: Y = X·W + b
// where:
//   - X is the input with shape [batch, in]
//   - W is the weight matrix with shape [in, out]
//   - b is the bias row with shape [1, out], broadcast over the batch
//
// Weights are initialized with Xavier/Glorot uniform distribution, biases
// with zeros.
//
// Example:
//
//	layer := nn.NewDense(784, 128)
//	out, _ := layer.Forward(input, false) // [batch, 128]
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *mat.Dense // [in, out]
	bias        *mat.Dense // [1, out]

	input   *mat.Dense // cached by Forward for the backward pass
	dWeight *mat.Dense // cached by BackPropagate for Optimize
	dBias   *mat.Dense
}

// NewDense creates a Dense layer with Xavier-initialized weights.
func NewDense(inFeatures, outFeatures int) *Dense {
	return newDense(inFeatures, outFeatures, globalRand)
}

// NewDenseSeeded creates a Dense layer whose weight initialization is
// reproducible from seed.
func NewDenseSeeded(inFeatures, outFeatures int, seed int64) *Dense {
	//nolint:gosec // weight initialization is not security-critical
	return newDense(inFeatures, outFeatures, rand.New(rand.NewSource(seed)))
}

func newDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      xavier(inFeatures, outFeatures, rng),
		bias:        mat.NewDense(1, outFeatures, nil),
	}
}

// Forward computes Y = X·W + b and caches X for the backward pass.
//
// The returned derivative is the derivative of the output with respect to
// the pre-activation input, which for an affine map is ones.
func (d *Dense) Forward(input *mat.Dense, returnDeriv bool) (*mat.Dense, *mat.Dense) {
	r, c := input.Dims()
	if c != d.inFeatures {
		panic(fmt.Sprintf("nn: Dense.Forward: expected input with %d features, got %d", d.inFeatures, c))
	}
	d.input = input

	out := mat.NewDense(r, d.outFeatures, nil)
	out.Mul(input, d.weight)
	for i := 0; i < r; i++ {
		for j := 0; j < d.outFeatures; j++ {
			out.Set(i, j, out.At(i, j)+d.bias.At(0, j))
		}
	}

	if !returnDeriv {
		return out, nil
	}
	deriv := mat.NewDense(r, d.outFeatures, nil)
	for i := range deriv.RawMatrix().Data {
		deriv.RawMatrix().Data[i] = 1
	}
	return out, deriv
}

// BackPropagate computes the parameter gradients from the cached input
//
//	∂E/∂W = Xᵀ·grad    ∂E/∂b = column sums of grad
//
// and returns the upstream gradient ∂E/∂X = grad·Wᵀ.
func (d *Dense) BackPropagate(grad *mat.Dense) *mat.Dense {
	dW := mat.NewDense(d.inFeatures, d.outFeatures, nil)
	dW.Mul(d.input.T(), grad)
	d.dWeight = dW

	r, _ := grad.Dims()
	dB := mat.NewDense(1, d.outFeatures, nil)
	for j := 0; j < d.outFeatures; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += grad.At(i, j)
		}
		dB.Set(0, j, sum)
	}
	d.dBias = dB

	upstream := mat.NewDense(r, d.inFeatures, nil)
	upstream.Mul(grad, d.weight.T())
	return upstream
}

// Optimize applies the cached gradients to the weights and bias through opt.
func (d *Dense) Optimize(opt Optimizer) {
	if d.dWeight == nil || d.dBias == nil {
		panic("nn: Dense.Optimize called before BackPropagate")
	}
	opt.Update(d.weight, d.dWeight)
	opt.Update(d.bias, d.dBias)
}

// Weights returns the weight matrix. Mutating it mutates the layer.
func (d *Dense) Weights() *mat.Dense { return d.weight }

// Bias returns the bias row. Mutating it mutates the layer.
func (d *Dense) Bias() *mat.Dense { return d.bias }

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int { return d.inFeatures }

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int { return d.outFeatures }
