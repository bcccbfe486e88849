package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// clampEps bounds cross-entropy predictions away from 0 and 1 so the
// logarithms stay finite.
const clampEps = 1e-15

// Loss scores predictions against targets and supplies the error derivative
// that seeds backpropagation.
//
// Eval returns the error as a matrix: a 1×1 matrix for losses that reduce to
// a scalar (MSE) and a per-element matrix for those that do not (cross
// entropy). Use Scalar to reduce either form to a single number.
//
// Deriv returns ∂Error/∂Prediction with the prediction's shape.
//
// Targets are mat.Matrix so a *mat.VecDense label vector, which reports
// dimensions (n, 1), is treated identically to its single-column reshape;
// a single-column target broadcasts across all prediction columns. Beyond
// that, neither method checks shapes; mismatched dimensions panic inside mat
// at the point of use.
type Loss interface {
	Eval(pred *mat.Dense, target mat.Matrix) *mat.Dense
	Deriv(pred *mat.Dense, target mat.Matrix) *mat.Dense
}

// lossRegistry maps the symbolic names accepted by Sequential.Compile to
// their implementations.
var lossRegistry = map[string]Loss{
	"mean_squared_error": MeanSquaredError{},
	"cross_entropy":      CrossEntropy{},
}

// ResolveLoss maps a symbolic loss name to its implementation.
//
// Returns a configuration error naming the identifier when it does not match
// a known loss.
func ResolveLoss(name string) (Loss, error) {
	loss, ok := lossRegistry[name]
	if !ok {
		return nil, fmt.Errorf("nn: unknown loss function %q", name)
	}
	return loss, nil
}

// Scalar reduces an error matrix returned by Loss.Eval to the mean of its
// elements.
func Scalar(errMatrix *mat.Dense) float64 {
	r, c := errMatrix.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += errMatrix.At(i, j)
		}
	}
	return sum / float64(r*c)
}

// MeanSquaredError is the mean over all elements of (prediction − target)².
//
// Its derivative is prediction − target, deliberately not divided by the
// element count: the learning rate absorbs the constant factor.
type MeanSquaredError struct{}

// Eval returns a 1×1 matrix holding the mean squared error.
func (MeanSquaredError) Eval(pred *mat.Dense, target mat.Matrix) *mat.Dense {
	r, c := pred.Dims()
	tAt := targetAt(target)
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := pred.At(i, j) - tAt(i, j)
			sum += d * d
		}
	}
	return mat.NewDense(1, 1, []float64{sum / float64(r*c)})
}

// Deriv returns prediction − target, with the prediction's shape.
func (MeanSquaredError) Deriv(pred *mat.Dense, target mat.Matrix) *mat.Dense {
	r, c := pred.Dims()
	tAt := targetAt(target)
	deriv := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			deriv.Set(i, j, pred.At(i, j)-tAt(i, j))
		}
	}
	return deriv
}

// CrossEntropy is the elementwise binary cross-entropy
//
//	−[t·log(p) + (1−t)·log(1−p)]
//
// Predictions are clamped to (clampEps, 1−clampEps) before the logarithms are
// taken, so exact 0 and 1 predictions stay finite. Eval returns the
// per-element error matrix, not a scalar mean; callers wanting a scalar
// reduce it themselves (see Scalar).
type CrossEntropy struct{}

// Eval returns the per-element cross-entropy error matrix.
func (CrossEntropy) Eval(pred *mat.Dense, target mat.Matrix) *mat.Dense {
	r, c := pred.Dims()
	tAt := targetAt(target)
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			p := clamp(pred.At(i, j))
			t := tAt(i, j)
			out.Set(i, j, -(t*math.Log(p) + (1-t)*math.Log(1-p)))
		}
	}
	return out
}

// Deriv returns −t/p + (1−t)/(1−p), with the prediction's shape and the same
// clamping as Eval.
func (CrossEntropy) Deriv(pred *mat.Dense, target mat.Matrix) *mat.Dense {
	r, c := pred.Dims()
	tAt := targetAt(target)
	deriv := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			p := clamp(pred.At(i, j))
			t := tAt(i, j)
			deriv.Set(i, j, -(t/p)+(1-t)/(1-p))
		}
	}
	return deriv
}

// targetAt returns an accessor into target. A single-column target is
// broadcast across all prediction columns.
func targetAt(target mat.Matrix) func(i, j int) float64 {
	if _, c := target.Dims(); c == 1 {
		return func(i, _ int) float64 { return target.At(i, 0) }
	}
	return target.At
}

func clamp(p float64) float64 {
	if p < clampEps {
		return clampEps
	}
	if p > 1-clampEps {
		return 1 - clampEps
	}
	return p
}
