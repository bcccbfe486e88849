// Package nn implements the chalk training engine and its building blocks.
//
// This package provides:
//   - Layer interface: the contract every network layer obeys
//   - Sequential: the layer-stacking model with the fit/predict loop
//   - Dense: fully connected layer with hand-computed gradients
//   - Activation: elementwise nonlinearities (sigmoid, relu, tanh)
//   - Loss functions: mean squared error, cross entropy
//
// Unlike autodiff frameworks, every derivative here is written out by hand
// and threaded explicitly through the layer chain during backpropagation.
// The package exists to make the forward/backward/update cycle inspectable,
// not to be fast.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is the contract between the Sequential engine and a network layer.
//
// The engine never inspects a layer's concrete type; it only drives this
// interface. During training the engine guarantees that BackPropagate is
// called before Optimize on the same layer within the same batch, and that
// layers are visited in reverse insertion order on the backward pass.
//
// Shape compatibility between adjacent layers is not verified by the engine;
// a mismatch surfaces as a mat dimension panic on the first forward pass.
type Layer interface {
	// Forward computes the layer's output for the given input batch
	// (rows are samples). When returnDeriv is set, the second return value
	// is the derivative of the output with respect to the layer's
	// pre-activation input, with the output's shape. Layers without a
	// meaningful pre-activation derivative return ones.
	//
	// The engine always requests the derivative and uses only the final
	// layer's; it is not a chain-ruled composite.
	Forward(input *mat.Dense, returnDeriv bool) (output, deriv *mat.Dense)

	// BackPropagate consumes ∂Error/∂Output for this layer and returns
	// ∂Error/∂Input, caching as a side effect whatever parameter gradients
	// the layer needs for its next Optimize call.
	BackPropagate(grad *mat.Dense) *mat.Dense

	// Optimize updates the layer's parameters in place using the gradients
	// cached by the most recent BackPropagate call.
	Optimize(opt Optimizer)
}

// Optimizer is the parameter-update strategy consumed by layers.
//
// A single optimizer instance is shared across all layers of a model; its
// hyperparameters are not mutated by the training loop. Update applies the
// rule to param in place using the matching gradient.
type Optimizer interface {
	Update(param, grad *mat.Dense)
}
