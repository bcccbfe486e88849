// Copyright 2026 The Chalk Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/chalk-ml/chalk/internal/nn"
)

// Layer is the contract every network layer obeys.
type Layer = nn.Layer

// Optimizer is the parameter-update strategy consumed by layers.
type Optimizer = nn.Optimizer

// Loss scores predictions against targets and supplies the derivative that
// seeds backpropagation.
type Loss = nn.Loss

// ErrNotCompiled is returned by Fit when the model has not been compiled.
var ErrNotCompiled = nn.ErrNotCompiled

// Model engine

// Sequential is an ordered stack of layers trained by backpropagation.
type Sequential = nn.Sequential

// Config carries the display-only knobs of a Sequential model.
type Config = nn.Config

// NewSequential creates an empty model.
//
// Example:
//
//	model := nn.NewSequential(nn.Config{Verbose: true})
//	model.Add(nn.NewDense(2, 5))
func NewSequential(cfg Config) *Sequential {
	return nn.NewSequential(cfg)
}

// Layers

// Dense is a fully connected layer.
type Dense = nn.Dense

// NewDense creates a Dense layer with Xavier initialization.
//
// Example:
//
//	layer := nn.NewDense(784, 128)
func NewDense(inFeatures, outFeatures int) *Dense {
	return nn.NewDense(inFeatures, outFeatures)
}

// NewDenseSeeded creates a Dense layer with reproducible initialization.
func NewDenseSeeded(inFeatures, outFeatures int, seed int64) *Dense {
	return nn.NewDenseSeeded(inFeatures, outFeatures, seed)
}

// Activation applies an elementwise nonlinearity.
type Activation = nn.Activation

// NewActivation resolves a symbolic activation name ("sigmoid", "relu",
// "tanh").
func NewActivation(name string) (*Activation, error) {
	return nn.NewActivation(name)
}

// NewSigmoid creates a sigmoid activation.
func NewSigmoid() *Activation { return nn.NewSigmoid() }

// NewReLU creates a rectified linear activation.
func NewReLU() *Activation { return nn.NewReLU() }

// NewTanh creates a hyperbolic tangent activation.
func NewTanh() *Activation { return nn.NewTanh() }

// Losses

// MeanSquaredError is the "mean_squared_error" loss.
type MeanSquaredError = nn.MeanSquaredError

// CrossEntropy is the "cross_entropy" loss.
type CrossEntropy = nn.CrossEntropy

// ResolveLoss maps a symbolic loss name to its implementation.
func ResolveLoss(name string) (Loss, error) {
	return nn.ResolveLoss(name)
}

// Scalar reduces an error matrix returned by Loss.Eval to the mean of its
// elements.
func Scalar(errMatrix *mat.Dense) float64 {
	return nn.Scalar(errMatrix)
}
