// Package optim implements parameter-update rules for the chalk training
// engine.
//
// This package provides:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// Every optimizer exposes a single Update(param, grad) method; the engine
// shares one optimizer instance across all layers of a model and each layer
// calls Update once per parameter per batch. Per-parameter optimizer state
// (velocities, moments) is keyed by the parameter's pointer, so a parameter
// matrix must not be reallocated between updates.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
//	model.Compile(sgd, "mean_squared_error")
package optim

import (
	"github.com/chalk-ml/chalk/internal/nn"
)

// Interface conformance with the engine's consumed contract.
var (
	_ nn.Optimizer = (*SGD)(nil)
	_ nn.Optimizer = (*Adam)(nil)
)
