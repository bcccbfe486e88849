// Copyright 2026 The Chalk Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the chalk model engine and its building blocks.
//
// # Overview
//
// This package contains:
//   - Sequential: the layer stack with the fit/predict training loop
//   - Layers: Dense, Activation (sigmoid, relu, tanh)
//   - Loss functions: "mean_squared_error", "cross_entropy"
//   - Contracts: Layer and Optimizer interfaces
//
// Derivatives are hand-computed per layer and threaded explicitly through
// the stack during backpropagation; there is no autodiff engine. Matrices
// are gonum *mat.Dense values, rows are samples.
//
// # Basic Usage
//
//	import (
//	    "github.com/chalk-ml/chalk/nn"
//	    "github.com/chalk-ml/chalk/optim"
//	)
//
//	func main() {
//	    model := nn.NewSequential(nn.Config{Verbose: true})
//	    model.Add(nn.NewDense(2, 5))
//	    model.Add(nn.NewSigmoid())
//	    model.Add(nn.NewDense(5, 2))
//
//	    sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	    if err := model.Compile(sgd, "mean_squared_error"); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := model.Fit(X, y, 100, 4); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(model.Predict(X))
//	}
//
// # Contracts
//
// Anything implementing the Layer interface can be added to a Sequential;
// the engine drives Forward in insertion order and
// BackPropagate-then-Optimize in reverse order, one batch at a time. The
// engine performs no shape validation between adjacent layers; mismatches
// panic inside gonum on the first forward pass.
package nn
