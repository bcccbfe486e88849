// Copyright 2026 The Chalk Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter-update strategies for chalk models.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// A model shares one optimizer instance across all of its layers; each layer
// hands its parameter and gradient matrices to Update once per batch.
//
// # Basic Usage
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
//	model.Compile(sgd, "mean_squared_error")
//
// or
//
//	adam := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	model.Compile(adam, "cross_entropy")
package optim
