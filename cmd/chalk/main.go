// Copyright 2026 The Chalk Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the chalk CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/chalk-ml/chalk/nn"
	"github.com/chalk-ml/chalk/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("chalk %s\n", version)
			return
		case "xor":
			if err := runXOR(); err != nil {
				fmt.Fprintf(os.Stderr, "chalk: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("chalk - a teaching neural network trainer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train the canonical XOR network and print its accuracy")
}

// runXOR trains a small sigmoid MLP on the XOR truth table, the smallest
// problem a linear model cannot solve.
func runXOR() error {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	y := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		0, 1,
		1, 0,
	})

	model := nn.NewSequential(nn.Config{
		Verbose: true,
		Logger:  slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	model.Add(nn.NewDenseSeeded(2, 5, 1))
	model.Add(nn.NewSigmoid())
	model.Add(nn.NewDenseSeeded(5, 5, 2))
	model.Add(nn.NewSigmoid())
	model.Add(nn.NewDenseSeeded(5, 2, 3))

	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	if err := model.Compile(sgd, "mean_squared_error"); err != nil {
		return err
	}
	if err := model.Fit(X, y, 500, 4); err != nil {
		return err
	}

	fmt.Printf("predictions: %v\n", model.Predict(X))
	fmt.Printf("accuracy: %.2f%%\n", model.Accuracy(X, y))
	return nil
}
