package nn

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/chalk-ml/chalk/internal/progress"
	"github.com/chalk-ml/chalk/internal/viz"
)

// ErrNotCompiled is returned by Fit when the model has not been compiled
// with an optimizer and loss.
var ErrNotCompiled = errors.New("nn: model is not compiled")

// Config carries the display-only knobs of a Sequential model.
//
// None of the fields affect numerical results.
type Config struct {
	// Verbose reports accuracy and loss over the whole dataset after every
	// epoch (instead of only the final one) and enables the epoch progress
	// bar.
	Verbose bool

	// VisualizeEachEpoch renders an ASCII loss curve after each diagnostic
	// epoch. Only effective together with Verbose.
	VisualizeEachEpoch bool

	// Logger receives the epoch diagnostics. Defaults to a no-op logger.
	Logger *slog.Logger

	// PlotTo receives the rendered loss curve. Defaults to os.Stdout.
	PlotTo io.Writer
}

// Sequential is an ordered stack of layers trained by backpropagation.
//
// Lifecycle: construct empty, append layers with Add, bind an optimizer and
// loss with Compile, then train with Fit. ForwardPass and the predict
// operations only need layers; Compile is required for training alone.
// Fit may be called repeatedly, accumulating further parameter updates.
//
// Example:
//
//	model := nn.NewSequential(nn.Config{Verbose: true})
//	model.Add(nn.NewDense(2, 5))
//	model.Add(nn.NewSigmoid())
//	model.Add(nn.NewDense(5, 2))
//	if err := model.Compile(optim.NewSGD(optim.SGDConfig{LR: 0.1}), "mean_squared_error"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := model.Fit(X, y, 100, 4); err != nil {
//	    log.Fatal(err)
//	}
//	classes := model.Predict(X)
//
// A Sequential is not safe for concurrent use; keep each model confined to
// one goroutine.
type Sequential struct {
	layers    []Layer
	loss      Loss
	optimizer Optimizer

	verbose      bool
	vizEachEpoch bool
	logger       *slog.Logger
	plotTo       io.Writer

	lossHistory []float64
}

// NewSequential creates an empty model.
func NewSequential(cfg Config) *Sequential {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	plotTo := cfg.PlotTo
	if plotTo == nil {
		plotTo = os.Stdout
	}
	return &Sequential{
		verbose:      cfg.Verbose,
		vizEachEpoch: cfg.VisualizeEachEpoch,
		logger:       logger,
		plotTo:       plotTo,
	}
}

// Add appends a layer to the end of the sequence.
//
// No dimension matching against the previous layer is performed; a mismatch
// surfaces as a mat panic on the first forward pass.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Compile binds the optimizer and resolves lossName to a known loss
// function. It must be called before Fit.
//
// Returns a configuration error when lossName is not recognized.
func (s *Sequential) Compile(opt Optimizer, lossName string) error {
	loss, err := ResolveLoss(lossName)
	if err != nil {
		return err
	}
	s.optimizer = opt
	s.loss = loss
	return nil
}

// ForwardPass feeds X through every layer in insertion order and returns the
// final layer's output. With zero layers the input is returned unchanged.
//
// When returnDeriv is set, the second return value is the final layer's own
// forward derivative (nil for an empty model); it is not a chain-ruled
// composite derivative.
func (s *Sequential) ForwardPass(X *mat.Dense, returnDeriv bool) (*mat.Dense, *mat.Dense) {
	out := X
	var deriv *mat.Dense
	for _, layer := range s.layers {
		out, deriv = layer.Forward(out, true)
	}
	if returnDeriv {
		return out, deriv
	}
	return out, nil
}

// PredictProba returns the model's raw output matrix for X.
func (s *Sequential) PredictProba(X *mat.Dense) *mat.Dense {
	out, _ := s.ForwardPass(X, false)
	return out
}

// Predict returns the predicted class index for each sample of X: the column
// of the maximum value in that sample's output row.
func (s *Sequential) Predict(X *mat.Dense) []int {
	out := s.PredictProba(X)
	r, _ := out.Dims()
	classes := make([]int, r)
	for i := 0; i < r; i++ {
		classes[i] = argmaxRow(out, i)
	}
	return classes
}

// Accuracy returns the percentage of samples whose predicted class matches
// y. A multi-column y is reduced to class indices by row argmax; a
// single-column y is used as class labels directly.
func (s *Sequential) Accuracy(X *mat.Dense, y mat.Matrix) float64 {
	truth := classIndices(y)
	predicted := s.Predict(X)

	mismatches := 0
	for i, p := range predicted {
		if p != truth[i] {
			mismatches++
		}
	}
	return 100 - float64(mismatches)/float64(len(truth))*100
}

// Fit trains the model on X (samples × features) against targets y for the
// given number of epochs.
//
// Each epoch partitions the rows into contiguous, non-overlapping batches of
// batchSize in original order (no shuffling); the final batch holds the
// remainder. A batchSize ≤ 0 means full-batch training. Per batch the loop
// runs a forward pass, seeds the gradient from the loss derivative, and
// backpropagates with an immediate parameter update per layer.
//
// After all batches of an epoch, if the model is verbose or this is the
// final epoch, accuracy and scalar loss over the entire dataset are
// recomputed and logged; this is diagnostic only.
//
// Returns ErrNotCompiled when called before Compile. A panic inside a batch
// (for example a layer dimension mismatch) aborts Fit immediately,
// leaving updates from prior batches in place.
func (s *Sequential) Fit(X *mat.Dense, y mat.Matrix, epochs, batchSize int) error {
	if s.loss == nil || s.optimizer == nil {
		return ErrNotCompiled
	}

	samples, _ := X.Dims()
	if batchSize <= 0 {
		batchSize = samples
	}

	bar := progress.NewEpochBar(epochs, s.verbose)
	defer bar.Finish()

	for epoch := 0; epoch < epochs; epoch++ {
		for start := 0; start < samples; start += batchSize {
			end := min(start+batchSize, samples)
			s.updateBatch(sliceRows(X, start, end), rowRange(y, start, end))
		}
		bar.Step()

		if s.verbose || epoch == epochs-1 {
			pred := s.PredictProba(X)
			lossVal := Scalar(s.loss.Eval(pred, y))
			acc := s.Accuracy(X, y)
			s.lossHistory = append(s.lossHistory, lossVal)

			s.logger.Info("epoch complete",
				"epoch", epoch+1,
				"epochs", epochs,
				"accuracy", acc,
				"loss", lossVal,
			)
			if s.verbose && s.vizEachEpoch {
				viz.WriteLossCurve(s.plotTo, s.lossHistory)
			}
		}
	}
	return nil
}

// BackPropagateAndUpdate threads grad backward through the layers in reverse
// insertion order. Each layer's BackPropagate output becomes the next
// (earlier) layer's input gradient, and each layer's Optimize runs
// immediately after its BackPropagate.
//
// This is the primitive Fit uses per batch, exposed so it can be driven
// independently of the batch loop.
func (s *Sequential) BackPropagateAndUpdate(grad *mat.Dense, opt Optimizer) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		grad = layer.BackPropagate(grad)
		layer.Optimize(opt)
	}
}

// updateBatch runs one forward/backward/update cycle. The scalar error is
// not needed here; only the loss derivative seeds the backward pass.
func (s *Sequential) updateBatch(X *mat.Dense, y mat.Matrix) {
	pred, _ := s.ForwardPass(X, false)
	grad := s.loss.Deriv(pred, y)
	s.BackPropagateAndUpdate(grad, s.optimizer)
}

// sliceRows returns the [start, end) row window of m as a view.
func sliceRows(m *mat.Dense, start, end int) *mat.Dense {
	_, c := m.Dims()
	return m.Slice(start, end, 0, c).(*mat.Dense)
}

// rowRange returns the [start, end) row window of an arbitrary matrix,
// copying when no view is available.
func rowRange(m mat.Matrix, start, end int) mat.Matrix {
	if d, ok := m.(*mat.Dense); ok {
		return sliceRows(d, start, end)
	}
	_, c := m.Dims()
	out := mat.NewDense(end-start, c, nil)
	for i := start; i < end; i++ {
		for j := 0; j < c; j++ {
			out.Set(i-start, j, m.At(i, j))
		}
	}
	return out
}

// classIndices reduces targets to class-index form: row argmax for
// multi-column targets, the value itself for single-column labels.
func classIndices(y mat.Matrix) []int {
	r, c := y.Dims()
	indices := make([]int, r)
	for i := 0; i < r; i++ {
		if c > 1 {
			indices[i] = argmaxRowMatrix(y, i, c)
		} else {
			indices[i] = int(y.At(i, 0))
		}
	}
	return indices
}

func argmaxRow(m *mat.Dense, row int) int {
	_, c := m.Dims()
	return argmaxRowMatrix(m, row, c)
}

func argmaxRowMatrix(m mat.Matrix, row, cols int) int {
	maxIdx := 0
	maxVal := m.At(row, 0)
	for j := 1; j < cols; j++ {
		if v := m.At(row, j); v > maxVal {
			maxVal = v
			maxIdx = j
		}
	}
	return maxIdx
}
