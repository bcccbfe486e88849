package optim

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// floatEqual checks approximate equality for test assertions.
func floatEqual(a, b, eps float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	sgd := NewSGD(SGDConfig{LR: 0.1})

	param := mat.NewDense(1, 1, []float64{2.0})
	grad := mat.NewDense(1, 1, []float64{1.0})

	sgd.Update(param, grad)

	// param = 2.0 - 0.1 * 1.0 = 1.9
	if !floatEqual(param.At(0, 0), 1.9, 1e-12) {
		t.Errorf("SGD update: got %f, want 1.9", param.At(0, 0))
	}
}

// TestSGD_Defaults tests zero-value configuration defaults.
func TestSGD_Defaults(t *testing.T) {
	sgd := NewSGD(SGDConfig{})
	if sgd.LR() != 0.01 {
		t.Errorf("default LR = %f, want 0.01", sgd.LR())
	}
}

// TestSGD_WithMomentum tests the velocity accumulation across steps.
func TestSGD_WithMomentum(t *testing.T) {
	sgd := NewSGD(SGDConfig{LR: 0.1, Momentum: 0.9})

	param := mat.NewDense(1, 1, []float64{2.0})
	grad := mat.NewDense(1, 1, []float64{1.0})

	// Step 1: velocity = 1.0, param = 2.0 - 0.1*1.0 = 1.9
	sgd.Update(param, grad)
	if !floatEqual(param.At(0, 0), 1.9, 1e-12) {
		t.Errorf("after step 1: got %f, want 1.9", param.At(0, 0))
	}

	// Step 2: velocity = 0.9*1.0 + 1.0 = 1.9, param = 1.9 - 0.19 = 1.71
	sgd.Update(param, grad)
	if !floatEqual(param.At(0, 0), 1.71, 1e-12) {
		t.Errorf("after step 2: got %f, want 1.71", param.At(0, 0))
	}
}

// TestSGD_SetLR tests learning-rate scheduling by the caller.
func TestSGD_SetLR(t *testing.T) {
	sgd := NewSGD(SGDConfig{LR: 0.1})
	sgd.SetLR(0.05)
	if sgd.LR() != 0.05 {
		t.Errorf("LR after SetLR = %f, want 0.05", sgd.LR())
	}

	param := mat.NewDense(1, 1, []float64{1.0})
	grad := mat.NewDense(1, 1, []float64{1.0})
	sgd.Update(param, grad)
	if !floatEqual(param.At(0, 0), 0.95, 1e-12) {
		t.Errorf("update with new LR: got %f, want 0.95", param.At(0, 0))
	}
}

// TestSGD_IndependentParameters tests that velocity state does not leak
// between parameter matrices.
func TestSGD_IndependentParameters(t *testing.T) {
	sgd := NewSGD(SGDConfig{LR: 0.1, Momentum: 0.9})

	a := mat.NewDense(1, 1, []float64{2.0})
	b := mat.NewDense(1, 1, []float64{2.0})
	grad := mat.NewDense(1, 1, []float64{1.0})

	sgd.Update(a, grad)
	sgd.Update(a, grad)
	sgd.Update(b, grad)

	// b has seen one step only: 2.0 - 0.1 = 1.9
	if !floatEqual(b.At(0, 0), 1.9, 1e-12) {
		t.Errorf("b after one step: got %f, want 1.9", b.At(0, 0))
	}
}

// TestAdam_Defaults tests zero-value configuration defaults.
func TestAdam_Defaults(t *testing.T) {
	adam := NewAdam(AdamConfig{})
	if adam.LR() != 0.001 {
		t.Errorf("default LR = %f, want 0.001", adam.LR())
	}
}

// TestAdam_SingleStep tests one Adam step against the hand-computed update.
func TestAdam_SingleStep(t *testing.T) {
	adam := NewAdam(AdamConfig{})

	param := mat.NewDense(1, 1, []float64{1.0})
	grad := mat.NewDense(1, 1, []float64{0.5})

	adam.Update(param, grad)

	// m = 0.1*0.5 = 0.05, v = 0.001*0.25 = 0.00025
	// m_hat = 0.05/0.1 = 0.5, v_hat = 0.00025/0.001 = 0.25
	// param = 1.0 - 0.001*0.5/(0.5 + 1e-8) ≈ 0.999
	if !floatEqual(param.At(0, 0), 0.999, 1e-6) {
		t.Errorf("Adam step: got %f, want 0.999", param.At(0, 0))
	}
}

// TestAdam_BiasCorrectionPerParameter tests that timesteps are tracked per
// parameter matrix.
func TestAdam_BiasCorrectionPerParameter(t *testing.T) {
	adam := NewAdam(AdamConfig{})

	a := mat.NewDense(1, 1, []float64{1.0})
	b := mat.NewDense(1, 1, []float64{1.0})
	grad := mat.NewDense(1, 1, []float64{0.5})

	adam.Update(a, grad)
	adam.Update(a, grad)
	adam.Update(b, grad)

	// b's first step must match a fresh parameter's first step.
	if !floatEqual(b.At(0, 0), 0.999, 1e-6) {
		t.Errorf("b after one step: got %f, want 0.999", b.At(0, 0))
	}
}

// TestAdam_GradientDirection tests that updates move against the gradient.
func TestAdam_GradientDirection(t *testing.T) {
	adam := NewAdam(AdamConfig{LR: 0.01})

	param := mat.NewDense(1, 2, []float64{1.0, -1.0})
	grad := mat.NewDense(1, 2, []float64{2.0, -2.0})

	adam.Update(param, grad)

	if param.At(0, 0) >= 1.0 {
		t.Errorf("positive gradient should decrease the parameter, got %f", param.At(0, 0))
	}
	if param.At(0, 1) <= -1.0 {
		t.Errorf("negative gradient should increase the parameter, got %f", param.At(0, 1))
	}
}
