package optim

import (
	"gonum.org/v1/gonum/mat"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent in consistent directions and dampens
// oscillations.
type SGD struct {
	lr         float64
	momentum   float64
	velocities map[*mat.Dense]*mat.Dense
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range [0, 1))
}

// NewSGD creates an SGD optimizer, applying defaults for zero-valued
// configuration fields.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*mat.Dense]*mat.Dense),
	}
}

// Update applies one gradient-descent step to param in place.
func (s *SGD) Update(param, grad *mat.Dense) {
	if s.momentum == 0 {
		addScaled(param, grad, -s.lr)
		return
	}

	velocity, ok := s.velocities[param]
	if !ok {
		r, c := param.Dims()
		velocity = mat.NewDense(r, c, nil)
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	velocity.Scale(s.momentum, velocity)
	velocity.Add(velocity, grad)

	// param -= lr * velocity
	addScaled(param, velocity, -s.lr)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate, for schedules driven by the caller.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// addScaled sets dst = dst + factor*src in place.
func addScaled(dst, src *mat.Dense, factor float64) {
	var scaled mat.Dense
	scaled.Scale(factor, src)
	dst.Add(dst, &scaled)
}
