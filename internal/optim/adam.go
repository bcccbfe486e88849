package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines momentum with per-element adaptive learning rates:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // first moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // second moment
//	m_hat = m_t / (1 - beta1^t)                        // bias correction
//	v_hat = v_t / (1 - beta2^t)                        // bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// The timestep t is tracked per parameter, since each layer drives its own
// Update calls.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64

	steps map[*mat.Dense]int
	m     map[*mat.Dense]*mat.Dense // first moment estimates
	v     map[*mat.Dense]*mat.Dense // second moment estimates
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // learning rate (default: 0.001)
	Betas [2]float64 // moving-average coefficients (default: [0.9, 0.999])
	Eps   float64    // numerical stability term (default: 1e-8)
}

// NewAdam creates an Adam optimizer, applying defaults for zero-valued
// configuration fields.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		steps: make(map[*mat.Dense]int),
		m:     make(map[*mat.Dense]*mat.Dense),
		v:     make(map[*mat.Dense]*mat.Dense),
	}
}

// Update applies one Adam step to param in place.
func (a *Adam) Update(param, grad *mat.Dense) {
	r, c := param.Dims()

	m, ok := a.m[param]
	if !ok {
		m = mat.NewDense(r, c, nil)
		a.m[param] = m
		a.v[param] = mat.NewDense(r, c, nil)
	}
	v := a.v[param]

	a.steps[param]++
	t := float64(a.steps[param])

	mCorr := 1 - math.Pow(a.beta1, t)
	vCorr := 1 - math.Pow(a.beta2, t)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g := grad.At(i, j)

			mij := a.beta1*m.At(i, j) + (1-a.beta1)*g
			vij := a.beta2*v.At(i, j) + (1-a.beta2)*g*g
			m.Set(i, j, mij)
			v.Set(i, j, vij)

			mHat := mij / mCorr
			vHat := vij / vCorr
			param.Set(i, j, param.At(i, j)-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
		}
	}
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}
