package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

//nolint:gosec // weight initialization is not security-critical
var globalRand = rand.New(rand.NewSource(rand.Int63()))

// xavier returns an [in, out] weight matrix drawn from the Xavier/Glorot
// uniform distribution U(−√(6/(in+out)), √(6/(in+out))).
//
// This initialization keeps activation variance roughly constant across
// layers.
func xavier(in, out int, rng *rand.Rand) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(in+out))
	w := mat.NewDense(in, out, nil)
	data := w.RawMatrix().Data
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * bound
	}
	return w
}
