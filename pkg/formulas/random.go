package formulas

import (
	"math"
	"math/rand"
)

// NormalDraw generates a standard normal variate from two uniform draws
// using the Box-Muller transform. The caller supplies a seeded source so
// every stochastic calculation in the engine is reproducible.
func NormalDraw(rng *rand.Rand) float64 {
	// 1-Float64() keeps u1 in (0, 1]; log(0) is never reached.
	u1 := 1.0 - rng.Float64()
	u2 := rng.Float64()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// SymmetricNoise returns a uniform draw in [-amplitude, amplitude].
func SymmetricNoise(rng *rand.Rand, amplitude float64) float64 {
	return (rng.Float64()*2.0 - 1.0) * amplitude
}
