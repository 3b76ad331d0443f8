package projection

import (
	"math"
	"math/rand"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/internal/modules/metrics"
	"github.com/foliolab/quant/pkg/formulas"
)

// MonteCarlo simulates monthly portfolio paths with normally distributed
// shocks. Each path gets its own random stream seeded from the engine
// seed plus the path index, so paths are independent, the whole run is
// reproducible, and parallel execution cannot change the result.
func (s *Service) MonteCarlo(assets []domain.Asset, weights domain.WeightVector, initialCapital float64, years, simulations int) MonteCarloResult {
	if initialCapital <= 0 {
		initialCapital = defaultCapital
	}
	if years <= 0 {
		years = 5
	}
	if simulations <= 0 {
		simulations = s.cfg.Simulations
	}

	monthlyReturn := metrics.WeightedReturn(assets, weights) / 12.0 / 100.0
	monthlyStdDev := metrics.WeightedRisk(assets, weights) / math.Sqrt(12) / 100.0
	months := years * 12

	type indexed struct {
		idx  int
		path PathResult
	}
	results := make(chan indexed, simulations)

	for i := 0; i < simulations; i++ {
		go func(pathIdx int) {
			rng := rand.New(rand.NewSource(s.cfg.Seed + int64(pathIdx)))
			results <- indexed{
				idx:  pathIdx,
				path: simulatePath(rng, initialCapital, monthlyReturn, monthlyStdDev, months),
			}
		}(i)
	}

	paths := make([]PathResult, simulations)
	finals := make([]float64, simulations)
	drawdowns := make([]float64, simulations)
	for i := 0; i < simulations; i++ {
		res := <-results
		paths[res.idx] = res.path
		finals[res.idx] = res.path.FinalValue
		drawdowns[res.idx] = res.path.MaxDrawdown
	}
	close(results)

	return MonteCarloResult{
		Simulations:    simulations,
		Years:          years,
		InitialCapital: initialCapital,
		Mean:           formulas.Mean(finals),
		Median:         formulas.Quantile(0.50, finals),
		P5:             formulas.Quantile(0.05, finals),
		P25:            formulas.Quantile(0.25, finals),
		P75:            formulas.Quantile(0.75, finals),
		P95:            formulas.Quantile(0.95, finals),
		Min:            formulas.Min(finals),
		Max:            formulas.Max(finals),
		StdDev:         formulas.StdDev(finals),
		AvgMaxDrawdown: formulas.Mean(drawdowns),
		Paths:          paths,
	}
}

// simulatePath compounds one path month by month, drawing a standard
// normal variate per month via the Box-Muller transform.
func simulatePath(rng *rand.Rand, initial, monthlyReturn, monthlyStdDev float64, months int) PathResult {
	value := initial
	minimum := initial

	for m := 0; m < months; m++ {
		z := formulas.NormalDraw(rng)
		value *= 1.0 + monthlyReturn + monthlyStdDev*z
		if value < 0 {
			value = 0
		}
		if value < minimum {
			minimum = value
		}
	}

	maxDrawdown := 0.0
	if initial > 0 {
		maxDrawdown = (initial - minimum) / initial
	}
	if maxDrawdown < 0 {
		maxDrawdown = 0
	}

	return PathResult{FinalValue: value, MaxDrawdown: maxDrawdown}
}
