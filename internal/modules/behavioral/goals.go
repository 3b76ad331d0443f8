package behavioral

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/foliolab/quant/pkg/formulas"
)

// Ongoing contributions are modeled as 5% of current capital per year,
// paid monthly.
const annualContributionRate = 0.05

// GoalAnalytic projects current capital plus monthly contributions at
// the expected annual return and compares against the target.
//
// YearsToGoal answers a different question than the horizon: how long
// pure compounding of the current capital would need to reach the
// target. A non-finite result (zero/negative growth, zero capital) is
// reported as the 0 sentinel.
func (s *Service) GoalAnalytic(target, current float64, horizonYears int, annualReturnPct, volatilityPct float64) GoalProbability {
	result := GoalProbability{}
	if target <= 0 || horizonYears <= 0 || current < 0 {
		return result
	}

	monthlyReturn := annualReturnPct / 12.0 / 100.0
	monthlyContribution := current * annualContributionRate / 12.0

	value := current
	for m := 0; m < horizonYears*12; m++ {
		value = value*(1.0+monthlyReturn) + monthlyContribution
	}
	result.ProjectedValue = value

	result.Probability = math.Min(100.0, value/target*100.0)
	result.Gap = math.Max(0, target-value)

	result.YearsToGoal = yearsToGoal(target, current, annualReturnPct)

	switch {
	case volatilityPct <= 12:
		result.Confidence = "high"
	case volatilityPct <= 20:
		result.Confidence = "medium"
	default:
		result.Confidence = "low"
	}

	return result
}

// yearsToGoal solves target = current * (1+r)^t for t. Inputs where the
// logarithms are undefined or the growth rate cannot reach the target
// map to the documented 0 sentinel.
func yearsToGoal(target, current, annualReturnPct float64) float64 {
	if target <= 0 || current <= 0 || target <= current {
		return 0
	}
	growth := 1.0 + annualReturnPct/100.0
	if growth <= 1.0 {
		return 0
	}
	years := math.Log(target/current) / math.Log(growth)
	if math.IsNaN(years) || math.IsInf(years, 0) || years < 0 {
		return 0
	}
	return years
}

// GoalMonteCarloEstimate reports the fraction of simulated contribution
// paths that meet or exceed the target, with 5th/50th/95th percentile
// outcomes. Paths use per-path seeded streams like the projection
// engine.
func (s *Service) GoalMonteCarloEstimate(target, current float64, horizonYears int, annualReturnPct, volatilityPct float64, simulations int) GoalMonteCarlo {
	result := GoalMonteCarlo{}
	if target <= 0 || horizonYears <= 0 || current < 0 {
		return result
	}
	if simulations <= 0 {
		simulations = s.cfg.Simulations
	}
	result.Simulations = simulations

	monthlyReturn := annualReturnPct / 12.0 / 100.0
	monthlyStdDev := volatilityPct / math.Sqrt(12) / 100.0
	monthlyContribution := current * annualContributionRate / 12.0
	months := horizonYears * 12

	finals := make([]float64, simulations)
	reached := 0
	for i := 0; i < simulations; i++ {
		rng := rand.New(rand.NewSource(s.cfg.Seed + int64(i)))
		value := current
		for m := 0; m < months; m++ {
			value = value*(1.0+monthlyReturn+monthlyStdDev*formulas.NormalDraw(rng)) + monthlyContribution
			if value < 0 {
				value = 0
			}
		}
		finals[i] = value
		if value >= target {
			reached++
		}
	}

	sort.Float64s(finals)
	result.Probability = float64(reached) / float64(simulations) * 100.0
	result.P5 = stat.Quantile(0.05, stat.Empirical, finals, nil)
	result.P50 = stat.Quantile(0.50, stat.Empirical, finals, nil)
	result.P95 = stat.Quantile(0.95, stat.Empirical, finals, nil)
	return result
}
