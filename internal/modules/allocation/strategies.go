package allocation

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/pkg/formulas"
)

// Service generates heuristic allocations. These are rule-based scoring
// pipelines, not solvers: each strategy scores every asset, normalizes
// the scores to 100%, then clamps to a strategy-specific band. After
// clamping the total is NOT re-normalized to exactly 100 - callers must
// tolerate small deviations.
type Service struct {
	log zerolog.Logger
}

// NewService creates an allocation service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "allocation").Logger()}
}

// Optimal weights assets by a Sharpe-like composite of return, risk,
// beta and profitability, clamped to [2, 35] percent per position.
func (s *Service) Optimal(assets []domain.Asset) domain.Allocation {
	return scoreAndNormalize(assets, func(a domain.Asset) float64 {
		returnScore := a.ExpectedReturn / 20.0
		riskPenalty := 1.0 / math.Max(0.1, a.Risk/100.0)
		betaPenalty := 1.0 / math.Max(0.5, a.Beta)
		qualityBonus := 1.0 + 2.0*a.ProfitMargin
		return returnScore * riskPenalty * betaPenalty * qualityBonus
	}, 2.0, 35.0)
}

// MinVariance weights assets by inverse volatility, clamped to [5, 40].
func (s *Service) MinVariance(assets []domain.Asset) domain.Allocation {
	return scoreAndNormalize(assets, func(a domain.Asset) float64 {
		return 1.0 / math.Max(0.1, a.Risk/100.0)
	}, 5.0, 40.0)
}

// RiskParity sizes positions so each contributes roughly equal risk:
// inverse of raw volatility, no clamp.
func (s *Service) RiskParity(assets []domain.Asset) domain.Allocation {
	return scoreAndNormalize(assets, func(a domain.Asset) float64 {
		return 1.0 / math.Max(0.1, a.Risk)
	}, 0, 0)
}

// MaxReturn equal-weights the assets whose expected return is within
// 10% of the best return in the list; every other asset gets 0.
func (s *Service) MaxReturn(assets []domain.Asset) domain.Allocation {
	alloc := make(domain.Allocation, len(assets))
	if len(assets) == 0 {
		return alloc
	}

	best := assets[0].ExpectedReturn
	for _, a := range assets[1:] {
		if a.ExpectedReturn > best {
			best = a.ExpectedReturn
		}
	}

	cutoff := best - math.Abs(best)*0.1
	var leaders []string
	for _, a := range assets {
		if a.ExpectedReturn >= cutoff {
			leaders = append(leaders, a.Symbol)
		}
	}

	for _, a := range assets {
		alloc[a.Symbol] = 0
	}
	if len(leaders) == 0 {
		return alloc
	}
	share := 100.0 / float64(len(leaders))
	for _, symbol := range leaders {
		alloc[symbol] = share
	}
	return alloc
}

// All runs every generator against the same asset list.
func (s *Service) All(assets []domain.Asset) AllStrategies {
	return AllStrategies{
		Optimal:     s.Optimal(assets),
		MinVariance: s.MinVariance(assets),
		RiskParity:  s.RiskParity(assets),
		MaxReturn:   s.MaxReturn(assets),
	}
}

// scoreAndNormalize applies the score function to each asset, normalizes
// scores to percentages summing to 100, then clamps each percentage to
// [minPct, maxPct] when a band is given (maxPct > 0).
func scoreAndNormalize(assets []domain.Asset, score func(domain.Asset) float64, minPct, maxPct float64) domain.Allocation {
	alloc := make(domain.Allocation, len(assets))
	if len(assets) == 0 {
		return alloc
	}

	scores := make([]float64, len(assets))
	total := 0.0
	for i, a := range assets {
		scores[i] = score(a)
		total += scores[i]
	}
	if total <= 0 {
		return alloc
	}

	for i, a := range assets {
		pct := scores[i] / total * 100.0
		if maxPct > 0 {
			pct = formulas.Clamp(pct, minPct, maxPct)
		}
		alloc[a.Symbol] = pct
	}
	return alloc
}
