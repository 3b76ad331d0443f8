package behavioral

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/pkg/formulas"
)

// Fixed rule thresholds. Each rule fires independently and carries its
// own confidence score.
const (
	concentrationThresholdPct = 30.0
	sectorThresholdPct        = 50.0
	minHoldings               = 5
	maxHoldings               = 25
	highPerformerReturnPct    = 15.0
	highPerformerSharePct     = 60.0
	domesticSharePct          = 85.0
	lowVolatilityPct          = 10.0
)

// Service detects behavioral biases and scores investor discipline.
type Service struct {
	cfg config.Engine
	log zerolog.Logger
}

// NewService creates a behavioral service.
func NewService(cfg config.Engine, log zerolog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log.With().Str("service", "behavioral").Logger(),
	}
}

// DetectBiases runs the fixed rule set over the allocation and asset
// attributes. An empty portfolio produces no biases.
func (s *Service) DetectBiases(assets []domain.Asset, alloc domain.Allocation) []Bias {
	biases := []Bias{}
	if len(assets) == 0 {
		return biases
	}

	maxAlloc := 0.0
	maxSymbol := ""
	for sym, pct := range alloc {
		if pct > maxAlloc {
			maxAlloc = pct
			maxSymbol = sym
		}
	}
	if maxAlloc > concentrationThresholdPct {
		biases = append(biases, Bias{
			Type:           "overconfidence",
			Severity:       SeverityHigh,
			Description:    fmt.Sprintf("%.0f%% of the portfolio sits in %s", maxAlloc, maxSymbol),
			Recommendation: "Cap single positions near 20% and redistribute the excess",
			Confidence:     85,
		})
	}

	sectorAlloc := map[string]float64{}
	for _, asset := range assets {
		sectorAlloc[asset.Sector] += alloc[asset.Symbol]
	}
	for sector, pct := range sectorAlloc {
		if pct > sectorThresholdPct {
			biases = append(biases, Bias{
				Type:           "familiarity",
				Severity:       SeverityHigh,
				Description:    fmt.Sprintf("%.0f%% allocated to the %s sector", pct, sector),
				Recommendation: "Spread exposure across at least three sectors",
				Confidence:     80,
			})
			break
		}
	}

	held := 0
	for _, asset := range assets {
		if alloc[asset.Symbol] > 0 {
			held++
		}
	}
	if held > 0 && held < minHoldings {
		biases = append(biases, Bias{
			Type:           "under_diversification",
			Severity:       SeverityMedium,
			Description:    fmt.Sprintf("Only %d holdings carry the whole portfolio", held),
			Recommendation: "Hold at least five positions to dampen single-name risk",
			Confidence:     90,
		})
	}
	if held > maxHoldings {
		biases = append(biases, Bias{
			Type:           "over_diversification",
			Severity:       SeverityLow,
			Description:    fmt.Sprintf("%d holdings dilute any conviction", held),
			Recommendation: "Consolidate into the best-understood positions",
			Confidence:     70,
		})
	}

	highPerformerPct := 0.0
	for _, asset := range assets {
		if asset.ExpectedReturn >= highPerformerReturnPct {
			highPerformerPct += alloc[asset.Symbol]
		}
	}
	if highPerformerPct > highPerformerSharePct {
		biases = append(biases, Bias{
			Type:           "recency",
			Severity:       SeverityMedium,
			Description:    fmt.Sprintf("%.0f%% rides recent high performers", highPerformerPct),
			Recommendation: "Rebalance toward positions priced on fundamentals, not momentum",
			Confidence:     75,
		})
	}

	domesticPct := 0.0
	for _, asset := range assets {
		if asset.Domestic {
			domesticPct += alloc[asset.Symbol]
		}
	}
	if domesticPct > domesticSharePct {
		biases = append(biases, Bias{
			Type:           "home_bias",
			Severity:       SeverityMedium,
			Description:    fmt.Sprintf("%.0f%% of the portfolio is domestic", domesticPct),
			Recommendation: "Add international exposure to reduce single-economy risk",
			Confidence:     80,
		})
	}

	avgVol := 0.0
	for _, asset := range assets {
		avgVol += asset.Risk
	}
	avgVol /= float64(len(assets))
	if avgVol < lowVolatilityPct {
		biases = append(biases, Bias{
			Type:           "loss_aversion",
			Severity:       SeverityLow,
			Description:    fmt.Sprintf("Average volatility of %.1f%% suggests an overly defensive book", avgVol),
			Recommendation: "Consider whether the risk level matches the investment horizon",
			Confidence:     65,
		})
	}

	return biases
}

// Score combines discipline (position count), diversification
// (allocation variance), risk awareness (Sharpe-derived) and
// concentration into an equal-weighted 0-100 score.
func (s *Service) Score(assets []domain.Asset, alloc domain.Allocation, sharpe float64) InvestorScore {
	score := InvestorScore{}
	if len(assets) == 0 {
		return score
	}

	held := 0
	percentages := make([]float64, 0, len(assets))
	maxAlloc := 0.0
	for _, asset := range assets {
		pct := alloc[asset.Symbol]
		percentages = append(percentages, pct)
		if pct > 0 {
			held++
		}
		if pct > maxAlloc {
			maxAlloc = pct
		}
	}

	// 5-15 positions is the sweet spot.
	switch {
	case held >= minHoldings && held <= 15:
		score.Discipline = 100
	case held > 15 && held <= maxHoldings:
		score.Discipline = 75
	case held > maxHoldings:
		score.Discipline = 50
	default:
		score.Discipline = float64(held) / float64(minHoldings) * 100.0
	}

	// A perfectly even allocation has zero variance.
	variance := formulas.Variance(percentages)
	score.Diversification = formulas.Clamp(100.0-variance, 0, 100)

	score.RiskAwareness = formulas.Clamp(sharpe*200.0, 0, 100)

	score.Concentration = formulas.Clamp(100.0-maxAlloc*2.0, 0, 100)

	score.Overall = (score.Discipline + score.Diversification + score.RiskAwareness + score.Concentration) / 4.0
	return score
}
