package decomposition

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/pkg/formulas"
)

// HHI thresholds follow the usual antitrust-style bands.
const (
	hhiModerate = 1500.0
	hhiHigh     = 2500.0
)

// Correlations above this level after stress scaling indicate that
// diversification is likely to fail exactly when it is needed.
const breakdownThreshold = 0.75

// Stress multiplies the average correlation: in drawdowns correlations
// tighten toward 1.
const stressCorrelationFactor = 1.4

// Service decomposes portfolio risk into per-holding contributions and
// measures concentration.
type Service struct {
	cfg config.Engine
	log zerolog.Logger
}

// NewService creates a decomposition service.
func NewService(cfg config.Engine, log zerolog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log.With().Str("service", "decomposition").Logger(),
	}
}

// Decompose attributes portfolio beta and alpha to individual holdings.
// Per-asset alpha is the declared return minus the CAPM-implied return
// for the asset's beta.
func (s *Service) Decompose(assets []domain.Asset, weights domain.WeightVector) RiskDecomposition {
	result := RiskDecomposition{}

	for i, asset := range assets {
		if i >= len(weights) {
			break
		}
		weight := weights[i]
		capm := s.cfg.RiskFreeRate + asset.Beta*(s.cfg.MarketReturn-s.cfg.RiskFreeRate)
		alpha := asset.ExpectedReturn - capm

		contribution := HoldingContribution{
			Symbol:            asset.Symbol,
			Weight:            weight,
			Beta:              asset.Beta,
			BetaContribution:  asset.Beta * weight,
			Alpha:             alpha,
			AlphaContribution: alpha * weight,
		}
		result.Holdings = append(result.Holdings, contribution)
		result.PortfolioBeta += contribution.BetaContribution
		result.PortfolioAlpha += contribution.AlphaContribution
	}

	return result
}

// Concentration computes top-position sums, the Herfindahl index,
// sector-level concentration and a 0-100 diversification score.
func (s *Service) Concentration(assets []domain.Asset, alloc domain.Allocation) ConcentrationReport {
	report := ConcentrationReport{SectorAllocations: map[string]float64{}}
	if len(alloc) == 0 {
		report.Category = categorize(0)
		report.DiversificationScore = 0
		return report
	}

	percentages := make([]float64, 0, len(alloc))
	for _, pct := range alloc {
		percentages = append(percentages, pct)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(percentages)))

	report.Top1Pct = percentages[0]
	for i, pct := range percentages {
		if i >= 3 {
			break
		}
		report.Top3Pct += pct
	}

	hhi := 0.0
	for _, pct := range percentages {
		share := pct / 100.0
		hhi += share * share
	}
	report.Herfindahl = hhi * 10000.0
	report.Category = categorize(report.Herfindahl)

	for _, asset := range assets {
		if pct, ok := alloc[asset.Symbol]; ok {
			report.SectorAllocations[asset.Sector] += pct
		}
	}
	for _, pct := range report.SectorAllocations {
		if pct > report.MaxSectorPct {
			report.MaxSectorPct = pct
		}
	}

	score := 100.0 - (report.Top1Pct*3.0 + report.MaxSectorPct*1.5)
	report.DiversificationScore = math.Max(0, score)

	return report
}

// Stress summarizes the off-diagonal correlation structure and projects
// a crisis correlation of avg * 1.4.
func (s *Service) Stress(corr [][]float64) CorrelationStress {
	var offDiag []float64
	for i := range corr {
		for j := range corr[i] {
			if i < j {
				offDiag = append(offDiag, corr[i][j])
			}
		}
	}

	if len(offDiag) == 0 {
		return CorrelationStress{}
	}

	avg := formulas.Mean(offDiag)
	stressed := formulas.Clamp(avg*stressCorrelationFactor, -1.0, 1.0)

	return CorrelationStress{
		AvgCorrelation:    avg,
		MinCorrelation:    formulas.Min(offDiag),
		MaxCorrelation:    formulas.Max(offDiag),
		StressCorrelation: stressed,
		BreakdownRisk:     stressed > breakdownThreshold,
	}
}

func categorize(hhi float64) string {
	switch {
	case hhi >= hhiHigh:
		return "Highly Concentrated"
	case hhi >= hhiModerate:
		return "Moderately Concentrated"
	default:
		return "Diversified"
	}
}
