package scenario

import (
	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/internal/modules/metrics"
)

// Recovery simulation stops after ten years even if the portfolio never
// regains its starting value.
const recoveryHorizonMonths = 120

// Service runs deterministic stress scenarios and macro-regime
// projections against a portfolio.
type Service struct {
	log zerolog.Logger
}

// NewService creates a scenario service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "scenario").Logger()}
}

// stressScenarios are fixed shocks spanning a deep crash to a strong
// rally, with rough historical durations and annual probabilities.
var stressScenarios = []StressScenario{
	{Name: "Black Swan Event", ImpactPct: -25, DurationMonths: 6, Probability: 2},
	{Name: "Severe Recession", ImpactPct: -18, DurationMonths: 12, Probability: 8},
	{Name: "Market Correction", ImpactPct: -12, DurationMonths: 4, Probability: 20},
	{Name: "Interest Rate Shock", ImpactPct: -8, DurationMonths: 3, Probability: 15},
	{Name: "Mild Pullback", ImpactPct: -5, DurationMonths: 2, Probability: 30},
	{Name: "Goldilocks Expansion", ImpactPct: 12, DurationMonths: 12, Probability: 15},
	{Name: "Bull Market Rally", ImpactPct: 20, DurationMonths: 9, Probability: 10},
}

// macroRegimes blend the portfolio's own return 50/50 with a
// regime-level equity assumption.
var macroRegimes = []RegimeScenario{
	{Name: "Bull", EquityReturnPct: 18, Description: "Sustained expansion, multiple growth"},
	{Name: "Base", EquityReturnPct: 10, Description: "Long-run average equity returns"},
	{Name: "Bear", EquityReturnPct: -12, Description: "Prolonged contraction"},
	{Name: "Stagflation", EquityReturnPct: -4, Description: "High inflation, stagnant growth"},
}

// crisisEvents are archetypes for month-by-month stress path simulation.
var crisisEvents = []CrisisEvent{
	{Name: "Global Financial Crisis", AnnualImpact: -38, DurationMonths: 17},
	{Name: "Pandemic Crash", AnnualImpact: -30, DurationMonths: 2},
	{Name: "Dot-Com Bust", AnnualImpact: -35, DurationMonths: 30},
	{Name: "Stagflation Decade", AnnualImpact: -20, DurationMonths: 20},
	{Name: "Rate Hike Cycle", AnnualImpact: -19, DurationMonths: 10},
	{Name: "Emerging Markets Crisis", AnnualImpact: -15, DurationMonths: 8},
	{Name: "Currency Crisis", AnnualImpact: -12, DurationMonths: 6},
	{Name: "Flash Crash", AnnualImpact: -9, DurationMonths: 1},
}

// RunStressTests applies each fixed scenario's shock to the portfolio's
// baseline weighted return.
func (s *Service) RunStressTests(assets []domain.Asset, weights domain.WeightVector) []StressResult {
	baseline := metrics.WeightedReturn(assets, weights)

	affected := 0
	for i := range assets {
		if i < len(weights) && weights[i] > 0 {
			affected++
		}
	}

	results := make([]StressResult, 0, len(stressScenarios))
	for _, sc := range stressScenarios {
		results = append(results, StressResult{
			Scenario:         sc,
			BaselineReturn:   baseline,
			StressedReturn:   baseline + sc.ImpactPct,
			AffectedHoldings: affected,
		})
	}
	return results
}

// ExtendedScenarios compounds the blended regime return over the horizon
// to a projected capital value.
func (s *Service) ExtendedScenarios(assets []domain.Asset, weights domain.WeightVector, capital float64, horizonYears int) []RegimeResult {
	if horizonYears <= 0 {
		horizonYears = 10
	}
	baseline := metrics.WeightedReturn(assets, weights)

	results := make([]RegimeResult, 0, len(macroRegimes))
	for _, regime := range macroRegimes {
		blended := 0.5*baseline + 0.5*regime.EquityReturnPct

		projected := capital
		for y := 0; y < horizonYears; y++ {
			projected *= 1.0 + blended/100.0
		}

		results = append(results, RegimeResult{
			Regime:         regime,
			BlendedReturn:  blended,
			HorizonYears:   horizonYears,
			ProjectedValue: projected,
		})
	}
	return results
}

// StressPaths simulates each crisis month by month: during the event the
// portfolio compounds at (baseline + impact)/12 per month, afterwards it
// recovers at the baseline monthly return. The path minimum gives the
// max loss, and the recovery month is the first month the value crosses
// back above the starting capital.
func (s *Service) StressPaths(assets []domain.Asset, weights domain.WeightVector, capital float64) []CrisisPathResult {
	baseline := metrics.WeightedReturn(assets, weights)
	if capital <= 0 {
		capital = 100000
	}

	results := make([]CrisisPathResult, 0, len(crisisEvents))
	for _, event := range crisisEvents {
		stressedMonthly := (baseline + event.AnnualImpact) / 12.0 / 100.0
		recoveryMonthly := baseline / 12.0 / 100.0

		value := capital
		trough := capital
		recoveryMonth := 0
		path := []float64{capital}

		for month := 1; month <= recoveryHorizonMonths; month++ {
			if month <= event.DurationMonths {
				value *= 1.0 + stressedMonthly
			} else {
				value *= 1.0 + recoveryMonthly
			}

			path = append(path, value)
			if value < trough {
				trough = value
			}
			if recoveryMonth == 0 && month > event.DurationMonths && value >= capital {
				recoveryMonth = month
			}
		}

		maxLoss := 0.0
		if capital > 0 {
			maxLoss = (capital - trough) / capital * 100.0
		}

		results = append(results, CrisisPathResult{
			Event:         event,
			MaxLossPct:    maxLoss,
			TroughValue:   trough,
			RecoveryMonth: recoveryMonth,
			FinalValue:    value,
			Path:          path,
		})
	}
	return results
}
