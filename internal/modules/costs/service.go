package costs

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
)

// Allocation changes below this many percentage points are not worth a
// trade and are ignored.
const minTradeDeltaPct = 0.01

// The rebalancing impact projection always spans five years.
const impactHorizonYears = 5.0

// Service estimates turnover costs for allocation changes.
type Service struct {
	cfg config.Engine
	log zerolog.Logger
}

// NewService creates a costs service.
func NewService(cfg config.Engine, log zerolog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log.With().Str("service", "costs").Logger(),
	}
}

// TransactionCosts sums |delta allocation| * bps/10000 over every symbol
// present in either allocation. A bps of 0 falls back to the configured
// rate.
func (s *Service) TransactionCosts(newAlloc, oldAlloc domain.Allocation, bps float64) CostResult {
	if bps <= 0 {
		bps = s.cfg.TransactionCostBps
	}

	symbols := make(map[string]bool, len(newAlloc)+len(oldAlloc))
	for sym := range newAlloc {
		symbols[sym] = true
	}
	for sym := range oldAlloc {
		symbols[sym] = true
	}

	ordered := make([]string, 0, len(symbols))
	for sym := range symbols {
		ordered = append(ordered, sym)
	}
	sort.Strings(ordered)

	result := CostResult{CostBps: bps}
	for _, sym := range ordered {
		delta := math.Abs(newAlloc[sym] - oldAlloc[sym])
		if delta < minTradeDeltaPct {
			continue
		}
		cost := delta * bps / 10000.0
		result.Trades = append(result.Trades, TradeCost{Symbol: sym, DeltaPct: delta, CostPct: cost})
		result.TotalCostPct += cost
		result.TurnoverPct += delta
	}
	return result
}

// Impact replays the same allocation change once per rebalancing period
// over a five-year horizon. frequencyYears is the time between
// rebalances (0.25 = quarterly).
func (s *Service) Impact(newAlloc, oldAlloc domain.Allocation, frequencyYears, bps float64) RebalancingImpact {
	if frequencyYears <= 0 {
		frequencyYears = 0.25
	}

	perPeriod := s.TransactionCosts(newAlloc, oldAlloc, bps)
	periods := int(impactHorizonYears / frequencyYears)

	return RebalancingImpact{
		FrequencyYears:   frequencyYears,
		Periods:          periods,
		CostPerPeriodPct: perPeriod.TotalCostPct,
		TotalCostPct:     perPeriod.TotalCostPct * float64(periods),
		HorizonYears:     impactHorizonYears,
	}
}
