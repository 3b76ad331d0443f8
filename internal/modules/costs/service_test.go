package costs

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
)

func newTestService() *Service {
	return NewService(config.DefaultEngine(), zerolog.Nop())
}

func TestTransactionCosts(t *testing.T) {
	svc := newTestService()

	oldAlloc := domain.Allocation{"A": 40, "B": 30, "C": 30}
	newAlloc := domain.Allocation{"A": 30, "B": 40, "C": 30}

	result := svc.TransactionCosts(newAlloc, oldAlloc, 10)

	// Two 10-point trades at 10 bps: 2 * 10 * 10/10000 = 0.02% of value.
	if math.Abs(result.TotalCostPct-0.02) > 1e-12 {
		t.Errorf("total cost = %v, want 0.02", result.TotalCostPct)
	}
	if math.Abs(result.TurnoverPct-20.0) > 1e-12 {
		t.Errorf("turnover = %v, want 20", result.TurnoverPct)
	}
	if len(result.Trades) != 2 {
		t.Errorf("trades = %d, want 2 (C did not move)", len(result.Trades))
	}
}

func TestTransactionCostsIgnoresTinyTrades(t *testing.T) {
	svc := newTestService()

	oldAlloc := domain.Allocation{"A": 50.000, "B": 50}
	newAlloc := domain.Allocation{"A": 50.005, "B": 50}

	result := svc.TransactionCosts(newAlloc, oldAlloc, 10)

	if result.TotalCostPct != 0 || len(result.Trades) != 0 {
		t.Errorf("sub-0.01%% moves must be ignored, got %+v", result)
	}
}

func TestTransactionCostsNewAndRemovedSymbols(t *testing.T) {
	svc := newTestService()

	oldAlloc := domain.Allocation{"A": 100}
	newAlloc := domain.Allocation{"B": 100}

	result := svc.TransactionCosts(newAlloc, oldAlloc, 10)

	// Full sell of A plus full buy of B: 200 points of turnover.
	if math.Abs(result.TurnoverPct-200.0) > 1e-12 {
		t.Errorf("turnover = %v, want 200", result.TurnoverPct)
	}
	if math.Abs(result.TotalCostPct-0.2) > 1e-12 {
		t.Errorf("total cost = %v, want 0.2", result.TotalCostPct)
	}
}

func TestTransactionCostsDefaultBps(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.TransactionCostBps = 25
	svc := NewService(cfg, zerolog.Nop())

	result := svc.TransactionCosts(domain.Allocation{"A": 100}, domain.Allocation{}, 0)

	if result.CostBps != 25 {
		t.Errorf("bps = %v, want configured 25", result.CostBps)
	}
}

func TestRebalancingImpact(t *testing.T) {
	svc := newTestService()

	oldAlloc := domain.Allocation{"A": 60, "B": 40}
	newAlloc := domain.Allocation{"A": 50, "B": 50}

	tests := []struct {
		name           string
		frequencyYears float64
		wantPeriods    int
	}{
		{"quarterly", 0.25, 20},
		{"annual", 1.0, 5},
		{"monthly", 1.0 / 12.0, 60},
		{"default to quarterly", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact := svc.Impact(newAlloc, oldAlloc, tt.frequencyYears, 10)
			if impact.Periods != tt.wantPeriods {
				t.Errorf("periods = %d, want %d", impact.Periods, tt.wantPeriods)
			}
			want := impact.CostPerPeriodPct * float64(tt.wantPeriods)
			if math.Abs(impact.TotalCostPct-want) > 1e-12 {
				t.Errorf("total = %v, want %v", impact.TotalCostPct, want)
			}
		})
	}
}
