package analysis

import (
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

func TestCalculateExitStrategyTargets(t *testing.T) {
	t.Parallel()

	token := &domain.TokenData{MarketCap: 100000, Price: 0.001}
	strategy := CalculateExitStrategy(token)

	if len(strategy.Targets) != 5 {
		t.Fatalf("expected 5 targets, got %d", len(strategy.Targets))
	}

	tenX := strategy.Targets[2]
	if tenX.Multiplier != 10 {
		t.Fatalf("expected third target at 10x, got %f", tenX.Multiplier)
	}
	if tenX.TargetPrice != 0.01 {
		t.Fatalf("expected target price 0.01, got %f", tenX.TargetPrice)
	}
	if tenX.PotentialReturn != "900%" {
		t.Fatalf("expected 900%% return, got %s", tenX.PotentialReturn)
	}
	if tenX.TargetMC != 1000000 {
		t.Fatalf("expected target MC 1000000, got %f", tenX.TargetMC)
	}
}

func TestCalculateExitStrategyTakeProfitLadder(t *testing.T) {
	t.Parallel()

	strategy := CalculateExitStrategy(&domain.TokenData{MarketCap: 500000, Price: 2})

	ladder := strategy.SuggestedTakeProfit
	if len(ladder) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(ladder))
	}
	if ladder[0].Percentage != 25 || ladder[0].Price != 4 {
		t.Fatalf("unexpected first level: %+v", ladder[0])
	}
	if ladder[2].Percentage != 50 || ladder[2].Price != 20 {
		t.Fatalf("unexpected moon bag level: %+v", ladder[2])
	}
}

func TestCalculateExitStrategySizeBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		marketCap float64
		want      string
	}{
		{50_000, "0.5-1% of portfolio (high risk)"},
		{500_000, "1-2% of portfolio (medium risk)"},
		{5_000_000, "1-2% of portfolio"},
		{50_000_000, "2-5% of portfolio (lower risk)"},
	}
	for _, tc := range tests {
		got := CalculateExitStrategy(&domain.TokenData{MarketCap: tc.marketCap}).RiskAdjustedSize
		if got != tc.want {
			t.Fatalf("marketCap %f: expected %q, got %q", tc.marketCap, tc.want, got)
		}
	}
}
