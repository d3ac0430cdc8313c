package analysis

import (
	"fmt"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

var exitMultipliers = []float64{2, 5, 10, 50, 100}

// CalculateExitStrategy projects fixed-multiplier targets and a
// take-profit ladder from the current price and market cap.
func CalculateExitStrategy(token *domain.TokenData) *domain.ExitStrategy {
	currentMC := token.MarketCap

	targets := make([]domain.ExitTarget, 0, len(exitMultipliers))
	for _, mult := range exitMultipliers {
		targets = append(targets, domain.ExitTarget{
			Multiplier:      mult,
			TargetMC:        currentMC * mult,
			TargetPrice:     token.Price * mult,
			PotentialReturn: fmt.Sprintf("%.0f%%", (mult-1)*100),
		})
	}

	takeProfit := []domain.TakeProfitLevel{
		{Level: "First Target", Percentage: 25, Price: token.Price * 2},
		{Level: "Second Target", Percentage: 25, Price: token.Price * 5},
		{Level: "Moon Bag", Percentage: 50, Price: token.Price * 10},
	}

	size := "1-2% of portfolio"
	switch {
	case currentMC < 100_000:
		size = "0.5-1% of portfolio (high risk)"
	case currentMC < 1_000_000:
		size = "1-2% of portfolio (medium risk)"
	case currentMC > 10_000_000:
		size = "2-5% of portfolio (lower risk)"
	}

	return &domain.ExitStrategy{
		CurrentMarketCap:    currentMC,
		Targets:             targets,
		SuggestedTakeProfit: takeProfit,
		RiskAdjustedSize:    size,
	}
}
