package analysis

import "github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

// AnalyzeTechnical derives the trend view from the token record alone.
// Trend thresholds sit at a 5% daily move; support and resistance are
// fixed bands around the current price.
func AnalyzeTechnical(token *domain.TokenData) *domain.TechnicalData {
	trend := domain.TrendNeutral
	switch {
	case token.PriceChange24h > 5:
		trend = domain.TrendBullish
	case token.PriceChange24h < -5:
		trend = domain.TrendBearish
	}

	volumeTrend := "stable"
	if token.Volume24h > token.MarketCap*0.1 {
		volumeTrend = "increasing"
	}

	priceAction := "Consolidating in current range"
	switch trend {
	case domain.TrendBullish:
		priceAction = "Strong upward momentum with increasing volume"
	case domain.TrendBearish:
		priceAction = "Downward pressure with selling activity"
	}

	return &domain.TechnicalData{
		Trend:       trend,
		VolumeTrend: volumeTrend,
		PriceAction: priceAction,
		Support:     token.Price * 0.9,
		Resistance:  token.Price * 1.1,
	}
}
