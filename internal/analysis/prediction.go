package analysis

import (
	"math"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// PredictPrice combines volume, sentiment, trend, and liquidity factors
// into short-horizon change estimates. The 24h change clamps to
// [-30, 50] before market-cap scaling; confidence starts at 50 and
// gains fixed bonuses, capping at [35, 95] (24h) and [25, 85] (7d).
// A nil sentiment counts as neutral (score 50, no mentions).
func PredictPrice(token *domain.TokenData, sentiment *domain.SentimentData) *domain.PricePrediction {
	if sentiment == nil {
		sentiment = &domain.SentimentData{Score: 50}
	}
	mcFloor := math.Max(token.MarketCap, 1)
	volumeFactor := token.Volume24h / mcFloor
	sentimentFactor := (float64(sentiment.Score) - 50) / 100
	trendFactor := token.PriceChange24h / 100
	liquidityFactor := token.Liquidity / mcFloor

	liquidityBoost := -3.0
	if liquidityFactor > 0.1 {
		liquidityBoost = 2.0
	}

	change24h := volumeFactor*15 + sentimentFactor*8 + trendFactor*25 + liquidityBoost
	change24h = math.Max(-30, math.Min(50, change24h))
	change7d := change24h * 2.5

	if token.MarketCap < 100_000 {
		change24h *= 1.5
		change7d *= 1.8
	} else if token.MarketCap > 10_000_000 {
		change24h *= 0.7
		change7d *= 0.6
	}

	confidence24h := 50
	if token.Volume24h > token.MarketCap*0.05 {
		confidence24h += 15
	}
	if sentiment.Mentions > 500 {
		confidence24h += 10
	}
	if token.Liquidity > 50_000 {
		confidence24h += 10
	}
	if math.Abs(token.PriceChange24h) < 20 {
		confidence24h += 10
	}
	confidence7d := confidence24h - 25
	if confidence7d < 30 {
		confidence7d = 30
	}

	return &domain.PricePrediction{
		Prediction24h: domain.PredictionPoint{
			Price:      token.Price * (1 + change24h/100),
			Change:     round1(change24h),
			Confidence: clampInt(confidence24h, 35, 95),
		},
		Prediction7d: domain.PredictionPoint{
			Price:      token.Price * (1 + change7d/100),
			Change:     round1(change7d),
			Confidence: clampInt(confidence7d, 25, 85),
		},
		Factors: predictionFactors(token, sentiment, volumeFactor),
	}
}

func predictionFactors(token *domain.TokenData, sentiment *domain.SentimentData, volumeFactor float64) []string {
	var factors []string

	if volumeFactor > 0.1 {
		factors = append(factors, "High trading volume")
	} else if volumeFactor < 0.01 {
		factors = append(factors, "Low trading activity")
	}

	switch {
	case token.PriceChange24h > 10:
		factors = append(factors, "Bullish momentum")
	case token.PriceChange24h < -10:
		factors = append(factors, "Bearish pressure")
	default:
		factors = append(factors, "Consolidation phase")
	}

	if sentiment.Score > 70 {
		factors = append(factors, "Strong positive sentiment")
	} else if sentiment.Score < 30 {
		factors = append(factors, "Negative community sentiment")
	}
	if sentiment.Trending {
		factors = append(factors, "Trending on social media")
	}
	if token.Liquidity < 10_000 {
		factors = append(factors, "Low liquidity risk")
	}
	if token.MarketCap < 100_000 {
		factors = append(factors, "Micro-cap volatility")
	}

	if len(factors) < 2 {
		factors = append(factors, "Limited market data", "High uncertainty")
	}
	return factors
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
