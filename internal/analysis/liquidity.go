package analysis

import (
	"math"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// InferLiquidityLock guesses lock status from liquidity depth. There is
// no authoritative lock registry behind this: liquidity above $50k that
// also exceeds 10% of market cap is treated as likely locked, at medium
// confidence at best.
func InferLiquidityLock(token *domain.TokenData) *domain.LiquidityLock {
	ratio := token.Liquidity / math.Max(token.MarketCap, 1)
	likelyLocked := token.Liquidity > 50_000 && ratio > 0.1

	source := token.Source
	if source == "" {
		source = domain.SourceDexScreener
	}

	if likelyLocked {
		return &domain.LiquidityLock{
			IsLocked:         true,
			LockedAmount:     token.Liquidity,
			LockedPercentage: math.Min(100, ratio*100),
			DataSource:       source,
			Confidence:       "medium",
		}
	}
	return &domain.LiquidityLock{
		DataSource: source,
		Confidence: "low",
	}
}

// UnavailableLiquidityLock is the record returned when no market data
// could be fetched at all.
func UnavailableLiquidityLock() *domain.LiquidityLock {
	return &domain.LiquidityLock{
		DataSource: domain.SourceUnavailable,
		Confidence: "low",
	}
}
