package analysis

import (
	"math"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// Fixed warning strings appended when their threshold rule fires.
const (
	WarnLowLiquidity  = "Very low liquidity - high slippage risk"
	WarnLowMarketCap  = "Low market cap - highly volatile"
	WarnLowVolume     = "Low trading volume - potential liquidity issues"
	WarnHighVolatilty = "Extreme price volatility detected"
)

// AssessRisk accumulates additive risk points per rule. Liquidity and
// market-cap rules feed the rug-pull figure, the volume rule feeds the
// honeypot figure, and the total caps at 100.
func AssessRisk(token *domain.TokenData) *domain.RiskData {
	var warnings []string
	rugPullRisk := 0
	honeypotRisk := 0

	if token.Liquidity < 10_000 {
		warnings = append(warnings, WarnLowLiquidity)
		rugPullRisk += 30
	}
	if token.MarketCap < 100_000 {
		warnings = append(warnings, WarnLowMarketCap)
		rugPullRisk += 20
	}
	if token.Volume24h < token.MarketCap*0.01 {
		warnings = append(warnings, WarnLowVolume)
		honeypotRisk += 25
	}
	if math.Abs(token.PriceChange24h) > 50 {
		warnings = append(warnings, WarnHighVolatilty)
		rugPullRisk += 15
	}

	score := rugPullRisk + honeypotRisk
	if score > 100 {
		score = 100
	}

	return &domain.RiskData{
		Score:            score,
		RugPullRisk:      rugPullRisk,
		HoneypotRisk:     honeypotRisk,
		LiquidityLocked:  token.Liquidity > 50_000,
		ContractVerified: true,
		Warnings:         warnings,
	}
}
