package narrator

import (
	"fmt"
	"math"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// ChatFallbackReply is the canned answer when the chat model is
// unreachable.
const ChatFallbackReply = "Yo, my API connection is acting up. Try asking again in a sec, or maybe rephrase your question."

// FallbackInsight assembles the template commentary used whenever the
// hosted model cannot be reached. It is a pure function of the context
// and always succeeds.
func FallbackInsight(agent domain.AgentKind, ic InsightContext) string {
	switch agent {
	case domain.AgentSentiment:
		label := "negative"
		if ic.Score > 60 {
			label = "positive"
		} else if ic.Score > 40 {
			label = "neutral"
		}
		return fmt.Sprintf("Detected %d social mentions with %s sentiment overall.", ic.Mentions, label)

	case domain.AgentTechnical:
		direction := "down"
		if ic.PriceChange24h > 0 {
			direction = "up"
		}
		momentum := "Sideways movement."
		switch ic.Trend {
		case string(domain.TrendBullish):
			momentum = "Bullish momentum detected."
		case string(domain.TrendBearish):
			momentum = "Bearish pressure present."
		}
		return fmt.Sprintf("Price is %s %.2f%% in 24h. %s", direction, math.Abs(ic.PriceChange24h), momentum)

	case domain.AgentRisk:
		note := "Standard risk factors detected."
		if len(ic.Warnings) > 0 {
			note = ic.Warnings[0]
		}
		return fmt.Sprintf("Risk score: %.0f/100. %s", ic.Score, note)

	default:
		return fmt.Sprintf("Found token data: $%v price with $%s daily volume. Market cap is $%s.",
			ic.Price, comma(ic.Volume24h), comma(ic.MarketCap))
	}
}
