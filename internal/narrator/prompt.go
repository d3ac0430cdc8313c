package narrator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

func agentSystemPrompt(agent domain.AgentKind) string {
	switch agent {
	case domain.AgentSentiment:
		return "You are a Sentiment Analyzer agent tracking social media buzz. Be enthusiastic but honest about community sentiment."
	case domain.AgentTechnical:
		return "You are a Technical Analyst agent reading charts and patterns. Use trading terminology and be analytical."
	case domain.AgentRisk:
		return "You are a Risk Assessor agent identifying dangers. Be cautious and highlight red flags clearly."
	default:
		return "You are a Data Collector agent analyzing memecoin on-chain data. Be concise and factual. Focus on key metrics."
	}
}

func agentPrompt(agent domain.AgentKind, ic InsightContext) string {
	switch agent {
	case domain.AgentSentiment:
		return fmt.Sprintf("This memecoin has %d social mentions with a sentiment score of %.0f/100. Is it trending? Give insight in 1-2 sentences.",
			ic.Mentions, ic.Score)
	case domain.AgentTechnical:
		return fmt.Sprintf("Price change 24h: %.2f%%, Trend: %s, Volume trend: %s. Provide technical analysis in 1-2 sentences.",
			ic.PriceChange24h, ic.Trend, ic.VolumeTrend)
	case domain.AgentRisk:
		return fmt.Sprintf("Risk score: %.0f/100, Rug pull risk: %.0f, Warnings: %s. Assess the risk in 1-2 sentences.",
			ic.Score, ic.RugPullRisk, strings.Join(ic.Warnings, ", "))
	default:
		return fmt.Sprintf("Analyze this memecoin data: Price: $%v, Market Cap: $%s, Volume: $%s, Liquidity: $%s. Give a brief insight in 1-2 sentences.",
			ic.Price, comma(ic.MarketCap), comma(ic.Volume24h), comma(ic.Liquidity))
	}
}

const chatPersona = `You are Dobby, an unhinged but brilliant memecoin advisor. You're blunt, sometimes rude, but always honest and helpful. You give straight talk about crypto investments without sugar-coating.`

// chatSystemPrompt serializes every derived record into the system
// instruction so the assistant can answer with specifics.
func chatSystemPrompt(tc *domain.TokenContext) string {
	var sb strings.Builder
	sb.WriteString(chatPersona)
	sb.WriteString("\n\n")
	if tc != nil {
		sb.WriteString(formatTokenContext(tc))
		sb.WriteString("\n")
	}
	sb.WriteString("Based on this analysis, answer the user's questions with specific insights and data.")
	return sb.String()
}

func formatTokenContext(tc *domain.TokenContext) string {
	var sb strings.Builder
	sb.WriteString("COMPLETE TOKEN ANALYSIS:\n")

	if t := tc.TokenData; t != nil {
		sb.WriteString("\nBasic Info:\n")
		fmt.Fprintf(&sb, "- Name: %s (%s)\n", t.Name, t.Symbol)
		fmt.Fprintf(&sb, "- Chain: %s\n", strings.ToUpper(string(t.Chain)))
		fmt.Fprintf(&sb, "- Contract: %s\n", t.Address)
		fmt.Fprintf(&sb, "- Price: $%.8f\n", t.Price)
		fmt.Fprintf(&sb, "- Market Cap: $%s\n", comma(t.MarketCap))
		fmt.Fprintf(&sb, "- 24h Change: %+.2f%%\n", t.PriceChange24h)
		fmt.Fprintf(&sb, "- Volume 24h: $%s\n", comma(t.Volume24h))
		fmt.Fprintf(&sb, "- Liquidity: $%s\n", comma(t.Liquidity))
		fmt.Fprintf(&sb, "- Holders: %d\n", t.Holders)
	}

	if s := tc.Sentiment; s != nil {
		sb.WriteString("\nSentiment Analysis:\n")
		fmt.Fprintf(&sb, "- Overall Score: %d/100 (%s)\n", s.Score, sentimentLabel(s.Score))
		fmt.Fprintf(&sb, "- Social Mentions: %d\n", s.Mentions)
		if s.Trending {
			sb.WriteString("- Trending: YES - Hot right now!\n")
		} else {
			sb.WriteString("- Trending: No\n")
		}
	}

	if t := tc.Technical; t != nil {
		sb.WriteString("\nTechnical Analysis:\n")
		fmt.Fprintf(&sb, "- Trend: %s\n", strings.ToUpper(string(t.Trend)))
		fmt.Fprintf(&sb, "- Volume Trend: %s\n", t.VolumeTrend)
		fmt.Fprintf(&sb, "- Price Action: %s\n", t.PriceAction)
	}

	if r := tc.Risk; r != nil {
		sb.WriteString("\nRisk Assessment:\n")
		fmt.Fprintf(&sb, "- Overall Risk Score: %d/100 (%s)\n", r.Score, riskLabel(r.Score))
		fmt.Fprintf(&sb, "- Rug Pull Risk: %d/100\n", r.RugPullRisk)
		fmt.Fprintf(&sb, "- Honeypot Risk: %d/100\n", r.HoneypotRisk)
		if len(r.Warnings) > 0 {
			fmt.Fprintf(&sb, "- WARNINGS: %s\n", strings.Join(r.Warnings, "; "))
		} else {
			sb.WriteString("- No major warnings\n")
		}
	}

	if s := tc.Security; s != nil {
		sb.WriteString("\nContract Security:\n")
		fmt.Fprintf(&sb, "- Security Score: %d/100\n", s.SecurityScore)
		fmt.Fprintf(&sb, "- Honeypot: %t, Can Mint: %t, Ownership Renounced: %t\n",
			s.IsHoneypot, s.CanMint, s.OwnershipRenounced)
		if len(s.Risks) > 0 {
			fmt.Fprintf(&sb, "- Risks: %s\n", strings.Join(s.Risks, "; "))
		}
	}

	if l := tc.LiquidityLock; l != nil {
		sb.WriteString("\nLiquidity Lock:\n")
		fmt.Fprintf(&sb, "- Locked: %t (%.1f%% of market cap, %s confidence)\n",
			l.IsLocked, l.LockedPercentage, l.Confidence)
	}

	if e := tc.ExitStrategy; e != nil {
		sb.WriteString("\nExit Strategy:\n")
		fmt.Fprintf(&sb, "- Current Market Cap: $%s\n", comma(e.CurrentMarketCap))
		fmt.Fprintf(&sb, "- Suggested Position: %s\n", e.RiskAdjustedSize)
	}

	if p := tc.Prediction; p != nil {
		sb.WriteString("\nPrice Prediction:\n")
		fmt.Fprintf(&sb, "- 24h: %+.1f%% (confidence %d%%)\n", p.Prediction24h.Change, p.Prediction24h.Confidence)
		fmt.Fprintf(&sb, "- 7d: %+.1f%% (confidence %d%%)\n", p.Prediction7d.Change, p.Prediction7d.Confidence)
	}

	if h := tc.SocialHype; h != nil {
		sb.WriteString("\nSocial Hype:\n")
		fmt.Fprintf(&sb, "- Hype Score: %d/100 (%s, quality %s)\n", h.HypeScore, h.TrendingVelocity, h.DataQuality)
		fmt.Fprintf(&sb, "- Twitter: %d mentions, Reddit: %d posts\n", h.TwitterMentions24h, h.RedditPosts24h)
	}

	return sb.String()
}

func sentimentLabel(score int) string {
	switch {
	case score > 70:
		return "Very Positive"
	case score > 50:
		return "Positive"
	case score > 30:
		return "Neutral"
	default:
		return "Negative"
	}
}

func riskLabel(score int) string {
	switch {
	case score > 70:
		return "HIGH RISK"
	case score > 40:
		return "MEDIUM RISK"
	default:
		return "LOW RISK"
	}
}

// comma renders a value with thousands separators, the way the UI
// shows dollar amounts.
func comma(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
