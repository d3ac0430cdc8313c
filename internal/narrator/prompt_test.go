package narrator

import (
	"strings"
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

func TestAgentPromptsCarryContext(t *testing.T) {
	t.Parallel()

	ic := InsightContext{
		Price:          0.0001,
		MarketCap:      250000,
		Volume24h:      90000,
		Liquidity:      40000,
		Mentions:       321,
		Score:          72,
		PriceChange24h: -12.5,
		Trend:          "bearish",
		VolumeTrend:    "stable",
		RugPullRisk:    45,
		Warnings:       []string{"Low market cap - highly volatile"},
	}

	if p := agentPrompt(domain.AgentSentiment, ic); !strings.Contains(p, "321") || !strings.Contains(p, "72") {
		t.Fatalf("sentiment prompt missing figures: %q", p)
	}
	if p := agentPrompt(domain.AgentTechnical, ic); !strings.Contains(p, "bearish") || !strings.Contains(p, "-12.50") {
		t.Fatalf("technical prompt missing figures: %q", p)
	}
	if p := agentPrompt(domain.AgentRisk, ic); !strings.Contains(p, "Low market cap") {
		t.Fatalf("risk prompt missing warnings: %q", p)
	}
	if p := agentPrompt(domain.AgentData, ic); !strings.Contains(p, "250,000") {
		t.Fatalf("data prompt missing market cap: %q", p)
	}
}

func TestChatSystemPromptSerializesContext(t *testing.T) {
	t.Parallel()

	tc := &domain.TokenContext{
		TokenData: &domain.TokenData{
			Name: "Pepe", Symbol: "PEPE", Chain: domain.ChainEthereum,
			Address: "0xabc", Price: 0.0000012, MarketCap: 4_200_000,
		},
		Risk: &domain.RiskData{Score: 80, RugPullRisk: 60, Warnings: []string{"Very low liquidity - high slippage risk"}},
		Prediction: &domain.PricePrediction{
			Prediction24h: domain.PredictionPoint{Change: 12.5, Confidence: 70},
			Prediction7d:  domain.PredictionPoint{Change: 31.3, Confidence: 45},
		},
	}

	prompt := chatSystemPrompt(tc)
	if !strings.Contains(prompt, "Dobby") {
		t.Fatal("persona missing from system prompt")
	}
	if !strings.Contains(prompt, "COMPLETE TOKEN ANALYSIS") {
		t.Fatal("analysis summary missing")
	}
	if !strings.Contains(prompt, "Pepe (PEPE)") || !strings.Contains(prompt, "4,200,000") {
		t.Fatalf("token block malformed: %q", prompt)
	}
	if !strings.Contains(prompt, "HIGH RISK") {
		t.Fatal("risk label missing")
	}
	if !strings.Contains(prompt, "+12.5%") {
		t.Fatal("prediction block missing")
	}
}

func TestChatSystemPromptWithoutContext(t *testing.T) {
	t.Parallel()

	prompt := chatSystemPrompt(nil)
	if !strings.Contains(prompt, "Dobby") || strings.Contains(prompt, "COMPLETE TOKEN ANALYSIS") {
		t.Fatalf("unexpected prompt without context: %q", prompt)
	}
}

func TestComma(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		1234567:    "1,234,567",
		-42000:     "-42,000",
		1234567.89: "1,234,568",
	}
	for in, want := range tests {
		if got := comma(in); got != want {
			t.Fatalf("comma(%f): expected %s, got %s", in, want, got)
		}
	}
}
