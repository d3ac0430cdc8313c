package domain

import "time"

type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
)

type Velocity string

const (
	VelocityAccelerating Velocity = "accelerating"
	VelocityStable       Velocity = "stable"
	VelocityDeclining    Velocity = "declining"
)

type DataQuality string

const (
	QualityHigh   DataQuality = "high"
	QualityMedium DataQuality = "medium"
	QualityLow    DataQuality = "low"
)

type SentimentSource struct {
	Platform  string `json:"platform"`
	Sentiment string `json:"sentiment"`
	URL       string `json:"url"`
}

// SentimentData is a placeholder community-sentiment view derived
// deterministically from the token address.
type SentimentData struct {
	Score    int               `json:"score"`
	Mentions int               `json:"mentions"`
	Trending bool              `json:"trending"`
	Sources  []SentimentSource `json:"sources"`
}

type TechnicalData struct {
	Trend       Trend   `json:"trend"`
	VolumeTrend string  `json:"volumeTrend"`
	PriceAction string  `json:"priceAction"`
	Support     float64 `json:"support"`
	Resistance  float64 `json:"resistance"`
}

type RiskData struct {
	Score            int      `json:"score"`
	RugPullRisk      int      `json:"rugPullRisk"`
	HoneypotRisk     int      `json:"honeypotRisk"`
	LiquidityLocked  bool     `json:"liquidityLocked"`
	ContractVerified bool     `json:"contractVerified"`
	Warnings         []string `json:"warnings"`
}

// SocialSources records per-channel provenance for a SocialHype result.
type SocialSources struct {
	Twitter  Source `json:"twitter"`
	Reddit   Source `json:"reddit"`
	Telegram Source `json:"telegram"`
}

type SocialHype struct {
	TwitterMentions24h int           `json:"twitterMentions24h"`
	RedditPosts24h     int           `json:"redditPosts24h"`
	TelegramMembers    int           `json:"telegramMembers,omitempty"`
	TrendingVelocity   Velocity      `json:"trendingVelocity"`
	HypeScore          int           `json:"hypeScore"`
	IsOrganic          bool          `json:"isOrganic"`
	DataSources        SocialSources `json:"dataSources"`
	DataQuality        DataQuality   `json:"dataQuality"`
	Notes              []string      `json:"notes,omitempty"`
}

type LiquidityLock struct {
	IsLocked         bool    `json:"isLocked"`
	LockedAmount     float64 `json:"lockedAmount"`
	LockedPercentage float64 `json:"lockedPercentage"`
	UnlockDate       string  `json:"unlockDate,omitempty"`
	LockProvider     string  `json:"lockProvider,omitempty"`
	DataSource       Source  `json:"dataSource"`
	Confidence       string  `json:"confidence"`
}

type ContractSecurity struct {
	IsHoneypot         bool     `json:"isHoneypot"`
	HasHiddenFees      bool     `json:"hasHiddenFees"`
	CanMint            bool     `json:"canMint"`
	CanBurn            bool     `json:"canBurn"`
	OwnershipRenounced bool     `json:"ownershipRenounced"`
	SecurityScore      int      `json:"securityScore"`
	Risks              []string `json:"risks"`
}

type ExitTarget struct {
	Multiplier      float64 `json:"multiplier"`
	TargetMC        float64 `json:"targetMC"`
	TargetPrice     float64 `json:"targetPrice"`
	PotentialReturn string  `json:"potentialReturn"`
}

type TakeProfitLevel struct {
	Level      string  `json:"level"`
	Percentage int     `json:"percentage"`
	Price      float64 `json:"price"`
}

type ExitStrategy struct {
	CurrentMarketCap    float64           `json:"currentMarketCap"`
	Targets             []ExitTarget      `json:"targets"`
	SuggestedTakeProfit []TakeProfitLevel `json:"suggestedTakeProfit"`
	RiskAdjustedSize    string            `json:"riskAdjustedSize"`
}

type SimilarToken struct {
	Address          string  `json:"address"`
	Name             string  `json:"name"`
	Symbol           string  `json:"symbol"`
	Similarity       int     `json:"similarity"`
	Outcome          string  `json:"outcome"`
	MaxMarketCap     float64 `json:"maxMarketCap"`
	CurrentMarketCap float64 `json:"currentMarketCap"`
	ROI              float64 `json:"roi"`
}

type PredictionPoint struct {
	Price      float64 `json:"price"`
	Change     float64 `json:"change"`
	Confidence int     `json:"confidence"`
}

type PricePrediction struct {
	Prediction24h PredictionPoint `json:"prediction24h"`
	Prediction7d  PredictionPoint `json:"prediction7d"`
	Factors       []string        `json:"factors"`
}

type TopHolder struct {
	Address    string  `json:"address"`
	Balance    float64 `json:"balance"`
	Percentage float64 `json:"percentage"`
}

type WhaleTransaction struct {
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	USDValue  float64   `json:"usdValue"`
	Timestamp time.Time `json:"timestamp"`
	TxHash    string    `json:"txHash"`
}

type WhaleActivity struct {
	TopHolders         []TopHolder        `json:"topHolders"`
	RecentTransactions []WhaleTransaction `json:"recentTransactions"`
	WhaleAlert         bool               `json:"whaleAlert"`
}

// AgentKind selects which analyst persona narrates an insight.
type AgentKind string

const (
	AgentData      AgentKind = "data"
	AgentSentiment AgentKind = "sentiment"
	AgentTechnical AgentKind = "technical"
	AgentRisk      AgentKind = "risk"
)

func (a AgentKind) IsValid() bool {
	switch a {
	case AgentData, AgentSentiment, AgentTechnical, AgentRisk:
		return true
	}
	return false
}

// AgentInsight is one ephemeral narration produced for an analysis run.
// Confidence mirrors the figure each agent reports alongside its text:
// fixed for the data and technical agents, score-derived for the
// sentiment and risk agents.
type AgentInsight struct {
	Agent      AgentKind `json:"agent"`
	Text       string    `json:"text"`
	Confidence int       `json:"confidence"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TokenContext bundles every derived record for one token so the chat
// narrator can summarize the full analysis.
type TokenContext struct {
	TokenData     *TokenData        `json:"tokenData,omitempty"`
	Sentiment     *SentimentData    `json:"sentiment,omitempty"`
	Technical     *TechnicalData    `json:"technical,omitempty"`
	Risk          *RiskData         `json:"risk,omitempty"`
	Security      *ContractSecurity `json:"security,omitempty"`
	ExitStrategy  *ExitStrategy     `json:"exitStrategy,omitempty"`
	Prediction    *PricePrediction  `json:"prediction,omitempty"`
	SocialHype    *SocialHype       `json:"socialHype,omitempty"`
	LiquidityLock *LiquidityLock    `json:"liquidityLock,omitempty"`
}
