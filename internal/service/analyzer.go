package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/aggregator"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/analysis"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/narrator"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// ErrSuperseded is returned when a newer analysis run for a different
// target started while this one was in flight. The caller discards the
// result.
var ErrSuperseded = errors.New("analysis run superseded by a newer target")

// TokenFetcher resolves market data through the provider fallback chain.
type TokenFetcher interface {
	FetchToken(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error)
}

// SocialAnalyzer merges social channel counts across sources.
type SocialAnalyzer interface {
	Analyze(ctx context.Context, address, symbol string) (*domain.SocialHype, error)
}

// SecurityScanner looks up contract security flags.
type SecurityScanner interface {
	FetchTokenSecurity(ctx context.Context, address string, chain domain.Chain) (*provider.SecurityReport, error)
}

// InsightNarrator produces one agent narration per derived record.
type InsightNarrator interface {
	GenerateInsight(ctx context.Context, agent domain.AgentKind, ic narrator.InsightContext) string
}

// Report bundles every derived record produced by one full analysis run.
type Report struct {
	Token         *domain.TokenData        `json:"tokenData"`
	Sentiment     *domain.SentimentData    `json:"sentiment"`
	Technical     *domain.TechnicalData    `json:"technical"`
	Risk          *domain.RiskData         `json:"risk"`
	Security      *domain.ContractSecurity `json:"security"`
	LiquidityLock *domain.LiquidityLock    `json:"liquidityLock"`
	SocialHype    *domain.SocialHype       `json:"socialHype"`
	ExitStrategy  *domain.ExitStrategy     `json:"exitStrategy"`
	Prediction    *domain.PricePrediction  `json:"prediction"`
	Whales        *domain.WhaleActivity    `json:"whaleActivity"`
	SimilarTokens []domain.SimilarToken    `json:"similarTokens"`
	Insights      []domain.AgentInsight    `json:"agentInsights"`
}

// Analyzer runs the full pipeline for one token: market data first,
// then the independent lookups concurrently, then the scorers that
// depend on the token record. Runs do not share state; the only
// cross-run coordination is the supersession guard.
type Analyzer struct {
	tracer   trace.Tracer
	log      zerolog.Logger
	tokens   TokenFetcher
	social   SocialAnalyzer
	security SecurityScanner
	insights InsightNarrator
	now      func() time.Time

	mu     sync.Mutex
	runSeq uint64
	target string
}

func NewAnalyzer(tracer trace.Tracer, log zerolog.Logger, tokens TokenFetcher, social SocialAnalyzer, security SecurityScanner, insights InsightNarrator) *Analyzer {
	return &Analyzer{
		tracer:   tracer,
		log:      log,
		tokens:   tokens,
		social:   social,
		security: security,
		insights: insights,
		now:      time.Now,
	}
}

// begin registers a new run and marks any in-flight run for a different
// target as stale.
func (a *Analyzer) begin(address string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.runSeq++
	a.target = address
	return a.runSeq
}

// current reports whether the given run may still publish its result.
// A later run for the same address does not invalidate an earlier one;
// only a target change does.
func (a *Analyzer) current(run uint64, address string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target == address || a.runSeq == run
}

// Analyze performs one full analysis run. If a newer run for a
// different address starts before this one finishes, the stale result
// is discarded and ErrSuperseded returned.
func (a *Analyzer) Analyze(ctx context.Context, address string, chain domain.Chain) (*Report, error) {
	ctx, span := a.tracer.Start(ctx, "analyzer.analyze")
	defer span.End()
	span.SetAttributes(
		attribute.String("token.address", address),
		attribute.String("token.chain", string(chain)),
	)

	run := a.begin(address)

	token, err := a.tokens.FetchToken(ctx, address, chain)
	if err != nil {
		return nil, fmt.Errorf("fetch token %s: %w", address, err)
	}

	report := &Report{Token: token}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hype, err := a.social.Analyze(gctx, address, token.Symbol)
		if err != nil {
			a.log.Debug().Err(err).Str("address", address).Msg("social analysis failed, omitting from report")
			return nil
		}
		report.SocialHype = hype
		return nil
	})
	g.Go(func() error {
		sec, err := a.security.FetchTokenSecurity(gctx, address, chain)
		if err != nil || sec == nil {
			a.log.Debug().Err(err).Str("address", address).Msg("security scan failed, using fallback score")
			report.Security = analysis.FallbackSecurity()
			return nil
		}
		report.Security = analysis.ScoreSecurity(sec)
		return nil
	})
	g.Go(func() error {
		report.LiquidityLock = analysis.InferLiquidityLock(token)
		report.Sentiment = analysis.SimulateSentiment(address)
		report.Whales = analysis.SimulateWhaleActivity(address, a.now())
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Technical = analysis.AnalyzeTechnical(token)
	report.Risk = analysis.AssessRisk(token)
	report.ExitStrategy = analysis.CalculateExitStrategy(token)
	report.Prediction = analysis.PredictPrice(token, report.Sentiment)
	report.SimilarTokens = analysis.SimulateSimilarTokens(token)
	report.Insights = a.agentInsights(ctx, report)

	if !a.current(run, address) {
		a.log.Debug().Str("address", address).Uint64("run", run).Msg("discarding superseded analysis run")
		return nil, ErrSuperseded
	}

	span.SetAttributes(attribute.String("token.source", string(token.Source)))
	return report, nil
}

// agentInsights runs the four narration agents against the derived
// records. Confidence mirrors what each agent reports alongside its
// text: fixed for the data and technical agents, score-derived for the
// sentiment and risk agents.
func (a *Analyzer) agentInsights(ctx context.Context, report *Report) []domain.AgentInsight {
	if a.insights == nil {
		return nil
	}
	ic := narrator.InsightContext{
		Price:          report.Token.Price,
		MarketCap:      report.Token.MarketCap,
		Volume24h:      report.Token.Volume24h,
		Liquidity:      report.Token.Liquidity,
		Mentions:       report.Sentiment.Mentions,
		Score:          float64(report.Sentiment.Score),
		PriceChange24h: report.Token.PriceChange24h,
		Trend:          string(report.Technical.Trend),
		VolumeTrend:    report.Technical.VolumeTrend,
		RugPullRisk:    float64(report.Risk.RugPullRisk),
		Warnings:       report.Risk.Warnings,
	}
	return []domain.AgentInsight{
		{Agent: domain.AgentData, Text: a.insights.GenerateInsight(ctx, domain.AgentData, ic), Confidence: 95},
		{Agent: domain.AgentSentiment, Text: a.insights.GenerateInsight(ctx, domain.AgentSentiment, ic), Confidence: report.Sentiment.Score},
		{Agent: domain.AgentTechnical, Text: a.insights.GenerateInsight(ctx, domain.AgentTechnical, ic), Confidence: 88},
		{Agent: domain.AgentRisk, Text: a.insights.GenerateInsight(ctx, domain.AgentRisk, ic), Confidence: 100 - report.Risk.Score},
	}
}

var _ TokenFetcher = (*aggregator.TokenAggregator)(nil)
var _ SocialAnalyzer = (*aggregator.SocialAggregator)(nil)
var _ InsightNarrator = (*narrator.Narrator)(nil)
