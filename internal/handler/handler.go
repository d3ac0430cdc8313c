package handler

import (
	"context"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/narrator"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/service"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/social"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

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

// HypeAnalytics serves the lightweight twitter/reddit hype view.
type HypeAnalytics interface {
	Hype(ctx context.Context, symbol, address string) (*social.HypeData, error)
}

// InsightNarrator narrates derived records and answers chat questions.
type InsightNarrator interface {
	GenerateInsight(ctx context.Context, agent domain.AgentKind, ic narrator.InsightContext) string
	Chat(ctx context.Context, userMessage string, tokenCtx *domain.TokenContext, history []domain.ChatMessage) string
}

type Handler struct {
	tracer    trace.Tracer
	tokens    TokenFetcher
	social    SocialAnalyzer
	security  SecurityScanner
	analytics HypeAnalytics
	narrator  InsightNarrator
	analyzer  *service.Analyzer
}

func New(
	tracer trace.Tracer,
	tokens TokenFetcher,
	social SocialAnalyzer,
	security SecurityScanner,
	analytics HypeAnalytics,
	insights InsightNarrator,
	analyzer *service.Analyzer,
) *Handler {
	return &Handler{
		tracer:    tracer,
		tokens:    tokens,
		social:    social,
		security:  security,
		analytics: analytics,
		narrator:  insights,
		analyzer:  analyzer,
	}
}

// RegisterRoutes mounts the API. Middleware applies to the /api group
// only; health stays open for probes.
func (h *Handler) RegisterRoutes(r *gin.Engine, mw ...gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api", mw...)
	api.POST("/crypto", h.Crypto)
	api.POST("/ai", h.AI)
	api.GET("/social-hype", h.SocialHype)
	api.POST("/analyze", h.Analyze)
}
