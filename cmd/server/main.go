package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/aggregator"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/config"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/handler"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/narrator"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/service"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/social"
	"github.com/Kyozuro111/ROMA-Memetrace/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/Kyozuro111/ROMA-Memetrace/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initTracerFunc         = tracing.InitTracer
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Memetrace API
// @version         1.0
// @description     Memecoin analysis service with multi-source data aggregation and AI agent insights.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Data providers
	dex := provider.NewDexScreenerProvider(tracer)
	birdeye := provider.NewBirdeyeProvider(cfg.BirdeyeAPIKey, tracer)
	coingecko := provider.NewCoinGeckoProvider(cfg.CoinGeckoAPIKey, tracer)
	goplus := provider.NewGoPlusProvider(tracer)
	serper := provider.NewSerperProvider(cfg.SerperAPIKey, tracer)
	tavily := provider.NewTavilyProvider(cfg.TavilyAPIKey, tracer)
	twitter := provider.NewTwitterProvider(cfg.TwitterBearerToken, tracer)

	// Aggregation
	tokens := aggregator.NewTokenAggregator(tracer, logger, dex, birdeye, coingecko)
	deepSearch := aggregator.NewDeepSearch(tracer, logger, serper, tavily)
	socialAgg := aggregator.NewSocialAggregator(tracer, logger, dex, coingecko, deepSearch, serper)
	analytics := social.NewAnalytics(tracer, logger, twitter, serper, tavily)

	// Narration
	insights := narrator.New(tracer, logger,
		narrator.NewGroqClient(cfg.GroqAPIKey),
		narrator.NewFireworksClient(cfg.FireworksAPIKey),
		cfg.GroqModel, cfg.FireworksModel)

	analyzer := service.NewAnalyzer(tracer, logger, tokens, socialAgg, goplus, insights)

	h := newHandlerFunc(tracer, tokens, socialAgg, goplus, analytics, insights, analyzer)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("memetrace"))

	h.RegisterRoutes(r, handler.APIKeyAuth(cfg.APIKey))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
