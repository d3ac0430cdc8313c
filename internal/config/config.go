package config

import (
	"log"
	"os"
	"strings"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/narrator"
)

type Config struct {
	Addr string

	CoinGeckoAPIKey    string
	BirdeyeAPIKey      string
	SerperAPIKey       string
	TavilyAPIKey       string
	TwitterBearerToken string

	GroqAPIKey      string
	GroqModel       string
	FireworksAPIKey string
	FireworksModel  string

	APIKey string
}

func Load() *Config {
	cfg := &Config{
		CoinGeckoAPIKey:    os.Getenv("COINGECKO_API_KEY"),
		BirdeyeAPIKey:      os.Getenv("BIRDEYE_API_KEY"),
		SerperAPIKey:       os.Getenv("SERPER_API_KEY"),
		TavilyAPIKey:       os.Getenv("TAVILY_API_KEY"),
		TwitterBearerToken: os.Getenv("TWITTER_BEARER_TOKEN"),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		FireworksAPIKey:    os.Getenv("FIREWORKS_API_KEY"),
		APIKey:             os.Getenv("API_KEY"),
	}

	cfg.Addr = strings.TrimSpace(os.Getenv("ADDR"))
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	if cfg.BirdeyeAPIKey == "" {
		log.Println("Warning: BIRDEYE_API_KEY not set, Solana token fallback will be skipped")
	}
	if cfg.SerperAPIKey == "" {
		log.Println("Warning: SERPER_API_KEY not set, web search degraded")
	}
	if cfg.TavilyAPIKey == "" {
		log.Println("Warning: TAVILY_API_KEY not set, search fallback disabled")
	}
	if cfg.TwitterBearerToken == "" {
		log.Println("Warning: TWITTER_BEARER_TOKEN not set, twitter metrics will be estimated")
	}
	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set, agent insights will use fallback text")
	}
	if cfg.FireworksAPIKey == "" {
		log.Println("Warning: FIREWORKS_API_KEY not set, chat will use canned replies")
	}

	cfg.GroqModel = strings.TrimSpace(os.Getenv("GROQ_MODEL"))
	if cfg.GroqModel == "" {
		cfg.GroqModel = narrator.DefaultInsightModel
	}

	cfg.FireworksModel = strings.TrimSpace(os.Getenv("FIREWORKS_MODEL"))
	if cfg.FireworksModel == "" {
		cfg.FireworksModel = narrator.DefaultChatModel
	}

	return cfg
}
