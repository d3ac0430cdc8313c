package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider serves two roles: last-resort market data via the
// contract endpoint, and community stats for the social aggregation.
// Rate limited to 8 requests per minute (one token every 7.5 seconds).
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

func NewCoinGeckoProvider(apiKey string, tracer trace.Tracer) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: coingeckoBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

// coingeckoChainID maps our chain names onto CoinGecko asset platforms.
func coingeckoChainID(chain domain.Chain) string {
	switch chain {
	case domain.ChainSolana:
		return "solana"
	case domain.ChainBSC:
		return "binance-smart-chain"
	case domain.ChainBase:
		return "base"
	default:
		return "ethereum"
	}
}

// FetchContract returns a normalized market record from the contract
// lookup endpoint.
func (p *CoinGeckoProvider) FetchContract(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-contract")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address), attribute.String("token.chain", string(chain)))

	url := fmt.Sprintf("%s/coins/%s/contract/%s", strings.TrimRight(p.baseURL, "/"), coingeckoChainID(chain), address)
	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		GenesisDate string `json:"genesis_date"`
		MarketData  *struct {
			CurrentPrice             map[string]float64 `json:"current_price"`
			PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
			TotalVolume              map[string]float64 `json:"total_volume"`
			MarketCap                map[string]float64 `json:"market_cap"`
			TotalValueLocked         map[string]float64 `json:"total_value_locked"`
		} `json:"market_data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, failf(domain.SourceCoinGecko, http.StatusOK, "decode coingecko contract response: %w", err)
	}

	record := &domain.TokenData{
		Address:   address,
		Chain:     chain,
		Name:      domain.UnknownTokenName,
		Symbol:    domain.UnknownTokenSymbol,
		CreatedAt: time.Now().UTC(),
		Source:    domain.SourceCoinGecko,
	}
	if payload.Name != "" {
		record.Name = payload.Name
	}
	if payload.Symbol != "" {
		record.Symbol = strings.ToUpper(payload.Symbol)
	}
	if payload.GenesisDate != "" {
		if t, err := time.Parse("2006-01-02", payload.GenesisDate); err == nil {
			record.CreatedAt = t.UTC()
		}
	}
	if md := payload.MarketData; md != nil {
		record.Price = md.CurrentPrice["usd"]
		record.PriceChange24h = md.PriceChangePercentage24h
		record.Volume24h = md.TotalVolume["usd"]
		record.MarketCap = md.MarketCap["usd"]
		record.Liquidity = md.TotalValueLocked["usd"]
	}
	return record, nil
}

// FetchCommunity returns follower/subscriber/member counters for the
// social aggregation layer.
func (p *CoinGeckoProvider) FetchCommunity(ctx context.Context, address string, chain domain.Chain) (*CommunityStats, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-community")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address))

	url := fmt.Sprintf("%s/coins/%s/contract/%s", strings.TrimRight(p.baseURL, "/"), coingeckoChainID(chain), address)
	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CommunityData struct {
			TwitterFollowers         int64 `json:"twitter_followers"`
			RedditSubscribers        int64 `json:"reddit_subscribers"`
			TelegramChannelUserCount int64 `json:"telegram_channel_user_count"`
		} `json:"community_data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, failf(domain.SourceCoinGecko, http.StatusOK, "decode coingecko community response: %w", err)
	}

	return &CommunityStats{
		TwitterFollowers:  payload.CommunityData.TwitterFollowers,
		RedditSubscribers: payload.CommunityData.RedditSubscribers,
		TelegramMembers:   payload.CommunityData.TelegramChannelUserCount,
	}, nil
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, newError(domain.SourceCoinGecko, 0, fmt.Errorf("rate limit wait: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newError(domain.SourceCoinGecko, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, newError(domain.SourceCoinGecko, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, failf(domain.SourceCoinGecko, resp.StatusCode, "coingecko API error: %s", string(body))
	}

	return io.ReadAll(resp.Body)
}
