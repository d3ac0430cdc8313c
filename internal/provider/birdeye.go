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

const birdeyeBaseURL = "https://public-api.birdeye.so"

// BirdeyeProvider fetches Solana token overviews. Used as the
// chain-specific fallback when DexScreener has no data.
type BirdeyeProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewBirdeyeProvider(apiKey string, tracer trace.Tracer) *BirdeyeProvider {
	return &BirdeyeProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: birdeyeBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// FetchTokenOverview returns a normalized record for a Solana token.
func (p *BirdeyeProvider) FetchTokenOverview(ctx context.Context, address string) (*domain.TokenData, error) {
	_, span := p.tracer.Start(ctx, "birdeye.fetch-token-overview")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address))

	url := fmt.Sprintf("%s/defi/token_overview?address=%s", strings.TrimRight(p.baseURL, "/"), address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newError(domain.SourceBirdeye, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, newError(domain.SourceBirdeye, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, failf(domain.SourceBirdeye, resp.StatusCode, "birdeye API error: %s", string(body))
	}

	var payload struct {
		Success bool `json:"success"`
		Data    *struct {
			Name                  string  `json:"name"`
			Symbol                string  `json:"symbol"`
			Price                 float64 `json:"price"`
			PriceChange24hPercent float64 `json:"priceChange24hPercent"`
			V24hUSD               float64 `json:"v24hUSD"`
			MC                    float64 `json:"mc"`
			Liquidity             float64 `json:"liquidity"`
			Holder                int64   `json:"holder"`
			UniqueWallet24h       int64   `json:"uniqueWallet24h"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, failf(domain.SourceBirdeye, resp.StatusCode, "decode birdeye response: %w", err)
	}
	if !payload.Success || payload.Data == nil {
		return nil, failf(domain.SourceBirdeye, resp.StatusCode, "invalid birdeye response for %s", address)
	}

	data := payload.Data
	name := data.Name
	if name == "" {
		name = data.Symbol
	}
	if name == "" {
		name = domain.UnknownTokenName
	}
	symbol := data.Symbol
	if symbol == "" {
		symbol = domain.UnknownTokenSymbol
	}
	holders := data.Holder
	if holders == 0 {
		holders = data.UniqueWallet24h
	}

	return &domain.TokenData{
		Address:        address,
		Chain:          domain.ChainSolana,
		Name:           name,
		Symbol:         symbol,
		Price:          data.Price,
		PriceChange24h: data.PriceChange24hPercent,
		Volume24h:      data.V24hUSD,
		MarketCap:      data.MC,
		Liquidity:      data.Liquidity,
		Holders:        holders,
		CreatedAt:      time.Now().UTC(),
		Source:         domain.SourceBirdeye,
	}, nil
}
