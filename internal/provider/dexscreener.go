package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const dexScreenerBaseURL = "https://api.dexscreener.com"

// DexScreenerProvider fetches DEX pair data. It needs no API key and is
// the primary market-data source for every chain.
type DexScreenerProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewDexScreenerProvider(tracer trace.Tracer) *DexScreenerProvider {
	return &DexScreenerProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: dexScreenerBaseURL,
		tracer:  tracer,
	}
}

type dexPair struct {
	ChainID   string `json:"chainId"`
	BaseToken struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	PriceUSD    string `json:"priceUsd"`
	PriceChange struct {
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
	Volume struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	Liquidity *struct {
		USD  float64 `json:"usd"`
		Base float64 `json:"base"`
	} `json:"liquidity"`
	FDV           float64 `json:"fdv"`
	MarketCap     float64 `json:"marketCap"`
	PairCreatedAt int64   `json:"pairCreatedAt"`
}

// FetchToken looks up every pair for the address, keeps the ones on the
// requested chain, and normalizes the pair with the deepest USD
// liquidity. Pairs from other chains are only considered when the
// requested chain has none at all.
func (p *DexScreenerProvider) FetchToken(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error) {
	_, span := p.tracer.Start(ctx, "dexscreener.fetch-token")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address), attribute.String("token.chain", string(chain)))

	url := fmt.Sprintf("%s/latest/dex/tokens/%s", strings.TrimRight(p.baseURL, "/"), address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newError(domain.SourceDexScreener, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, newError(domain.SourceDexScreener, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, failf(domain.SourceDexScreener, resp.StatusCode, "dexscreener API error: %s", string(body))
	}

	var payload struct {
		Pairs []dexPair `json:"pairs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, failf(domain.SourceDexScreener, resp.StatusCode, "decode dexscreener response: %w", err)
	}

	pair, ok := bestPair(payload.Pairs, chain)
	if !ok {
		return nil, failf(domain.SourceDexScreener, resp.StatusCode, "token %s not found on dexscreener", address)
	}

	liquidity := 0.0
	if pair.Liquidity != nil {
		liquidity = pair.Liquidity.USD
		if liquidity == 0 {
			liquidity = pair.Liquidity.Base
		}
	}
	marketCap := pair.MarketCap
	if marketCap == 0 {
		marketCap = pair.FDV
	}

	createdAt := time.Now().UTC()
	if pair.PairCreatedAt > 0 {
		createdAt = time.UnixMilli(pair.PairCreatedAt).UTC()
	}

	name := pair.BaseToken.Name
	if name == "" {
		name = domain.UnknownTokenName
	}
	symbol := pair.BaseToken.Symbol
	if symbol == "" {
		symbol = domain.UnknownTokenSymbol
	}

	return &domain.TokenData{
		Address:        address,
		Chain:          chain,
		Name:           name,
		Symbol:         symbol,
		Price:          parsePrice(pair.PriceUSD),
		PriceChange24h: pair.PriceChange.H24,
		Volume24h:      pair.Volume.H24,
		MarketCap:      marketCap,
		Liquidity:      liquidity,
		Holders:        0, // DexScreener does not expose holder counts
		CreatedAt:      createdAt,
		Source:         domain.SourceDexScreener,
	}, nil
}

// bestPair picks the chain-matching pair with the highest USD liquidity,
// falling back to the first pair of any chain.
func bestPair(pairs []dexPair, chain domain.Chain) (dexPair, bool) {
	if len(pairs) == 0 {
		return dexPair{}, false
	}

	matching := make([]dexPair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.ChainID == string(chain) {
			matching = append(matching, pair)
		}
	}
	if len(matching) == 0 {
		return pairs[0], true
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return pairLiquidity(matching[i]) > pairLiquidity(matching[j])
	})
	return matching[0], true
}

func pairLiquidity(p dexPair) float64 {
	if p.Liquidity == nil {
		return 0
	}
	return p.Liquidity.USD
}

func parsePrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
