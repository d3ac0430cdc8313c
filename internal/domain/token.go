package domain

import "time"

// Chain identifies which network a token lives on.
type Chain string

const (
	ChainSolana   Chain = "solana"
	ChainEthereum Chain = "ethereum"
	ChainBSC      Chain = "bsc"
	ChainBase     Chain = "base"
)

// SupportedChains lists every chain the aggregation layer accepts.
var SupportedChains = []Chain{ChainSolana, ChainEthereum, ChainBSC, ChainBase}

func (c Chain) IsValid() bool {
	for _, chain := range SupportedChains {
		if c == chain {
			return true
		}
	}
	return false
}

// Source identifies which external provider produced a data category.
// Attached per category (market data, twitter, reddit, telegram),
// never per individual field.
type Source string

const (
	SourceDexScreener Source = "dexscreener"
	SourceBirdeye     Source = "birdeye"
	SourceCoinGecko   Source = "coingecko"
	SourceDeepSearch  Source = "opendeepsearch"
	SourceSerper      Source = "serper"
	SourceEstimated   Source = "estimated"
	SourceUnavailable Source = "unavailable"
)

// Sentinels used when a provider omits name or symbol.
const (
	UnknownTokenName   = "Unknown Token"
	UnknownTokenSymbol = "???"
)

// TokenData is the normalized market record for one token. Exactly one
// provider populates it per request; fields are never merged across
// providers. Missing numerics normalize to 0, never NaN.
type TokenData struct {
	Address        string    `json:"address"`
	Chain          Chain     `json:"chain"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	Price          float64   `json:"price"`
	PriceChange24h float64   `json:"priceChange24h"`
	Volume24h      float64   `json:"volume24h"`
	MarketCap      float64   `json:"marketCap"`
	Liquidity      float64   `json:"liquidity"`
	Holders        int64     `json:"holders"`
	CreatedAt      time.Time `json:"createdAt"`
	Source         Source    `json:"source,omitempty"`
}
