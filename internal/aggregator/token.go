package aggregator

import (
	"context"
	"fmt"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DexScreenerSource is the primary market-data source for every chain.
type DexScreenerSource interface {
	FetchToken(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error)
}

// BirdeyeSource is the Solana-specific secondary source.
type BirdeyeSource interface {
	FetchTokenOverview(ctx context.Context, address string) (*domain.TokenData, error)
}

// ContractSource is the last-resort contract lookup for EVM chains.
type ContractSource interface {
	FetchContract(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error)
}

// TokenAggregator resolves a token's market record by walking a fixed
// provider priority: DexScreener, then Birdeye (solana) or CoinGecko
// (everything else). The first success wins; records are never merged
// across providers.
type TokenAggregator struct {
	tracer    trace.Tracer
	log       zerolog.Logger
	dex       DexScreenerSource
	birdeye   BirdeyeSource
	coingecko ContractSource
}

func NewTokenAggregator(
	tracer trace.Tracer,
	log zerolog.Logger,
	dex DexScreenerSource,
	birdeye BirdeyeSource,
	coingecko ContractSource,
) *TokenAggregator {
	return &TokenAggregator{
		tracer:    tracer,
		log:       log,
		dex:       dex,
		birdeye:   birdeye,
		coingecko: coingecko,
	}
}

// FetchToken returns the first provider's fully populated record, tagged
// with that provider's identity. Once every source in the chain has
// failed it wraps provider.ErrExhausted.
func (a *TokenAggregator) FetchToken(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error) {
	ctx, span := a.tracer.Start(ctx, "aggregator.fetch-token")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address), attribute.String("token.chain", string(chain)))

	if token, err := a.dex.FetchToken(ctx, address, chain); err == nil {
		token.Source = domain.SourceDexScreener
		span.SetAttributes(attribute.String("token.source", string(token.Source)))
		return token, nil
	} else {
		a.log.Debug().Err(err).Str("address", address).Msg("dexscreener failed, trying alternatives")
	}

	if chain == domain.ChainSolana {
		token, err := a.birdeye.FetchTokenOverview(ctx, address)
		if err == nil {
			token.Source = domain.SourceBirdeye
			span.SetAttributes(attribute.String("token.source", string(token.Source)))
			return token, nil
		}
		a.log.Debug().Err(err).Str("address", address).Msg("birdeye failed")
	} else {
		token, err := a.coingecko.FetchContract(ctx, address, chain)
		if err == nil {
			token.Source = domain.SourceCoinGecko
			span.SetAttributes(attribute.String("token.source", string(token.Source)))
			return token, nil
		}
		a.log.Debug().Err(err).Str("address", address).Msg("coingecko failed")
	}

	err := fmt.Errorf("fetch token %s on %s: %w", address, chain, provider.ErrExhausted)
	span.RecordError(err)
	return nil, err
}
