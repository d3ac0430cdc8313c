package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type stubDex struct {
	token *domain.TokenData
	err   error
	calls int
}

func (s *stubDex) FetchToken(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error) {
	s.calls++
	return s.token, s.err
}

type stubBirdeye struct {
	token *domain.TokenData
	err   error
	calls int
}

func (s *stubBirdeye) FetchTokenOverview(ctx context.Context, address string) (*domain.TokenData, error) {
	s.calls++
	return s.token, s.err
}

type stubContract struct {
	token *domain.TokenData
	err   error
	calls int
}

func (s *stubContract) FetchContract(ctx context.Context, address string, chain domain.Chain) (*domain.TokenData, error) {
	s.calls++
	return s.token, s.err
}

func newTestTokenAggregator(dex *stubDex, birdeye *stubBirdeye, cg *stubContract) *TokenAggregator {
	return NewTokenAggregator(
		trace.NewNoopTracerProvider().Tracer("test"),
		zerolog.Nop(),
		dex, birdeye, cg,
	)
}

func TestFetchTokenPrimaryWins(t *testing.T) {
	t.Parallel()

	dex := &stubDex{token: &domain.TokenData{Symbol: "PEPE", Price: 1}}
	birdeye := &stubBirdeye{err: errors.New("should not be called")}
	cg := &stubContract{err: errors.New("should not be called")}

	token, err := newTestTokenAggregator(dex, birdeye, cg).FetchToken(context.Background(), "0xabc", domain.ChainEthereum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Source != domain.SourceDexScreener {
		t.Fatalf("expected dexscreener provenance, got %s", token.Source)
	}
	if birdeye.calls != 0 || cg.calls != 0 {
		t.Fatal("secondary providers should not be consulted on primary success")
	}
}

func TestFetchTokenSolanaFallsBackToBirdeye(t *testing.T) {
	t.Parallel()

	dex := &stubDex{err: errors.New("dexscreener down")}
	birdeye := &stubBirdeye{token: &domain.TokenData{Symbol: "BONK", Holders: 5000}}
	cg := &stubContract{err: errors.New("should not be called")}

	token, err := newTestTokenAggregator(dex, birdeye, cg).FetchToken(context.Background(), "So1ana", domain.ChainSolana)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Source != domain.SourceBirdeye {
		t.Fatalf("expected birdeye provenance, got %s", token.Source)
	}
	if token.Holders != 5000 {
		t.Fatalf("expected birdeye fields intact, got %+v", token)
	}
	if cg.calls != 0 {
		t.Fatal("coingecko should be skipped on solana")
	}
}

func TestFetchTokenEVMFallsBackToCoinGecko(t *testing.T) {
	t.Parallel()

	dex := &stubDex{err: errors.New("dexscreener down")}
	birdeye := &stubBirdeye{err: errors.New("should not be called")}
	cg := &stubContract{token: &domain.TokenData{Symbol: "FLOKI"}}

	token, err := newTestTokenAggregator(dex, birdeye, cg).FetchToken(context.Background(), "0xdef", domain.ChainBSC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Source != domain.SourceCoinGecko {
		t.Fatalf("expected coingecko provenance, got %s", token.Source)
	}
	if birdeye.calls != 0 {
		t.Fatal("birdeye should be skipped off solana")
	}
}

func TestFetchTokenExhaustion(t *testing.T) {
	t.Parallel()

	dex := &stubDex{err: errors.New("down")}
	birdeye := &stubBirdeye{err: errors.New("down")}
	cg := &stubContract{err: errors.New("down")}

	_, err := newTestTokenAggregator(dex, birdeye, cg).FetchToken(context.Background(), "So1ana", domain.ChainSolana)
	if !errors.Is(err, provider.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}
