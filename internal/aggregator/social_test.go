package aggregator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type stubCommunity struct {
	stats *provider.CommunityStats
	err   error
}

func (s *stubCommunity) FetchCommunity(ctx context.Context, address string, chain domain.Chain) (*provider.CommunityStats, error) {
	return s.stats, s.err
}

type stubMentions struct {
	mentions *TokenMentions
	err      error
}

func (s *stubMentions) SearchTokenMentions(ctx context.Context, symbol, name string, timeRange provider.TimeRange) (*TokenMentions, error) {
	return s.mentions, s.err
}

type stubBackend struct {
	enabled bool
	results []provider.SearchResult
	err     error
	queries []string
}

func (s *stubBackend) Enabled() bool { return s.enabled }

func (s *stubBackend) Search(ctx context.Context, query string, timeRange provider.TimeRange, maxResults int) ([]provider.SearchResult, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func newTestSocialAggregator(dex DexScreenerSource, community CommunitySource, search MentionSearcher, serper SearchBackend) *SocialAggregator {
	return NewSocialAggregator(
		trace.NewNoopTracerProvider().Tracer("test"),
		zerolog.Nop(),
		dex, community, search, serper,
	)
}

func searchHits(n int) []provider.SearchResult {
	hits := make([]provider.SearchResult, n)
	for i := range hits {
		hits[i] = provider.SearchResult{Title: "hit", URL: "https://example.com"}
	}
	return hits
}

func TestAnalyzeKeepsMaxPerChannel(t *testing.T) {
	t.Parallel()

	// CoinGecko: 200k followers -> 2000 twitter, 10k subs -> 50 reddit.
	// Deep search: 30 twitter, 80 reddit. Max merge: twitter from
	// coingecko, reddit from deep search.
	agg := newTestSocialAggregator(
		&stubDex{token: &domain.TokenData{Volume24h: 100000}},
		&stubCommunity{stats: &provider.CommunityStats{TwitterFollowers: 200000, RedditSubscribers: 10000}},
		&stubMentions{mentions: &TokenMentions{
			Twitter:       searchHits(30),
			Reddit:        searchHits(80),
			TotalMentions: 110,
		}},
		&stubBackend{enabled: true},
	)

	hype, err := agg.Analyze(context.Background(), "addr1", "PEPE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hype.TwitterMentions24h != 2000 {
		t.Fatalf("expected twitter max 2000, got %d", hype.TwitterMentions24h)
	}
	if hype.RedditPosts24h != 80 {
		t.Fatalf("expected reddit max 80, got %d", hype.RedditPosts24h)
	}
	if hype.DataSources.Twitter != domain.SourceCoinGecko {
		t.Fatalf("expected twitter provenance coingecko, got %s", hype.DataSources.Twitter)
	}
	if hype.DataSources.Reddit != domain.SourceDeepSearch {
		t.Fatalf("expected reddit provenance deep search, got %s", hype.DataSources.Reddit)
	}
}

func TestAnalyzeEstimatesTwitterFromVolume(t *testing.T) {
	t.Parallel()

	agg := newTestSocialAggregator(
		&stubDex{token: &domain.TokenData{Volume24h: 500000}},
		&stubCommunity{err: errors.New("not listed")},
		&stubMentions{err: errors.New("search down")},
		&stubBackend{enabled: false},
	)

	hype, err := agg.Analyze(context.Background(), "addr1", "PEPE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hype.TwitterMentions24h < 1 || hype.TwitterMentions24h > 500 {
		t.Fatalf("estimate out of range: %d", hype.TwitterMentions24h)
	}
	if hype.DataSources.Twitter != domain.SourceEstimated {
		t.Fatalf("expected estimated provenance, got %s", hype.DataSources.Twitter)
	}

	// Idempotence: the same inputs must produce the same estimate.
	again, err := agg.Analyze(context.Background(), "addr1", "PEPE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.TwitterMentions24h != hype.TwitterMentions24h {
		t.Fatalf("estimate not deterministic: %d vs %d", again.TwitterMentions24h, hype.TwitterMentions24h)
	}
}

func TestAnalyzeNoActivity(t *testing.T) {
	t.Parallel()

	agg := newTestSocialAggregator(
		&stubDex{err: errors.New("no pairs")},
		&stubCommunity{err: errors.New("not listed")},
		&stubMentions{err: errors.New("search down")},
		&stubBackend{enabled: false},
	)

	hype, err := agg.Analyze(context.Background(), "addr1", "NEW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hype.TwitterMentions24h != 0 || hype.RedditPosts24h != 0 {
		t.Fatalf("expected zero counts, got %+v", hype)
	}
	if hype.DataSources.Twitter != domain.SourceUnavailable || hype.DataSources.Reddit != domain.SourceUnavailable {
		t.Fatalf("expected unavailable provenance, got %+v", hype.DataSources)
	}
	found := false
	for _, note := range hype.Notes {
		if strings.Contains(note, "No social activity detected") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected no-activity note, got %v", hype.Notes)
	}
}

func TestAnalyzeSerperFallback(t *testing.T) {
	t.Parallel()

	serper := &stubBackend{enabled: true, results: searchHits(12)}
	agg := newTestSocialAggregator(
		&stubDex{err: errors.New("no pairs")},
		&stubCommunity{err: errors.New("not listed")},
		&stubMentions{err: errors.New("search down")},
		serper,
	)

	hype, err := agg.Analyze(context.Background(), "addr1", "pepe!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hype.TwitterMentions24h != 12 || hype.RedditPosts24h != 12 {
		t.Fatalf("expected serper counts, got %+v", hype)
	}
	if hype.DataSources.Twitter != domain.SourceSerper {
		t.Fatalf("expected serper provenance, got %s", hype.DataSources.Twitter)
	}
	for _, q := range serper.queries {
		if !strings.Contains(q, "PEPE") {
			t.Fatalf("expected sanitized uppercase symbol in query, got %q", q)
		}
	}
}

func TestEstimateTwitterMentionsDeterministic(t *testing.T) {
	t.Parallel()

	a := EstimateTwitterMentions("0xabc", 1_000_000, 0)
	b := EstimateTwitterMentions("0xabc", 1_000_000, 0)
	if a != b {
		t.Fatalf("estimate not deterministic: %d vs %d", a, b)
	}
	if a < 1 || a > 500 {
		t.Fatalf("estimate out of clamp range: %d", a)
	}

	withReddit := EstimateTwitterMentions("0xabc", 0, 40)
	if withReddit < 80 || withReddit > 200 {
		t.Fatalf("reddit-scaled estimate out of expected band: %d", withReddit)
	}

	if got := EstimateTwitterMentions("", 0, 0); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}

func TestSanitizeSymbol(t *testing.T) {
	t.Parallel()

	if got := sanitizeSymbol("$pepe-2!"); got != "PEPE2" {
		t.Fatalf("expected PEPE2, got %q", got)
	}
}
