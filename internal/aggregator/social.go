package aggregator

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/analysis"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// CommunitySource supplies CoinGecko community counters.
type CommunitySource interface {
	FetchCommunity(ctx context.Context, address string, chain domain.Chain) (*provider.CommunityStats, error)
}

// MentionSearcher counts recent social mentions via layered web search.
type MentionSearcher interface {
	SearchTokenMentions(ctx context.Context, symbol, name string, timeRange provider.TimeRange) (*TokenMentions, error)
}

// SocialAggregator builds a SocialHype record by merging up to three
// sources. Unlike the market-data chain this is not first-success: each
// channel keeps the maximum count observed across sources that
// succeeded, and provenance records whichever source contributed that
// final value.
type SocialAggregator struct {
	tracer    trace.Tracer
	log       zerolog.Logger
	dex       DexScreenerSource
	community CommunitySource
	search    MentionSearcher
	serper    SearchBackend
}

func NewSocialAggregator(
	tracer trace.Tracer,
	log zerolog.Logger,
	dex DexScreenerSource,
	community CommunitySource,
	search MentionSearcher,
	serper SearchBackend,
) *SocialAggregator {
	return &SocialAggregator{
		tracer:    tracer,
		log:       log,
		dex:       dex,
		community: community,
		search:    search,
		serper:    serper,
	}
}

// channelCount tracks one channel's running maximum and the source
// that supplied it.
type channelCount struct {
	count  int
	source domain.Source
}

func (c *channelCount) observe(count int, source domain.Source) {
	if count > c.count {
		c.count = count
		c.source = source
	}
}

// Analyze merges social signals for a token into one SocialHype record.
func (a *SocialAggregator) Analyze(ctx context.Context, address, symbol string) (*domain.SocialHype, error) {
	ctx, span := a.tracer.Start(ctx, "aggregator.analyze-social")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address), attribute.String("token.symbol", symbol))

	searchTerm := sanitizeSymbol(symbol)

	twitter := channelCount{source: domain.SourceUnavailable}
	reddit := channelCount{source: domain.SourceUnavailable}
	telegramSource := domain.SourceUnavailable
	telegramMembers := 0
	var notes []string

	// Volume feeds the deterministic estimate when every social source
	// comes up empty.
	tokenVolume := 0.0
	if token, err := a.dex.FetchToken(ctx, address, domain.ChainSolana); err == nil {
		tokenVolume = token.Volume24h
	} else {
		a.log.Debug().Err(err).Msg("could not fetch volume data for social estimate")
	}

	// 1. CoinGecko community stats, scaled from follower counts to
	// rough daily-activity numbers.
	hasCoinGeckoData := false
	if stats, err := a.community.FetchCommunity(ctx, address, domain.ChainSolana); err == nil {
		if stats.TwitterFollowers > 0 {
			twitter.observe(int(float64(stats.TwitterFollowers)*0.01), domain.SourceCoinGecko)
			hasCoinGeckoData = true
		}
		if stats.RedditSubscribers > 0 {
			reddit.observe(int(float64(stats.RedditSubscribers)*0.005), domain.SourceCoinGecko)
			hasCoinGeckoData = true
		}
		if stats.TelegramMembers > 0 {
			telegramMembers = int(stats.TelegramMembers)
			telegramSource = domain.SourceCoinGecko
		}
	} else {
		a.log.Debug().Err(err).Msg("coingecko social data unavailable")
		notes = append(notes, "CoinGecko data unavailable - using alternative sources")
	}

	// 2. Layered search for recent mention counts.
	hasSearchData := false
	if mentions, err := a.search.SearchTokenMentions(ctx, searchTerm, searchTerm, provider.Range24h); err == nil && mentions.TotalMentions > 0 {
		if n := len(mentions.Twitter); n > 0 {
			twitter.observe(n, domain.SourceDeepSearch)
			hasSearchData = true
		}
		if n := len(mentions.Reddit); n > 0 {
			reddit.observe(n, domain.SourceDeepSearch)
			hasSearchData = true
		}
	} else if err != nil {
		a.log.Debug().Err(err).Msg("deep search unavailable, trying serper")
		notes = append(notes, "Deep search unavailable - using Serper API")
	}

	// 3. Raw Serper queries only when nothing else produced data.
	if !hasSearchData && !hasCoinGeckoData && a.serper != nil && a.serper.Enabled() {
		if err := a.serperFallback(ctx, searchTerm, &twitter, &reddit); err != nil {
			a.log.Debug().Err(err).Msg("serper fallback failed")
			notes = append(notes, "Limited social data available - results may be incomplete")
		}
	}

	// Deterministic estimate: same (address, volume, reddit count)
	// always yields the same twitter figure.
	if twitter.count == 0 && tokenVolume > 0 {
		twitter.count = EstimateTwitterMentions(address, tokenVolume, reddit.count)
		twitter.source = domain.SourceEstimated
		notes = append(notes, "Twitter mentions estimated from volume and Reddit activity")
	}

	if twitter.count == 0 && reddit.count == 0 {
		twitter.source = domain.SourceUnavailable
		reddit.source = domain.SourceUnavailable
		notes = append(notes, "No social activity detected - token may be very new or unlisted")
	}
	if twitter.source == domain.SourceCoinGecko || reddit.source == domain.SourceCoinGecko {
		notes = append(notes, "Using follower-based estimates from CoinGecko")
	}

	hypeScore, velocity, organic := analysis.ComputeHype(twitter.count, reddit.count, telegramMembers)

	quality := domain.QualityLow
	switch {
	case hasSearchData || (hasCoinGeckoData && telegramMembers > 0):
		quality = domain.QualityHigh
	case hasCoinGeckoData || twitter.source == domain.SourceSerper:
		quality = domain.QualityMedium
	}

	span.SetAttributes(
		attribute.Int("social.hype_score", hypeScore),
		attribute.String("social.quality", string(quality)),
	)

	return &domain.SocialHype{
		TwitterMentions24h: twitter.count,
		RedditPosts24h:     reddit.count,
		TelegramMembers:    telegramMembers,
		TrendingVelocity:   velocity,
		HypeScore:          hypeScore,
		IsOrganic:          organic,
		DataSources: domain.SocialSources{
			Twitter:  twitter.source,
			Reddit:   reddit.source,
			Telegram: telegramSource,
		},
		DataQuality: quality,
		Notes:       notes,
	}, nil
}

// serperFallback issues the twitter and reddit site queries in
// parallel; partial failure is tolerated.
func (a *SocialAggregator) serperFallback(ctx context.Context, term string, twitter, reddit *channelCount) error {
	g, ctx := errgroup.WithContext(ctx)

	var twitterHits, redditHits []provider.SearchResult
	g.Go(func() error {
		var err error
		twitterHits, err = a.serper.Search(ctx,
			fmt.Sprintf(`site:twitter.com OR site:x.com "$%s" crypto`, term), provider.Range24h, 50)
		return err
	})
	g.Go(func() error {
		var err error
		redditHits, err = a.serper.Search(ctx,
			fmt.Sprintf(`site:reddit.com "$%s" crypto`, term), provider.Range24h, 50)
		return err
	})
	err := g.Wait()

	if n := len(twitterHits); n > 0 {
		twitter.observe(n, domain.SourceSerper)
	}
	if n := len(redditHits); n > 0 {
		reddit.observe(n, domain.SourceSerper)
	}
	return err
}

// EstimateTwitterMentions derives a repeatable mention estimate from
// the token address, 24h volume, and reddit count. The address hash
// (sum of byte values) picks a fixed multiplier so identical inputs
// always produce identical output. Result clamps to [1, 500].
func EstimateTwitterMentions(address string, volume24h float64, redditPosts int) int {
	hash := 0
	for _, ch := range address {
		hash += int(ch)
	}

	var estimate int
	if redditPosts > 0 {
		// Twitter typically runs 2-5x Reddit activity.
		multiplier := 2 + float64(hash%30)/10
		estimate = int(float64(redditPosts) * multiplier)
	} else {
		factor := 0.8 + float64(hash%40)/100
		estimate = int(math.Log10(math.Max(volume24h, 1)) * 3 * factor)
	}

	if estimate < 1 {
		return 1
	}
	if estimate > 500 {
		return 500
	}
	return estimate
}

// sanitizeSymbol strips everything but letters and digits and
// uppercases the rest, mirroring how cashtags are searched.
func sanitizeSymbol(symbol string) string {
	var sb strings.Builder
	for _, ch := range symbol {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			sb.WriteRune(ch)
		}
	}
	return strings.ToUpper(sb.String())
}
