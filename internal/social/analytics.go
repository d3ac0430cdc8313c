package social

import (
	"context"
	"fmt"
	"math"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// TwitterMetrics summarizes recent tweet activity for a token.
type TwitterMetrics struct {
	Mentions      int    `json:"mentions"`
	RecentTweets  int    `json:"recentTweets"`
	Sentiment     string `json:"sentiment"`
	TrendingScore int    `json:"trendingScore"`
}

// RedditMetrics summarizes recent reddit activity for a token.
type RedditMetrics struct {
	Posts     int    `json:"posts"`
	Comments  int    `json:"comments"`
	Sentiment string `json:"sentiment"`
}

// HypeData is the response shape of the social-hype endpoint.
type HypeData struct {
	Twitter   TwitterMetrics `json:"twitter"`
	Reddit    RedditMetrics  `json:"reddit"`
	HypeScore int            `json:"hypeScore"`
	Velocity  string         `json:"velocity"`
	Quality   string         `json:"quality"`
}

// TweetCounter counts recent tweets; backed by the Twitter v2 API.
type TweetCounter interface {
	Enabled() bool
	CountRecentMentions(ctx context.Context, symbol, address string) (int, error)
}

// Searcher is a web-search backend used for reddit post counting.
type Searcher interface {
	Enabled() bool
	Search(ctx context.Context, query string, timeRange provider.TimeRange, maxResults int) ([]provider.SearchResult, error)
}

// Analytics computes the lightweight twitter/reddit hype view served by
// the social-hype endpoint. All provider failures degrade to zeroed
// metrics; the endpoint itself only errors on internal faults.
type Analytics struct {
	tracer  trace.Tracer
	log     zerolog.Logger
	twitter TweetCounter
	serper  Searcher
	tavily  Searcher
}

func NewAnalytics(tracer trace.Tracer, log zerolog.Logger, twitter TweetCounter, serper, tavily Searcher) *Analytics {
	return &Analytics{
		tracer:  tracer,
		log:     log,
		twitter: twitter,
		serper:  serper,
		tavily:  tavily,
	}
}

// Hype fetches twitter and reddit metrics concurrently and combines
// them with fixed 0.7/0.3 weights.
func (a *Analytics) Hype(ctx context.Context, symbol, address string) (*HypeData, error) {
	ctx, span := a.tracer.Start(ctx, "social.hype")
	defer span.End()
	span.SetAttributes(attribute.String("token.symbol", symbol))

	var twitter TwitterMetrics
	var reddit RedditMetrics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		twitter = a.fetchTwitterMetrics(gctx, symbol, address)
		return nil
	})
	g.Go(func() error {
		reddit = a.fetchRedditMetrics(gctx, symbol)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	twitterScore := math.Min(100, float64(twitter.Mentions)/10*0.7*100)
	redditScore := math.Min(100, float64(reddit.Posts)/5*0.3*100)
	hypeScore := int(math.Round(twitterScore + redditScore))

	velocity := "stable"
	if twitter.TrendingScore > 60 {
		velocity = "rising"
	} else if twitter.TrendingScore < 20 {
		velocity = "declining"
	}

	quality := "estimated"
	if twitter.Mentions > 0 || reddit.Posts > 0 {
		quality = "real"
	}

	span.SetAttributes(attribute.Int("social.hype_score", hypeScore))
	return &HypeData{
		Twitter:   twitter,
		Reddit:    reddit,
		HypeScore: hypeScore,
		Velocity:  velocity,
		Quality:   quality,
	}, nil
}

// fetchTwitterMetrics maps a raw tweet count onto tiered trending
// scores. Missing credentials or API failures return neutral zeros.
func (a *Analytics) fetchTwitterMetrics(ctx context.Context, symbol, address string) TwitterMetrics {
	neutral := TwitterMetrics{Sentiment: "neutral"}
	if a.twitter == nil || !a.twitter.Enabled() {
		return neutral
	}

	count, err := a.twitter.CountRecentMentions(ctx, symbol, address)
	if err != nil {
		a.log.Debug().Err(err).Str("symbol", symbol).Msg("twitter metrics unavailable")
		return neutral
	}

	trendingScore := 5
	switch {
	case count > 1000:
		trendingScore = 90
	case count > 500:
		trendingScore = 75
	case count > 100:
		trendingScore = 50
	case count > 50:
		trendingScore = 30
	case count > 10:
		trendingScore = 15
	}

	sentiment := "negative"
	if count > 100 {
		sentiment = "positive"
	} else if count > 20 {
		sentiment = "neutral"
	}

	return TwitterMetrics{
		Mentions:      count,
		RecentTweets:  count,
		Sentiment:     sentiment,
		TrendingScore: trendingScore,
	}
}

// fetchRedditMetrics counts reddit hits via Serper, falling back to
// Tavily, and infers a rough sentiment from the post count.
func (a *Analytics) fetchRedditMetrics(ctx context.Context, symbol string) RedditMetrics {
	query := fmt.Sprintf("site:reddit.com %s crypto", symbol)

	for _, backend := range []Searcher{a.serper, a.tavily} {
		if backend == nil || !backend.Enabled() {
			continue
		}
		results, err := backend.Search(ctx, query, provider.RangeAll, 10)
		if err != nil {
			a.log.Debug().Err(err).Str("symbol", symbol).Msg("reddit search backend failed")
			continue
		}

		posts := len(results)
		sentiment := "bearish"
		if posts > 5 {
			sentiment = "bullish"
		} else if posts > 2 {
			sentiment = "neutral"
		}
		return RedditMetrics{
			Posts:     posts,
			Comments:  posts * 15,
			Sentiment: sentiment,
		}
	}

	return RedditMetrics{Sentiment: "neutral"}
}
