package aggregator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/provider"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SearchBackend is one web-search provider in the layered search chain.
type SearchBackend interface {
	Enabled() bool
	Search(ctx context.Context, query string, timeRange provider.TimeRange, maxResults int) ([]provider.SearchResult, error)
}

// SearchOptions tune one layered search call.
type SearchOptions struct {
	Rerank     bool
	MaxResults int
	TimeRange  provider.TimeRange
}

// TokenMentions groups search hits for a token by channel.
type TokenMentions struct {
	Twitter       []provider.SearchResult
	Reddit        []provider.SearchResult
	News          []provider.SearchResult
	TotalMentions int
}

// DeepSearch runs web searches through an ordered backend chain
// (Serper first, Tavily as fallback) with optional keyword/source
// reranking. An empty result set is not an error; callers treat it as
// "no data" and move on.
type DeepSearch struct {
	tracer   trace.Tracer
	log      zerolog.Logger
	backends []SearchBackend
	now      func() time.Time
}

func NewDeepSearch(tracer trace.Tracer, log zerolog.Logger, backends ...SearchBackend) *DeepSearch {
	return &DeepSearch{
		tracer:   tracer,
		log:      log,
		backends: backends,
		now:      time.Now,
	}
}

func (d *DeepSearch) Search(ctx context.Context, query string, opts SearchOptions) ([]provider.SearchResult, error) {
	ctx, span := d.tracer.Start(ctx, "deepsearch.search")
	defer span.End()
	span.SetAttributes(attribute.String("search.query", query))

	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}
	if opts.TimeRange == "" {
		opts.TimeRange = provider.Range24h
	}

	for _, backend := range d.backends {
		if backend == nil || !backend.Enabled() {
			continue
		}
		results, err := backend.Search(ctx, query, opts.TimeRange, opts.MaxResults)
		if err != nil {
			d.log.Debug().Err(err).Str("query", query).Msg("search backend failed, trying next")
			continue
		}
		if len(results) == 0 {
			continue
		}
		if opts.Rerank {
			results = d.rerank(results, query)
		}
		span.SetAttributes(attribute.Int("search.results", len(results)))
		return results, nil
	}

	return nil, nil
}

// SearchTokenMentions counts recent twitter, reddit, and news hits for
// a token symbol. Long mint addresses make poor queries, so symbols of
// ten or more characters fall back to the first word of the name.
func (d *DeepSearch) SearchTokenMentions(ctx context.Context, symbol, name string, timeRange provider.TimeRange) (*TokenMentions, error) {
	ctx, span := d.tracer.Start(ctx, "deepsearch.token-mentions")
	defer span.End()

	term := symbol
	if len(term) >= 10 {
		if fields := strings.Fields(name); len(fields) > 0 {
			term = fields[0]
		}
	}
	span.SetAttributes(attribute.String("search.term", term))

	twitter, err := d.Search(ctx, fmt.Sprintf(`site:twitter.com OR site:x.com "$%s" crypto`, term),
		SearchOptions{TimeRange: timeRange, MaxResults: 20})
	if err != nil {
		return nil, err
	}
	reddit, err := d.Search(ctx, fmt.Sprintf(`site:reddit.com/r/CryptoMoonShots OR site:reddit.com/r/cryptocurrency "%s" crypto`, term),
		SearchOptions{TimeRange: timeRange, MaxResults: 20})
	if err != nil {
		return nil, err
	}
	news, err := d.Search(ctx, fmt.Sprintf(`"%s" cryptocurrency token`, term),
		SearchOptions{TimeRange: timeRange, MaxResults: 10})
	if err != nil {
		return nil, err
	}

	mentions := &TokenMentions{
		Twitter:       twitter,
		Reddit:        reddit,
		News:          news,
		TotalMentions: len(twitter) + len(reddit) + len(news),
	}
	span.SetAttributes(attribute.Int("search.total_mentions", mentions.TotalMentions))
	return mentions, nil
}

// rerank boosts results by query-term matches, source quality, and
// recency, then sorts by the adjusted score.
func (d *DeepSearch) rerank(results []provider.SearchResult, query string) []provider.SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	now := d.now()

	out := make([]provider.SearchResult, len(results))
	copy(out, results)
	for i := range out {
		score := out[i].RelevanceScore

		title := strings.ToLower(out[i].Title)
		snippet := strings.ToLower(out[i].Snippet)
		for _, term := range terms {
			if strings.Contains(title, term) {
				score += 0.3
			}
			if strings.Contains(snippet, term) {
				score += 0.1
			}
		}

		url := strings.ToLower(out[i].URL)
		switch {
		case strings.Contains(url, "reddit.com/r/cryptocurrency"), strings.Contains(url, "reddit.com/r/cryptomoonshots"):
			score += 0.5
		case strings.Contains(url, "twitter.com"), strings.Contains(url, "x.com"):
			score += 0.3
		case strings.Contains(url, "medium.com"), strings.Contains(url, "substack.com"):
			score += 0.2
		}

		if out[i].Date != "" {
			if published, err := time.Parse(time.RFC3339, out[i].Date); err == nil {
				age := now.Sub(published)
				if age < 24*time.Hour {
					score += 0.4
				} else if age < 7*24*time.Hour {
					score += 0.2
				}
			}
		}

		out[i].RelevanceScore = score
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}
