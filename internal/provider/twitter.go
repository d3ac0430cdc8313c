package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const twitterBaseURL = "https://api.twitter.com"

const twitterSource = domain.Source("twitter")

// TwitterProvider counts recent tweets mentioning a token via the v2
// counts endpoint. Requires a bearer token; without one every call
// fails and callers fall back to search-based estimates.
type TwitterProvider struct {
	client      *http.Client
	baseURL     string
	bearerToken string
	tracer      trace.Tracer
}

func NewTwitterProvider(bearerToken string, tracer trace.Tracer) *TwitterProvider {
	return &TwitterProvider{
		client:      &http.Client{Timeout: 20 * time.Second},
		baseURL:     twitterBaseURL,
		bearerToken: bearerToken,
		tracer:      tracer,
	}
}

func (p *TwitterProvider) Enabled() bool { return p.bearerToken != "" }

// CountRecentMentions returns the total tweet count over the last 7
// days for "<symbol> OR <address>", excluding retweets.
func (p *TwitterProvider) CountRecentMentions(ctx context.Context, symbol, address string) (int, error) {
	_, span := p.tracer.Start(ctx, "twitter.count-recent-mentions")
	defer span.End()
	span.SetAttributes(attribute.String("token.symbol", symbol))

	if p.bearerToken == "" {
		return 0, failf(twitterSource, 0, "twitter bearer token not configured")
	}

	query := fmt.Sprintf("%s OR %s -is:retweet lang:en", symbol, address)
	endpoint := fmt.Sprintf("%s/2/tweets/counts/recent?query=%s",
		strings.TrimRight(p.baseURL, "/"), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, newError(twitterSource, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+p.bearerToken)

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return 0, newError(twitterSource, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, failf(twitterSource, resp.StatusCode, "twitter API error: %s", string(body))
	}

	var payload struct {
		Meta struct {
			TotalTweetCount int `json:"total_tweet_count"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, failf(twitterSource, resp.StatusCode, "decode twitter response: %w", err)
	}

	span.SetAttributes(attribute.Int("twitter.total_count", payload.Meta.TotalTweetCount))
	return payload.Meta.TotalTweetCount, nil
}
