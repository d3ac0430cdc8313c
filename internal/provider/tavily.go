package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tavilyBaseURL = "https://api.tavily.com"

const tavilySource = domain.Source("tavily")

// TavilyProvider is the second-choice search backend, consulted when
// Serper is unconfigured or fails.
type TavilyProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewTavilyProvider(apiKey string, tracer trace.Tracer) *TavilyProvider {
	return &TavilyProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: tavilyBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

func (p *TavilyProvider) Enabled() bool { return p.apiKey != "" }

func tavilyDays(r TimeRange) int {
	switch r {
	case Range24h:
		return 1
	case Range7d:
		return 7
	case Range30d:
		return 30
	default:
		return 365
	}
}

func (p *TavilyProvider) Search(ctx context.Context, query string, timeRange TimeRange, maxResults int) ([]SearchResult, error) {
	_, span := p.tracer.Start(ctx, "tavily.search")
	defer span.End()
	span.SetAttributes(attribute.String("search.query", query))

	if maxResults <= 0 {
		maxResults = 10
	}

	body, err := json.Marshal(map[string]any{
		"api_key":      p.apiKey,
		"query":        query,
		"search_depth": "basic",
		"max_results":  maxResults,
		"days":         tavilyDays(timeRange),
	})
	if err != nil {
		return nil, newError(tavilySource, 0, err)
	}

	url := strings.TrimRight(p.baseURL, "/") + "/search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newError(tavilySource, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, newError(tavilySource, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, failf(tavilySource, resp.StatusCode, "tavily API error: %s", string(raw))
	}

	var payload struct {
		Results []struct {
			Title   string  `json:"title"`
			URL     string  `json:"url"`
			Content string  `json:"content"`
			Score   float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, failf(tavilySource, resp.StatusCode, "decode tavily response: %w", err)
	}

	results := make([]SearchResult, 0, len(payload.Results))
	for _, item := range payload.Results {
		score := item.Score
		if score == 0 {
			score = 1.0
		}
		results = append(results, SearchResult{
			Title:          item.Title,
			URL:            item.URL,
			Snippet:        item.Content,
			RelevanceScore: score,
		})
	}

	span.SetAttributes(attribute.Int("search.results", len(results)))
	return results, nil
}
