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

const serperBaseURL = "https://google.serper.dev"

// SerperProvider runs Google searches through the Serper API. It is the
// first choice of the layered search used for social mention counts.
type SerperProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewSerperProvider(apiKey string, tracer trace.Tracer) *SerperProvider {
	return &SerperProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: serperBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// Enabled reports whether an API key is configured.
func (p *SerperProvider) Enabled() bool { return p.apiKey != "" }

func serperTimeFilter(r TimeRange) string {
	switch r {
	case Range24h:
		return "qdr:d"
	case Range7d:
		return "qdr:w"
	case Range30d:
		return "qdr:m"
	default:
		return ""
	}
}

// Search returns organic and news hits for the query, restricted to the
// given time range.
func (p *SerperProvider) Search(ctx context.Context, query string, timeRange TimeRange, maxResults int) ([]SearchResult, error) {
	_, span := p.tracer.Start(ctx, "serper.search")
	defer span.End()
	span.SetAttributes(attribute.String("search.query", query))

	if maxResults <= 0 {
		maxResults = 10
	}

	body, err := json.Marshal(map[string]any{
		"q":   query,
		"num": maxResults,
		"gl":  "us",
		"hl":  "en",
		"tbs": serperTimeFilter(timeRange),
	})
	if err != nil {
		return nil, newError(domain.SourceSerper, 0, err)
	}

	url := strings.TrimRight(p.baseURL, "/") + "/search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newError(domain.SourceSerper, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, newError(domain.SourceSerper, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, failf(domain.SourceSerper, resp.StatusCode, "serper API error: %s", string(raw))
	}

	var payload struct {
		Organic []serperItem `json:"organic"`
		News    []serperItem `json:"news"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, failf(domain.SourceSerper, resp.StatusCode, "decode serper response: %w", err)
	}

	results := make([]SearchResult, 0, len(payload.Organic)+len(payload.News))
	for _, item := range append(payload.Organic, payload.News...) {
		results = append(results, SearchResult{
			Title:          item.Title,
			URL:            item.Link,
			Snippet:        item.Snippet,
			Date:           item.Date,
			RelevanceScore: 1.0,
		})
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	span.SetAttributes(attribute.Int("search.results", len(results)))
	return results, nil
}

type serperItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
}
