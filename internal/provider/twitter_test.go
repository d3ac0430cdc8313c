package provider

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestTwitterCountRecentMentions(t *testing.T) {
	t.Parallel()

	p := NewTwitterProvider("bearer-token", trace.NewNoopTracerProvider().Tracer("test"))
	p.baseURL = "http://example"
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("Authorization") != "Bearer bearer-token" {
				t.Fatal("expected bearer auth header")
			}
			query := req.URL.Query().Get("query")
			if !strings.Contains(query, "PEPE OR 0xabc") || !strings.Contains(query, "-is:retweet") {
				t.Fatalf("unexpected query: %s", query)
			}
			return jsonResponse(http.StatusOK, map[string]any{
				"meta": map[string]int{"total_tweet_count": 742},
			}), nil
		}),
	}

	count, err := p.CountRecentMentions(context.Background(), "PEPE", "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 742 {
		t.Fatalf("expected 742 mentions, got %d", count)
	}
}

func TestTwitterCountRequiresToken(t *testing.T) {
	t.Parallel()

	p := NewTwitterProvider("", trace.NewNoopTracerProvider().Tracer("test"))
	if p.Enabled() {
		t.Fatal("expected disabled without bearer token")
	}
	if _, err := p.CountRecentMentions(context.Background(), "PEPE", "0xabc"); err == nil {
		t.Fatal("expected error without bearer token")
	}
}
