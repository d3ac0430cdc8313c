package provider

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func TestGoPlusFetchTokenSecurity(t *testing.T) {
	t.Parallel()

	p := NewGoPlusProvider(trace.NewNoopTracerProvider().Tracer("test"))
	p.baseURL = "http://example"
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/token_security/56") {
				t.Fatalf("expected BSC chain id in path, got %s", req.URL.Path)
			}
			return jsonResponse(http.StatusOK, map[string]any{
				"result": map[string]any{
					"0xabcdef": map[string]string{
						"is_honeypot":    "1",
						"hidden_owner":   "0",
						"is_open_source": "1",
						"owner_address":  "0x1111",
					},
				},
			}), nil
		}),
	}

	report, err := p.FetchTokenSecurity(context.Background(), "0xABCDEF", domain.ChainBSC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsHoneypot {
		t.Fatal("expected honeypot flag set")
	}
	if report.HiddenOwner {
		t.Fatal("expected hidden owner flag clear")
	}
	if !report.OpenSource || report.OwnerAddress != "0x1111" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestGoPlusFetchTokenSecurityNoRow(t *testing.T) {
	t.Parallel()

	p := NewGoPlusProvider(trace.NewNoopTracerProvider().Tracer("test"))
	p.baseURL = "http://example"
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, map[string]any{"result": map[string]any{}}), nil
		}),
	}

	if _, err := p.FetchTokenSecurity(context.Background(), "0xmissing", domain.ChainEthereum); err == nil {
		t.Fatal("expected error when no row is returned")
	}
}

func TestGoPlusChainID(t *testing.T) {
	t.Parallel()

	tests := map[domain.Chain]string{
		domain.ChainEthereum: "1",
		domain.ChainBSC:      "56",
		domain.ChainBase:     "8453",
		domain.ChainSolana:   "1",
	}
	for chain, expected := range tests {
		if got := goPlusChainID(chain); got != expected {
			t.Fatalf("%s expected %s, got %s", chain, expected, got)
		}
	}
}
