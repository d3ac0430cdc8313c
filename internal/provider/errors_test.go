package provider

import (
	"errors"
	"strings"
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

func TestProviderErrorWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := newError(domain.SourceBirdeye, 0, cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatal("expected *Error via errors.As")
	}
	if perr.Provider != domain.SourceBirdeye {
		t.Fatalf("unexpected provider: %s", perr.Provider)
	}
}

func TestFailfIncludesStatus(t *testing.T) {
	t.Parallel()

	err := failf(domain.SourceCoinGecko, 429, "coingecko API error: %s", "rate limited")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatal("expected *Error")
	}
	if perr.Status != 429 {
		t.Fatalf("expected status 429, got %d", perr.Status)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected message in error text, got %q", err.Error())
	}
}
