package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const goPlusBaseURL = "https://api.gopluslabs.io"

const goPlusSource = domain.Source("goplus")

// GoPlusProvider queries the GoPlus token_security endpoint for EVM
// contract flags. Solana has no GoPlus coverage here; callers fall back
// to a conservative default record.
type GoPlusProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewGoPlusProvider(tracer trace.Tracer) *GoPlusProvider {
	return &GoPlusProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: goPlusBaseURL,
		tracer:  tracer,
	}
}

// goPlusChainID maps chains onto GoPlus numeric chain ids. Non-EVM
// chains degrade to mainnet, matching the upstream behaviour of
// returning no rows.
func goPlusChainID(chain domain.Chain) string {
	switch chain {
	case domain.ChainEthereum:
		return "1"
	case domain.ChainBSC:
		return "56"
	case domain.ChainBase:
		return "8453"
	default:
		return "1"
	}
}

type goPlusRow struct {
	IsHoneypot           string `json:"is_honeypot"`
	HiddenOwner          string `json:"hidden_owner"`
	IsProxy              string `json:"is_proxy"`
	CanTakeBackOwnership string `json:"can_take_back_ownership"`
	OwnerChangeBalance   string `json:"owner_change_balance"`
	SelfDestruct         string `json:"selfdestruct"`
	OwnerAddress         string `json:"owner_address"`
	IsOpenSource         string `json:"is_open_source"`
}

// FetchTokenSecurity returns raw contract flags for the address.
func (p *GoPlusProvider) FetchTokenSecurity(ctx context.Context, address string, chain domain.Chain) (*SecurityReport, error) {
	_, span := p.tracer.Start(ctx, "goplus.fetch-token-security")
	defer span.End()
	span.SetAttributes(attribute.String("token.address", address), attribute.String("token.chain", string(chain)))

	url := fmt.Sprintf("%s/api/v1/token_security/%s?contract_addresses=%s",
		strings.TrimRight(p.baseURL, "/"), goPlusChainID(chain), address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newError(goPlusSource, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, newError(goPlusSource, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, failf(goPlusSource, resp.StatusCode, "goplus API error: %s", string(body))
	}

	var payload struct {
		Result map[string]goPlusRow `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, failf(goPlusSource, resp.StatusCode, "decode goplus response: %w", err)
	}

	row, ok := payload.Result[strings.ToLower(address)]
	if !ok {
		return nil, failf(goPlusSource, resp.StatusCode, "no security data for %s", address)
	}

	return &SecurityReport{
		IsHoneypot:           row.IsHoneypot == "1",
		HiddenOwner:          row.HiddenOwner == "1",
		IsProxy:              row.IsProxy == "1",
		CanTakeBackOwnership: row.CanTakeBackOwnership == "1",
		OwnerChangeBalance:   row.OwnerChangeBalance == "1",
		SelfDestruct:         row.SelfDestruct == "1",
		OwnerAddress:         strings.TrimSpace(row.OwnerAddress),
		OpenSource:           row.IsOpenSource != "0",
	}, nil
}
