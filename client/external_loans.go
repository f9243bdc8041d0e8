package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"refinance-agent/domain"
)

// ExternalLoansClient fetches loans the borrower holds at other banks.
type ExternalLoansClient struct {
	url        string
	httpClient *http.Client
}

func NewExternalLoansClient(url string, httpClient *http.Client) *ExternalLoansClient {
	return &ExternalLoansClient{url: url, httpClient: httpClient}
}

// ExternalLoans accepts either a bare JSON array or an object with a data
// array. Without a configured URL there is nothing to fetch.
func (c *ExternalLoansClient) ExternalLoans(ctx context.Context) ([]domain.Record, error) {
	if c.url == "" {
		return []domain.Record{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := do(c.httpClient, req, &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []domain.Record{}, nil
	}

	dec := func(target any) error {
		d := json.NewDecoder(bytes.NewReader(raw))
		d.UseNumber()
		return d.Decode(target)
	}

	var loans []domain.Record
	if raw[0] == '[' {
		if err := dec(&loans); err != nil {
			return nil, fmt.Errorf("%w: decode external loans: %v", ErrUpstream, err)
		}
	} else {
		var envelope struct {
			Data []domain.Record `json:"data"`
		}
		if err := dec(&envelope); err != nil {
			return nil, fmt.Errorf("%w: decode external loans: %v", ErrUpstream, err)
		}
		loans = envelope.Data
	}

	if loans == nil {
		return []domain.Record{}, nil
	}
	return loans, nil
}
