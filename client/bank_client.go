package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"refinance-agent/domain"
)

// BankClient reads the borrower's agreements and the loan catalog from the
// bank API. The caller's Authorization header is forwarded as is.
type BankClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBankClient(baseURL string, httpClient *http.Client) *BankClient {
	return &BankClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ProductAgreements returns the agreements under data. A missing list is empty.
func (c *BankClient) ProductAgreements(ctx context.Context, authorization string) ([]domain.Record, error) {
	var body struct {
		Data []domain.Record `json:"data"`
	}
	if err := c.get(ctx, "/product-agreements", nil, authorization, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []domain.Record{}, nil
	}
	return body.Data, nil
}

// LoanProducts returns the raw records under data.product of the loan catalog.
func (c *BankClient) LoanProducts(ctx context.Context, authorization string) ([]domain.Record, error) {
	var body struct {
		Data *struct {
			Product []domain.Record `json:"product"`
		} `json:"data"`
	}
	query := url.Values{"product_type": []string{"loan"}}
	if err := c.get(ctx, "/products", query, authorization, &body); err != nil {
		return nil, err
	}
	if body.Data == nil || body.Data.Product == nil {
		return []domain.Record{}, nil
	}
	return body.Data.Product, nil
}

func (c *BankClient) get(ctx context.Context, path string, query url.Values, authorization string, out any) error {
	if authorization == "" {
		return ErrMissingAuthorization
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Authorization", authorization)

	return do(c.httpClient, req, out)
}
