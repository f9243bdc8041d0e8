package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const maxErrorBodyBytes = 1 << 20

var (
	// ErrMissingAuthorization is returned when a bank API call has no
	// Authorization header to pass through.
	ErrMissingAuthorization = errors.New("authorization header is required")

	// ErrUpstream wraps transport and decoding failures talking to an upstream.
	ErrUpstream = errors.New("upstream request failed")
)

// APIError is a non-2xx response from an upstream API.
type APIError struct {
	StatusCode int
	Message    string
	Details    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
}

type Config struct {
	// Timeout bounds the whole request; a context deadline can still override it.
	Timeout time.Duration

	DialTimeout     time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		Timeout:             10 * time.Second,
		DialTimeout:         5 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 20,
	}
}

// NewHTTPClient builds the client shared by the upstream adapters.
func NewHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}

// do sends req and decodes a 2xx JSON body into out. Numbers are kept as
// json.Number so pass-through fields keep their exact text.
func do(httpClient *http.Client, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUpstream, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, req.URL.Path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		apiErr.Details = string(body)
		return apiErr
	}
	apiErr.Details = details

	if fields, ok := details.(map[string]any); ok {
		for _, key := range []string{"error", "detail", "message"} {
			if msg, ok := fields[key].(string); ok && msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}
	return apiErr
}
