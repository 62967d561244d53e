// Package fetcher downloads branding data and decodes it as JSON.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	brandingerrors "github.com/princespaghetti/branding/internal/errors"
)

const userAgent = "branding/1.0 (branding data fetcher)"

// Fetcher performs branding data requests through an HTTPClient.
// It holds no per-request state and may be shared between goroutines.
type Fetcher struct {
	client HTTPClient
}

// NewFetcher creates a new Fetcher with the given HTTP client.
// If client is nil, uses http.DefaultClient, which enforces no timeout.
func NewFetcher(client HTTPClient) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client: client,
	}
}

var defaultFetcher = NewFetcher(nil)

// FetchBranding fetches url with a Fetcher backed by http.DefaultClient.
func FetchBranding(ctx context.Context, url string) (any, error) {
	return defaultFetcher.FetchBranding(ctx, url)
}

// FetchBranding issues a single GET to url and returns the decoded JSON body.
// The payload is whatever encoding/json produces for an untyped target, with
// numbers kept as json.Number.
//
// Any failure is returned as a *errors.FetchError carrying url. Its message
// never includes the cause; use errors.Unwrap to reach it.
func (f *Fetcher) FetchBranding(ctx context.Context, url string) (any, error) {
	payload, err := f.fetch(ctx, url)
	if err != nil {
		return nil, &brandingerrors.FetchError{URL: url, Err: err}
	}
	return payload, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download branding: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Ignore close error - body already consumed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", brandingerrors.ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return decodeJSON(data)
}

// decodeJSON decodes exactly one JSON value; anything but whitespace after
// it is rejected.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", brandingerrors.ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", brandingerrors.ErrInvalidJSON)
	}

	return payload, nil
}
