// Package qr provides the HTTP implementation of the ImageFetcher port.
package qr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-devtools/internal/port"
)

const (
	DefaultTimeout = 15 * time.Second

	// MaxImageSize bounds a downloaded image.
	MaxImageSize = 5 << 20
)

// FetcherAdapter downloads images over HTTP.
type FetcherAdapter struct {
	client *http.Client
}

// Ensure FetcherAdapter implements the ImageFetcher port
var _ port.ImageFetcher = (*FetcherAdapter)(nil)

// NewFetcherAdapter creates a fetcher. A non-positive timeout selects DefaultTimeout.
func NewFetcherAdapter(timeout time.Duration) *FetcherAdapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FetcherAdapter{client: &http.Client{Timeout: timeout}}
}

// Fetch performs a GET and returns the body with its Content-Type.
func (f *FetcherAdapter) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	res, err := f.client.Do(req)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status from image service: %d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, MaxImageSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, "", fmt.Errorf("image exceeds %d bytes", MaxImageSize)
	}

	return data, res.Header.Get("Content-Type"), nil
}
