// Package geo provides the ipapi.co implementation of the GeoLocator port.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/port"
	"golang-devtools/internal/types"
)

const (
	DefaultEndpoint = "https://ipapi.co/"
	DefaultTimeout  = 10 * time.Second

	// maxBodySize caps the JSON document read from the service.
	maxBodySize = 1 << 20
)

// ClientAdapter queries the ipapi.co JSON API.
type ClientAdapter struct {
	endpoint string
	client   *http.Client
}

// Ensure ClientAdapter implements the GeoLocator port
var _ port.GeoLocator = (*ClientAdapter)(nil)

// NewClientAdapter creates a client for endpoint. An empty endpoint selects
// DefaultEndpoint and a non-positive timeout selects DefaultTimeout.
func NewClientAdapter(endpoint string, timeout time.Duration) *ClientAdapter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ClientAdapter{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: timeout,
			},
		},
	}
}

// Lookup returns the location of ip.
func (c *ClientAdapter) Lookup(ctx context.Context, ip string) (*types.Location, error) {
	return c.get(ctx, c.endpoint+ip+"/json/")
}

// LookupSelf returns the location of the public address the request leaves from.
func (c *ClientAdapter) LookupSelf(ctx context.Context) (*types.Location, error) {
	return c.get(ctx, c.endpoint+"json/")
}

func (c *ClientAdapter) get(ctx context.Context, url string) (*types.Location, error) {
	logger := logging.WithComponentAndTool("geo", "ipapi").WithField("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "golang-devtools")

	res, err := c.client.Do(req)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.WithField("status", res.StatusCode).Debug("Geolocation response received")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", res.StatusCode)
	}

	var loc types.Location
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodySize)).Decode(&loc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if loc.Error {
		if loc.Reason != "" {
			return nil, errors.New(loc.Reason)
		}
		return nil, errors.New("API Error")
	}
	return &loc, nil
}
