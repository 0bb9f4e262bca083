// Package geoloc resolves an approximate observer location from the
// machine's public IP address. Resolution is best effort; callers fall
// back to the default location when it fails.
package geoloc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
)

const (
	// DefaultURL is a free IP geolocation endpoint returning JSON.
	DefaultURL = "http://ip-api.com/json/"

	// DefaultTimeout keeps startup snappy when the network is slow.
	DefaultTimeout = 5 * time.Second
)

// DefaultObserver is used when no location is configured and
// geolocation fails: San Francisco.
var DefaultObserver = astro.Observer{
	LatDeg: 37.7749,
	LonDeg: -122.4194,
	Name:   "San Francisco (default)",
}

// Client queries an IP geolocation service.
type Client struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithURL sets a custom geolocation endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a geolocation client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:     DefaultURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

type apiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// Locate returns the observer position for the current public IP.
func (c *Client) Locate(ctx context.Context) (astro.Observer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return astro.Observer{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "skytrackr/1.0 (Night Sky Viewer)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return astro.Observer{}, fmt.Errorf("fetch location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return astro.Observer{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return astro.Observer{}, fmt.Errorf("decode location: %w", err)
	}
	if body.Status != "success" {
		return astro.Observer{}, fmt.Errorf("geolocation failed: %s", body.Message)
	}
	if body.Lat < -90 || body.Lat > 90 || body.Lon < -180 || body.Lon > 180 {
		return astro.Observer{}, fmt.Errorf("geolocation returned out-of-range coordinates: %v, %v", body.Lat, body.Lon)
	}

	name := body.City
	if name == "" {
		name = body.Country
	}
	return astro.Observer{LatDeg: body.Lat, LonDeg: body.Lon, Name: name}, nil
}
