package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout for catalog HTTP requests.
const DefaultTimeout = 15 * time.Second

// Fetcher downloads a star catalog over HTTP. The response may be either
// a JSON star list or raw CSV.
type Fetcher struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a catalog fetcher for the given URL.
func NewFetcher(url string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		url:     url,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch downloads and parses the remote catalog. The snapshot's Source is
// the configured URL.
func (f *Fetcher) Fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "skytrackr/1.0 (Night Sky Viewer)")
	req.Header.Set("Accept", "application/json, text/csv, text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read response body: %w", err)
	}

	var snap Snapshot
	if looksLikeJSON(body) {
		snap, err = LoadJSON(bytes.NewReader(body), time.Now())
	} else {
		snap, err = LoadCSV(bytes.NewReader(body), time.Now())
	}
	if err != nil {
		return Snapshot{}, err
	}
	snap.Source = f.url
	return snap, nil
}

// looksLikeJSON reports whether the body starts with a JSON array after
// leading whitespace. Catalog endpoints return either a JSON star list or
// raw CSV, so the first significant byte is enough to tell them apart.
func looksLikeJSON(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// URL returns the configured catalog URL.
func (f *Fetcher) URL() string {
	return f.url
}
