// Package http provides an HTTP-based implementation of sitereport.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sitereport"
)

// DefaultFetchTimeout is the default timeout for a single page request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPageSize is the largest response body read for one page.
const DefaultMaxPageSize = 10 << 20

// UserAgent is the browser identity sent with every request.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements sitereport.Fetcher at compile time.
var _ sitereport.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with plain GET requests. It does not execute
// JavaScript and never retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxPageSize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxPageSize sets the largest body accepted, in bytes. Larger pages
// fail with a *sitereport.FetchError.
func WithMaxPageSize(n int64) Option {
	return func(f *Fetcher) {
		f.maxPageSize = n
	}
}

// WithClient sends requests through a copy of c, for a custom transport.
// The copy gets the fetcher's timeout; c itself is not modified.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		clone := *c
		f.client = &clone
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   UserAgent,
		maxPageSize: DefaultMaxPageSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the HTML content from the given URL. Transport errors,
// timeouts and non-2xx responses are returned as *sitereport.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &sitereport.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &sitereport.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &sitereport.FetchError{URL: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxPageSize+1))
	if err != nil {
		return "", &sitereport.FetchError{URL: url, Err: err}
	}
	if int64(len(body)) > f.maxPageSize {
		return "", &sitereport.FetchError{URL: url, Err: fmt.Errorf("page exceeds %d bytes", f.maxPageSize)}
	}

	return string(body), nil
}

// Close releases idle keep-alive connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
