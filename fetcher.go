package sitereport

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch issues a single GET for url and returns the response body.
	// Transport failures, timeouts, and non-2xx responses are returned
	// as *FetchError. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases idle connections held by the fetcher.
	Close() error
}
