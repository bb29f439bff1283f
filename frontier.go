package sitereport

import "context"

// URLFrontier manages a FIFO crawl queue with deduplication.
type URLFrontier interface {
	// Push normalizes url, marks it seen and enqueues it.
	// Returns false if the URL has already been seen.
	Push(url string) bool

	// Pop returns the oldest queued URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been queued at any point.
	Seen(url string) bool
}

// DomainLimiter enforces a pause between consecutive requests to the same
// domain. The pause runs from the end of one request to the start of the
// next.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error

	// Done records that a request to the domain has finished, successfully
	// or not. The next Wait is timed from this moment.
	Done(domain string)
}
