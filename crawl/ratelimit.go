package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/sitereport"
	"golang.org/x/time/rate"
)

// DefaultPolitenessDelay is the pause between the end of one request to
// the crawled domain and the start of the next.
const DefaultPolitenessDelay = time.Second

var _ sitereport.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a fixed pause between requests to the same domain
// using token buckets with a burst of 1. The first request to a domain is
// immediate. Done empties the bucket, so the next request waits the full
// delay after the previous one finished, however long it took.
// Different domains have independent limits.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a new DomainLimiter with the given delay between
// requests. A zero or negative delay disables limiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	return limiter
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

// Done restarts the delay for domain from now.
func (d *DomainLimiter) Done(domain string) {
	if d.limit == rate.Inf {
		return
	}
	limiter := d.limiter(domain)

	// A burst of zero caps the bucket at zero tokens. Tokens already owed
	// to waiting reservations stay owed.
	now := time.Now()
	limiter.SetBurstAt(now, 0)
	limiter.SetBurstAt(now, 1)
}
