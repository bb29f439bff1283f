// Package crawl drives breadth-first crawls of a single domain and turns
// the collected pages into reports.
package crawl

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/sitereport"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for one crawl run.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the Bloom pre-filter false positive rate.
	frontierFalsePositiveRate = 0.01
)

// Phase is the lifecycle position of a crawl run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTraversing
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTraversing:
		return "traversing"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// State is the mutable state of one crawl run. It is created for a single
// run and belongs to the caller once the run returns.
type State struct {
	SeedURL   string
	Domain    string
	Budget    int
	Frontier  *Frontier
	Records   []*sitereport.PageRecord
	Processed int
	Failed    int
	Phase     Phase
}

// NewState validates the seed and budget, derives the crawl domain from the
// seed host, and enqueues the normalized seed.
// Returns EINVALID for a bad seed or a budget below 1.
func NewState(seedURL string, budget int) (*State, error) {
	domain, err := sitereport.SeedDomain(seedURL)
	if err != nil {
		return nil, err
	}
	if budget < sitereport.MinPageBudget {
		return nil, sitereport.Errorf(sitereport.EINVALID, "page budget must be at least %d, got %d", sitereport.MinPageBudget, budget)
	}

	seed := sitereport.Normalize(seedURL)
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seed)

	return &State{
		SeedURL:  seed,
		Domain:   domain,
		Budget:   budget,
		Frontier: frontier,
		Phase:    PhaseIdle,
	}, nil
}

// Crawler fetches pages breadth-first from a frontier.
type Crawler struct {
	Fetcher      sitereport.Fetcher
	Extractor    sitereport.Extractor
	LinkSelector sitereport.LinkSelector
	RateLimiter  sitereport.DomainLimiter

	// Concurrency is the number of fetches in flight. Values below 1 mean 1,
	// which processes one URL completely before dequeuing the next.
	Concurrency int

	// Now stamps captured records. Defaults to time.Now.
	Now func() time.Time
}

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	url      string
	record   *sitereport.PageRecord
	links    []string
	err      error
	canceled bool
}

// Crawl runs a complete crawl from seedURL collecting at most budget pages.
// Only an invalid seed or budget is returned as an error; per-page fetch
// failures are reported through progress and never abort the run.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, budget int, progress sitereport.CrawlProgressFunc) (*State, error) {
	st, err := NewState(seedURL, budget)
	if err != nil {
		return nil, err
	}
	c.Walk(ctx, st, progress)
	return st, nil
}

// Walk processes the frontier of st until the queue is empty, the budget is
// reached, or ctx is canceled. Cancellation stops further dequeues; fetches
// already in flight complete and their results are kept.
//
// A coordinator goroutine owns st. Workers only fetch and parse; the
// coordinator appends records and pushes discovered links. A URL is
// dispatched only while processed plus in-flight is below the budget, so
// the budget is never exceeded.
func (c *Crawler) Walk(ctx context.Context, st *State, progress sitereport.CrawlProgressFunc) {
	st.Phase = PhaseTraversing
	defer func() { st.Phase = PhaseDone }()

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	domain := st.Domain
	workCh := make(chan string)
	resultCh := make(chan pageResult)

	var g errgroup.Group
	for range concurrency {
		g.Go(func() error {
			for pageURL := range workCh {
				resultCh <- c.processURL(ctx, domain, pageURL)
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(resultCh)
	}()

	var next string
	pending := 0
	stopped := false
	done := ctx.Done()

	for {
		if !stopped && ctx.Err() != nil {
			stopped = true
			done = nil
		}

		canDispatch := !stopped && st.Processed+pending < st.Budget
		if canDispatch && next == "" {
			next, _ = st.Frontier.Pop()
		}
		if (!canDispatch || next == "") && pending == 0 {
			break
		}

		var work chan<- string
		if canDispatch && next != "" {
			work = workCh
		}

		select {
		case work <- next:
			pending++
			next = ""
		case res := <-resultCh:
			pending--
			c.handleResult(st, res, progress)
		case <-done:
			stopped = true
			done = nil
		}
	}

	close(workCh)
	for range resultCh {
	}

	if next != "" {
		st.Frontier.unpop(next)
	}
}

// processURL waits out the politeness delay since the previous fetch ended,
// fetches the page, and parses the record and outbound links from the same
// markup.
func (c *Crawler) processURL(ctx context.Context, domain, pageURL string) pageResult {
	result := pageResult{url: pageURL}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, domain); err != nil {
			result.err = err
			result.canceled = true
			return result
		}
	}

	// A started request is not aborted by run cancellation; the fetcher's
	// own timeout still bounds it.
	html, err := c.Fetcher.Fetch(context.WithoutCancel(ctx), pageURL)
	if c.RateLimiter != nil {
		c.RateLimiter.Done(domain)
	}
	if err != nil {
		var fe *sitereport.FetchError
		if !errors.As(err, &fe) {
			err = &sitereport.FetchError{URL: pageURL, Err: err}
		}
		result.err = err
		return result
	}

	record := c.Extractor.Extract(html, pageURL, domain)
	record.URL = pageURL
	record.CapturedAt = c.now()
	result.record = record

	if links, err := c.LinkSelector.ExtractLinks(html, pageURL); err == nil {
		result.links = links
	}

	return result
}

// handleResult applies a worker result to the run state.
func (c *Crawler) handleResult(st *State, res pageResult, progress sitereport.CrawlProgressFunc) {
	switch {
	case res.canceled:
		st.Frontier.unpop(res.url)
		return
	case res.err != nil:
		st.Failed++
	default:
		st.Records = append(st.Records, res.record)
		st.Processed++
		for _, link := range res.links {
			if sitereport.InScope(link, st.Domain) {
				st.Frontier.Push(link)
			}
		}
	}

	if progress != nil {
		progress(sitereport.CrawlProgress{
			URL:       res.url,
			Processed: st.Processed,
			Budget:    st.Budget,
			Error:     res.err,
		})
	}
}

func (c *Crawler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
