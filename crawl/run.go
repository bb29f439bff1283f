package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitereport"
)

// Request describes one crawl-and-report run.
type Request struct {
	SeedURL string
	// MaxPages is the page budget. Zero means sitereport.DefaultPageBudget.
	MaxPages int
	Format   sitereport.Format
}

// Run is the outcome of one crawl-and-report run.
type Run struct {
	State   *State
	Format  sitereport.Format
	Report  []byte
	Summary sitereport.Summary
}

// Records returns the pages collected by the run in processing order.
func (r *Run) Records() []*sitereport.PageRecord {
	return r.State.Records
}

// Empty reports whether the run collected no pages.
func (r *Run) Empty() bool {
	return len(r.State.Records) == 0
}

// Orchestrator wires a single traversal and the report rendering that
// follows it. Each call to Run owns a fresh State.
type Orchestrator struct {
	Crawler  *Crawler
	Renderer sitereport.Renderer

	// Pages, if set, receives the body text of every collected page.
	Pages sitereport.PageStore
}

// Run validates req, crawls the seed's domain, and renders the collected
// records. Invalid input fails with EINVALID before anything is fetched.
// A run that collects no pages succeeds with a nil report.
func (o *Orchestrator) Run(ctx context.Context, req Request, progress sitereport.CrawlProgressFunc) (*Run, error) {
	budget := req.MaxPages
	if budget == 0 {
		budget = sitereport.DefaultPageBudget
	}
	if budget < sitereport.MinPageBudget || budget > sitereport.MaxPageBudget {
		return nil, sitereport.Errorf(sitereport.EINVALID, "page budget must be between %d and %d, got %d",
			sitereport.MinPageBudget, sitereport.MaxPageBudget, budget)
	}
	if !req.Format.Valid() {
		return nil, sitereport.Errorf(sitereport.EUNSUPPORTED, "unsupported report format %q", req.Format)
	}

	st, err := NewState(req.SeedURL, budget)
	if err != nil {
		return nil, err
	}

	o.Crawler.Walk(ctx, st, progress)

	if o.Pages != nil {
		if err := o.savePages(ctx, st.Records); err != nil {
			return nil, err
		}
	}

	payload, err := o.Renderer.Render(st.Records, req.Format)
	if err != nil {
		return nil, fmt.Errorf("render %s report: %w", req.Format, err)
	}

	return &Run{
		State:   st,
		Format:  req.Format,
		Report:  payload,
		Summary: sitereport.Summarize(st.Records),
	}, nil
}

// savePages exports records to the page store, publishing them only if
// every save succeeds.
func (o *Orchestrator) savePages(ctx context.Context, records []*sitereport.PageRecord) error {
	for _, r := range records {
		if err := o.Pages.Save(ctx, r); err != nil {
			_ = o.Pages.Abort()
			return fmt.Errorf("save page %s: %w", r.URL, err)
		}
	}
	if err := o.Pages.Commit(); err != nil {
		return fmt.Errorf("commit pages: %w", err)
	}
	return nil
}
