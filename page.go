package sitereport

import (
	"context"
	"time"
)

// NoTitle is the title recorded for pages without a <title> element.
const NoTitle = "No Title"

// Page budget limits accepted from callers.
const (
	MinPageBudget     = 1
	MaxPageBudget     = 500
	DefaultPageBudget = 50
)

// PageRecord holds the content extracted from one successfully fetched page.
// Records are created once per normalized URL per crawl and never modified.
type PageRecord struct {
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	InternalLinks int       `json:"internal_links"`
	ExternalLinks int       `json:"external_links"`
	Images        int       `json:"images"`
	CapturedAt    time.Time `json:"timestamp"`
	WordCount     int       `json:"word_count"`
}

// CrawlProgress reports progress during a crawl.
type CrawlProgress struct {
	URL       string
	Processed int
	Budget    int
	Error     error
}

// CrawlProgressFunc is called after each URL is processed.
type CrawlProgressFunc func(CrawlProgress)

// PageStore persists page records with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *PageRecord) error
	Commit() error
	Abort() error
}
