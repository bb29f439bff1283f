// Package report renders crawled page records into downloadable reports.
package report

import (
	"time"
	"unicode/utf8"

	"github.com/fwojciec/sitereport"
)

// ExcerptLimit is the number of characters of body text shown per page in
// HTML and Markdown reports.
const ExcerptLimit = 2000

// timestampLayout is the human-readable generation time in report headers.
const timestampLayout = "2006-01-02 15:04:05"

// Ensure Renderer implements sitereport.Renderer at compile time.
var _ sitereport.Renderer = (*Renderer)(nil)

// Renderer renders records in every supported report format.
type Renderer struct {
	// Now returns the report generation time. Defaults to time.Now.
	Now func() time.Time
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render encodes records in format. An empty record list or an unknown
// format yields a nil payload and no error.
func (r *Renderer) Render(records []*sitereport.PageRecord, format sitereport.Format) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}

	generatedAt := r.now()

	switch format {
	case sitereport.FormatHTML:
		return renderHTML(records, generatedAt)
	case sitereport.FormatJSON:
		return renderJSON(records, generatedAt)
	case sitereport.FormatCSV:
		return renderCSV(records)
	case sitereport.FormatExcel:
		return renderExcel(records)
	case sitereport.FormatMarkdown:
		return renderMarkdown(records, generatedAt)
	}
	return nil, nil
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Excerpt returns at most ExcerptLimit characters of text, with "..."
// appended when text was cut.
func Excerpt(text string) string {
	if utf8.RuneCountInString(text) <= ExcerptLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:ExcerptLimit]) + "..."
}
