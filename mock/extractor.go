package mock

import "github.com/fwojciec/sitereport"

var _ sitereport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitereport.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL, domain string) *sitereport.PageRecord
}

func (e *Extractor) Extract(html, pageURL, domain string) *sitereport.PageRecord {
	return e.ExtractFn(html, pageURL, domain)
}
