package mock

import "github.com/fwojciec/sitereport"

var _ sitereport.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of sitereport.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]string, error) {
	return s.ExtractLinksFn(html, baseURL)
}
