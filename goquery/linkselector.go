package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitereport"
)

// Ensure LinkSelector implements sitereport.LinkSelector at compile time.
var _ sitereport.LinkSelector = (*LinkSelector)(nil)

// LinkSelector extracts anchor targets from raw markup. Unlike Extractor it
// does not strip navigation or footers, so links there are still discovered.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// ExtractLinks returns resolved, normalized anchor targets in document order.
// Each URL appears once.
func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitereport.Errorf(sitereport.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitereport.Errorf(sitereport.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved := sitereport.Resolve(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}
