// Package goquery implements page extraction and link discovery on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitereport"
)

// removedElements do not contribute to body text or link counts.
const removedElements = "script, style, nav, footer, iframe"

// Ensure Extractor implements sitereport.Extractor at compile time.
var _ sitereport.Extractor = (*Extractor)(nil)

// Extractor measures the content of an HTML page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns a record for pageURL.
//
// Images are counted over the whole document. Script, style, nav, footer
// and iframe elements are then removed, and the title, body text and link
// counts are measured on what remains. Body text comes from the first
// <main>, else the first <article>, else <body>.
func (e *Extractor) Extract(html, pageURL, domain string) *sitereport.PageRecord {
	rec := &sitereport.PageRecord{
		URL:   pageURL,
		Title: sitereport.NoTitle,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return rec
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}

	rec.Images = doc.Find("img").Length()

	doc.Find(removedElements).Remove()

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		rec.Title = title
	}

	rec.Content = textContent(contentRoot(doc))
	rec.WordCount = len(strings.Fields(rec.Content))

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		link := sitereport.Resolve(base, href)
		switch {
		case link == "":
		case sitereport.InScope(link, domain):
			rec.InternalLinks++
		case sitereport.HasHost(link):
			rec.ExternalLinks++
		}
	})

	return rec
}

// contentRoot returns the element body text is taken from.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "article", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}
