package sitereport

// LinkSelector discovers outbound links in fetched markup.
type LinkSelector interface {
	// ExtractLinks returns every anchor href in html, resolved against
	// baseURL and normalized, deduplicated in document order.
	// Links are not filtered for scope.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
