package sitereport

// Extractor builds a PageRecord from fetched markup.
type Extractor interface {
	// Extract parses html fetched from pageURL and measures its content.
	// Links are classified against domain. Extract never fails: missing
	// elements degrade to NoTitle, empty text, and zero counts.
	// The returned record has no CapturedAt; the caller stamps it.
	Extract(html, pageURL, domain string) *PageRecord
}
