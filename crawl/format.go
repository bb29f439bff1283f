package crawl

import (
	"fmt"

	"github.com/fwojciec/sitereport"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats a payload size in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatProgress renders a progress event as "[processed/budget] url",
// truncating the URL to maxURLLen. Failed pages carry a "failed" suffix.
func FormatProgress(p sitereport.CrawlProgress, maxURLLen int) string {
	line := fmt.Sprintf("[%d/%d] %s", p.Processed, p.Budget, TruncateURL(p.URL, maxURLLen))
	if p.Error != nil {
		line += " (failed)"
	}
	return line
}
