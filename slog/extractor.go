package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitereport"
)

// Ensure LoggingExtractor implements sitereport.Extractor.
var _ sitereport.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   sitereport.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitereport.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was measured.
func (e *LoggingExtractor) Extract(html, pageURL, domain string) (rec *sitereport.PageRecord) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"url", pageURL,
			"title", rec.Title,
			"words", rec.WordCount,
			"internal", rec.InternalLinks,
			"external", rec.ExternalLinks,
			"images", rec.Images,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html, pageURL, domain)
}
