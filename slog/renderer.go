package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitereport"
)

// Ensure LoggingRenderer implements sitereport.Renderer.
var _ sitereport.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   sitereport.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next sitereport.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the payload size.
func (r *LoggingRenderer) Render(records []*sitereport.PageRecord, format sitereport.Format) (payload []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"format", string(format),
			"records", len(records),
			"bytes", len(payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(records, format)
}
