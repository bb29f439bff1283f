package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a slog logger writing human-readable lines to w.
// Only warnings and errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.WarnLevel,
		Prefix:          AppName,
	})
	if verbose {
		handler.SetLevel(log.DebugLevel)
	}
	return slog.New(handler)
}
