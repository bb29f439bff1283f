package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitereport"
)

// Ensure LoggingReportService implements sitereport.ReportService.
var _ sitereport.ReportService = (*LoggingReportService)(nil)

// LoggingReportService wraps a ReportService with logging. Writes are
// logged at info level, reads at debug level.
type LoggingReportService struct {
	next   sitereport.ReportService
	logger *slog.Logger
}

// NewLoggingReportService creates a new LoggingReportService.
func NewLoggingReportService(next sitereport.ReportService, logger *slog.Logger) *LoggingReportService {
	return &LoggingReportService{next: next, logger: logger}
}

func (s *LoggingReportService) CreateReport(ctx context.Context, report *sitereport.Report) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "create report",
			"id", report.ID,
			"seed", report.SeedURL,
			"format", string(report.Format),
			"bytes", len(report.Payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateReport(ctx, report)
}

func (s *LoggingReportService) FindReportByID(ctx context.Context, id string) (report *sitereport.Report, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "find report",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReportByID(ctx, id)
}

func (s *LoggingReportService) FindReports(ctx context.Context, filter sitereport.ReportFilter) (reports []*sitereport.Report, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "find reports",
			"count", len(reports),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReports(ctx, filter)
}

func (s *LoggingReportService) DeleteReport(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "delete report",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteReport(ctx, id)
}
