package mock

import (
	"context"

	"github.com/fwojciec/sitereport"
)

var _ sitereport.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of sitereport.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *sitereport.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*sitereport.Report, error)
	FindReportsFn    func(ctx context.Context, filter sitereport.ReportFilter) ([]*sitereport.Report, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *sitereport.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*sitereport.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter sitereport.ReportFilter) ([]*sitereport.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}
