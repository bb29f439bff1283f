package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitereport"
	"github.com/google/uuid"
)

// timeLayout is a fixed-width UTC layout so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Compile-time interface verification.
var _ sitereport.ReportService = (*ReportService)(nil)

// ReportService implements sitereport.ReportService using SQLite.
type ReportService struct {
	db *DB

	// Now is used for CreatedAt. Defaults to time.Now.
	Now func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// hashPayload computes the xxHash of payload as a hex string.
func hashPayload(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

// CreateReport stores a new report.
func (s *ReportService) CreateReport(ctx context.Context, report *sitereport.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = s.now().UTC()
	report.ContentHash = hashPayload(report.Payload)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, seed_url, format, page_count, payload, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.SeedURL, string(report.Format), report.PageCount, report.Payload,
		report.ContentHash, report.CreatedAt.Format(timeLayout))

	return err
}

// FindReportByID retrieves a report including its payload.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*sitereport.Report, error) {
	var report sitereport.Report
	var format, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, format, page_count, payload, content_hash, created_at
		FROM reports
		WHERE id = ?
	`, id).Scan(&report.ID, &report.SeedURL, &format, &report.PageCount, &report.Payload,
		&report.ContentHash, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitereport.Errorf(sitereport.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	report.Format = sitereport.Format(format)
	if report.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &report, nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter sitereport.ReportFilter) ([]*sitereport.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, seed_url, format, page_count, content_hash, created_at FROM reports WHERE 1=1")

	if filter.SeedURL != nil {
		query.WriteString(" AND seed_url = ?")
		args = append(args, *filter.SeedURL)
	}
	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	// SQLite requires LIMIT before OFFSET.
	switch {
	case filter.Limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	case filter.Offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*sitereport.Report
	for rows.Next() {
		var report sitereport.Report
		var format, createdAt string

		if err := rows.Scan(&report.ID, &report.SeedURL, &format, &report.PageCount,
			&report.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		report.Format = sitereport.Format(format)
		if report.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitereport.Errorf(sitereport.ENOTFOUND, "report not found")
	}

	return nil
}

func (s *ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// parseTime parses a stored timestamp, naming the field on failure.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
