package sitereport

import (
	"context"
	"strings"
	"time"
)

// Format identifies a report encoding.
type Format string

// Supported report formats.
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatExcel    Format = "excel"
	FormatMarkdown Format = "markdown"
)

// Formats returns all supported formats in display order.
func Formats() []Format {
	return []Format{FormatHTML, FormatJSON, FormatCSV, FormatExcel, FormatMarkdown}
}

// ParseFormat returns the format named by s. The file extension "xlsx"
// is accepted for FormatExcel.
// Returns EUNSUPPORTED for unknown names.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "xlsx" {
		f = FormatExcel
	}
	if !f.Valid() {
		return "", Errorf(EUNSUPPORTED, "unsupported report format %q", s)
	}
	return f, nil
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatHTML, FormatJSON, FormatCSV, FormatExcel, FormatMarkdown:
		return true
	}
	return false
}

// MIMEType returns the content type used when serving a report.
func (f Format) MIMEType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	}
	return "application/octet-stream"
}

// Extension returns the file extension for the format, without a dot.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "xlsx"
	case FormatMarkdown:
		return "md"
	}
	return "bin"
}

// DefaultReportName returns the file name used when saving a report.
func DefaultReportName(f Format) string {
	return "web_scraping_report." + f.Extension()
}

// Renderer renders page records into a report payload.
type Renderer interface {
	// Render encodes records in the given format.
	// Returns a nil payload and no error when records is empty or the
	// format is not recognized; callers treat that as "no report".
	Render(records []*PageRecord, format Format) ([]byte, error)
}

// Report is a rendered report kept in the archive.
type Report struct {
	ID          string    `json:"id"`
	SeedURL     string    `json:"seedUrl"`
	Format      Format    `json:"format"`
	PageCount   int       `json:"pageCount"`
	Payload     []byte    `json:"-"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.SeedURL == "" {
		return Errorf(EINVALID, "report seed URL required")
	}
	if !r.Format.Valid() {
		return Errorf(EUNSUPPORTED, "unsupported report format %q", r.Format)
	}
	if len(r.Payload) == 0 {
		return Errorf(EINVALID, "report payload required")
	}
	return nil
}

// ReportService represents a service for archiving rendered reports.
type ReportService interface {
	// CreateReport stores a new report and assigns its ID, hash and timestamp.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report including its payload.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	// Payloads are not loaded.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	SeedURL *string `json:"seedUrl"`
	Format  *Format `json:"format"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
