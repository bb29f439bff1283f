package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock returns a Now func that advances one second per call.
func clock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newReport(seed string, format sitereport.Format, payload string) *sitereport.Report {
	return &sitereport.Report{
		SeedURL:   seed,
		Format:    format,
		PageCount: 3,
		Payload:   []byte(payload),
	}
}

func TestReportService_CreateReport(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		report := newReport("https://example.com/", sitereport.FormatJSON, `{"pages":[]}`)

		require.NoError(t, svc.CreateReport(context.Background(), report))

		assert.NotEmpty(t, report.ID)
		assert.Len(t, report.ContentHash, 16)
		assert.False(t, report.CreatedAt.IsZero())
	})

	t.Run("hashes identical payloads identically", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		a := newReport("https://example.com/", sitereport.FormatCSV, "url,title\n")
		b := newReport("https://example.com/", sitereport.FormatCSV, "url,title\n")
		c := newReport("https://example.com/", sitereport.FormatCSV, "url,title,content\n")

		require.NoError(t, svc.CreateReport(context.Background(), a))
		require.NoError(t, svc.CreateReport(context.Background(), b))
		require.NoError(t, svc.CreateReport(context.Background(), c))

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})

	t.Run("rejects invalid reports", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		err := svc.CreateReport(context.Background(), newReport("", sitereport.FormatHTML, "<html></html>"))
		assert.Equal(t, sitereport.EINVALID, sitereport.ErrorCode(err))

		err = svc.CreateReport(context.Background(), newReport("https://example.com/", sitereport.Format("pdf"), "x"))
		assert.Equal(t, sitereport.EUNSUPPORTED, sitereport.ErrorCode(err))

		err = svc.CreateReport(context.Background(), newReport("https://example.com/", sitereport.FormatHTML, ""))
		assert.Equal(t, sitereport.EINVALID, sitereport.ErrorCode(err))
	})
}

func TestReportService_FindReportByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored report with payload", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		svc.Now = clock()
		payload := string([]byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0xff})
		created := newReport("https://example.com/", sitereport.FormatExcel, payload)
		require.NoError(t, svc.CreateReport(context.Background(), created))

		found, err := svc.FindReportByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "https://example.com/", found.SeedURL)
		assert.Equal(t, sitereport.FormatExcel, found.Format)
		assert.Equal(t, 3, found.PageCount)
		assert.Equal(t, []byte(payload), found.Payload)
		assert.Equal(t, created.ContentHash, found.ContentHash)
		assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for unknown IDs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		_, err := svc.FindReportByID(context.Background(), "missing")

		assert.Equal(t, sitereport.ENOTFOUND, sitereport.ErrorCode(err))
	})
}

func TestReportService_FindReports(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.ReportService {
		t.Helper()
		svc := sqlite.NewReportService(setupTestDB(t))
		svc.Now = clock()
		for _, r := range []*sitereport.Report{
			newReport("https://a.com/", sitereport.FormatHTML, "1"),
			newReport("https://a.com/", sitereport.FormatJSON, "2"),
			newReport("https://b.com/", sitereport.FormatHTML, "3"),
			newReport("https://b.com/", sitereport.FormatCSV, "4"),
		} {
			require.NoError(t, svc.CreateReport(context.Background(), r))
		}
		return svc
	}

	t.Run("lists newest first without payloads", func(t *testing.T) {
		t.Parallel()

		reports, err := seed(t).FindReports(context.Background(), sitereport.ReportFilter{})

		require.NoError(t, err)
		require.Len(t, reports, 4)
		assert.Equal(t, sitereport.FormatCSV, reports[0].Format)
		assert.Equal(t, "https://a.com/", reports[3].SeedURL)
		for _, r := range reports {
			assert.Nil(t, r.Payload)
			assert.NotEmpty(t, r.ContentHash)
		}
	})

	t.Run("filters by seed and format", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		seedURL := "https://b.com/"
		format := sitereport.FormatHTML

		bySeed, err := svc.FindReports(context.Background(), sitereport.ReportFilter{SeedURL: &seedURL})
		require.NoError(t, err)
		assert.Len(t, bySeed, 2)

		both, err := svc.FindReports(context.Background(), sitereport.ReportFilter{SeedURL: &seedURL, Format: &format})
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, "https://b.com/", both[0].SeedURL)
		assert.Equal(t, sitereport.FormatHTML, both[0].Format)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		page, err := svc.FindReports(context.Background(), sitereport.ReportFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "https://b.com/", page[0].SeedURL)
		assert.Equal(t, sitereport.FormatHTML, page[0].Format)

		rest, err := svc.FindReports(context.Background(), sitereport.ReportFilter{Offset: 3})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, sitereport.FormatHTML, rest[0].Format)
		assert.Equal(t, "https://a.com/", rest[0].SeedURL)
	})
}

func TestReportService_DeleteReport(t *testing.T) {
	t.Parallel()

	t.Run("removes the report", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		report := newReport("https://example.com/", sitereport.FormatHTML, "<html></html>")
		require.NoError(t, svc.CreateReport(context.Background(), report))

		require.NoError(t, svc.DeleteReport(context.Background(), report.ID))

		_, err := svc.FindReportByID(context.Background(), report.ID)
		assert.Equal(t, sitereport.ENOTFOUND, sitereport.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown IDs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		err := svc.DeleteReport(context.Background(), "missing")

		assert.Equal(t, sitereport.ENOTFOUND, sitereport.ErrorCode(err))
	})
}
