package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Report Files
// Rendered reports are written whole or not at all.

func TestReportWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes the payload to the target path", func(t *testing.T) {
		t.Parallel()

		// Given a report path in a directory that does not exist yet
		path := filepath.Join(t.TempDir(), "out", "report.json")

		// When I write the report
		err := fs.NewReportWriter().Write(path, []byte(`{"pages":[]}`))

		// Then the file holds the payload and no temp files remain
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"pages":[]}`, string(data))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("replaces an existing report", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.csv")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, fs.NewReportWriter().Write(path, []byte("url,title\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "url,title\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("fails when the target is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "report.html")
		require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0755))

		err := fs.NewReportWriter().Write(target, []byte("<html></html>"))

		require.Error(t, err)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file should be cleaned up")
	})
}

func TestReportPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("out", "web_scraping_report.xlsx"), fs.ReportPath("out", sitereport.FormatExcel))
	assert.Equal(t, "web_scraping_report.html", fs.ReportPath(".", sitereport.FormatHTML))
}
