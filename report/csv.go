package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/sitereport"
)

// Columns is the column order of tabular reports.
var Columns = []string{
	"url",
	"title",
	"content",
	"internal_links",
	"external_links",
	"images",
	"timestamp",
	"word_count",
}

// row returns the tabular cells of r in Columns order.
func row(r *sitereport.PageRecord) []string {
	return []string{
		r.URL,
		r.Title,
		r.Content,
		strconv.Itoa(r.InternalLinks),
		strconv.Itoa(r.ExternalLinks),
		strconv.Itoa(r.Images),
		r.CapturedAt.Format(time.RFC3339),
		strconv.Itoa(r.WordCount),
	}
}

func renderCSV(records []*sitereport.PageRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(row(r)); err != nil {
			return nil, fmt.Errorf("write csv row for %s: %w", r.URL, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
