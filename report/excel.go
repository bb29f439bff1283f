package report

import (
	"fmt"
	"time"

	"github.com/fwojciec/sitereport"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the page rows.
const SheetName = "Sheet1"

// maxCellChars is the spreadsheet limit on characters in one cell.
const maxCellChars = 32767

func renderExcel(records []*sitereport.PageRecord) (data []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("create stream writer: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			truncateCell(r.URL),
			truncateCell(r.Title),
			truncateCell(r.Content),
			r.InternalLinks,
			r.ExternalLinks,
			r.Images,
			r.CapturedAt.Format(time.RFC3339),
			r.WordCount,
		}
		if err := sw.SetRow(cell, values); err != nil {
			return nil, fmt.Errorf("write row for %s: %w", r.URL, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush stream writer: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func truncateCell(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellChars {
		return s
	}
	return string(runes[:maxCellChars])
}
