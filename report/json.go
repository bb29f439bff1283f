package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/sitereport"
)

// JSONReport is the document written for the json format.
type JSONReport struct {
	Metadata JSONMetadata             `json:"metadata"`
	Pages    []*sitereport.PageRecord `json:"pages"`
}

// JSONMetadata describes a JSON report.
type JSONMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	TotalPages  int       `json:"total_pages"`
}

func renderJSON(records []*sitereport.PageRecord, generatedAt time.Time) ([]byte, error) {
	doc := JSONReport{
		Metadata: JSONMetadata{
			GeneratedAt: generatedAt,
			TotalPages:  len(records),
		},
		Pages: records,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json report: %w", err)
	}
	return data, nil
}
