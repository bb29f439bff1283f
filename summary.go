package sitereport

// Summary aggregates statistics over the records of one crawl.
// Averages are truncated to integers.
type Summary struct {
	TotalPages           int `json:"total_pages"`
	TotalWords           int `json:"total_words"`
	AverageWords         int `json:"average_words"`
	TotalInternalLinks   int `json:"total_internal_links"`
	AverageInternalLinks int `json:"average_internal_links"`
	TotalExternalLinks   int `json:"total_external_links"`
	AverageExternalLinks int `json:"average_external_links"`
	TotalImages          int `json:"total_images"`
}

// Summarize computes aggregate statistics for records.
// An empty slice yields a zero Summary.
func Summarize(records []*PageRecord) Summary {
	var s Summary
	for _, r := range records {
		s.TotalPages++
		s.TotalWords += r.WordCount
		s.TotalInternalLinks += r.InternalLinks
		s.TotalExternalLinks += r.ExternalLinks
		s.TotalImages += r.Images
	}
	if s.TotalPages == 0 {
		return s
	}
	s.AverageWords = s.TotalWords / s.TotalPages
	s.AverageInternalLinks = s.TotalInternalLinks / s.TotalPages
	s.AverageExternalLinks = s.TotalExternalLinks / s.TotalPages
	return s
}
