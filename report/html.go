package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/fwojciec/sitereport"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Web Scraping Report</title>
</head>
<body>
<h1>Web Scraping Report</h1>
<p>Generated on: {{.GeneratedAt}}</p>
<p>Total pages scraped: {{.TotalPages}}</p>
{{range .Pages}}<section>
<h2><a href="{{.URL}}">{{.Title}}</a></h2>
<p><strong>URL:</strong> {{.URL}}</p>
<p><strong>Word Count:</strong> {{.WordCount}}</p>
<p><strong>Internal Links:</strong> {{.InternalLinks}}</p>
<p><strong>External Links:</strong> {{.ExternalLinks}}</p>
<p><strong>Images:</strong> {{.Images}}</p>
<h3>Content Preview:</h3>
<div style="border:1px solid #ccc; padding:10px; max-height:200px; overflow:auto;">
<pre>{{.Excerpt}}</pre>
</div>
</section>
<hr>
{{end}}</body>
</html>
`))

type htmlPage struct {
	URL           string
	Title         string
	WordCount     int
	InternalLinks int
	ExternalLinks int
	Images        int
	Excerpt       string
}

type htmlView struct {
	GeneratedAt string
	TotalPages  int
	Pages       []htmlPage
}

func renderHTML(records []*sitereport.PageRecord, generatedAt time.Time) ([]byte, error) {
	view := htmlView{
		GeneratedAt: generatedAt.Format(timestampLayout),
		TotalPages:  len(records),
		Pages:       make([]htmlPage, 0, len(records)),
	}
	for _, r := range records {
		view.Pages = append(view.Pages, htmlPage{
			URL:           r.URL,
			Title:         r.Title,
			WordCount:     r.WordCount,
			InternalLinks: r.InternalLinks,
			ExternalLinks: r.ExternalLinks,
			Images:        r.Images,
			Excerpt:       Excerpt(r.Content),
		})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute html template: %w", err)
	}
	return buf.Bytes(), nil
}
