package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/sitereport"
	"github.com/nao1215/markdown"
)

func renderMarkdown(records []*sitereport.PageRecord, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Web Scraping Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated On", generatedAt.Format(timestampLayout)},
			{"Total Pages", strconv.Itoa(len(records))},
		},
	})
	md.PlainText("")

	for _, r := range records {
		md.H2(cellText(r.Title))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows: [][]string{
				{"URL", cellText(r.URL)},
				{"Word Count", strconv.Itoa(r.WordCount)},
				{"Internal Links", strconv.Itoa(r.InternalLinks)},
				{"External Links", strconv.Itoa(r.ExternalLinks)},
				{"Images", strconv.Itoa(r.Images)},
			},
		})
		md.PlainText("")
		excerpt := Excerpt(r.Content)
		fence := codeFence(excerpt)
		md.PlainText(fence + "text\n" + excerpt + "\n" + fence)
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("build markdown report: %w", err)
	}
	return buf.Bytes(), nil
}

// codeFence returns a backtick fence longer than any backtick run in s, so
// the fenced text cannot close the block.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return strings.Repeat("`", max(3, longest+1))
}

// cellText keeps a value on one table line.
func cellText(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
