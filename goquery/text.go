package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// textContent returns the text of sel with each text node trimmed and
// placed on its own line. Whitespace-only nodes and comments are dropped.
func textContent(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	var lines []string
	for _, n := range sel.Nodes {
		lines = appendText(lines, n)
	}
	return strings.Join(lines, "\n")
}

func appendText(lines []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			lines = append(lines, s)
		}
		return lines
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		lines = appendText(lines, c)
	}
	return lines
}
