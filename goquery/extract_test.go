package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, text and counts", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  Example Home  </title></head>
<body>
<h1>Welcome</h1>
<p>Hello   world from the <b>example</b> site.</p>
<a href="/about">About</a>
<a href="https://example.com/contact?ref=home">Contact</a>
<a href="https://other.org/">Elsewhere</a>
<img src="/logo.png">
<img src="/hero.png">
</body>
</html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		require.NotNil(t, rec)
		assert.Equal(t, "https://example.com", rec.URL)
		assert.Equal(t, "Example Home", rec.Title)
		assert.Equal(t, "Welcome\nHello   world from the\nexample\nsite.\nAbout\nContact\nElsewhere", rec.Content)
		assert.Equal(t, 10, rec.WordCount)
		assert.Equal(t, 2, rec.InternalLinks)
		assert.Equal(t, 1, rec.ExternalLinks)
		assert.Equal(t, 2, rec.Images)
		assert.True(t, rec.CapturedAt.IsZero(), "timestamp is stamped by the caller")
	})

	t.Run("uses sentinel title when title is missing", func(t *testing.T) {
		t.Parallel()

		rec := goquery.NewExtractor().Extract(`<html><body><p>text</p></body></html>`, "https://example.com/x", "example.com")

		assert.Equal(t, sitereport.NoTitle, rec.Title)
	})

	t.Run("uses sentinel title when title is empty", func(t *testing.T) {
		t.Parallel()

		rec := goquery.NewExtractor().Extract(`<html><head><title>   </title></head><body></body></html>`, "https://example.com/x", "example.com")

		assert.Equal(t, sitereport.NoTitle, rec.Title)
	})

	t.Run("removes script, style, nav, footer and iframe from text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>body { color: red }</style></head><body>
<nav>Menu <a href="/nav-link">Nav</a></nav>
<script>var hidden = "words";</script>
<p>Visible words</p>
<iframe src="/embed">frame text</iframe>
<footer>Footer text <a href="https://other.org">Out</a></footer>
</body></html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		assert.Equal(t, "Visible words", rec.Content)
		assert.Equal(t, 2, rec.WordCount)
		assert.Equal(t, 0, rec.InternalLinks, "links inside removed elements are not counted")
		assert.Equal(t, 0, rec.ExternalLinks)
	})

	t.Run("counts images inside removed elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav><img src="/a.png"></nav><footer><img src="/b.png"></footer><img src="/c.png"></body></html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		assert.Equal(t, 3, rec.Images)
	})

	t.Run("prefers main over article for text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><p>Article words here</p><a href="https://example.com/from-article">A</a><img src="/x.png"></article>
<main><p>Main content</p></main>
</body></html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		assert.Equal(t, "Main content", rec.Content)
		assert.Equal(t, 2, rec.WordCount)
		assert.Equal(t, 1, rec.InternalLinks, "anchors in article are still counted")
		assert.Equal(t, 1, rec.Images, "images in article are still counted")
	})

	t.Run("falls back to article when there is no main", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>Outside</div><article><p>Inside article</p></article></body></html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		assert.Equal(t, "Inside article", rec.Content)
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>One</div><div>Two three</div></body></html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		assert.Equal(t, "One\nTwo three", rec.Content)
		assert.Equal(t, 3, rec.WordCount)
	})

	t.Run("counts hostless anchors as neither internal nor external", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="mailto:team@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="tel:+123">Call</a>
<a href="#top">Top</a>
<a href="https://blog.example.com/">Blog</a>
<a href="http://[::1">Broken</a>
</body></html>`

		rec := goquery.NewExtractor().Extract(html, "https://example.com/page", "example.com")

		assert.Equal(t, 1, rec.InternalLinks, "fragment link resolves to the page itself")
		assert.Equal(t, 1, rec.ExternalLinks, "subdomain has a host but is out of scope")
	})

	t.Run("degrades gracefully on empty markup", func(t *testing.T) {
		t.Parallel()

		rec := goquery.NewExtractor().Extract("", "https://example.com", "example.com")

		require.NotNil(t, rec)
		assert.Equal(t, sitereport.NoTitle, rec.Title)
		assert.Empty(t, rec.Content)
		assert.Zero(t, rec.WordCount)
		assert.Zero(t, rec.InternalLinks)
		assert.Zero(t, rec.ExternalLinks)
		assert.Zero(t, rec.Images)
	})

	t.Run("word count splits on any whitespace", func(t *testing.T) {
		t.Parallel()

		words := strings.Repeat("word ", 250)
		html := "<html><body><main><p>" + words + "</p><p>\tand\nmore</p></main></body></html>"

		rec := goquery.NewExtractor().Extract(html, "https://example.com", "example.com")

		assert.Equal(t, 252, rec.WordCount)
	})
}
