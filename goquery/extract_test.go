package goquery_test

import (
	"strings"
	"testing"

	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
  <title> Widgets — Acme </title>
  <meta name="description" content="The best widgets.">
  <meta name="ROBOTS" content="NOINDEX, nofollow">
  <link rel="canonical" href="https://example.com/widgets">
  <link rel="alternate" hreflang="de" href="https://example.com/de/widgets">
  <script type="application/ld+json">{"@type":"Product"}</script>
</head>
<body>
  <header>site chrome words</header>
  <nav><a href="/">Home</a></nav>
  <h1>Widgets</h1>
  <h2>Overview</h2>
  <h3>Details</h3>
  <p>One two three four five.</p>
  <a href="/pricing">Pricing</a>
  <a href="https://example.com/contact">Contact</a>
  <a href="https://other.com/away">Away</a>
  <a href="mailto:hi@example.com">Mail</a>
  <footer>footer words</footer>
  <script>var ignored = true;</script>
</body>
</html>`

	e := goquery.NewExtractor()
	signals, err := e.Extract(html, "https://example.com/widgets", "https://example.com/widgets", 200, "example.com")
	require.NoError(t, err)

	assert.Equal(t, "Widgets — Acme", signals.Title)
	assert.Equal(t, "The best widgets.", signals.MetaDescription)
	assert.Equal(t, "https://example.com/widgets", signals.Canonical)
	assert.Equal(t, "noindex, nofollow", signals.RobotsMeta)
	assert.Equal(t, []string{"Widgets"}, signals.H1s)
	assert.Equal(t, []quickwins.Heading{
		{Level: 1, Text: "Widgets"},
		{Level: 2, Text: "Overview"},
		{Level: 3, Text: "Details"},
	}, signals.Headings)
	assert.True(t, signals.HasSchema)
	assert.True(t, signals.HasHreflang)
	assert.NotEmpty(t, signals.ContentHash)

	// Same-domain anchors only; mailto and cross-domain excluded. The nav
	// link still counts as internal before subtree stripping happens.
	assert.Contains(t, signals.InternalLinks, "https://example.com/pricing")
	assert.Contains(t, signals.InternalLinks, "https://example.com/contact")
	assert.NotContains(t, signals.InternalLinks, "https://other.com/away")

	// Script, nav, header and footer text is excluded from the count:
	// three headings, the five-word paragraph and four anchor labels.
	assert.Equal(t, 12, signals.WordCount)
}

func TestExtractor_Extract_EmptyDocument(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()
	signals, err := e.Extract("<html><body></body></html>", "https://example.com/", "https://example.com/", 200, "example.com")
	require.NoError(t, err)

	assert.Empty(t, signals.Title)
	assert.Empty(t, signals.MetaDescription)
	assert.Empty(t, signals.H1s)
	assert.Empty(t, signals.Headings)
	assert.Zero(t, signals.WordCount)
	assert.Empty(t, signals.ContentHash)
	assert.False(t, signals.HasSchema)
	assert.False(t, signals.HasHreflang)
}

func TestExtractor_Extract_InternalLinkCap(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 30; i++ {
		sb.WriteString(`<a href="/page-`)
		sb.WriteString(strings.Repeat("x", i+1))
		sb.WriteString(`">link</a>`)
	}
	sb.WriteString("</body></html>")

	e := goquery.NewExtractor()
	signals, err := e.Extract(sb.String(), "https://example.com/", "https://example.com/", 200, "example.com")
	require.NoError(t, err)

	assert.Len(t, signals.InternalLinks, 15)
}

func TestExtractor_Extract_TruncatesLongHeadings(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 150)
	html := "<html><body><h2>" + long + "</h2></body></html>"

	e := goquery.NewExtractor()
	signals, err := e.Extract(html, "https://example.com/", "https://example.com/", 200, "example.com")
	require.NoError(t, err)

	require.Len(t, signals.Headings, 1)
	assert.Len(t, signals.Headings[0].Text, 100)
}

func TestExtractor_Extract_DuplicateContentHashes(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	a, err := e.Extract("<html><body><p>same words here</p></body></html>", "https://example.com/a", "https://example.com/a", 200, "example.com")
	require.NoError(t, err)
	b, err := e.Extract("<html><body><div><p>same words here</p></div></body></html>", "https://example.com/b", "https://example.com/b", 200, "example.com")
	require.NoError(t, err)
	c, err := e.Extract("<html><body><p>different words entirely</p></body></html>", "https://example.com/c", "https://example.com/c", 200, "example.com")
	require.NoError(t, err)

	assert.Equal(t, a.ContentHash, b.ContentHash)
	assert.NotEqual(t, a.ContentHash, c.ContentHash)
}
