// Package goquery extracts SEO signals and link targets from HTML using
// PuerkitoBio/goquery.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalter/quickwins"
	"github.com/cespare/xxhash/v2"
)

// Extraction limits.
const (
	// maxInternalLinksPerPage caps the same-domain links recorded per page.
	maxInternalLinksPerPage = 15

	// maxHeadingTextLen truncates recorded heading text.
	maxHeadingTextLen = 100
)

// Ensure Extractor implements quickwins.SignalExtractor.
var _ quickwins.SignalExtractor = (*Extractor)(nil)

// Extractor parses an HTML document and populates a PageSignals record.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the page's SEO signals. Relative link
// and canonical hrefs are resolved against finalURL, and baseDomain
// decides which anchors count as internal links.
func (e *Extractor) Extract(html, pageURL, finalURL string, status int, baseDomain string) (*quickwins.PageSignals, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quickwins.Errorf(quickwins.EINVALID, "parsing HTML: %v", err)
	}

	signals := &quickwins.PageSignals{
		URL:      pageURL,
		FinalURL: finalURL,
		Status:   status,
	}

	signals.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		signals.MetaDescription = strings.TrimSpace(content)
	}

	doc.Find("link[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, _ := sel.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "canonical") {
			return true
		}
		href, _ := sel.Attr("href")
		signals.Canonical = strings.TrimSpace(href)
		return false
	})

	doc.Find("meta[content]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name, _ := sel.Attr("name")
		if !strings.EqualFold(name, "robots") {
			return true
		}
		content, _ := sel.Attr("content")
		signals.RobotsMeta = strings.ToLower(strings.TrimSpace(content))
		return false
	})

	doc.Find("h1").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			signals.H1s = append(signals.H1s, text)
		}
	})

	// Document order matters here: the analyzer walks this sequence to
	// detect skipped heading levels.
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" || len(sel.Nodes) == 0 {
			return
		}
		level := headingLevel(sel.Nodes[0].Data)
		if level == 0 {
			return
		}
		signals.Headings = append(signals.Headings, quickwins.Heading{
			Level: level,
			Text:  truncate(text, maxHeadingTextLen),
		})
	})

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		abs := quickwins.MakeAbsolute(href, finalURL)
		if abs != "" && quickwins.IsSameDomain(abs, baseDomain) {
			signals.InternalLinks = append(signals.InternalLinks, abs)
		}
		return len(signals.InternalLinks) < maxInternalLinksPerPage
	})

	signals.HasSchema = doc.Find(`script[type="application/ld+json"]`).Length() > 0

	doc.Find("link[hreflang]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, _ := sel.Attr("rel")
		if strings.Contains(strings.ToLower(rel), "alternate") {
			signals.HasHreflang = true
			return false
		}
		return true
	})

	// Word count last: stripping non-content subtrees mutates the document.
	body := doc.Find("body")
	body.Find("script, style, nav, footer, header").Remove()
	words := strings.Fields(body.Text())
	signals.WordCount = len(words)
	if signals.WordCount > 0 {
		signals.ContentHash = fmt.Sprintf("%x", xxhash.Sum64String(strings.Join(words, " ")))
	}

	return signals, nil
}

// headingLevel maps a tag name like "h2" to its level, or 0 if not a
// heading tag.
func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
