package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalter/quickwins"
)

// Ensure LinkExtractor implements quickwins.LinkExtractor.
var _ quickwins.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor returns every same-domain crawlable anchor target in a
// document. The discovery stage uses it instead of the capped per-page
// internal-link sample.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// Links parses html and returns absolute same-domain page URLs, in
// document order, deduplicated by normalized URL.
func (l *LinkExtractor) Links(html, baseURL, baseDomain string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quickwins.Errorf(quickwins.EINVALID, "parsing HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		abs := quickwins.MakeAbsolute(href, baseURL)
		if abs == "" || !quickwins.IsValidPageURL(abs) || !quickwins.IsSameDomain(abs, baseDomain) {
			return
		}
		norm := quickwins.NormalizeURL(abs)
		if seen[norm] {
			return
		}
		seen[norm] = true
		links = append(links, abs)
	})

	return links, nil
}
