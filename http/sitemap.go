// Package http provides HTTP-backed implementations of the quickwins
// network interfaces: sitemap discovery, page fetching and link checking.
package http

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/awalter/quickwins"
	"github.com/beevik/etree"
)

// Sitemap discovery limits. Depth and fan-out caps keep pathological
// sitemap indexes from expanding without bound.
const (
	maxSitemapDepth    = 3
	maxChildSitemaps   = 20
	maxSitemapURLs     = 5000
	maxSitemapBodySize = 20 << 20
)

// commonSitemapPaths are probed in order when robots.txt declares nothing.
var commonSitemapPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap-index.xml",
	"/sitemap1.xml",
}

// Ensure SitemapService implements quickwins.SitemapService.
var _ quickwins.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from website sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, a client with the default fetch timeout is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapService{client: client}
}

// DiscoverURLs runs the discovery chain: robots.txt Sitemap: directives
// first, then the conventional sitemap paths. The first source yielding at
// least one URL wins. No usable sitemap returns an empty slice, an empty
// method label and a nil error.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	base := strings.TrimRight(baseURL, "/")

	declared := s.sitemapsFromRobots(ctx, base+"/robots.txt")
	if len(declared) > 0 {
		var all []string
		for _, sm := range declared {
			all = append(all, s.collectSitemap(ctx, sm, 0)...)
		}
		if urls := dedupe(all, maxSitemapURLs); len(urls) > 0 {
			return urls, fmt.Sprintf("robots.txt (%d sitemaps)", len(declared)), nil
		}
	}

	for _, path := range commonSitemapPaths {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		if urls := s.collectSitemap(ctx, base+path, 0); len(urls) > 0 {
			return urls, fmt.Sprintf("sitemap (%s)", path), nil
		}
	}

	return nil, "", ctx.Err()
}

// sitemapsFromRobots extracts Sitemap: directive values from robots.txt,
// case-insensitively, preserving first-seen order and dropping duplicates.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, ok := s.fetchText(ctx, robotsURL)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var sitemaps []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		sm := strings.TrimSpace(line[len("sitemap:"):])
		if sm != "" && !seen[sm] {
			seen[sm] = true
			sitemaps = append(sitemaps, sm)
		}
	}
	return sitemaps
}

// collectSitemap fetches one sitemap and returns its page URLs, expanding
// sitemap indexes recursively. Fetch and parse failures yield an empty
// result; sitemap discovery is best-effort throughout.
func (s *SitemapService) collectSitemap(ctx context.Context, sitemapURL string, depth int) []string {
	if depth > maxSitemapDepth || ctx.Err() != nil {
		return nil
	}

	text, ok := s.fetchText(ctx, sitemapURL)
	if !ok && !strings.HasSuffix(sitemapURL, ".gz") {
		text, ok = s.fetchText(ctx, sitemapURL+".gz")
	}
	if !ok {
		return nil
	}

	urls, children := parseSitemapXML(text)
	all := urls

	if len(children) > maxChildSitemaps {
		children = children[:maxChildSitemaps]
	}
	for _, child := range children {
		if len(all) >= maxSitemapURLs {
			break
		}
		all = append(all, s.collectSitemap(ctx, child, depth+1)...)
	}

	return dedupe(all, maxSitemapURLs)
}

// parseSitemapXML parses sitemap XML tolerantly, matching elements by tag
// name suffix so namespace prefixes don't matter. A <sitemapindex> root
// yields child sitemap URLs; anything else is treated as a urlset and
// yields page URLs. Malformed XML yields nothing.
func parseSitemapXML(text string) (urls, sitemaps []string) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, nil
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	var locs []string
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if strings.HasSuffix(strings.ToLower(el.Tag), "loc") {
			if loc := strings.TrimSpace(el.Text()); loc != "" {
				locs = append(locs, loc)
			}
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)

	if strings.HasSuffix(strings.ToLower(root.Tag), "sitemapindex") {
		return nil, locs
	}
	return locs, nil
}

// fetchText fetches a URL and returns its body as text, transparently
// decompressing gzipped sitemaps (by .gz suffix or content type).
func (s *SitemapService) fetchText(ctx context.Context, targetURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", false
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSitemapBodySize))
	if err != nil {
		return "", false
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasSuffix(targetURL, ".gz") || strings.Contains(contentType, "gzip") {
		if zr, err := gzip.NewReader(bytes.NewReader(raw)); err == nil {
			if unzipped, err := io.ReadAll(zr); err == nil {
				raw = unzipped
			}
			zr.Close()
		}
	}

	return string(raw), true
}

// dedupe removes duplicates preserving first-seen order and caps the result.
func dedupe(urls []string, limit int) []string {
	seen := make(map[string]bool, len(urls))
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
		if len(unique) >= limit {
			break
		}
	}
	return unique
}
