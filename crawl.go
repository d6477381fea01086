package quickwins

import "context"

// BrokenLink records an internal link that resolved to a 4xx/5xx status or
// failed outright (status 0).
type BrokenLink struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
}

// RedirectChain records an internal link that traversed two or more
// redirects before reaching a final response. Chain holds every hop
// starting with the original URL.
type RedirectChain struct {
	URL   string   `json:"url"`
	Chain []string `json:"chain"`
}

// CrawlResult is the complete output of one crawl run. It is created once
// per run and read-only after construction.
type CrawlResult struct {
	// ID identifies the audit run in logs and progress output.
	ID string `json:"id"`

	Domain          string `json:"domain"`
	BaseURL         string `json:"base_url"`
	DiscoveryMethod string `json:"discovery_method"`
	URLsDiscovered  int    `json:"urls_discovered"`
	URLsAnalyzed    int    `json:"urls_analyzed"`

	Pages          []*PageSignals  `json:"pages"`
	BrokenLinks    []BrokenLink    `json:"broken_links"`
	RedirectChains []RedirectChain `json:"redirect_chains"`

	// SampledURLs holds the normalized URLs of the analyzed sample.
	SampledURLs []string `json:"sampled_urls"`

	// SitemapMissing is a first-class finding: the site declared no usable
	// sitemap anywhere and discovery fell back to homepage crawling.
	SitemapMissing bool `json:"sitemap_missing"`
}

// SitemapService discovers a site's URL universe from its sitemaps.
type SitemapService interface {
	// DiscoverURLs checks robots.txt Sitemap: directives first, then a fixed
	// list of conventional sitemap paths. Sitemap indexes are expanded
	// recursively and gzipped sitemaps are decompressed transparently.
	//
	// A site without a usable sitemap yields an empty slice and an empty
	// method label with a nil error; the caller decides how to fall back.
	// Individual sitemap fetch or parse failures are never surfaced as
	// errors, only context cancellation is.
	DiscoverURLs(ctx context.Context, baseURL string) (urls []string, method string, err error)
}

// LinkChecker probes internal links for broken targets and redirect chains.
// Checking is best-effort: an unreachable link is a finding, not an error.
type LinkChecker interface {
	CheckLinks(ctx context.Context, urls []string) ([]BrokenLink, []RedirectChain, error)
}

// DomainLimiter provides per-domain rate limiting for discovery crawling.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// ProgressFunc receives best-effort progress updates as a percentage
// (0-100) and a status message. It is purely observational: a slow or
// panicking callback must never affect the crawl.
type ProgressFunc func(percent int, message string)
