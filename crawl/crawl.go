// Package crawl orchestrates the audit pipeline: sitemap discovery with
// homepage-crawl fallback, URL sampling, concurrent page fetching with
// signal extraction, and internal link checking.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/awalter/quickwins"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Crawl defaults and caps.
const (
	DefaultMaxPages    = 60
	DefaultConcurrency = 10

	// maxLinkChecks caps the internal links collected for integrity probing.
	maxLinkChecks = 100

	// discoveryCeilingFactor bounds homepage-fallback discovery relative to
	// the sample budget.
	discoveryCeilingFactor = 3
)

// Crawler orchestrates a full site crawl. All collaborators are injected;
// pure aggregation happens here, network work happens behind the
// interfaces.
type Crawler struct {
	Sitemaps  quickwins.SitemapService
	Fetcher   quickwins.Fetcher
	Extractor quickwins.SignalExtractor
	Anchors   quickwins.LinkExtractor
	Links     quickwins.LinkChecker
	Limiter   quickwins.DomainLimiter

	// Concurrency bounds simultaneous outbound requests at every stage.
	// Defaults to DefaultConcurrency.
	Concurrency int

	// MaxPages is the analysis sample budget. Defaults to DefaultMaxPages.
	MaxPages int
}

// Run crawls the site identified by input (a URL or bare domain) and
// returns the complete crawl result. Only invalid input fails the run;
// per-page and per-link network failures are recorded as data. The
// optional progress callback is fire-and-forget.
func (c *Crawler) Run(ctx context.Context, input string, progress quickwins.ProgressFunc) (*quickwins.CrawlResult, error) {
	baseURL := quickwins.BaseURL(input)
	domain := quickwins.NormalizeDomain(baseURL)
	if domain == "" {
		return nil, quickwins.Errorf(quickwins.EINVALID, "invalid URL or domain %q", input)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	report(progress, 5, "Checking robots.txt and sitemaps...")

	discovered, method, err := c.Sitemaps.DiscoverURLs(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	sitemapMissing := false
	if len(discovered) == 0 {
		sitemapMissing = true
		method = "homepage_crawl (no sitemap found)"
		report(progress, 10, "No sitemap found. Crawling from homepage...")
		discovered = c.discoverFromHomepage(ctx, baseURL, domain, maxPages)
		if len(discovered) == 0 {
			discovered = []string{baseURL}
		}
	}

	report(progress, 15, fmt.Sprintf("Found %d URLs via %s. Sampling...", len(discovered), method))

	sample := SampleURLs(discovered, baseURL, maxPages)

	report(progress, 20, fmt.Sprintf("Analyzing %d pages (%d concurrent)...", len(sample), c.concurrency()))

	pages := c.fetchPages(ctx, sample, domain, progress)

	report(progress, 65, "Checking internal links for issues...")

	broken, chains, err := c.Links.CheckLinks(ctx, collectInternalLinks(pages, maxLinkChecks))
	if err != nil {
		return nil, err
	}

	report(progress, 80, "Crawl complete. Preparing data...")

	sampled := make([]string, len(sample))
	for i, u := range sample {
		sampled[i] = quickwins.NormalizeURL(u)
	}

	return &quickwins.CrawlResult{
		ID:              uuid.NewString(),
		Domain:          domain,
		BaseURL:         baseURL,
		DiscoveryMethod: method,
		URLsDiscovered:  len(discovered),
		URLsAnalyzed:    len(pages),
		Pages:           pages,
		BrokenLinks:     broken,
		RedirectChains:  chains,
		SampledURLs:     sampled,
		SitemapMissing:  sitemapMissing,
	}, nil
}

func (c *Crawler) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

// fetchResult pairs a fetched page with its sample position so results can
// be collected in order while completing out of order.
type fetchResult struct {
	position int
	page     *quickwins.PageSignals
}

// fetchPages fetches the sampled URLs under the concurrency cap and
// extracts signals from each. Aggregation happens in this goroutine only;
// workers never share mutable state.
func (c *Crawler) fetchPages(ctx context.Context, urls []string, domain string, progress quickwins.ProgressFunc) []*quickwins.PageSignals {
	resultCh := make(chan fetchResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- fetchResult{position: i, page: c.fetchPage(gctx, url, domain)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	pages := make([]*quickwins.PageSignals, len(urls))
	completed := 0
	for result := range resultCh {
		pages[result.position] = result.page
		if completed%5 == 0 {
			pct := 20 + 40*completed/len(urls)
			report(progress, pct, fmt.Sprintf("Scanned %d/%d pages...", completed+1, len(urls)))
		}
		completed++
	}
	return pages
}

// fetchPage fetches one URL and extracts its signals. Failures are
// classified onto the signal record; they never abort the crawl.
func (c *Crawler) fetchPage(ctx context.Context, url, domain string) *quickwins.PageSignals {
	resp, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return &quickwins.PageSignals{URL: url, Error: classifyFetchError(err)}
	}

	if !strings.Contains(strings.ToLower(resp.ContentType), "text/html") {
		return &quickwins.PageSignals{
			URL:      url,
			FinalURL: resp.FinalURL,
			Status:   resp.Status,
			Error:    quickwins.FetchNonHTML,
		}
	}

	signals, err := c.Extractor.Extract(resp.Body, url, resp.FinalURL, resp.Status, domain)
	if err != nil {
		return &quickwins.PageSignals{
			URL:      url,
			FinalURL: resp.FinalURL,
			Status:   resp.Status,
			Error:    quickwins.FetchRequestFailed,
		}
	}
	return signals
}

// classifyFetchError maps a transport error to the page-level error enum.
func classifyFetchError(err error) quickwins.FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return quickwins.FetchTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return quickwins.FetchTimeout
	}
	return quickwins.FetchRequestFailed
}

// collectInternalLinks gathers the distinct normalized internal links seen
// across all fetched pages, in first-seen order, capped for checking.
func collectInternalLinks(pages []*quickwins.PageSignals, limit int) []string {
	seen := make(map[string]bool)
	var links []string
	for _, p := range pages {
		for _, link := range p.InternalLinks {
			if !quickwins.IsValidPageURL(link) {
				continue
			}
			norm := quickwins.NormalizeURL(link)
			if seen[norm] {
				continue
			}
			seen[norm] = true
			links = append(links, norm)
			if len(links) >= limit {
				return links
			}
		}
	}
	return links
}

// report invokes the progress callback, shielding the crawl from callback
// panics. Progress is observational and must never be on a critical path.
func report(progress quickwins.ProgressFunc, percent int, message string) {
	if progress == nil {
		return
	}
	defer func() { _ = recover() }()
	progress(percent, message)
}
