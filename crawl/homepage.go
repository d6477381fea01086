package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/awalter/quickwins"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for homepage-fallback discovery.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// discoverFromHomepage discovers URLs by breadth-first link following from
// the homepage. It is used only when sitemap discovery fails. Pages are
// fetched in concurrency-capped batches; discovery stops when the frontier
// empties or the discovered count reaches a multiple of the sample budget.
// Signal extraction does not happen here — the fetch stage handles whatever
// URL list discovery produces.
func (c *Crawler) discoverFromHomepage(ctx context.Context, baseURL, domain string, maxPages int) []string {
	ceiling := maxPages * discoveryCeilingFactor

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(baseURL)
	discovered := []string{baseURL}

	for frontier.Len() > 0 && len(discovered) < ceiling && ctx.Err() == nil {
		batch := frontier.PopN(c.concurrency())
		for _, body := range c.fetchBatch(ctx, batch) {
			if body == nil {
				continue
			}
			links, err := c.Anchors.Links(body.Body, body.FinalURL, domain)
			if err != nil {
				continue
			}
			for _, link := range links {
				if len(discovered) >= ceiling {
					break
				}
				if frontier.Push(link) {
					discovered = append(discovered, link)
				}
			}
		}
	}

	return discovered
}

// fetchBatch fetches a batch of URLs concurrently, returning HTML
// responses positionally; failed or non-HTML fetches yield nil. Each fetch
// waits on the per-domain rate limiter when one is configured.
func (c *Crawler) fetchBatch(ctx context.Context, urls []string) []*quickwins.Response {
	responses := make([]*quickwins.Response, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())
	for i, u := range urls {
		g.Go(func() error {
			if c.Limiter != nil {
				parsed, err := url.Parse(u)
				if err != nil {
					return nil
				}
				if err := c.Limiter.Wait(gctx, parsed.Host); err != nil {
					return nil
				}
			}

			resp, err := c.Fetcher.Fetch(gctx, u)
			if err != nil || !strings.Contains(strings.ToLower(resp.ContentType), "text/html") {
				return nil
			}
			responses[i] = resp
			return nil
		})
	}
	_ = g.Wait()

	return responses
}
