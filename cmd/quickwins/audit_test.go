package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/awalter/quickwins"
	main "github.com/awalter/quickwins/cmd/quickwins"
	"github.com/awalter/quickwins/crawl"
	"github.com/awalter/quickwins/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDependencies(stdout, stderr *bytes.Buffer) *main.Dependencies {
	sitemaps := &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, string, error) {
			return []string{"https://example.com/about"}, "sitemap (/sitemap.xml)", nil
		},
	}
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*quickwins.Response, error) {
			return &quickwins.Response{
				Status:      200,
				FinalURL:    url,
				ContentType: "text/html",
				Body:        "<html><body></body></html>",
			}, nil
		},
	}
	extractor := &mock.SignalExtractor{
		ExtractFn: func(html, pageURL, finalURL string, status int, baseDomain string) (*quickwins.PageSignals, error) {
			return &quickwins.PageSignals{
				URL:    pageURL,
				Status: status,
				// No title, so the audit has at least one finding.
				MetaDescription: "Meta for " + pageURL,
				Canonical:       pageURL,
				H1s:             []string{"Heading"},
				WordCount:       500,
			}, nil
		},
	}
	links := &mock.LinkChecker{
		CheckLinksFn: func(ctx context.Context, urls []string) ([]quickwins.BrokenLink, []quickwins.RedirectChain, error) {
			return nil, nil, nil
		},
	}

	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Crawler: &crawl.Crawler{
			Sitemaps:  sitemaps,
			Fetcher:   fetcher,
			Extractor: extractor,
			Links:     links,
		},
	}
}

func TestAuditCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints score and findings", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDependencies(stdout, stderr)

		cmd := &main.AuditCmd{URL: "example.com"}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "example.com — score")
		assert.Contains(t, out, "Missing titles")
		assert.Contains(t, stderr.String(), "Checking robots.txt")
	})

	t.Run("prioritizer failure degrades gracefully", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDependencies(stdout, stderr)
		deps.Prioritizer = &mock.Prioritizer{
			PrioritizeFn: func(ctx context.Context, crawl *quickwins.CrawlResult, analysis *quickwins.AnalysisResult) (*quickwins.Prioritization, error) {
				return nil, quickwins.Errorf(quickwins.EUNAVAILABLE, "model offline")
			},
		}

		cmd := &main.AuditCmd{URL: "example.com"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "prioritization unavailable")
		assert.Contains(t, stdout.String(), "score")
	})

	t.Run("invalid input fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDependencies(stdout, stderr)

		cmd := &main.AuditCmd{URL: "://"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
