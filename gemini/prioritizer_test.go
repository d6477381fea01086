package gemini_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContext(t *testing.T) {
	t.Parallel()

	var manyURLs []string
	for i := 0; i < 30; i++ {
		manyURLs = append(manyURLs, fmt.Sprintf("https://example.com/p%d", i))
	}

	crawl := &quickwins.CrawlResult{
		Domain:          "example.com",
		DiscoveryMethod: "sitemap (/sitemap.xml)",
		URLsDiscovered:  120,
		URLsAnalyzed:    60,
		SitemapMissing:  false,
	}
	analysis := &quickwins.AnalysisResult{
		ContentIssues: []*quickwins.Issue{{
			Category:     quickwins.CategoryContent,
			Type:         "missing_titles",
			Title:        "Add title tags to 30 pages",
			Severity:     quickwins.SeverityCritical,
			AffectedURLs: manyURLs,
		}},
		LinkIssues: []*quickwins.Issue{{
			Category:     quickwins.CategoryLinks,
			Type:         "broken_internal_links",
			Severity:     quickwins.SeverityMedium,
			AffectedURLs: []string{"https://example.com/gone"},
		}},
		Score: 42,
	}

	payload := gemini.BuildContext(crawl, analysis)

	assert.Equal(t, "example.com", payload.Domain)
	assert.Equal(t, "sitemap (/sitemap.xml)", payload.DiscoveryMethod)
	assert.Equal(t, 42, payload.Score)
	assert.Equal(t, 2, payload.TotalIssues)

	require.Len(t, payload.Issues.Content, 1)
	issue := payload.Issues.Content[0]
	assert.Equal(t, "missing_titles", issue.IssueType)

	// URL sample is truncated but the full count is retained.
	assert.Len(t, issue.AffectedURLs, 20)
	assert.Equal(t, 30, issue.AffectedCount)

	require.Len(t, payload.Issues.Links, 1)
	assert.Empty(t, payload.Issues.Headings)
	assert.Empty(t, payload.Issues.Technical)
}

func TestBuildContext_JSONKeys(t *testing.T) {
	t.Parallel()

	payload := gemini.BuildContext(&quickwins.CrawlResult{Domain: "example.com"}, &quickwins.AnalysisResult{})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"domain", "discovery_method", "sitemap_missing",
		"urls_discovered", "urls_analyzed", "score", "total_issues", "issues",
	} {
		assert.Contains(t, decoded, key)
	}
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt(`{"domain": "example.com"}`)

	assert.Contains(t, prompt, `{"domain": "example.com"}`)
	assert.Contains(t, prompt, "top_5_quick_wins")
	assert.Contains(t, prompt, "effort-to-impact")
}
