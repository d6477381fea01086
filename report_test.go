package quickwins_test

import (
	"testing"

	"github.com/awalter/quickwins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	t.Parallel()

	crawl := &quickwins.CrawlResult{
		Domain:       "example.com",
		URLsAnalyzed: 12,
	}
	analysis := &quickwins.AnalysisResult{
		ContentIssues: []*quickwins.Issue{{
			Category:     quickwins.CategoryContent,
			Type:         "missing_titles",
			Severity:     quickwins.SeverityCritical,
			AffectedURLs: []string{"https://example.com/a", "https://example.com/b"},
		}},
		Score:          73,
		SitemapMissing: true,
	}

	t.Run("without prioritization", func(t *testing.T) {
		t.Parallel()

		report := quickwins.BuildReport(crawl, analysis, nil)

		assert.Equal(t, "example.com", report.Summary.Domain)
		assert.Equal(t, 12, report.Summary.URLsAnalyzed)
		assert.True(t, report.Summary.SitemapMissing)
		assert.Equal(t, 73, report.Score)
		assert.Empty(t, report.QuickWins)

		require.Len(t, report.Findings[quickwins.CategoryContent], 1)
		finding := report.Findings[quickwins.CategoryContent][0]
		assert.Equal(t, "missing_titles", finding.Issue)
		assert.Equal(t, quickwins.SeverityCritical, finding.Severity)
		assert.Equal(t, 2, finding.Count)
		assert.Len(t, finding.URLs, 2)

		// Every category appears, even when empty.
		for _, cat := range quickwins.Categories {
			_, ok := report.Findings[cat]
			assert.True(t, ok, cat)
		}
	})

	t.Run("with prioritization", func(t *testing.T) {
		t.Parallel()

		pri := &quickwins.Prioritization{
			TopQuickWins: []quickwins.QuickWin{
				{Rank: 1, Issue: "missing_titles", Severity: quickwins.SeverityCritical, Action: "Write titles"},
			},
		}
		report := quickwins.BuildReport(crawl, analysis, pri)

		require.Len(t, report.QuickWins, 1)
		assert.Equal(t, "missing_titles", report.QuickWins[0].Issue)
	})
}

func TestPageSignals_Reachable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page quickwins.PageSignals
		want bool
	}{
		{"ok 200", quickwins.PageSignals{Status: 200}, true},
		{"redirect landed 200", quickwins.PageSignals{Status: 200, FinalURL: "https://example.com/x"}, true},
		{"not found", quickwins.PageSignals{Status: 404}, false},
		{"server error", quickwins.PageSignals{Status: 500}, false},
		{"timeout", quickwins.PageSignals{Error: quickwins.FetchTimeout}, false},
		{"no response", quickwins.PageSignals{Status: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.page.Reachable())
		})
	}
}
