package quickwins

import "io"

// ReportSummary carries the crawl-level facts a report leads with.
type ReportSummary struct {
	Domain         string `json:"domain"`
	URLsAnalyzed   int    `json:"urls_analyzed"`
	SitemapMissing bool   `json:"sitemap_missing"`
}

// Report is the nested value handed to report writers: the prioritized
// quick wins (when available), every finding grouped by category, and the
// crawl summary.
type Report struct {
	Summary   ReportSummary          `json:"summary"`
	Score     int                    `json:"score"`
	QuickWins []QuickWin             `json:"quick_wins,omitempty"`
	Findings  map[Category][]Finding `json:"findings"`
}

// BuildReport assembles a Report from crawl and analysis output. The
// prioritization may be nil, in which case the report simply has no quick
// wins section.
func BuildReport(crawl *CrawlResult, analysis *AnalysisResult, pri *Prioritization) *Report {
	findings := make(map[Category][]Finding, len(Categories))
	for _, cat := range Categories {
		issues := analysis.IssuesByCategory(cat)
		fs := make([]Finding, 0, len(issues))
		for _, issue := range issues {
			fs = append(fs, Finding{
				Issue:    issue.Type,
				Severity: issue.Severity,
				Count:    issue.Count(),
				URLs:     issue.AffectedURLs,
			})
		}
		findings[cat] = fs
	}

	r := &Report{
		Summary: ReportSummary{
			Domain:         crawl.Domain,
			URLsAnalyzed:   crawl.URLsAnalyzed,
			SitemapMissing: analysis.SitemapMissing,
		},
		Score:    analysis.Score,
		Findings: findings,
	}
	if pri != nil {
		r.QuickWins = pri.TopQuickWins
	}
	return r
}

// ReportWriter renders a Report to an output stream. Implementations are
// pure formatting consumers of the analysis output.
type ReportWriter interface {
	Write(w io.Writer, report *Report) error
}
