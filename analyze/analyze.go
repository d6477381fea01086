// Package analyze scans extracted page signals for SEO issues. Every
// detector is a pure function that fires at most one Issue per analysis,
// aggregating all affected URLs; pages that failed to fetch or returned an
// error status are excluded from content-quality checks so they are not
// penalized beyond their broken-link findings.
package analyze

import "github.com/awalter/quickwins"

// Detection thresholds. These are empirical tuning values, kept in one
// place so they can be recalibrated without touching detector logic.
const (
	duplicateTitlesHighOver    = 5
	missingTitlesCriticalOver  = 3
	missingMetasMediumOver     = 5
	thinContentMinWords        = 300
	duplicateContentHighOver   = 3
	missingH1HighOver          = 3
	brokenLinksHighOver        = 5
	orphanPagesMediumOver      = 3
	missingCanonicalMediumOver = 5
	noindexCriticalOver        = 2

	// maxDetailEntries caps per-issue structured detail lists.
	maxDetailEntries = 20
)

// Run executes every detector against the crawl result and returns the
// categorized issues with the composite health score.
func Run(crawl *quickwins.CrawlResult) *quickwins.AnalysisResult {
	pages := crawl.Pages

	content := collect(
		detectDuplicateTitles(pages),
		detectMissingTitles(pages),
		detectDuplicateMetas(pages),
		detectMissingMetas(pages),
		detectThinContent(pages),
		detectDuplicateContent(pages),
	)
	headings := collect(
		detectMissingH1(pages),
		detectMultipleH1(pages),
		detectBrokenHierarchy(pages),
	)
	links := collect(
		detectBrokenLinks(crawl.BrokenLinks),
		detectRedirectChains(crawl.RedirectChains),
		detectOrphanPages(pages, crawl.BaseURL),
	)
	technical := collect(
		detectMissingCanonical(pages),
		detectIncorrectCanonical(pages, crawl.Domain),
		detectNoindex(pages),
	)

	result := &quickwins.AnalysisResult{
		ContentIssues:   content,
		HeadingIssues:   headings,
		LinkIssues:      links,
		TechnicalIssues: technical,
		SitemapMissing:  crawl.SitemapMissing,
	}
	result.Score = Score(result.AllIssues())
	return result
}

// collect gathers the non-nil issues from a detector pass.
func collect(issues ...*quickwins.Issue) []*quickwins.Issue {
	fired := make([]*quickwins.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue != nil {
			fired = append(fired, issue)
		}
	}
	return fired
}

// reachablePages filters to pages eligible for content-quality checks.
func reachablePages(pages []*quickwins.PageSignals) []*quickwins.PageSignals {
	eligible := make([]*quickwins.PageSignals, 0, len(pages))
	for _, p := range pages {
		if p.Reachable() {
			eligible = append(eligible, p)
		}
	}
	return eligible
}
