package analyze

import (
	"fmt"

	"github.com/awalter/quickwins"
)

func detectBrokenLinks(brokenLinks []quickwins.BrokenLink) *quickwins.Issue {
	if len(brokenLinks) == 0 {
		return nil
	}

	affected := make([]string, len(brokenLinks))
	for i, bl := range brokenLinks {
		affected[i] = bl.URL
	}

	severity := quickwins.SeverityMedium
	if len(brokenLinks) > brokenLinksHighOver {
		severity = quickwins.SeverityHigh
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryLinks,
		Type:     "broken_internal_links",
		Title:    fmt.Sprintf("Fix %d broken internal links", len(brokenLinks)),
		Description: "These internal links return 4xx/5xx errors. Broken links waste crawl budget, " +
			"hurt user experience, and leak link equity into dead ends.",
		Severity:     severity,
		AffectedURLs: affected,
		Details:      map[string]any{"links": brokenLinks[:min(len(brokenLinks), maxDetailEntries)]},
	}
}

func detectRedirectChains(chains []quickwins.RedirectChain) *quickwins.Issue {
	if len(chains) == 0 {
		return nil
	}

	affected := make([]string, len(chains))
	for i, rc := range chains {
		affected[i] = rc.URL
	}

	return &quickwins.Issue{
		Category: quickwins.CategoryLinks,
		Type:     "redirect_chains",
		Title:    fmt.Sprintf("Fix %d redirect chains", len(chains)),
		Description: "These URLs go through multiple redirects before reaching the final page. " +
			"Redirect chains slow page loading, waste crawl budget, and dilute link equity " +
			"with each hop.",
		Severity:     quickwins.SeverityMedium,
		AffectedURLs: affected,
		Details:      map[string]any{"chains": chains[:min(len(chains), maxDetailEntries)]},
	}
}

// detectOrphanPages flags reachable pages whose normalized URL no other
// crawled page links to. The homepage is exempted explicitly: external
// sources typically link to it.
func detectOrphanPages(pages []*quickwins.PageSignals, homepage string) *quickwins.Issue {
	linkedTo := make(map[string]bool)
	for _, p := range pages {
		for _, link := range p.InternalLinks {
			linkedTo[quickwins.NormalizeURL(link)] = true
		}
	}

	homeNorm := quickwins.NormalizeURL(homepage)
	var affected []string
	for _, p := range reachablePages(pages) {
		norm := quickwins.NormalizeURL(p.DisplayURL())
		if norm == homeNorm {
			continue
		}
		if !linkedTo[norm] {
			affected = append(affected, p.DisplayURL())
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := quickwins.SeverityLow
	if len(affected) > orphanPagesMediumOver {
		severity = quickwins.SeverityMedium
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryLinks,
		Type:     "orphan_pages",
		Title:    fmt.Sprintf("Fix %d orphan pages with no internal links", len(affected)),
		Description: "These pages aren't linked to from any other page on the site. " +
			"Orphan pages are hard for search engines to discover and receive no " +
			"internal link equity, making them unlikely to rank.",
		Severity:     severity,
		AffectedURLs: affected,
	}
}
