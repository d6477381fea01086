package analyze

import (
	"fmt"
	"strings"

	"github.com/awalter/quickwins"
)

func detectMissingCanonical(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	for _, p := range reachablePages(pages) {
		if strings.TrimSpace(p.Canonical) == "" {
			affected = append(affected, p.DisplayURL())
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := quickwins.SeverityLow
	if len(affected) > missingCanonicalMediumOver {
		severity = quickwins.SeverityMedium
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryTechnical,
		Type:     "missing_canonical",
		Title:    fmt.Sprintf("Add canonical tags to %d pages", len(affected)),
		Description: "These pages lack a canonical tag. Canonical tags prevent duplicate content " +
			"issues by telling search engines which version of a page is the primary one.",
		Severity:     severity,
		AffectedURLs: affected,
	}
}

// detectIncorrectCanonical flags pages whose canonical resolves to a
// different normalized domain than the crawled site — effectively telling
// search engines to index someone else's page instead.
func detectIncorrectCanonical(pages []*quickwins.PageSignals, baseDomain string) *quickwins.Issue {
	var affected []string
	var details []map[string]any
	for _, p := range reachablePages(pages) {
		canonical := strings.TrimSpace(p.Canonical)
		if canonical == "" {
			continue
		}
		canonDomain := quickwins.NormalizeDomain(canonical)
		if canonDomain != "" && canonDomain != baseDomain {
			affected = append(affected, p.DisplayURL())
			details = append(details, map[string]any{
				"url":              p.DisplayURL(),
				"canonical":        canonical,
				"canonical_domain": canonDomain,
			})
		}
	}
	if len(affected) == 0 {
		return nil
	}

	return &quickwins.Issue{
		Category: quickwins.CategoryTechnical,
		Type:     "incorrect_canonical",
		Title:    fmt.Sprintf("Fix %d pages with incorrect canonical tags", len(affected)),
		Description: "These pages have canonical tags pointing to a different domain. " +
			"This tells Google to index the other domain's version instead, " +
			"effectively de-indexing your pages.",
		Severity:     quickwins.SeverityCritical,
		AffectedURLs: affected,
		Details:      map[string]any{"pages": headDetails(details)},
	}
}

func detectNoindex(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	for _, p := range reachablePages(pages) {
		if strings.Contains(p.RobotsMeta, "noindex") {
			affected = append(affected, p.DisplayURL())
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := quickwins.SeverityHigh
	if len(affected) > noindexCriticalOver {
		severity = quickwins.SeverityCritical
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryTechnical,
		Type:     "noindex_important",
		Title:    fmt.Sprintf("Review noindex on %d pages", len(affected)),
		Description: "These pages have a noindex directive, which prevents them from appearing in " +
			"search results. If any of these should be indexed, this is actively blocking " +
			"their visibility.",
		Severity:     severity,
		AffectedURLs: affected,
	}
}
