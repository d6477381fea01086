package analyze

import (
	"fmt"

	"github.com/awalter/quickwins"
)

func detectMissingH1(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	for _, p := range reachablePages(pages) {
		if len(p.H1s) == 0 {
			affected = append(affected, p.DisplayURL())
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := quickwins.SeverityMedium
	if len(affected) > missingH1HighOver {
		severity = quickwins.SeverityHigh
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryHeadings,
		Type:     "missing_h1",
		Title:    fmt.Sprintf("Add H1 tags to %d pages", len(affected)),
		Description: "These pages have no H1 heading. The H1 is a strong signal to search engines " +
			"about the page's main topic and helps both users and crawlers understand content structure.",
		Severity:     severity,
		AffectedURLs: affected,
	}
}

func detectMultipleH1(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	var details []map[string]any
	for _, p := range reachablePages(pages) {
		if len(p.H1s) > 1 {
			affected = append(affected, p.DisplayURL())
			details = append(details, map[string]any{
				"url":   p.DisplayURL(),
				"h1s":   headOf(p.H1s, 5),
				"count": len(p.H1s),
			})
		}
	}
	if len(affected) == 0 {
		return nil
	}

	return &quickwins.Issue{
		Category: quickwins.CategoryHeadings,
		Type:     "multiple_h1",
		Title:    fmt.Sprintf("Fix %d pages with multiple H1 tags", len(affected)),
		Description: "These pages have more than one H1 tag. While not a critical error, " +
			"best practice is one H1 per page to clearly signal the primary topic.",
		Severity:     quickwins.SeverityLow,
		AffectedURLs: affected,
		Details:      map[string]any{"pages": headDetails(details)},
	}
}

func detectBrokenHierarchy(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	var details []map[string]any
	for _, p := range reachablePages(pages) {
		if !hasLevelSkip(p.Headings) {
			continue
		}
		affected = append(affected, p.DisplayURL())
		details = append(details, map[string]any{
			"url":      p.DisplayURL(),
			"headings": p.Headings[:min(len(p.Headings), 10)],
		})
	}
	if len(affected) == 0 {
		return nil
	}

	return &quickwins.Issue{
		Category: quickwins.CategoryHeadings,
		Type:     "broken_hierarchy",
		Title:    fmt.Sprintf("Fix heading hierarchy on %d pages", len(affected)),
		Description: "These pages skip heading levels (e.g., jumping from H1 to H3 without an H2). " +
			"A proper heading hierarchy helps search engines understand content structure " +
			"and improves accessibility.",
		Severity:     quickwins.SeverityLow,
		AffectedURLs: affected,
		Details:      map[string]any{"pages": headDetails(details)},
	}
}

// hasLevelSkip reports whether the document-order heading sequence ever
// jumps more than one level deeper than its predecessor.
func hasLevelSkip(headings []quickwins.Heading) bool {
	prev := 0
	for _, h := range headings {
		if prev > 0 && h.Level > prev+1 {
			return true
		}
		prev = h.Level
	}
	return false
}
