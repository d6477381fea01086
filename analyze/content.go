package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/awalter/quickwins"
)

// duplicateGroup is one cluster of pages sharing a value (title, meta
// description, body fingerprint).
type duplicateGroup struct {
	value string
	urls  []string
}

// groupDuplicates clusters reachable pages by a non-empty key and returns
// the clusters with two or more members, largest first (ties broken by
// value for determinism).
func groupDuplicates(pages []*quickwins.PageSignals, key func(*quickwins.PageSignals) string) []duplicateGroup {
	byValue := make(map[string][]string)
	for _, p := range reachablePages(pages) {
		value := strings.TrimSpace(key(p))
		if value == "" {
			continue
		}
		byValue[value] = append(byValue[value], p.DisplayURL())
	}

	var groups []duplicateGroup
	for value, urls := range byValue {
		if len(urls) > 1 {
			groups = append(groups, duplicateGroup{value: value, urls: urls})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].urls) != len(groups[j].urls) {
			return len(groups[i].urls) > len(groups[j].urls)
		}
		return groups[i].value < groups[j].value
	})
	return groups
}

func detectDuplicateTitles(pages []*quickwins.PageSignals) *quickwins.Issue {
	groups := groupDuplicates(pages, func(p *quickwins.PageSignals) string { return p.Title })
	if len(groups) == 0 {
		return nil
	}

	var affected []string
	var details []map[string]any
	for _, g := range groups {
		affected = append(affected, g.urls...)
		details = append(details, map[string]any{
			"title": truncateText(g.value, 120),
			"count": len(g.urls),
			"urls":  headOf(g.urls, 5),
		})
	}

	severity := quickwins.SeverityMedium
	if len(affected) > duplicateTitlesHighOver {
		severity = quickwins.SeverityHigh
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryContent,
		Type:     "duplicate_titles",
		Title:    fmt.Sprintf("Fix %d pages with duplicate titles", len(affected)),
		Description: "Multiple pages share the same title tag. Google uses titles as a primary " +
			"ranking signal — duplicate titles make it harder for search engines to " +
			"understand which page to rank for a given query.",
		Severity:     severity,
		AffectedURLs: affected,
		Details:      map[string]any{"groups": details},
	}
}

func detectMissingTitles(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	for _, p := range reachablePages(pages) {
		if strings.TrimSpace(p.Title) == "" {
			affected = append(affected, p.DisplayURL())
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := quickwins.SeverityHigh
	if len(affected) > missingTitlesCriticalOver {
		severity = quickwins.SeverityCritical
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryContent,
		Type:     "missing_titles",
		Title:    fmt.Sprintf("Add title tags to %d pages", len(affected)),
		Description: "These pages have no title tag at all. The title is the most important " +
			"on-page SEO element — without it, Google has to guess what the page is about.",
		Severity:     severity,
		AffectedURLs: affected,
	}
}

func detectDuplicateMetas(pages []*quickwins.PageSignals) *quickwins.Issue {
	groups := groupDuplicates(pages, func(p *quickwins.PageSignals) string { return p.MetaDescription })
	if len(groups) == 0 {
		return nil
	}

	var affected []string
	var details []map[string]any
	for _, g := range groups {
		affected = append(affected, g.urls...)
		details = append(details, map[string]any{
			"meta":  truncateText(g.value, 160),
			"count": len(g.urls),
			"urls":  headOf(g.urls, 5),
		})
	}

	return &quickwins.Issue{
		Category: quickwins.CategoryContent,
		Type:     "duplicate_metas",
		Title:    fmt.Sprintf("Fix %d pages with duplicate meta descriptions", len(affected)),
		Description: "Several pages share identical meta descriptions. Unique descriptions " +
			"improve click-through rates from search results and help Google understand " +
			"each page's unique value.",
		Severity:     quickwins.SeverityMedium,
		AffectedURLs: affected,
		Details:      map[string]any{"groups": details},
	}
}

func detectMissingMetas(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	for _, p := range reachablePages(pages) {
		if strings.TrimSpace(p.MetaDescription) == "" {
			affected = append(affected, p.DisplayURL())
		}
	}
	if len(affected) == 0 {
		return nil
	}

	severity := quickwins.SeverityLow
	if len(affected) > missingMetasMediumOver {
		severity = quickwins.SeverityMedium
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryContent,
		Type:     "missing_metas",
		Title:    fmt.Sprintf("Add meta descriptions to %d pages", len(affected)),
		Description: "These pages lack a meta description. While not a direct ranking factor, " +
			"meta descriptions heavily influence click-through rates from search results.",
		Severity:     severity,
		AffectedURLs: affected,
	}
}

func detectThinContent(pages []*quickwins.PageSignals) *quickwins.Issue {
	var affected []string
	var details []map[string]any
	for _, p := range reachablePages(pages) {
		if p.WordCount > 0 && p.WordCount < thinContentMinWords {
			affected = append(affected, p.DisplayURL())
			details = append(details, map[string]any{
				"url":        p.DisplayURL(),
				"word_count": p.WordCount,
			})
		}
	}
	if len(affected) == 0 {
		return nil
	}

	return &quickwins.Issue{
		Category: quickwins.CategoryContent,
		Type:     "thin_content",
		Title:    fmt.Sprintf("Expand thin content on %d pages", len(affected)),
		Description: "These pages have fewer than 300 words. Thin content pages often struggle " +
			"to rank because they don't provide enough depth for Google to consider them " +
			"authoritative on the topic.",
		Severity:     quickwins.SeverityMedium,
		AffectedURLs: affected,
		Details:      map[string]any{"pages": headDetails(details)},
	}
}

func detectDuplicateContent(pages []*quickwins.PageSignals) *quickwins.Issue {
	groups := groupDuplicates(pages, func(p *quickwins.PageSignals) string { return p.ContentHash })
	if len(groups) == 0 {
		return nil
	}

	var affected []string
	var details []map[string]any
	for _, g := range groups {
		affected = append(affected, g.urls...)
		details = append(details, map[string]any{
			"count": len(g.urls),
			"urls":  headOf(g.urls, 5),
		})
	}

	severity := quickwins.SeverityMedium
	if len(affected) > duplicateContentHighOver {
		severity = quickwins.SeverityHigh
	}
	return &quickwins.Issue{
		Category: quickwins.CategoryContent,
		Type:     "duplicate_content",
		Title:    fmt.Sprintf("Differentiate %d pages with identical body content", len(affected)),
		Description: "These pages have byte-identical body text. Search engines pick one " +
			"version to index and ignore the rest, splitting ranking signals across " +
			"duplicates in the meantime.",
		Severity:     severity,
		AffectedURLs: affected,
		Details:      map[string]any{"groups": details},
	}
}

// truncateText shortens s to at most n runes for detail payloads.
func truncateText(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// headOf returns at most n leading elements.
func headOf(urls []string, n int) []string {
	if len(urls) <= n {
		return urls
	}
	return urls[:n]
}

// headDetails caps a detail list at maxDetailEntries.
func headDetails(details []map[string]any) []map[string]any {
	if len(details) <= maxDetailEntries {
		return details
	}
	return details[:maxDetailEntries]
}
