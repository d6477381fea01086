package quickwins

// Severity ranks how urgently an issue should be addressed.
type Severity string

// Issue severities, ordered from most to least urgent.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Category groups related issue types.
type Category string

// Issue categories.
const (
	CategoryContent   Category = "content"
	CategoryHeadings  Category = "headings"
	CategoryLinks     Category = "links"
	CategoryTechnical Category = "technical"
)

// Categories lists all issue categories in report order.
var Categories = []Category{CategoryContent, CategoryHeadings, CategoryLinks, CategoryTechnical}

// Issue is one detected problem category instance. A single Issue
// aggregates every affected URL for its type ("23 pages with duplicate
// titles" is one Issue, not 23); each issue type fires at most once per
// analysis.
type Issue struct {
	Category    Category `json:"category"`
	Type        string   `json:"issue_type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`

	// AffectedURLs holds every affected URL. Consumers may truncate for
	// display but Count always reflects the full list.
	AffectedURLs []string `json:"affected_urls"`

	// Details carries free-form structured extras per issue type, such as
	// duplicate groups or redirect hop sequences.
	Details map[string]any `json:"details,omitempty"`
}

// Count returns the number of affected URLs.
func (i *Issue) Count() int { return len(i.AffectedURLs) }

// SampleURLs returns at most n affected URLs for display or payloads.
func (i *Issue) SampleURLs(n int) []string {
	if len(i.AffectedURLs) <= n {
		return i.AffectedURLs
	}
	return i.AffectedURLs[:n]
}

// AnalysisResult is the complete analyzer output: issues grouped by
// category plus the composite health score. Created once per analysis and
// immutable.
type AnalysisResult struct {
	ContentIssues   []*Issue `json:"content_issues"`
	HeadingIssues   []*Issue `json:"heading_issues"`
	LinkIssues      []*Issue `json:"link_issues"`
	TechnicalIssues []*Issue `json:"technical_issues"`

	// Score is the 0-100 site health score.
	Score int `json:"score"`

	// SitemapMissing is copied from the crawl so report consumers need only
	// the analysis.
	SitemapMissing bool `json:"sitemap_missing"`
}

// AllIssues returns every issue across categories, in category order.
func (r *AnalysisResult) AllIssues() []*Issue {
	all := make([]*Issue, 0, r.TotalCount())
	all = append(all, r.ContentIssues...)
	all = append(all, r.HeadingIssues...)
	all = append(all, r.LinkIssues...)
	all = append(all, r.TechnicalIssues...)
	return all
}

// TotalCount returns the number of distinct issues found.
func (r *AnalysisResult) TotalCount() int {
	return len(r.ContentIssues) + len(r.HeadingIssues) + len(r.LinkIssues) + len(r.TechnicalIssues)
}

// IssuesByCategory returns the issues for one category.
func (r *AnalysisResult) IssuesByCategory(c Category) []*Issue {
	switch c {
	case CategoryContent:
		return r.ContentIssues
	case CategoryHeadings:
		return r.HeadingIssues
	case CategoryLinks:
		return r.LinkIssues
	case CategoryTechnical:
		return r.TechnicalIssues
	}
	return nil
}
