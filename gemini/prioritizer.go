// Package gemini implements quickwins.Prioritizer using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/awalter/quickwins"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// maxSampleURLs bounds the per-issue URL sample sent to the model.
const maxSampleURLs = 20

// Ensure Prioritizer implements quickwins.Prioritizer at compile time.
var _ quickwins.Prioritizer = (*Prioritizer)(nil)

// Prioritizer ranks audit findings by expected impact using Gemini. The
// model receives the full categorized issue list as JSON and returns a
// JSON object with a top_5_quick_wins list, which is passed through to
// report consumers unmodified.
type Prioritizer struct {
	client *genai.Client
	model  string
}

// NewPrioritizer creates a new Prioritizer. An empty model selects
// DefaultModel.
func NewPrioritizer(client *genai.Client, model string) *Prioritizer {
	if model == "" {
		model = DefaultModel
	}
	return &Prioritizer{client: client, model: model}
}

// Prioritize sends the analysis to Gemini and returns its prioritization.
// Any API failure or unparseable response yields an EUNAVAILABLE error;
// the caller's crawl and analysis results remain valid without it.
func (p *Prioritizer) Prioritize(ctx context.Context, crawl *quickwins.CrawlResult, analysis *quickwins.AnalysisResult) (*quickwins.Prioritization, error) {
	payload, err := json.MarshalIndent(BuildContext(crawl, analysis), "", "  ")
	if err != nil {
		return nil, quickwins.Errorf(quickwins.EINTERNAL, "encoding prioritizer context: %v", err)
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(string(payload))}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, quickwins.Errorf(quickwins.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, quickwins.Errorf(quickwins.EUNAVAILABLE, "gemini returned nil result")
	}

	raw := ExtractJSON(result.Text())
	if raw == nil {
		return nil, quickwins.Errorf(quickwins.EUNAVAILABLE, "gemini response is not valid JSON")
	}

	pri := &quickwins.Prioritization{Raw: raw}
	// Best-effort typed view; the raw response is authoritative either way.
	_ = json.Unmarshal(raw, pri)
	return pri, nil
}

// Context is the JSON-serializable payload sent to the model.
type Context struct {
	Domain          string        `json:"domain"`
	DiscoveryMethod string        `json:"discovery_method"`
	SitemapMissing  bool          `json:"sitemap_missing"`
	URLsDiscovered  int           `json:"urls_discovered"`
	URLsAnalyzed    int           `json:"urls_analyzed"`
	Score           int           `json:"score"`
	TotalIssues     int           `json:"total_issues"`
	Issues          ContextIssues `json:"issues"`
}

// ContextIssues carries the categorized issue lists.
type ContextIssues struct {
	Content   []ContextIssue `json:"content_issues"`
	Headings  []ContextIssue `json:"heading_issues"`
	Links     []ContextIssue `json:"link_issues"`
	Technical []ContextIssue `json:"technical_issues"`
}

// ContextIssue is one issue with its URL list truncated to a bounded
// sample; the full affected count is retained separately.
type ContextIssue struct {
	Category      quickwins.Category `json:"category"`
	IssueType     string             `json:"issue_type"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Severity      quickwins.Severity `json:"severity"`
	AffectedURLs  []string           `json:"affected_urls"`
	AffectedCount int                `json:"affected_count"`
	Details       map[string]any     `json:"details,omitempty"`
}

// BuildContext assembles the model payload from crawl and analysis output.
func BuildContext(crawl *quickwins.CrawlResult, analysis *quickwins.AnalysisResult) *Context {
	return &Context{
		Domain:          crawl.Domain,
		DiscoveryMethod: crawl.DiscoveryMethod,
		SitemapMissing:  crawl.SitemapMissing,
		URLsDiscovered:  crawl.URLsDiscovered,
		URLsAnalyzed:    crawl.URLsAnalyzed,
		Score:           analysis.Score,
		TotalIssues:     analysis.TotalCount(),
		Issues: ContextIssues{
			Content:   contextIssues(analysis.ContentIssues),
			Headings:  contextIssues(analysis.HeadingIssues),
			Links:     contextIssues(analysis.LinkIssues),
			Technical: contextIssues(analysis.TechnicalIssues),
		},
	}
}

func contextIssues(issues []*quickwins.Issue) []ContextIssue {
	out := make([]ContextIssue, len(issues))
	for i, issue := range issues {
		out[i] = ContextIssue{
			Category:      issue.Category,
			IssueType:     issue.Type,
			Title:         issue.Title,
			Description:   issue.Description,
			Severity:      issue.Severity,
			AffectedURLs:  issue.SampleURLs(maxSampleURLs),
			AffectedCount: issue.Count(),
			Details:       issue.Details,
		}
	}
	return out
}

// BuildConfig returns the GenerateContentConfig for prioritization calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an experienced technical SEO consultant. Given the audit " +
					"findings for a website, pick the five fixes with the best " +
					"effort-to-impact ratio and respond with JSON only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt around the context JSON.
func BuildUserPrompt(contextJSON string) string {
	var sb strings.Builder
	sb.WriteString("Below is the JSON output of an automated on-page SEO audit.\n\n")
	sb.WriteString("<audit>\n")
	sb.WriteString(contextJSON)
	sb.WriteString("\n</audit>\n\n")
	fmt.Fprintf(&sb, "Respond with a JSON object of this shape:\n")
	sb.WriteString(`{
  "top_5_quick_wins": [
    {
      "rank": 1,
      "issue": "<issue_type from the audit>",
      "severity": "<critical|high|medium|low>",
      "action": "<one concrete sentence describing the fix>",
      "impact": "<one sentence on why this matters for this site>",
      "urls": ["<up to 5 example URLs>"]
    }
  ]
}`)
	sb.WriteString("\n\nRank by effort-to-impact ratio, not severity alone. Use only issues present in the audit.")
	return sb.String()
}
