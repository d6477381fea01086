package quickwins

import (
	"context"
	"encoding/json"
)

// Finding is the report-facing view of one issue.
type Finding struct {
	Issue    string   `json:"issue"`
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
	URLs     []string `json:"urls"`
}

// Prioritization is the prioritizer's answer: a small ordered subset of
// findings judged to be the highest-leverage fixes.
type Prioritization struct {
	// TopQuickWins is the typed view of the prioritized items.
	TopQuickWins []QuickWin `json:"top_5_quick_wins"`

	// Raw holds the prioritizer's full JSON response, passed through to
	// report consumers unmodified.
	Raw json.RawMessage `json:"-"`
}

// QuickWin is one prioritized action item.
type QuickWin struct {
	Rank     int      `json:"rank"`
	Issue    string   `json:"issue"`
	Severity Severity `json:"severity"`
	Action   string   `json:"action"`
	Impact   string   `json:"impact"`
	URLs     []string `json:"urls,omitempty"`
}

// Prioritizer ranks analysis findings by expected impact. Implementations
// are external collaborators (an LLM service); a failed or unparseable
// prioritization returns an EUNAVAILABLE error and the analysis remains
// fully usable without it.
type Prioritizer interface {
	Prioritize(ctx context.Context, crawl *CrawlResult, analysis *AnalysisResult) (*Prioritization, error)
}
