package mock

import (
	"context"

	"github.com/awalter/quickwins"
)

var _ quickwins.Prioritizer = (*Prioritizer)(nil)

// Prioritizer is a mock implementation of quickwins.Prioritizer.
type Prioritizer struct {
	PrioritizeFn func(ctx context.Context, crawl *quickwins.CrawlResult, analysis *quickwins.AnalysisResult) (*quickwins.Prioritization, error)
}

func (p *Prioritizer) Prioritize(ctx context.Context, crawl *quickwins.CrawlResult, analysis *quickwins.AnalysisResult) (*quickwins.Prioritization, error) {
	return p.PrioritizeFn(ctx, crawl, analysis)
}
