package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalter/quickwins"
)

// Ensure LoggingPrioritizer implements quickwins.Prioritizer.
var _ quickwins.Prioritizer = (*LoggingPrioritizer)(nil)

// LoggingPrioritizer wraps a Prioritizer with logging.
type LoggingPrioritizer struct {
	next   quickwins.Prioritizer
	logger *slog.Logger
}

// NewLoggingPrioritizer creates a new LoggingPrioritizer.
func NewLoggingPrioritizer(next quickwins.Prioritizer, logger *slog.Logger) *LoggingPrioritizer {
	return &LoggingPrioritizer{next: next, logger: logger}
}

// Prioritize delegates to the wrapped prioritizer and logs the operation.
func (p *LoggingPrioritizer) Prioritize(ctx context.Context, crawl *quickwins.CrawlResult, analysis *quickwins.AnalysisResult) (pri *quickwins.Prioritization, err error) {
	defer func(begin time.Time) {
		wins := 0
		if pri != nil {
			wins = len(pri.TopQuickWins)
		}
		p.logger.Info("prioritize",
			"domain", crawl.Domain,
			"issues", analysis.TotalCount(),
			"quick_wins", wins,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Prioritize(ctx, crawl, analysis)
}
