package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalter/quickwins"
)

// Ensure LoggingLinkChecker implements quickwins.LinkChecker.
var _ quickwins.LinkChecker = (*LoggingLinkChecker)(nil)

// LoggingLinkChecker wraps a LinkChecker with logging.
type LoggingLinkChecker struct {
	next   quickwins.LinkChecker
	logger *slog.Logger
}

// NewLoggingLinkChecker creates a new LoggingLinkChecker.
func NewLoggingLinkChecker(next quickwins.LinkChecker, logger *slog.Logger) *LoggingLinkChecker {
	return &LoggingLinkChecker{next: next, logger: logger}
}

// CheckLinks delegates to the wrapped checker and logs the operation.
func (c *LoggingLinkChecker) CheckLinks(ctx context.Context, urls []string) (broken []quickwins.BrokenLink, chains []quickwins.RedirectChain, err error) {
	defer func(begin time.Time) {
		c.logger.Info("link check",
			"checked", len(urls),
			"broken", len(broken),
			"redirect_chains", len(chains),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CheckLinks(ctx, urls)
}
