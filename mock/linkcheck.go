package mock

import (
	"context"

	"github.com/awalter/quickwins"
)

var _ quickwins.LinkChecker = (*LinkChecker)(nil)

// LinkChecker is a mock implementation of quickwins.LinkChecker.
type LinkChecker struct {
	CheckLinksFn func(ctx context.Context, urls []string) ([]quickwins.BrokenLink, []quickwins.RedirectChain, error)
}

func (c *LinkChecker) CheckLinks(ctx context.Context, urls []string) ([]quickwins.BrokenLink, []quickwins.RedirectChain, error) {
	return c.CheckLinksFn(ctx, urls)
}

var _ quickwins.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of quickwins.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
