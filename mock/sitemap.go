// Package mock provides mock implementations of quickwins interfaces.
package mock

import (
	"context"

	"github.com/awalter/quickwins"
)

var _ quickwins.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of quickwins.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
