package mock

import (
	"context"

	"github.com/awalter/quickwins"
)

var _ quickwins.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of quickwins.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*quickwins.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*quickwins.Response, error) {
	return f.FetchFn(ctx, url)
}
