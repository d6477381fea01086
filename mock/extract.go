package mock

import "github.com/awalter/quickwins"

var _ quickwins.SignalExtractor = (*SignalExtractor)(nil)

// SignalExtractor is a mock implementation of quickwins.SignalExtractor.
type SignalExtractor struct {
	ExtractFn func(html, pageURL, finalURL string, status int, baseDomain string) (*quickwins.PageSignals, error)
}

func (e *SignalExtractor) Extract(html, pageURL, finalURL string, status int, baseDomain string) (*quickwins.PageSignals, error) {
	return e.ExtractFn(html, pageURL, finalURL, status, baseDomain)
}

var _ quickwins.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of quickwins.LinkExtractor.
type LinkExtractor struct {
	LinksFn func(html, baseURL, baseDomain string) ([]string, error)
}

func (e *LinkExtractor) Links(html, baseURL, baseDomain string) ([]string, error) {
	return e.LinksFn(html, baseURL, baseDomain)
}
