package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/awalter/quickwins"
)

// DefaultFetchTimeout bounds every outbound request. A slow page fails
// only its own fetch, never a sibling's.
const DefaultFetchTimeout = 8 * time.Second

// DefaultUserAgent is a browser-like User-Agent; some sites serve crawlers
// stripped-down or blocked pages.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// maxPageBodySize caps how much of a page body is read.
const maxPageBodySize = 10 << 20

// Ensure Fetcher implements quickwins.Fetcher at compile time.
var _ quickwins.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over plain HTTP. Redirects are followed; the
// response records the final post-redirect URL. Unlike a generic HTTP
// helper it never treats a 4xx/5xx status as an error — status codes are
// audit signals.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP page fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the given URL and returns the response regardless of
// status code. An error means no HTTP response was obtained at all.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*quickwins.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBodySize))
	if err != nil {
		return nil, err
	}

	return &quickwins.Response{
		Status:      resp.StatusCode,
		FinalURL:    resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}
