package http

import (
	"context"
	"net/http"

	"github.com/awalter/quickwins"
	"golang.org/x/sync/errgroup"
)

// Link checking limits.
const (
	// MaxLinkChecks caps how many internal links one audit probes.
	MaxLinkChecks = 100

	// maxRedirectHops bounds manual redirect following per link.
	maxRedirectHops = 5

	defaultCheckConcurrency = 10
)

// Ensure LinkChecker implements quickwins.LinkChecker.
var _ quickwins.LinkChecker = (*LinkChecker)(nil)

// LinkChecker probes internal links without following redirects
// automatically, so multi-hop redirect chains can be observed hop by hop.
type LinkChecker struct {
	client      *http.Client
	concurrency int
}

// CheckOption configures a LinkChecker.
type CheckOption func(*LinkChecker)

// WithCheckConcurrency sets how many links are probed simultaneously.
func WithCheckConcurrency(n int) CheckOption {
	return func(l *LinkChecker) {
		l.concurrency = n
	}
}

// NewLinkChecker creates a LinkChecker. If client is nil, a client with the
// default fetch timeout is used. Automatic redirect following is disabled
// on a copy of the client either way.
func NewLinkChecker(client *http.Client, opts ...CheckOption) *LinkChecker {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	noFollow := *client
	noFollow.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	l := &LinkChecker{
		client:      &noFollow,
		concurrency: defaultCheckConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// linkFinding is the outcome of probing one link. Both fields may be set:
// a redirect chain that dead-ends in a 4xx/5xx is also a broken link.
type linkFinding struct {
	broken *quickwins.BrokenLink
	chain  *quickwins.RedirectChain
}

// CheckLinks probes up to MaxLinkChecks links concurrently and returns the
// broken links and redirect chains found, in input order. Per-link request
// failures are findings (status 0), never errors.
func (l *LinkChecker) CheckLinks(ctx context.Context, urls []string) ([]quickwins.BrokenLink, []quickwins.RedirectChain, error) {
	if len(urls) > MaxLinkChecks {
		urls = urls[:MaxLinkChecks]
	}

	findings := make([]linkFinding, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			findings[i] = l.checkLink(gctx, u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var broken []quickwins.BrokenLink
	var chains []quickwins.RedirectChain
	for _, f := range findings {
		if f.chain != nil {
			chains = append(chains, *f.chain)
		}
		if f.broken != nil {
			broken = append(broken, *f.broken)
		}
	}
	return broken, chains, nil
}

// checkLink probes one link. Redirects are followed manually up to
// maxRedirectHops; a chain longer than one hop is a redirect-chain finding,
// and a terminal 4xx/5xx (or a request failure) is a broken-link finding.
func (l *LinkChecker) checkLink(ctx context.Context, url string) linkFinding {
	status, location, ok := l.head(ctx, url)
	if !ok {
		return linkFinding{broken: &quickwins.BrokenLink{URL: url}}
	}

	if status < 300 || status >= 400 {
		if status >= 400 {
			return linkFinding{broken: &quickwins.BrokenLink{URL: url, Status: status}}
		}
		return linkFinding{}
	}

	chain := []string{url}
	current := url
	for hop := 0; hop < maxRedirectHops; hop++ {
		if location == "" {
			break
		}
		next := quickwins.MakeAbsolute(location, current)
		if next == "" {
			break
		}
		chain = append(chain, next)
		current = next

		status, location, ok = l.head(ctx, next)
		if !ok {
			return linkFinding{broken: &quickwins.BrokenLink{URL: url}}
		}
		if status < 300 || status >= 400 {
			break
		}
	}

	var f linkFinding
	if len(chain) > 2 {
		f.chain = &quickwins.RedirectChain{URL: url, Chain: chain}
	}
	if status >= 400 {
		f.broken = &quickwins.BrokenLink{URL: url, Status: status}
	}
	return f
}

// head issues a single no-follow GET and returns the status and Location
// header. ok is false when no response was obtained.
func (l *LinkChecker) head(ctx context.Context, url string) (status int, location string, ok bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", false
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return 0, "", false
	}
	resp.Body.Close()

	return resp.StatusCode, resp.Header.Get("Location"), true
}
