package quickwins

import "context"

// FetchError classifies why a page could not be analyzed.
type FetchError string

// Fetch outcome classifications. The zero value means the fetch succeeded.
const (
	FetchOK            FetchError = ""
	FetchTimeout       FetchError = "timeout"
	FetchRequestFailed FetchError = "request_failed"
	FetchNonHTML       FetchError = "non_html"
)

// Heading is a single heading element with its level (1-6) and text.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// PageSignals holds the SEO signals extracted from a single fetched page.
// It is created once by the fetch stage and read-only thereafter.
type PageSignals struct {
	URL      string     `json:"url"`
	FinalURL string     `json:"final_url"`
	Status   int        `json:"status"`
	Error    FetchError `json:"error"`

	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Canonical       string `json:"canonical"`
	RobotsMeta      string `json:"robots_meta"`

	// H1s holds the text of every H1 element, in the order found.
	H1s []string `json:"h1s"`

	// Headings holds every heading in document order. Order matters: the
	// analyzer uses it to detect skipped heading levels.
	Headings []Heading `json:"headings"`

	// WordCount is the body word count with script, style, nav, footer and
	// header subtrees excluded.
	WordCount int `json:"word_count"`

	// InternalLinks holds up to a per-page cap of same-domain absolute URLs.
	InternalLinks []string `json:"internal_links"`

	HasSchema   bool `json:"has_schema"`
	HasHreflang bool `json:"has_hreflang"`

	// ContentHash fingerprints the extracted body text. Empty when the page
	// has no body text.
	ContentHash string `json:"content_hash,omitempty"`
}

// Reachable reports whether the page was fetched successfully with a
// non-error HTTP status. Unreachable pages are excluded from content
// quality checks so they are not penalized twice.
func (p *PageSignals) Reachable() bool {
	return p.Error == FetchOK && p.Status > 0 && p.Status < 400
}

// DisplayURL returns the post-redirect URL when known, falling back to the
// requested URL.
func (p *PageSignals) DisplayURL() string {
	if p.FinalURL != "" {
		return p.FinalURL
	}
	return p.URL
}

// Response is the raw outcome of fetching a single URL. Non-2xx statuses
// are data, not errors: the fetcher returns an error only when no HTTP
// response was obtained at all.
type Response struct {
	Status      int
	FinalURL    string
	ContentType string
	Body        string
}

// Fetcher retrieves raw pages over the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// SignalExtractor parses HTML and extracts the per-page SEO signals.
// The baseDomain is used to classify internal links.
type SignalExtractor interface {
	Extract(html, pageURL, finalURL string, status int, baseDomain string) (*PageSignals, error)
}

// LinkExtractor returns the same-domain, crawlable absolute link targets
// found in an HTML document. Used by the homepage-fallback discovery stage,
// which needs every anchor rather than the capped per-page sample.
type LinkExtractor interface {
	Links(html, baseURL, baseDomain string) ([]string, error)
}
