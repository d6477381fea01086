package quickwins

import (
	"net/url"
	"strings"
)

// skipExtensions lists path suffixes that never resolve to crawlable HTML
// pages: images, archives, media, office documents and executables.
var skipExtensions = []string{
	".jpg", ".jpeg", ".png", ".webp", ".gif", ".svg", ".ico",
	".bmp", ".tiff", ".tif", ".avif",
	".pdf", ".zip", ".gz", ".tar", ".rar",
	".mp4", ".mp3", ".avi", ".mov", ".wmv",
	".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".exe", ".dmg", ".apk",
}

// NormalizeDomain extracts and normalizes the domain from a URL or bare
// domain string: lowercase, no www prefix, no port. Invalid or empty input
// returns an empty string. The function is idempotent.
func NormalizeDomain(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if low := strings.ToLower(s); strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") {
		u, err := url.Parse(s)
		if err != nil {
			return ""
		}
		s = u.Host
	}
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "www.")
	host, _, _ := strings.Cut(s, ":")
	return host
}

// NormalizeURL canonicalizes a URL for deduplication: the fragment is
// dropped, the path loses its trailing slash (the root path stays "/"),
// and the query string is preserved.
func NormalizeURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		path = "/"
	}
	normalized := u.Scheme + "://" + u.Host + path
	if u.RawQuery != "" {
		normalized += "?" + u.RawQuery
	}
	return normalized
}

// IsValidPageURL reports whether a URL is a crawlable HTML page target.
// Non-http(s) URLs and paths ending in a known non-page extension
// (images, PDFs, archives, etc.) are rejected.
func IsValidPageURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	low := strings.ToLower(rawURL)
	if !strings.HasPrefix(low, "http://") && !strings.HasPrefix(low, "https://") {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	return true
}

// IsSameDomain reports whether a URL belongs to the given normalized domain.
func IsSameDomain(rawURL, baseDomain string) bool {
	return NormalizeDomain(rawURL) == baseDomain
}

// MakeAbsolute resolves a relative href against a base URL. Fragment-only,
// mailto:, tel: and javascript: pseudo-links resolve to an empty string.
func MakeAbsolute(href, baseURL string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	low := strings.ToLower(href)
	if strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") {
		return href
	}
	for _, prefix := range []string{"#", "mailto:", "tel:", "javascript:"} {
		if strings.HasPrefix(low, prefix) {
			return ""
		}
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// BaseURL builds a clean scheme://host base from user input, prepending
// https:// when no scheme is given and dropping any path.
func BaseURL(input string) string {
	input = strings.TrimSpace(input)
	if low := strings.ToLower(input); !strings.HasPrefix(low, "http://") && !strings.HasPrefix(low, "https://") {
		input = "https://" + input
	}
	u, err := url.Parse(input)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// RootBucket is the path bucket assigned to root-path URLs.
const RootBucket = "_root"

// PathBucket returns the first non-empty path segment of a URL, or
// RootBucket for the root path. Buckets group structurally similar URLs
// for sampling diversity.
func PathBucket(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return RootBucket
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return RootBucket
	}
	segment, _, _ := strings.Cut(path, "/")
	return segment
}
