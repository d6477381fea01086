package crawl

import (
	"sort"

	"github.com/awalter/quickwins"
)

// SampleURLs reduces a discovered URL set to a bounded, structurally
// diverse sample. The homepage always comes first; then one URL per sorted
// path bucket, so a blog post, a product page and an about page each get
// representation before any section dominates; any remaining budget is
// filled in discovery order. The result is deduplicated by normalized URL
// and capped at maxPages.
func SampleURLs(urls []string, homepage string, maxPages int) []string {
	var valid []string
	seen := make(map[string]bool)
	for _, u := range urls {
		if !quickwins.IsValidPageURL(u) {
			continue
		}
		norm := quickwins.NormalizeURL(u)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		valid = append(valid, u)
	}

	var sample []string
	sampled := make(map[string]bool)
	if homepage != "" {
		sample = append(sample, homepage)
		sampled[quickwins.NormalizeURL(homepage)] = true
	}

	buckets := make(map[string][]string)
	for _, u := range valid {
		bucket := quickwins.PathBucket(u)
		buckets[bucket] = append(buckets[bucket], u)
	}
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if len(sample) >= maxPages {
			break
		}
		for _, u := range buckets[name] {
			if norm := quickwins.NormalizeURL(u); !sampled[norm] {
				sample = append(sample, u)
				sampled[norm] = true
				break
			}
		}
	}

	for _, u := range valid {
		if len(sample) >= maxPages {
			break
		}
		if norm := quickwins.NormalizeURL(u); !sampled[norm] {
			sample = append(sample, u)
			sampled[norm] = true
		}
	}

	if len(sample) > maxPages {
		sample = sample[:maxPages]
	}
	return sample
}
