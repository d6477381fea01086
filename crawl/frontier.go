package crawl

import (
	"sync"

	"github.com/awalter/quickwins"
	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier is a FIFO crawl queue with Bloom-filter deduplication keyed on
// normalized URLs, so fragment and trailing-slash variants of a queued URL
// are rejected. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push enqueues a URL. Returns false if the URL (by normalized form) has
// already been seen or cannot be normalized.
func (f *Frontier) Push(rawURL string) bool {
	key := quickwins.NormalizeURL(rawURL)
	if key == "" {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(key) {
		return false
	}
	f.seen.AddString(key)
	f.queue = append(f.queue, rawURL)
	return true
}

// Pop dequeues the next URL in FIFO order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// PopN dequeues up to n URLs in FIFO order.
func (f *Frontier) PopN(n int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n > len(f.queue) {
		n = len(f.queue)
	}
	batch := make([]string, n)
	copy(batch, f.queue[:n])
	f.queue = f.queue[n:]
	return batch
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL (by normalized form) has been queued before.
func (f *Frontier) Seen(rawURL string) bool {
	key := quickwins.NormalizeURL(rawURL)
	if key == "" {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(key)
}
