package crawl

import (
	"sync"

	"github.com/fwojciec/sitereport"
	"github.com/fwojciec/sitereport/bloom"
)

// Compile-time interface verification.
var _ sitereport.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO URL frontier with exact deduplication.
// A URL is marked seen in the same critical section that enqueues it, so a
// URL discovered on several pages is queued once.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu     sync.Mutex
	filter *bloom.Filter
	seen   map[string]struct{}
	queue  []string
}

// NewFrontier creates a new Frontier whose Bloom pre-filter is sized for n
// expected URLs with the given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		filter: bloom.NewFilter(n, fpRate),
		seen:   make(map[string]struct{}),
	}
}

// Push normalizes the URL and enqueues it unless it has been seen.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(rawURL string) bool {
	url := sitereport.Normalize(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	// A negative filter answer is definitive; a positive one is confirmed
	// against the exact set so false positives never drop a URL.
	if f.filter.TestAndAdd(url) {
		if _, ok := f.seen[url]; ok {
			return false
		}
	}
	f.seen[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the oldest queued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	return url, true
}

// unpop returns a popped URL to the head of the queue.
func (f *Frontier) unpop(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append([]string{url}, f.queue...)
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Pending returns a copy of the queued URLs in dequeue order.
func (f *Frontier) Pending() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queue...)
}

// Visited returns the number of distinct URLs ever pushed.
func (f *Frontier) Visited() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

// Seen returns true if the URL has been queued at any point.
// The URL is normalized before checking.
func (f *Frontier) Seen(rawURL string) bool {
	url := sitereport.Normalize(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.filter.Test(url) {
		return false
	}
	_, ok := f.seen[url]
	return ok
}
