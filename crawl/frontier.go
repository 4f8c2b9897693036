package crawl

import (
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/notebook/bloom"
)

// Frontier is a FIFO queue of URLs that accepts each URL at most once.
// It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Set
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for the Bloom prefilter.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewSet(n, fpRate),
	}
}

// Push appends a URL to the back of the queue.
// Returns false if the URL was pushed before, whether or not it has since
// been popped. URLs differing only by fragment are the same URL.
func (f *Frontier) Push(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := Normalize(rawURL)
	if !f.seen.Add(u) {
		return false
	}
	f.queue = append(f.queue, u)
	return true
}

// Mark records a URL as seen without queuing it, such as the target of a
// redirect. Returns false if it was already seen.
func (f *Frontier) Mark(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Add(Normalize(rawURL))
}

// Pop removes and returns the URL at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	u := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	return u, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued or popped.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Contains(Normalize(rawURL))
}

// Normalize returns the form under which a URL is deduplicated: scheme and
// host lowercased, an empty path replaced by "/" and the fragment dropped.
// Unparseable input only loses its fragment.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if idx := strings.Index(rawURL, "#"); idx != -1 {
			return rawURL[:idx]
		}
		return rawURL
	}

	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Host != "" && u.Opaque == "" && u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}
	return u.String()
}
