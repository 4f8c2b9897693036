package notebook

import "context"

// Crawler collects text from a website starting at a seed URL.
type Crawler interface {
	// Crawl traverses same-host links breadth-first from seedURL and returns
	// the aggregated page text, bounded by the crawler's page and size budgets.
	// Individual page failures are skipped; an unusable seed returns EPARSE.
	Crawl(ctx context.Context, seedURL string) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
