package mock

import (
	"context"

	"github.com/fwojciec/notebook"
)

var (
	_ notebook.Crawler       = (*Crawler)(nil)
	_ notebook.DomainLimiter = (*DomainLimiter)(nil)
)

// Crawler is a mock implementation of notebook.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seedURL string) (string, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string) (string, error) {
	return c.CrawlFn(ctx, seedURL)
}

// DomainLimiter is a mock implementation of notebook.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
