package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notebook"
)

// Ensure LoggingCrawler implements notebook.Crawler.
var _ notebook.Crawler = (*LoggingCrawler)(nil)

// LoggingCrawler wraps a Crawler with logging.
type LoggingCrawler struct {
	next   notebook.Crawler
	logger *slog.Logger
}

// NewLoggingCrawler creates a new LoggingCrawler.
func NewLoggingCrawler(next notebook.Crawler, logger *slog.Logger) *LoggingCrawler {
	return &LoggingCrawler{next: next, logger: logger}
}

// Crawl delegates to the wrapped crawler and logs the operation.
func (c *LoggingCrawler) Crawl(ctx context.Context, seedURL string) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("crawl",
			"url", seedURL,
			"request_id", notebook.RequestIDFromContext(ctx),
			"chars", notebook.TextLen(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Crawl(ctx, seedURL)
}
