// Package slog provides log/slog decorators for notebook services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notebook"
)

// Ensure LoggingFetcher implements notebook.Fetcher.
var _ notebook.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   notebook.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next notebook.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *notebook.FetchResponse, err error) {
	defer func(begin time.Time) {
		var size int
		var contentType string
		if resp != nil {
			size, contentType = len(resp.Body), resp.MediaType()
		}
		f.logger.Info("fetch",
			"url", url,
			"content_type", contentType,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
