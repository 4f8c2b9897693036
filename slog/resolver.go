package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notebook"
)

// Ensure LoggingResolver implements notebook.Resolver.
var _ notebook.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   notebook.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next notebook.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the document it resolved.
func (r *LoggingResolver) Resolve(ctx context.Context, doc *notebook.Document) (block notebook.ContextBlock) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"title", doc.Label(),
			"type", doc.Type,
			"request_id", notebook.RequestIDFromContext(ctx),
			"chars", notebook.TextLen(block.Text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(ctx, doc)
}
