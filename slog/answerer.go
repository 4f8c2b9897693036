package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notebook"
)

// Ensure LoggingAnswerer implements notebook.Answerer.
var _ notebook.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging. Question and context
// text are not logged, only their sizes.
type LoggingAnswerer struct {
	next   notebook.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next notebook.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the operation.
func (a *LoggingAnswerer) Answer(ctx context.Context, systemContext, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("answer",
			"request_id", notebook.RequestIDFromContext(ctx),
			"context_chars", notebook.TextLen(systemContext),
			"answer_chars", notebook.TextLen(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, systemContext, question)
}
