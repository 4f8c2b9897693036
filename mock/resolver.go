package mock

import (
	"context"

	"github.com/fwojciec/notebook"
)

var _ notebook.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of notebook.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, doc *notebook.Document) notebook.ContextBlock
}

func (r *Resolver) Resolve(ctx context.Context, doc *notebook.Document) notebook.ContextBlock {
	return r.ResolveFn(ctx, doc)
}
