package mock

import (
	"context"

	"github.com/fwojciec/notebook"
)

var _ notebook.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of notebook.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*notebook.FetchResponse, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*notebook.FetchResponse, error) {
	return f.FetchFn(ctx, url)
}
