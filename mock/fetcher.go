package mock

import (
	"context"

	"github.com/fwojciec/pagecrawl"
)

var _ pagecrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagecrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagecrawl.FetchedPage, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagecrawl.FetchedPage, error) {
	return f.FetchFn(ctx, url)
}
