package pagecrawl

import "context"

// FetchedPage is the raw response for one fetched URL.
type FetchedPage struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request for the URL.
	// Transport failures and non-2xx responses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchedPage, error)
}
