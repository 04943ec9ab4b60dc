package mock

import "github.com/fwojciec/pagecrawl"

var _ pagecrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagecrawl.Extractor.
type Extractor struct {
	ExtractFn        func(page *pagecrawl.FetchedPage) (*pagecrawl.PageRecord, error)
	ExtractDetailsFn func(page *pagecrawl.FetchedPage) (*pagecrawl.PageDetails, error)
}

func (e *Extractor) Extract(page *pagecrawl.FetchedPage) (*pagecrawl.PageRecord, error) {
	return e.ExtractFn(page)
}

func (e *Extractor) ExtractDetails(page *pagecrawl.FetchedPage) (*pagecrawl.PageDetails, error) {
	return e.ExtractDetailsFn(page)
}
