package mock

import (
	"context"

	"github.com/fwojciec/pagecrawl"
)

var _ pagecrawl.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of pagecrawl.Crawler.
type Crawler struct {
	CrawlPageFn     func(ctx context.Context, url string) *pagecrawl.CrawlResult
	SummarizePageFn func(ctx context.Context, url string) *pagecrawl.SummaryResult
}

func (c *Crawler) CrawlPage(ctx context.Context, url string) *pagecrawl.CrawlResult {
	return c.CrawlPageFn(ctx, url)
}

func (c *Crawler) SummarizePage(ctx context.Context, url string) *pagecrawl.SummaryResult {
	return c.SummarizePageFn(ctx, url)
}
