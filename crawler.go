package pagecrawl

import "context"

// Crawler crawls single pages. Failures are reported inside the returned
// result rather than as errors.
type Crawler interface {
	// CrawlPage fetches the URL and extracts its record.
	CrawlPage(ctx context.Context, url string) *CrawlResult

	// SummarizePage fetches the URL and returns a condensed summary.
	SummarizePage(ctx context.Context, url string) *SummaryResult
}

// CrawlerFactory builds a new, independent Crawler.
type CrawlerFactory func() Crawler
