// Package crawl provides single-page crawling orchestration.
// It coordinates the pre-request delay, fetching, extraction and the
// conversion of failures into failure records.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecrawl"
)

// Ensure Crawler implements pagecrawl.Crawler at compile time.
var _ pagecrawl.Crawler = (*Crawler)(nil)

// Crawler fetches one page per call and builds its record.
// A Crawler holds no state between calls.
type Crawler struct {
	Fetcher   pagecrawl.Fetcher
	Extractor pagecrawl.Extractor

	// Captures archives every crawl result when set. Archive failures are
	// logged and never change the result.
	Captures pagecrawl.CaptureService

	// Delay is waited before every request. Zero disables the wait.
	Delay time.Duration

	Logger *slog.Logger
	Now    func() time.Time
}

// CrawlPage waits the configured delay, fetches url and extracts its record.
// Any failure is logged and returned as a failure record.
func (c *Crawler) CrawlPage(ctx context.Context, url string) *pagecrawl.CrawlResult {
	result := c.crawl(ctx, url)
	c.archive(ctx, result)
	return result
}

func (c *Crawler) crawl(ctx context.Context, url string) *pagecrawl.CrawlResult {
	page, err := c.fetch(ctx, url)
	if err != nil {
		return &pagecrawl.CrawlResult{Failure: c.failure(url, err)}
	}

	record, err := c.Extractor.Extract(page)
	if err != nil {
		return &pagecrawl.CrawlResult{Failure: c.failure(url, err)}
	}

	return &pagecrawl.CrawlResult{Page: record}
}

// SummarizePage crawls url and condenses the record and its details into a
// summary.
func (c *Crawler) SummarizePage(ctx context.Context, url string) *pagecrawl.SummaryResult {
	page, err := c.fetch(ctx, url)
	if err != nil {
		return &pagecrawl.SummaryResult{Failure: c.failure(url, err)}
	}

	record, err := c.Extractor.Extract(page)
	if err != nil {
		return &pagecrawl.SummaryResult{Failure: c.failure(url, err)}
	}

	details, err := c.Extractor.ExtractDetails(page)
	if err != nil {
		return &pagecrawl.SummaryResult{Failure: c.failure(url, err)}
	}

	return &pagecrawl.SummaryResult{Summary: pagecrawl.Summarize(record, details, c.now())}
}

// fetch waits the delay and performs the request.
func (c *Crawler) fetch(ctx context.Context, url string) (*pagecrawl.FetchedPage, error) {
	if err := Sleep(ctx, c.Delay); err != nil {
		return nil, err
	}
	return c.Fetcher.Fetch(ctx, url)
}

func (c *Crawler) failure(url string, err error) *pagecrawl.CrawlFailure {
	c.logger().Error("crawl failed", "url", url, "err", err)
	return pagecrawl.NewCrawlFailure(url, err, c.now())
}

func (c *Crawler) archive(ctx context.Context, result *pagecrawl.CrawlResult) {
	if c.Captures == nil {
		return
	}
	capture, err := pagecrawl.NewCapture(result)
	if err == nil {
		err = c.Captures.CreateCapture(ctx, capture)
	}
	if err != nil {
		c.logger().Warn("archive capture", "url", result.URL(), "err", err)
	}
}

func (c *Crawler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Sleep waits for d or until ctx is done, whichever comes first.
// A non-positive d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
