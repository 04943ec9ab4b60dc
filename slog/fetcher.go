// Package slog provides logging decorators for pagecrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecrawl"
)

// Ensure LoggingFetcher implements pagecrawl.Fetcher.
var _ pagecrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   pagecrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagecrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the url, status, size and
// duration of the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *pagecrawl.FetchedPage, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("fetch",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		f.logger.Info("fetch",
			"url", url,
			"status", page.StatusCode,
			"bytes", len(page.HTML),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
