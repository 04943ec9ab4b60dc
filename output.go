package pagecrawl

import (
	"context"
	"io"
)

// Renderer serializes crawl results and summaries.
type Renderer interface {
	RenderResult(w io.Writer, result *CrawlResult) error
	RenderSummary(w io.Writer, summary *SummaryResult) error
	// Extension returns the file extension for rendered output, with the dot.
	Extension() string
}

// OutputWriter persists rendered output.
type OutputWriter interface {
	// WriteOutput replaces the contents of path with data.
	WriteOutput(ctx context.Context, path string, data []byte) error
}
