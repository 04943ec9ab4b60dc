package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pagecrawl"
)

var _ pagecrawl.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of pagecrawl.OutputWriter.
type OutputWriter struct {
	WriteOutputFn func(ctx context.Context, path string, data []byte) error
}

func (w *OutputWriter) WriteOutput(ctx context.Context, path string, data []byte) error {
	return w.WriteOutputFn(ctx, path, data)
}

var _ pagecrawl.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pagecrawl.Renderer.
type Renderer struct {
	RenderResultFn  func(w io.Writer, result *pagecrawl.CrawlResult) error
	RenderSummaryFn func(w io.Writer, summary *pagecrawl.SummaryResult) error
	ExtensionFn     func() string
}

func (r *Renderer) RenderResult(w io.Writer, result *pagecrawl.CrawlResult) error {
	return r.RenderResultFn(w, result)
}

func (r *Renderer) RenderSummary(w io.Writer, summary *pagecrawl.SummaryResult) error {
	return r.RenderSummaryFn(w, summary)
}

func (r *Renderer) Extension() string {
	return r.ExtensionFn()
}
