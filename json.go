package pagecrawl

import (
	"encoding/json"
	"io"
)

// Ensure JSONRenderer implements Renderer at compile time.
var _ Renderer = (*JSONRenderer)(nil)

// JSONRenderer writes results as two-space indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// RenderResult writes the crawl result.
func (r *JSONRenderer) RenderResult(w io.Writer, result *CrawlResult) error {
	return r.encode(w, result)
}

// RenderSummary writes the summary result.
func (r *JSONRenderer) RenderSummary(w io.Writer, summary *SummaryResult) error {
	return r.encode(w, summary)
}

// Extension returns ".json".
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func (r *JSONRenderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// Page text routinely contains <, > and &.
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
