package pagecrawl

import (
	"encoding/json"
	"time"
)

// PreviewLength is the number of characters of text content kept in a
// summary preview.
const PreviewLength = 500

// PageSummary is a condensed view of a crawled page.
type PageSummary struct {
	URL               string  `json:"url"`
	Title             string  `json:"title"`
	MetaDescription   string  `json:"meta_description"`
	HeadingsCount     int     `json:"headings_count"`
	ParagraphsCount   int     `json:"paragraphs_count"`
	LinksCount        int     `json:"links_count"`
	ImagesCount       int     `json:"images_count"`
	HasStructuredData bool    `json:"has_structured_data"`
	TextPreview       string  `json:"text_preview"`
	CrawlTimestamp    float64 `json:"crawl_timestamp"`
}

// Summarize condenses a page record and its details into a PageSummary
// stamped with at. A nil details value counts as no links or images.
func Summarize(page *PageRecord, details *PageDetails, at time.Time) *PageSummary {
	if details == nil {
		details = &PageDetails{}
	}
	return &PageSummary{
		URL:               page.URL,
		Title:             page.Title,
		MetaDescription:   details.MetaDescription,
		HeadingsCount:     page.HeadingCount(),
		ParagraphsCount:   len(page.Paragraphs),
		LinksCount:        len(details.Links),
		ImagesCount:       len(details.Images),
		HasStructuredData: len(page.StructuredData) > 0,
		TextPreview:       Preview(page.TextContent, PreviewLength),
		CrawlTimestamp:    Timestamp(at),
	}
}

// Preview returns the first n characters of s followed by "..." when s is
// longer than n characters.
func Preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// SummaryResult holds the outcome of summarizing one page.
// Exactly one of Summary or Failure is set.
type SummaryResult struct {
	Summary *PageSummary
	Failure *CrawlFailure
}

// Failed reports whether the crawl behind the summary failed.
func (r *SummaryResult) Failed() bool {
	return r.Failure != nil
}

// MarshalJSON serializes whichever record is set.
func (r SummaryResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Failure != nil:
		return json.Marshal(r.Failure)
	case r.Summary != nil:
		return json.Marshal(r.Summary)
	}
	return nil, Errorf(EINTERNAL, "empty summary result")
}
