package pagecrawl

import (
	"encoding/json"
	"time"
)

// FailedStatus is the status reported by a failed crawl.
const FailedStatus = "failed"

// HeadingLevels lists the heading tags in level order.
var HeadingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// PageRecord is the structured output of one successful extraction.
type PageRecord struct {
	URL            string              `json:"url"`
	StatusCode     int                 `json:"status_code"`
	Title          string              `json:"title"`
	Headings       map[string][]string `json:"headings"`
	Paragraphs     []string            `json:"paragraphs"`
	TextContent    string              `json:"text_content"`
	StructuredData []any               `json:"structured_data"`
	Tables         []Table             `json:"tables"`
}

// HeadingCount returns the total number of headings across all levels.
func (r *PageRecord) HeadingCount() int {
	var n int
	for _, texts := range r.Headings {
		n += len(texts)
	}
	return n
}

// NewHeadings returns a heading map holding an empty list for every level.
func NewHeadings() map[string][]string {
	headings := make(map[string][]string, len(HeadingLevels))
	for _, level := range HeadingLevels {
		headings[level] = []string{}
	}
	return headings
}

// Table is a table extracted from a page. The first non-empty row is the
// header row.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	RawRows [][]string `json:"raw_rows"`
}

// NewTable builds a table from its non-empty rows.
// Returns nil if rows is empty.
func NewTable(rows [][]string) *Table {
	if len(rows) == 0 {
		return nil
	}
	body := make([][]string, 0, len(rows)-1)
	body = append(body, rows[1:]...)
	return &Table{
		Headers: rows[0],
		Rows:    body,
		RawRows: rows,
	}
}

// CrawlFailure is the record produced when a page could not be fetched.
type CrawlFailure struct {
	URL            string  `json:"url"`
	Error          string  `json:"error"`
	Status         string  `json:"status"`
	CrawlTimestamp float64 `json:"crawl_timestamp"`
}

// NewCrawlFailure builds a failure record for url stamped with at.
func NewCrawlFailure(url string, err error, at time.Time) *CrawlFailure {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &CrawlFailure{
		URL:            url,
		Error:          msg,
		Status:         FailedStatus,
		CrawlTimestamp: Timestamp(at),
	}
}

// Timestamp converts t to fractional Unix seconds.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// CrawlResult holds the outcome of crawling one page.
// Exactly one of Page or Failure is set.
type CrawlResult struct {
	Page    *PageRecord
	Failure *CrawlFailure
}

// Failed reports whether the crawl produced a failure record.
func (r *CrawlResult) Failed() bool {
	return r.Failure != nil
}

// URL returns the crawled URL.
func (r *CrawlResult) URL() string {
	switch {
	case r.Failure != nil:
		return r.Failure.URL
	case r.Page != nil:
		return r.Page.URL
	}
	return ""
}

// MarshalJSON serializes whichever record is set, so a failed crawl carries
// only the failure fields.
func (r CrawlResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Failure != nil:
		return json.Marshal(r.Failure)
	case r.Page != nil:
		return json.Marshal(r.Page)
	}
	return nil, Errorf(EINTERNAL, "empty crawl result")
}
