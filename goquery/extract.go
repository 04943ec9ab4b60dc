package goquery

import (
	"github.com/fwojciec/pagecrawl"
)

// Ensure Extractor implements pagecrawl.Extractor at compile time.
var _ pagecrawl.Extractor = (*Extractor)(nil)

// Extractor builds page records from HTML using goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the fetched HTML and returns its page record.
func (e *Extractor) Extract(page *pagecrawl.FetchedPage) (*pagecrawl.PageRecord, error) {
	doc, err := ParseString(page.HTML)
	if err != nil {
		return nil, pagecrawl.Errorf(pagecrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(doc, page.URL, page.StatusCode), nil
}

// ExtractDocument runs every extraction pass over doc and assembles the
// record. Passes are independent and never fail; absent elements yield
// empty values.
func (e *Extractor) ExtractDocument(doc *Document, url string, statusCode int) *pagecrawl.PageRecord {
	return &pagecrawl.PageRecord{
		URL:            url,
		StatusCode:     statusCode,
		Title:          Title(doc),
		Headings:       Headings(doc),
		Paragraphs:     Paragraphs(doc),
		TextContent:    CleanText(doc),
		StructuredData: StructuredData(doc),
		Tables:         Tables(doc),
	}
}

// ExtractDetails parses the fetched HTML and returns the elements that are
// not part of the page record.
func (e *Extractor) ExtractDetails(page *pagecrawl.FetchedPage) (*pagecrawl.PageDetails, error) {
	doc, err := ParseString(page.HTML)
	if err != nil {
		return nil, pagecrawl.Errorf(pagecrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	return Details(doc, page.URL), nil
}
