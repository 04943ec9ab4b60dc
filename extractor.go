package pagecrawl

// Extractor turns fetched HTML into structured records.
// Implementations perform no network I/O.
type Extractor interface {
	// Extract parses the page and returns its record. The record carries
	// the page URL and status code.
	Extract(page *FetchedPage) (*PageRecord, error)

	// ExtractDetails parses the page and returns the elements that are not
	// part of PageRecord (meta description, links, images, forms).
	ExtractDetails(page *FetchedPage) (*PageDetails, error)
}
