// Package pagecrawl fetches a single documentation page over HTTP and
// extracts a fixed set of structured fields (title, headings, paragraphs,
// clean text, JSON-LD blocks and tables) into a page record. Records are
// served through a CLI and through named MCP tools bound to fixed URLs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, mcp/).
package pagecrawl
