// Package markdown renders crawl results as Markdown reports using
// github.com/nao1215/markdown.
package markdown

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/fwojciec/pagecrawl"
	"github.com/nao1215/markdown"
)

// Ensure Renderer implements pagecrawl.Renderer at compile time.
var _ pagecrawl.Renderer = (*Renderer)(nil)

// Renderer writes human-readable Markdown reports.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Extension returns ".md".
func (r *Renderer) Extension() string {
	return ".md"
}

// RenderResult writes a report for a page record, or a failure notice.
func (r *Renderer) RenderResult(w io.Writer, result *pagecrawl.CrawlResult) error {
	md := markdown.NewMarkdown(w)
	if result.Failed() {
		writeFailure(md, result.Failure)
		return md.Build()
	}

	page := result.Page
	writeTitle(md, page.Title, page.URL)
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", page.URL},
			{"Status", strconv.Itoa(page.StatusCode)},
			{"Headings", strconv.Itoa(page.HeadingCount())},
			{"Paragraphs", strconv.Itoa(len(page.Paragraphs))},
			{"Tables", strconv.Itoa(len(page.Tables))},
		},
	})
	md.PlainText("")

	writeHeadings(md, page.Headings)
	writeParagraphs(md, page.Paragraphs)
	writeTables(md, page.Tables)
	if err := writeStructuredData(md, page.StructuredData); err != nil {
		return err
	}

	return md.Build()
}

// RenderSummary writes a summary table followed by the text preview.
func (r *Renderer) RenderSummary(w io.Writer, summary *pagecrawl.SummaryResult) error {
	md := markdown.NewMarkdown(w)
	if summary.Failed() {
		writeFailure(md, summary.Failure)
		return md.Build()
	}

	s := summary.Summary
	writeTitle(md, s.Title, s.URL)
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", s.URL},
			{"Description", s.MetaDescription},
			{"Headings", strconv.Itoa(s.HeadingsCount)},
			{"Paragraphs", strconv.Itoa(s.ParagraphsCount)},
			{"Links", strconv.Itoa(s.LinksCount)},
			{"Images", strconv.Itoa(s.ImagesCount)},
			{"Structured data", strconv.FormatBool(s.HasStructuredData)},
			{"Crawled", formatTimestamp(s.CrawlTimestamp)},
		},
	})
	md.PlainText("")

	if s.TextPreview != "" {
		md.H2("Preview")
		md.PlainText("")
		md.PlainText(s.TextPreview)
		md.PlainText("")
	}

	return md.Build()
}

func writeTitle(md *markdown.Markdown, title, url string) {
	if title == "" {
		title = url
	}
	md.H1(title)
	md.PlainText("")
}

func writeFailure(md *markdown.Markdown, f *pagecrawl.CrawlFailure) {
	md.H1("Crawl failed")
	md.PlainText("")
	md.Cautionf("%s could not be crawled: %s", f.URL, f.Error)
	md.PlainText("")
	md.PlainTextf("Attempted at %s.", formatTimestamp(f.CrawlTimestamp))
}

func writeHeadings(md *markdown.Markdown, headings map[string][]string) {
	var items []string
	for _, level := range pagecrawl.HeadingLevels {
		for _, text := range headings[level] {
			items = append(items, level+": "+text)
		}
	}
	if len(items) == 0 {
		return
	}
	md.H2("Headings")
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}

func writeParagraphs(md *markdown.Markdown, paragraphs []string) {
	if len(paragraphs) == 0 {
		return
	}
	md.H2("Paragraphs")
	md.PlainText("")
	for _, p := range paragraphs {
		md.PlainText(p)
		md.PlainText("")
	}
}

func writeTables(md *markdown.Markdown, tables []pagecrawl.Table) {
	if len(tables) == 0 {
		return
	}
	md.H2("Tables")
	md.PlainText("")
	for i, t := range tables {
		md.H3("Table " + strconv.Itoa(i+1))
		md.PlainText("")
		header, rows := rectangular(t)
		md.Table(markdown.TableSet{Header: header, Rows: rows})
		md.PlainText("")
	}
}

func writeStructuredData(md *markdown.Markdown, data []any) error {
	if len(data) == 0 {
		return nil
	}
	md.H2("Structured data")
	md.PlainText("")
	for _, v := range data {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		md.CodeBlocks(markdown.SyntaxHighlight("json"), string(b))
		md.PlainText("")
	}
	return nil
}

// rectangular pads the header and every row to the widest row so the
// Markdown table has a consistent column count.
func rectangular(t pagecrawl.Table) ([]string, [][]string) {
	width := len(t.Headers)
	for _, row := range t.Rows {
		width = max(width, len(row))
	}
	header := pad(t.Headers, width)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = pad(row, width)
	}
	return header, rows
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func formatTimestamp(ts float64) string {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC().Format(time.RFC3339)
}
