// Package goquery provides the goquery-based implementation of
// pagecrawl.Extractor: HTML parsing into a Document and the extraction
// passes that build a page record from it.
package goquery

import (
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page. It is never modified after parsing;
// passes that need to drop elements work on a copy.
type Document struct {
	sel *goquery.Selection
}

// Parse reads an HTML document from r.
// Scripting is disabled so that noscript content is parsed as markup
// rather than as raw text.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	return &Document{sel: goquery.NewDocumentFromNode(root).Selection}, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find returns the elements matching the CSS selector in document order.
func (d *Document) Find(selector string) []Node {
	return nodes(d.sel.Find(selector))
}

// FindTags returns the elements whose tag is one of tags, in document order.
func (d *Document) FindTags(tags ...string) []Node {
	return findTags(d.sel, tags)
}

// Text returns the concatenated text of every text node in the document.
func (d *Document) Text() string {
	return d.sel.Text()
}

// Without returns a copy of the document with every element matching the
// selector removed. The receiver is left untouched.
func (d *Document) Without(selector string) *Document {
	clone := d.sel.Clone()
	clone.Find(selector).Remove()
	return &Document{sel: clone}
}

// Node is a single element of a Document. Accessors return zero values for
// absent attributes instead of failing.
type Node struct {
	sel *goquery.Selection
}

// Tag returns the lowercase tag name of the element.
func (n Node) Tag() string {
	return goquery.NodeName(n.sel)
}

// Attr returns the value of the named attribute, or "" if absent.
func (n Node) Attr(name string) string {
	return n.sel.AttrOr(name, "")
}

// AttrOr returns the value of the named attribute, or def if absent.
// A present but empty attribute returns "".
func (n Node) AttrOr(name, def string) string {
	return n.sel.AttrOr(name, def)
}

// HasAttr reports whether the element carries the named attribute.
func (n Node) HasAttr(name string) bool {
	_, ok := n.sel.Attr(name)
	return ok
}

// Text returns the concatenated text of the element's descendants.
func (n Node) Text() string {
	return n.sel.Text()
}

// TrimmedText returns Text with leading and trailing whitespace removed.
func (n Node) TrimmedText() string {
	return strings.TrimSpace(n.sel.Text())
}

// Find returns the descendants matching the CSS selector in document order.
func (n Node) Find(selector string) []Node {
	return nodes(n.sel.Find(selector))
}

// FindTags returns the descendants whose tag is one of tags, in document order.
func (n Node) FindTags(tags ...string) []Node {
	return findTags(n.sel, tags)
}

func nodes(sel *goquery.Selection) []Node {
	result := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		result = append(result, Node{sel: s})
	})
	return result
}

// findTags walks every descendant once so that mixed tags keep their
// relative document order.
func findTags(sel *goquery.Selection, tags []string) []Node {
	var result []Node
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		if slices.Contains(tags, goquery.NodeName(s)) {
			result = append(result, Node{sel: s})
		}
	})
	return result
}
