package goquery

import (
	"strings"

	"github.com/fwojciec/pagecrawl"
)

// Title returns the trimmed text of the first title element, or "" if the
// document has none.
func Title(doc *Document) string {
	titles := doc.Find("title")
	if len(titles) == 0 {
		return ""
	}
	return titles[0].TrimmedText()
}

// Headings returns the trimmed text of every h1 through h6 element keyed by
// level. Every level is present, empty levels map to an empty list.
func Headings(doc *Document) map[string][]string {
	headings := pagecrawl.NewHeadings()
	for _, level := range pagecrawl.HeadingLevels {
		for _, h := range doc.Find(level) {
			headings[level] = append(headings[level], h.TrimmedText())
		}
	}
	return headings
}

// Paragraphs returns the trimmed text of every p element, skipping
// paragraphs without text.
func Paragraphs(doc *Document) []string {
	paragraphs := []string{}
	for _, p := range doc.Find("p") {
		if text := p.TrimmedText(); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// CleanText returns the visible text of the document as one normalized
// string. Script and style contents are excluded.
func CleanText(doc *Document) string {
	return NormalizeText(doc.Without("script, style").Text())
}

// NormalizeText flattens text into single-space separated fragments.
// The text is split into lines, each line is trimmed and split again on
// double spaces, and the non-empty trimmed fragments are joined with one
// space. NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	var chunks []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, " ")
}

// isLineBreak reports whether r ends a line. The set matches the universal
// newline boundaries: LF, CR, VT, FF, the file/group/record separators, NEL
// and the Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
