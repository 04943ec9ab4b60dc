package goquery

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// structuredDataSelector matches JSON-LD blocks.
const structuredDataSelector = `script[type="application/ld+json"]`

var errTrailingData = errors.New("trailing data after JSON value")

// StructuredData returns the parsed JSON value of every JSON-LD script in
// document order. Empty and malformed blocks are skipped.
func StructuredData(doc *Document) []any {
	data := []any{}
	for _, script := range doc.Find(structuredDataSelector) {
		text := script.Text()
		if text == "" {
			continue
		}
		v, err := decodeJSON(text)
		if err != nil {
			continue
		}
		data = append(data, v)
	}
	return data
}

// decodeJSON decodes exactly one JSON value. Numbers are kept as
// json.Number so large identifiers survive a round trip. NaN and Infinity
// literals are not JSON and fail the decode.
func decodeJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}
