package goquery

import "github.com/fwojciec/pagecrawl"

// Tables returns every table that has at least one row with cells.
// Rows without td or th cells are dropped; the first remaining row becomes
// the header row.
func Tables(doc *Document) []pagecrawl.Table {
	tables := []pagecrawl.Table{}
	for _, table := range doc.Find("table") {
		if t := pagecrawl.NewTable(tableRows(table)); t != nil {
			tables = append(tables, *t)
		}
	}
	return tables
}

func tableRows(table Node) [][]string {
	var rows [][]string
	for _, row := range table.Find("tr") {
		cells := row.FindTags("td", "th")
		if len(cells) == 0 {
			continue
		}
		texts := make([]string, len(cells))
		for i, cell := range cells {
			texts[i] = cell.TrimmedText()
		}
		rows = append(rows, texts)
	}
	return rows
}
