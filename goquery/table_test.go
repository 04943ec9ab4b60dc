package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	t.Parallel()

	t.Run("splits header and data rows", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`<table>
<thead><tr><th> Name </th><th>Value</th></tr></thead>
<tbody>
<tr><td>a</td><td>1</td></tr>
<tr><td>b</td><td>2</td></tr>
</tbody>
</table>`)
		require.NoError(t, err)

		tables := goquery.Tables(doc)

		require.Len(t, tables, 1)
		assert.Equal(t, []string{"Name", "Value"}, tables[0].Headers)
		assert.Equal(t, [][]string{{"a", "1"}, {"b", "2"}}, tables[0].Rows)
		assert.Equal(t, [][]string{{"Name", "Value"}, {"a", "1"}, {"b", "2"}}, tables[0].RawRows)
	})

	t.Run("omits tables without cells", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`<table><tr></tr></table><table><tr><td>only</td></tr></table>`)
		require.NoError(t, err)

		tables := goquery.Tables(doc)

		require.Len(t, tables, 1)
		assert.Equal(t, []string{"only"}, tables[0].Headers)
		assert.Equal(t, [][]string{}, tables[0].Rows)
	})

	t.Run("keeps ragged rows and mixed cell order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`<table>
<tr><th>A</th><td>B</td><th>C</th></tr>
<tr><td>1</td></tr>
</table>`)
		require.NoError(t, err)

		tables := goquery.Tables(doc)

		require.Len(t, tables, 1)
		assert.Equal(t, []string{"A", "B", "C"}, tables[0].Headers)
		assert.Equal(t, [][]string{{"1"}}, tables[0].Rows)
	})
}
