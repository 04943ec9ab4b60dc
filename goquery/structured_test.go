package goquery_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredData(t *testing.T) {
	t.Parallel()

	t.Run("skips malformed blocks", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`
<script type="application/ld+json">{"@type": "Organization"}</script>
<script type="application/ld+json">{"@type": </script>`)
		require.NoError(t, err)

		data := goquery.StructuredData(doc)

		require.Len(t, data, 1)
		assert.Equal(t, map[string]any{"@type": "Organization"}, data[0])
	})

	t.Run("keeps document order and non-object values", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`
<script type="application/ld+json">[1, 2]</script>
<script type="application/ld+json">"text"</script>`)
		require.NoError(t, err)

		data := goquery.StructuredData(doc)

		require.Len(t, data, 2)
		assert.Equal(t, []any{json.Number("1"), json.Number("2")}, data[0])
		assert.Equal(t, "text", data[1])
	})

	t.Run("ignores empty blocks and other script types", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`
<script type="application/ld+json"></script>
<script type="application/json">{"a": 1}</script>
<script>{"b": 2}</script>`)
		require.NoError(t, err)

		assert.Equal(t, []any{}, goquery.StructuredData(doc))
	})

	t.Run("skips blocks with non-standard number literals", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`
<script type="application/ld+json">{"ratingValue": NaN}</script>
<script type="application/ld+json">{"price": Infinity}</script>
<script type="application/ld+json">{"price": 10.5}</script>`)
		require.NoError(t, err)

		data := goquery.StructuredData(doc)

		require.Len(t, data, 1)
		assert.Equal(t, map[string]any{"price": json.Number("10.5")}, data[0])
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(`<script type="application/ld+json">{"a": 1} {"b": 2}</script>`)
		require.NoError(t, err)

		assert.Empty(t, goquery.StructuredData(doc))
	})
}
