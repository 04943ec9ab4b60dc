package goquery_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/pagecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://example.com/docs/page")
	require.NoError(t, err)
	doc, err := goquery.ParseString(`
<a href="other">Relative</a>
<a href="https://cdn.example.org/x"> Absolute </a>
<a href="#top">Anchor</a>
<a>No href</a>`)
	require.NoError(t, err)

	links := goquery.Links(doc, base)

	require.Len(t, links, 3)
	assert.Equal(t, "https://example.com/docs/other", links[0].URL)
	assert.Equal(t, "Relative", links[0].Text)
	assert.Equal(t, "https://cdn.example.org/x", links[1].URL)
	assert.Equal(t, "Absolute", links[1].Text)
	assert.Equal(t, "https://example.com/docs/page#top", links[2].URL)
	assert.Equal(t, "#top", links[2].RelativeURL)
}

func TestImages(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://example.com/")
	require.NoError(t, err)
	doc, err := goquery.ParseString(`<img src="/a.png" alt="A" title="T"><img src=""><img alt="none">`)
	require.NoError(t, err)

	images := goquery.Images(doc, base)

	require.Len(t, images, 1)
	assert.Equal(t, "https://example.com/a.png", images[0].Src)
	assert.Equal(t, "A", images[0].Alt)
	assert.Equal(t, "T", images[0].Title)
}

func TestForms(t *testing.T) {
	t.Parallel()

	doc, err := goquery.ParseString(`
<form action="/search">
	<input name="q" type="search" required>
	<select name="lang"></select>
	<textarea name="notes"></textarea>
</form>
<form method="post"></form>`)
	require.NoError(t, err)

	forms := goquery.Forms(doc)

	require.Len(t, forms, 2)
	assert.Equal(t, "/search", forms[0].Action)
	assert.Equal(t, "get", forms[0].Method)
	require.Len(t, forms[0].Inputs, 3)
	assert.Equal(t, "q", forms[0].Inputs[0].Name)
	assert.Equal(t, "search", forms[0].Inputs[0].Type)
	assert.True(t, forms[0].Inputs[0].Required)
	assert.Equal(t, "lang", forms[0].Inputs[1].Name)
	assert.False(t, forms[0].Inputs[1].Required)
	assert.Equal(t, "notes", forms[0].Inputs[2].Name)

	assert.Equal(t, "", forms[1].Action)
	assert.Equal(t, "post", forms[1].Method)
	assert.Empty(t, forms[1].Inputs)
}

func TestMetaDescription(t *testing.T) {
	t.Parallel()

	doc, err := goquery.ParseString(`<meta name="description" content="About us"><meta name="description" content="Second">`)
	require.NoError(t, err)

	assert.Equal(t, "About us", goquery.MetaDescription(doc))
}
