package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagecrawl"
)

// Details collects the metadata, links, images and forms of doc. Relative
// references are resolved against pageURL.
func Details(doc *Document, pageURL string) *pagecrawl.PageDetails {
	base, _ := url.Parse(pageURL)
	return &pagecrawl.PageDetails{
		MetaDescription: MetaDescription(doc),
		Links:           Links(doc, base),
		Images:          Images(doc, base),
		Forms:           Forms(doc),
	}
}

// MetaDescription returns the content of the description meta tag, or "".
func MetaDescription(doc *Document) string {
	metas := doc.Find(`meta[name="description"]`)
	if len(metas) == 0 {
		return ""
	}
	return metas[0].Attr("content")
}

// Links returns every anchor that carries an href attribute.
func Links(doc *Document, base *url.URL) []pagecrawl.Link {
	links := []pagecrawl.Link{}
	for _, a := range doc.Find("a[href]") {
		href := a.Attr("href")
		links = append(links, pagecrawl.Link{
			Text:        a.TrimmedText(),
			URL:         resolveURL(base, href),
			RelativeURL: href,
		})
	}
	return links
}

// Images returns every img element with a non-empty src.
func Images(doc *Document, base *url.URL) []pagecrawl.Image {
	images := []pagecrawl.Image{}
	for _, img := range doc.Find("img") {
		src := img.Attr("src")
		if src == "" {
			continue
		}
		images = append(images, pagecrawl.Image{
			Src:   resolveURL(base, src),
			Alt:   img.Attr("alt"),
			Title: img.Attr("title"),
		})
	}
	return images
}

// Forms returns every form with its named and unnamed input controls.
// A form without a method attribute defaults to "get".
func Forms(doc *Document) []pagecrawl.Form {
	forms := []pagecrawl.Form{}
	for _, f := range doc.Find("form") {
		form := pagecrawl.Form{
			Action: f.Attr("action"),
			Method: f.AttrOr("method", "get"),
			Inputs: []pagecrawl.FormInput{},
		}
		for _, in := range f.FindTags("input", "textarea", "select") {
			form.Inputs = append(form.Inputs, pagecrawl.FormInput{
				Name:     in.Attr("name"),
				Type:     in.Attr("type"),
				Required: in.HasAttr("required"),
			})
		}
		forms = append(forms, form)
	}
	return forms
}

// resolveURL resolves href against base. References that cannot be parsed
// are returned unchanged.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
