package pagecrawl

// PageDetails holds page elements that are extracted on request but are not
// part of PageRecord.
type PageDetails struct {
	MetaDescription string  `json:"meta_description"`
	Links           []Link  `json:"links"`
	Images          []Image `json:"images"`
	Forms           []Form  `json:"forms"`
}

// Link is an anchor with an href.
type Link struct {
	Text        string `json:"text"`
	URL         string `json:"url"`
	RelativeURL string `json:"relative_url"`
}

// Image is an img element with a non-empty src.
type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// Form is a form element and its input fields.
type Form struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Inputs []FormInput `json:"inputs"`
}

// FormInput is an input, textarea or select element within a form.
type FormInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}
