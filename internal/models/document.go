// ABOUTME: SourceDocument and Page models for the loaded PDF corpus
// ABOUTME: Built once by the loader at startup, immutable afterwards
package models

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// SourceDocument is one PDF from the corpus with its pages in reading order.
type SourceDocument struct {
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
}

// PageCount returns the number of pages that yielded text.
func (d SourceDocument) PageCount() int {
	return len(d.Pages)
}
