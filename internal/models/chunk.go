// ABOUTME: Chunk represents an overlapping passage of a source document
// ABOUTME: Carries provenance (document, page, sequence) for citation
package models

import "fmt"

// Chunk is an overlapping slice of a document's text prepared for embedding.
// Content ends with the citation suffix produced by Citation, so provenance
// travels with the text into the model's context.
type Chunk struct {
	ID       string `json:"chunk_id"`
	Content  string `json:"content"`
	Document string `json:"source_document"`
	Page     int    `json:"page_number"`
	Sequence int    `json:"sequence_index"`
}

// Citation renders the source reference for this chunk from its metadata.
// The same string is appended to Content at chunking time.
func (c Chunk) Citation() string {
	return fmt.Sprintf("(%s, Seite %d)", c.Document, c.Page)
}
