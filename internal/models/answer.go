// ABOUTME: Per-query result types for retrieval and answer generation
// ABOUTME: ScoredChunk and Answer are transient, produced per request
package models

// ScoredChunk pairs a retrieved chunk with its similarity score.
type ScoredChunk struct {
	Chunk           Chunk   `json:"chunk"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Answer is the generated text plus the chunks it was conditioned on,
// in retrieval-rank order.
type Answer struct {
	Text       string  `json:"text"`
	UsedChunks []Chunk `json:"used_chunks"`
}
