// ABOUTME: Retriever returns the top-k chunks for a query from the shared index
// ABOUTME: Deliberately thin; similarity order from the index is final
package pipeline

import (
	"context"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// Searcher is the index-facing contract of the retriever.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]models.ScoredChunk, error)
}

// Retriever wraps the embedding index with a fixed k.
type Retriever struct {
	index Searcher
	topK  int
}

// NewRetriever creates a Retriever with the configured result count.
func NewRetriever(index Searcher, topK int) *Retriever {
	return &Retriever{index: index, topK: topK}
}

// Retrieve returns the most similar chunks for the query, best first.
// No additional filtering or re-ranking happens here.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]models.ScoredChunk, error) {
	return r.index.Search(ctx, query, r.topK)
}
