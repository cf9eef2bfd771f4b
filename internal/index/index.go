// ABOUTME: In-memory embedding index over the chunk corpus
// ABOUTME: Built once at startup, read-only and safe for concurrent searches
package index

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// ErrEmptyIndex indicates Build was called with zero chunks. Like an empty
// corpus at load time, this is fatal at startup.
var ErrEmptyIndex = errors.New("cannot build index from zero chunks")

// Embedder is the embedding service boundary: deterministic for identical
// input, same model for indexing and querying.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Index holds one unit-length vector per chunk. With normalized vectors,
// cosine similarity reduces to a dot product. No writer exists after Build,
// so searches need no locking.
type Index struct {
	embedder Embedder
	chunks   []models.Chunk
	vectors  [][]float64 // vectors[i] corresponds to chunks[i]
}

// Build embeds every chunk and constructs the index. The chunk order is
// retained; it is the tie-break order for equal similarity scores.
func Build(ctx context.Context, embedder Embedder, chunks []models.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, ErrEmptyIndex
	}

	vectors := make([][]float64, len(chunks))
	for i, ch := range chunks {
		vec, err := embedder.Embed(ctx, ch.Content)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %s: %w", ch.ID, err)
		}
		normalize(vec)
		vectors[i] = vec
	}

	stored := make([]models.Chunk, len(chunks))
	copy(stored, chunks)

	return &Index{embedder: embedder, chunks: stored, vectors: vectors}, nil
}

// Search embeds the query and returns the k most similar chunks, descending
// by score. Ties keep chunk insertion order. Fewer than k results are only
// returned when the corpus itself has fewer chunks.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]models.ScoredChunk, error) {
	if k <= 0 {
		return nil, nil
	}

	qvec, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	normalize(qvec)

	results := make([]models.ScoredChunk, len(ix.chunks))
	for i := range ix.chunks {
		results[i] = models.ScoredChunk{
			Chunk:           ix.chunks[i],
			SimilarityScore: dot(qvec, ix.vectors[i]),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// Size returns the number of indexed chunks.
func (ix *Index) Size() int {
	return len(ix.chunks)
}

// normalize scales v to unit length in place. The zero vector stays zero.
func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// dot returns the dot product, 0 for mismatched dimensions.
func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
