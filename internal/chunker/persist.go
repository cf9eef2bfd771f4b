// ABOUTME: Persists the chunk list as JSON records for offline inspection
// ABOUTME: One {content, metadata} record per chunk, UTF-8 without ASCII escaping
package chunker

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// chunkRecord mirrors the on-disk layout: the chunk text plus its metadata.
type chunkRecord struct {
	Content  string        `json:"content"`
	Metadata chunkMetadata `json:"metadata"`
}

type chunkMetadata struct {
	Source string `json:"source"`
	Page   int    `json:"page"`
	Seq    int    `json:"seq"`
}

// SaveChunks writes the chunks to path as a JSON array in corpus order.
// Non-ASCII characters are written verbatim so the German source text
// stays readable in the file.
func SaveChunks(path string, chunks []models.Chunk) error {
	records := make([]chunkRecord, len(chunks))
	for i, ch := range chunks {
		records[i] = chunkRecord{
			Content: ch.Content,
			Metadata: chunkMetadata{
				Source: ch.Document,
				Page:   ch.Page,
				Seq:    ch.Sequence,
			},
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chunk file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding chunks: %w", err)
	}
	return nil
}

// LoadChunks reads a chunk file written by SaveChunks. Chunk IDs are opaque
// and not persisted; fresh ones are assigned on load.
func LoadChunks(path string) ([]models.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chunk file %s: %w", path, err)
	}

	var records []chunkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding chunk file %s: %w", path, err)
	}

	chunks := make([]models.Chunk, len(records))
	for i, rec := range records {
		chunks[i] = models.Chunk{
			ID:       newChunkID(),
			Content:  rec.Content,
			Document: rec.Metadata.Source,
			Page:     rec.Metadata.Page,
			Sequence: rec.Metadata.Seq,
		}
	}
	return chunks, nil
}
