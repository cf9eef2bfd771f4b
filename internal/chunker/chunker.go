// ABOUTME: Splits loaded documents into overlapping fixed-size passages
// ABOUTME: Appends the source citation to each chunk so provenance travels with the text
package chunker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// Chunker slides a fixed-size window over each document's text.
// Consecutive chunks overlap by the configured amount; a chunk that spans
// a page break is attributed to the page where it starts.
type Chunker struct {
	size    int
	overlap int
}

// New creates a Chunker. The overlap must be smaller than the chunk size.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// pageSpan records where a page's text begins in the joined document text.
type pageSpan struct {
	start  int
	number int
}

// ChunkDocument splits one document into overlapping chunks.
// Page texts are joined with a newline so the window can cross page breaks;
// the recorded page offsets keep attribution intact. Window arithmetic is
// done in runes so umlauts are never split mid-character.
func (c *Chunker) ChunkDocument(doc models.SourceDocument) []models.Chunk {
	var text []rune
	var spans []pageSpan
	for i, page := range doc.Pages {
		if i > 0 {
			text = append(text, '\n')
		}
		spans = append(spans, pageSpan{start: len(text), number: page.Number})
		text = append(text, []rune(page.Text)...)
	}
	if len(text) == 0 {
		return nil
	}

	step := c.size - c.overlap
	var chunks []models.Chunk
	for seq, start := 0, 0; ; seq, start = seq+1, start+step {
		end := start + c.size
		if end > len(text) {
			end = len(text)
		}

		chunk := models.Chunk{
			ID:       newChunkID(),
			Content:  string(text[start:end]),
			Document: doc.Name,
			Page:     pageAt(spans, start),
			Sequence: seq,
		}
		chunk.Content += " " + chunk.Citation()
		chunks = append(chunks, chunk)

		if end == len(text) {
			break
		}
	}
	return chunks
}

// ChunkAll splits every document and returns the chunks in corpus order.
func (c *Chunker) ChunkAll(docs []models.SourceDocument) []models.Chunk {
	var all []models.Chunk
	for _, doc := range docs {
		all = append(all, c.ChunkDocument(doc)...)
	}
	return all
}

// pageAt returns the page number owning the given rune offset.
func pageAt(spans []pageSpan, offset int) int {
	page := spans[0].number
	for _, s := range spans {
		if s.start > offset {
			break
		}
		page = s.number
	}
	return page
}

func newChunkID() string {
	return "chunk_" + uuid.New().String()
}
