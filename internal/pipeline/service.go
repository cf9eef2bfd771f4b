// ABOUTME: Query service orchestrating retrieve → assemble → generate
// ABOUTME: Stateless across requests; only the immutable index is shared
package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// NoContextAnswer is returned when retrieval yields nothing. This is a valid
// answer, not an error; it is distinct from a failed query.
const NoContextAnswer = "Es wurden keine relevanten Textstellen in den Dokumenten gefunden."

// Pipeline bundles the per-process components built once at startup.
// It is immutable after construction and safe to share across requests.
type Pipeline struct {
	Retriever *Retriever
	Assembler *Assembler
	Generator *Generator
}

// AuditLogger records answered queries. Implementations must tolerate being
// called concurrently; failures are logged and swallowed.
type AuditLogger interface {
	Record(query, answer string) error
}

// Service answers one query end-to-end per call.
type Service struct {
	pipeline *Pipeline
	audit    AuditLogger // may be nil
}

// NewService creates a query service over a built pipeline. audit may be nil.
func NewService(p *Pipeline, audit AuditLogger) *Service {
	return &Service{pipeline: p, audit: audit}
}

// Ask runs the full pipeline for one query. On failure it returns a
// *StageError naming the failed stage; partial output is never returned.
func (s *Service) Ask(ctx context.Context, query string) (*models.Answer, error) {
	query = strings.TrimSpace(query)

	retrieved, err := s.pipeline.Retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, &StageError{Stage: StageRetrieve, Err: err}
	}
	if len(retrieved) == 0 {
		answer := &models.Answer{Text: NoContextAnswer}
		s.record(query, answer.Text)
		return answer, nil
	}

	prompt := s.pipeline.Assembler.Assemble(query, retrieved)

	text, err := s.pipeline.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, &StageError{Stage: StageGenerate, Err: err}
	}

	used := make([]models.Chunk, len(retrieved))
	for i, r := range retrieved {
		used[i] = r.Chunk
	}

	answer := &models.Answer{Text: text, UsedChunks: used}
	s.record(query, answer.Text)
	return answer, nil
}

// Retrieve exposes the retrieval stage alone, for surfaces that show the
// matched context without generating an answer.
func (s *Service) Retrieve(ctx context.Context, query string) ([]models.ScoredChunk, error) {
	retrieved, err := s.pipeline.Retriever.Retrieve(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, &StageError{Stage: StageRetrieve, Err: err}
	}
	return retrieved, nil
}

func (s *Service) record(query, answer string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(query, answer); err != nil {
		log.Printf("Warning: audit log write failed: %v", err)
	}
}
