// ABOUTME: Startup wiring: load corpus, chunk, build index, assemble service
// ABOUTME: Runs sequentially and blocking before any query is served
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/sozialinfo/fragdoc/internal/auditlog"
	"github.com/sozialinfo/fragdoc/internal/chunker"
	"github.com/sozialinfo/fragdoc/internal/config"
	"github.com/sozialinfo/fragdoc/internal/index"
	"github.com/sozialinfo/fragdoc/internal/llm"
	"github.com/sozialinfo/fragdoc/internal/loader"
	"github.com/sozialinfo/fragdoc/internal/models"
)

// Corpus is the loaded and chunked document set, kept for surfaces that
// report on sources (ingest summary, sources listing, MCP tools).
type Corpus struct {
	Documents []models.SourceDocument
	Chunks    []models.Chunk
}

// LoadCorpus loads and chunks the documents without touching any model
// backend. Used by commands that only need the chunk list.
func LoadCorpus(cfg *config.Config) (*Corpus, error) {
	docs, err := loader.LoadDirectory(cfg.DocumentsDir)
	if err != nil {
		return nil, err
	}

	c, err := chunker.New(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	return &Corpus{Documents: docs, Chunks: c.ChunkAll(docs)}, nil
}

// Bootstrap builds the whole pipeline: corpus load, index build, and service
// wiring. Startup errors abort the process start; the caller must not serve
// queries when an error is returned.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Service, *Corpus, error) {
	corpus, err := LoadCorpus(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	ix, err := index.Build(ctx, client, corpus.Chunks)
	if err != nil {
		return nil, nil, fmt.Errorf("building embedding index: %w", err)
	}

	assembler, err := NewAssembler(DefaultTemplate)
	if err != nil {
		return nil, nil, err
	}

	p := &Pipeline{
		Retriever: NewRetriever(ix, cfg.TopK),
		Assembler: assembler,
		Generator: NewGenerator(client, cfg.MaxTokens, float32(cfg.Temperature)),
	}

	// The audit trail is best-effort: an unwritable log file must not keep
	// the assistant from answering
	var audit AuditLogger
	if cfg.AuditLogFile != "" {
		l, err := auditlog.Open(cfg.AuditLogFile)
		if err != nil {
			log.Printf("Warning: audit log unavailable: %v", err)
		} else {
			audit = l
		}
	}

	return NewService(p, audit), corpus, nil
}
