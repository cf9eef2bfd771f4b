// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Bootstrapping, truncation, and flag validation helpers
package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/sozialinfo/fragdoc/internal/config"
	"github.com/sozialinfo/fragdoc/internal/pipeline"
)

// buildService loads config and builds the full pipeline. The startup phase
// is sequential and blocking; no query runs before it completes.
func buildService(ctx context.Context, overrides ...func(*config.Config)) (*pipeline.Service, *pipeline.Corpus, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	service, corpus, err := pipeline.Bootstrap(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing pipeline: %w", err)
	}
	if verbose {
		log.Printf("Index ready: %d document(s), %d chunk(s), top-k %d",
			len(corpus.Documents), len(corpus.Chunks), cfg.TopK)
	}
	return service, corpus, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
