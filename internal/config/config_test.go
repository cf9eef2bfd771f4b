// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and chunk/retrieval validation
package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if cfg.DocumentsDir != "./documents" {
		t.Errorf("DocumentsDir = %s, want ./documents", cfg.DocumentsDir)
	}
	if cfg.ChunksFile != "chunks.json" {
		t.Errorf("ChunksFile = %s, want chunks.json", cfg.ChunksFile)
	}
	if cfg.ChunkSize != 1500 {
		t.Errorf("ChunkSize = %d, want 1500", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 100 {
		t.Errorf("ChunkOverlap = %d, want 100", cfg.ChunkOverlap)
	}
	if cfg.TopK != 8 {
		t.Errorf("TopK = %d, want 8", cfg.TopK)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %s, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v, want 120s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want 1024", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.1 {
		t.Errorf("Temperature = %f, want 0.1", cfg.Temperature)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("FRAGDOC_DOCUMENTS_DIR", "/srv/pdfs")
	os.Setenv("FRAGDOC_CHUNK_SIZE", "1000")
	os.Setenv("FRAGDOC_CHUNK_OVERLAP", "50")
	os.Setenv("FRAGDOC_TOP_K", "10")
	os.Setenv("FRAGDOC_CHAT_MODEL", "gpt-4")
	os.Setenv("FRAGDOC_MAX_TOKENS", "2024")
	os.Setenv("FRAGDOC_TEMPERATURE", "0.2")
	os.Setenv("OPENAI_TIMEOUT", "60s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DocumentsDir != "/srv/pdfs" {
		t.Errorf("DocumentsDir = %s, want /srv/pdfs", cfg.DocumentsDir)
	}
	if cfg.ChunkSize != 1000 {
		t.Errorf("ChunkSize = %d, want 1000", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 50 {
		t.Errorf("ChunkOverlap = %d, want 50", cfg.ChunkOverlap)
	}
	if cfg.TopK != 10 {
		t.Errorf("TopK = %d, want 10", cfg.TopK)
	}
	if cfg.ChatModel != "gpt-4" {
		t.Errorf("ChatModel = %s, want gpt-4", cfg.ChatModel)
	}
	if cfg.MaxTokens != 2024 {
		t.Errorf("MaxTokens = %d, want 2024", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %f, want 0.2", cfg.Temperature)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Timeout)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }},
		{"overlap equals size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }},
		{"overlap exceeds size", func(c *Config) { c.ChunkOverlap = c.ChunkSize + 10 }},
		{"zero top-k", func(c *Config) { c.TopK = 0 }},
		{"zero max tokens", func(c *Config) { c.MaxTokens = 0 }},
		{"temperature out of range", func(c *Config) { c.Temperature = 2.5 }},
		{"too many retries", func(c *Config) { c.MaxRetries = 11 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			tt.modify(cfg)

			err = cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_InvalidOverlapIsFatal(t *testing.T) {
	os.Clearenv()
	os.Setenv("FRAGDOC_CHUNK_SIZE", "100")
	os.Setenv("FRAGDOC_CHUNK_OVERLAP", "100")

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}
