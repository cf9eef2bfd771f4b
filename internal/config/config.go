// ABOUTME: Centralized configuration for the fragdoc pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig marks configuration values that fail validation.
// Validation errors are fatal at startup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the question-answering pipeline
type Config struct {
	// Corpus settings
	DocumentsDir string
	ChunksFile   string
	AuditLogFile string

	// Chunking settings
	ChunkSize    int
	ChunkOverlap int

	// Retrieval settings
	TopK int

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Generation settings
	MaxTokens   int
	Temperature float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DocumentsDir:   getEnv("FRAGDOC_DOCUMENTS_DIR", "./documents"),
		ChunksFile:     getEnv("FRAGDOC_CHUNKS_FILE", "chunks.json"),
		AuditLogFile:   getEnv("FRAGDOC_AUDIT_LOG", "fragdoc_audit.log"),
		ChunkSize:      getEnvInt("FRAGDOC_CHUNK_SIZE", 1500),
		ChunkOverlap:   getEnvInt("FRAGDOC_CHUNK_OVERLAP", 100),
		TopK:           getEnvInt("FRAGDOC_TOP_K", 8),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("FRAGDOC_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("FRAGDOC_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 120*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		MaxTokens:      getEnvInt("FRAGDOC_MAX_TOKENS", 1024),
		Temperature:    getEnvFloat("FRAGDOC_TEMPERATURE", 0.1),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: FRAGDOC_CHUNK_SIZE must be positive, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("%w: FRAGDOC_CHUNK_OVERLAP must not be negative, got %d", ErrInvalidConfig, c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("%w: FRAGDOC_CHUNK_OVERLAP (%d) must be smaller than FRAGDOC_CHUNK_SIZE (%d)",
			ErrInvalidConfig, c.ChunkOverlap, c.ChunkSize)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("%w: FRAGDOC_TOP_K must be positive, got %d", ErrInvalidConfig, c.TopK)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%w: FRAGDOC_MAX_TOKENS must be positive, got %d", ErrInvalidConfig, c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: FRAGDOC_TEMPERATURE must be 0-2, got %f", ErrInvalidConfig, c.Temperature)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("%w: OPENAI_MAX_RETRIES must be 0-10, got %d", ErrInvalidConfig, c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
