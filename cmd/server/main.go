// ABOUTME: Main entry point for the fragdoc MCP server with stdio transport
// ABOUTME: Builds the pipeline at startup, then serves ask/list tools
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sozialinfo/fragdoc/internal/config"
	fragdocmcp "github.com/sozialinfo/fragdoc/internal/mcp"
	"github.com/sozialinfo/fragdoc/internal/pipeline"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - the pipeline cannot start without it")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The startup phase is blocking: corpus load, chunking, and index build
	// complete before the first tool call is accepted
	log.Printf("Building index over %s ...", cfg.DocumentsDir)
	service, corpus, err := pipeline.Bootstrap(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}
	log.Printf("Index ready: %d document(s), %d chunk(s)", len(corpus.Documents), len(corpus.Chunks))

	server := mcpserver.NewMCPServer(
		"fragdoc Document Assistant",
		"0.1.0",
	)

	fragdocmcp.RegisterTools(server, service, corpus)

	log.Println("fragdoc MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
