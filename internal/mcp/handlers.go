// ABOUTME: MCP tool handler implementations for the document assistant
// ABOUTME: Per-query failures become tool errors, never a server crash
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sozialinfo/fragdoc/internal/pipeline"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	service *pipeline.Service
	corpus  *pipeline.Corpus
}

// usedSource is the per-chunk provenance reported alongside the answer.
type usedSource struct {
	Document string `json:"document"`
	Page     int    `json:"page"`
}

// AskDocuments handles the ask_documents tool
func (h *Handlers) AskDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.service.Ask(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	sources := make([]usedSource, len(answer.UsedChunks))
	for i, ch := range answer.UsedChunks {
		sources[i] = usedSource{Document: ch.Document, Page: ch.Page}
	}

	response := map[string]interface{}{
		"answer":  answer.Text,
		"sources": sources,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListSources handles the list_sources tool
func (h *Handlers) ListSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type sourceInfo struct {
		Document string `json:"document"`
		Pages    int    `json:"pages"`
		Chunks   int    `json:"chunks"`
	}

	chunksPerDoc := make(map[string]int)
	for _, ch := range h.corpus.Chunks {
		chunksPerDoc[ch.Document]++
	}

	infos := make([]sourceInfo, len(h.corpus.Documents))
	for i, doc := range h.corpus.Documents {
		infos[i] = sourceInfo{
			Document: doc.Name,
			Pages:    doc.PageCount(),
			Chunks:   chunksPerDoc[doc.Name],
		}
	}

	responseJSON, err := json.Marshal(map[string]interface{}{"sources": infos})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
