// ABOUTME: MCP tool definitions and registration for the document assistant
// ABOUTME: Exposes the query service and corpus listing over stdio transport
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sozialinfo/fragdoc/internal/pipeline"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, service *pipeline.Service, corpus *pipeline.Corpus) *Handlers {
	handlers := &Handlers{
		service: service,
		corpus:  corpus,
	}

	// 1. ask_documents - answer a question from the PDF corpus
	server.AddTool(mcp.Tool{
		Name:        "ask_documents",
		Description: "Answer a question about the loaded PDF corpus. Returns a German answer with document/page citations plus the retrieved source chunks.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The question to answer, in German",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskDocuments)

	// 2. list_sources - list the documents in the corpus
	server.AddTool(mcp.Tool{
		Name:        "list_sources",
		Description: "List the source documents of the corpus with their page and chunk counts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListSources)

	return handlers
}
