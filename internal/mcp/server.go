// Package mcp provides a Model Context Protocol server for decker.
// It exposes deck operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/decker/internal/config"
)

// NewServer creates an MCP server with all decker tools registered.
func NewServer(version string, cfg config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "decker",
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write the output
// file. Generation is an idempotent overwrite, never destructive to cards.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all decker tools to the server.
func registerTools(server *mcp.Server, cfg config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "boards",
		Description: "List all boards with their columns and per-column card counts.",
		Annotations: readOnlyAnnotations(),
	}, handleBoards(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "card",
		Description: "Fetch a single card by board name and card ID: title, column, status, and body.",
		Annotations: readOnlyAnnotations(),
	}, handleCard(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show tree statistics: board, column, and card counts, plus whether the output document exists.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Render the aggregated deck document. Returns the markdown; set write=true to also overwrite the output file.",
		Annotations: writeAnnotations(),
	}, handleGenerate(cfg))
}
