// Package main provides the entry point for the decker CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/decker/internal/config"
	deckermcp "github.com/gorewood/decker/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run decker as a Model Context Protocol (MCP) server over stdio.

This exposes the board tree as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "decker": {
        "command": "decker",
        "args": ["serve"]
      }
    }
  }

Available tools: boards, card, status, generate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.ResolveRoot(rootFlag))
			if err != nil {
				return err
			}
			server := deckermcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
	cmd.Flags().StringVar(&rootFlag, "root", "", "Working tree root (default: $DECKER_ROOT or .)")
	return cmd
}
