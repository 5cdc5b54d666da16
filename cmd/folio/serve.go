package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	foliomcp "github.com/gorewood/folio/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run folio as a Model Context Protocol (MCP) server over stdio.

This lets MCP-capable agents render templates and read saved documents.
All tools are read-only.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "folio": {
        "command": "folio",
        "args": ["serve"]
      }
    }
  }

Available tools: render_template, render_document, list_documents, list_templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			reg, err := a.Registry(ctx)
			if err != nil {
				return err
			}
			server := foliomcp.NewServer(buildVersion(), foliomcp.Deps{
				Store:     a.Store(),
				Templates: reg,
				Renderer:  a.Renderer(),
				Logger:    a.log().With("component", "mcp"),
			})
			a.log().Info("mcp server starting", "data_dir", a.settings.DataDir)
			return server.Run(ctx, &mcp.StdioTransport{})
		},
	}
}
