// Package mcp provides a Model Context Protocol server for folio.
// It exposes document rendering and listing as read-only MCP tools.
package mcp

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/store"
	"github.com/gorewood/folio/internal/templates"
)

// Deps are the services the tools operate on.
type Deps struct {
	Store     store.Store
	Templates *templates.Registry
	Renderer  *render.Renderer
	Logger    *slog.Logger
}

// NewServer creates an MCP server with all folio tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	if deps.Renderer == nil {
		deps.Renderer = render.NewRenderer()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "folio",
		Version: version,
	}, nil)
	registerTools(server, deps)
	return server
}

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

func registerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "render_template",
		Description: "Render template markup against a JSON document. Placeholders are {{path}}; " +
			"repeated sections are {{#each path}}...{{/each}} with this/this.field inside. " +
			"Never fails: problems are returned as diagnostics.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderTemplate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_document",
		Description: "Render a stored resume or cover letter through its template, or through an explicitly named template.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderDocument(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List stored documents, most recently modified first. Optionally filter by kind (resume or coverLetter).",
		Annotations: readOnlyAnnotations(),
	}, handleListDocuments(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List built-in and custom templates. Optionally filter by kind (resume or coverLetter).",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(deps))
}
