package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/export"
	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/templates"
)

// --- render_template ---

// RenderTemplateInput is the input for the render_template tool.
type RenderTemplateInput struct {
	Markup   string         `json:"markup"          jsonschema:"template markup with {{path}} placeholders and {{#each path}} blocks"`
	Style    string         `json:"style,omitempty" jsonschema:"optional style sheet, rendered with the same document"`
	Document map[string]any `json:"document"        jsonschema:"the data the template is rendered against"`
}

// RenderOutput carries rendered output and its diagnostics.
type RenderOutput struct {
	HTML        string              `json:"html"                  jsonschema:"rendered markup"`
	CSS         string              `json:"css,omitempty"         jsonschema:"rendered style sheet"`
	Diagnostics []render.Diagnostic `json:"diagnostics,omitempty" jsonschema:"non-fatal problems found while rendering"`
}

func handleRenderTemplate(deps Deps) mcp.ToolHandlerFor[RenderTemplateInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderTemplateInput) (*mcp.CallToolResult, RenderOutput, error) {
		doc := render.Map(input.Document)
		tmpl := &templates.Template{Markup: input.Markup, Style: input.Style}
		res := export.Render(deps.Renderer, tmpl, doc)
		return nil, RenderOutput{HTML: res.Markup, CSS: res.Style, Diagnostics: res.Diagnostics}, nil
	}
}

// --- render_document ---

// RenderDocumentInput is the input for the render_document tool.
type RenderDocumentInput struct {
	Kind     string `json:"kind,omitempty"     jsonschema:"resume or coverLetter; searched across kinds when empty"`
	ID       string `json:"id"                 jsonschema:"document ID"`
	Template string `json:"template,omitempty" jsonschema:"template ID overriding the document's own"`
	Page     bool   `json:"page,omitempty"     jsonschema:"wrap the result in a standalone HTML page"`
}

// RenderDocumentOutput is the output for the render_document tool.
type RenderDocumentOutput struct {
	HTML        string              `json:"html"                  jsonschema:"rendered markup, or a full page when page is set"`
	CSS         string              `json:"css,omitempty"         jsonschema:"rendered style sheet"`
	Diagnostics []render.Diagnostic `json:"diagnostics,omitempty" jsonschema:"non-fatal problems found while rendering"`
	ID          string              `json:"id"                 jsonschema:"document ID"`
	Kind        string              `json:"kind"               jsonschema:"document kind"`
	Template    string              `json:"template"           jsonschema:"template ID used"`
	Fallback    bool                `json:"fallback,omitempty" jsonschema:"the document's template was missing and the default was used"`
}

func handleRenderDocument(deps Deps) mcp.ToolHandlerFor[RenderDocumentInput, RenderDocumentOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderDocumentInput) (*mcp.CallToolResult, RenderDocumentOutput, error) {
		if input.ID == "" {
			return nil, RenderDocumentOutput{}, errors.New("id is required")
		}
		doc, err := getDocument(deps, input.Kind, input.ID)
		if err != nil {
			return nil, RenderDocumentOutput{}, err
		}

		res, err := export.RenderDocument(ctx, deps.Templates, deps.Renderer, doc, input.Template)
		if err != nil {
			return nil, RenderDocumentOutput{}, fmt.Errorf("rendering %s: %w", input.ID, err)
		}
		for _, d := range res.Diagnostics {
			deps.Logger.WarnContext(ctx, "template diagnostic", "document", input.ID, "kind", d.Kind, "path", d.Path, "offset", d.Offset)
		}

		out := RenderDocumentOutput{
			HTML:        res.Markup,
			CSS:         res.Style,
			Diagnostics: res.Diagnostics,
			ID:          doc.DocumentID(),
			Kind:        string(doc.DocumentKind()),
			Template:    res.Template.ID,
			Fallback:    res.Fallback,
		}
		if input.Page {
			out.HTML = export.HTMLPage(doc.DisplayName(), res.Markup, res.Style, export.PageOptions{Sanitize: true})
			out.CSS = ""
		}
		return nil, out, nil
	}
}

func getDocument(deps Deps, kind, id string) (document.Document, error) {
	if kind == "" {
		return findDocument(deps, id)
	}
	k, ok := document.ParseKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return deps.Store.Get(k, id)
}

// --- list_documents ---

// ListDocumentsInput is the input for the list_documents tool.
type ListDocumentsInput struct {
	Kind string `json:"kind,omitempty" jsonschema:"resume or coverLetter; all kinds when empty"`
}

// DocumentSummary is a listed document.
type DocumentSummary struct {
	ID         string `json:"id"                    jsonschema:"document ID"`
	Kind       string `json:"kind"                  jsonschema:"document kind"`
	Name       string `json:"name"                  jsonschema:"display name"`
	Template   string `json:"template"              jsonschema:"template ID"`
	ModifiedAt string `json:"modified_at,omitempty" jsonschema:"last modification timestamp"`
}

// ListDocumentsOutput is the output for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentSummary `json:"documents" jsonschema:"documents, most recently modified first"`
	Skipped   int               `json:"skipped"   jsonschema:"files in the store that could not be read as documents"`
}

func handleListDocuments(deps Deps) mcp.ToolHandlerFor[ListDocumentsInput, ListDocumentsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListDocumentsInput) (*mcp.CallToolResult, ListDocumentsOutput, error) {
		kinds, err := kindFilter(input.Kind)
		if err != nil {
			return nil, ListDocumentsOutput{}, err
		}

		out := ListDocumentsOutput{Documents: []DocumentSummary{}}
		for _, kind := range kinds {
			docs, stats, err := deps.Store.ListWithStats(kind)
			if err != nil {
				return nil, ListDocumentsOutput{}, fmt.Errorf("listing %s documents: %w", kind, err)
			}
			out.Skipped += stats.Skipped
			for _, doc := range docs {
				out.Documents = append(out.Documents, summarize(doc))
			}
		}
		return nil, out, nil
	}
}

func summarize(doc document.Document) DocumentSummary {
	s := DocumentSummary{
		ID:       doc.DocumentID(),
		Kind:     string(doc.DocumentKind()),
		Name:     doc.DisplayName(),
		Template: doc.TemplateID(),
	}
	if m := doc.Modified(); !m.IsZero() {
		s.ModifiedAt = m.UTC().Format(time.RFC3339)
	}
	return s
}

// --- list_templates ---

// ListTemplatesInput is the input for the list_templates tool.
type ListTemplatesInput struct {
	Kind string `json:"kind,omitempty" jsonschema:"resume or coverLetter; all kinds when empty"`
}

// ListTemplatesOutput is the output for the list_templates tool.
type ListTemplatesOutput struct {
	Templates []templates.Info `json:"templates" jsonschema:"available templates, custom first"`
}

func handleListTemplates(deps Deps) mcp.ToolHandlerFor[ListTemplatesInput, ListTemplatesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
		var kind document.Kind
		if input.Kind != "" {
			k, ok := document.ParseKind(input.Kind)
			if !ok {
				return nil, ListTemplatesOutput{}, fmt.Errorf("unknown kind %q", input.Kind)
			}
			kind = k
		}
		infos, err := deps.Templates.List(ctx, kind)
		if err != nil {
			return nil, ListTemplatesOutput{}, fmt.Errorf("listing templates: %w", err)
		}
		if infos == nil {
			infos = []templates.Info{}
		}
		return nil, ListTemplatesOutput{Templates: infos}, nil
	}
}
