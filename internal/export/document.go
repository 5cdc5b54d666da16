package export

import (
	"context"
	"errors"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/templates"
)

// DocumentResult is a document rendered through its template.
type DocumentResult struct {
	Rendered
	Template *templates.Template `json:"-"`
	// Fallback is set when the document's template could not be found and
	// the kind's default was used instead.
	Fallback bool `json:"fallback,omitempty"`
}

// RenderDocument resolves the template for doc and renders it. A non-empty
// templateID overrides the document's own template and must exist. A
// missing document template falls back to the kind's default.
func RenderDocument(ctx context.Context, reg *templates.Registry, r *render.Renderer, doc document.Document, templateID string) (*DocumentResult, error) {
	kind := doc.DocumentKind()

	id, fallback := templateID, false
	if id == "" {
		id = doc.TemplateID()
	}
	tmpl, err := reg.ResolveFor(ctx, id, kind)
	if err != nil && templateID == "" && (errors.Is(err, templates.ErrNotFound) || errors.Is(err, templates.ErrKindMismatch)) {
		tmpl, err = reg.ResolveFor(ctx, document.DefaultTemplate(kind), kind)
		fallback = true
	}
	if err != nil {
		return nil, err
	}

	return &DocumentResult{
		Rendered: Render(r, tmpl, doc),
		Template: tmpl,
		Fallback: fallback,
	}, nil
}
