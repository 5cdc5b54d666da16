package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorewood/folio/internal/document"
)

// CustomSource supplies user-authored templates. CustomStore implements it.
type CustomSource interface {
	Get(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context, kind document.Kind) ([]*Template, error)
}

// Registry maps template identifiers to templates.
// Resolution order: custom → built-in
type Registry struct {
	custom CustomSource
}

// NewRegistry creates a Registry. A nil custom source serves built-ins only.
func NewRegistry(custom CustomSource) *Registry {
	return &Registry{custom: custom}
}

// Resolve finds a template by identifier.
func (r *Registry) Resolve(ctx context.Context, id string) (*Template, error) {
	if r.custom != nil {
		tmpl, err := r.custom.Get(ctx, id)
		if err == nil {
			return tmpl, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	if tmpl, err := loadBuiltin(id); err == nil {
		return tmpl, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// ResolveFor finds a template by identifier and checks it targets kind.
func (r *Registry) ResolveFor(ctx context.Context, id string, kind document.Kind) (*Template, error) {
	tmpl, err := r.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if tmpl.Kind != kind {
		return nil, fmt.Errorf("%w: %q is a %s template, not %s", ErrKindMismatch, id, tmpl.Kind.Label(), kind.Label())
	}
	return tmpl, nil
}

// List returns template metadata for kind, or for all kinds when kind is
// empty. Custom templates come first; a custom template with a built-in's
// identifier is marked Overrides and the built-in is omitted.
func (r *Registry) List(ctx context.Context, kind document.Kind) ([]Info, error) {
	seen := make(map[string]bool)
	var infos []Info

	if r.custom != nil {
		// All kinds are fetched so a custom template hides a built-in of
		// another kind, matching Resolve.
		custom, err := r.custom.List(ctx, "")
		if err != nil {
			return nil, err
		}
		for _, t := range custom {
			seen[t.ID] = true
			if kind == "" || t.Kind == kind {
				infos = append(infos, t.Info())
			}
		}
	}

	for _, t := range listBuiltins() {
		if kind != "" && t.Kind != kind {
			continue
		}
		if seen[t.ID] {
			for i := range infos {
				if infos[i].ID == t.ID {
					infos[i].Overrides = true
				}
			}
			continue
		}
		infos = append(infos, t.Info())
	}

	return infos, nil
}

// Builtin returns the embedded template with id, ignoring custom templates.
func Builtin(id string) (*Template, error) {
	tmpl, err := loadBuiltin(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return tmpl, nil
}
