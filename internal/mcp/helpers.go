package mcp

import (
	"fmt"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/store"
)

// kindFilter returns the kinds selected by an optional kind argument.
func kindFilter(kind string) ([]document.Kind, error) {
	if kind == "" {
		return document.Kinds(), nil
	}
	k, ok := document.ParseKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return []document.Kind{k}, nil
}

func findDocument(deps Deps, id string) (document.Document, error) {
	return store.Find(deps.Store, id)
}
