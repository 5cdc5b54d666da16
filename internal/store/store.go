package store

import (
	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
)

// Store is the document persistence used by commands and the MCP server.
// FileStorage is the production implementation.
type Store interface {
	Get(kind document.Kind, id string) (document.Document, error)
	List(kind document.Kind) ([]document.Document, error)
	ListWithStats(kind document.Kind) ([]document.Document, *ListStats, error)
	Save(doc document.Document, force bool) error
	Delete(kind document.Kind, id string) error
	Exists(kind document.Kind, id string) bool
}

var _ Store = (*FileStorage)(nil)

// Find looks up a document by ID across all kinds. It returns the first
// match in document.Kinds order.
func Find(s Store, id string) (document.Document, error) {
	var lastErr error
	for _, kind := range document.Kinds() {
		if !s.Exists(kind, id) {
			continue
		}
		doc, err := s.Get(kind, id)
		if err == nil {
			return doc, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, output.NewNotFoundError("document", id)
}
