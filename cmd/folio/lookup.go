package main

import (
	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
	"github.com/gorewood/folio/internal/store"
)

// parseKindArg converts a kind argument to a document.Kind.
func parseKindArg(s string) (document.Kind, error) {
	kind, ok := document.ParseKind(s)
	if !ok {
		return "", output.NewUserError("unknown document kind " + quote(s) + " (want resume or coverLetter)")
	}
	return kind, nil
}

// lookupDocument loads the document named by "[<kind>] <id>" arguments.
// With only an ID, every kind is searched.
func lookupDocument(s store.Store, args []string) (document.Document, error) {
	if len(args) == 1 {
		return store.Find(s, args[0])
	}
	kind, err := parseKindArg(args[0])
	if err != nil {
		return nil, err
	}
	return s.Get(kind, args[1])
}

func quote(s string) string {
	return `"` + s + `"`
}
