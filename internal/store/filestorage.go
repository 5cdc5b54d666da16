// Package store persists documents as one JSON file per document.
package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
)

// ListStats contains statistics about listing documents.
type ListStats struct {
	Total       int `json:"total"`        // JSON files found
	Parsed      int `json:"parsed"`       // successfully parsed documents
	Skipped     int `json:"skipped"`      // not documents or parse errors
	NotDocument int `json:"not_document"` // valid JSON but not a document of this kind
	ParseErrors int `json:"parse_errors"` // JSON parse failures
}

// FileStorage stores documents under <dir>/<kind>/<id>.json.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage directory path.
func (fs *FileStorage) Dir() string {
	return fs.dir
}

func (fs *FileStorage) kindDir(kind document.Kind) string {
	return filepath.Join(fs.dir, string(kind))
}

func (fs *FileStorage) docPath(kind document.Kind, id string) string {
	return filepath.Join(fs.kindDir(kind), id+".json")
}

// Get reads the document of kind with the given ID.
// Returns a user error if the ID is invalid or no such document exists.
func (fs *FileStorage) Get(kind document.Kind, id string) (document.Document, error) {
	if !document.ValidID(id) {
		return nil, output.NewUserError("invalid document id: " + id)
	}
	path := fs.docPath(kind, id)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewNotFoundError(kind.Label(), id)
		}
		return nil, output.NewSystemErrorWithCause("failed to read document file: "+path, err)
	}

	doc, err := document.DecodeKind(data, kind)
	if err != nil {
		if errors.Is(err, document.ErrNotDocument) {
			return nil, err
		}
		return nil, output.NewUserError("failed to parse document: " + err.Error())
	}
	return doc, nil
}

// List returns all documents of kind, most recently modified first.
// Files that fail to parse are skipped.
func (fs *FileStorage) List(kind document.Kind) ([]document.Document, error) {
	docs, _, err := fs.ListWithStats(kind)
	return docs, err
}

// ListWithStats returns all documents of kind plus statistics about skipped
// files. Only .json files are considered. Returns empty results if the kind
// directory does not exist.
func (fs *FileStorage) ListWithStats(kind document.Kind) ([]document.Document, *ListStats, error) {
	stats := &ListStats{}
	entries, err := os.ReadDir(fs.kindDir(kind))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, stats, nil
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to read storage directory", err)
	}

	var docs []document.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		stats.Total++
		id := strings.TrimSuffix(entry.Name(), ".json")
		doc, readErr := fs.Get(kind, id)
		if readErr != nil {
			stats.Skipped++
			if errors.Is(readErr, document.ErrNotDocument) {
				stats.NotDocument++
			} else {
				stats.ParseErrors++
			}
			continue
		}
		docs = append(docs, doc)
		stats.Parsed++
	}

	sort.SliceStable(docs, func(i, j int) bool {
		mi, mj := docs[i].Modified(), docs[j].Modified()
		if !mi.Equal(mj) {
			return mi.After(mj)
		}
		return docs[i].DocumentID() < docs[j].DocumentID()
	})
	return docs, stats, nil
}

// Save validates and writes a document atomically.
// If force is false and the document already exists, returns a conflict error.
func (fs *FileStorage) Save(doc document.Document, force bool) error {
	if err := doc.Validate(); err != nil {
		return output.WrapUserError(err)
	}

	kind := doc.DocumentKind()
	id := doc.DocumentID()
	path := fs.docPath(kind, id)

	if !force && fs.Exists(kind, id) {
		return output.NewExistsError(kind.Label(), id)
	}

	data, err := document.ToJSON(doc)
	if err != nil {
		return output.NewSystemError("failed to serialize document: " + err.Error())
	}

	if err = os.MkdirAll(fs.kindDir(kind), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create document directory", err)
	}

	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return output.NewSystemErrorWithCause("failed to write document", err)
	}
	return nil
}

// Delete removes a document. Returns a user error if it does not exist.
func (fs *FileStorage) Delete(kind document.Kind, id string) error {
	if !document.ValidID(id) {
		return output.NewUserError("invalid document id: " + id)
	}
	err := os.Remove(fs.docPath(kind, id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return output.NewNotFoundError(kind.Label(), id)
		}
		return output.NewSystemErrorWithCause("failed to delete document", err)
	}
	return nil
}

// Exists returns true if a document file exists for kind and id.
func (fs *FileStorage) Exists(kind document.Kind, id string) bool {
	if !document.ValidID(id) {
		return false
	}
	_, err := os.Stat(fs.docPath(kind, id))
	return err == nil
}
