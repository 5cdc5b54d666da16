package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/folio/internal/document"
)

// ErrExists is returned when saving a custom template whose identifier is
// already taken and overwriting was not requested.
var ErrExists = errors.New("template already exists")

const customSchema = `
CREATE TABLE IF NOT EXISTS custom_templates (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	kind        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	html        TEXT NOT NULL,
	css         TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_custom_templates_kind ON custom_templates (kind);
`

// CustomStore persists user-authored templates in SQLite.
type CustomStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenCustomStore opens (creating if needed) the template database at path.
func OpenCustomStore(ctx context.Context, path string) (*CustomStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating template database directory: %w", err)
		}
	}

	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening template database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, customSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating template schema: %w", err)
	}
	return &CustomStore{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *CustomStore) Close() error {
	return s.db.Close()
}

// Save stores a custom template. If force is false and the identifier is
// taken, returns ErrExists.
func (s *CustomStore) Save(ctx context.Context, t *Template, force bool) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM custom_templates WHERE id = ?", t.ID).Scan(&count); err != nil {
		return fmt.Errorf("checking template %s: %w", t.ID, err)
	}
	if count > 0 && !force {
		return fmt.Errorf("%w: %s", ErrExists, t.ID)
	}

	now := s.now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO custom_templates (id, name, kind, description, html, css, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			description = excluded.description,
			html = excluded.html,
			css = excluded.css,
			updated_at = excluded.updated_at`,
		t.ID, t.Name, string(t.Kind), t.Description, t.Markup, t.Style, now, now)
	if err != nil {
		return fmt.Errorf("saving template %s: %w", t.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing template %s: %w", t.ID, err)
	}
	return nil
}

// Get returns the custom template with id, or ErrNotFound.
func (s *CustomStore) Get(ctx context.Context, id string) (*Template, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, description, html, css, updated_at
		FROM custom_templates WHERE id = ?`, id)
	t, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", id, err)
	}
	return t, nil
}

// List returns custom templates for kind, or all of them when kind is empty,
// ordered by identifier.
func (s *CustomStore) List(ctx context.Context, kind document.Kind) ([]*Template, error) {
	query := `SELECT id, name, kind, description, html, css, updated_at FROM custom_templates`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("reading template row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return out, nil
}

// Delete removes a custom template, returning ErrNotFound if absent.
func (s *CustomStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM custom_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting template %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting template %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*Template, error) {
	var (
		t       Template
		kind    string
		updated string
	)
	if err := row.Scan(&t.ID, &t.Name, &kind, &t.Description, &t.Markup, &t.Style, &updated); err != nil {
		return nil, err
	}
	t.Kind = document.Kind(kind)
	t.Source = SourceCustom
	if ts, err := time.Parse(time.RFC3339, updated); err == nil {
		t.UpdatedAt = ts
	}
	return &t, nil
}
