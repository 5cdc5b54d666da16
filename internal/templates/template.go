// Package templates resolves template identifiers to markup and style.
//
// Built-in templates are embedded in the binary. User-authored templates are
// kept in a SQLite database and take precedence over built-ins with the same
// identifier.
package templates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/folio/internal/document"
)

// Template sources.
const (
	SourceBuiltin = "built-in"
	SourceCustom  = "custom"
)

// ErrNotFound is returned when no template has the requested identifier.
var ErrNotFound = errors.New("template not found")

// ErrKindMismatch is returned when a template targets a different document kind.
var ErrKindMismatch = errors.New("template kind mismatch")

// Template is a named markup and style pair for one document kind.
type Template struct {
	// Metadata from frontmatter
	ID          string        `yaml:"id,omitempty" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Kind        document.Kind `yaml:"kind" json:"kind"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`

	Markup string `yaml:"-" json:"html"`
	Style  string `yaml:"-" json:"css"`

	// Source location for display
	Source    string    `yaml:"-" json:"source,omitempty"`
	UpdatedAt time.Time `yaml:"-" json:"updatedAt,omitzero"`
}

// Info provides template metadata for listing.
type Info struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Kind        document.Kind `json:"kind"`
	Description string        `json:"description,omitempty"`
	Source      string        `json:"source"`
	Overrides   bool          `json:"overrides,omitempty"` // custom template shadowing a built-in
}

// Info returns the listing metadata of t.
func (t *Template) Info() Info {
	return Info{
		ID:          t.ID,
		Name:        t.Name,
		Kind:        t.Kind,
		Description: t.Description,
		Source:      t.Source,
	}
}

// Validate checks that the template can be stored.
func (t *Template) Validate() error {
	var missing []string
	if t.ID == "" {
		missing = append(missing, "id")
	}
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Kind == "" {
		missing = append(missing, "kind")
	}
	if len(missing) > 0 {
		return &document.ValidationError{Fields: missing, Message: "missing required template fields"}
	}
	if !document.ValidID(t.ID) {
		return &document.ValidationError{Fields: []string{"id"}, Message: "invalid template identifier"}
	}
	if _, ok := document.ParseKind(string(t.Kind)); !ok {
		return &document.ValidationError{Fields: []string{"kind"}, Message: "unknown document kind"}
	}
	return nil
}

// ParseFile parses an authored template file: optional YAML frontmatter,
// then markup with an optional <style> block. The style block is removed
// from the markup and returned as Style. fallbackID is used when the
// frontmatter has no id.
func ParseFile(raw, fallbackID string) (*Template, error) {
	tmpl, err := parseTemplate(raw)
	if err != nil {
		return nil, err
	}
	if tmpl.ID == "" {
		tmpl.ID = fallbackID
	}
	if tmpl.Name == "" {
		tmpl.Name = tmpl.ID
	}
	if tmpl.Kind != "" {
		kind, ok := document.ParseKind(string(tmpl.Kind))
		if !ok {
			return nil, fmt.Errorf("unknown template kind %q", tmpl.Kind)
		}
		tmpl.Kind = kind
	}
	return tmpl, nil
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Markup, tmpl.Style = splitStyle(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}

var styleBlock = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)

// splitStyle removes every <style> element from content and returns the
// remaining markup and the concatenated style sheets.
func splitStyle(content string) (markup, style string) {
	var sheets []string
	for _, m := range styleBlock.FindAllStringSubmatch(content, -1) {
		if sheet := strings.TrimSpace(m[1]); sheet != "" {
			sheets = append(sheets, sheet)
		}
	}
	markup = styleBlock.ReplaceAllString(content, "")
	return strings.TrimSpace(markup), strings.Join(sheets, "\n\n")
}

// FormatFile is the inverse of ParseFile: frontmatter, style block, markup.
func FormatFile(t *Template) (string, error) {
	meta := struct {
		ID          string        `yaml:"id"`
		Name        string        `yaml:"name"`
		Kind        document.Kind `yaml:"kind"`
		Description string        `yaml:"description,omitempty"`
	}{t.ID, t.Name, t.Kind, t.Description}

	front, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n")
	if t.Style != "" {
		b.WriteString("<style>\n")
		b.WriteString(t.Style)
		b.WriteString("\n</style>\n")
	}
	b.WriteString(t.Markup)
	b.WriteString("\n")
	return b.String(), nil
}
