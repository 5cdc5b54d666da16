// Package document defines the resume and cover letter schemas, their
// validation and serialization, and their render.Record implementations.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gorewood/folio/internal/render"
)

// ErrNotDocument is returned when JSON data is valid but is not a folio document.
var ErrNotDocument = errors.New("not a folio document")

// idTimeLayout is the timestamp layout embedded in document IDs.
const idTimeLayout = "20060102T150405Z"

// Document is the common behavior of resumes and cover letters.
type Document interface {
	render.Record

	DocumentID() string
	DocumentKind() Kind
	DisplayName() string
	TemplateID() string
	SetTemplateID(id string)
	// Touch stamps the document as modified at now, setting the creation
	// time on first save.
	Touch(now time.Time)
	Modified() time.Time
	Validate() error
}

// ValidationError is returned when document validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// AsValidationError checks if err is a ValidationError and extracts it.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

// NewID creates a document ID.
// Format: <prefix>_<UTC timestamp>_<8 random hex chars>
func NewID(kind Kind, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return kind.idPrefix() + now.UTC().Format(idTimeLayout) + "_" + random
}

// ValidID reports whether id is usable as a document or template identifier:
// non-empty, at most 128 bytes, and made of letters, digits, '-', '_' and '.'
// without path separators or a leading dot.
func ValidID(id string) bool {
	if id == "" || len(id) > 128 || id[0] == '.' {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

func validateCommon(id, name, template string, pd PersonalDetails) []string {
	var missing []string
	if id == "" {
		missing = append(missing, "id")
	}
	if name == "" {
		missing = append(missing, "name")
	}
	if template == "" {
		missing = append(missing, "template")
	}
	if strings.TrimSpace(pd.FullName) == "" {
		missing = append(missing, "personalDetails.fullName")
	}
	return missing
}

func validationResult(missing []string, id string) error {
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Message: "missing required fields"}
	}
	if !ValidID(id) {
		return &ValidationError{Fields: []string{"id"}, Message: "invalid identifier"}
	}
	return nil
}

// DocumentID returns the resume ID.
func (r *Resume) DocumentID() string { return r.ID }

// DocumentKind returns KindResume.
func (r *Resume) DocumentKind() Kind { return KindResume }

// DisplayName returns the resume's name.
func (r *Resume) DisplayName() string { return r.Name }

// TemplateID returns the template the resume renders with.
func (r *Resume) TemplateID() string { return r.Template }

// SetTemplateID changes the template the resume renders with.
func (r *Resume) SetTemplateID(id string) { r.Template = id }

// Modified returns the last update time.
func (r *Resume) Modified() time.Time { return r.UpdatedAt }

// Touch implements Document.
func (r *Resume) Touch(now time.Time) {
	now = now.UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// Validate checks required fields and the font family.
func (r *Resume) Validate() error {
	missing := validateCommon(r.ID, r.Name, r.Template, r.PersonalDetails)
	if err := validationResult(missing, r.ID); err != nil {
		return err
	}
	if r.FontFamily != "" && !r.FontFamily.Valid() {
		return &ValidationError{Fields: []string{"fontFamily"}, Message: "unsupported font family"}
	}
	return nil
}

// DocumentID returns the cover letter ID.
func (c *CoverLetter) DocumentID() string { return c.ID }

// DocumentKind returns KindCoverLetter.
func (c *CoverLetter) DocumentKind() Kind { return KindCoverLetter }

// DisplayName returns the cover letter's name.
func (c *CoverLetter) DisplayName() string { return c.Name }

// TemplateID returns the template the cover letter renders with.
func (c *CoverLetter) TemplateID() string { return c.Template }

// SetTemplateID changes the template the cover letter renders with.
func (c *CoverLetter) SetTemplateID(id string) { c.Template = id }

// Modified returns the last update time.
func (c *CoverLetter) Modified() time.Time { return c.UpdatedAt }

// Touch implements Document.
func (c *CoverLetter) Touch(now time.Time) {
	now = now.UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

// Validate checks required fields.
func (c *CoverLetter) Validate() error {
	missing := validateCommon(c.ID, c.Name, c.Template, c.PersonalDetails)
	return validationResult(missing, c.ID)
}

// ToJSON serializes a document as indented JSON with its kind set.
func ToJSON(doc Document) ([]byte, error) {
	switch d := doc.(type) {
	case *Resume:
		d.Kind = KindResume
	case *CoverLetter:
		d.Kind = KindCoverLetter
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing document to JSON: %w", err)
	}
	return data, nil
}

// Decode parses a document from JSON. The "kind" field selects the shape;
// documents without one are recognized by their fields.
// Returns ErrNotDocument if the JSON is an object of neither shape.
func Decode(data []byte) (Document, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing document JSON: %w", err)
	}

	kind, err := detectKind(fields)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch kind {
	case KindResume:
		doc = &Resume{}
	case KindCoverLetter:
		doc = &CoverLetter{}
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing %s JSON: %w", kind, err)
	}

	switch d := doc.(type) {
	case *Resume:
		d.Kind = KindResume
	case *CoverLetter:
		d.Kind = KindCoverLetter
	}
	return doc, nil
}

// DecodeKind parses JSON as a document of the expected kind.
func DecodeKind(data []byte, want Kind) (Document, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if doc.DocumentKind() != want {
		return nil, fmt.Errorf("%w: expected %s, found %s", ErrNotDocument, want, doc.DocumentKind())
	}
	return doc, nil
}

func detectKind(fields map[string]json.RawMessage) (Kind, error) {
	if raw, ok := fields["kind"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w: kind is not a string", ErrNotDocument)
		}
		kind, ok := ParseKind(s)
		if !ok {
			return "", fmt.Errorf("%w: unknown kind %q", ErrNotDocument, s)
		}
		return kind, nil
	}

	if _, ok := fields["personalDetails"]; !ok {
		return "", ErrNotDocument
	}
	for _, key := range []string{"recipientName", "recipientCompany", "body"} {
		if _, ok := fields[key]; ok {
			return KindCoverLetter, nil
		}
	}
	return KindResume, nil
}
