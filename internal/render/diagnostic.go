package render

import "fmt"

// DiagnosticKind identifies the defect a Diagnostic reports.
type DiagnosticKind string

// Diagnostic kinds. None of them stop rendering.
const (
	DiagNotSequence       DiagnosticKind = "not_sequence"
	DiagNotScalar         DiagnosticKind = "not_scalar"
	DiagInvalidPath       DiagnosticKind = "invalid_path"
	DiagUnterminatedBlock DiagnosticKind = "unterminated_block"
	DiagUnmatchedEnd      DiagnosticKind = "unmatched_end"
)

// Template parts a diagnostic can come from.
const (
	SourceMarkup = "markup"
	SourceStyle  = "style"
)

// Diagnostic is a non-fatal report of a resolution or structural defect.
// Offset is the byte offset of the offending marker in the string that was
// rendered. Source names that string when diagnostics from several strings
// are combined; the renderer itself leaves it empty.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Path    string         `json:"path,omitempty"`
	Source  string         `json:"source,omitempty"`
	Offset  int            `json:"offset"`
	Message string         `json:"message"`
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	if d.Source != "" {
		return fmt.Sprintf("%s offset %d: %s", d.Source, d.Offset, d.Message)
	}
	return fmt.Sprintf("offset %d: %s", d.Offset, d.Message)
}

// WithSource returns a copy of diags with Source set to source.
func WithSource(diags []Diagnostic, source string) []Diagnostic {
	if len(diags) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		d.Source = source
		out[i] = d
	}
	return out
}

func notSequence(path string, offset int, got Kind) Diagnostic {
	return Diagnostic{
		Kind:    DiagNotSequence,
		Path:    path,
		Offset:  offset,
		Message: fmt.Sprintf("block path %q is %s, not a sequence", path, got),
	}
}

func notScalar(path string, offset int, got Kind) Diagnostic {
	return Diagnostic{
		Kind:    DiagNotScalar,
		Path:    path,
		Offset:  offset,
		Message: fmt.Sprintf("placeholder %q resolves to a %s, not a scalar", path, got),
	}
}

func invalidPath(path string, offset int) Diagnostic {
	return Diagnostic{
		Kind:    DiagInvalidPath,
		Path:    path,
		Offset:  offset,
		Message: fmt.Sprintf("invalid path %q", path),
	}
}

func unterminated(path string, offset int) Diagnostic {
	return Diagnostic{
		Kind:    DiagUnterminatedBlock,
		Path:    path,
		Offset:  offset,
		Message: fmt.Sprintf("{{#each %s}} has no matching {{/each}}", path),
	}
}

func unmatchedEnd(offset int) Diagnostic {
	return Diagnostic{
		Kind:    DiagUnmatchedEnd,
		Offset:  offset,
		Message: "{{/each}} without an open block",
	}
}
