package document

import (
	"slices"
	"strings"
)

// Kind identifies a document shape. Values match the JSON "kind" field.
type Kind string

// Document kinds.
const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "coverLetter"
)

// Kinds returns all document kinds in display order.
func Kinds() []Kind {
	return []Kind{KindResume, KindCoverLetter}
}

// ParseKind converts user input to a Kind. Accepts the canonical value and
// the hyphenated and lower-case spellings of cover letter.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resume":
		return KindResume, true
	case "coverletter", "cover-letter", "cover_letter", "letter":
		return KindCoverLetter, true
	default:
		return "", false
	}
}

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindResume:
		return "Resume"
	case KindCoverLetter:
		return "Cover Letter"
	default:
		return string(k)
	}
}

// idPrefix returns the ID prefix for documents of this kind.
func (k Kind) idPrefix() string {
	if k == KindCoverLetter {
		return "cl_"
	}
	return "res_"
}

// FontFamily is the body typeface a resume is rendered with.
type FontFamily string

// Supported font families.
const (
	FontInter    FontFamily = "Inter"
	FontLato     FontFamily = "Lato"
	FontRoboto   FontFamily = "Roboto"
	FontGaramond FontFamily = "Garamond"
)

// FontFamilies returns the supported font families.
func FontFamilies() []FontFamily {
	return []FontFamily{FontInter, FontLato, FontRoboto, FontGaramond}
}

// Valid reports whether f is a supported font family.
func (f FontFamily) Valid() bool {
	return slices.Contains(FontFamilies(), f)
}

// Proficiency levels offered for languages. Free text is also accepted.
var Proficiencies = []string{"Native", "Fluent", "Professional", "Conversational", "Basic"}
