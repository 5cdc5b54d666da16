package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/gorewood/folio/internal/document"
)

// Format is an export output format.
type Format string

// Supported formats.
const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatText Format = "txt"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatHTML, FormatJSON, FormatText}
}

// ParseFormat accepts a format name or a common alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "txt", "text", "plain":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown export format %q (want html, json or txt)", s)
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string { return string(f) }

var whitespace = regexp.MustCompile(`\s`)

// FileName returns the suggested file name for doc with extension ext.
func FileName(doc document.Document, ext string) string {
	base := whitespace.ReplaceAllString(doc.DisplayName(), "_")
	if base == "" {
		base = "export"
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

// WriteFile atomically writes data to path.
func WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
