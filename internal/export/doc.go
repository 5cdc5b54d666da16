// Package export turns documents into files: standalone HTML pages built
// from a rendered template, the JSON interchange format, and plain text.
//
// # Formats
//
//   - html: the document rendered through its template, wrapped in an A4 page
//   - json: the document as indented JSON, re-importable with ReadJSON
//   - txt: a plain text summary of the main sections
//
// # File Naming
//
// FileName derives the output name from the document's display name with
// whitespace replaced by underscores, falling back to "export".
package export
