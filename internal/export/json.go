package export

import (
	"fmt"
	"io"

	"github.com/gorewood/folio/internal/document"
)

// WriteJSON writes doc to w as indented JSON with a trailing newline.
func WriteJSON(w io.Writer, doc document.Document) error {
	data, err := document.ToJSON(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// ReadJSON reads one document from r. Files written by WriteJSON and
// exports without a kind field are both accepted.
func ReadJSON(r io.Reader) (document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return document.Decode(data)
}
