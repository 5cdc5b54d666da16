package render

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned for an empty path or a path with an empty segment.
var ErrInvalidPath = errors.New("invalid path")

// ErrNotObject is returned when a document is not a JSON object.
var ErrNotObject = errors.New("document is not an object")

// selfName refers to the current context itself inside an iteration block.
const selfName = "this"

// Resolve walks a dot-separated path of field names from v.
// Traversal short-circuits to Absent as soon as a node is not a record or a
// field is missing. Array indexing is not supported.
func Resolve(v Value, path string) (Value, error) {
	if path == "" {
		return Absent, ErrInvalidPath
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return Absent, ErrInvalidPath
		}
	}

	current := v
	for _, seg := range segments {
		if current.kind != KindRecord {
			return Absent, nil
		}
		current = current.record.Field(seg)
	}
	return current, nil
}

// resolveScoped resolves a placeholder or block path against the current
// scope. The path "this" is the scope itself and a "this." prefix is
// stripped before lookup.
func resolveScoped(scope Value, path string) (Value, error) {
	if path == selfName {
		return scope, nil
	}
	if rest, ok := strings.CutPrefix(path, selfName+"."); ok {
		path = rest
	}
	return Resolve(scope, path)
}
