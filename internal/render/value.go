package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Kind classifies a resolved value.
type Kind int

// Value kinds.
const (
	KindAbsent Kind = iota
	KindScalar
	KindRecord
	KindSequence
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Record is a named-field node of a document tree.
// Field returns Absent for unknown names.
type Record interface {
	Field(name string) Value
}

// Value is a node of a document tree: a scalar, a record, an ordered
// sequence of values, or nothing at all. The zero Value is Absent.
type Value struct {
	kind   Kind
	text   string
	record Record
	items  []Value
}

// Absent is the value of a path that does not resolve.
var Absent = Value{}

// Text returns a scalar string value.
func Text(s string) Value {
	return Value{kind: KindScalar, text: s}
}

// Int returns a scalar integer value.
func Int(n int) Value {
	return Value{kind: KindScalar, text: strconv.Itoa(n)}
}

// Number returns a scalar numeric value in its shortest decimal form.
func Number(f float64) Value {
	return Value{kind: KindScalar, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Bool returns a scalar value rendering as "true" or "false".
func Bool(b bool) Value {
	return Value{kind: KindScalar, text: strconv.FormatBool(b)}
}

// RecordOf wraps a Record. A nil record, including a typed nil, is Absent.
func RecordOf(r Record) Value {
	if isNil(r) {
		return Absent
	}
	return Value{kind: KindRecord, record: r}
}

// isNil reports whether r is nil or holds a nil pointer or map, such as a
// (*document.Resume)(nil) or a nil Map.
func isNil(r Record) bool {
	if r == nil {
		return true
	}
	switch v := reflect.ValueOf(r); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Seq returns a sequence value holding items in order.
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Strings returns a sequence of scalar strings.
func Strings(ss []string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = Text(s)
	}
	return Seq(items...)
}

// SeqOf converts a slice of records into a sequence value.
func SeqOf[T Record](rs []T) Value {
	items := make([]Value, len(rs))
	for i, r := range rs {
		items[i] = RecordOf(r)
	}
	return Seq(items...)
}

// Kind reports the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v holds nothing.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// IsSequence reports whether v is an ordered sequence.
func (v Value) IsSequence() bool {
	return v.kind == KindSequence
}

// Elements returns the items of a sequence, or nil for any other kind.
func (v Value) Elements() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Record returns the wrapped record, or nil if v is not a record.
func (v Value) Record() Record {
	if v.kind != KindRecord {
		return nil
	}
	return v.record
}

// Field looks up name on a record value. Any other kind yields Absent.
func (v Value) Field(name string) Value {
	if v.kind != KindRecord {
		return Absent
	}
	return v.record.Field(name)
}

// Scalar returns the text of a scalar value and whether v is a scalar.
func (v Value) Scalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.text, true
}

// String implements fmt.Stringer for debugging output.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return v.text
	case KindSequence:
		return fmt.Sprintf("[%d items]", len(v.items))
	default:
		return "<" + v.kind.String() + ">"
	}
}

// Map is a Record backed by a generic string-keyed map, as produced by
// decoding JSON into map[string]any.
type Map map[string]any

// Field implements Record.
func (m Map) Field(name string) Value {
	raw, ok := m[name]
	if !ok {
		return Absent
	}
	return FromAny(raw)
}

// FromAny converts a decoded JSON-like tree into a Value. Strings, numbers
// and booleans become scalars; maps become records; slices become
// sequences. nil and unsupported types are Absent.
func FromAny(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Absent
	case Value:
		return v
	case Record:
		return RecordOf(v)
	case string:
		return Text(v)
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int64:
		return Text(strconv.FormatInt(v, 10))
	case float64:
		return Number(v)
	case json.Number:
		return Text(v.String())
	case map[string]any:
		return RecordOf(Map(v))
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = FromAny(item)
		}
		return Seq(items...)
	case []string:
		return Strings(v)
	default:
		return Absent
	}
}

// DecodeJSON parses a JSON object into a Map record.
// Numbers keep their literal text.
func DecodeJSON(data []byte) (Map, error) {
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding document JSON: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("decoding document JSON: %w", ErrNotObject)
	}
	return Map(m), nil
}
