package render

import (
	"errors"
	"strings"
)

// Template is a parsed markup string. It is immutable and safe for
// concurrent use by multiple goroutines.
type Template struct {
	source string
	nodes  []node
	diags  []Diagnostic
}

// Compile parses markup into a Template. Compile never fails: structural
// defects are kept as literal text and reported by Diagnostics.
func Compile(markup string) *Template {
	nodes, diags := parse(markup)
	return &Template{source: markup, nodes: nodes, diags: diags}
}

// Source returns the markup the template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Diagnostics returns the structural defects found while parsing.
func (t *Template) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), t.diags...)
}

// Execute renders the template against doc. A nil doc, including a typed
// nil such as a nil Map, returns the source markup unchanged. The returned diagnostics include parse defects followed
// by resolution defects in document order.
func (t *Template) Execute(doc Record) (string, []Diagnostic) {
	diags := t.Diagnostics()
	if isNil(doc) {
		return t.source, diags
	}

	st := &execState{diags: diags}
	st.out.Grow(len(t.source))
	st.walk(t.nodes, RecordOf(doc))
	return st.out.String(), st.diags
}

type execState struct {
	out   strings.Builder
	diags []Diagnostic
}

func (st *execState) walk(nodes []node, scope Value) {
	for i := range nodes {
		n := &nodes[i]
		switch n.kind {
		case textNode:
			st.out.WriteString(n.text)
		case placeholderNode:
			st.placeholder(n, scope)
		case blockNode:
			st.block(n, scope)
		}
	}
}

func (st *execState) placeholder(n *node, scope Value) {
	v, err := resolveScoped(scope, n.path)
	if err != nil {
		st.report(err, n)
		return
	}
	switch v.Kind() {
	case KindScalar:
		st.out.WriteString(v.text)
	case KindRecord, KindSequence:
		st.diags = append(st.diags, notScalar(n.path, n.offset, v.Kind()))
	case KindAbsent:
	}
}

func (st *execState) block(n *node, scope Value) {
	v, err := resolveScoped(scope, n.path)
	if err != nil {
		st.report(err, n)
		return
	}
	if !v.IsSequence() {
		st.diags = append(st.diags, notSequence(n.path, n.offset, v.Kind()))
		return
	}
	for _, item := range v.items {
		st.walk(n.children, item)
	}
}

func (st *execState) report(err error, n *node) {
	if errors.Is(err, ErrInvalidPath) {
		st.diags = append(st.diags, invalidPath(n.path, n.offset))
	}
}
