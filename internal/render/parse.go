package render

import (
	"sort"
	"strings"
)

const (
	leftDelim  = "{{"
	rightDelim = "}}"
	eachOpen   = "#each"
	eachClose  = "/each"
)

type nodeKind int

const (
	textNode nodeKind = iota
	placeholderNode
	blockNode
)

// node is one element of a parsed template: literal text, a placeholder
// reference, or an iteration block with its own children.
type node struct {
	kind     nodeKind
	text     string
	path     string
	offset   int
	children []node
}

// frame is an open iteration block on the parser stack. The root frame has
// no path.
type frame struct {
	path   string
	offset int
	nodes  []node
}

// parse scans markup into a node tree. Each start marker pairs with the
// innermost pending end marker, so nested blocks close in the right order.
func parse(markup string) ([]node, []Diagnostic) {
	var diags []Diagnostic
	stack := []*frame{{}}
	top := func() *frame { return stack[len(stack)-1] }

	pos := 0
	for pos < len(markup) {
		start := strings.Index(markup[pos:], leftDelim)
		if start < 0 {
			break
		}
		start += pos
		end := strings.Index(markup[start+len(leftDelim):], rightDelim)
		if end < 0 {
			break
		}
		end += start + len(leftDelim)
		closeAt := end + len(rightDelim)

		if start > pos {
			top().nodes = appendText(top().nodes, markup[pos:start])
		}
		raw := markup[start:closeAt]
		inner := strings.TrimSpace(markup[start+len(leftDelim) : end])

		switch {
		case isEachOpen(inner):
			path := strings.TrimSpace(inner[len(eachOpen):])
			if path == "" {
				diags = append(diags, invalidPath(path, start))
				top().nodes = appendText(top().nodes, raw)
				break
			}
			stack = append(stack, &frame{path: path, offset: start})
		case inner == eachClose:
			if len(stack) == 1 {
				diags = append(diags, unmatchedEnd(start))
				top().nodes = appendText(top().nodes, raw)
				break
			}
			closed := top()
			stack = stack[:len(stack)-1]
			top().nodes = append(top().nodes, node{
				kind:     blockNode,
				path:     closed.path,
				offset:   closed.offset,
				children: closed.nodes,
			})
		default:
			top().nodes = append(top().nodes, node{kind: placeholderNode, path: inner, offset: start})
		}
		pos = closeAt
	}
	if pos < len(markup) {
		top().nodes = appendText(top().nodes, markup[pos:])
	}

	// An unterminated block and everything after its marker stay literal.
	if len(stack) > 1 {
		for _, open := range stack[1:] {
			diags = append(diags, unterminated(open.path, open.offset))
		}
		stack[0].nodes = appendText(stack[0].nodes, markup[stack[1].offset:])
	}

	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Offset < diags[j].Offset
	})
	return stack[0].nodes, diags
}

// isEachOpen reports whether the trimmed marker body opens a block:
// the keyword alone or followed by whitespace.
func isEachOpen(inner string) bool {
	rest, ok := strings.CutPrefix(inner, eachOpen)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r'
}

// appendText adds literal text, merging with a preceding text node.
func appendText(nodes []node, text string) []node {
	if n := len(nodes); n > 0 && nodes[n-1].kind == textNode {
		nodes[n-1].text += text
		return nodes
	}
	return append(nodes, node{kind: textNode, text: text})
}
