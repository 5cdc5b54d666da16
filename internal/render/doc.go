// Package render expands document templates.
//
// A template is markup containing three kinds of markers:
//
//	{{path.to.field}}          scalar placeholder
//	{{#each path}}...{{/each}}  iteration block, nestable
//	{{this}} / {{this.field}}  the current element inside a block
//
// Paths are dot-separated field names resolved against a [Record]. Rendering
// never fails. Missing fields render as empty text and structural defects are
// left in the output as literal text, each reported as a [Diagnostic].
package render
