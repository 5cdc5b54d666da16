package export

import (
	_ "embed"
	"html"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/templates"
)

//go:embed page.html
var pageSource string

var (
	pageOnce sync.Once
	page     *render.Template

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// PageOptions controls HTMLPage.
type PageOptions struct {
	// Lang is the page language; empty means "en".
	Lang string
	// Sanitize strips scripts, event handlers and other active content from
	// the body. Style sheets are kept but cannot close their element.
	Sanitize bool
}

// Rendered is a template executed against one document.
type Rendered struct {
	Markup      string              `json:"html"`
	Style       string              `json:"css"`
	Diagnostics []render.Diagnostic `json:"diagnostics,omitempty"`
}

// Render executes the markup and style of tmpl against doc. Diagnostics
// from both are collected, markup first, each tagged with the source its
// offset refers to.
func Render(r *render.Renderer, tmpl *templates.Template, doc render.Record) Rendered {
	markup, diags := r.RenderDiagnostics(tmpl.Markup, doc)
	style, styleDiags := r.RenderDiagnostics(tmpl.Style, doc)
	return Rendered{
		Markup: markup,
		Style:  style,
		Diagnostics: slices.Concat(
			render.WithSource(diags, render.SourceMarkup),
			render.WithSource(styleDiags, render.SourceStyle),
		),
	}
}

// HTMLPage wraps rendered markup and style in a standalone A4 page.
func HTMLPage(title, markup, style string, opts PageOptions) string {
	pageOnce.Do(func() { page = render.Compile(pageSource) })

	lang := opts.Lang
	if lang == "" {
		lang = "en"
	}
	if opts.Sanitize {
		markup = sanitizer().Sanitize(markup)
		style = closeStyle.ReplaceAllString(style, "")
	}

	out, _ := page.Execute(render.Map{
		"lang":  html.EscapeString(lang),
		"title": html.EscapeString(title),
		"style": strings.TrimSpace(style),
		"body":  strings.TrimSpace(markup),
	})
	return out
}

var closeStyle = regexp.MustCompile(`(?i)</style`)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class", "style").Globally()
		policy = p
	})
	return policy
}
