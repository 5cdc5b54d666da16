package render

import (
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled templates a Renderer keeps
// when WithCache is given a non-positive size.
const DefaultCacheSize = 64

// Renderer renders markup against documents, logging diagnostics and
// optionally caching compiled templates. It is safe for concurrent use.
type Renderer struct {
	logger *slog.Logger
	sink   func(Diagnostic)
	cache  *lru.Cache[string, *Template]
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger that receives diagnostics at WARN level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDiagnostics registers a sink called once per diagnostic, in order.
func WithDiagnostics(sink func(Diagnostic)) Option {
	return func(r *Renderer) {
		r.sink = sink
	}
}

// WithCache keeps up to size compiled templates keyed by markup.
func WithCache(size int) Option {
	return func(r *Renderer) {
		if size <= 0 {
			size = DefaultCacheSize
		}
		cache, err := lru.New[string, *Template](size)
		if err != nil {
			// Only reachable with a non-positive size, excluded above.
			return
		}
		r.cache = cache
	}
}

// NewRenderer creates a Renderer. Without options it logs nowhere and
// compiles markup on every call.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Compile returns the compiled form of markup, from the cache when enabled.
func (r *Renderer) Compile(markup string) *Template {
	if r.cache == nil {
		return Compile(markup)
	}
	if tmpl, ok := r.cache.Get(markup); ok {
		return tmpl
	}
	tmpl := Compile(markup)
	r.cache.Add(markup, tmpl)
	return tmpl
}

// Render expands markup against doc. It never fails; defects are reported
// to the logger and the diagnostic sink.
func (r *Renderer) Render(markup string, doc Record) string {
	out, _ := r.RenderDiagnostics(markup, doc)
	return out
}

// RenderDiagnostics is Render that also returns the diagnostics.
func (r *Renderer) RenderDiagnostics(markup string, doc Record) (string, []Diagnostic) {
	out, diags := r.Compile(markup).Execute(doc)
	for _, d := range diags {
		r.logger.Warn("template diagnostic",
			"kind", string(d.Kind),
			"path", d.Path,
			"offset", d.Offset,
			"message", d.Message,
		)
		if r.sink != nil {
			r.sink(d)
		}
	}
	return out, diags
}

// CacheLen reports how many compiled templates are cached.
func (r *Renderer) CacheLen() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Len()
}

var defaultRenderer = NewRenderer()

// Render expands markup against doc with a renderer that discards
// diagnostics. A nil doc returns markup unchanged.
func Render(markup string, doc Record) string {
	return defaultRenderer.Render(markup, doc)
}
