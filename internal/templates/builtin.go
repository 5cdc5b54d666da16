package templates

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtin/*.html
var builtinFS embed.FS

// loadBuiltin loads a built-in template by identifier.
func loadBuiltin(id string) (*Template, error) {
	path := "builtin/" + id + ".html"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing builtin template %s: %w", path, err)
	}
	tmpl.ID = id
	tmpl.Source = SourceBuiltin
	return tmpl, nil
}

// listBuiltins returns all built-in templates sorted by kind then identifier.
func listBuiltins() []*Template {
	dirEntries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}

	var templates []*Template
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		tmpl, err := loadBuiltin(strings.TrimSuffix(entry.Name(), ".html"))
		if err != nil {
			continue
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Kind != templates[j].Kind {
			return templates[i].Kind > templates[j].Kind
		}
		return templates[i].ID < templates[j].ID
	})
	return templates
}
