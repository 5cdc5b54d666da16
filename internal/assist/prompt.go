package assist

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/folio/internal/render"
)

//go:embed prompts/*.md
var promptFS embed.FS

// prompt is an embedded instruction template with generation settings.
type prompt struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Temperature float64 `yaml:"temperature,omitempty"`
	JSON        bool    `yaml:"json,omitempty"`

	body *render.Template
}

func loadPrompt(name string) (*prompt, error) {
	data, err := promptFS.ReadFile("prompts/" + name + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading prompt %s: %w", name, err)
	}

	front, content := splitFrontmatter(string(data))
	var p prompt
	if front != "" {
		if err := yaml.Unmarshal([]byte(front), &p); err != nil {
			return nil, fmt.Errorf("prompt %s: invalid frontmatter: %w", name, err)
		}
	}
	p.body = render.Compile(content)
	if diags := p.body.Diagnostics(); len(diags) > 0 {
		return nil, fmt.Errorf("prompt %s: %s", name, diags[0])
	}
	return &p, nil
}

// mustPrompt is for embedded prompts, which are fixed at build time.
func mustPrompt(name string) *prompt {
	p, err := loadPrompt(name)
	if err != nil {
		panic(err)
	}
	return p
}

// fill renders the prompt with vars. Missing variables render empty.
func (p *prompt) fill(vars render.Map) string {
	out, _ := p.body.Execute(vars)
	return out
}

func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}
	before, after, ok := strings.Cut(raw[3:], "\n---")
	if !ok {
		return "", raw
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
