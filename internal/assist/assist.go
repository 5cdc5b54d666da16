// Package assist drafts and rewrites document text with a language model.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/llm"
	"github.com/gorewood/folio/internal/output"
	"github.com/gorewood/folio/internal/render"
)

// DefaultTone is used by Rephrase when no tone is given.
const DefaultTone = "more professional and impactful"

// Tones are the suggested rewrite tones.
var Tones = []string{
	DefaultTone,
	"more concise",
	"more professional",
	"more impactful",
	"friendlier",
}

// ErrEmptyInput is returned when there is nothing to work from.
var ErrEmptyInput = errors.New("nothing to work from")

// Completer is the model call used by Assistant. *llm.Client implements it.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// Assistant runs the writing prompts against a Completer.
type Assistant struct {
	client Completer
	logger *slog.Logger

	rephrase         *prompt
	responsibilities *prompt
}

// New creates an Assistant. A nil logger discards.
func New(client Completer, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Assistant{
		client:           client,
		logger:           logger,
		rephrase:         mustPrompt("rephrase"),
		responsibilities: mustPrompt("responsibilities"),
	}
}

// Rephrase rewrites text in the given tone.
func (a *Assistant) Rephrase(ctx context.Context, text, tone string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	if tone == "" {
		tone = DefaultTone
	}

	resp, err := a.run(ctx, a.rephrase, render.Map{"text": text, "tone": tone})
	if err != nil {
		return "", err
	}
	out := Sanitize(resp)
	if out == "" {
		return "", output.NewSystemError("model returned no text")
	}
	return out, nil
}

// Responsibilities drafts bullet points for a position. The model is asked
// for a JSON array of strings; anything else is a system error.
func (a *Assistant) Responsibilities(ctx context.Context, jobTitle, company, description string) ([]string, error) {
	if strings.TrimSpace(jobTitle) == "" {
		return nil, fmt.Errorf("%w: job title is required", ErrEmptyInput)
	}

	resp, err := a.run(ctx, a.responsibilities, render.Map{
		"jobTitle":    jobTitle,
		"company":     company,
		"description": description,
	})
	if err != nil {
		return nil, err
	}
	return parseBullets(resp)
}

func (a *Assistant) run(ctx context.Context, p *prompt, vars render.Map) (string, error) {
	req := llm.Request{Prompt: p.fill(vars), Temperature: p.Temperature, JSON: p.JSON}
	a.logger.DebugContext(ctx, "assist request", "prompt", p.Name, "chars", len(req.Prompt))

	resp, err := a.client.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// parseBullets decodes a JSON array of strings, tolerating a surrounding
// code fence or stray prose around the array.
func parseBullets(raw string) ([]string, error) {
	text := stripFence(strings.TrimSpace(raw))
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		text = text[start : end+1]
	}

	var items []string
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, output.NewSystemErrorWithCause("model did not return a list of strings", err)
	}

	bullets := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(item), "-•*"))
		item = strings.TrimRight(item, ".")
		if item != "" {
			bullets = append(bullets, item)
		}
	}
	return bullets, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// AppendResponsibilities adds bullets to the experience entry with id,
// dropping blank existing lines first. It reports whether the entry exists.
func AppendResponsibilities(r *document.Resume, experienceID string, bullets []string) bool {
	for i := range r.Experience {
		exp := &r.Experience[i]
		if exp.ID != experienceID {
			continue
		}
		kept := exp.Responsibilities[:0]
		for _, line := range exp.Responsibilities {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		exp.Responsibilities = append(kept, bullets...)
		return true
	}
	return false
}
