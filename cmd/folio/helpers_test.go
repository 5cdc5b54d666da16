package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/folio/internal/config"
	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/llm"
	"github.com/gorewood/folio/internal/store"
	"github.com/gorewood/folio/internal/templates"
)

var testNow = time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

// newTestApp returns an app rooted in a temp directory with setup skipped.
func newTestApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	custom, err := templates.OpenCustomStore(context.Background(), filepath.Join(dir, "templates.db"))
	if err != nil {
		t.Fatalf("OpenCustomStore() error = %v", err)
	}
	t.Cleanup(func() { _ = custom.Close() })

	return &app{
		settings:   config.Settings{DataDir: dir}.Resolved(),
		configPath: filepath.Join(dir, "config.yaml"),
		logger:     slog.New(slog.DiscardHandler),
		store:      store.NewFileStorage(filepath.Join(dir, "documents")),
		custom:     custom,
		now:        func() time.Time { return testNow },
		ready:      true,
	}
}

// execute runs the CLI with args against a and returns stdout and stderr.
func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmdInternal(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// saveDoc stores doc in a's store.
func saveDoc(t *testing.T, a *app, doc document.Document) {
	t.Helper()
	if err := a.Store().Save(doc, false); err != nil {
		t.Fatalf("Save(%s) error = %v", doc.DocumentID(), err)
	}
}

func testResume(id, name string) *document.Resume {
	r := document.SampleResume()
	r.ID = id
	r.Name = name
	r.Touch(testNow)
	return r
}

func testLetter(id, name string) *document.CoverLetter {
	c := document.SampleCoverLetter()
	c.ID = id
	c.Name = name
	c.Touch(testNow)
	return c
}

func decodeJSON(t *testing.T, data string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(data), v); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, data)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q\n---\n%s", w, got)
		}
	}
}

// fakeCompleter answers every request with reply.
type fakeCompleter struct {
	reply string
	got   []llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.got = append(f.got, req)
	return &llm.Response{Content: f.reply, Model: "fake"}, nil
}

// scriptedPrompter answers prompts from queues, falling back to defaults.
type scriptedPrompter struct {
	inputs   map[string]string
	selects  map[string]string
	areas    map[string]string
	confirm  bool
	messages []string
}

func (p *scriptedPrompter) Input(_ context.Context, message, def string, _ bool) (string, error) {
	p.messages = append(p.messages, message)
	if v, ok := p.inputs[message]; ok {
		return v, nil
	}
	return def, nil
}

func (p *scriptedPrompter) Select(_ context.Context, message string, _ []string, def string) (string, error) {
	p.messages = append(p.messages, message)
	if v, ok := p.selects[message]; ok {
		return v, nil
	}
	return def, nil
}

func (p *scriptedPrompter) TextArea(_ context.Context, message, def string) (string, error) {
	p.messages = append(p.messages, message)
	if v, ok := p.areas[message]; ok {
		return v, nil
	}
	return def, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, message string, _ bool) (bool, error) {
	p.messages = append(p.messages, message)
	return p.confirm, nil
}
