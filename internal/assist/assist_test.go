package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/llm"
	"github.com/gorewood/folio/internal/output"
)

// fakeCompleter returns a canned reply and records the request.
type fakeCompleter struct {
	reply string
	err   error
	got   llm.Request
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.reply, Model: "fake"}, nil
}

func TestPromptsLoad(t *testing.T) {
	for _, name := range []string{"rephrase", "responsibilities"} {
		t.Run(name, func(t *testing.T) {
			p, err := loadPrompt(name)
			if err != nil {
				t.Fatalf("loadPrompt() error = %v", err)
			}
			if p.Name != name || p.Description == "" {
				t.Errorf("frontmatter = %+v", p)
			}
		})
	}
	if _, err := loadPrompt("missing"); err == nil {
		t.Error("expected error for missing prompt")
	}
}

func TestRephrase(t *testing.T) {
	fake := &fakeCompleter{reply: "Sure, here is a rewrite:\n\n\"Led a team of five engineers.\"\n\nLet me know if you want more."}
	a := New(fake, nil)

	got, err := a.Rephrase(context.Background(), "I was in charge of 5 people", "")
	if err != nil {
		t.Fatalf("Rephrase() error = %v", err)
	}
	if got != "Led a team of five engineers." {
		t.Errorf("Rephrase() = %q", got)
	}
	if !strings.Contains(fake.got.Prompt, "to be "+DefaultTone+".") {
		t.Errorf("prompt missing default tone:\n%s", fake.got.Prompt)
	}
	if !strings.Contains(fake.got.Prompt, `Original text: "I was in charge of 5 people"`) {
		t.Errorf("prompt missing text:\n%s", fake.got.Prompt)
	}
	if fake.got.JSON {
		t.Error("rephrase should not request JSON")
	}
}

func TestRephrase_Errors(t *testing.T) {
	a := New(&fakeCompleter{}, nil)
	if _, err := a.Rephrase(context.Background(), "   ", "concise"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty text error = %v, want ErrEmptyInput", err)
	}

	boom := errors.New("boom")
	a = New(&fakeCompleter{err: boom}, nil)
	if _, err := a.Rephrase(context.Background(), "text", "concise"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want completer error", err)
	}

	a = New(&fakeCompleter{reply: "  "}, nil)
	if _, err := a.Rephrase(context.Background(), "text", "concise"); output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("blank reply error = %v, want system error", err)
	}
}

func TestResponsibilities(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    []string
		wantErr bool
	}{
		{
			name:  "plain array",
			reply: `["Shipped the billing service", "Cut latency by 40%"]`,
			want:  []string{"Shipped the billing service", "Cut latency by 40%"},
		},
		{
			name:  "fenced",
			reply: "```json\n[\"Led migration to Go.\"]\n```",
			want:  []string{"Led migration to Go"},
		},
		{
			name:  "prose around array",
			reply: "Here you go: [\"- Mentored interns\", \"\"] Enjoy",
			want:  []string{"Mentored interns"},
		},
		{
			name:    "not a list",
			reply:   `{"bullets": 3}`,
			wantErr: true,
		},
		{
			name:    "numbers",
			reply:   `[1, 2]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: tt.reply}
			got, err := New(fake, nil).Responsibilities(context.Background(), "Engineer", "Acme", "Go, billing")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Responsibilities() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Responsibilities() mismatch (-want +got):\n%s", diff)
			}
			if !fake.got.JSON {
				t.Error("request did not ask for JSON")
			}
			for _, want := range []string{"Job Title: Engineer", "Company: Acme", "Description/Keywords: Go, billing"} {
				if !strings.Contains(fake.got.Prompt, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
		})
	}
}

func TestResponsibilities_NeedsTitle(t *testing.T) {
	fake := &fakeCompleter{}
	if _, err := New(fake, nil).Responsibilities(context.Background(), "", "Acme", ""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
	if fake.calls != 0 {
		t.Error("model called without a job title")
	}
}

func TestAppendResponsibilities(t *testing.T) {
	r := &document.Resume{Experience: []document.Experience{
		{ID: "exp-1", Responsibilities: []string{"Kept", "  ", ""}},
		{ID: "exp-2"},
	}}

	if !AppendResponsibilities(r, "exp-1", []string{"New one"}) {
		t.Fatal("exp-1 not found")
	}
	if diff := cmp.Diff([]string{"Kept", "New one"}, r.Experience[0].Responsibilities); diff != "" {
		t.Errorf("responsibilities mismatch (-want +got):\n%s", diff)
	}
	if AppendResponsibilities(r, "exp-9", []string{"x"}) {
		t.Error("unknown id reported as found")
	}
}
