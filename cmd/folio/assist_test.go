package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
)

func TestRephraseCommand(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		a := newTestApp(t)
		fake := &fakeCompleter{reply: `Here is a more concise version:

"Led payments backend."`}
		a.completer = fake

		stdout, _, err := execute(t, a, "rephrase", "I did backend work on payments", "--tone", "more concise")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(stdout) != "Led payments backend." {
			t.Errorf("stdout = %q", stdout)
		}
		if len(fake.got) != 1 || !strings.Contains(fake.got[0].Prompt, "more concise") {
			t.Errorf("requests = %+v", fake.got)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		a := newTestApp(t)
		a.completer = &fakeCompleter{reply: "Shipped things."}
		a.stdin = strings.NewReader("I made stuff")

		stdout, _, err := execute(t, a, "rephrase", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var result map[string]any
		decodeJSON(t, stdout, &result)
		if result["text"] != "Shipped things." {
			t.Errorf("result = %v", result)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		a := newTestApp(t)
		fake := &fakeCompleter{reply: "x"}
		a.completer = fake

		_, _, err := execute(t, a, "rephrase", "   ")
		if got := output.GetExitCode(err); got != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
		}
		if len(fake.got) != 0 {
			t.Error("model called for empty input")
		}
	})

	t.Run("save to cover letter body", func(t *testing.T) {
		a := newTestApp(t)
		a.completer = &fakeCompleter{reply: "A sharper letter."}
		saveDoc(t, a, testLetter("cl_re", "Letter"))

		if _, _, err := execute(t, a, "rephrase", "--doc", "cl_re", "--save"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc, err := a.Store().Get(document.KindCoverLetter, "cl_re")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got := doc.(*document.CoverLetter).Body; got != "A sharper letter." {
			t.Errorf("Body = %q", got)
		}
	})

	t.Run("save without doc", func(t *testing.T) {
		a := newTestApp(t)
		a.completer = &fakeCompleter{reply: "x"}
		_, _, err := execute(t, a, "rephrase", "text", "--save")
		if got := output.GetExitCode(err); got != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
		}
	})
}

func TestBulletsCommand(t *testing.T) {
	reply := "```json\n[\"- Cut deploy time by 40%.\", \"Mentored four engineers\"]\n```"

	t.Run("job title", func(t *testing.T) {
		a := newTestApp(t)
		fake := &fakeCompleter{reply: reply}
		a.completer = fake

		stdout, _, err := execute(t, a, "bullets", "Site Reliability Engineer", "--company", "Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, stdout, "- Cut deploy time by 40%\n", "- Mentored four engineers\n")
		if !fake.got[0].JSON {
			t.Error("request did not ask for JSON")
		}
		assertContains(t, fake.got[0].Prompt, "Site Reliability Engineer", "Acme")
	})

	t.Run("append to experience", func(t *testing.T) {
		a := newTestApp(t)
		fake := &fakeCompleter{reply: reply}
		a.completer = fake
		saveDoc(t, a, testResume("res_b", "Bullets"))

		stdout, _, err := execute(t, a, "bullets", "--doc", "res_b", "--experience", "exp-1", "--save", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var result struct {
			Bullets []string `json:"bullets"`
			Saved   bool     `json:"saved"`
		}
		decodeJSON(t, stdout, &result)
		if !result.Saved || len(result.Bullets) != 2 {
			t.Errorf("result = %+v", result)
		}
		// Title and company come from the experience entry.
		assertContains(t, fake.got[0].Prompt, "Lead Developer", "Innovate LLC")

		doc, err := a.Store().Get(document.KindResume, "res_b")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		exp := doc.(*document.Resume).Experience[0]
		tail := exp.Responsibilities[len(exp.Responsibilities)-2:]
		if diff := cmp.Diff([]string{"Cut deploy time by 40%", "Mentored four engineers"}, tail); diff != "" {
			t.Errorf("appended bullets mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown experience", func(t *testing.T) {
		a := newTestApp(t)
		a.completer = &fakeCompleter{reply: reply}
		saveDoc(t, a, testResume("res_c", "Bullets"))

		_, stderr, err := execute(t, a, "bullets", "--doc", "res_c", "--experience", "exp-404")
		if got := output.GetExitCode(err); got != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
		}
		assertContains(t, stderr, "experience entry not found: exp-404")
	})

	t.Run("no job title", func(t *testing.T) {
		a := newTestApp(t)
		a.completer = &fakeCompleter{reply: reply}
		_, _, err := execute(t, a, "bullets")
		if got := output.GetExitCode(err); got != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
		}
	})
}
