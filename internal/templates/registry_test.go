package templates

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/render"
)

func openTestStore(t *testing.T) *CustomStore {
	t.Helper()
	s, err := OpenCustomStore(context.Background(), filepath.Join(t.TempDir(), "db", "templates.db"))
	if err != nil {
		t.Fatalf("OpenCustomStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBuiltins(t *testing.T) {
	wantKinds := map[string]document.Kind{
		"classic":      document.KindResume,
		"modern":       document.KindResume,
		"minimalist":   document.KindCoverLetter,
		"professional": document.KindCoverLetter,
	}

	builtins := listBuiltins()
	if len(builtins) != len(wantKinds) {
		t.Fatalf("listBuiltins() returned %d templates, want %d", len(builtins), len(wantKinds))
	}

	for _, tmpl := range builtins {
		t.Run(tmpl.ID, func(t *testing.T) {
			if tmpl.Kind != wantKinds[tmpl.ID] {
				t.Errorf("Kind = %q, want %q", tmpl.Kind, wantKinds[tmpl.ID])
			}
			if tmpl.Name == "" || tmpl.Description == "" {
				t.Error("built-in template missing name or description")
			}
			if tmpl.Style == "" {
				t.Error("built-in template has no style")
			}
			if strings.Contains(tmpl.Markup, "<style") {
				t.Error("style block left in markup")
			}
			if tmpl.Source != SourceBuiltin {
				t.Errorf("Source = %q", tmpl.Source)
			}
		})
	}
}

func TestBuiltins_RenderSampleCleanly(t *testing.T) {
	for _, tmpl := range listBuiltins() {
		t.Run(tmpl.ID, func(t *testing.T) {
			sample := document.Sample(tmpl.Kind)
			for name, src := range map[string]string{"markup": tmpl.Markup, "style": tmpl.Style} {
				out, diags := render.Compile(src).Execute(sample)
				if len(diags) != 0 {
					t.Errorf("%s diagnostics: %v", name, diags)
				}
				if strings.Contains(out, "{{") {
					t.Errorf("%s output still contains markers", name)
				}
			}
		})
	}
}

func TestCustomStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	s.now = func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC) }

	tmpl := &Template{
		ID:     "mine",
		Name:   "Mine",
		Kind:   document.KindResume,
		Markup: "<h1>{{personalDetails.fullName}}</h1>",
		Style:  "h1 { color: red; }",
	}
	if err := s.Save(ctx, tmpl, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(ctx, tmpl, false); !errors.Is(err, ErrExists) {
		t.Fatalf("second Save() error = %v, want ErrExists", err)
	}

	tmpl.Name = "Mine v2"
	if err := s.Save(ctx, tmpl, true); err != nil {
		t.Fatalf("forced Save() error = %v", err)
	}

	got, err := s.Get(ctx, "mine")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want := &Template{
		ID:        "mine",
		Name:      "Mine v2",
		Kind:      document.KindResume,
		Markup:    tmpl.Markup,
		Style:     tmpl.Style,
		Source:    SourceCustom,
		UpdatedAt: time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	letter := &Template{ID: "note", Name: "Note", Kind: document.KindCoverLetter, Markup: "{{body}}"}
	if err := s.Save(ctx, letter, false); err != nil {
		t.Fatalf("Save(letter) error = %v", err)
	}

	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 || all[0].ID != "mine" || all[1].ID != "note" {
		t.Errorf("List() = %v", all)
	}
	letters, err := s.List(ctx, document.KindCoverLetter)
	if err != nil {
		t.Fatalf("List(coverLetter) error = %v", err)
	}
	if len(letters) != 1 || letters[0].ID != "note" {
		t.Errorf("List(coverLetter) = %v", letters)
	}

	if err := s.Delete(ctx, "mine"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "mine"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "mine"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestCustomStore_RejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	err := s.Save(context.Background(), &Template{ID: "../x", Name: "X", Kind: document.KindResume}, false)
	var verr *document.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Save() error = %v, want ValidationError", err)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	override := &Template{ID: "classic", Name: "My Classic", Kind: document.KindResume, Markup: "<p>mine</p>"}
	if err := s.Save(ctx, override, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reg := NewRegistry(s)

	got, err := reg.Resolve(ctx, "classic")
	if err != nil {
		t.Fatalf("Resolve(classic) error = %v", err)
	}
	if got.Source != SourceCustom || got.Markup != "<p>mine</p>" {
		t.Errorf("Resolve(classic) = %s %q, want custom override", got.Source, got.Markup)
	}

	got, err = reg.Resolve(ctx, "modern")
	if err != nil {
		t.Fatalf("Resolve(modern) error = %v", err)
	}
	if got.Source != SourceBuiltin {
		t.Errorf("Resolve(modern) source = %q, want built-in", got.Source)
	}

	if _, err := reg.Resolve(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve(nope) error = %v, want ErrNotFound", err)
	}
	if _, err := reg.ResolveFor(ctx, "minimalist", document.KindResume); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("ResolveFor() error = %v, want ErrKindMismatch", err)
	}
	if _, err := NewRegistry(nil).Resolve(ctx, "minimalist"); err != nil {
		t.Errorf("built-in only Resolve() error = %v", err)
	}
}

func TestRegistry_List(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	for _, tmpl := range []*Template{
		{ID: "classic", Name: "My Classic", Kind: document.KindResume},
		{ID: "zeta", Name: "Zeta", Kind: document.KindResume},
		{ID: "letterhead", Name: "Letterhead", Kind: document.KindCoverLetter},
	} {
		if err := s.Save(ctx, tmpl, false); err != nil {
			t.Fatalf("Save(%s) error = %v", tmpl.ID, err)
		}
	}

	infos, err := NewRegistry(s).List(ctx, document.KindResume)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	type row struct {
		ID        string
		Source    string
		Overrides bool
	}
	var got []row
	for _, info := range infos {
		got = append(got, row{info.ID, info.Source, info.Overrides})
	}
	want := []row{
		{"classic", SourceCustom, true},
		{"zeta", SourceCustom, false},
		{"modern", SourceBuiltin, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	all, err := NewRegistry(nil).List(ctx, "")
	if err != nil {
		t.Fatalf("List(all) error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("built-in List(all) returned %d templates, want 4", len(all))
	}
}
