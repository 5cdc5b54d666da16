package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/templates"
)

func TestRenderDocument(t *testing.T) {
	ctx := context.Background()
	reg := templates.NewRegistry(nil)
	r := render.NewRenderer()

	tests := []struct {
		name         string
		doc          document.Document
		override     string
		wantTemplate string
		wantFallback bool
		wantErr      error
	}{
		{
			name:         "document template",
			doc:          &document.Resume{Template: "modern", PersonalDetails: document.PersonalDetails{FullName: "Ada"}},
			wantTemplate: "modern",
		},
		{
			name:         "override",
			doc:          &document.Resume{Template: "modern", PersonalDetails: document.PersonalDetails{FullName: "Ada"}},
			override:     "classic",
			wantTemplate: "classic",
		},
		{
			name:         "unknown template falls back",
			doc:          &document.CoverLetter{Template: "gone", PersonalDetails: document.PersonalDetails{FullName: "Ada"}},
			wantTemplate: document.DefaultCoverLetterTemplate,
			wantFallback: true,
		},
		{
			name:         "wrong kind falls back",
			doc:          &document.Resume{Template: "minimalist", PersonalDetails: document.PersonalDetails{FullName: "Ada"}},
			wantTemplate: document.DefaultResumeTemplate,
			wantFallback: true,
		},
		{
			name:     "unknown override",
			doc:      &document.Resume{Template: "modern"},
			override: "gone",
			wantErr:  templates.ErrNotFound,
		},
		{
			name:     "override of wrong kind",
			doc:      &document.Resume{Template: "modern"},
			override: "professional",
			wantErr:  templates.ErrKindMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := RenderDocument(ctx, reg, r, tt.doc, tt.override)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RenderDocument() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RenderDocument() error = %v", err)
			}
			if res.Template.ID != tt.wantTemplate {
				t.Errorf("template = %q, want %q", res.Template.ID, tt.wantTemplate)
			}
			if res.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", res.Fallback, tt.wantFallback)
			}
			if !strings.Contains(res.Markup, "Ada") {
				t.Errorf("markup missing name:\n%s", res.Markup)
			}
		})
	}
}
