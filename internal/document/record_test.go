package document

import (
	"testing"

	"github.com/gorewood/folio/internal/render"
)

func TestResume_Render(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "personal details",
			markup: "<h1>{{personalDetails.fullName}}</h1><p>{{ personalDetails.jobTitle }}</p>",
			want:   "<h1>Jane Doe</h1><p>Lead Developer</p>",
		},
		{
			name: "experience with nested responsibilities",
			markup: "{{#each experience}}<h2>{{jobTitle}} at {{company}}</h2>" +
				"<ul>{{#each responsibilities}}<li>{{this}}</li>{{/each}}</ul>{{/each}}",
			want: "<h2>Lead Developer at Innovate LLC</h2>" +
				"<ul><li>Led a team of 5 developers.</li><li>Architected new microservices architecture.</li></ul>",
		},
		{
			name:   "self prefix",
			markup: "{{#each skills}}[{{this.name}}]{{/each}}",
			want:   "[React][TypeScript][GraphQL]",
		},
		{
			name:   "string sequence in project",
			markup: "{{#each projects}}{{name}}:{{#each technologies}} {{this}}{{/each}}{{/each}}",
			want:   "Project Titan: D3.js React Python",
		},
		{
			name:   "unknown field is empty",
			markup: "[{{personalDetails.nickname}}][{{salary}}]",
			want:   "[][]",
		},
		{
			name:   "unset timestamps are empty",
			markup: "[{{createdAt}}]",
			want:   "[]",
		},
	}

	doc := SampleResume()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := render.Compile(tt.markup).Execute(doc)
			if got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
			if len(diags) != 0 {
				t.Errorf("Execute() diagnostics = %v, want none", diags)
			}
		})
	}
}

func TestCoverLetter_Render(t *testing.T) {
	markup := "{{date}}\n{{recipientName}}, {{recipientCompany}}\n{{personalDetails.fullName}}"
	got := render.Render(markup, SampleCoverLetter())
	want := "2025-01-15\nHiring Manager, Innovate Inc.\nJane Smith"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestEmptySections_RenderNothing(t *testing.T) {
	doc := &Resume{}
	got, diags := render.Compile("[{{#each awards}}{{name}}{{/each}}]").Execute(doc)
	if got != "[]" {
		t.Errorf("Execute() = %q, want %q", got, "[]")
	}
	if len(diags) != 0 {
		t.Errorf("Execute() diagnostics = %v, want none for an empty section", diags)
	}
}

func TestNilDocumentRecord(t *testing.T) {
	var r *Resume
	if v := r.Field("name"); !v.IsAbsent() {
		t.Errorf("nil resume Field() = %v, want absent", v)
	}
	var c *CoverLetter
	if v := c.Field("body"); !v.IsAbsent() {
		t.Errorf("nil cover letter Field() = %v, want absent", v)
	}
}

func TestPlaceholders_ResolveOnSample(t *testing.T) {
	for _, kind := range Kinds() {
		sample := Sample(kind)
		for _, section := range Placeholders(kind) {
			scope := render.RecordOf(sample)
			if section.Loop != "" {
				seq, err := render.Resolve(scope, section.Loop)
				if err != nil || !seq.IsSequence() || len(seq.Elements()) == 0 {
					t.Errorf("%s: loop %q does not resolve to a populated sequence", kind, section.Loop)
					continue
				}
				scope = seq.Elements()[0]
			}
			for _, field := range section.Fields {
				v, err := render.Resolve(scope, field)
				if err != nil || v.IsAbsent() {
					t.Errorf("%s: placeholder %q in section %q does not resolve", kind, field, section.Section)
				}
			}
		}
	}
}
