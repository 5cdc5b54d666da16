package document

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewID(t *testing.T) {
	now := time.Date(2026, 1, 15, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		kind    Kind
		pattern string
	}{
		{KindResume, `^res_20260115T150405Z_[0-9a-f]{8}$`},
		{KindCoverLetter, `^cl_20260115T150405Z_[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			id := NewID(tt.kind, now)
			if !regexp.MustCompile(tt.pattern).MatchString(id) {
				t.Errorf("NewID() = %q, want match for %s", id, tt.pattern)
			}
			if !ValidID(id) {
				t.Errorf("NewID() = %q is not a valid ID", id)
			}
		})
	}

	if NewID(KindResume, now) == NewID(KindResume, now) {
		t.Error("NewID() returned the same ID twice")
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"classic", true},
		{"res_20260115T150405Z_abcd1234", true},
		{"my-template.v2", true},
		{"", false},
		{".hidden", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{`a\b`, false},
		{"with space", false},
		{strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		if got := ValidID(tt.id); got != tt.want {
			t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"resume", KindResume, true},
		{"Resume", KindResume, true},
		{"coverLetter", KindCoverLetter, true},
		{"cover-letter", KindCoverLetter, true},
		{"letter", KindCoverLetter, true},
		{"invoice", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseKind(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResume_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *Resume)
		wantFields []string
	}{
		{name: "valid", mutate: func(*Resume) {}},
		{
			name:       "missing id and name",
			mutate:     func(r *Resume) { r.ID = ""; r.Name = "" },
			wantFields: []string{"id", "name"},
		},
		{
			name:       "missing template",
			mutate:     func(r *Resume) { r.Template = "" },
			wantFields: []string{"template"},
		},
		{
			name:       "blank full name",
			mutate:     func(r *Resume) { r.PersonalDetails.FullName = "  " },
			wantFields: []string{"personalDetails.fullName"},
		},
		{
			name:       "unsafe id",
			mutate:     func(r *Resume) { r.ID = "../x" },
			wantFields: []string{"id"},
		},
		{
			name:       "unknown font",
			mutate:     func(r *Resume) { r.FontFamily = "Comic Sans" },
			wantFields: []string{"fontFamily"},
		},
		{
			name:   "empty font is allowed",
			mutate: func(r *Resume) { r.FontFamily = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SampleResume()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !AsValidationError(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if diff := cmp.Diff(tt.wantFields, verr.Fields); diff != "" {
				t.Errorf("Validate() fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCoverLetter_Validate(t *testing.T) {
	c := SampleCoverLetter()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	c.Template = ""
	c.PersonalDetails.FullName = ""
	err := c.Validate()
	var verr *ValidationError
	if !AsValidationError(err, &verr) {
		t.Fatalf("Validate() error = %v, want ValidationError", err)
	}
	want := "missing required fields: template, personalDetails.fullName"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantKind Kind
		wantName string
		wantErr  error
	}{
		{
			name:     "resume with kind",
			data:     `{"kind":"resume","id":"r1","name":"Mine","personalDetails":{"fullName":"A"}}`,
			wantKind: KindResume,
			wantName: "Mine",
		},
		{
			name:     "cover letter with kind",
			data:     `{"kind":"coverLetter","id":"c1","name":"Letter","body":"Hi"}`,
			wantKind: KindCoverLetter,
			wantName: "Letter",
		},
		{
			name:     "resume without kind",
			data:     `{"id":"r1","name":"Old","personalDetails":{},"experience":[]}`,
			wantKind: KindResume,
			wantName: "Old",
		},
		{
			name:     "cover letter without kind",
			data:     `{"id":"c1","name":"Old","personalDetails":{},"recipientName":"HR"}`,
			wantKind: KindCoverLetter,
			wantName: "Old",
		},
		{name: "unknown kind", data: `{"kind":"invoice"}`, wantErr: ErrNotDocument},
		{name: "unrelated object", data: `{"schema":"x"}`, wantErr: ErrNotDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if doc.DocumentKind() != tt.wantKind {
				t.Errorf("DocumentKind() = %q, want %q", doc.DocumentKind(), tt.wantKind)
			}
			if doc.DisplayName() != tt.wantName {
				t.Errorf("DisplayName() = %q, want %q", doc.DisplayName(), tt.wantName)
			}
		})
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	for _, data := range []string{"", "{", "[1]"} {
		if _, err := Decode([]byte(data)); err == nil {
			t.Errorf("Decode(%q) expected error", data)
		}
	}
}

func TestDecodeKind_Mismatch(t *testing.T) {
	data, err := ToJSON(SampleCoverLetter())
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if _, err := DecodeKind(data, KindResume); !errors.Is(err, ErrNotDocument) {
		t.Errorf("DecodeKind() error = %v, want ErrNotDocument", err)
	}
}

func TestToJSON_PreservesDocument(t *testing.T) {
	original := SampleResume()
	original.Touch(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))

	data, err := ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if !strings.Contains(string(data), `"kind": "resume"`) {
		t.Errorf("ToJSON() missing kind field:\n%s", data)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("document changed through JSON (-want +got):\n%s", diff)
	}
}

func TestTouch(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	c := SampleCoverLetter()
	c.Touch(first)
	c.Touch(later)

	if !c.CreatedAt.Equal(first) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, first)
	}
	if !c.Modified().Equal(later) {
		t.Errorf("Modified() = %v, want %v", c.Modified(), later)
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			doc := New(kind, "", now)
			if doc.DocumentKind() != kind {
				t.Errorf("DocumentKind() = %q, want %q", doc.DocumentKind(), kind)
			}
			if doc.DisplayName() != "Untitled "+kind.Label() {
				t.Errorf("DisplayName() = %q", doc.DisplayName())
			}
			if doc.TemplateID() != DefaultTemplate(kind) {
				t.Errorf("TemplateID() = %q, want %q", doc.TemplateID(), DefaultTemplate(kind))
			}
			if err := doc.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !doc.Modified().Equal(now) {
				t.Errorf("Modified() = %v, want %v", doc.Modified(), now)
			}
		})
	}
}
