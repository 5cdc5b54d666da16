package output

import (
	"bytes"
	"testing"

	"github.com/gorewood/folio/internal/render"
)

func TestPrinter_Diagnostics(t *testing.T) {
	_, diags := render.Compile("{{#each a}}x").Execute(render.Map{})

	var out, errOut bytes.Buffer
	NewPrinter(&out, false, false).WithStderr(&errOut).Diagnostics("mine", diags)

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	want := "Warning: mine@0 " + diags[0].Message + "\n"
	if errOut.String() != want {
		t.Errorf("stderr = %q, want %q", errOut.String(), want)
	}
}

func TestPrinter_Diagnostics_JSON(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, true, false).Diagnostics("mine", []render.Diagnostic{{Kind: render.DiagNotScalar, Message: "m"}})
	if out.Len() != 0 {
		t.Errorf("JSON mode output = %q, want empty", out.String())
	}
}

func TestPrinter_Diagnostics_Source(t *testing.T) {
	diags := []render.Diagnostic{
		{Kind: render.DiagNotScalar, Source: render.SourceStyle, Offset: 12, Message: "m"},
	}
	var out, errOut bytes.Buffer
	NewPrinter(&out, false, false).WithStderr(&errOut).Diagnostics("classic", diags)
	if want := "Warning: classic:style@12 m\n"; errOut.String() != want {
		t.Errorf("stderr = %q, want %q", errOut.String(), want)
	}
}
