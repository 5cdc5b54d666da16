package output

import (
	"fmt"

	"github.com/gorewood/folio/internal/render"
)

// Diagnostics reports template diagnostics as warnings on the error writer.
// source names the template they came from; a diagnostic's own Source, when
// set, is appended as "template:style@offset". JSON mode prints nothing;
// callers include diagnostics in their JSON payload instead.
func (p *Printer) Diagnostics(source string, diags []render.Diagnostic) {
	if p.json || len(diags) == 0 {
		return
	}
	for _, d := range diags {
		where := source
		if d.Source != "" {
			where += ":" + d.Source
		}
		where = fmt.Sprintf("%s@%d", where, d.Offset)
		mustWrite(fmt.Fprintf(p.errW, "%s: %s %s\n",
			p.styles.Warning.Render("Warning"),
			p.styles.Dim.Render(where),
			d.Message))
	}
}
