package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/export"
	"github.com/gorewood/folio/internal/output"
	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/templates"
)

// pageFlags are the output options shared by render and preview.
type pageFlags struct {
	page     bool
	sanitize bool
	lang     string
	out      string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.page, "page", false, "Wrap the output in a standalone HTML page")
	cmd.Flags().BoolVar(&f.sanitize, "sanitize", false, "Strip scripts and event handlers from the page body")
	cmd.Flags().StringVar(&f.lang, "lang", "en", "Page language (with --page)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write to a file instead of stdout")
}

// build returns the HTML to emit for a rendered template.
func (f *pageFlags) build(title string, r export.Rendered) string {
	if f.page || f.sanitize {
		return export.HTMLPage(title, r.Markup, r.Style, export.PageOptions{Lang: f.lang, Sanitize: f.sanitize})
	}
	return fragment(r)
}

// fragment is rendered markup preceded by its style block.
func fragment(r export.Rendered) string {
	if strings.TrimSpace(r.Style) == "" {
		return r.Markup + "\n"
	}
	return "<style>\n" + r.Style + "\n</style>\n" + r.Markup + "\n"
}

// renderResult is the JSON output of render and preview.
type renderResult struct {
	ID          string              `json:"id,omitempty"`
	Kind        document.Kind       `json:"kind"`
	Template    string              `json:"template"`
	Fallback    bool                `json:"fallback,omitempty"`
	HTML        string              `json:"html"`
	CSS         string              `json:"css"`
	Page        string              `json:"page,omitempty"`
	Path        string              `json:"path,omitempty"`
	Diagnostics []render.Diagnostic `json:"diagnostics"`
}

// emit writes html to --out or stdout and reports diagnostics.
func emit(cmd *cobra.Command, printer *output.Printer, flags *pageFlags, source, html string, res renderResult) error {
	if res.Diagnostics == nil {
		res.Diagnostics = []render.Diagnostic{}
	}
	if flags.page || flags.sanitize {
		res.Page = html
	}

	if flags.out != "" {
		if err := export.WriteFile(flags.out, []byte(html)); err != nil {
			err = output.NewSystemErrorWithCause("failed to write output", err)
			printer.Error(err)
			return err
		}
		res.Path = flags.out
	}

	if isJSONMode(cmd) {
		return printer.WriteJSON(res)
	}

	printer.Diagnostics(source, res.Diagnostics)
	if flags.out != "" {
		return printer.Success(map[string]any{"message": "Wrote " + flags.out})
	}
	printer.Print("%s", html)
	return nil
}

// newRenderCmd creates the render command.
func newRenderCmd(a *app) *cobra.Command {
	var (
		templateID string
		flags      pageFlags
	)

	cmd := &cobra.Command{
		Use:   "render [<kind>] <id>",
		Short: "Render a document through its template",
		Long: `Render a document through its template and print the HTML.

Without --page the output is an HTML fragment: the template's style block
followed by its markup. Placeholders that do not resolve render empty and
are reported as warnings on stderr; rendering itself never fails.

If the document's template no longer exists, the kind's default template
is used and a warning is printed.

Examples:
  folio render res_20260115T150405Z_8f2c1a9b
  folio render resume res_20260115T150405Z_8f2c1a9b --template modern --page -o cv.html
  folio render cl_20260115T150405Z_1a2b3c4d --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, args, templateID, &flags)
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Render with this template instead of the document's")
	flags.register(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, a *app, args []string, templateID string, flags *pageFlags) error {
	printer := newPrinter(cmd)
	ctx := cmd.Context()

	doc, err := lookupDocument(a.Store(), args)
	if err != nil {
		printer.Error(err)
		return err
	}
	reg, err := a.Registry(ctx)
	if err != nil {
		printer.Error(err)
		return err
	}

	res, err := export.RenderDocument(ctx, reg, a.Renderer(), doc, templateID)
	if err != nil {
		err = output.WrapUserError(err)
		printer.Error(err)
		return err
	}
	if res.Fallback && !isJSONMode(cmd) {
		printer.Warn("template %q not found, rendered with %q", doc.TemplateID(), res.Template.ID)
	}

	html := flags.build(doc.DisplayName(), res.Rendered)
	return emit(cmd, printer, flags, res.Template.ID, html, renderResult{
		ID:          doc.DocumentID(),
		Kind:        doc.DocumentKind(),
		Template:    res.Template.ID,
		Fallback:    res.Fallback,
		HTML:        res.Markup,
		CSS:         res.Style,
		Diagnostics: res.Diagnostics,
	})
}

// newPreviewCmd creates the preview command.
func newPreviewCmd(a *app) *cobra.Command {
	var (
		kindArg string
		docID   string
		flags   pageFlags
	)

	cmd := &cobra.Command{
		Use:   "preview <template-file>",
		Short: "Render a template file against sample data",
		Long: `Render a template file against the sample document of its kind, or
against a saved document with --doc. Use it to check a template while
writing it, before adding it with 'folio templates add'.

The file holds optional YAML frontmatter (id, name, kind, description)
followed by HTML with an optional <style> block. The kind comes from
--kind, else the frontmatter, else resume.

Examples:
  folio preview mine.html
  folio preview letter.html --kind coverLetter --page -o letter.html
  folio preview mine.html --doc res_20260115T150405Z_8f2c1a9b`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, a, args[0], kindArg, docID, &flags)
		},
	}

	cmd.Flags().StringVar(&kindArg, "kind", "", "Document kind the template targets")
	cmd.Flags().StringVar(&docID, "doc", "", "Render against a saved document instead of sample data")
	flags.register(cmd)

	return cmd
}

func runPreview(cmd *cobra.Command, a *app, path, kindArg, docID string, flags *pageFlags) error {
	printer := newPrinter(cmd)

	tmpl, err := readTemplateFile(path)
	if err != nil {
		printer.Error(err)
		return err
	}
	if kindArg != "" {
		if tmpl.Kind, err = parseKindArg(kindArg); err != nil {
			printer.Error(err)
			return err
		}
	}
	if tmpl.Kind == "" {
		tmpl.Kind = document.KindResume
	}

	doc := document.Sample(tmpl.Kind)
	if docID != "" {
		if doc, err = a.Store().Get(tmpl.Kind, docID); err != nil {
			printer.Error(err)
			return err
		}
	}

	rendered := export.Render(a.Renderer(), tmpl, doc)
	html := flags.build(tmpl.Name, rendered)
	return emit(cmd, printer, flags, filepath.Base(path), html, renderResult{
		Kind:        tmpl.Kind,
		Template:    tmpl.ID,
		HTML:        rendered.Markup,
		CSS:         rendered.Style,
		Diagnostics: rendered.Diagnostics,
	})
}

// readTemplateFile parses an authored template file. The file name without
// extension is the fallback ID.
func readTemplateFile(path string) (*templates.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewUserError("cannot read " + path + ": " + err.Error())
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tmpl, err := templates.ParseFile(string(data), id)
	if err != nil {
		return nil, output.NewUserError(fmt.Sprintf("%s: %v", path, err))
	}
	return tmpl, nil
}

// newExportCmd creates the export command.
func newExportCmd(a *app) *cobra.Command {
	var (
		formatArg  string
		out        string
		templateID string
		sanitize   bool
	)

	cmd := &cobra.Command{
		Use:   "export [<kind>] <id>",
		Short: "Export a document as HTML, JSON or plain text",
		Long: `Export a document to a file.

Formats:
  html  standalone A4 page rendered through the document's template
  json  the document itself, importable with 'folio import'
  txt   plain text outline

The file is named after the document unless --out is given; "-" writes
to stdout.

Examples:
  folio export res_20260115T150405Z_8f2c1a9b --format html
  folio export resume res_20260115T150405Z_8f2c1a9b --format json -o backup.json
  folio export cl_20260115T150405Z_1a2b3c4d --format txt -o -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, a, args, formatArg, out, templateID, sanitize)
		},
	}

	cmd.Flags().StringVarP(&formatArg, "format", "f", "html", "Output format: html, json, txt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default <name>.<format>, - for stdout)")
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template for HTML export instead of the document's")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "Strip scripts and event handlers from HTML")

	return cmd
}

func runExport(cmd *cobra.Command, a *app, args []string, formatArg, out, templateID string, sanitize bool) error {
	printer := newPrinter(cmd)
	ctx := cmd.Context()

	format, err := export.ParseFormat(formatArg)
	if err != nil {
		err = output.WrapUserError(err)
		printer.Error(err)
		return err
	}

	doc, err := lookupDocument(a.Store(), args)
	if err != nil {
		printer.Error(err)
		return err
	}

	var (
		data  []byte
		diags []render.Diagnostic
	)
	switch format {
	case export.FormatHTML:
		reg, err := a.Registry(ctx)
		if err != nil {
			printer.Error(err)
			return err
		}
		res, err := export.RenderDocument(ctx, reg, a.Renderer(), doc, templateID)
		if err != nil {
			err = output.WrapUserError(err)
			printer.Error(err)
			return err
		}
		diags = res.Diagnostics
		page := export.HTMLPage(doc.DisplayName(), res.Markup, res.Style, export.PageOptions{Sanitize: sanitize})
		data = []byte(page)
	case export.FormatJSON:
		raw, err := document.ToJSON(doc)
		if err != nil {
			printer.Error(err)
			return err
		}
		data = append(raw, '\n')
	case export.FormatText:
		data = []byte(export.PlainText(doc))
	}

	if out == "-" {
		printer.Diagnostics(doc.TemplateID(), diags)
		printer.Print("%s", data)
		return nil
	}
	if out == "" {
		out = export.FileName(doc, format.Ext())
	}
	if err := export.WriteFile(out, data); err != nil {
		err = output.NewSystemErrorWithCause("failed to write export", err)
		printer.Error(err)
		return err
	}
	a.log().Info("document exported", "id", doc.DocumentID(), "format", string(format), "path", out)

	printer.Diagnostics(doc.TemplateID(), diags)
	if diags == nil {
		diags = []render.Diagnostic{}
	}
	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{
			"id":          doc.DocumentID(),
			"format":      string(format),
			"path":        out,
			"bytes":       len(data),
			"diagnostics": diags,
		})
	}
	return printer.Success(map[string]any{"message": fmt.Sprintf("Exported %s to %s", doc.DocumentID(), out)})
}
