package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/export"
	"github.com/gorewood/folio/internal/output"
)

// newListCmd creates the list command.
func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [<kind>]",
		Short: "List saved documents",
		Long: `List saved documents, most recently modified first.

Examples:
  folio list              # All documents
  folio list coverLetter  # Cover letters only
  folio list --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, a, args)
		},
	}
}

// listedDocument is one row of list output.
type listedDocument struct {
	ID       string        `json:"id"`
	Kind     document.Kind `json:"kind"`
	Name     string        `json:"name"`
	Template string        `json:"template"`
	Modified string        `json:"modified,omitempty"`
}

func runList(cmd *cobra.Command, a *app, args []string) error {
	printer := newPrinter(cmd)

	kinds := document.Kinds()
	if len(args) == 1 {
		kind, err := parseKindArg(args[0])
		if err != nil {
			printer.Error(err)
			return err
		}
		kinds = []document.Kind{kind}
	}

	var (
		rows    []listedDocument
		skipped int
	)
	for _, kind := range kinds {
		docs, stats, err := a.Store().ListWithStats(kind)
		if err != nil {
			printer.Error(err)
			return err
		}
		skipped += stats.Skipped
		for _, doc := range docs {
			row := listedDocument{
				ID:       doc.DocumentID(),
				Kind:     kind,
				Name:     doc.DisplayName(),
				Template: doc.TemplateID(),
			}
			if m := doc.Modified(); !m.IsZero() {
				row.Modified = m.UTC().Format("2006-01-02 15:04")
			}
			rows = append(rows, row)
		}
	}

	if isJSONMode(cmd) {
		if rows == nil {
			rows = []listedDocument{}
		}
		return printer.WriteJSON(map[string]any{"documents": rows, "skipped": skipped})
	}

	if len(rows) == 0 {
		printer.Println("No documents. Create one with 'folio new resume'.")
	} else {
		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			table = append(table, []string{r.ID, r.Kind.Label(), r.Name, r.Template, r.Modified})
		}
		printer.Table([]string{"ID", "KIND", "NAME", "TEMPLATE", "MODIFIED"}, table)
	}
	if skipped > 0 {
		printer.Warn("skipped %d unreadable file(s)", skipped)
	}
	return nil
}

// newShowCmd creates the show command.
func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [<kind>] <id>",
		Short: "Display a document",
		Long: `Display a document's details, or its full JSON with --json.

Examples:
  folio show res_20260115T150405Z_8f2c1a9b
  folio show resume res_20260115T150405Z_8f2c1a9b --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, a, args)
		},
	}
}

func runShow(cmd *cobra.Command, a *app, args []string) error {
	printer := newPrinter(cmd)

	doc, err := lookupDocument(a.Store(), args)
	if err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return export.WriteJSON(cmd.OutOrStdout(), doc)
	}

	printer.Println(doc.DocumentID())
	printer.KeyValue("Name", doc.DisplayName())
	printer.KeyValue("Kind", doc.DocumentKind().Label())
	printer.KeyValue("Template", doc.TemplateID())
	if m := doc.Modified(); !m.IsZero() {
		printer.KeyValue("Modified", m.UTC().Format("2006-01-02 15:04:05 UTC"))
	}

	switch d := doc.(type) {
	case *document.Resume:
		showResume(printer, d)
	case *document.CoverLetter:
		showCoverLetter(printer, d)
	}
	return nil
}

func showPersonal(printer *output.Printer, pd document.PersonalDetails) {
	printer.Section("Personal Details")
	for _, kv := range [][2]string{
		{"Full name", pd.FullName},
		{"Job title", pd.JobTitle},
		{"Email", pd.Email},
		{"Phone", pd.Phone},
		{"Address", pd.Address},
		{"LinkedIn", pd.LinkedIn},
		{"Website", pd.Website},
	} {
		if kv[1] != "" {
			printer.KeyValue(kv[0], kv[1])
		}
	}
}

func showResume(printer *output.Printer, r *document.Resume) {
	showPersonal(printer, r.PersonalDetails)

	if r.Summary != "" {
		printer.Println()
		printer.Box("Summary", r.Summary)
	}

	if len(r.Experience) > 0 {
		printer.Section("Experience")
		for _, exp := range r.Experience {
			printer.Println(fmt.Sprintf("%s, %s (%s - %s)  [%s]", exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate, exp.ID))
			for _, line := range exp.Responsibilities {
				printer.Println("  - " + line)
			}
		}
	}

	counts := []struct {
		label string
		n     int
	}{
		{"Education", len(r.Education)},
		{"Skills", len(r.Skills)},
		{"Projects", len(r.Projects)},
		{"Languages", len(r.Languages)},
		{"Courses", len(r.Courses)},
		{"Awards", len(r.Awards)},
		{"References", len(r.References)},
	}
	printer.Section("Sections")
	for _, c := range counts {
		printer.KeyValue(c.label, strconv.Itoa(c.n))
	}
}

func showCoverLetter(printer *output.Printer, c *document.CoverLetter) {
	showPersonal(printer, c.PersonalDetails)
	printer.Section("Recipient")
	printer.KeyValue("Name", c.RecipientName)
	printer.KeyValue("Company", c.RecipientCompany)
	printer.KeyValue("Date", c.Date)
	printer.Println()
	printer.Box("Body", c.Body)
}

// newDeleteCmd creates the delete command.
func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [<kind>] <id>",
		Short: "Delete a document",
		Long: `Delete a saved document.

Asks for confirmation on a terminal unless --yes is given.

Examples:
  folio delete cl_20260115T150405Z_1a2b3c4d --yes`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, a, args, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, a *app, args []string, yes bool) error {
	printer := newPrinter(cmd)

	doc, err := lookupDocument(a.Store(), args)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !yes && !isJSONMode(cmd) && output.IsTTY(os.Stdin) {
		ok, err := a.prompt().Confirm(cmd.Context(), fmt.Sprintf("Delete %s %q?", doc.DocumentKind().Label(), doc.DisplayName()), false)
		if err != nil {
			printer.Error(err)
			return err
		}
		if !ok {
			return errAborted
		}
	}

	if err := a.Store().Delete(doc.DocumentKind(), doc.DocumentID()); err != nil {
		printer.Error(err)
		return err
	}
	a.log().Info("document deleted", "kind", doc.DocumentKind(), "id", doc.DocumentID())

	return printer.Success(map[string]any{
		"id":      doc.DocumentID(),
		"kind":    string(doc.DocumentKind()),
		"deleted": true,
		"message": "Deleted " + doc.DocumentID(),
	})
}

// newImportCmd creates the import command.
func newImportCmd(a *app) *cobra.Command {
	var (
		force bool
		newID bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a document from JSON",
		Long: `Import a resume or cover letter from a JSON file, or "-" for stdin.

The kind is read from the file's "kind" field, or inferred from its
fields when absent. A document without an ID, or any document with
--new-id, is given a fresh one. A missing template is set to the kind's
default.

Examples:
  folio import resume.json
  folio import --new-id letter.json
  cat resume.json | folio import -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, a, args[0], force, newID)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document with the same ID")
	cmd.Flags().BoolVar(&newID, "new-id", false, "Assign a fresh ID")

	return cmd
}

func runImport(cmd *cobra.Command, a *app, path string, force, newID bool) error {
	printer := newPrinter(cmd)

	in := a.input(cmd)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			err = output.NewUserError("cannot open " + path + ": " + err.Error())
			printer.Error(err)
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	doc, err := export.ReadJSON(in)
	if err != nil {
		err = output.WrapUserError(err)
		printer.Error(err)
		return err
	}

	now := a.clock()
	if newID || doc.DocumentID() == "" {
		setID(doc, document.NewID(doc.DocumentKind(), now))
	}
	if strings.TrimSpace(doc.TemplateID()) == "" {
		doc.SetTemplateID(document.DefaultTemplate(doc.DocumentKind()))
	}
	doc.Touch(now)

	if err := a.Store().Save(doc, force); err != nil {
		printer.Error(err)
		if errors.Is(err, output.ErrExists) {
			printer.Stderr("Use --force to overwrite it or --new-id to import a copy.\n")
		}
		return err
	}
	a.log().Info("document imported", "kind", doc.DocumentKind(), "id", doc.DocumentID(), "file", path)

	return printer.Success(map[string]any{
		"id":      doc.DocumentID(),
		"kind":    string(doc.DocumentKind()),
		"name":    doc.DisplayName(),
		"message": fmt.Sprintf("Imported %s %s", doc.DocumentKind().Label(), doc.DocumentID()),
	})
}

func setID(doc document.Document, id string) {
	switch d := doc.(type) {
	case *document.Resume:
		d.ID = id
	case *document.CoverLetter:
		d.ID = id
	}
}

// newSetTemplateCmd creates the set-template command.
func newSetTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-template [<kind>] <id> <template>",
		Short: "Change the template a document renders with",
		Long: `Change the template a document renders with. The template must exist
and target the document's kind.

Examples:
  folio set-template resume res_20260115T150405Z_8f2c1a9b modern`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetTemplate(cmd, a, args[:len(args)-1], args[len(args)-1])
		},
	}
}

func runSetTemplate(cmd *cobra.Command, a *app, docArgs []string, templateID string) error {
	printer := newPrinter(cmd)

	doc, err := lookupDocument(a.Store(), docArgs)
	if err != nil {
		printer.Error(err)
		return err
	}
	if err := checkTemplate(cmd.Context(), a, templateID, doc.DocumentKind()); err != nil {
		printer.Error(err)
		return err
	}

	previous := doc.TemplateID()
	doc.SetTemplateID(templateID)
	doc.Touch(a.clock())
	if err := a.Store().Save(doc, true); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"id":       doc.DocumentID(),
		"template": templateID,
		"previous": previous,
		"message":  fmt.Sprintf("%s now renders with %s", doc.DocumentID(), templateID),
	})
}
