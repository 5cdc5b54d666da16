package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
)

// newNewCmd creates the new command.
func newNewCmd(a *app) *cobra.Command {
	var (
		name        string
		templateID  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "new <kind>",
		Short: "Create a resume or cover letter",
		Long: `Create a document pre-filled with example content.

The document is saved with a fresh ID and the kind's default template.
With --interactive, folio asks for the name, contact details and the
main text before saving.

Examples:
  folio new resume --name "Backend roles"
  folio new coverLetter --template professional
  folio new resume --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, a, args[0], name, templateID, interactive)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Document name (default \"Untitled <Kind>\")")
	cmd.Flags().StringVar(&templateID, "template", "", "Template ID (default for the kind)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for document details")

	return cmd
}

func runNew(cmd *cobra.Command, a *app, kindArg, name, templateID string, interactive bool) error {
	printer := newPrinter(cmd)

	kind, err := parseKindArg(kindArg)
	if err != nil {
		printer.Error(err)
		return err
	}

	doc := document.New(kind, name, a.clock())
	if templateID != "" {
		if err := checkTemplate(cmd.Context(), a, templateID, kind); err != nil {
			printer.Error(err)
			return err
		}
		doc.SetTemplateID(templateID)
	}

	if interactive {
		if err := askDocument(cmd.Context(), a, doc); err != nil {
			printer.Error(err)
			return err
		}
	}

	if err := a.Store().Save(doc, false); err != nil {
		printer.Error(err)
		return err
	}
	a.log().Info("document created", "kind", kind, "id", doc.DocumentID())

	return printer.Success(map[string]any{
		"id":       doc.DocumentID(),
		"kind":     string(kind),
		"name":     doc.DisplayName(),
		"template": doc.TemplateID(),
		"message":  fmt.Sprintf("Created %s %s", kind.Label(), doc.DocumentID()),
	})
}

// checkTemplate verifies templateID exists and targets kind.
func checkTemplate(ctx context.Context, a *app, templateID string, kind document.Kind) error {
	reg, err := a.Registry(ctx)
	if err != nil {
		return err
	}
	if _, err := reg.ResolveFor(ctx, templateID, kind); err != nil {
		return output.WrapUserError(err)
	}
	return nil
}

// askDocument fills the main fields of doc from interactive prompts.
func askDocument(ctx context.Context, a *app, doc document.Document) error {
	p := a.prompt()

	switch d := doc.(type) {
	case *document.Resume:
		if err := askCommon(ctx, p, &d.Name, &d.PersonalDetails); err != nil {
			return err
		}
		if err := askTemplate(ctx, a, doc); err != nil {
			return err
		}
		fonts := make([]string, 0, len(document.FontFamilies()))
		for _, f := range document.FontFamilies() {
			fonts = append(fonts, string(f))
		}
		font, err := p.Select(ctx, "Font family:", fonts, string(d.FontFamily))
		if err != nil {
			return err
		}
		d.FontFamily = document.FontFamily(font)
		if d.AccentColor, err = p.Input(ctx, "Accent color:", d.AccentColor, false); err != nil {
			return err
		}
		d.Summary, err = p.TextArea(ctx, "Professional summary:", d.Summary)
		return err

	case *document.CoverLetter:
		if err := askCommon(ctx, p, &d.Name, &d.PersonalDetails); err != nil {
			return err
		}
		if err := askTemplate(ctx, a, doc); err != nil {
			return err
		}
		var err error
		if d.RecipientName, err = p.Input(ctx, "Recipient name:", d.RecipientName, false); err != nil {
			return err
		}
		if d.RecipientCompany, err = p.Input(ctx, "Recipient company:", d.RecipientCompany, false); err != nil {
			return err
		}
		d.Body, err = p.TextArea(ctx, "Letter body:", d.Body)
		return err
	}
	return nil
}

func askCommon(ctx context.Context, p prompter, name *string, pd *document.PersonalDetails) error {
	fields := []struct {
		message  string
		target   *string
		required bool
	}{
		{"Document name:", name, true},
		{"Full name:", &pd.FullName, true},
		{"Job title:", &pd.JobTitle, false},
		{"Email:", &pd.Email, false},
		{"Phone:", &pd.Phone, false},
		{"Address:", &pd.Address, false},
		{"LinkedIn:", &pd.LinkedIn, false},
		{"Website:", &pd.Website, false},
	}
	for _, f := range fields {
		v, err := p.Input(ctx, f.message, *f.target, f.required)
		if err != nil {
			return err
		}
		*f.target = v
	}
	return nil
}

func askTemplate(ctx context.Context, a *app, doc document.Document) error {
	reg, err := a.Registry(ctx)
	if err != nil {
		return err
	}
	infos, err := reg.List(ctx, doc.DocumentKind())
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	id, err := a.prompt().Select(ctx, "Template:", ids, doc.TemplateID())
	if err != nil {
		return err
	}
	doc.SetTemplateID(id)
	return nil
}
