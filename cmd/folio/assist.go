package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/assist"
	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
)

// newRephraseCmd creates the rephrase command.
func newRephraseCmd(a *app) *cobra.Command {
	var (
		tone  string
		model string
		docID string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "rephrase [<text>]",
		Short: "Rewrite text in a different tone",
		Long: `Rewrite text with a language model.

The text comes from the argument, from stdin, or with --doc from a saved
document: a resume's summary or a cover letter's body. With --save the
rewrite replaces that field.

Models are named like claude-haiku, gpt-5-mini, gemini-flash or local.
The API key is read from the provider's environment variable, or from
.env.local, .env or the env file in the config directory.

Examples:
  folio rephrase "I did backend work on payments"
  folio rephrase --tone "more concise" < summary.txt
  folio rephrase --doc res_20260115T150405Z_8f2c1a9b --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRephrase(cmd, a, args, tone, model, docID, save)
		},
	}

	cmd.Flags().StringVar(&tone, "tone", assist.DefaultTone, "Tone to rewrite in, e.g. "+quote(strings.Join(assist.Tones[1:], `", "`)))
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use (default from config, else "+quote("gemini-flash")+")")
	cmd.Flags().StringVar(&docID, "doc", "", "Rephrase a saved document's summary or body")
	cmd.Flags().BoolVar(&save, "save", false, "Write the rewrite back to the document (with --doc)")

	return cmd
}

func runRephrase(cmd *cobra.Command, a *app, args []string, tone, model, docID string, save bool) error {
	printer := newPrinter(cmd)

	if save && docID == "" {
		err := output.NewUserError("--save requires --doc")
		printer.Error(err)
		return err
	}

	var (
		text string
		doc  document.Document
	)
	switch {
	case docID != "":
		var err error
		if doc, err = lookupDocument(a.Store(), []string{docID}); err != nil {
			printer.Error(err)
			return err
		}
		text = rephraseField(doc)
	case len(args) == 1:
		text = args[0]
	default:
		data, err := io.ReadAll(a.input(cmd))
		if err != nil {
			err = output.NewSystemErrorWithCause("failed to read stdin", err)
			printer.Error(err)
			return err
		}
		text = string(data)
	}

	assistant, err := a.Assistant(model)
	if err != nil {
		printer.Error(err)
		return err
	}
	rewritten, err := assistant.Rephrase(cmd.Context(), text, tone)
	if err != nil {
		err = assistError(err)
		printer.Error(err)
		return err
	}

	if save {
		setRephraseField(doc, rewritten)
		doc.Touch(a.clock())
		if err := a.Store().Save(doc, true); err != nil {
			printer.Error(err)
			return err
		}
	}

	if isJSONMode(cmd) {
		result := map[string]any{"text": rewritten, "tone": tone}
		if doc != nil {
			result["id"] = doc.DocumentID()
			result["saved"] = save
		}
		return printer.WriteJSON(result)
	}
	printer.Println(rewritten)
	if save {
		printer.Stderr("Saved to %s\n", doc.DocumentID())
	}
	return nil
}

func rephraseField(doc document.Document) string {
	switch d := doc.(type) {
	case *document.Resume:
		return d.Summary
	case *document.CoverLetter:
		return d.Body
	}
	return ""
}

func setRephraseField(doc document.Document, text string) {
	switch d := doc.(type) {
	case *document.Resume:
		d.Summary = text
	case *document.CoverLetter:
		d.Body = text
	}
}

// newBulletsCmd creates the bullets command.
func newBulletsCmd(a *app) *cobra.Command {
	var (
		company      string
		description  string
		model        string
		docID        string
		experienceID string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "bullets [<job title>]",
		Short: "Draft responsibility bullets for a position",
		Long: `Draft resume bullet points for a position with a language model.

Give the job title directly, or point at an experience entry of a saved
resume with --doc and --experience; its title and company are used. With
--save the bullets are appended to that entry.

Examples:
  folio bullets "Site Reliability Engineer" --company Acme
  folio bullets --doc res_20260115T150405Z_8f2c1a9b --experience exp-1 --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBullets(cmd, a, args, bulletsOptions{
				company:      company,
				description:  description,
				model:        model,
				docID:        docID,
				experienceID: experienceID,
				save:         save,
			})
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&description, "description", "", "Keywords or a short description of the role")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use (default from config, else "+quote("gemini-flash")+")")
	cmd.Flags().StringVar(&docID, "doc", "", "Resume to take the position from")
	cmd.Flags().StringVar(&experienceID, "experience", "", "Experience entry ID (with --doc)")
	cmd.Flags().BoolVar(&save, "save", false, "Append the bullets to the experience entry")

	return cmd
}

type bulletsOptions struct {
	company, description, model string
	docID, experienceID         string
	save                        bool
}

func runBullets(cmd *cobra.Command, a *app, args []string, opts bulletsOptions) error {
	printer := newPrinter(cmd)

	jobTitle := ""
	if len(args) == 1 {
		jobTitle = args[0]
	}

	var resume *document.Resume
	if opts.docID != "" || opts.save {
		if opts.docID == "" || opts.experienceID == "" {
			err := output.NewUserError("--doc and --experience are required together")
			printer.Error(err)
			return err
		}
		doc, err := a.Store().Get(document.KindResume, opts.docID)
		if err != nil {
			printer.Error(err)
			return err
		}
		resume = doc.(*document.Resume)
		exp, ok := findExperience(resume, opts.experienceID)
		if !ok {
			err := output.NewUserError("experience entry not found: " + opts.experienceID)
			printer.Error(err)
			return err
		}
		if jobTitle == "" {
			jobTitle = exp.JobTitle
		}
		if opts.company == "" {
			opts.company = exp.Company
		}
	}

	assistant, err := a.Assistant(opts.model)
	if err != nil {
		printer.Error(err)
		return err
	}
	bullets, err := assistant.Responsibilities(cmd.Context(), jobTitle, opts.company, opts.description)
	if err != nil {
		err = assistError(err)
		printer.Error(err)
		return err
	}

	if opts.save {
		assist.AppendResponsibilities(resume, opts.experienceID, bullets)
		resume.Touch(a.clock())
		if err := a.Store().Save(resume, true); err != nil {
			printer.Error(err)
			return err
		}
	}

	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{"bullets": bullets, "saved": opts.save})
	}
	for _, b := range bullets {
		printer.Println("- " + b)
	}
	if opts.save {
		printer.Stderr("Appended %d bullet(s) to %s\n", len(bullets), opts.experienceID)
	}
	return nil
}

func findExperience(r *document.Resume, id string) (document.Experience, bool) {
	for _, exp := range r.Experience {
		if exp.ID == id {
			return exp, true
		}
	}
	return document.Experience{}, false
}

func assistError(err error) error {
	if errors.Is(err, assist.ErrEmptyInput) {
		return output.WrapUserError(err)
	}
	return err
}
