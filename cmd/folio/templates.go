package main

import (
	"errors"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/document"
	"github.com/gorewood/folio/internal/output"
	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/templates"
)

// newTemplatesCmd creates the templates command and its subcommands.
func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "tpl"},
		Short:   "Manage built-in and custom templates",
		Long: `Manage templates.

Built-in templates ship with folio. Custom templates are stored in the
data directory and take precedence over a built-in with the same ID.

A template file is optional YAML frontmatter followed by HTML:

  ---
  name: Compact
  kind: resume
  description: One-column layout
  ---
  <style>h1 { color: {{accentColor}}; }</style>
  <h1>{{personalDetails.fullName}}</h1>
  {{#each experience}}<p>{{this.jobTitle}} at {{this.company}}</p>{{/each}}`,
	}

	cmd.AddCommand(newTemplatesListCmd(a))
	cmd.AddCommand(newTemplatesShowCmd(a))
	cmd.AddCommand(newTemplatesAddCmd(a))
	cmd.AddCommand(newTemplatesRemoveCmd(a))
	cmd.AddCommand(newTemplatesFieldsCmd())

	return cmd
}

func newTemplatesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [<kind>]",
		Short: "List available templates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			ctx := cmd.Context()

			var kind document.Kind
			if len(args) == 1 {
				k, err := parseKindArg(args[0])
				if err != nil {
					printer.Error(err)
					return err
				}
				kind = k
			}

			reg, err := a.Registry(ctx)
			if err != nil {
				printer.Error(err)
				return err
			}
			infos, err := reg.List(ctx, kind)
			if err != nil {
				printer.Error(err)
				return err
			}

			if isJSONMode(cmd) {
				if infos == nil {
					infos = []templates.Info{}
				}
				return printer.WriteJSON(map[string]any{"templates": infos})
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				source := info.Source
				if info.Overrides {
					source += " (overrides built-in)"
				}
				rows = append(rows, []string{info.ID, info.Kind.Label(), info.Name, source, info.Description})
			}
			printer.Table([]string{"ID", "KIND", "NAME", "SOURCE", "DESCRIPTION"}, rows)
			return nil
		},
	}
}

func newTemplatesShowCmd(a *app) *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a template in file form",
		Long: `Print a template as a template file: frontmatter, style block, markup.
The output can be edited and re-added with 'folio templates add'.

Examples:
  folio templates show classic > mine.html
  folio templates show classic --builtin   # ignore a custom override`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			ctx := cmd.Context()

			var (
				tmpl *templates.Template
				err  error
			)
			if builtin {
				tmpl, err = templates.Builtin(args[0])
			} else {
				var reg *templates.Registry
				if reg, err = a.Registry(ctx); err == nil {
					tmpl, err = reg.Resolve(ctx, args[0])
				}
			}
			if err != nil {
				err = templateError(err)
				printer.Error(err)
				return err
			}

			if isJSONMode(cmd) {
				return printer.WriteJSON(tmpl)
			}
			raw, err := templates.FormatFile(tmpl)
			if err != nil {
				printer.Error(err)
				return err
			}
			printer.Print("%s", raw)
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "Show the built-in template even if a custom one overrides it")

	return cmd
}

func newTemplatesAddCmd(a *app) *cobra.Command {
	var (
		id    string
		kind  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a custom template from a file",
		Long: `Add a custom template from a template file.

The ID comes from --id, else the frontmatter, else the file name. The kind
comes from --kind or the frontmatter and is required. Placeholder problems
in the template are reported as warnings; the template is saved anyway.

Examples:
  folio templates add compact.html
  folio templates add letter.html --kind coverLetter --id letterhead
  folio templates add classic.html --force   # replace an existing custom template`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			ctx := cmd.Context()

			tmpl, err := readTemplateFile(args[0])
			if err != nil {
				printer.Error(err)
				return err
			}
			if id != "" {
				tmpl.ID = id
			}
			if kind != "" {
				if tmpl.Kind, err = parseKindArg(kind); err != nil {
					printer.Error(err)
					return err
				}
			}

			db, err := a.Templates(ctx)
			if err != nil {
				printer.Error(err)
				return err
			}
			if err := db.Save(ctx, tmpl, force); err != nil {
				err = templateError(err)
				printer.Error(err)
				return err
			}
			a.log().Info("template added", "id", tmpl.ID, "kind", tmpl.Kind)

			// Parse problems are worth knowing about at authoring time.
			diags := slices.Concat(
				render.WithSource(a.Renderer().Compile(tmpl.Markup).Diagnostics(), render.SourceMarkup),
				render.WithSource(a.Renderer().Compile(tmpl.Style).Diagnostics(), render.SourceStyle),
			)
			printer.Diagnostics(tmpl.ID, diags)

			overrides := false
			if _, err := templates.Builtin(tmpl.ID); err == nil {
				overrides = true
			}
			msg := "Added template " + tmpl.ID
			if overrides {
				msg += " (overrides the built-in)"
			}
			return printer.Success(map[string]any{
				"id":          tmpl.ID,
				"kind":        string(tmpl.Kind),
				"overrides":   overrides,
				"diagnostics": len(diags),
				"message":     msg,
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Template ID")
	cmd.Flags().StringVar(&kind, "kind", "", "Document kind the template targets")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing custom template")

	return cmd
}

func newTemplatesRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a custom template",
		Long: `Remove a custom template. Built-in templates cannot be removed; removing
a custom override restores the built-in of the same ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			ctx := cmd.Context()

			db, err := a.Templates(ctx)
			if err != nil {
				printer.Error(err)
				return err
			}
			if err := db.Delete(ctx, args[0]); err != nil {
				if _, builtinErr := templates.Builtin(args[0]); builtinErr == nil && errors.Is(err, templates.ErrNotFound) {
					err = output.NewUserError("cannot remove built-in template " + args[0])
				} else {
					err = templateError(err)
				}
				printer.Error(err)
				return err
			}
			return printer.Success(map[string]any{
				"id":      args[0],
				"removed": true,
				"message": "Removed template " + args[0],
			})
		},
	}
}

func newTemplatesFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [<kind>]",
		Short: "List the placeholders templates can use",
		Long: `List the placeholder paths available to templates of a kind.

Sections with a loop are rendered with {{#each <loop>}}...{{/each}}; their
fields are written as {{this.<field>}} inside the block.

Examples:
  folio templates fields
  folio templates fields coverLetter`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			kind := document.KindResume
			if len(args) == 1 {
				k, err := parseKindArg(args[0])
				if err != nil {
					printer.Error(err)
					return err
				}
				kind = k
			}

			sections := document.Placeholders(kind)
			if isJSONMode(cmd) {
				return printer.WriteJSON(map[string]any{"kind": kind, "sections": sections})
			}

			for _, s := range sections {
				printer.Section(s.Section)
				if s.Loop != "" {
					printer.Println("{{#each " + s.Loop + "}} ... {{/each}}")
				}
				fields := make([]string, 0, len(s.Fields))
				for _, f := range s.Fields {
					if s.Loop != "" {
						f = "this." + f
					}
					fields = append(fields, "{{"+f+"}}")
				}
				printer.Println("  " + strings.Join(fields, " "))
			}
			return nil
		},
	}
}

// templateError classifies template store errors for exit codes.
func templateError(err error) error {
	var verr *document.ValidationError
	switch {
	case errors.Is(err, templates.ErrExists):
		return output.NewConflictError(err.Error() + " (use --force to replace)")
	case errors.Is(err, templates.ErrNotFound), errors.Is(err, templates.ErrKindMismatch), errors.As(err, &verr):
		return output.WrapUserError(err)
	}
	return err
}
