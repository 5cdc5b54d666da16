// Package main provides the entry point for the folio CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the folio CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(&app{})
}

// newRootCmdInternal builds the command tree around a. Tests pass an app
// with services already injected.
func newRootCmdInternal(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Resumes and cover letters rendered through templates",
		Long: `Folio - Keep resumes and cover letters as structured documents and render
them through HTML templates.

Folio stores each document as JSON and fills templates that reference its
fields with {{path}} placeholders and {{#each list}}...{{/each}} blocks.
Templates that reference missing fields never fail; they render with the
gaps left empty and report diagnostics.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'folio --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Env files supply API keys; variables already set always win.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}
	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return a.Close()
	}

	flags := cmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.String("color", "auto", "Color output: auto, always, never")
	flags.String("data-dir", "", "Document and template data directory (default from config)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default from config)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, a)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "docs", Title: "Document Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "render", Title: "Rendering Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "templates", Title: "Template Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "assist", Title: "Writing Assist Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command, a *app) {
	addGroupedCommand(cmd, newNewCmd(a), "docs")
	addGroupedCommand(cmd, newListCmd(a), "docs")
	addGroupedCommand(cmd, newShowCmd(a), "docs")
	addGroupedCommand(cmd, newDeleteCmd(a), "docs")
	addGroupedCommand(cmd, newImportCmd(a), "docs")
	addGroupedCommand(cmd, newSetTemplateCmd(a), "docs")

	addGroupedCommand(cmd, newRenderCmd(a), "render")
	addGroupedCommand(cmd, newPreviewCmd(a), "render")
	addGroupedCommand(cmd, newExportCmd(a), "render")

	addGroupedCommand(cmd, newTemplatesCmd(a), "templates")

	addGroupedCommand(cmd, newRephraseCmd(a), "assist")
	addGroupedCommand(cmd, newBulletsCmd(a), "assist")

	addGroupedCommand(cmd, newServeCmd(a), "admin")
	addGroupedCommand(cmd, newConfigCmd(a), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// newPrinter creates a Printer for cmd honoring --json and --color.
// Human errors and warnings go to the command's stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	colorMode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		colorMode = flag.Value.String()
	}
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}
