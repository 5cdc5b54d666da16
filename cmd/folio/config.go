package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/config"
	"github.com/gorewood/folio/internal/output"
)

// newConfigCmd creates the config command and its subcommands.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: `Show or change settings stored in config.yaml.

Settings:
  data_dir    where documents and custom templates are kept
  model       language model for rephrase and bullets
  log_level   debug, info, warn or error
  cache_size  compiled templates kept in memory

Examples:
  folio config
  folio config set model claude-haiku
  folio config set data_dir ""    # back to the default`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, a)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, a)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, a, args[0], args[1])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			if isJSONMode(cmd) {
				return printer.WriteJSON(map[string]string{"path": a.configPath})
			}
			printer.Println(a.configPath)
			return nil
		},
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, a *app) error {
	printer := newPrinter(cmd)
	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{"path": a.configPath, "settings": a.settings})
	}

	values := a.settings.Map()
	printer.KeyValue("config", a.configPath)
	for _, key := range config.Keys() {
		printer.KeyValue(key, values[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, a *app, key, value string) error {
	printer := newPrinter(cmd)

	// Start from the file, not the resolved settings, so defaults and
	// flag overrides are not written back.
	settings, err := config.Load(a.configPath)
	if err != nil {
		err = output.WrapUserError(err)
		printer.Error(err)
		return err
	}
	if err := settings.Set(key, value); err != nil {
		err = output.WrapUserError(err)
		printer.Error(err)
		return err
	}
	if err := config.Save(a.configPath, settings); err != nil {
		err = output.NewSystemErrorWithCause("failed to save config", err)
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"key":     key,
		"value":   value,
		"message": "Set " + key + " in " + a.configPath,
	})
}
