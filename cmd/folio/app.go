package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/folio/internal/assist"
	"github.com/gorewood/folio/internal/config"
	"github.com/gorewood/folio/internal/llm"
	"github.com/gorewood/folio/internal/output"
	"github.com/gorewood/folio/internal/render"
	"github.com/gorewood/folio/internal/store"
	"github.com/gorewood/folio/internal/templates"
)

// templateStore is the writable side of the custom template database.
type templateStore interface {
	templates.CustomSource
	Save(ctx context.Context, t *templates.Template, force bool) error
	Delete(ctx context.Context, id string) error
}

// app holds the services commands run against. Fields left nil are built
// from flags and config.yaml on first use; tests set them directly.
type app struct {
	settings   config.Settings
	configPath string
	logger     *slog.Logger

	store     store.Store
	custom    templateStore
	registry  *templates.Registry
	renderer  *render.Renderer
	completer assist.Completer
	prompter  prompter

	now   func() time.Time
	stdin io.Reader

	ready   bool
	closers []io.Closer
}

// setup loads env files and settings and configures logging. Flags
// override config.yaml. A second call is a no-op.
func (a *app) setup(cmd *cobra.Command) error {
	if a.ready {
		return nil
	}
	a.ready = true

	loaded, envErr := config.LoadEnv(config.EnvFiles()...)

	if a.configPath == "" {
		a.configPath = config.Path()
	}
	settings, err := config.Load(a.configPath)
	if err != nil {
		return output.WrapUserError(err)
	}
	flags := cmd.Root().PersistentFlags()
	if dir, _ := flags.GetString("data-dir"); dir != "" {
		settings.DataDir = dir
	}
	if lvl, _ := flags.GetString("log-level"); lvl != "" {
		settings.LogLevel = lvl
	}
	a.settings = settings.Resolved()

	level, err := config.ParseLogLevel(a.settings.LogLevel)
	if err != nil {
		return output.WrapUserError(err)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}

	if envErr != nil {
		a.logger.Warn("reading env file", "error", envErr)
	}
	if len(loaded) > 0 {
		a.logger.Debug("loaded env files", "files", loaded)
	}
	return nil
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	return a.logger
}

func (a *app) clock() time.Time {
	if a.now == nil {
		return time.Now().UTC()
	}
	return a.now()
}

func (a *app) input(cmd *cobra.Command) io.Reader {
	if a.stdin != nil {
		return a.stdin
	}
	return cmd.InOrStdin()
}

// Store returns the document store under <data_dir>/documents.
func (a *app) Store() store.Store {
	if a.store == nil {
		a.store = store.NewFileStorage(filepath.Join(a.settings.DataDir, "documents"))
	}
	return a.store
}

// Templates returns the custom template database at <data_dir>/templates.db.
func (a *app) Templates(ctx context.Context) (templateStore, error) {
	if a.custom != nil {
		return a.custom, nil
	}
	db, err := templates.OpenCustomStore(ctx, filepath.Join(a.settings.DataDir, "templates.db"))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to open template database", err)
	}
	a.custom = db
	a.closers = append(a.closers, db)
	return db, nil
}

// Registry returns the template registry over built-ins and custom templates.
func (a *app) Registry(ctx context.Context) (*templates.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}
	custom, err := a.Templates(ctx)
	if err != nil {
		return nil, err
	}
	a.registry = templates.NewRegistry(custom)
	return a.registry, nil
}

// Renderer returns the shared renderer with its compiled-template cache.
func (a *app) Renderer() *render.Renderer {
	if a.renderer == nil {
		a.renderer = render.NewRenderer(
			render.WithLogger(a.log().With("component", "render")),
			render.WithCache(a.settings.CacheSize),
		)
	}
	return a.renderer
}

// Assistant returns a writing assistant backed by the model named by
// --model, else config.yaml, else the default model.
func (a *app) Assistant(model string) (*assist.Assistant, error) {
	if a.completer == nil {
		if model == "" {
			model = a.settings.Model
		}
		client, err := llm.New(model, "", llm.WithLogger(a.log().With("component", "llm")))
		if err != nil {
			return nil, err
		}
		a.completer = client
	}
	return assist.New(a.completer, a.log()), nil
}

// Close releases databases opened during the command.
func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
