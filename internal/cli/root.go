// Package cli wires the cobra command tree: scripted subcommands plus the
// interactive list when no subcommand is given.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/duetodo/internal/config"
	"github.com/idilsaglam/duetodo/internal/store"
	"github.com/idilsaglam/duetodo/internal/todo"
	"github.com/idilsaglam/duetodo/internal/tui"
	"github.com/idilsaglam/duetodo/internal/ui"
	"github.com/idilsaglam/duetodo/internal/view"
)

// App carries root flags and the opened store through a command run.
type App struct {
	ConfigPath string
	Backend    string
	DataDir    string
	Theme      string
	NoColor    bool
	Verbose    bool

	store    *store.Store
	svc      *todo.Service
	renderer *view.Renderer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A small todo list with due dates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  todo

  # Scriptable commands
  todo add "Buy milk" --due 2025-01-01
  todo ls --group
  todo done 2
  todo edit 1 --text "Buy oat milk" --clear-due
  todo rm 3
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(app.svc, app.renderer)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.open(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODO_CONFIG", ""), "Path to config.toml (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("TODO_BACKEND", ""), "Storage backend (file|sqlite|memory)")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", envOr("TODO_DATA_DIR", ""), "Directory holding the todo data")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("TODO_THEME", ""), "Color theme (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&app.Verbose, "verbose", false, "Report recovered storage errors")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

// open resolves config (file < env < flags), applies the theme and opens the store.
func (app *App) open(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Merge(config.Config{Backend: app.Backend, DataDir: app.DataDir, Theme: app.Theme})

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, app.NoColor || os.Getenv("NO_COLOR") != "")

	st, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return err
	}
	if app.Verbose {
		errOut := cmd.ErrOrStderr()
		st.OnError = func(err error) { ui.Warn(errOut, "storage: "+err.Error()+" (starting from an empty list)") }
	}
	app.store = st
	app.svc = todo.NewService(st)
	app.renderer = view.NewRenderer(st)
	return nil
}

func (app *App) close() error {
	if app.store == nil {
		return nil
	}
	err := app.store.Close()
	app.store = nil
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
