// Package cli implements the f4ze command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	editor "github.com/f4ze/editor"
	"github.com/f4ze/editor/config"
	"github.com/f4ze/editor/store/sqlite"
)

var (
	cfgFile string
	verbose bool
	dbPath  string
	keyFlag string

	// cfg is loaded before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "f4ze",
	Short: "Layered raster image editor",
	Long: `f4ze edits layered raster projects: import images, draw shapes and text,
apply adjustments, and export the flattened result. Projects are kept in a
local SQLite database.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ~/.f4ze/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "project database (overrides store.path)")
	rootCmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", "", "project key (overrides store.key)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".f4ze", "config.toml")
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	editor.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// projectKey returns the key the command acts on.
func projectKey() string {
	if keyFlag != "" {
		return keyFlag
	}
	return cfg.Store.Key
}

// withStore opens the project database for the duration of fn.
func withStore(fn func(st *sqlite.Store) error) error {
	path := dbPath
	if path == "" {
		p, err := cfg.StorePath()
		if err != nil {
			return err
		}
		path = p
	}
	st, err := sqlite.NewStore(path, sqlite.WithQuota(cfg.Store.Quota))
	if err != nil {
		return fmt.Errorf("opening project store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

// newEditor builds an editor from the loaded configuration.
func newEditor(extra ...editor.Option) (*editor.Editor, error) {
	opts, err := cfg.EditorOptions()
	if err != nil {
		return nil, err
	}
	return editor.New(append(opts, extra...)...)
}

// openProject loads the project under key into a new editor.
func openProject(ctx context.Context, st *sqlite.Store, key string, extra ...editor.Option) (*editor.Editor, error) {
	ed, err := newEditor(extra...)
	if err != nil {
		return nil, err
	}
	if err := ed.Load(ctx, st, key); err != nil {
		return nil, err
	}
	return ed, nil
}
