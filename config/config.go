// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	editor "github.com/f4ze/editor"
)

// Config mirrors the TOML file. Zero-valued keys missing from the file keep
// their defaults.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	History History `toml:"history"`
	Fill    Fill    `toml:"fill"`
	Import  Import  `toml:"import"`
	Text    Text    `toml:"text"`
	Store   Store   `toml:"store"`
	Log     Log     `toml:"log"`
}

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type History struct {
	Capacity int `toml:"capacity"`
}

type Fill struct {
	Tolerance int `toml:"tolerance"`
	MaxPixels int `toml:"max_pixels"`
}

type Import struct {
	MaxDimension  int    `toml:"max_dimension"`
	Interpolation string `toml:"interpolation"`
}

// Text holds the defaults for new text objects.
type Text struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
}

type Store struct {
	// Path is the SQLite database file. Empty means ~/.f4ze/projects.db.
	Path  string `toml:"path"`
	Key   string `toml:"key"`
	Quota int64  `toml:"quota"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas:  Canvas{Width: editor.DefaultWidth, Height: editor.DefaultHeight, Background: "#ffffff"},
		History: History{Capacity: editor.DefaultHistoryCapacity},
		Fill:    Fill{Tolerance: editor.DefaultFillTolerance, MaxPixels: editor.DefaultFillLimit},
		Import:  Import{MaxDimension: editor.DefaultMaxImportDimension, Interpolation: "bilinear"},
		Text:    Text{Family: "Arial", Size: 16},
		Store:   Store{Key: editor.DefaultStoreKey},
		Log:     Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", editor.ErrInvalidInput, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path with restricted permissions.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks every value.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return &editor.DimensionError{Width: c.Canvas.Width, Height: c.Canvas.Height}
	}
	if _, err := editor.Hex(c.Canvas.Background); err != nil {
		return err
	}
	if c.History.Capacity < 1 {
		return invalid("history.capacity", c.History.Capacity)
	}
	if c.Fill.Tolerance < 0 || c.Fill.Tolerance > 255 {
		return invalid("fill.tolerance", c.Fill.Tolerance)
	}
	if c.Fill.MaxPixels < 0 {
		return invalid("fill.max_pixels", c.Fill.MaxPixels)
	}
	if c.Import.MaxDimension < 0 {
		return invalid("import.max_dimension", c.Import.MaxDimension)
	}
	if _, err := editor.ParseInterpolation(c.Import.Interpolation); err != nil {
		return err
	}
	if c.Text.Family == "" {
		return invalid("text.family", c.Text.Family)
	}
	if c.Text.Size <= 0 {
		return invalid("text.size", c.Text.Size)
	}
	if c.Store.Quota < 0 {
		return invalid("store.quota", c.Store.Quota)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s = %v", editor.ErrInvalidInput, key, v)
}

// SlogLevel parses the level name ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", editor.ErrInvalidInput, l.Level)
	}
	return lvl, nil
}

// StorePath returns the database path, defaulting under the home directory.
func (c Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".f4ze", "projects.db"), nil
}

// EditorOptions converts the settings into editor options. Call Validate
// first; invalid values are reported again here.
func (c Config) EditorOptions() ([]editor.Option, error) {
	bg, err := editor.Hex(c.Canvas.Background)
	if err != nil {
		return nil, err
	}
	interp, err := editor.ParseInterpolation(c.Import.Interpolation)
	if err != nil {
		return nil, err
	}
	return []editor.Option{
		editor.WithCanvasSize(c.Canvas.Width, c.Canvas.Height),
		editor.WithBackground(bg),
		editor.WithHistoryCapacity(c.History.Capacity),
		editor.WithFloodFill(c.Fill.Tolerance, c.Fill.MaxPixels),
		editor.WithMaxImportDimension(c.Import.MaxDimension),
		editor.WithInterpolation(interp),
	}, nil
}
