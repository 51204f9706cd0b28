// Package config loads the application's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ansipaint/ansi"
)

// Config is everything tunable from config.toml.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	UI     UIConfig     `toml:"ui"`
	Theme  ThemeConfig  `toml:"theme"`
	Files  FilesConfig  `toml:"files"`
}

type CanvasConfig struct {
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`
	UndoDepth     int `toml:"undo_depth"`
}

type UIConfig struct {
	// ColorDepth: "auto", "true", or "256"
	ColorDepth    string `toml:"color_depth"`
	ShowStatusBar bool   `toml:"show_status_bar"`
	Language      string `toml:"language"`
}

// ThemeConfig overrides interface colors with "#rrggbb" values.
// Empty strings keep the built-in theme.
type ThemeConfig struct {
	MenuFg   string `toml:"menu_fg"`
	MenuBg   string `toml:"menu_bg"`
	StatusFg string `toml:"status_fg"`
	StatusBg string `toml:"status_bg"`
	Accent   string `toml:"accent"`
}

type FilesConfig struct {
	BackupOnSave bool `toml:"backup_on_save"`
	// ImageImportWidth is the column count raster imports scale to;
	// 0 fits the terminal
	ImageImportWidth int `toml:"image_import_width"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			DefaultWidth:  80,
			DefaultHeight: 24,
			UndoDepth:     100,
		},
		UI: UIConfig{
			ColorDepth:    "auto",
			ShowStatusBar: true,
		},
		Files: FilesConfig{
			BackupOnSave: true,
		},
	}
}

// DefaultPath returns the standard config location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "ansipaint", "config.toml")
}

// Load reads the config at path, or the default location when path is
// empty. A missing default-location file is not an error; an explicit
// path that cannot be read is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: failed to parse config: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// clamp keeps user-supplied values in workable ranges.
func (c *Config) clamp() {
	if c.Canvas.DefaultWidth < 1 {
		c.Canvas.DefaultWidth = 80
	}
	if c.Canvas.DefaultHeight < 1 {
		c.Canvas.DefaultHeight = 24
	}
	if c.Canvas.UndoDepth < 1 {
		c.Canvas.UndoDepth = 100
	}
	if c.Files.ImageImportWidth < 0 {
		c.Files.ImageImportWidth = 0
	}
}

// ParseHexColor parses a "#rrggbb" theme color. ok is false for
// empty or malformed values.
func ParseHexColor(s string) (ansi.RGB, bool) {
	if len(s) != 7 || s[0] != '#' {
		return ansi.RGB{}, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[1+i*2])
		lo, ok2 := hexDigit(s[2+i*2])
		if !ok1 || !ok2 {
			return ansi.RGB{}, false
		}
		v[i] = hi<<4 | lo
	}
	return ansi.RGB{R: v[0], G: v[1], B: v[2]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ColorMode resolves the configured color depth, falling back to
// terminal detection for "auto" or anything unrecognized.
func (c Config) ColorMode() ansi.ColorMode {
	switch c.UI.ColorDepth {
	case "true", "truecolor", "24":
		return ansi.ColorModeTrueColor
	case "256", "8":
		return ansi.ColorMode256
	default:
		return ansi.DetectColorMode()
	}
}
