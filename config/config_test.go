package config

import (
	"os"
	"path/filepath"
	"testing"

	"ansipaint/ansi"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExplicit(t *testing.T) {
	path := writeConfig(t, `
[canvas]
default_width = 120
default_height = 40
undo_depth = 50

[ui]
color_depth = "256"
show_status_bar = false

[files]
backup_on_save = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.DefaultWidth != 120 || cfg.Canvas.DefaultHeight != 40 {
		t.Errorf("canvas size = %dx%d, want 120x40",
			cfg.Canvas.DefaultWidth, cfg.Canvas.DefaultHeight)
	}
	if cfg.Canvas.UndoDepth != 50 {
		t.Errorf("undo depth = %d, want 50", cfg.Canvas.UndoDepth)
	}
	if cfg.UI.ShowStatusBar {
		t.Error("show_status_bar not applied")
	}
	if cfg.Files.BackupOnSave {
		t.Error("backup_on_save not applied")
	}
	if got := cfg.ColorMode(); got != ansi.ColorMode256 {
		t.Errorf("color mode = %v, want 256", got)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[canvas]
default_width = 132
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.DefaultWidth != 132 {
		t.Errorf("width = %d, want 132", cfg.Canvas.DefaultWidth)
	}
	if cfg.Canvas.DefaultHeight != 24 {
		t.Errorf("height = %d, want default 24", cfg.Canvas.DefaultHeight)
	}
	if !cfg.UI.ShowStatusBar {
		t.Error("status bar default lost")
	}
	if !cfg.Files.BackupOnSave {
		t.Error("backup default lost")
	}
}

func TestLoadExplicitMissingIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, `[canvas`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestClamp(t *testing.T) {
	path := writeConfig(t, `
[canvas]
default_width = -5
undo_depth = 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.DefaultWidth != 80 {
		t.Errorf("width = %d, want clamped 80", cfg.Canvas.DefaultWidth)
	}
	if cfg.Canvas.UndoDepth != 100 {
		t.Errorf("undo depth = %d, want clamped 100", cfg.Canvas.UndoDepth)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want ansi.RGB
		ok   bool
	}{
		{"#ff00aa", ansi.RGB{R: 255, G: 0, B: 170}, true},
		{"#FFFFFF", ansi.RGB{R: 255, G: 255, B: 255}, true},
		{"#000000", ansi.RGB{}, true},
		{"", ansi.RGB{}, false},
		{"ff00aa", ansi.RGB{}, false},
		{"#ff00a", ansi.RGB{}, false},
		{"#gg0000", ansi.RGB{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, %v, want %v, %v",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColorModeTrue(t *testing.T) {
	cfg := Default()
	cfg.UI.ColorDepth = "true"
	if got := cfg.ColorMode(); got != ansi.ColorModeTrueColor {
		t.Errorf("color mode = %v, want truecolor", got)
	}
}
