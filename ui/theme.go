package ui

import (
	"ansipaint/ansi"
	"ansipaint/config"
)

// Theme defines semantic colors for interface chrome
type Theme struct {
	MenuBg    ansi.RGB
	MenuFg    ansi.RGB
	MenuSelBg ansi.RGB
	MenuSelFg ansi.RGB
	GrayedFg  ansi.RGB

	StatusBg ansi.RGB
	StatusFg ansi.RGB

	DialogBg ansi.RGB
	DialogFg ansi.RGB
	Border   ansi.RGB
	Accent   ansi.RGB
	InputBg  ansi.RGB

	CanvasBorder ansi.RGB
	WorkspaceBg  ansi.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	MenuBg:       ansi.RGB{R: 192, G: 192, B: 192},
	MenuFg:       ansi.RGB{R: 0, G: 0, B: 0},
	MenuSelBg:    ansi.RGB{R: 0, G: 0, B: 128},
	MenuSelFg:    ansi.RGB{R: 255, G: 255, B: 255},
	GrayedFg:     ansi.RGB{R: 128, G: 128, B: 128},
	StatusBg:     ansi.RGB{R: 192, G: 192, B: 192},
	StatusFg:     ansi.RGB{R: 0, G: 0, B: 0},
	DialogBg:     ansi.RGB{R: 192, G: 192, B: 192},
	DialogFg:     ansi.RGB{R: 0, G: 0, B: 0},
	Border:       ansi.RGB{R: 0, G: 0, B: 0},
	Accent:       ansi.RGB{R: 0, G: 0, B: 128},
	InputBg:      ansi.RGB{R: 255, G: 255, B: 255},
	CanvasBorder: ansi.RGB{R: 128, G: 128, B: 128},
	WorkspaceBg:  ansi.RGB{R: 0, G: 64, B: 64},
}

// ThemeFromConfig applies config overrides onto the default theme.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	th := DefaultTheme
	if c, ok := config.ParseHexColor(tc.MenuFg); ok {
		th.MenuFg = c
	}
	if c, ok := config.ParseHexColor(tc.MenuBg); ok {
		th.MenuBg = c
		th.DialogBg = c
		th.StatusBg = c
	}
	if c, ok := config.ParseHexColor(tc.StatusFg); ok {
		th.StatusFg = c
	}
	if c, ok := config.ParseHexColor(tc.StatusBg); ok {
		th.StatusBg = c
	}
	if c, ok := config.ParseHexColor(tc.Accent); ok {
		th.Accent = c
		th.MenuSelBg = c
	}
	return th
}
