package ansi

import "testing"

func TestPalette256RoundTrip(t *testing.T) {
	// Every palette entry above the legacy 16 maps back to itself
	for i := 16; i < 256; i++ {
		c := From256(uint8(i))
		if got := To256(c); got != uint8(i) {
			t.Errorf("index %d -> %v -> %d", i, c, got)
		}
	}
}

func TestTo256Extremes(t *testing.T) {
	if got := To256(RGB{0, 0, 0}); got != 16 {
		t.Errorf("black -> %d, want 16", got)
	}
	if got := To256(RGB{255, 255, 255}); got != 231 {
		t.Errorf("white -> %d, want 231", got)
	}
}

func TestTo256Grayscale(t *testing.T) {
	// Mid grays should land on the grayscale ramp, not the cube
	got := To256(RGB{120, 120, 120})
	if got < grayscaleStart {
		t.Errorf("gray 120 -> %d, want ramp index >= %d", got, grayscaleStart)
	}
}

func TestQuantize(t *testing.T) {
	c := RGB{123, 45, 67}
	if got := Quantize(c, ColorModeTrueColor); !got.Equal(c) {
		t.Errorf("truecolor quantize changed %v to %v", c, got)
	}
	got := Quantize(c, ColorMode256)
	if !got.Equal(From256(To256(c))) {
		t.Errorf("256 quantize = %v", got)
	}
}

func TestDetectColorModeEnv(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("COLORTERM=truecolor should detect truecolor")
	}
	t.Setenv("COLORTERM", "")
	t.Setenv("KITTY_WINDOW_ID", "")
	t.Setenv("KONSOLE_VERSION", "")
	t.Setenv("ITERM_SESSION_ID", "")
	t.Setenv("ALACRITTY_WINDOW_ID", "")
	t.Setenv("WEZTERM_PANE", "")
	t.Setenv("TERM", "xterm-256color")
	if DetectColorMode() != ColorMode256 {
		t.Error("xterm-256color without COLORTERM should detect 256")
	}
}
