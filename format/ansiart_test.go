package format

import (
	"bytes"
	"strings"
	"testing"

	"ansipaint/ansi"
	"ansipaint/canvas"
)

func TestLoadANSITruecolor(t *testing.T) {
	// Magenta foreground, one glyph
	c, err := LoadANSI(strings.NewReader("\x1b[38;2;255;0;255mX"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w, h := c.Size()
	if w != 1 || h != 1 {
		t.Fatalf("size = %dx%d, want 1x1", w, h)
	}
	cell := c.Get(0, 0)
	if cell.Rune != 'X' {
		t.Errorf("rune = %q", cell.Rune)
	}
	if !cell.Fg.Equal(ansi.RGB{R: 255, G: 0, B: 255}) {
		t.Errorf("fg = %v, want magenta", cell.Fg)
	}
}

func TestLoadANSICursorPosition(t *testing.T) {
	// Place 'A' at row 2 col 3 (1-indexed), then 'B' after cursor moves
	c, err := LoadANSI(strings.NewReader("\x1b[2;3HA\x1b[1;1HB"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Get(2, 1).Rune != 'A' {
		t.Errorf("cell (2,1) = %q, want 'A'", c.Get(2, 1).Rune)
	}
	if c.Get(0, 0).Rune != 'B' {
		t.Errorf("cell (0,0) = %q, want 'B'", c.Get(0, 0).Rune)
	}
}

func TestLoadANSILinesAndReset(t *testing.T) {
	in := "\x1b[31mred\x1b[0m\nplain"
	c, err := LoadANSI(strings.NewReader(in))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w, h := c.Size()
	if w != 5 || h != 2 {
		t.Fatalf("size = %dx%d, want 5x2", w, h)
	}
	if !c.Get(0, 0).Fg.Equal(ansi.Palette16[1]) {
		t.Errorf("red fg = %v", c.Get(0, 0).Fg)
	}
	if !c.Get(0, 1).Fg.Equal(ansi.DefaultFg) {
		t.Errorf("reset fg = %v", c.Get(0, 1).Fg)
	}
}

func TestLoadANSICP437Fallback(t *testing.T) {
	// 0xB1 is the medium shade block in CP437
	c, err := LoadANSI(bytes.NewReader([]byte{0xB1}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Get(0, 0).Rune != '▒' {
		t.Errorf("rune = %q, want ▒", c.Get(0, 0).Rune)
	}
}

func TestLoadANSIStopsAtSAUCE(t *testing.T) {
	c, err := LoadANSI(strings.NewReader("art\x1aSAUCE00meta"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w, _ := c.Size()
	if w != 3 {
		t.Errorf("width = %d, want 3 (metadata after EOF marker leaked in)", w)
	}
}

func TestLoadANSIMalformedSkipped(t *testing.T) {
	c, err := LoadANSI(strings.NewReader("a\x1b\x01b"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Get(0, 0).Rune != 'a' || c.Get(1, 0).Rune != 'b' {
		t.Errorf("row = %q%q", c.Get(0, 0).Rune, c.Get(1, 0).Rune)
	}
}

func TestANSIRoundTrip(t *testing.T) {
	c := canvas.New(4, 2)
	c.Set(0, 0, canvas.Cell{Rune: 'H', Fg: ansi.RGB{R: 255, G: 0, B: 255}, Bg: ansi.RGB{R: 0, G: 0, B: 128}})
	c.Set(1, 0, canvas.Cell{Rune: 'i', Fg: ansi.RGB{R: 255, G: 0, B: 255}, Bg: ansi.RGB{R: 0, G: 0, B: 128}})
	c.Set(2, 1, canvas.Cell{Rune: '!', Fg: ansi.DefaultFg, Bg: ansi.DefaultBg, Attrs: ansi.AttrBold})

	data := EncodeANSI(c, ansi.ColorModeTrueColor)
	got, err := LoadANSI(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.Equal(c) {
		t.Errorf("round trip changed the document\nencoded: %q", data)
	}
}

func TestTextRoundTrip(t *testing.T) {
	in := "hello\n  world\n"
	c, err := LoadText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var buf bytes.Buffer
	if err := SaveText(&buf, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	if buf.String() != in {
		t.Errorf("round trip = %q, want %q", buf.String(), in)
	}
}

func TestLoadTextTabs(t *testing.T) {
	c, err := LoadText(strings.NewReader("a\tb"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Get(8, 0).Rune != 'b' {
		t.Errorf("tab should expand to column 8, got %q there", c.Get(8, 0).Rune)
	}
}

func TestDetect(t *testing.T) {
	cases := map[string]Kind{
		"a.ans":  KindANSI,
		"a.ANSI": KindANSI,
		"a":      KindANSI,
		"a.txt":  KindText,
		"a.asc":  KindText,
		"a.png":  KindImage,
		"a.JPG":  KindImage,
		"a.gif":  KindImage,
	}
	for path, want := range cases {
		if got := Detect(path); got != want {
			t.Errorf("Detect(%q) = %d, want %d", path, got, want)
		}
	}
}
