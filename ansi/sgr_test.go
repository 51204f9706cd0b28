package ansi

import "testing"

func TestStyleApplyBasicColors(t *testing.T) {
	s := DefaultStyle()
	s.Apply([]int{31})
	if !s.Fg.Equal(Palette16[1]) {
		t.Errorf("fg = %v, want %v", s.Fg, Palette16[1])
	}
	s.Apply([]int{44})
	if !s.Bg.Equal(Palette16[4]) {
		t.Errorf("bg = %v, want %v", s.Bg, Palette16[4])
	}
	s.Apply([]int{97})
	if !s.Fg.Equal(Palette16[15]) {
		t.Errorf("bright fg = %v, want %v", s.Fg, Palette16[15])
	}
	s.Apply([]int{39, 49})
	if !s.Fg.Equal(DefaultFg) || !s.Bg.Equal(DefaultBg) {
		t.Errorf("default reset: fg %v bg %v", s.Fg, s.Bg)
	}
}

func TestStyleApplyTruecolor(t *testing.T) {
	s := DefaultStyle()
	s.Apply([]int{38, 2, 255, 0, 255})
	if !s.Fg.Equal(RGB{255, 0, 255}) {
		t.Errorf("fg = %v, want magenta", s.Fg)
	}
	s.Apply([]int{48, 2, 10, 20, 30})
	if !s.Bg.Equal(RGB{10, 20, 30}) {
		t.Errorf("bg = %v, want {10 20 30}", s.Bg)
	}
}

func TestStyleApply256(t *testing.T) {
	s := DefaultStyle()
	s.Apply([]int{38, 5, 196})
	if !s.Fg.Equal(From256(196)) {
		t.Errorf("fg = %v, want palette 196 %v", s.Fg, From256(196))
	}
}

func TestStyleApplyAttributes(t *testing.T) {
	s := DefaultStyle()
	s.Apply([]int{1, 4, 7})
	want := AttrBold | AttrUnderline | AttrReverse
	if s.Attrs != want {
		t.Errorf("attrs = %b, want %b", s.Attrs, want)
	}
	s.Apply([]int{22, 24})
	if s.Attrs != AttrReverse {
		t.Errorf("attrs after clear = %b, want reverse only", s.Attrs)
	}
	s.Apply([]int{0})
	if s.Attrs != AttrNone || !s.Fg.Equal(DefaultFg) {
		t.Error("SGR 0 should reset everything")
	}
}

func TestStyleApplyCombined(t *testing.T) {
	// One sequence can mix attributes and both color forms
	s := DefaultStyle()
	s.Apply([]int{1, 38, 2, 1, 2, 3, 48, 5, 21})
	if s.Attrs != AttrBold {
		t.Errorf("attrs = %b, want bold", s.Attrs)
	}
	if !s.Fg.Equal(RGB{1, 2, 3}) {
		t.Errorf("fg = %v", s.Fg)
	}
	if !s.Bg.Equal(From256(21)) {
		t.Errorf("bg = %v, want palette 21", s.Bg)
	}
}

func TestStyleApplyUnknownIgnored(t *testing.T) {
	s := DefaultStyle()
	before := s
	s.Apply([]int{8, 9, 51, 73})
	if s != before {
		t.Errorf("unknown codes mutated style: %+v", s)
	}
}

func TestStyleApplyTokens(t *testing.T) {
	s := DefaultStyle()
	toks, _ := ParseEscape([]byte("\x1b[38;2;255;0;255m"))
	s.ApplyTokens(toks)
	if !s.Fg.Equal(RGB{255, 0, 255}) {
		t.Errorf("fg = %v, want magenta", s.Fg)
	}
	// Non-SGR tokens leave the style alone
	before := s
	s.ApplyTokens([]Token{{'H', 5}, {'H', 10}})
	if s != before {
		t.Error("cursor tokens mutated style")
	}
}
