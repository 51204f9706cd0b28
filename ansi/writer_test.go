package ansi

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncoderPlainText(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, ColorModeTrueColor)
	for _, r := range "hi" {
		e.Cell(r, DefaultFg, DefaultBg, AttrNone)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	// Default style still costs one leading reset, then plain text
	if got, want := buf.String(), "\x1b[0mhi\x1b[0m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoderCoalescesRuns(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, ColorModeTrueColor)
	red := RGB{255, 0, 0}
	for _, r := range "aaa" {
		e.Cell(r, red, DefaultBg, AttrNone)
	}
	e.Flush()
	if n := strings.Count(buf.String(), "38;2;255;0;0"); n != 1 {
		t.Errorf("fg sequence emitted %d times, want 1: %q", n, buf.String())
	}
}

func TestEncoderRoundTripThroughStyle(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, ColorModeTrueColor)
	fg := RGB{255, 0, 255}
	bg := RGB{12, 34, 56}
	e.Cell('X', fg, bg, AttrBold)
	e.Newline()
	e.Cell('Y', DefaultFg, DefaultBg, AttrNone)
	e.Flush()

	// Decode what we emitted and check the style before 'X'
	out := buf.Bytes()
	idx := bytes.IndexByte(out, 'X')
	if idx < 0 {
		t.Fatal("output lost the cell rune")
	}
	s := DefaultStyle()
	tk := NewTokenizer(out[:idx])
	var params []int
	for {
		tok, ok := tk.Next()
		if !ok {
			break
		}
		if tok.IsSGR() {
			params = append(params, tok.Data)
		}
	}
	s.Apply(params)
	if !s.Fg.Equal(fg) || !s.Bg.Equal(bg) || s.Attrs != AttrBold {
		t.Errorf("decoded style %+v, want fg %v bg %v bold", s, fg, bg)
	}
}

func TestEncoder256Mode(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, ColorMode256)
	e.Cell('x', RGB{255, 0, 0}, DefaultBg, AttrNone)
	e.Flush()
	out := buf.String()
	if !strings.Contains(out, "38;5;") {
		t.Errorf("256 mode should emit palette sequences: %q", out)
	}
	if strings.Contains(out, "38;2;") {
		t.Errorf("256 mode must not emit truecolor sequences: %q", out)
	}
}
