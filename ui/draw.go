package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"ansipaint/ansi"
	"ansipaint/canvas"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle LineType = iota // ┌─┐│└┘
	LineDouble                 // ╔═╗║╚╝
)

var boxChars = [...][6]rune{
	LineSingle: {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble: {'╔', '═', '╗', '║', '╚', '╝'},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

func tcellColor(c ansi.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// StyleOf builds a tcell style from canvas colors and attributes.
func StyleOf(fg, bg ansi.RGB, attrs ansi.Attr) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(fg)).
		Background(tcellColor(bg))
	if attrs&ansi.AttrBold != 0 {
		st = st.Bold(true)
	}
	if attrs&ansi.AttrDim != 0 {
		st = st.Dim(true)
	}
	if attrs&ansi.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if attrs&ansi.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if attrs&ansi.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if attrs&ansi.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// CellStyle converts a canvas cell's style for display.
func CellStyle(cell canvas.Cell) tcell.Style {
	return StyleOf(cell.Fg, cell.Bg, cell.Attrs)
}

// ChromeStyle builds a plain fg-on-bg style for interface chrome.
func ChromeStyle(fg, bg ansi.RGB) tcell.Style {
	return StyleOf(fg, bg, ansi.AttrNone)
}

// DrawText renders text left to right, wide-rune aware, and returns the
// column after the last drawn cell.
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Truncate cuts text to fit maxWidth display columns.
func Truncate(text string, maxWidth int) string {
	return runewidth.Truncate(text, maxWidth, "")
}

// TextWidth returns the display width of text.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// FillRect paints a rectangle with the given rune and style.
func FillRect(s tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// DrawBox draws a border around the rectangle edge.
func DrawBox(s tcell.Screen, x, y, w, h int, line LineType, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	chars := boxChars[line]

	s.SetContent(x, y, chars[boxTL], nil, style)
	s.SetContent(x+w-1, y, chars[boxTR], nil, style)
	s.SetContent(x, y+h-1, chars[boxBL], nil, style)
	s.SetContent(x+w-1, y+h-1, chars[boxBR], nil, style)

	for dx := 1; dx < w-1; dx++ {
		s.SetContent(x+dx, y, chars[boxH], nil, style)
		s.SetContent(x+dx, y+h-1, chars[boxH], nil, style)
	}
	for dy := 1; dy < h-1; dy++ {
		s.SetContent(x, y+dy, chars[boxV], nil, style)
		s.SetContent(x+w-1, y+dy, chars[boxV], nil, style)
	}
}

// DrawTitledBox draws a filled, bordered box with a centered title.
func DrawTitledBox(s tcell.Screen, x, y, w, h int, title string, line LineType, style tcell.Style) {
	FillRect(s, x, y, w, h, ' ', style)
	DrawBox(s, x, y, w, h, line, style)
	if title != "" && w > 4 {
		t := " " + Truncate(title, w-4) + " "
		DrawText(s, x+(w-TextWidth(t))/2, y, t, style.Bold(true))
	}
}
