package ui

import (
	"github.com/gdamore/tcell/v2"

	"ansipaint/ansi"
	"ansipaint/tool"
)

// BasicColors is the classic 48-color painting palette, laid out in
// two rows of 24 swatches.
var BasicColors = [48]ansi.RGB{
	{R: 0xFF, G: 0x80, B: 0x80}, {R: 0xFF, G: 0xFF, B: 0x80}, {R: 0x80, G: 0xFF, B: 0x80}, {R: 0x00, G: 0xFF, B: 0x80},
	{R: 0x80, G: 0xFF, B: 0xFF}, {R: 0x00, G: 0x80, B: 0xFF}, {R: 0xFF, G: 0x80, B: 0xC0}, {R: 0xFF, G: 0x80, B: 0xFF},
	{R: 0xFF, G: 0x00, B: 0x00}, {R: 0xFF, G: 0xFF, B: 0x00}, {R: 0x80, G: 0xFF, B: 0x00}, {R: 0x00, G: 0xFF, B: 0x40},
	{R: 0x00, G: 0xFF, B: 0xFF}, {R: 0x00, G: 0x80, B: 0xC0}, {R: 0x80, G: 0x80, B: 0xC0}, {R: 0xFF, G: 0x00, B: 0xFF},
	{R: 0x80, G: 0x40, B: 0x40}, {R: 0xFF, G: 0x80, B: 0x40}, {R: 0x00, G: 0xFF, B: 0x00}, {R: 0x00, G: 0x80, B: 0x80},
	{R: 0x00, G: 0x40, B: 0x80}, {R: 0x80, G: 0x80, B: 0xFF}, {R: 0x80, G: 0x00, B: 0x40}, {R: 0xFF, G: 0x00, B: 0x80},
	{R: 0x80, G: 0x00, B: 0x00}, {R: 0xFF, G: 0x80, B: 0x00}, {R: 0x00, G: 0x80, B: 0x00}, {R: 0x00, G: 0x80, B: 0x40},
	{R: 0x00, G: 0x00, B: 0xFF}, {R: 0x00, G: 0x00, B: 0xA0}, {R: 0x80, G: 0x00, B: 0x80}, {R: 0x80, G: 0x00, B: 0xFF},
	{R: 0x40, G: 0x00, B: 0x00}, {R: 0x80, G: 0x40, B: 0x00}, {R: 0x00, G: 0x40, B: 0x00}, {R: 0x00, G: 0x40, B: 0x40},
	{R: 0x00, G: 0x00, B: 0x80}, {R: 0x00, G: 0x00, B: 0x40}, {R: 0x40, G: 0x00, B: 0x40}, {R: 0x40, G: 0x00, B: 0x80},
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0x80, G: 0x80, B: 0x00}, {R: 0x80, G: 0x80, B: 0x40}, {R: 0x80, G: 0x80, B: 0x80},
	{R: 0x40, G: 0x80, B: 0x80}, {R: 0xC0, G: 0xC0, B: 0xC0}, {R: 0x40, G: 0x00, B: 0x40}, {R: 0xFF, G: 0xFF, B: 0xFF},
}

const paletteCols = 24

// Palette is the color strip at the bottom of the screen: a current
// fg/bg swatch followed by the 48 basic colors, two swatches per row.
type Palette struct {
	X, Y int
}

// Width is the palette strip's total column span.
func (p *Palette) Width() int {
	return 4 + paletteCols
}

// Draw renders the swatch pair and the color grid.
func (p *Palette) Draw(s tcell.Screen, brush *tool.Brush, th Theme) {
	// Current colors: bg swatch behind, fg swatch in front.
	chrome := ChromeStyle(th.StatusFg, th.StatusBg)
	FillRect(s, p.X, p.Y, 4, 2, ' ', chrome)
	FillRect(s, p.X+1, p.Y, 2, 1, ' ', ChromeStyle(brush.Bg, brush.Bg))
	FillRect(s, p.X, p.Y+1, 2, 1, ' ', ChromeStyle(brush.Fg, brush.Fg))

	for i, c := range BasicColors {
		x := p.X + 4 + i%paletteCols
		y := p.Y + i/paletteCols
		s.SetContent(x, y, ' ', nil, ChromeStyle(c, c))
	}
}

// HitTest maps a click to a palette color. ok is false outside the
// grid.
func (p *Palette) HitTest(x, y int) (ansi.RGB, bool) {
	col := x - p.X - 4
	row := y - p.Y
	if col < 0 || col >= paletteCols || row < 0 || row >= 2 {
		return ansi.RGB{}, false
	}
	return BasicColors[row*paletteCols+col], true
}

// Contains reports whether the click falls anywhere in the strip.
func (p *Palette) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width() && y >= p.Y && y < p.Y+2
}
