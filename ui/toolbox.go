package ui

import (
	"github.com/gdamore/tcell/v2"

	"ansipaint/tool"
)

// toolGlyphs give each tool a two-column icon in the toolbox.
var toolGlyphs = map[string]string{
	"Select":           "::",
	"Pick Color":       "/.",
	"Eraser":           "[]",
	"Fill With Color":  "*~",
	"Pencil":           "/'",
	"Brush":            "!\\",
	"Airbrush":         ".:",
	"Text":             "A ",
	"Line":             "\\ ",
	"Rectangle":        "[]",
	"Filled Rectangle": "██",
	"Ellipse":          "()",
}

// Toolbox is the vertical tool strip on the left edge.
type Toolbox struct {
	X, Y  int
	Tools []tool.Tool
	Sel   int
}

const toolboxWidth = 4

// Width is the strip's column span.
func (t *Toolbox) Width() int { return toolboxWidth }

// Height is the strip's row span.
func (t *Toolbox) Height() int { return len(t.Tools) }

// Draw renders one row per tool with the selected one highlighted.
func (t *Toolbox) Draw(s tcell.Screen, th Theme) {
	for i, tl := range t.Tools {
		st := ChromeStyle(th.MenuFg, th.MenuBg)
		if i == t.Sel {
			st = ChromeStyle(th.MenuSelFg, th.MenuSelBg)
		}
		FillRect(s, t.X, t.Y+i, toolboxWidth, 1, ' ', st)
		glyph := toolGlyphs[tl.Name()]
		if glyph == "" {
			glyph = Truncate(tl.Name(), 2)
		}
		DrawText(s, t.X+1, t.Y+i, Truncate(glyph, 2), st)
	}
}

// HitTest maps a click to a tool index, or -1.
func (t *Toolbox) HitTest(x, y int) int {
	if x < t.X || x >= t.X+toolboxWidth {
		return -1
	}
	i := y - t.Y
	if i < 0 || i >= len(t.Tools) {
		return -1
	}
	return i
}
