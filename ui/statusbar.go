package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// StatusInfo is what the bottom bar displays.
type StatusInfo struct {
	Message  string
	ToolName string
	CursorX  int
	CursorY  int
	CanvasW  int
	CanvasH  int
	HasPos   bool
}

// StatusBar renders a single info row at the bottom of the screen.
type StatusBar struct {
	Y int
}

func (b *StatusBar) Draw(s tcell.Screen, width int, info StatusInfo, th Theme) {
	st := ChromeStyle(th.StatusFg, th.StatusBg)
	FillRect(s, 0, b.Y, width, 1, ' ', st)

	left := info.Message
	if left == "" {
		left = info.ToolName
	}
	DrawText(s, 1, b.Y, Truncate(left, width/2), st)

	pos := ""
	if info.HasPos {
		pos = fmt.Sprintf("%d,%d", info.CursorX+1, info.CursorY+1)
	}
	size := fmt.Sprintf("%d×%d", info.CanvasW, info.CanvasH)

	// Right-aligned cells: position then size, fixed 12-column slots.
	x := width - 13
	if x > 0 {
		DrawText(s, x, b.Y, pos, st)
	}
	x = width - 26
	if x > 0 {
		DrawText(s, x, b.Y, size, st)
	}
}
