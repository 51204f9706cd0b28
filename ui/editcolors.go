package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"ansipaint/ansi"
)

// EditColors is the custom color dialog: the basic palette as an 8×6
// grid, a hue/saturation field, a luminosity ramp, and a preview
// swatch.
type EditColors struct {
	Hue float64 // degrees, 0..360
	Sat float64 // 0..1
	Lum float64 // 0..1

	Result DialogResult
	Focus  int // 0 = OK, 1 = Cancel

	dragField bool
	dragRamp  bool
}

const (
	ecGridCols = 8
	ecGridRows = 6
	ecSwatchW  = 3
	ecFieldW   = 24
	ecFieldH   = 8
	ecWidth    = 2 + ecGridCols*ecSwatchW + 2 + ecFieldW + 1 + 3 + 2
	ecHeight   = 16
)

// NewEditColors opens the dialog preloaded with a color.
func NewEditColors(c ansi.RGB) *EditColors {
	cc := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := cc.Hsl()
	return &EditColors{Hue: h, Sat: s, Lum: l}
}

// Color returns the currently composed color.
func (e *EditColors) Color() ansi.RGB {
	r, g, b := colorful.Hsl(e.Hue, e.Sat, e.Lum).Clamped().RGB255()
	return ansi.RGB{R: r, G: g, B: b}
}

// Done reports whether the dialog was accepted or canceled.
func (e *EditColors) Done() bool { return e.Result != DialogPending }

func (e *EditColors) setFromRGB(c ansi.RGB) {
	cc := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	e.Hue, e.Sat, e.Lum = cc.Hsl()
}

// HandleKey processes input, returns true if the dialog should close
func (e *EditColors) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.Result = DialogCancel
		return true
	case tcell.KeyEnter:
		if e.Focus == 1 {
			e.Result = DialogCancel
		} else {
			e.Result = DialogOK
		}
		return true
	case tcell.KeyTab, tcell.KeyBacktab:
		e.Focus = 1 - e.Focus
	case tcell.KeyLeft:
		e.Hue -= 360.0 / ecFieldW
		if e.Hue < 0 {
			e.Hue += 360
		}
	case tcell.KeyRight:
		e.Hue += 360.0 / ecFieldW
		if e.Hue >= 360 {
			e.Hue -= 360
		}
	case tcell.KeyUp:
		e.Sat = clamp01(e.Sat + 1.0/(ecFieldH-1))
	case tcell.KeyDown:
		e.Sat = clamp01(e.Sat - 1.0/(ecFieldH-1))
	case tcell.KeyPgUp:
		e.Lum = clamp01(e.Lum + 1.0/(ecFieldH*2-1))
	case tcell.KeyPgDn:
		e.Lum = clamp01(e.Lum - 1.0/(ecFieldH*2-1))
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// geometry centers the dialog.
func (e *EditColors) geometry(sw, sh int) (x, y int) {
	return (sw - ecWidth) / 2, (sh - ecHeight) / 2
}

// region anchors inside the dialog, relative to its top-left corner.
func (e *EditColors) gridOrigin() (int, int)  { return 2, 2 }
func (e *EditColors) fieldOrigin() (int, int) { return 2 + ecGridCols*ecSwatchW + 2, 2 }
func (e *EditColors) rampOrigin() (int, int) {
	fx, fy := e.fieldOrigin()
	return fx + ecFieldW + 1, fy
}

// HandleMouse routes presses and drags; returns true when the dialog
// should close.
func (e *EditColors) HandleMouse(sx, sy, sw, sh int, pressed bool) bool {
	x, y := e.geometry(sw, sh)
	lx, ly := sx-x, sy-y

	if !pressed {
		e.dragField, e.dragRamp = false, false
		return false
	}

	fx, fy := e.fieldOrigin()
	if e.dragField || (lx >= fx && lx < fx+ecFieldW && ly >= fy && ly < fy+ecFieldH) {
		e.dragField = true
		e.Hue = clamp01(float64(lx-fx)/float64(ecFieldW-1)) * 360
		e.Sat = 1 - clamp01(float64(ly-fy)/float64(ecFieldH-1))
		return false
	}

	rx, ry := e.rampOrigin()
	if e.dragRamp || (lx >= rx && lx < rx+3 && ly >= ry && ly < ry+ecFieldH) {
		e.dragRamp = true
		e.Lum = 1 - clamp01(float64(ly-ry)/float64(ecFieldH-1))
		return false
	}

	gx, gy := e.gridOrigin()
	col, row := (lx-gx)/ecSwatchW, ly-gy
	if lx >= gx && col >= 0 && col < ecGridCols && row >= 0 && row < ecGridRows {
		e.setFromRGB(BasicColors[row*ecGridCols+col])
		return false
	}

	// Buttons on the bottom row.
	if ly == ecHeight-2 {
		okX := ecWidth/2 - 10
		if lx >= okX && lx < okX+8 {
			e.Result = DialogOK
			return true
		}
		if lx >= okX+10 && lx < okX+20 {
			e.Result = DialogCancel
			return true
		}
	}
	return false
}

// Draw renders the dialog centered on the screen.
func (e *EditColors) Draw(s tcell.Screen, sw, sh int, th Theme, title string) {
	x, y := e.geometry(sw, sh)
	body := ChromeStyle(th.DialogFg, th.DialogBg)
	DrawTitledBox(s, x, y, ecWidth, ecHeight, title, LineDouble, body)

	gx, gy := e.gridOrigin()
	for i, c := range BasicColors {
		cx := x + gx + (i%ecGridCols)*ecSwatchW
		cy := y + gy + i/ecGridCols
		FillRect(s, cx, cy, ecSwatchW-1, 1, ' ', ChromeStyle(c, c))
	}

	fx, fy := e.fieldOrigin()
	for dy := 0; dy < ecFieldH; dy++ {
		sat := 1 - float64(dy)/float64(ecFieldH-1)
		for dx := 0; dx < ecFieldW; dx++ {
			hue := float64(dx) / float64(ecFieldW-1) * 360
			r, g, b := colorful.Hsl(hue, sat, 0.5).Clamped().RGB255()
			c := ansi.RGB{R: r, G: g, B: b}
			ch := ' '
			if dx == int(e.Hue/360*float64(ecFieldW-1)+0.5) &&
				dy == int((1-e.Sat)*float64(ecFieldH-1)+0.5) {
				ch = '┼'
			}
			s.SetContent(x+fx+dx, y+fy+dy, ch, nil, ChromeStyle(th.DialogFg, c))
		}
	}

	rx, ry := e.rampOrigin()
	for dy := 0; dy < ecFieldH; dy++ {
		lum := 1 - float64(dy)/float64(ecFieldH-1)
		r, g, b := colorful.Hsl(e.Hue, e.Sat, lum).Clamped().RGB255()
		c := ansi.RGB{R: r, G: g, B: b}
		FillRect(s, x+rx, y+ry+dy, 2, 1, ' ', ChromeStyle(c, c))
		ch := ' '
		if dy == int((1-e.Lum)*float64(ecFieldH-1)+0.5) {
			ch = '◀'
		}
		s.SetContent(x+rx+2, y+ry+dy, ch, nil, body)
	}

	// Preview swatch under the field.
	cur := e.Color()
	FillRect(s, x+fx, y+fy+ecFieldH+1, 8, 2, ' ', ChromeStyle(cur, cur))

	okX := x + ecWidth/2 - 10
	by := y + ecHeight - 2
	okSt, cancelSt := body, body
	if e.Focus == 0 {
		okSt = ChromeStyle(th.MenuSelFg, th.MenuSelBg)
	} else {
		cancelSt = ChromeStyle(th.MenuSelFg, th.MenuSelBg)
	}
	DrawText(s, okX, by, "[  OK  ]", okSt)
	DrawText(s, okX+10, by, "[Cancel]", cancelSt)
}
