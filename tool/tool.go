// Package tool implements the paint tools. Tools are driven by
// press/drag/release in canvas coordinates and draw through a Drawing,
// which carries the document, the brush state, and a preview overlay
// for rubber-banded shapes.
package tool

import (
	"ansipaint/ansi"
	"ansipaint/canvas"
)

// Brush is the shared drawing state: colors, glyph, and size.
type Brush struct {
	Fg    ansi.RGB
	Bg    ansi.RGB
	Attrs ansi.Attr
	Char  rune // glyph stamped by pencil/brush
	Size  int  // brush diameter in cells
}

// DefaultBrush returns the startup brush.
func DefaultBrush() Brush {
	return Brush{Fg: ansi.RGBBlack, Bg: ansi.RGBWhite, Char: ' ', Size: 1}
}

// Cell returns the cell this brush stamps.
func (b Brush) Cell() canvas.Cell {
	return canvas.Cell{Rune: b.Char, Fg: b.Fg, Bg: b.Bg, Attrs: b.Attrs}
}

// EraserCell returns the cell the eraser leaves behind: the background
// color with no glyph.
func (b Brush) EraserCell() canvas.Cell {
	return canvas.Cell{Rune: ' ', Fg: b.Bg, Bg: b.Bg}
}

// Overlay is a sparse preview layer shape tools rubber-band into. It is
// composited over the document by the view and discarded every drag.
type Overlay struct {
	cells map[[2]int]canvas.Cell
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{cells: make(map[[2]int]canvas.Cell)}
}

// Set stores a preview cell.
func (o *Overlay) Set(x, y int, cell canvas.Cell) {
	o.cells[[2]int{x, y}] = cell
}

// Get returns the preview cell at (x, y), if any.
func (o *Overlay) Get(x, y int) (canvas.Cell, bool) {
	c, ok := o.cells[[2]int{x, y}]
	return c, ok
}

// Len returns the number of preview cells.
func (o *Overlay) Len() int {
	return len(o.cells)
}

// Reset discards all preview cells.
func (o *Overlay) Reset() {
	clear(o.cells)
}

// Each visits every preview cell.
func (o *Overlay) Each(fn func(x, y int, cell canvas.Cell)) {
	for k, c := range o.cells {
		fn(k[0], k[1], c)
	}
}

// Drawing is the surface a tool operates on during one gesture.
type Drawing struct {
	Canvas    *canvas.Canvas
	Overlay   *Overlay
	Brush     *Brush
	Selection *canvas.Selection

	// PickedFg is set by the color picker: true once a color was
	// sampled, letting the app update the brush and switch back to the
	// previous tool.
	Picked   bool
	PickedBg bool
	PickedC  ansi.RGB
}

// Tool reacts to a press/drag/release gesture. Press and Drag receive
// canvas coordinates which may be out of bounds; tools clip through the
// canvas API.
type Tool interface {
	Name() string
	Press(d *Drawing, x, y int)
	Drag(d *Drawing, x, y int)
	Release(d *Drawing, x, y int)
}

// stampBrush paints a Size×Size block centered on (x, y).
func stampBrush(d *Drawing, x, y int, cell canvas.Cell) {
	size := d.Brush.Size
	if size <= 1 {
		d.Canvas.Set(x, y, cell)
		return
	}
	r := size / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if size%2 == 0 && (dx == r || dy == r) {
				continue // even sizes bias toward the top-left
			}
			d.Canvas.Set(x+dx, y+dy, cell)
		}
	}
}

// linePoints walks Bresenham's line and yields every point.
func linePoints(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ellipsePoints yields the outline of an axis-aligned ellipse inside
// the rectangle spanned by the two corners (midpoint algorithm).
func ellipsePoints(x0, y0, x1, y1 int, visit func(x, y int)) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	a := (x1 - x0) / 2
	b := (y1 - y0) / 2
	cx := x0 + a
	cy := y0 + b
	if a == 0 || b == 0 {
		linePoints(x0, y0, x1, y1, visit)
		return
	}

	a2 := int64(a) * int64(a)
	b2 := int64(b) * int64(b)

	// Region 1
	x, y := 0, b
	d1 := b2 - a2*int64(b) + a2/4
	for b2*int64(x) < a2*int64(y) {
		visit(cx+x, cy+y)
		visit(cx-x, cy+y)
		visit(cx+x, cy-y)
		visit(cx-x, cy-y)
		if d1 < 0 {
			d1 += b2 * int64(2*x+3)
		} else {
			d1 += b2*int64(2*x+3) + a2*int64(-2*y+2)
			y--
		}
		x++
	}

	// Region 2
	d2 := b2*int64(2*x+1)*int64(2*x+1)/4 + a2*int64(y-1)*int64(y-1) - a2*b2
	for y >= 0 {
		visit(cx+x, cy+y)
		visit(cx-x, cy+y)
		visit(cx+x, cy-y)
		visit(cx-x, cy-y)
		if d2 > 0 {
			d2 += a2 * int64(-2*y+3)
		} else {
			d2 += a2*int64(-2*y+3) + b2*int64(2*x+2)
			x++
		}
		y--
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
