// Package canvas holds the paint document: a rectangular grid of styled
// cells with selection, clipboard, and undo history.
package canvas

import "ansipaint/ansi"

// Cell is one character cell of the document
type Cell struct {
	Rune  rune
	Fg    ansi.RGB
	Bg    ansi.RGB
	Attrs ansi.Attr
}

// Blank returns the cell an empty document is filled with.
func Blank() Cell {
	return Cell{Rune: ' ', Fg: ansi.DefaultFg, Bg: ansi.DefaultBg}
}

// Canvas is a width×height cell grid, row-major: cells[y*width+x]
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// New creates a canvas filled with blank cells.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	c.Fill(Blank())
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// InBounds returns true if (x, y) is inside the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Blank()
	}
	return c.cells[y*c.width+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are dropped, so
// tools can draw shapes that overhang the edge without caring.
func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.InBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell
}

// Fill sets every cell using exponential copy
func (c *Canvas) Fill(cell Cell) {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = cell
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

// Resize grows or shrinks the canvas, preserving the overlapping
// region and filling new cells with blanks.
func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == c.width && height == c.height {
		return
	}
	cells := make([]Cell, width*height)
	blank := Blank()
	for i := range cells {
		cells[i] = blank
	}
	copyW := min(width, c.width)
	copyH := min(height, c.height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], c.cells[y*c.width:y*c.width+copyW])
	}
	c.cells = cells
	c.width = width
	c.height = height
}

// Clone returns a deep copy.
func (c *Canvas) Clone() *Canvas {
	n := &Canvas{
		cells:  make([]Cell, len(c.cells)),
		width:  c.width,
		height: c.height,
	}
	copy(n.cells, c.cells)
	return n
}

// Region copies a rectangle out of the canvas, clamped to bounds.
// Returns the cells row-major plus the clamped rectangle.
func (c *Canvas) Region(x, y, w, h int) ([]Cell, Rect) {
	r := Rect{x, y, w, h}.Intersect(Rect{0, 0, c.width, c.height})
	if r.Empty() {
		return nil, r
	}
	out := make([]Cell, r.W*r.H)
	for row := 0; row < r.H; row++ {
		src := (r.Y+row)*c.width + r.X
		copy(out[row*r.W:(row+1)*r.W], c.cells[src:src+r.W])
	}
	return out, r
}

// SetRegion writes a row-major block of cells at (x, y), clipping to
// bounds. w*h must match len(cells).
func (c *Canvas) SetRegion(x, y, w, h int, cells []Cell) {
	if w <= 0 || h <= 0 || len(cells) < w*h {
		return
	}
	for row := 0; row < h; row++ {
		dy := y + row
		if dy < 0 || dy >= c.height {
			continue
		}
		for col := 0; col < w; col++ {
			dx := x + col
			if dx < 0 || dx >= c.width {
				continue
			}
			c.cells[dy*c.width+dx] = cells[row*w+col]
		}
	}
}

// Equal reports whether two canvases have identical size and content.
func (c *Canvas) Equal(other *Canvas) bool {
	if c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.cells {
		if c.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rect is a clamped rectangle helper
type Rect struct {
	X, Y, W, H int
}

// Empty returns true for degenerate rectangles.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rectangles.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.X+r.W, o.X+o.W)
	y2 := max(r.Y+r.H, o.Y+o.H)
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// NormalizedRect builds a rectangle from two corner points in any order.
func NormalizedRect(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{x0, y0, x1 - x0 + 1, y1 - y0 + 1}
}
