package tool

import (
	"testing"

	"ansipaint/ansi"
	"ansipaint/canvas"
)

func newDrawing(w, h int) *Drawing {
	brush := DefaultBrush()
	brush.Char = '#'
	brush.Fg = ansi.RGB{R: 255, G: 0, B: 0}
	return &Drawing{
		Canvas:    canvas.New(w, h),
		Overlay:   NewOverlay(),
		Brush:     &brush,
		Selection: &canvas.Selection{},
	}
}

func countPainted(c *canvas.Canvas) int {
	w, h := c.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.Get(x, y) != canvas.Blank() {
				n++
			}
		}
	}
	return n
}

func TestPencilConnectsDragGaps(t *testing.T) {
	d := newDrawing(10, 10)
	var p Pencil
	p.Press(d, 0, 0)
	p.Drag(d, 5, 0) // mouse skipped cells 1..4
	p.Release(d, 5, 0)
	for x := 0; x <= 5; x++ {
		if d.Canvas.Get(x, 0).Rune != '#' {
			t.Errorf("cell %d not painted", x)
		}
	}
}

func TestPencilIgnoresDragWithoutPress(t *testing.T) {
	d := newDrawing(5, 5)
	var p Pencil
	p.Drag(d, 2, 2)
	if countPainted(d.Canvas) != 0 {
		t.Error("drag without press should not paint")
	}
}

func TestBrushSize(t *testing.T) {
	d := newDrawing(9, 9)
	d.Brush.Size = 3
	b := NewBrush()
	b.Press(d, 4, 4)
	b.Release(d, 4, 4)
	if got := countPainted(d.Canvas); got != 9 {
		t.Errorf("3x3 brush painted %d cells, want 9", got)
	}
}

func TestEraserPaintsBackground(t *testing.T) {
	d := newDrawing(5, 5)
	d.Canvas.Set(2, 2, canvas.Cell{Rune: 'x', Fg: ansi.RGB{R: 1, G: 2, B: 3}})
	e := NewEraser()
	e.Press(d, 2, 2)
	e.Release(d, 2, 2)
	got := d.Canvas.Get(2, 2)
	if got.Rune != ' ' || !got.Bg.Equal(d.Brush.Bg) {
		t.Errorf("eraser left %+v", got)
	}
}

func TestFloodFill(t *testing.T) {
	c := canvas.New(5, 5)
	// A vertical wall splits the canvas
	wall := canvas.Cell{Rune: '|', Fg: ansi.RGBWhite}
	for y := 0; y < 5; y++ {
		c.Set(2, y, wall)
	}
	repl := canvas.Cell{Rune: '.', Fg: ansi.RGB{R: 0, G: 255, B: 0}}
	FloodFill(c, 0, 0, repl)

	if c.Get(1, 4) != repl {
		t.Error("left side should be filled")
	}
	if c.Get(3, 0) == repl {
		t.Error("fill leaked through the wall")
	}
	if c.Get(2, 2) != wall {
		t.Error("wall should be untouched")
	}
}

func TestFloodFillNoOp(t *testing.T) {
	c := canvas.New(3, 3)
	FloodFill(c, 1, 1, canvas.Blank()) // target == replacement
	FloodFill(c, -1, 0, canvas.Cell{Rune: 'x'})
	if countPainted(c) != 0 {
		t.Error("no-op fills mutated the canvas")
	}
}

func TestLineCommitsOnRelease(t *testing.T) {
	d := newDrawing(10, 10)
	l := NewLine()
	l.Press(d, 0, 0)
	l.Drag(d, 9, 9)
	if countPainted(d.Canvas) != 0 {
		t.Error("drag should only draw into the overlay")
	}
	if d.Overlay.Len() == 0 {
		t.Error("drag should preview into the overlay")
	}
	l.Release(d, 9, 9)
	if d.Overlay.Len() != 0 {
		t.Error("release should clear the overlay")
	}
	if d.Canvas.Get(0, 0).Rune != '#' || d.Canvas.Get(9, 9).Rune != '#' {
		t.Error("line endpoints missing")
	}
	if d.Canvas.Get(5, 5).Rune != '#' {
		t.Error("diagonal midpoint missing")
	}
}

func TestRectOutline(t *testing.T) {
	d := newDrawing(10, 10)
	r := NewRect()
	r.Press(d, 6, 6)
	r.Release(d, 2, 2) // corners in reverse order
	// 5x5 outline = 16 cells
	if got := countPainted(d.Canvas); got != 16 {
		t.Errorf("outline painted %d cells, want 16", got)
	}
	if d.Canvas.Get(4, 4) != canvas.Blank() {
		t.Error("rect interior should be empty")
	}
}

func TestFilledRect(t *testing.T) {
	d := newDrawing(10, 10)
	r := NewFilledRect()
	r.Press(d, 1, 1)
	r.Release(d, 3, 2)
	if got := countPainted(d.Canvas); got != 6 {
		t.Errorf("filled 3x2 painted %d cells, want 6", got)
	}
}

func TestEllipseSymmetry(t *testing.T) {
	d := newDrawing(21, 11)
	e := NewEllipse()
	e.Press(d, 0, 0)
	e.Release(d, 20, 10)
	c := d.Canvas
	for y := 0; y < 11; y++ {
		for x := 0; x < 21; x++ {
			mx, my := 20-x, 10-y
			if (c.Get(x, y).Rune == '#') != (c.Get(mx, my).Rune == '#') {
				t.Fatalf("ellipse not symmetric at (%d,%d)", x, y)
			}
		}
	}
	if c.Get(0, 5).Rune != '#' || c.Get(20, 5).Rune != '#' {
		t.Error("ellipse should touch the horizontal extremes")
	}
	if c.Get(10, 0).Rune != '#' || c.Get(10, 10).Rune != '#' {
		t.Error("ellipse should touch the vertical extremes")
	}
}

func TestAirbrushStaysInRadius(t *testing.T) {
	d := newDrawing(21, 21)
	a := NewAirbrush(1)
	a.Press(d, 10, 10)
	for i := 0; i < 20; i++ {
		a.Drag(d, 10, 10)
	}
	a.Release(d, 10, 10)
	w, h := d.Canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if d.Canvas.Get(x, y).Rune == '#' {
				dx, dy := x-10, y-10
				if dx*dx+dy*dy > sprayRadius*sprayRadius {
					t.Fatalf("spray escaped radius at (%d,%d)", x, y)
				}
			}
		}
	}
	if countPainted(d.Canvas) == 0 {
		t.Error("airbrush painted nothing")
	}
}

func TestPickerSamples(t *testing.T) {
	d := newDrawing(5, 5)
	red := ansi.RGB{R: 200, G: 10, B: 10}
	d.Canvas.Set(1, 1, canvas.Cell{Rune: 'x', Fg: red, Bg: ansi.RGBBlack})
	var p Picker
	p.Press(d, 1, 1)
	if !d.Picked || !d.PickedC.Equal(red) {
		t.Errorf("picked %v, want %v", d.PickedC, red)
	}
	// Empty cells sample the background
	d.Picked = false
	blue := ansi.RGB{R: 10, G: 10, B: 200}
	d.Canvas.Set(2, 2, canvas.Cell{Rune: ' ', Fg: red, Bg: blue})
	p.Press(d, 2, 2)
	if !d.PickedC.Equal(blue) {
		t.Errorf("blank cell picked %v, want bg %v", d.PickedC, blue)
	}
}

func TestSelectDragOutAndMove(t *testing.T) {
	d := newDrawing(10, 10)
	d.Canvas.Set(2, 2, canvas.Cell{Rune: 's', Fg: ansi.RGBWhite})

	var s Select
	s.Press(d, 1, 1)
	s.Drag(d, 3, 3)
	s.Release(d, 3, 3)
	if d.Selection.Rect != (canvas.Rect{X: 1, Y: 1, W: 3, H: 3}) {
		t.Fatalf("selection rect = %+v", d.Selection.Rect)
	}

	// Drag from inside: moves (and lifts) the selection
	s.Press(d, 2, 2)
	s.Drag(d, 6, 2)
	s.Release(d, 6, 2)
	if !d.Selection.Floating() {
		t.Fatal("move should lift the selection")
	}
	d.Selection.Drop(d.Canvas)
	if d.Canvas.Get(6, 2).Rune != 's' {
		t.Error("moved content missing at target")
	}
	if d.Canvas.Get(2, 2).Rune == 's' {
		t.Error("source should be blanked after move")
	}
}

func TestTextTyping(t *testing.T) {
	d := newDrawing(10, 10)
	var tx Text
	tx.Press(d, 2, 1)
	tx.Release(d, 2, 1)
	for _, r := range "ab" {
		tx.Type(d, r)
	}
	tx.Type(d, '\b')
	tx.Type(d, 'c')
	if d.Canvas.Get(2, 1).Rune != 'a' || d.Canvas.Get(3, 1).Rune != 'c' {
		t.Errorf("typed row = %q %q", d.Canvas.Get(2, 1).Rune, d.Canvas.Get(3, 1).Rune)
	}
	tx.Type(d, '\n')
	tx.Type(d, 'z')
	if d.Canvas.Get(2, 2).Rune != 'z' {
		t.Error("newline should move the caret down to the start column")
	}
}
