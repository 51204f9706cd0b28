package tool

import "ansipaint/canvas"

// Select drags out a rectangular selection; dragging from inside an
// existing selection moves it instead (lifting it off the canvas on
// first move, like the original).
type Select struct {
	down    bool
	moving  bool
	anchorX int
	anchorY int
	lastX   int
	lastY   int
}

func (s *Select) Name() string { return "Select" }

func (s *Select) Press(d *Drawing, x, y int) {
	s.down = true
	s.lastX, s.lastY = x, y
	if d.Selection.Active() && d.Selection.Rect.Contains(x, y) {
		s.moving = true
		d.Selection.Lift(d.Canvas)
		return
	}
	// Starting a new rectangle drops any floating content first
	if d.Selection.Floating() {
		d.Selection.Drop(d.Canvas)
	} else {
		d.Selection.Clear()
	}
	s.moving = false
	s.anchorX, s.anchorY = x, y
	d.Selection.Rect = canvas.Rect{X: x, Y: y, W: 1, H: 1}
}

func (s *Select) Drag(d *Drawing, x, y int) {
	if !s.down {
		return
	}
	if s.moving {
		d.Selection.MoveBy(x-s.lastX, y-s.lastY)
		s.lastX, s.lastY = x, y
		return
	}
	d.Selection.Rect = canvas.NormalizedRect(s.anchorX, s.anchorY, x, y)
}

func (s *Select) Release(d *Drawing, x, y int) {
	s.down = false
}

// Text types runes at a caret placed by clicking. The app feeds key
// presses through Type.
type Text struct {
	CaretX, CaretY int
	startX         int
	active         bool
}

func (t *Text) Name() string { return "Text" }

// Active reports whether a caret is placed.
func (t *Text) Active() bool { return t.active }

func (t *Text) Press(d *Drawing, x, y int) {
	t.CaretX, t.CaretY = x, y
	t.startX = x
	t.active = d.Canvas.InBounds(x, y)
}

func (t *Text) Drag(d *Drawing, x, y int) {}

func (t *Text) Release(d *Drawing, x, y int) {}

// Type writes one rune at the caret and advances it. Newline moves the
// caret down and back to the click column; backspace steps back and
// blanks the cell.
func (t *Text) Type(d *Drawing, r rune) {
	if !t.active {
		return
	}
	switch r {
	case '\n', '\r':
		t.CaretY++
		t.CaretX = t.startX
	case '\b':
		if t.CaretX > 0 {
			t.CaretX--
		}
		cell := d.Brush.Cell()
		cell.Rune = ' '
		d.Canvas.Set(t.CaretX, t.CaretY, cell)
	default:
		cell := d.Brush.Cell()
		cell.Rune = r
		d.Canvas.Set(t.CaretX, t.CaretY, cell)
		t.CaretX++
	}
	if !d.Canvas.InBounds(t.CaretX, t.CaretY) {
		w, h := d.Canvas.Size()
		if t.CaretX >= w {
			t.CaretX = w - 1
		}
		if t.CaretY >= h {
			t.CaretY = h - 1
		}
	}
}
