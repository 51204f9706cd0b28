package canvas

// Selection is a rectangular region of the document, optionally lifted
// off the canvas as a floating block that can be dragged before being
// stamped back down.
type Selection struct {
	Rect     Rect
	floating []Cell
	lifted   bool
}

// Active reports whether a selection exists.
func (s *Selection) Active() bool {
	return !s.Rect.Empty()
}

// Floating reports whether the selection content has been lifted off
// the canvas.
func (s *Selection) Floating() bool {
	return s.lifted
}

// Clear drops the selection, discarding floating content.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Lift copies the selected region out of the canvas and blanks it,
// turning the selection into a floating block.
func (s *Selection) Lift(c *Canvas) {
	if !s.Active() || s.lifted {
		return
	}
	cells, r := c.Region(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H)
	if r.Empty() {
		s.Clear()
		return
	}
	s.Rect = r
	s.floating = cells
	s.lifted = true
	blank := make([]Cell, r.W*r.H)
	for i := range blank {
		blank[i] = Blank()
	}
	c.SetRegion(r.X, r.Y, r.W, r.H, blank)
}

// MoveBy drags a floating selection.
func (s *Selection) MoveBy(dx, dy int) {
	if !s.lifted {
		return
	}
	s.Rect.X += dx
	s.Rect.Y += dy
}

// Stamp writes the floating content down at the selection's current
// position and keeps it floating (repeated stamping is how smearing a
// selection works in the original).
func (s *Selection) Stamp(c *Canvas) {
	if !s.lifted {
		return
	}
	c.SetRegion(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, s.floating)
}

// Drop stamps the floating content and dissolves the selection.
func (s *Selection) Drop(c *Canvas) {
	s.Stamp(c)
	s.Clear()
}

// Cells returns the floating block, or a copy of the canvas region for
// a selection that was never lifted.
func (s *Selection) Cells(c *Canvas) ([]Cell, Rect) {
	if s.lifted {
		return s.floating, s.Rect
	}
	return c.Region(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H)
}

// Clipboard holds a copied block of cells.
type Clipboard struct {
	cells []Cell
	w, h  int
}

// Empty reports whether anything has been copied.
func (cb *Clipboard) Empty() bool {
	return cb.w == 0 || cb.h == 0
}

// Size returns the stored block's dimensions.
func (cb *Clipboard) Size() (w, h int) {
	return cb.w, cb.h
}

// Put stores a block of cells.
func (cb *Clipboard) Put(cells []Cell, w, h int) {
	if w <= 0 || h <= 0 || len(cells) < w*h {
		return
	}
	cb.cells = append(cb.cells[:0:0], cells[:w*h]...)
	cb.w = w
	cb.h = h
}

// Paste creates a floating selection from the clipboard at (x, y).
func (cb *Clipboard) Paste(x, y int) Selection {
	if cb.Empty() {
		return Selection{}
	}
	return Selection{
		Rect:     Rect{x, y, cb.w, cb.h},
		floating: append([]Cell(nil), cb.cells...),
		lifted:   true,
	}
}
