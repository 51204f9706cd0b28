package canvas

import (
	"testing"

	"ansipaint/ansi"
)

func mark(r rune) Cell {
	return Cell{Rune: r, Fg: ansi.RGB{R: 255, G: 0, B: 0}, Bg: ansi.RGBBlack}
}

func TestNewCanvasBlank(t *testing.T) {
	c := New(4, 3)
	w, h := c.Size()
	if w != 4 || h != 3 {
		t.Fatalf("size = %dx%d, want 4x3", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.Get(x, y) != Blank() {
				t.Fatalf("cell (%d,%d) not blank: %+v", x, y, c.Get(x, y))
			}
		}
	}
}

func TestSetGetBounds(t *testing.T) {
	c := New(3, 3)
	c.Set(1, 1, mark('x'))
	if c.Get(1, 1).Rune != 'x' {
		t.Error("set cell not readable")
	}
	// Out-of-bounds writes are dropped, reads come back blank
	c.Set(-1, 0, mark('y'))
	c.Set(3, 3, mark('y'))
	if c.Get(-1, 0) != Blank() || c.Get(5, 5) != Blank() {
		t.Error("out-of-bounds read should be blank")
	}
}

func TestResizePreservesContent(t *testing.T) {
	c := New(3, 2)
	c.Set(2, 1, mark('z'))
	c.Resize(5, 4)
	if c.Get(2, 1).Rune != 'z' {
		t.Error("grow lost content")
	}
	if c.Get(4, 3) != Blank() {
		t.Error("new cells should be blank")
	}
	c.Resize(2, 1)
	w, h := c.Size()
	if w != 2 || h != 1 {
		t.Errorf("shrink size = %dx%d", w, h)
	}
}

func TestRegionRoundTrip(t *testing.T) {
	c := New(5, 5)
	c.Set(2, 2, mark('a'))
	c.Set(3, 2, mark('b'))
	cells, r := c.Region(2, 2, 2, 1)
	if r != (Rect{2, 2, 2, 1}) {
		t.Fatalf("clamped rect = %+v", r)
	}
	d := New(5, 5)
	d.SetRegion(r.X, r.Y, r.W, r.H, cells)
	if !c.Equal(d) {
		t.Error("region copy lost cells")
	}
}

func TestRegionClamps(t *testing.T) {
	c := New(3, 3)
	cells, r := c.Region(-2, -2, 10, 10)
	if r != (Rect{0, 0, 3, 3}) || len(cells) != 9 {
		t.Errorf("clamp = %+v, %d cells", r, len(cells))
	}
	if cells, r := c.Region(5, 5, 2, 2); cells != nil || !r.Empty() {
		t.Error("out-of-range region should be empty")
	}
}

func TestFlipHorizontal(t *testing.T) {
	c := New(3, 1)
	c.Set(0, 0, mark('a'))
	c.FlipHorizontal()
	if c.Get(2, 0).Rune != 'a' || c.Get(0, 0).Rune == 'a' {
		t.Error("flip did not mirror")
	}
}

func TestRotate90(t *testing.T) {
	c := New(3, 2)
	c.Set(0, 0, mark('a')) // top-left -> top-right after clockwise turn
	c.Rotate90()
	w, h := c.Size()
	if w != 2 || h != 3 {
		t.Fatalf("rotated size = %dx%d, want 2x3", w, h)
	}
	if c.Get(1, 0).Rune != 'a' {
		t.Error("top-left should land at top-right")
	}
}

func TestInvertColors(t *testing.T) {
	c := New(1, 1)
	c.Set(0, 0, Cell{Rune: 'x', Fg: ansi.RGB{R: 255, G: 0, B: 10}, Bg: ansi.RGB{R: 1, G: 2, B: 3}})
	c.InvertColors()
	got := c.Get(0, 0)
	if got.Fg != (ansi.RGB{R: 0, G: 255, B: 245}) || got.Bg != (ansi.RGB{R: 254, G: 253, B: 252}) {
		t.Errorf("invert = %+v", got)
	}
}

func TestStrokeUndoRedo(t *testing.T) {
	c := New(4, 4)
	h := NewHistory(10)

	s := c.Begin()
	c.Set(1, 1, mark('x'))
	c.Set(2, 2, mark('y'))
	if !s.Commit(h) {
		t.Fatal("commit should record a patch")
	}

	if !h.Undo(c) {
		t.Fatal("undo failed")
	}
	if c.Get(1, 1) != Blank() || c.Get(2, 2) != Blank() {
		t.Error("undo did not restore cells")
	}
	if !h.Redo(c) {
		t.Fatal("redo failed")
	}
	if c.Get(1, 1).Rune != 'x' || c.Get(2, 2).Rune != 'y' {
		t.Error("redo did not reapply cells")
	}
}

func TestStrokeNoOp(t *testing.T) {
	c := New(2, 2)
	h := NewHistory(10)
	s := c.Begin()
	if s.Commit(h) {
		t.Error("no-op stroke should not record")
	}
	if h.CanUndo() {
		t.Error("history should stay empty")
	}
}

func TestStrokeAbort(t *testing.T) {
	c := New(2, 2)
	s := c.Begin()
	c.Set(0, 0, mark('x'))
	s.Abort()
	if c.Get(0, 0) != Blank() {
		t.Error("abort should restore the snapshot")
	}
}

func TestStrokeDimensionChange(t *testing.T) {
	c := New(2, 2)
	c.Set(1, 1, mark('q'))
	h := NewHistory(10)

	s := c.Begin()
	c.Rotate90()
	s.Commit(h)

	h.Undo(c)
	w, hh := c.Size()
	if w != 2 || hh != 2 || c.Get(1, 1).Rune != 'q' {
		t.Errorf("undo of rotation: %dx%d", w, hh)
	}
	h.Redo(c)
	if c.Get(0, 1).Rune != 'q' {
		t.Error("redo of rotation lost content")
	}
}

func TestHistoryDepthLimit(t *testing.T) {
	c := New(2, 1)
	h := NewHistory(2)
	for i := 0; i < 5; i++ {
		s := c.Begin()
		c.Set(0, 0, mark(rune('a' + i)))
		s.Commit(h)
	}
	n := 0
	for h.Undo(c) {
		n++
	}
	if n != 2 {
		t.Errorf("undo steps = %d, want depth limit 2", n)
	}
}

func TestRedoClearedByNewStroke(t *testing.T) {
	c := New(2, 1)
	h := NewHistory(10)
	s := c.Begin()
	c.Set(0, 0, mark('a'))
	s.Commit(h)
	h.Undo(c)

	s = c.Begin()
	c.Set(1, 0, mark('b'))
	s.Commit(h)
	if h.CanRedo() {
		t.Error("new stroke should truncate redo")
	}
}

func TestSelectionLiftMoveDrop(t *testing.T) {
	c := New(5, 5)
	c.Set(1, 1, mark('s'))
	sel := Selection{Rect: Rect{1, 1, 1, 1}}
	sel.Lift(c)
	if c.Get(1, 1) != Blank() {
		t.Error("lift should blank the source")
	}
	sel.MoveBy(2, 2)
	sel.Drop(c)
	if c.Get(3, 3).Rune != 's' {
		t.Error("drop should stamp at the new position")
	}
	if sel.Active() {
		t.Error("drop should dissolve the selection")
	}
}

func TestClipboardPaste(t *testing.T) {
	c := New(5, 5)
	c.Set(0, 0, mark('c'))
	cells, r := c.Region(0, 0, 2, 2)
	var cb Clipboard
	cb.Put(cells, r.W, r.H)

	sel := cb.Paste(2, 2)
	if !sel.Floating() {
		t.Fatal("paste should float")
	}
	sel.Drop(c)
	if c.Get(2, 2).Rune != 'c' {
		t.Error("pasted content missing")
	}
}
