package canvas

// Patch is one undoable edit: the rectangle that changed plus its
// content before and after. Rotations and resizes change dimensions, so
// a patch may instead carry whole-document snapshots.
type Patch struct {
	rect   Rect
	before []Cell
	after  []Cell

	// Set when the edit changed canvas dimensions
	fullBefore *Canvas
	fullAfter  *Canvas
}

// History keeps bounded undo/redo stacks of patches.
type History struct {
	undo  []Patch
	redo  []Patch
	depth int
}

// NewHistory creates a history with the given maximum depth.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth}
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// push records a patch, truncating the redo branch.
func (h *History) push(p Patch) {
	h.undo = append(h.undo, p)
	if len(h.undo) > h.depth {
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:len(h.undo)-1]
	}
	h.redo = h.redo[:0]
}

// Undo reverts the most recent patch on c. Returns false if nothing to
// undo.
func (h *History) Undo(c *Canvas) bool {
	if len(h.undo) == 0 {
		return false
	}
	p := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	p.revert(c)
	h.redo = append(h.redo, p)
	return true
}

// Redo reapplies the most recently undone patch.
func (h *History) Redo(c *Canvas) bool {
	if len(h.redo) == 0 {
		return false
	}
	p := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	p.apply(c)
	h.undo = append(h.undo, p)
	return true
}

func (p Patch) apply(c *Canvas) {
	if p.fullAfter != nil {
		c.cells = append(c.cells[:0:0], p.fullAfter.cells...)
		c.width = p.fullAfter.width
		c.height = p.fullAfter.height
		return
	}
	c.SetRegion(p.rect.X, p.rect.Y, p.rect.W, p.rect.H, p.after)
}

func (p Patch) revert(c *Canvas) {
	if p.fullBefore != nil {
		c.cells = append(c.cells[:0:0], p.fullBefore.cells...)
		c.width = p.fullBefore.width
		c.height = p.fullBefore.height
		return
	}
	c.SetRegion(p.rect.X, p.rect.Y, p.rect.W, p.rect.H, p.before)
}

// Stroke captures the canvas before an edit and, on commit, diffs it
// against the result to record the smallest patch. Tools open a stroke
// on mouse press and commit on release; aborted strokes restore the
// snapshot.
type Stroke struct {
	canvas *Canvas
	before *Canvas
	done   bool
}

// Begin snapshots the canvas for a coming edit.
func (c *Canvas) Begin() *Stroke {
	return &Stroke{canvas: c, before: c.Clone()}
}

// Commit diffs the canvas against the snapshot and pushes a patch onto
// h. Returns false when the edit turned out to be a no-op.
func (s *Stroke) Commit(h *History) bool {
	if s.done {
		return false
	}
	s.done = true
	cur := s.canvas

	if cur.width != s.before.width || cur.height != s.before.height {
		h.push(Patch{fullBefore: s.before, fullAfter: cur.Clone()})
		return true
	}

	// Bounding box of the difference
	var dirty Rect
	for y := 0; y < cur.height; y++ {
		for x := 0; x < cur.width; x++ {
			if cur.cells[y*cur.width+x] != s.before.cells[y*cur.width+x] {
				dirty = dirty.Union(Rect{x, y, 1, 1})
			}
		}
	}
	if dirty.Empty() {
		return false
	}

	before, _ := s.before.Region(dirty.X, dirty.Y, dirty.W, dirty.H)
	after, _ := cur.Region(dirty.X, dirty.Y, dirty.W, dirty.H)
	h.push(Patch{rect: dirty, before: before, after: after})
	return true
}

// Abort restores the snapshot without recording anything.
func (s *Stroke) Abort() {
	if s.done {
		return
	}
	s.done = true
	s.canvas.cells = append(s.canvas.cells[:0:0], s.before.cells...)
	s.canvas.width = s.before.width
	s.canvas.height = s.before.height
}
