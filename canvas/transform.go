package canvas

// Image-menu whole-document transforms. Each works in place (except
// rotation, which swaps dimensions) so the caller can wrap it in a
// single undo stroke.

// FlipHorizontal mirrors the canvas left to right.
func (c *Canvas) FlipHorizontal() {
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		for i, j := 0, c.width-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// FlipVertical mirrors the canvas top to bottom.
func (c *Canvas) FlipVertical() {
	tmp := make([]Cell, c.width)
	for i, j := 0, c.height-1; i < j; i, j = i+1, j-1 {
		top := c.cells[i*c.width : (i+1)*c.width]
		bot := c.cells[j*c.width : (j+1)*c.width]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// Rotate90 rotates the canvas clockwise, swapping width and height.
func (c *Canvas) Rotate90() {
	nw, nh := c.height, c.width
	cells := make([]Cell, len(c.cells))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			// (x, y) -> (nh-1-y becomes column offset)
			cells[x*nw+(nw-1-y)] = c.cells[y*c.width+x]
		}
	}
	c.cells = cells
	c.width = nw
	c.height = nh
}

// InvertColors inverts every cell's foreground and background.
func (c *Canvas) InvertColors() {
	for i := range c.cells {
		cell := &c.cells[i]
		cell.Fg.R, cell.Fg.G, cell.Fg.B = 255-cell.Fg.R, 255-cell.Fg.G, 255-cell.Fg.B
		cell.Bg.R, cell.Bg.G, cell.Bg.B = 255-cell.Bg.R, 255-cell.Bg.G, 255-cell.Bg.B
	}
}

// Clear restores every cell to blank.
func (c *Canvas) Clear() {
	c.Fill(Blank())
}
