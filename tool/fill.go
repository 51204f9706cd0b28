package tool

import "ansipaint/canvas"

// Fill flood-fills the clicked region: every 4-connected cell matching
// the clicked cell's colors and glyph is replaced with the brush cell.
type Fill struct{}

func (Fill) Name() string { return "Fill With Color" }

func (Fill) Press(d *Drawing, x, y int) {
	FloodFill(d.Canvas, x, y, d.Brush.Cell())
}

func (Fill) Drag(d *Drawing, x, y int) {}

func (Fill) Release(d *Drawing, x, y int) {}

// FloodFill replaces the connected region of cells equal to the target
// at (x, y). Iterative with an explicit stack; large documents would
// overflow a recursive version.
func FloodFill(c *canvas.Canvas, x, y int, repl canvas.Cell) {
	if !c.InBounds(x, y) {
		return
	}
	target := c.Get(x, y)
	if target == repl {
		return
	}

	type point struct{ x, y int }
	stack := make([]point, 0, 64)
	stack = append(stack, point{x, y})

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !c.InBounds(p.x, p.y) || c.Get(p.x, p.y) != target {
			continue
		}
		c.Set(p.x, p.y, repl)
		stack = append(stack,
			point{p.x + 1, p.y}, point{p.x - 1, p.y},
			point{p.x, p.y + 1}, point{p.x, p.y - 1})
	}
}
