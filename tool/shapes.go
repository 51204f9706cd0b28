package tool

// Shape tools: line, rectangle, ellipse. All rubber-band into the
// overlay while dragging and commit to the canvas on release.

import "ansipaint/canvas"

type shapeKind uint8

const (
	shapeLine shapeKind = iota
	shapeRect
	shapeRectFilled
	shapeEllipse
)

// Shape is the shared implementation of the rubber-banded tools.
type Shape struct {
	kind           shapeKind
	startX, startY int
	down           bool
}

func NewLine() *Shape       { return &Shape{kind: shapeLine} }
func NewRect() *Shape       { return &Shape{kind: shapeRect} }
func NewFilledRect() *Shape { return &Shape{kind: shapeRectFilled} }
func NewEllipse() *Shape    { return &Shape{kind: shapeEllipse} }

func (s *Shape) Name() string {
	switch s.kind {
	case shapeLine:
		return "Line"
	case shapeRect:
		return "Rectangle"
	case shapeRectFilled:
		return "Filled Rectangle"
	default:
		return "Ellipse"
	}
}

func (s *Shape) Press(d *Drawing, x, y int) {
	s.startX, s.startY = x, y
	s.down = true
	d.Overlay.Reset()
	d.Overlay.Set(x, y, d.Brush.Cell())
}

func (s *Shape) Drag(d *Drawing, x, y int) {
	if !s.down {
		return
	}
	d.Overlay.Reset()
	s.trace(d, x, y, func(px, py int, cell canvas.Cell) {
		d.Overlay.Set(px, py, cell)
	})
}

func (s *Shape) Release(d *Drawing, x, y int) {
	if !s.down {
		return
	}
	s.down = false
	d.Overlay.Reset()
	s.trace(d, x, y, func(px, py int, cell canvas.Cell) {
		d.Canvas.Set(px, py, cell)
	})
}

func (s *Shape) trace(d *Drawing, x, y int, put func(x, y int, cell canvas.Cell)) {
	cell := d.Brush.Cell()
	switch s.kind {
	case shapeLine:
		linePoints(s.startX, s.startY, x, y, func(px, py int) {
			put(px, py, cell)
		})
	case shapeRect:
		r := canvas.NormalizedRect(s.startX, s.startY, x, y)
		for px := r.X; px < r.X+r.W; px++ {
			put(px, r.Y, cell)
			put(px, r.Y+r.H-1, cell)
		}
		for py := r.Y; py < r.Y+r.H; py++ {
			put(r.X, py, cell)
			put(r.X+r.W-1, py, cell)
		}
	case shapeRectFilled:
		r := canvas.NormalizedRect(s.startX, s.startY, x, y)
		for py := r.Y; py < r.Y+r.H; py++ {
			for px := r.X; px < r.X+r.W; px++ {
				put(px, py, cell)
			}
		}
	case shapeEllipse:
		ellipsePoints(s.startX, s.startY, x, y, func(px, py int) {
			put(px, py, cell)
		})
	}
}
