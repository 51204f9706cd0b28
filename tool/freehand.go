package tool

// Freehand tools: pencil, brush, eraser, airbrush, color picker.

import (
	"math/rand"

	"ansipaint/canvas"
)

// Pencil draws single cells along the drag path.
type Pencil struct {
	lastX, lastY int
	down         bool
}

func (p *Pencil) Name() string { return "Pencil" }

func (p *Pencil) Press(d *Drawing, x, y int) {
	d.Canvas.Set(x, y, d.Brush.Cell())
	p.lastX, p.lastY = x, y
	p.down = true
}

func (p *Pencil) Drag(d *Drawing, x, y int) {
	if !p.down {
		return
	}
	// Terminal mouse events skip cells on fast drags, connect them
	linePoints(p.lastX, p.lastY, x, y, func(px, py int) {
		d.Canvas.Set(px, py, d.Brush.Cell())
	})
	p.lastX, p.lastY = x, y
}

func (p *Pencil) Release(d *Drawing, x, y int) {
	p.down = false
}

// BrushTool paints a sized block along the drag path.
type BrushTool struct {
	lastX, lastY int
	down         bool
	erase        bool
}

// NewBrush returns a painting brush.
func NewBrush() *BrushTool { return &BrushTool{} }

// NewEraser returns a brush that paints the background color.
func NewEraser() *BrushTool { return &BrushTool{erase: true} }

func (b *BrushTool) Name() string {
	if b.erase {
		return "Eraser"
	}
	return "Brush"
}

func (b *BrushTool) cell(d *Drawing) canvas.Cell {
	if b.erase {
		return d.Brush.EraserCell()
	}
	return d.Brush.Cell()
}

func (b *BrushTool) Press(d *Drawing, x, y int) {
	stampBrush(d, x, y, b.cell(d))
	b.lastX, b.lastY = x, y
	b.down = true
}

func (b *BrushTool) Drag(d *Drawing, x, y int) {
	if !b.down {
		return
	}
	cell := b.cell(d)
	linePoints(b.lastX, b.lastY, x, y, func(px, py int) {
		stampBrush(d, px, py, cell)
	})
	b.lastX, b.lastY = x, y
}

func (b *BrushTool) Release(d *Drawing, x, y int) {
	b.down = false
}

// Airbrush sprays random cells inside a radius on every event.
type Airbrush struct {
	down bool
	rng  *rand.Rand
}

// NewAirbrush seeds the spray pattern.
func NewAirbrush(seed int64) *Airbrush {
	return &Airbrush{rng: rand.New(rand.NewSource(seed))}
}

func (a *Airbrush) Name() string { return "Airbrush" }

const (
	sprayRadius  = 3
	sprayPerStep = 6
)

func (a *Airbrush) spray(d *Drawing, x, y int) {
	cell := d.Brush.Cell()
	for i := 0; i < sprayPerStep; i++ {
		dx := a.rng.Intn(2*sprayRadius+1) - sprayRadius
		dy := a.rng.Intn(2*sprayRadius+1) - sprayRadius
		// Keep the spray roughly circular
		if dx*dx+dy*dy > sprayRadius*sprayRadius {
			continue
		}
		d.Canvas.Set(x+dx, y+dy, cell)
	}
}

func (a *Airbrush) Press(d *Drawing, x, y int) {
	a.down = true
	a.spray(d, x, y)
}

func (a *Airbrush) Drag(d *Drawing, x, y int) {
	if a.down {
		a.spray(d, x, y)
	}
}

func (a *Airbrush) Release(d *Drawing, x, y int) {
	a.down = false
}

// Picker samples the color under the cursor (eyedropper). Left button
// picks the foreground; the app maps right-button picks through
// Drawing.PickedBg.
type Picker struct{}

func (Picker) Name() string { return "Pick Color" }

func (Picker) Press(d *Drawing, x, y int) {
	cell := d.Canvas.Get(x, y)
	d.Picked = true
	d.PickedC = cell.Bg
	if cell.Rune != ' ' && cell.Rune != 0 {
		d.PickedC = cell.Fg
	}
}

func (Picker) Drag(d *Drawing, x, y int) {}

func (Picker) Release(d *Drawing, x, y int) {}
