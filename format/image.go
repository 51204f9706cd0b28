package format

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"ansipaint/ansi"
	"ansipaint/canvas"
)

// ImportMode selects how raster pixels become cells.
type ImportMode uint8

const (
	// ImportBackground samples one pixel region per cell into its
	// background color.
	ImportBackground ImportMode = iota
	// ImportHalfBlock doubles vertical resolution with '▀': the upper
	// pixel row becomes the foreground, the lower the background.
	ImportHalfBlock
)

// LoadImage decodes a raster image (PNG, JPEG, GIF) and converts it to
// cells. targetWidth is the output width in columns; color is clamped
// to mode's gamut.
func LoadImage(r io.Reader, targetWidth int, imode ImportMode, cmode ansi.ColorMode) (*canvas.Canvas, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return ConvertImage(img, targetWidth, imode, cmode), nil
}

// ConvertImage converts a decoded image to a canvas.
func ConvertImage(img image.Image, targetWidth int, imode ImportMode, cmode ansi.ColorMode) *canvas.Canvas {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return canvas.New(1, 1)
	}
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetWidth > maxDocWidth {
		targetWidth = maxDocWidth
	}

	// Terminal cells are roughly twice as tall as wide; half-block mode
	// recovers the lost vertical resolution instead of compensating.
	aspect := float64(srcH) / float64(srcW)
	outW := targetWidth
	rowsPerCell := 1
	heightFactor := 0.5
	if imode == ImportHalfBlock {
		rowsPerCell = 2
		heightFactor = 1.0
	}
	outH := int(float64(targetWidth) * aspect * heightFactor)
	if outH < 1 {
		outH = 1
	}
	if outH > maxDocHeight {
		outH = maxDocHeight
	}

	c := canvas.New(outW, outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			switch imode {
			case ImportHalfBlock:
				top := sampleRegion(img, x, y*2, outW, outH*rowsPerCell)
				bot := sampleRegion(img, x, y*2+1, outW, outH*rowsPerCell)
				c.Set(x, y, canvas.Cell{
					Rune: '▀',
					Fg:   ansi.Quantize(top, cmode),
					Bg:   ansi.Quantize(bot, cmode),
				})
			default:
				avg := sampleRegion(img, x, y, outW, outH)
				c.Set(x, y, canvas.Cell{
					Rune: ' ',
					Fg:   ansi.DefaultFg,
					Bg:   ansi.Quantize(avg, cmode),
				})
			}
		}
	}
	return c
}

// sampleRegion averages the source pixels mapping to output cell (x, y)
// of an outW×outH grid.
func sampleRegion(img image.Image, x, y, outW, outH int) ansi.RGB {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	x0 := bounds.Min.X + x*srcW/outW
	x1 := bounds.Min.X + (x+1)*srcW/outW
	y0 := bounds.Min.Y + y*srcH/outH
	y1 := bounds.Min.Y + (y+1)*srcH/outH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var rs, gs, bs, n uint64
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			r, g, b, _ := img.At(px, py).RGBA()
			rs += uint64(r >> 8)
			gs += uint64(g >> 8)
			bs += uint64(b >> 8)
			n++
		}
	}
	if n == 0 {
		return ansi.RGBBlack
	}
	return ansi.RGB{R: uint8(rs / n), G: uint8(gs / n), B: uint8(bs / n)}
}
