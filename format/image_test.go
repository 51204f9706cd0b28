package format

import (
	"image"
	"image/color"
	"testing"

	"ansipaint/ansi"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestConvertImageBackground(t *testing.T) {
	img := solidImage(100, 50, color.RGBA{200, 100, 50, 255})
	c := ConvertImage(img, 20, ImportBackground, ansi.ColorModeTrueColor)
	w, h := c.Size()
	if w != 20 {
		t.Fatalf("width = %d, want 20", w)
	}
	// 50/100 aspect, halved for cell proportions: 20 * 0.5 * 0.5 = 5
	if h != 5 {
		t.Errorf("height = %d, want 5", h)
	}
	cell := c.Get(3, 2)
	if cell.Rune != ' ' || !cell.Bg.Equal(ansi.RGB{R: 200, G: 100, B: 50}) {
		t.Errorf("cell = %+v", cell)
	}
}

func TestConvertImageHalfBlock(t *testing.T) {
	// Top half red, bottom half blue
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y < 5 {
				img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	c := ConvertImage(img, 10, ImportHalfBlock, ansi.ColorModeTrueColor)
	w, h := c.Size()
	if w != 10 || h != 10 {
		t.Fatalf("size = %dx%d, want 10x10", w, h)
	}
	top := c.Get(5, 0)
	if top.Rune != '▀' || !top.Fg.Equal(ansi.RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("top cell = %+v", top)
	}
	bot := c.Get(5, 9)
	if !bot.Bg.Equal(ansi.RGB{R: 0, G: 0, B: 255}) {
		t.Errorf("bottom cell = %+v", bot)
	}
}

func TestConvertImage256Quantizes(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{200, 100, 50, 255})
	c := ConvertImage(img, 10, ImportBackground, ansi.ColorMode256)
	got := c.Get(0, 0).Bg
	want := ansi.From256(ansi.To256(ansi.RGB{R: 200, G: 100, B: 50}))
	if !got.Equal(want) {
		t.Errorf("bg = %v, want palette-clamped %v", got, want)
	}
}

func TestConvertImageEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	c := ConvertImage(img, 10, ImportBackground, ansi.ColorModeTrueColor)
	w, h := c.Size()
	if w != 1 || h != 1 {
		t.Errorf("empty image should yield 1x1, got %dx%d", w, h)
	}
}
