// Package format loads and saves paint documents: ANSI art, plain
// text, and raster image import.
package format

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"ansipaint/ansi"
	"ansipaint/canvas"
)

// Decoding limits. Art files are untrusted input; a stray cursor-position
// sequence must not allocate a gigabyte of cells.
const (
	maxDocWidth  = 1000
	maxDocHeight = 1000
)

// LoadANSI decodes ANSI art text into a canvas. Printable runes advance
// a virtual cursor, SGR sequences update the current style, and cursor
// movement sequences reposition it. The document grows to the content's
// bounding size. Malformed escapes are skipped, not fatal.
func LoadANSI(r io.Reader) (*canvas.Canvas, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ansi document: %w", err)
	}
	return decodeANSI(data), nil
}

func decodeANSI(data []byte) *canvas.Canvas {
	c := canvas.New(1, 1)
	style := ansi.DefaultStyle()
	x, y := 0, 0
	maxX, maxY := 0, 0

	place := func(r rune) {
		if x >= maxDocWidth || y >= maxDocHeight {
			return
		}
		growTo(c, x+1, y+1)
		c.Set(x, y, canvas.Cell{Rune: r, Fg: style.Fg, Bg: style.Bg, Attrs: style.Attrs})
		if x+1 > maxX {
			maxX = x + 1
		}
		if y+1 > maxY {
			maxY = y + 1
		}
		x++
	}

	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == ansi.ESC:
			toks, consumed := ansi.ParseEscape(data[i:])
			if consumed == 0 {
				i++ // malformed, skip the ESC
				continue
			}
			i += consumed
			applyTokens(toks, &style, &x, &y)
		case b == '\n':
			y++
			x = 0
			i++
		case b == '\r':
			x = 0
			i++
		case b == '\t':
			x = (x/8 + 1) * 8
			i++
		case b == 0x1a:
			// SAUCE EOF marker: everything after is metadata
			i = len(data)
		case b < 0x20:
			i++ // other control bytes: ignore
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size == 1 {
				// Not UTF-8; classic .ans files are CP437, map the
				// printable range straight through
				r = cp437[b]
			}
			place(r)
			i += size
		}
	}

	if maxX < 1 {
		maxX = 1
	}
	if maxY < 1 {
		maxY = 1
	}
	c.Resize(maxX, maxY)
	return c
}

// applyTokens interprets one escape sequence's tokens against the
// decoder state: SGR changes style, the rest move the cursor.
func applyTokens(toks []ansi.Token, style *ansi.Style, x, y *int) {
	if len(toks) == 0 {
		return
	}
	if toks[0].IsSGR() {
		style.ApplyTokens(toks)
		return
	}
	params := make([]int, len(toks))
	for i, t := range toks {
		params[i] = t.Data
	}
	arg := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}
	switch toks[0].Kind {
	case 'H', 'f': // cursor position, 1-indexed
		*y = clampPos(arg(0, 1)-1, maxDocHeight)
		*x = clampPos(arg(1, 1)-1, maxDocWidth)
	case 'A':
		*y = clampPos(*y-arg(0, 1), maxDocHeight)
	case 'B':
		*y = clampPos(*y+arg(0, 1), maxDocHeight)
	case 'C':
		*x = clampPos(*x+arg(0, 1), maxDocWidth)
	case 'D':
		*x = clampPos(*x-arg(0, 1), maxDocWidth)
	case 'G': // cursor column
		*x = clampPos(arg(0, 1)-1, maxDocWidth)
	}
	// 'J' (erase display), 'K' (erase line), mode sets: ignored;
	// they do not contribute content to a document
}

func clampPos(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

// growTo widens the canvas to at least w×h, doubling to amortize.
func growTo(c *canvas.Canvas, w, h int) {
	cw, ch := c.Size()
	if w <= cw && h <= ch {
		return
	}
	nw, nh := cw, ch
	for nw < w {
		nw *= 2
	}
	for nh < h {
		nh *= 2
	}
	if nw > maxDocWidth {
		nw = maxDocWidth
	}
	if nh > maxDocHeight {
		nh = maxDocHeight
	}
	c.Resize(nw, nh)
}

// SaveANSI encodes the canvas as escape-sequence text in the given
// color mode.
func SaveANSI(w io.Writer, c *canvas.Canvas, mode ansi.ColorMode) error {
	e := ansi.NewEncoder(w, mode)
	cw, ch := c.Size()
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			cell := c.Get(x, y)
			e.Cell(cell.Rune, cell.Fg, cell.Bg, cell.Attrs)
		}
		if y < ch-1 {
			e.Newline()
		}
	}
	if err := e.Flush(); err != nil {
		return fmt.Errorf("write ansi document: %w", err)
	}
	return nil
}

// EncodeANSI is SaveANSI into memory, for clipboard-ish uses and tests.
func EncodeANSI(c *canvas.Canvas, mode ansi.ColorMode) []byte {
	var buf bytes.Buffer
	SaveANSI(&buf, c, mode)
	return buf.Bytes()
}
