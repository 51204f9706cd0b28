package ansi

import (
	"bufio"
	"io"
)

// Pre-allocated SGR fragments (avoid allocations while streaming)
var (
	sgrReset = []byte("\x1b[0m")
	sgrFg256 = []byte("\x1b[38;5;")
	sgrBg256 = []byte("\x1b[48;5;")
	sgrFgRGB = []byte("\x1b[38;2;")
	sgrBgRGB = []byte("\x1b[48;2;")

	attrSeqs = [...][]byte{
		[]byte("\x1b[1m"), // bold
		[]byte("\x1b[2m"), // dim
		[]byte("\x1b[3m"), // italic
		[]byte("\x1b[4m"), // underline
		[]byte("\x1b[5m"), // blink
		[]byte("\x1b[7m"), // reverse
	}
)

// Encoder streams styled cells as ANSI escape text. It tracks the last
// emitted rendition and only writes SGR sequences on change, so runs of
// same-styled cells cost one escape.
type Encoder struct {
	w     *bufio.Writer
	mode  ColorMode
	last  Style
	valid bool
}

// NewEncoder creates an encoder writing to w in the given color mode.
func NewEncoder(w io.Writer, mode ColorMode) *Encoder {
	return &Encoder{w: bufio.NewWriterSize(w, 32*1024), mode: mode}
}

// Cell writes one styled cell. A zero rune is written as a space.
func (e *Encoder) Cell(r rune, fg, bg RGB, attrs Attr) {
	if !e.valid || !e.last.Fg.Equal(fg) || !e.last.Bg.Equal(bg) || e.last.Attrs != attrs {
		e.writeStyle(fg, bg, attrs)
		e.last = Style{Fg: fg, Bg: bg, Attrs: attrs}
		e.valid = true
	}
	if r == 0 {
		r = ' '
	}
	e.w.WriteRune(r)
}

// Newline resets the rendition and ends the row. The reset keeps lines
// independent, so truncated or concatenated files stay readable.
func (e *Encoder) Newline() {
	e.w.Write(sgrReset)
	e.w.WriteByte('\n')
	e.valid = false
}

// Flush writes the trailing reset and drains the buffer.
func (e *Encoder) Flush() error {
	e.w.Write(sgrReset)
	return e.w.Flush()
}

// writeStyle emits a full rendition: reset, then attributes and colors.
// A full rewrite is simpler than diffing attribute bits and the reset
// costs 4 bytes.
func (e *Encoder) writeStyle(fg, bg RGB, attrs Attr) {
	w := e.w
	w.Write(sgrReset)
	for i, seq := range attrSeqs {
		if attrs&(1<<uint(i)) != 0 {
			w.Write(seq)
		}
	}
	if e.mode == ColorModeTrueColor {
		if !fg.Equal(DefaultFg) {
			w.Write(sgrFgRGB)
			writeInt(w, int(fg.R))
			w.WriteByte(';')
			writeInt(w, int(fg.G))
			w.WriteByte(';')
			writeInt(w, int(fg.B))
			w.WriteByte('m')
		}
		if !bg.Equal(DefaultBg) {
			w.Write(sgrBgRGB)
			writeInt(w, int(bg.R))
			w.WriteByte(';')
			writeInt(w, int(bg.G))
			w.WriteByte(';')
			writeInt(w, int(bg.B))
			w.WriteByte('m')
		}
		return
	}
	if !fg.Equal(DefaultFg) {
		w.Write(sgrFg256)
		writeInt(w, int(To256(fg)))
		w.WriteByte('m')
	}
	if !bg.Equal(DefaultBg) {
		w.Write(sgrBg256)
		writeInt(w, int(To256(bg)))
		w.WriteByte('m')
	}
}

// writeInt writes an integer without allocation.
// Optimized for color values (0-255 common)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [8]byte
	i := 7
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}
