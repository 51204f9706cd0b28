package ansi

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Style is the graphic rendition state an SGR sequence mutates while a
// document is decoded: current foreground, background, and attributes.
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// DefaultStyle returns the state a terminal starts in.
func DefaultStyle() Style {
	return Style{Fg: DefaultFg, Bg: DefaultBg}
}

// Reset restores the default rendition.
func (s *Style) Reset() {
	*s = DefaultStyle()
}

// Apply interprets one SGR parameter list and mutates the style.
// Extended color forms (38/48 followed by 5;n or 2;r;g;b) consume their
// arguments; unknown codes are ignored.
func (s *Style) Apply(params []int) {
	if len(params) == 0 {
		s.Reset()
		return
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s.Reset()
		case p == 1:
			s.Attrs |= AttrBold
		case p == 2:
			s.Attrs |= AttrDim
		case p == 3:
			s.Attrs |= AttrItalic
		case p == 4:
			s.Attrs |= AttrUnderline
		case p == 5 || p == 6:
			s.Attrs |= AttrBlink
		case p == 7:
			s.Attrs |= AttrReverse
		case p == 22:
			s.Attrs &^= AttrBold | AttrDim
		case p == 23:
			s.Attrs &^= AttrItalic
		case p == 24:
			s.Attrs &^= AttrUnderline
		case p == 25:
			s.Attrs &^= AttrBlink
		case p == 27:
			s.Attrs &^= AttrReverse
		case p >= 30 && p <= 37:
			s.Fg = Palette16[p-30]
		case p == 38:
			if c, skip, ok := extendedColor(params[i+1:]); ok {
				s.Fg = c
				i += skip
			}
		case p == 39:
			s.Fg = DefaultFg
		case p >= 40 && p <= 47:
			s.Bg = Palette16[p-40]
		case p == 48:
			if c, skip, ok := extendedColor(params[i+1:]); ok {
				s.Bg = c
				i += skip
			}
		case p == 49:
			s.Bg = DefaultBg
		case p >= 90 && p <= 97:
			s.Fg = Palette16[p-90+8]
		case p >= 100 && p <= 107:
			s.Bg = Palette16[p-100+8]
		}
	}
}

// ApplyTokens feeds a token stream's SGR parameters through the style.
// Non-SGR tokens are ignored.
func (s *Style) ApplyTokens(toks []Token) {
	params := make([]int, 0, len(toks))
	for _, t := range toks {
		if t.IsSGR() {
			params = append(params, t.Data)
		}
	}
	if len(params) > 0 {
		s.Apply(params)
	}
}

// extendedColor decodes the tail of a 38/48 SGR code: "5;n" for a
// palette index, "2;r;g;b" for truecolor. Returns the color, the number
// of parameters consumed, and whether the form was valid.
func extendedColor(rest []int) (RGB, int, bool) {
	if len(rest) >= 2 && rest[0] == 5 {
		n := rest[1]
		if n < 0 || n > 255 {
			return RGB{}, 0, false
		}
		return From256(uint8(n)), 2, true
	}
	if len(rest) >= 4 && rest[0] == 2 {
		r, g, b := rest[1], rest[2], rest[3]
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return RGB{}, 0, false
		}
		return RGB{uint8(r), uint8(g), uint8(b)}, 4, true
	}
	return RGB{}, 0, false
}
