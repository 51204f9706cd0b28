// Package ansi decodes and encodes ANSI/VT escape sequences.
//
// Decoding works in two layers: ParseEscape splits one control sequence
// into Tokens (one per numeric parameter), and Style interprets SGR
// tokens as color and attribute changes. Encoding streams a cell grid
// back out as escape-sequence text with minimal style churn.
package ansi

// Token is one decoded unit of an ANSI escape sequence: the sequence's
// terminator byte paired with a single numeric parameter. A sequence
// with N semicolon-separated parameters decomposes into N tokens in
// source order, all sharing the same Kind.
type Token struct {
	Kind byte
	Data int
}

// IsSGR reports whether the token belongs to a Select Graphic Rendition
// sequence (terminator 'm'), i.e. it carries a color or style code
// rather than cursor or mode control.
func (t Token) IsSGR() bool {
	return t.Kind == 'm'
}
