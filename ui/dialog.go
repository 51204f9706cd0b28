package ui

import (
	"github.com/gdamore/tcell/v2"
)

// DialogResult represents dialog outcome
type DialogResult uint8

const (
	DialogPending DialogResult = iota
	DialogOK
	DialogCancel
)

// Dialog is a modal message box, optionally with a text field. The
// application keeps at most one open and routes all input to it.
type Dialog struct {
	Title   string
	Message []string
	Buttons []string

	Focus  int
	Result DialogResult
	Chosen int // index of the activated button

	HasInput bool
	Input    []rune
	Caret    int
}

// NewMessageDialog creates a button-only dialog. The first button has
// focus.
func NewMessageDialog(title, message string, buttons ...string) *Dialog {
	if len(buttons) == 0 {
		buttons = []string{"OK"}
	}
	return &Dialog{
		Title:   title,
		Message: splitLines(message),
		Buttons: buttons,
		Chosen:  -1,
	}
}

// NewPromptDialog creates a dialog with a text field preloaded with
// initial, and OK/Cancel buttons.
func NewPromptDialog(title, message, initial string, buttons ...string) *Dialog {
	if len(buttons) == 0 {
		buttons = []string{"OK", "Cancel"}
	}
	d := NewMessageDialog(title, message, buttons...)
	d.HasInput = true
	d.Input = []rune(initial)
	d.Caret = len(d.Input)
	return d
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// Value returns the text field contents.
func (d *Dialog) Value() string { return string(d.Input) }

// Done reports whether a button was activated or the dialog canceled.
func (d *Dialog) Done() bool { return d.Result != DialogPending }

// HandleKey processes input, returns true if the dialog should close
func (d *Dialog) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		d.Result = DialogCancel
		return true
	case tcell.KeyEnter:
		d.Result = DialogOK
		d.Chosen = d.Focus
		return true
	case tcell.KeyTab:
		d.Focus = (d.Focus + 1) % len(d.Buttons)
		return false
	case tcell.KeyBacktab:
		d.Focus = (d.Focus - 1 + len(d.Buttons)) % len(d.Buttons)
		return false
	}

	if d.HasInput {
		switch ev.Key() {
		case tcell.KeyLeft:
			if d.Caret > 0 {
				d.Caret--
			}
		case tcell.KeyRight:
			if d.Caret < len(d.Input) {
				d.Caret++
			}
		case tcell.KeyHome:
			d.Caret = 0
		case tcell.KeyEnd:
			d.Caret = len(d.Input)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if d.Caret > 0 {
				d.Input = append(d.Input[:d.Caret-1], d.Input[d.Caret:]...)
				d.Caret--
			}
		case tcell.KeyDelete:
			if d.Caret < len(d.Input) {
				d.Input = append(d.Input[:d.Caret], d.Input[d.Caret+1:]...)
			}
		case tcell.KeyRune:
			r := ev.Rune()
			d.Input = append(d.Input[:d.Caret],
				append([]rune{r}, d.Input[d.Caret:]...)...)
			d.Caret++
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyUp:
		d.Focus = (d.Focus - 1 + len(d.Buttons)) % len(d.Buttons)
	case tcell.KeyRight, tcell.KeyDown:
		d.Focus = (d.Focus + 1) % len(d.Buttons)
	}
	return false
}

// geometry centers the dialog on a sw×sh screen.
func (d *Dialog) geometry(sw, sh int) (x, y, w, h int) {
	w = 20
	for _, line := range d.Message {
		if lw := TextWidth(line) + 6; lw > w {
			w = lw
		}
	}
	if bw := d.buttonRowWidth() + 6; bw > w {
		w = bw
	}
	if d.HasInput && w < 40 {
		w = 40
	}
	if w > sw {
		w = sw
	}

	h = len(d.Message) + 4
	if d.HasInput {
		h += 2
	}
	return (sw - w) / 2, (sh - h) / 2, w, h
}

func (d *Dialog) buttonRowWidth() int {
	w := 0
	for _, b := range d.Buttons {
		w += TextWidth(b) + 6
	}
	return w
}

// HandleClick routes a mouse press; returns true if the dialog should
// close.
func (d *Dialog) HandleClick(sx, sy, sw, sh int) bool {
	x, y, w, h := d.geometry(sw, sh)
	if sx < x || sx >= x+w || sy < y || sy >= y+h {
		return false
	}
	by := y + h - 2
	if sy == by {
		bx := x + (w-d.buttonRowWidth())/2
		for i, b := range d.Buttons {
			bw := TextWidth(b) + 4
			if sx >= bx && sx < bx+bw {
				d.Result = DialogOK
				d.Chosen = i
				return true
			}
			bx += bw + 2
		}
	}
	return false
}

// Draw renders the dialog centered on the screen.
func (d *Dialog) Draw(s tcell.Screen, sw, sh int, th Theme) {
	x, y, w, h := d.geometry(sw, sh)
	body := ChromeStyle(th.DialogFg, th.DialogBg)
	DrawTitledBox(s, x, y, w, h, d.Title, LineDouble, body)

	for i, line := range d.Message {
		DrawText(s, x+3, y+1+i, Truncate(line, w-6), body)
	}

	if d.HasInput {
		iy := y + 1 + len(d.Message) + 1
		field := ChromeStyle(th.DialogFg, th.InputBg)
		FillRect(s, x+3, iy, w-6, 1, ' ', field)
		// Keep the caret visible for long values.
		text := d.Input
		caret := d.Caret
		maxVis := w - 7
		for caret > maxVis {
			text = text[1:]
			caret--
		}
		DrawText(s, x+3, iy, Truncate(string(text), maxVis), field)
		s.SetContent(x+3+caret, iy, caretRune(text, caret), nil, field.Reverse(true))
	}

	bx := x + (w-d.buttonRowWidth())/2
	by := y + h - 2
	for i, b := range d.Buttons {
		st := body
		if i == d.Focus {
			st = ChromeStyle(th.MenuSelFg, th.MenuSelBg)
		}
		DrawText(s, bx, by, "[ "+b+" ]", st)
		bx += TextWidth(b) + 6
	}
}

func caretRune(text []rune, caret int) rune {
	if caret < len(text) {
		return text[caret]
	}
	return ' '
}
