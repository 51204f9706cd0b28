package ui

import (
	"github.com/gdamore/tcell/v2"

	"ansipaint/i18n"
)

// MenuItem is one row of a drop-down menu. Label may carry an
// &-prefixed hotkey marker. Action is a command name dispatched by the
// application; items with a Submenu ignore Action.
type MenuItem struct {
	Label     string
	Shortcut  string
	Action    string
	Submenu   []MenuItem
	Grayed    bool
	Separator bool
}

// Separator returns a horizontal rule item.
func Separator() MenuItem {
	return MenuItem{Separator: true}
}

// Menu is one top-level entry of the menu bar.
type Menu struct {
	Label string
	Items []MenuItem
}

// MenuBar tracks which menu and item are open. It is purely state and
// rendering; activation hands an Action string back to the caller.
type MenuBar struct {
	Menus []Menu

	open   int // open menu index, -1 when closed
	sel    int // selected item in open menu, -1 when none
	subSel int // selected item in open submenu, -1 when closed
}

func NewMenuBar(menus []Menu) *MenuBar {
	return &MenuBar{Menus: menus, open: -1, sel: -1, subSel: -1}
}

func (m *MenuBar) IsOpen() bool { return m.open >= 0 }

func (m *MenuBar) Close() {
	m.open, m.sel, m.subSel = -1, -1, -1
}

// OpenMenu opens menu i with no item selected.
func (m *MenuBar) OpenMenu(i int) {
	if i < 0 || i >= len(m.Menus) {
		return
	}
	m.open, m.sel, m.subSel = i, -1, -1
}

// OpenHotkey opens the menu whose &-hotkey matches r.
func (m *MenuBar) OpenHotkey(r rune) bool {
	for i, menu := range m.Menus {
		if hk := i18n.Hotkey(menu.Label); hk != 0 && hk == lowerRune(r) {
			m.OpenMenu(i)
			return true
		}
	}
	return false
}

func (m *MenuBar) nextMenu(delta int) {
	if len(m.Menus) == 0 {
		return
	}
	m.open = (m.open + delta + len(m.Menus)) % len(m.Menus)
	m.sel, m.subSel = -1, -1
}

// moveSel steps the selection past separators, wrapping.
func moveSel(items []MenuItem, cur, delta int) int {
	if len(items) == 0 {
		return -1
	}
	i := cur
	for range items {
		if i < 0 && delta < 0 {
			i = 0
		}
		i = (i + delta + len(items)) % len(items)
		if !items[i].Separator {
			return i
		}
	}
	return -1
}

// HandleKey processes a key while the bar is open. It returns the
// activated item's Action, and whether the event was consumed.
func (m *MenuBar) HandleKey(ev *tcell.EventKey) (string, bool) {
	if !m.IsOpen() {
		return "", false
	}
	items := m.Menus[m.open].Items

	switch ev.Key() {
	case tcell.KeyEscape:
		if m.subSel >= 0 {
			m.subSel = -1
		} else {
			m.Close()
		}
		return "", true
	case tcell.KeyLeft:
		if m.subSel >= 0 {
			m.subSel = -1
		} else {
			m.nextMenu(-1)
		}
		return "", true
	case tcell.KeyRight:
		if m.sel >= 0 && len(items[m.sel].Submenu) > 0 && m.subSel < 0 {
			m.subSel = moveSel(items[m.sel].Submenu, -1, 1)
		} else {
			m.nextMenu(1)
		}
		return "", true
	case tcell.KeyDown:
		if m.subSel >= 0 {
			m.subSel = moveSel(items[m.sel].Submenu, m.subSel, 1)
		} else {
			m.sel = moveSel(items, m.sel, 1)
		}
		return "", true
	case tcell.KeyUp:
		if m.subSel >= 0 {
			m.subSel = moveSel(items[m.sel].Submenu, m.subSel, -1)
		} else {
			m.sel = moveSel(items, m.sel, -1)
		}
		return "", true
	case tcell.KeyEnter:
		return m.activate(), true
	case tcell.KeyRune:
		return m.activateHotkey(ev.Rune()), true
	}
	return "", true
}

// activate fires the selected item, or descends into its submenu.
func (m *MenuBar) activate() string {
	if m.sel < 0 {
		return ""
	}
	items := m.Menus[m.open].Items
	item := items[m.sel]
	if m.subSel >= 0 {
		item = item.Submenu[m.subSel]
	} else if len(item.Submenu) > 0 {
		m.subSel = moveSel(item.Submenu, -1, 1)
		return ""
	}
	if item.Grayed || item.Action == "" {
		return ""
	}
	m.Close()
	return item.Action
}

func (m *MenuBar) activateHotkey(r rune) string {
	items := m.Menus[m.open].Items
	if m.subSel >= 0 {
		items = items[m.sel].Submenu
	}
	for i, item := range items {
		if item.Separator {
			continue
		}
		if hk := i18n.Hotkey(item.Label); hk != 0 && hk == lowerRune(r) {
			if m.subSel >= 0 {
				m.subSel = i
			} else {
				m.sel = i
			}
			return m.activate()
		}
	}
	return ""
}

// --- Layout ---

// barSpans returns the start column and width of each top-level label.
func (m *MenuBar) barSpans() []struct{ x, w int } {
	spans := make([]struct{ x, w int }, len(m.Menus))
	x := 1
	for i, menu := range m.Menus {
		w := TextWidth(i18n.StripHotkey(menu.Label)) + 2
		spans[i] = struct{ x, w int }{x, w}
		x += w
	}
	return spans
}

// HitTestBar maps a click on row 0 to a menu index, or -1.
func (m *MenuBar) HitTestBar(x int) int {
	for i, sp := range m.barSpans() {
		if x >= sp.x && x < sp.x+sp.w {
			return i
		}
	}
	return -1
}

// menuGeometry returns the open drop-down's rectangle.
func (m *MenuBar) menuGeometry() (x, y, w, h int) {
	sp := m.barSpans()[m.open]
	items := m.Menus[m.open].Items
	w = menuWidth(items)
	return sp.x, 1, w, len(items) + 2
}

func menuWidth(items []MenuItem) int {
	w := 8
	for _, item := range items {
		iw := TextWidth(i18n.StripHotkey(item.Label)) + 4
		if item.Shortcut != "" {
			iw += TextWidth(item.Shortcut) + 2
		}
		if len(item.Submenu) > 0 {
			iw += 2
		}
		if iw > w {
			w = iw
		}
	}
	return w
}

// HitTestMenu maps a click to an item index in the open menu, or -1.
// Separators and out-of-menu clicks return -1.
func (m *MenuBar) HitTestMenu(x, y int) int {
	if !m.IsOpen() {
		return -1
	}
	mx, my, mw, mh := m.menuGeometry()
	if x < mx || x >= mx+mw || y <= my || y >= my+mh-1 {
		return -1
	}
	i := y - my - 1
	items := m.Menus[m.open].Items
	if i < 0 || i >= len(items) || items[i].Separator {
		return -1
	}
	return i
}

// Click handles a mouse press at screen coordinates, returning the
// activated Action and whether the bar consumed the click.
func (m *MenuBar) Click(x, y int) (string, bool) {
	if y == 0 {
		if i := m.HitTestBar(x); i >= 0 {
			if m.open == i {
				m.Close()
			} else {
				m.OpenMenu(i)
			}
			return "", true
		}
		m.Close()
		return "", false
	}
	if !m.IsOpen() {
		return "", false
	}
	if i := m.HitTestMenu(x, y); i >= 0 {
		m.sel, m.subSel = i, -1
		return m.activate(), true
	}
	m.Close()
	return "", false
}

// --- Rendering ---

// Draw renders the bar across row 0 and the open drop-down below it.
func (m *MenuBar) Draw(s tcell.Screen, width int, th Theme) {
	bar := ChromeStyle(th.MenuFg, th.MenuBg)
	selSt := ChromeStyle(th.MenuSelFg, th.MenuSelBg)
	FillRect(s, 0, 0, width, 1, ' ', bar)

	for i, menu := range m.Menus {
		sp := m.barSpans()[i]
		st := bar
		if i == m.open {
			st = selSt
		}
		idx := i18n.HotkeyIndex(menu.Label)
		if idx >= 0 {
			idx++ // leading pad space
		}
		drawHotkeyLabel(s, sp.x, 0, " "+i18n.StripHotkey(menu.Label)+" ",
			idx, st, !m.IsOpen())
	}

	if m.IsOpen() {
		m.drawMenu(s, th)
	}
}

func (m *MenuBar) drawMenu(s tcell.Screen, th Theme) {
	mx, my, mw, mh := m.menuGeometry()
	items := m.Menus[m.open].Items
	body := ChromeStyle(th.MenuFg, th.MenuBg)
	DrawTitledBox(s, mx, my, mw, mh, "", LineSingle, body)

	for i, item := range items {
		y := my + 1 + i
		if item.Separator {
			for dx := 1; dx < mw-1; dx++ {
				s.SetContent(mx+dx, y, '─', nil, body)
			}
			continue
		}
		st := body
		switch {
		case item.Grayed:
			st = ChromeStyle(th.GrayedFg, th.MenuBg)
		case i == m.sel:
			st = ChromeStyle(th.MenuSelFg, th.MenuSelBg)
		}
		FillRect(s, mx+1, y, mw-2, 1, ' ', st)
		drawHotkeyLabel(s, mx+2, y, i18n.StripHotkey(item.Label),
			i18n.HotkeyIndex(item.Label), st, !item.Grayed)
		if item.Shortcut != "" {
			DrawText(s, mx+mw-2-TextWidth(item.Shortcut), y, item.Shortcut, st)
		}
		if len(item.Submenu) > 0 {
			s.SetContent(mx+mw-2, y, '▶', nil, st)
		}
	}

	if m.sel >= 0 && m.subSel >= 0 {
		m.drawSubmenu(s, th, mx+mw-1, my+1+m.sel, items[m.sel].Submenu)
	}
}

func (m *MenuBar) drawSubmenu(s tcell.Screen, th Theme, x, y int, items []MenuItem) {
	w := menuWidth(items)
	body := ChromeStyle(th.MenuFg, th.MenuBg)
	DrawTitledBox(s, x, y, w, len(items)+2, "", LineSingle, body)
	for i, item := range items {
		row := y + 1 + i
		if item.Separator {
			for dx := 1; dx < w-1; dx++ {
				s.SetContent(x+dx, row, '─', nil, body)
			}
			continue
		}
		st := body
		if i == m.subSel {
			st = ChromeStyle(th.MenuSelFg, th.MenuSelBg)
		}
		FillRect(s, x+1, row, w-2, 1, ' ', st)
		drawHotkeyLabel(s, x+2, row, i18n.StripHotkey(item.Label),
			i18n.HotkeyIndex(item.Label), st, true)
	}
}

// drawHotkeyLabel underlines the hotkey rune when underline is set.
func drawHotkeyLabel(s tcell.Screen, x, y int, label string, hotkeyIdx int, st tcell.Style, underline bool) {
	col := x
	for i, r := range []rune(label) {
		rs := st
		if underline && hotkeyIdx >= 0 && i == hotkeyIdx {
			rs = st.Underline(true)
		}
		s.SetContent(col, y, r, nil, rs)
		col += TextWidth(string(r))
	}
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
