// Package ui is the interactive paint application: a tcell event loop
// compositing the document, tool previews, menus, and dialogs.
package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"ansipaint/ansi"
	"ansipaint/canvas"
	"ansipaint/config"
	"ansipaint/format"
	"ansipaint/i18n"
	"ansipaint/tool"
)

// App owns the screen and all editor state.
type App struct {
	screen tcell.Screen
	cfg    config.Config
	theme  Theme
	cat    *i18n.Catalog
	mode   ansi.ColorMode

	doc     *canvas.Canvas
	history *canvas.History
	drawing *tool.Drawing
	clip    canvas.Clipboard

	menubar *MenuBar
	palette Palette
	toolbox Toolbox
	status  StatusBar

	dialog     *Dialog
	dialogDone func(*Dialog)
	colors     *EditColors
	colorsBg   bool

	path     string
	modified bool
	readOnly bool
	message  string

	scrollX, scrollY int
	cursorX, cursorY int
	hasCursor        bool

	stroke     *canvas.Stroke
	buttons    tcell.ButtonMask
	prevTool   int
	showStatus bool
	quit       bool
}

// NewApp assembles the editor around an initial document. doc may be
// nil for a fresh canvas of the configured default size.
func NewApp(cfg config.Config, cat *i18n.Catalog, mode ansi.ColorMode, doc *canvas.Canvas, path string, readOnly bool) *App {
	if doc == nil {
		doc = canvas.New(cfg.Canvas.DefaultWidth, cfg.Canvas.DefaultHeight)
	}
	brush := tool.DefaultBrush()
	a := &App{
		cfg:     cfg,
		theme:   ThemeFromConfig(cfg.Theme),
		cat:     cat,
		mode:    mode,
		doc:     doc,
		history: canvas.NewHistory(cfg.Canvas.UndoDepth),
		drawing: &tool.Drawing{
			Canvas:    doc,
			Overlay:   tool.NewOverlay(),
			Brush:     &brush,
			Selection: &canvas.Selection{},
		},
		path:       path,
		readOnly:   readOnly,
		showStatus: cfg.UI.ShowStatusBar,
	}
	a.toolbox = Toolbox{Tools: []tool.Tool{
		&tool.Select{},
		tool.Picker{},
		tool.NewEraser(),
		tool.Fill{},
		&tool.Pencil{},
		tool.NewBrush(),
		tool.NewAirbrush(time.Now().UnixNano()),
		&tool.Text{},
		tool.NewLine(),
		tool.NewRect(),
		tool.NewFilledRect(),
		tool.NewEllipse(),
	}}
	a.toolbox.Sel = 4 // pencil
	a.menubar = NewMenuBar(a.buildMenus())
	return a
}

func (a *App) tr(s string) string { return a.cat.Get(s) }

func (a *App) buildMenus() []Menu {
	file := []MenuItem{
		{Label: a.tr("&New"), Shortcut: "Ctrl+N", Action: "new"},
		{Label: a.tr("&Open..."), Shortcut: "Ctrl+O", Action: "open"},
		{Label: a.tr("&Save"), Shortcut: "Ctrl+S", Action: "save"},
		{Label: a.tr("Save &As..."), Action: "save-as"},
		Separator(),
		{Label: a.tr("E&xit"), Shortcut: "Ctrl+Q", Action: "quit"},
	}
	edit := []MenuItem{
		{Label: a.tr("&Undo"), Shortcut: "Ctrl+Z", Action: "undo"},
		{Label: a.tr("&Repeat"), Shortcut: "Ctrl+Y", Action: "redo"},
		Separator(),
		{Label: a.tr("Cu&t"), Shortcut: "Ctrl+X", Action: "cut"},
		{Label: a.tr("&Copy"), Shortcut: "Ctrl+C", Action: "copy"},
		{Label: a.tr("&Paste"), Shortcut: "Ctrl+V", Action: "paste"},
		{Label: a.tr("C&lear Selection"), Shortcut: "Del", Action: "delete"},
		{Label: a.tr("Select &All"), Shortcut: "Ctrl+A", Action: "select-all"},
	}
	view := []MenuItem{
		{Label: a.tr("&Status Bar"), Action: "toggle-status"},
	}
	image := []MenuItem{
		{Label: a.tr("&Flip/Rotate..."), Submenu: []MenuItem{
			{Label: a.tr("Flip &Horizontal"), Action: "flip-h"},
			{Label: a.tr("Flip &Vertical"), Action: "flip-v"},
			{Label: a.tr("&Rotate 90°"), Action: "rotate"},
		}},
		{Label: a.tr("&Attributes..."), Shortcut: "Ctrl+E", Action: "resize"},
		{Label: a.tr("&Invert Colors"), Shortcut: "Ctrl+I", Action: "invert"},
		{Label: a.tr("&Clear Image"), Action: "clear-image"},
	}
	colors := []MenuItem{
		{Label: a.tr("&Edit Colors..."), Action: "edit-colors"},
		{Label: a.tr("Edit &Background Color..."), Action: "edit-colors-bg"},
	}
	help := []MenuItem{
		{Label: a.tr("&About Paint"), Action: "about"},
	}
	if a.readOnly {
		for _, items := range [][]MenuItem{file, edit, image} {
			for i := range items {
				switch items[i].Action {
				case "", "open", "quit":
				default:
					items[i].Grayed = true
				}
			}
		}
	}
	return []Menu{
		{Label: a.tr("&File"), Items: file},
		{Label: a.tr("&Edit"), Items: edit},
		{Label: a.tr("&View"), Items: view},
		{Label: a.tr("&Image"), Items: image},
		{Label: a.tr("&Colors"), Items: colors},
		{Label: a.tr("&Help"), Items: help},
	}
}

// Run initializes the terminal and drives the event loop until quit.
func (a *App) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	a.screen = s

	for !a.quit {
		a.render()
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
	return nil
}

// --- Layout ---

func (a *App) canvasOrigin() (int, int) {
	return a.toolbox.Width() + 1, 1
}

func (a *App) canvasViewport() (x, y, w, h int) {
	sw, sh := a.screen.Size()
	x, y = a.canvasOrigin()
	bottom := sh - 2 // palette rows
	if a.showStatus {
		bottom--
	}
	return x, y, sw - x, bottom - y
}

func (a *App) screenToCanvas(sx, sy int) (int, int) {
	ox, oy := a.canvasOrigin()
	return sx - ox + a.scrollX, sy - oy + a.scrollY
}

// --- Input ---

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.dialog != nil {
		if a.dialog.HandleKey(ev) {
			a.closeDialog()
		}
		return
	}
	if a.colors != nil {
		if a.colors.HandleKey(ev) {
			a.closeColors()
		}
		return
	}
	if a.menubar.IsOpen() {
		action, _ := a.menubar.HandleKey(ev)
		if action != "" {
			a.dispatch(action)
		}
		return
	}

	a.message = ""
	switch ev.Key() {
	case tcell.KeyCtrlN:
		a.dispatch("new")
		return
	case tcell.KeyCtrlO:
		a.dispatch("open")
		return
	case tcell.KeyCtrlS:
		a.dispatch("save")
		return
	case tcell.KeyCtrlQ:
		a.dispatch("quit")
		return
	case tcell.KeyCtrlZ:
		a.dispatch("undo")
		return
	case tcell.KeyCtrlY:
		a.dispatch("redo")
		return
	case tcell.KeyCtrlX:
		a.dispatch("cut")
		return
	case tcell.KeyCtrlV:
		a.dispatch("paste")
		return
	case tcell.KeyCtrlA:
		a.dispatch("select-all")
		return
	case tcell.KeyCtrlE:
		a.dispatch("resize")
		return
	case tcell.KeyF10:
		a.menubar.OpenMenu(0)
		return
	case tcell.KeyDelete:
		a.dispatch("delete")
		return
	case tcell.KeyEscape:
		a.deselect()
		return
	}

	// Ctrl+C copies unless the text tool owns the keyboard.
	txt, typing := a.currentTool().(*tool.Text)
	typing = typing && txt.Active()
	if ev.Key() == tcell.KeyCtrlC && !typing {
		a.dispatch("copy")
		return
	}

	if typing && !a.readOnly {
		switch ev.Key() {
		case tcell.KeyEnter:
			a.typeRune(txt, '\n')
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			a.typeRune(txt, '\b')
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModAlt == 0 {
				a.typeRune(txt, ev.Rune())
				return
			}
		}
	}

	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModAlt != 0 {
		a.menubar.OpenHotkey(ev.Rune())
	}
}

func (a *App) typeRune(txt *tool.Text, r rune) {
	st := a.doc.Begin()
	txt.Type(a.drawing, r)
	if st.Commit(a.history) {
		a.modified = true
	}
}

func (a *App) currentTool() tool.Tool {
	return a.toolbox.Tools[a.toolbox.Sel]
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()
	prev := a.buttons
	a.buttons = btns

	sw, sh := a.screen.Size()
	primary := btns&tcell.ButtonPrimary != 0
	wasPrimary := prev&tcell.ButtonPrimary != 0
	secondary := btns&tcell.ButtonSecondary != 0
	wasSecondary := prev&tcell.ButtonSecondary != 0

	if btns&tcell.WheelUp != 0 {
		a.scrollBy(0, -2)
		return
	}
	if btns&tcell.WheelDown != 0 {
		a.scrollBy(0, 2)
		return
	}

	if a.dialog != nil {
		if primary && !wasPrimary && a.dialog.HandleClick(x, y, sw, sh) {
			a.closeDialog()
		}
		return
	}
	if a.colors != nil {
		if a.colors.HandleMouse(x, y, sw, sh, primary) {
			a.closeColors()
		}
		return
	}

	if primary && !wasPrimary {
		if y == 0 || a.menubar.IsOpen() {
			action, consumed := a.menubar.Click(x, y)
			if action != "" {
				a.dispatch(action)
			}
			if consumed {
				return
			}
		}
		if i := a.toolbox.HitTest(x, y); i >= 0 {
			a.selectTool(i)
			return
		}
		if c, ok := a.palette.HitTest(x, y); ok {
			a.drawing.Brush.Fg = c
			return
		}
	}
	if secondary && !wasSecondary {
		if c, ok := a.palette.HitTest(x, y); ok {
			a.drawing.Brush.Bg = c
			return
		}
	}

	// Canvas gestures
	cx, cy := a.screenToCanvas(x, y)
	a.cursorX, a.cursorY = cx, cy
	a.hasCursor = a.doc.InBounds(cx, cy)

	if a.readOnly {
		return
	}
	switch {
	case primary && !wasPrimary:
		if !a.inViewport(x, y) {
			return
		}
		a.stroke = a.doc.Begin()
		a.currentTool().Press(a.drawing, cx, cy)
		a.afterGesture()
	case primary && wasPrimary && a.stroke != nil:
		a.currentTool().Drag(a.drawing, cx, cy)
	case !primary && wasPrimary && a.stroke != nil:
		a.currentTool().Release(a.drawing, cx, cy)
		if a.stroke.Commit(a.history) {
			a.modified = true
		}
		a.stroke = nil
		a.afterGesture()
	}
}

func (a *App) inViewport(x, y int) bool {
	vx, vy, vw, vh := a.canvasViewport()
	return x >= vx && x < vx+vw && y >= vy && y < vy+vh
}

// afterGesture handles eyedropper results.
func (a *App) afterGesture() {
	d := a.drawing
	if !d.Picked {
		return
	}
	if d.PickedBg {
		d.Brush.Bg = d.PickedC
	} else {
		d.Brush.Fg = d.PickedC
	}
	d.Picked, d.PickedBg = false, false
	if a.stroke != nil {
		a.stroke.Abort()
		a.stroke = nil
	}
	a.toolbox.Sel = a.prevTool
}

func (a *App) selectTool(i int) {
	if i == a.toolbox.Sel {
		return
	}
	if _, ok := a.toolbox.Tools[i].(tool.Picker); ok {
		a.prevTool = a.toolbox.Sel
	}
	a.finishSelection()
	a.toolbox.Sel = i
	a.message = ""
}

func (a *App) scrollBy(dx, dy int) {
	w, h := a.doc.Size()
	_, _, vw, vh := a.canvasViewport()
	a.scrollX = clampInt(a.scrollX+dx, 0, maxInt(0, w-vw))
	a.scrollY = clampInt(a.scrollY+dy, 0, maxInt(0, h-vh))
}

// finishSelection stamps down any floating selection as an undoable
// edit.
func (a *App) finishSelection() {
	sel := a.drawing.Selection
	if !sel.Floating() {
		sel.Clear()
		return
	}
	st := a.doc.Begin()
	sel.Drop(a.doc)
	if st.Commit(a.history) {
		a.modified = true
	}
}

func (a *App) deselect() {
	a.finishSelection()
	if txt, ok := a.currentTool().(*tool.Text); ok {
		*txt = tool.Text{}
	}
}

// --- Commands ---

func (a *App) dispatch(action string) {
	if a.readOnly {
		switch action {
		case "quit", "open", "about", "toggle-status", "edit-colors", "edit-colors-bg":
		default:
			a.message = a.tr("Cannot edit in view-only mode")
			return
		}
	}
	switch action {
	case "new":
		a.confirmUnsaved(func() {
			w, h := a.cfg.Canvas.DefaultWidth, a.cfg.Canvas.DefaultHeight
			a.setDocument(canvas.New(w, h), "")
		})
	case "open":
		a.confirmUnsaved(a.promptOpen)
	case "save":
		if a.path == "" {
			a.promptSaveAs(nil)
		} else {
			a.saveTo(a.path, nil)
		}
	case "save-as":
		a.promptSaveAs(nil)
	case "quit":
		a.confirmUnsaved(func() { a.quit = true })
	case "undo":
		a.deselect()
		if a.history.Undo(a.doc) {
			a.modified = true
		} else {
			a.message = a.tr("Nothing to undo")
		}
	case "redo":
		if a.history.Redo(a.doc) {
			a.modified = true
		} else {
			a.message = a.tr("Nothing to redo")
		}
	case "cut":
		a.copySelection()
		a.deleteSelection()
	case "copy":
		a.copySelection()
	case "paste":
		a.pasteClipboard()
	case "delete":
		a.deleteSelection()
	case "select-all":
		w, h := a.doc.Size()
		a.finishSelection()
		a.drawing.Selection.Rect = canvas.Rect{X: 0, Y: 0, W: w, H: h}
		a.ensureTool("Select")
	case "toggle-status":
		a.showStatus = !a.showStatus
	case "flip-h":
		a.transform(func(c *canvas.Canvas) { c.FlipHorizontal() })
	case "flip-v":
		a.transform(func(c *canvas.Canvas) { c.FlipVertical() })
	case "rotate":
		a.transform(func(c *canvas.Canvas) { c.Rotate90() })
	case "invert":
		a.transform(func(c *canvas.Canvas) { c.InvertColors() })
	case "clear-image":
		a.transform(func(c *canvas.Canvas) { c.Clear() })
	case "resize":
		a.promptResize()
	case "edit-colors":
		a.colorsBg = false
		a.colors = NewEditColors(a.drawing.Brush.Fg)
	case "edit-colors-bg":
		a.colorsBg = true
		a.colors = NewEditColors(a.drawing.Brush.Bg)
	case "about":
		a.dialog = NewMessageDialog(a.tr("About Paint"),
			"ansipaint\n"+a.tr("A terminal painting program."))
	}
}

func (a *App) ensureTool(name string) {
	for i, t := range a.toolbox.Tools {
		if t.Name() == name {
			a.toolbox.Sel = i
			return
		}
	}
}

func (a *App) transform(fn func(*canvas.Canvas)) {
	a.finishSelection()
	st := a.doc.Begin()
	fn(a.doc)
	if st.Commit(a.history) {
		a.modified = true
	}
	a.scrollBy(0, 0) // re-clamp after dimension changes
}

func (a *App) copySelection() {
	sel := a.drawing.Selection
	if !sel.Active() {
		a.message = a.tr("No selection")
		return
	}
	cells, r := sel.Cells(a.doc)
	a.clip.Put(cells, r.W, r.H)
}

func (a *App) deleteSelection() {
	sel := a.drawing.Selection
	if !sel.Active() {
		return
	}
	st := a.doc.Begin()
	if sel.Floating() {
		sel.Clear()
	} else {
		sel.Lift(a.doc)
		sel.Clear()
	}
	if st.Commit(a.history) {
		a.modified = true
	}
}

func (a *App) pasteClipboard() {
	if a.clip.Empty() {
		a.message = a.tr("Clipboard is empty")
		return
	}
	a.finishSelection()
	*a.drawing.Selection = a.clip.Paste(a.scrollX, a.scrollY)
	a.ensureTool("Select")
}

// --- Dialog flows ---

func (a *App) closeDialog() {
	d, done := a.dialog, a.dialogDone
	a.dialog, a.dialogDone = nil, nil
	if done != nil {
		done(d)
	}
}

func (a *App) closeColors() {
	c := a.colors
	a.colors = nil
	if c.Result != DialogOK {
		return
	}
	if a.colorsBg {
		a.drawing.Brush.Bg = c.Color()
	} else {
		a.drawing.Brush.Fg = c.Color()
	}
}

// confirmUnsaved runs then, asking to save first when the document has
// unsaved changes.
func (a *App) confirmUnsaved(then func()) {
	if !a.modified {
		then()
		return
	}
	a.dialog = NewMessageDialog(a.tr("Paint"),
		a.tr("Save changes to ")+a.displayName()+"?",
		a.tr("Save"), a.tr("Discard"), a.tr("Cancel"))
	a.dialogDone = func(d *Dialog) {
		switch {
		case d.Result == DialogOK && d.Chosen == 0:
			if a.path == "" {
				a.promptSaveAs(then)
			} else {
				a.saveTo(a.path, then)
			}
		case d.Result == DialogOK && d.Chosen == 1:
			then()
		}
	}
}

func (a *App) displayName() string {
	if a.path == "" {
		return a.tr("untitled")
	}
	return filepath.Base(a.path)
}

func (a *App) promptOpen() {
	a.dialog = NewPromptDialog(a.tr("Open"), a.tr("File name:"), "")
	a.dialogDone = func(d *Dialog) {
		if d.Result != DialogOK || d.Chosen != 0 || d.Value() == "" {
			return
		}
		a.openFile(d.Value())
	}
}

func (a *App) openFile(path string) {
	doc, err := format.LoadFile(path, format.LoadOptions{
		ImageWidth: a.cfg.Files.ImageImportWidth,
		ColorMode:  a.mode,
	})
	if err != nil {
		a.dialog = NewMessageDialog(a.tr("Paint"),
			a.tr("Cannot open file.")+"\n"+err.Error())
		return
	}
	if format.Detect(path) == format.KindImage {
		// Imported images start as a new, unsaved document.
		a.setDocument(doc, "")
		a.modified = true
		return
	}
	a.setDocument(doc, path)
}

func (a *App) setDocument(doc *canvas.Canvas, path string) {
	a.doc = doc
	a.drawing.Canvas = doc
	a.drawing.Overlay.Reset()
	a.drawing.Selection.Clear()
	a.history = canvas.NewHistory(a.cfg.Canvas.UndoDepth)
	a.path = path
	a.modified = false
	a.scrollX, a.scrollY = 0, 0
	a.message = ""
}

func (a *App) promptSaveAs(then func()) {
	a.dialog = NewPromptDialog(a.tr("Save As"), a.tr("File name:"), a.path)
	a.dialogDone = func(d *Dialog) {
		if d.Result != DialogOK || d.Chosen != 0 || d.Value() == "" {
			return
		}
		a.saveTo(d.Value(), then)
	}
}

func (a *App) saveTo(path string, then func()) {
	err := format.SaveFile(path, a.doc, a.mode, a.cfg.Files.BackupOnSave)
	if err != nil {
		a.dialog = NewMessageDialog(a.tr("Paint"),
			a.tr("Cannot save file.")+"\n"+err.Error())
		return
	}
	a.path = path
	a.modified = false
	a.message = a.tr("Saved ") + a.displayName()
	if then != nil {
		then()
	}
}

func (a *App) promptResize() {
	w, h := a.doc.Size()
	a.dialog = NewPromptDialog(a.tr("Attributes"),
		a.tr("Size (width x height):"), fmt.Sprintf("%dx%d", w, h))
	a.dialogDone = func(d *Dialog) {
		if d.Result != DialogOK || d.Chosen != 0 {
			return
		}
		nw, nh, err := parseSize(d.Value())
		if err != nil {
			a.dialog = NewMessageDialog(a.tr("Paint"), err.Error())
			return
		}
		a.transform(func(c *canvas.Canvas) { c.Resize(nw, nh) })
	}
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size must look like 80x24")
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q", parts[0])
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad height %q", parts[1])
	}
	if w < 1 || h < 1 || w > 1000 || h > 1000 {
		return 0, 0, fmt.Errorf("size out of range")
	}
	return w, h, nil
}

// --- Rendering ---

func (a *App) render() {
	s := a.screen
	sw, sh := s.Size()
	s.Clear()

	FillRect(s, 0, 1, sw, sh-1, ' ',
		ChromeStyle(a.theme.StatusFg, a.theme.WorkspaceBg))

	a.renderCanvas()

	a.toolbox.X, a.toolbox.Y = 0, 1
	a.toolbox.Draw(s, a.theme)

	a.palette.X = a.toolbox.Width() + 1
	a.palette.Y = sh - 2
	if a.showStatus {
		a.palette.Y--
	}
	a.palette.Draw(s, a.drawing.Brush, a.theme)

	if a.showStatus {
		w, h := a.doc.Size()
		a.status.Y = sh - 1
		a.status.Draw(s, sw, StatusInfo{
			Message:  a.statusMessage(),
			ToolName: a.tr(a.currentTool().Name()),
			CursorX:  a.cursorX,
			CursorY:  a.cursorY,
			CanvasW:  w,
			CanvasH:  h,
			HasPos:   a.hasCursor,
		}, a.theme)
	}

	a.menubar.Draw(s, sw, a.theme)

	if a.colors != nil {
		title := a.tr("Edit Colors")
		a.colors.Draw(s, sw, sh, a.theme, title)
	}
	if a.dialog != nil {
		a.dialog.Draw(s, sw, sh, a.theme)
	}
	s.Show()
}

func (a *App) statusMessage() string {
	if a.message != "" {
		return a.message
	}
	name := a.displayName()
	if a.modified {
		name += " *"
	}
	if a.readOnly {
		name += " " + a.tr("(view only)")
	}
	return name
}

func (a *App) renderCanvas() {
	s := a.screen
	vx, vy, vw, vh := a.canvasViewport()
	w, h := a.doc.Size()
	sel := a.drawing.Selection

	for dy := 0; dy < vh; dy++ {
		cy := dy + a.scrollY
		if cy >= h {
			break
		}
		for dx := 0; dx < vw; dx++ {
			cx := dx + a.scrollX
			if cx >= w {
				break
			}
			cell := a.doc.Get(cx, cy)
			if oc, ok := a.drawing.Overlay.Get(cx, cy); ok {
				cell = oc
			}
			if sel.Floating() && sel.Rect.Contains(cx, cy) {
				if fc, ok := floatingCell(sel, a.doc, cx, cy); ok {
					cell = fc
				}
			}
			st := CellStyle(cell)
			if sel.Active() && onSelectionBorder(sel.Rect, cx, cy) {
				st = st.Reverse(true)
			}
			s.SetContent(vx+dx, vy+dy, cell.Rune, nil, st)
		}
	}

	// Text caret
	if txt, ok := a.currentTool().(*tool.Text); ok && txt.Active() {
		sx := vx + txt.CaretX - a.scrollX
		sy := vy + txt.CaretY - a.scrollY
		if sx >= vx && sx < vx+vw && sy >= vy && sy < vy+vh {
			cell := a.doc.Get(txt.CaretX, txt.CaretY)
			s.SetContent(sx, sy, cell.Rune, nil, CellStyle(cell).Reverse(true))
		}
	}
}

// floatingCell reads one cell out of a floating selection.
func floatingCell(sel *canvas.Selection, c *canvas.Canvas, x, y int) (canvas.Cell, bool) {
	cells, r := sel.Cells(c)
	if !r.Contains(x, y) {
		return canvas.Cell{}, false
	}
	return cells[(y-r.Y)*r.W+(x-r.X)], true
}

func onSelectionBorder(r canvas.Rect, x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.X+r.W-1 || y == r.Y || y == r.Y+r.H-1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
