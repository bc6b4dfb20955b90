package appstate

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/clipboard"
	"github.com/example/spritery/internal/history"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/render"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/tools"
	"github.com/example/spritery/internal/viewport"
)

const messageDuration = 2 * time.Second

// editor turns window input into session calls. It is owned by the event
// loop and never touched from another goroutine.
type editor struct {
	sess    *session.Session
	opts    render.Options
	layout  render.Layout
	keys    keymap
	ctx     context.Context
	logger  *log.Logger
	now     func() time.Time
	sized   bool
	newSize image.Point

	zoomStep float64
	panStep  float64

	leftDown bool
	panning  bool
	panFrom  viewport.Vec

	message      string
	messageUntil time.Time
	quit         bool

	copyCanvas  func(*canvas.Canvas) error
	pasteCanvas func() (*canvas.Canvas, error)
	reload      func() ([]*palette.Palette, error)
}

func newEditor(a *AppState) *editor {
	e := &editor{
		sess: a.Session,
		opts: render.Options{
			Theme:  a.Theme,
			Grid:   a.Grid,
			Status: a.Status,
			Shadow: render.DefaultShadow(),
		},
		keys:        newKeymap(Bindings()),
		ctx:         context.Background(),
		logger:      a.logger,
		now:         time.Now,
		newSize:     a.NewSize,
		zoomStep:    a.ZoomStep,
		panStep:     a.PanStep,
		copyCanvas:  clipboard.WriteCanvas,
		pasteCanvas: clipboard.ReadCanvas,
		reload:      a.reload,
	}
	return e
}

func (e *editor) say(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageUntil = e.now().Add(messageDuration)
	e.logger.Print(e.message)
}

func (e *editor) fail(action string, err error) {
	e.logger.Printf("%s: %v", action, err)
	e.message = fmt.Sprintf("%s failed", action)
	e.messageUntil = e.now().Add(messageDuration)
}

// activeMessage returns the transient message if it has not expired.
func (e *editor) activeMessage() string {
	if e.message == "" || !e.now().Before(e.messageUntil) {
		return ""
	}
	return e.message
}

// resize lays the window out again. The first size fits a canvas that
// would not be fully visible at the configured zoom.
func (e *editor) resize(sz image.Point) {
	e.layout = render.NewLayout(sz)
	if e.sized {
		return
	}
	e.sized = true
	c := e.sess.Canvas()
	g := e.sess.Viewport().Frame(e.layout.Canvas, c.Width(), c.Height())
	if !g.Canvas.Image().In(e.layout.Canvas) {
		e.sess.Viewport().FitZoom(e.layout.Canvas, c.Width(), c.Height())
	}
}

// handleKey runs the action bound to ev and reports whether anything
// happened.
func (e *editor) handleKey(ev key.Event) bool {
	action, ok := e.keys.lookup(ev)
	if !ok {
		return false
	}
	e.run(action)
	return true
}

func (e *editor) run(action string) {
	v := e.sess.Viewport()
	c := e.sess.Canvas()
	switch action {
	case "undo":
		if err := e.sess.Undo(); errors.Is(err, history.ErrEmptyHistory) {
			e.say("nothing to undo")
		}
	case "redo":
		if err := e.sess.Redo(); errors.Is(err, history.ErrEmptyHistory) {
			e.say("nothing to redo")
		}
	case "pan-up":
		v.PanBy(0, e.panStep)
	case "pan-down":
		v.PanBy(0, -e.panStep)
	case "pan-left":
		v.PanBy(e.panStep, 0)
	case "pan-right":
		v.PanBy(-e.panStep, 0)
	case "zoom-in":
		v.ZoomIn(e.zoomStep)
	case "zoom-out":
		v.ZoomOut(e.zoomStep)
	case "center":
		v.Center()
	case "fit":
		v.FitZoom(e.layout.Canvas, c.Width(), c.Height())
	case "grid":
		e.opts.Grid = !e.opts.Grid
	case "status":
		e.opts.Status = !e.opts.Status
	case "tool-1", "tool-2", "tool-3", "tool-4":
		k := tools.Kind(action[len(action)-1] - '1')
		if err := e.sess.SelectTool(k); err != nil {
			e.fail("select tool", err)
		}
	case "palette-next":
		e.say("palette %s", e.sess.PaletteNext().Name)
	case "palette-prev":
		e.say("palette %s", e.sess.PalettePrev().Name)
	case "save":
		if e.sess.Path() == "" {
			e.saveAs()
			return
		}
		if err := e.sess.Save(""); err != nil {
			e.fail("save", err)
			return
		}
		e.say("saved %s", e.sess.Path())
	case "save-as":
		e.saveAs()
	case "open":
		ok, err := e.sess.OpenDialog(e.ctx)
		if err != nil {
			e.fail("open", err)
			return
		}
		if ok {
			e.say("opened %s", e.sess.Path())
		}
	case "new":
		e.sess.NewCanvas(e.newSize.X, e.newSize.Y)
		e.sess.Viewport().FitZoom(e.layout.Canvas, e.sess.Canvas().Width(), e.sess.Canvas().Height())
		e.say("new %dx%d canvas", e.sess.Canvas().Width(), e.sess.Canvas().Height())
	case "copy":
		if err := e.copyCanvas(c); err != nil {
			e.fail("copy", err)
			return
		}
		detail := "sprite"
		if p := e.sess.Path(); p != "" {
			detail = filepath.Base(p)
		}
		e.sess.Notifier().Copy(detail)
		e.say("copied to clipboard")
	case "paste":
		pasted, err := e.pasteCanvas()
		if err != nil {
			e.fail("paste", err)
			return
		}
		e.sess.Replace(pasted, "")
		e.say("pasted %dx%d canvas", pasted.Width(), pasted.Height())
	case "pick-color":
		e.pickColor()
	case "quit":
		e.quit = true
	}
}

func (e *editor) saveAs() {
	ok, err := e.sess.SaveDialog(e.ctx)
	if err != nil {
		e.fail("save", err)
		return
	}
	if ok {
		e.say("saved %s", e.sess.Path())
	}
}

func (e *editor) pickColor() {
	if _, err := e.sess.PickColorDialog(e.ctx); err != nil {
		e.fail("color", err)
	}
}

// handleMouse feeds pointer input to the session. Left presses outside
// the canvas area go to the toolbar and palette strip; the right or
// middle button drags the view.
func (e *editor) handleMouse(ev mouse.Event) {
	ptr := viewport.Vec{X: float64(ev.X), Y: float64(ev.Y)}
	var buttons tools.Pointer
	switch {
	case ev.Direction == mouse.DirStep:
		switch ev.Button {
		case mouse.ButtonWheelUp:
			e.sess.Viewport().ZoomIn(e.zoomStep)
		case mouse.ButtonWheelDown:
			e.sess.Viewport().ZoomOut(e.zoomStep)
		}
	case ev.Button == mouse.ButtonRight || ev.Button == mouse.ButtonMiddle:
		e.panning = ev.Direction == mouse.DirPress
		e.panFrom = ptr
	case ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirPress:
		p := image.Pt(int(ev.X), int(ev.Y))
		if !p.In(e.layout.Canvas) {
			e.clickChrome(p)
			return
		}
		e.leftDown = true
		buttons = tools.Pointer{Down: true, Pressed: true}
	case ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirRelease:
		if !e.leftDown {
			return
		}
		e.leftDown = false
		buttons = tools.Pointer{Released: true}
	default:
		if e.panning {
			e.sess.Viewport().PanBy(ptr.X-e.panFrom.X, ptr.Y-e.panFrom.Y)
			e.panFrom = ptr
		}
		buttons.Down = e.leftDown
	}
	e.sess.Update(session.Frame{Bounds: e.layout.Canvas, Pointer: ptr, Buttons: buttons})
}

func (e *editor) clickChrome(p image.Point) {
	if k, ok := e.layout.ToolAt(p); ok {
		if err := e.sess.SelectTool(k); err != nil {
			e.fail("select tool", err)
		}
		return
	}
	if p.In(e.layout.ColorPreview()) {
		e.pickColor()
		return
	}
	if i, ok := e.layout.SwatchAt(p, e.sess.Palettes().Current().Len()); ok {
		e.sess.SelectPaletteColor(i)
	}
}

// reloadPalettes reloads the palette set after the watcher saw a change.
func (e *editor) reloadPalettes(changed []string) bool {
	if len(changed) == 0 || e.reload == nil {
		return false
	}
	ps, err := e.reload()
	if err != nil {
		e.logger.Printf("palettes: %v", err)
	}
	if len(ps) == 0 {
		return false
	}
	e.sess.ReloadPalettes(ps)
	e.say("reloaded %d palettes", len(ps))
	return true
}

// frame composes the window contents.
func (e *editor) frame() *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: e.layout.Size})
	render.Draw(dst, e.layout, e.sess, e.opts)
	return dst
}
