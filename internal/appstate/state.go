// Package appstate runs the editor window: a shiny event loop that feeds
// pointer and keyboard input into an editing session and paints frames.
package appstate

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/theme"
	"github.com/example/spritery/internal/viewport"
)

const (
	pollInterval       = 250 * time.Millisecond
	frameDropThreshold = 3
	minWindow          = 480
	maxWindow          = 1280
)

// AppState holds the window configuration and the session it edits.
type AppState struct {
	Session  *session.Session
	Theme    *theme.Theme
	Title    string
	Grid     bool
	Status   bool
	ZoomStep float64
	PanStep  float64
	NewSize  image.Point

	watcher  *palette.Watcher
	reload   func() ([]*palette.Palette, error)
	logger   *log.Logger
	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSession sets the session the window edits.
func WithSession(s *session.Session) Option { return func(a *AppState) { a.Session = s } }

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithGrid starts with the pixel grid shown.
func WithGrid(on bool) Option { return func(a *AppState) { a.Grid = on } }

// WithStatus starts with the status overlay shown.
func WithStatus(on bool) Option { return func(a *AppState) { a.Status = on } }

// WithSteps sets the zoom factor applied per zoom key and the distance
// moved per pan key in pixels.
func WithSteps(zoom, pan float64) Option {
	return func(a *AppState) {
		a.ZoomStep = zoom
		a.PanStep = pan
	}
}

// WithNewSize sets the size of canvases created with Ctrl+N.
func WithNewSize(w, h int) Option { return func(a *AppState) { a.NewSize = image.Pt(w, h) } }

// WithPaletteWatcher calls reload whenever w reports a changed palette
// file and hands the result to the session.
func WithPaletteWatcher(w *palette.Watcher, reload func() ([]*palette.Palette, error)) Option {
	return func(a *AppState) {
		a.watcher = w
		a.reload = reload
	}
}

// WithLogger routes window log lines to l.
func WithLogger(l *log.Logger) Option { return func(a *AppState) { a.logger = l } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Title:    "Spritery",
		Status:   true,
		ZoomStep: viewport.DefaultZoomStep,
		PanStep:  20,
		NewSize:  image.Pt(session.DefaultWidth, session.DefaultHeight),
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	if a.Session == nil {
		a.Session = session.New(session.WithLogger(a.logger))
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

// NotifyChanged requests a repaint, for example after the session was
// modified from outside the window loop's input handling.
func (a *AppState) NotifyChanged() {
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// windowSize picks a starting size that shows the canvas at its current
// zoom, within sensible limits.
func (a *AppState) windowSize() image.Point {
	c := a.Session.Canvas()
	z := a.Session.Viewport().Zoom
	w := int(float64(c.Width())*z) + 64
	h := int(float64(c.Height())*z) + 64
	return image.Pt(
		min(max(w, minWindow), maxWindow),
		min(max(h, minWindow), maxWindow),
	)
}

type pollEvent struct{}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main is the shiny entry point. It returns when the window closes.
func (a *AppState) Main(s screen.Screen) {
	sz := a.windowSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: sz.X, Height: sz.Y, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	ed := newEditor(a)
	ed.resize(sz)

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(pollInterval)
		defer t.Stop()
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-t.C:
				w.Send(pollEvent{})
			case <-done:
				return
			}
		}
	}()

	pt := newPainter(func(ctx context.Context, st paintState) { drawFrame(ctx, s, w, st) })
	defer pt.stop()

	shownMessage := ""
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			ed.resize(image.Pt(e.WidthPx, e.HeightPx))
			w.Send(paint.Event{})
		case mouse.Event:
			ed.handleMouse(e)
			w.Send(paint.Event{})
		case key.Event:
			if ed.handleKey(e) {
				if ed.quit {
					return
				}
				w.Send(paint.Event{})
			}
		case pollEvent:
			repaint := false
			if a.watcher != nil {
				repaint = ed.reloadPalettes(a.watcher.Drain())
			}
			// repaint once more when a message expires
			if ed.activeMessage() != shownMessage {
				repaint = true
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case paint.Event:
			shownMessage = ed.activeMessage()
			pt.queue(paintState{frame: ed.frame(), message: shownMessage})
		case error:
			log.Print(e)
		}
	}
}
