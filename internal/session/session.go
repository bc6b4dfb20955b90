// Package session ties a canvas, the editing tools, the command history and
// the viewport into one editing session driven frame by frame.
package session

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/history"
	"github.com/example/spritery/internal/notify"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/platform"
	"github.com/example/spritery/internal/tools"
	"github.com/example/spritery/internal/viewport"
)

const (
	DefaultWidth  = 32
	DefaultHeight = 32
)

var (
	// ErrNoDialogs is returned by the dialog helpers when the session was
	// built without a dialog capability.
	ErrNoDialogs = errors.New("no dialog support configured")
	// ErrNoPath is returned by Save when neither an explicit nor a
	// remembered path is available.
	ErrNoPath = errors.New("no file path")
)

// Frame is the input for one tick of the editor.
type Frame struct {
	// Bounds is the screen rectangle the canvas is drawn in.
	Bounds image.Rectangle
	// Pointer is the pointer position in screen space.
	Pointer viewport.Vec
	Buttons tools.Pointer
}

// Session owns all mutable editing state. It is not safe for concurrent
// use; one frame loop drives it.
type Session struct {
	canvas   *canvas.Canvas
	history  *history.History
	view     *viewport.Viewport
	tools    []tools.Tool
	tool     tools.Tool
	color    canvas.Color
	colorSet bool
	hovered  canvas.Cell
	bounds   image.Rectangle
	dialogs  platform.Dialogs
	notifier *notify.Notifier
	palettes *palette.Library
	swatch   int
	path     string
	dirty    bool
	logger   *log.Logger
}

// Option configures a Session during creation.
type Option func(*Session)

// WithCanvas starts the session on c instead of a blank canvas.
func WithCanvas(c *canvas.Canvas) Option { return func(s *Session) { s.canvas = c } }

// WithPath records the file the canvas was loaded from.
func WithPath(path string) Option { return func(s *Session) { s.path = path } }

// WithViewport supplies a preconfigured viewport.
func WithViewport(v *viewport.Viewport) Option { return func(s *Session) { s.view = v } }

// WithColor sets the initial drawing color.
func WithColor(c canvas.Color) Option {
	return func(s *Session) {
		s.color = c
		s.colorSet = true
	}
}

// WithDialogs injects the native dialog capability.
func WithDialogs(d platform.Dialogs) Option { return func(s *Session) { s.dialogs = d } }

// WithNotifier injects desktop notifications.
func WithNotifier(n *notify.Notifier) Option { return func(s *Session) { s.notifier = n } }

// WithPalettes sets the palettes available for color selection.
func WithPalettes(l *palette.Library) Option { return func(s *Session) { s.palettes = l } }

// WithLogger routes session log lines to l.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// New creates a session. Without options it edits a blank
// DefaultWidth by DefaultHeight canvas with the pencil and the first color
// of the default palette.
func New(opts ...Option) *Session {
	s := &Session{
		history: history.New(),
		tools:   tools.All(),
		hovered: canvas.NoCell,
		swatch:  -1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.canvas == nil {
		s.canvas = canvas.New(DefaultWidth, DefaultHeight)
	}
	if s.view == nil {
		s.view = viewport.New()
	}
	if s.palettes == nil {
		s.palettes = palette.NewLibrary()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if !s.colorSet {
		s.color = s.palettes.Current().Color(0)
	}
	s.swatch = s.palettes.Current().Index(s.color)
	s.tool = s.tools[tools.KindPencil]
	return s
}

// Canvas returns the canvas being edited. Callers must not mutate it
// directly; edits go through tools so they are undoable.
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// History exposes the command history for inspection.
func (s *Session) History() *history.History { return s.history }

// Viewport returns the viewport for pan and zoom changes.
func (s *Session) Viewport() *viewport.Viewport { return s.view }

// Tool returns the active tool.
func (s *Session) Tool() tools.Tool { return s.tool }

// Color returns the active drawing color.
func (s *Session) Color() canvas.Color { return s.color }

// Hovered returns the cell under the pointer in the last frame.
func (s *Session) Hovered() canvas.Cell { return s.hovered }

// Path returns the file the canvas is associated with, if any.
func (s *Session) Path() string { return s.path }

// Dirty reports whether the canvas changed since it was last loaded or
// saved.
func (s *Session) Dirty() bool { return s.dirty }

// Notifier returns the notifier, which may be nil.
func (s *Session) Notifier() *notify.Notifier { return s.notifier }

// Palettes returns the palette library.
func (s *Session) Palettes() *palette.Library { return s.palettes }

// Geometry lays the canvas out in the bounds of the last frame.
func (s *Session) Geometry() viewport.Geometry {
	return s.view.Frame(s.bounds, s.canvas.Width(), s.canvas.Height())
}

// Update runs one frame: it resolves the hovered cell, feeds the active
// tool and records whatever the tool produced. It returns the command
// committed in this frame, if any.
func (s *Session) Update(f Frame) *history.Command {
	s.bounds = f.Bounds
	s.hovered = s.Geometry().ScreenToCell(f.Pointer)
	return s.feed(s.hovered, f.Buttons)
}

// feed runs the active tool for one step and records its outcome.
func (s *Session) feed(cell canvas.Cell, p tools.Pointer) *history.Command {
	out := s.tool.Update(tools.Context{
		Canvas:  s.canvas,
		Cell:    cell,
		Color:   s.color,
		Pointer: p,
	})
	if out.HasPick {
		s.SetColor(out.Picked)
	}
	if out.Command != nil {
		s.commit(out.Command)
	}
	return out.Command
}

func (s *Session) commit(cmd *history.Command) {
	s.history.Do(cmd)
	s.dirty = true
	s.logger.Printf("%v", cmd)
}

// finishGesture releases the active tool so a half-drawn stroke becomes a
// command before anything else touches the canvas or history.
func (s *Session) finishGesture() {
	s.feed(canvas.NoCell, tools.Pointer{Released: true})
}

// SelectTool switches the active tool, committing any gesture in progress.
func (s *Session) SelectTool(k tools.Kind) error {
	if k < 0 || int(k) >= len(s.tools) {
		return fmt.Errorf("select tool: unknown tool %v", k)
	}
	if s.tool.Kind() == k {
		return nil
	}
	s.finishGesture()
	s.tool = s.tools[k]
	return nil
}

// SetColor changes the drawing color and tracks its palette position.
func (s *Session) SetColor(c canvas.Color) {
	s.color = c
	s.swatch = s.palettes.Current().Index(c)
}

// Swatch returns the palette index of the active color, or -1.
func (s *Session) Swatch() int { return s.swatch }

// SelectPaletteColor makes swatch i of the current palette the drawing
// color. Indexes wrap.
func (s *Session) SelectPaletteColor(i int) canvas.Color {
	p := s.palettes.Current()
	s.color = p.Color(i)
	if n := p.Len(); n > 0 {
		s.swatch = ((i % n) + n) % n
	}
	return s.color
}

// PaletteNext switches to the following palette.
func (s *Session) PaletteNext() *palette.Palette {
	p := s.palettes.Next()
	s.swatch = p.Index(s.color)
	return p
}

// PalettePrev switches to the preceding palette.
func (s *Session) PalettePrev() *palette.Palette {
	p := s.palettes.Prev()
	s.swatch = p.Index(s.color)
	return p
}

// ReloadPalettes replaces the palette set, keeping the selection by name.
func (s *Session) ReloadPalettes(ps []*palette.Palette) {
	s.palettes.Replace(ps)
	s.swatch = s.palettes.Current().Index(s.color)
}

// Undo reverts the most recent command. On an empty history it returns an
// error wrapping history.ErrEmptyHistory and leaves the canvas untouched.
func (s *Session) Undo() error {
	s.finishGesture()
	cmd, err := s.history.Undo()
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	Revert(s.canvas, cmd)
	s.dirty = true
	s.logger.Printf("undid %v", cmd)
	return nil
}

// Redo re-applies the most recently undone command. On an empty redo stack
// it returns an error wrapping history.ErrEmptyHistory.
func (s *Session) Redo() error {
	s.finishGesture()
	cmd, err := s.history.Redo()
	if err != nil {
		return fmt.Errorf("redo: %w", err)
	}
	Apply(s.canvas, cmd)
	s.dirty = true
	s.logger.Printf("redid %v", cmd)
	return nil
}

// Replace swaps in a new canvas. History is cleared because its commands
// address the old canvas, gestures in progress are dropped and the view
// is recentered, fitting the canvas when the frame bounds are known.
func (s *Session) Replace(c *canvas.Canvas, path string) {
	s.canvas = c
	s.path = path
	s.dirty = false
	s.history.Clear()
	s.tools = tools.All()
	s.tool = s.tools[s.tool.Kind()]
	s.hovered = canvas.NoCell
	if s.bounds.Empty() {
		s.view.Center()
	} else {
		s.view.FitZoom(s.bounds, c.Width(), c.Height())
	}
}

// NewCanvas replaces the canvas with a blank one of the given size,
// clamped to canvas.MaxSize.
func (s *Session) NewCanvas(width, height int) {
	s.Replace(canvas.New(width, height), "")
	s.logger.Printf("new canvas %dx%d", s.canvas.Width(), s.canvas.Height())
}
