package session

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/codec"
	"github.com/example/spritery/internal/history"
	"github.com/example/spritery/internal/notify"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/platform"
	"github.com/example/spritery/internal/tools"
	"github.com/example/spritery/internal/viewport"
)

var (
	red    = canvas.Color{R: 255, A: 255}
	blue   = canvas.Color{B: 255, A: 255}
	bounds = image.Rect(0, 0, 400, 400)
	quiet  = log.New(io.Discard, "", 0)
)

func newSession(t *testing.T, w, h int, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithCanvas(canvas.New(w, h)), WithLogger(quiet)}, opts...)
	return New(opts...)
}

// at returns the screen position of the middle of cell for the default
// zoom inside bounds.
func at(s *Session, cell canvas.Cell) viewport.Vec {
	g := s.view.Frame(bounds, s.canvas.Width(), s.canvas.Height())
	r := g.CellRect(cell)
	return viewport.Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func click(s *Session, cell canvas.Cell) *history.Command {
	p := at(s, cell)
	pressed := s.Update(Frame{Bounds: bounds, Pointer: p, Buttons: tools.Pointer{Down: true, Pressed: true}})
	released := s.Update(Frame{Bounds: bounds, Pointer: p, Buttons: tools.Pointer{Released: true}})
	if pressed != nil {
		return pressed
	}
	return released
}

func TestScenarioPaintFillUndoRedo(t *testing.T) {
	s := newSession(t, 4, 4)
	s.SetColor(red)
	cmd := click(s, canvas.Cell{X: 1, Y: 1})
	if cmd == nil || cmd.Len() != 1 {
		t.Fatalf("expected one-pixel command, got %v", cmd)
	}
	if s.Canvas().At(1, 1) != red {
		t.Fatal("cell 1:1 not red")
	}

	if err := s.SelectTool(tools.KindBucket); err != nil {
		t.Fatal(err)
	}
	s.SetColor(blue)
	cmd = click(s, canvas.Cell{X: 0, Y: 0})
	if cmd == nil || cmd.Len() != 15 {
		t.Fatalf("expected 15 filled pixels, got %v", cmd)
	}
	if s.Canvas().Count(blue) != 15 || s.Canvas().At(1, 1) != red {
		t.Fatal("fill result wrong")
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if s.Canvas().Count(canvas.Invisible) != 15 || s.Canvas().At(1, 1) != red {
		t.Fatal("undo did not restore invisible cells")
	}
	if err := s.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if s.Canvas().Count(blue) != 15 {
		t.Fatal("redo did not reapply fill")
	}
}

func TestUndoRedoIsLossless(t *testing.T) {
	s := newSession(t, 6, 6)
	var states []*canvas.Canvas
	states = append(states, s.Canvas().Clone())
	cells := []canvas.Cell{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: 5, Y: 5}}
	for i, cell := range cells {
		s.SetColor(canvas.Color{R: uint8(40 * (i + 1)), A: 255})
		click(s, cell)
		states = append(states, s.Canvas().Clone())
	}
	_ = s.SelectTool(tools.KindBucket)
	click(s, canvas.Cell{X: 1, Y: 1})
	states = append(states, s.Canvas().Clone())

	for i := len(states) - 2; i >= 0; i-- {
		if err := s.Undo(); err != nil {
			t.Fatal(err)
		}
		if !s.Canvas().Equal(states[i]) {
			t.Fatalf("undo to state %d mismatched", i)
		}
	}
	for i := 1; i < len(states); i++ {
		if err := s.Redo(); err != nil {
			t.Fatal(err)
		}
		if !s.Canvas().Equal(states[i]) {
			t.Fatalf("redo to state %d mismatched", i)
		}
	}
}

func TestEmptyHistoryLeavesCanvas(t *testing.T) {
	s := newSession(t, 3, 3)
	s.SetColor(red)
	click(s, canvas.Cell{X: 2, Y: 2})
	if err := s.Redo(); !errors.Is(err, history.ErrEmptyHistory) {
		t.Fatalf("redo: expected ErrEmptyHistory, got %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	before := s.Canvas().Clone()
	if err := s.Undo(); !errors.Is(err, history.ErrEmptyHistory) {
		t.Fatalf("undo: expected ErrEmptyHistory, got %v", err)
	}
	if !s.Canvas().Equal(before) {
		t.Fatal("failed undo changed the canvas")
	}
}

func TestNewCommandAfterUndoClearsRedo(t *testing.T) {
	s := newSession(t, 3, 3)
	s.SetColor(red)
	click(s, canvas.Cell{X: 0, Y: 0})
	_ = s.Undo()
	click(s, canvas.Cell{X: 1, Y: 1})
	if err := s.Redo(); !errors.Is(err, history.ErrEmptyHistory) {
		t.Fatalf("expected redo cleared, got %v", err)
	}
	if s.Canvas().At(0, 0) != canvas.Invisible {
		t.Fatal("undone pixel came back")
	}
}

func TestSameColorPaintNoCommand(t *testing.T) {
	s := newSession(t, 2, 2)
	s.SetColor(red)
	click(s, canvas.Cell{X: 0, Y: 0})
	if cmd := click(s, canvas.Cell{X: 0, Y: 0}); cmd != nil {
		t.Fatalf("repainting same color produced %v", cmd)
	}
	if s.History().UndoLen() != 1 {
		t.Fatalf("undo depth %d", s.History().UndoLen())
	}
}

func TestHoveredCell(t *testing.T) {
	s := newSession(t, 4, 4)
	s.Update(Frame{Bounds: bounds, Pointer: at(s, canvas.Cell{X: 3, Y: 2})})
	if s.Hovered() != (canvas.Cell{X: 3, Y: 2}) {
		t.Fatalf("hovered %v", s.Hovered())
	}
	s.Update(Frame{Bounds: bounds, Pointer: viewport.Vec{X: 1, Y: 1}})
	if s.Hovered() != canvas.NoCell {
		t.Fatalf("hovered %v off canvas", s.Hovered())
	}
}

func TestColorPickerSetsColor(t *testing.T) {
	s := newSession(t, 2, 2)
	s.SetColor(blue)
	click(s, canvas.Cell{X: 1, Y: 0})
	_ = s.SelectTool(tools.KindColorPicker)
	s.SetColor(red)
	if cmd := click(s, canvas.Cell{X: 1, Y: 0}); cmd != nil {
		t.Fatal("picker produced a command")
	}
	if s.Color() != blue {
		t.Fatalf("color %v, want blue", s.Color())
	}
	if s.Swatch() != 4 {
		t.Fatalf("swatch %d, want blue's index 4", s.Swatch())
	}
}

func TestSelectToolCommitsGesture(t *testing.T) {
	s := newSession(t, 4, 4)
	s.SetColor(red)
	s.Update(Frame{Bounds: bounds, Pointer: at(s, canvas.Cell{X: 0, Y: 0}), Buttons: tools.Pointer{Down: true, Pressed: true}})
	if err := s.SelectTool(tools.KindEraser); err != nil {
		t.Fatal(err)
	}
	if s.History().UndoLen() != 1 {
		t.Fatal("switching tools should commit the open stroke")
	}
	if s.Tool().Kind() != tools.KindEraser {
		t.Fatalf("tool %v", s.Tool().Kind())
	}
	if err := s.SelectTool(tools.Kind(42)); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestNewCanvasClearsHistory(t *testing.T) {
	s := newSession(t, 4, 4)
	s.SetColor(red)
	click(s, canvas.Cell{X: 0, Y: 0})
	s.Viewport().PanBy(30, 30)
	s.NewCanvas(4000, 8)
	if s.Canvas().Width() != canvas.MaxSize || s.Canvas().Height() != 8 {
		t.Fatalf("size %dx%d", s.Canvas().Width(), s.Canvas().Height())
	}
	if s.History().CanUndo() {
		t.Fatal("history survived canvas replacement")
	}
	if s.Viewport().Pan != (viewport.Vec{}) {
		t.Fatal("view not recentered")
	}
	if s.Dirty() || s.Path() != "" {
		t.Fatal("new canvas should be clean and unnamed")
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	var notes []string
	n := notify.New(notify.DefaultPreferences()).WithSender(func(_, body string, _ platform.Options) error {
		notes = append(notes, body)
		return nil
	})
	n.Enable(notify.EventSave, true)

	s := newSession(t, 3, 2, WithNotifier(n))
	if err := s.Save(""); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	s.SetColor(red)
	click(s, canvas.Cell{X: 2, Y: 1})
	if !s.Dirty() {
		t.Fatal("edit should mark dirty")
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Dirty() || s.Path() != path {
		t.Fatal("save should record the path and clear dirty")
	}
	if len(notes) != 1 {
		t.Fatalf("notifications %v", notes)
	}

	other := newSession(t, 1, 1)
	if err := other.Open(path); err != nil {
		t.Fatalf("open: %v", err)
	}
	if !other.Canvas().Equal(s.Canvas()) {
		t.Fatal("opened canvas differs")
	}
	if err := other.Open(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
}

type fakeDialogs struct {
	file, name string
	col        color.NRGBA
	ok         bool
	err        error
}

func (f *fakeDialogs) ChooseFile(context.Context, string, []string) (string, error) {
	return f.file, f.err
}

func (f *fakeDialogs) ChooseFileName(context.Context, string, string) (string, error) {
	return f.name, f.err
}

func (f *fakeDialogs) ChooseColor(context.Context, string, color.NRGBA) (color.NRGBA, bool, error) {
	return f.col, f.ok, f.err
}

func TestDialogsCancelKeepsState(t *testing.T) {
	s := newSession(t, 2, 2, WithDialogs(&fakeDialogs{}), WithColor(red))
	before := s.Canvas()
	ctx := context.Background()
	for name, fn := range map[string]func(context.Context) (bool, error){
		"open":  s.OpenDialog,
		"save":  s.SaveDialog,
		"color": s.PickColorDialog,
	} {
		done, err := fn(ctx)
		if done || err != nil {
			t.Errorf("%s: got %v, %v", name, done, err)
		}
	}
	if s.Canvas() != before || s.Color() != red || s.Path() != "" {
		t.Fatal("cancelled dialogs changed the session")
	}
}

func TestDialogsComplete(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	c := canvas.New(2, 3)
	c.Set(1, 2, blue)
	if err := codec.ExportFile(src, c); err != nil {
		t.Fatal(err)
	}
	d := &fakeDialogs{
		file: src,
		name: filepath.Join(dir, "out.bmp"),
		col:  color.NRGBA{R: 1, G: 2, B: 3, A: 255},
		ok:   true,
	}
	s := newSession(t, 1, 1, WithDialogs(d))
	ctx := context.Background()
	if done, err := s.OpenDialog(ctx); !done || err != nil {
		t.Fatalf("open: %v %v", done, err)
	}
	if !s.Canvas().Equal(c) {
		t.Fatal("dialog open loaded wrong canvas")
	}
	if done, err := s.SaveDialog(ctx); !done || err != nil {
		t.Fatalf("save: %v %v", done, err)
	}
	if _, err := os.Stat(d.name); err != nil {
		t.Fatalf("save dialog did not write: %v", err)
	}
	if done, err := s.PickColorDialog(ctx); !done || err != nil {
		t.Fatalf("color: %v %v", done, err)
	}
	if s.Color() != (canvas.Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("color %v", s.Color())
	}
}

func TestDialogErrors(t *testing.T) {
	s := newSession(t, 1, 1)
	if _, err := s.OpenDialog(context.Background()); !errors.Is(err, ErrNoDialogs) {
		t.Fatalf("expected ErrNoDialogs, got %v", err)
	}
	s = newSession(t, 1, 1, WithDialogs(platform.Unsupported()))
	if _, err := s.SaveDialog(context.Background()); !errors.Is(err, platform.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestPaletteSelection(t *testing.T) {
	warm := &palette.Palette{Name: "Warm", Swatches: []palette.Swatch{{Color: red}, {Color: canvas.Color{R: 255, G: 128, A: 255}}}}
	s := newSession(t, 2, 2, WithPalettes(palette.NewLibrary(palette.Default(), warm)))
	if s.Color() != palette.Default().Color(0) || s.Swatch() != 0 {
		t.Fatalf("initial color %v swatch %d", s.Color(), s.Swatch())
	}
	if got := s.SelectPaletteColor(2); got != red || s.Swatch() != 2 {
		t.Fatalf("select 2 = %v swatch %d", got, s.Swatch())
	}
	if p := s.PaletteNext(); p != warm || s.Swatch() != 0 {
		t.Fatalf("next palette %v swatch %d", p.Name, s.Swatch())
	}
	if got := s.SelectPaletteColor(-1); got != (canvas.Color{R: 255, G: 128, A: 255}) || s.Swatch() != 1 {
		t.Fatalf("wrapped select = %v swatch %d", got, s.Swatch())
	}
	if p := s.PalettePrev(); p.Name != "Default" {
		t.Fatalf("prev palette %s", p.Name)
	}
	s.ReloadPalettes([]*palette.Palette{warm})
	if s.Palettes().Current() != warm {
		t.Fatal("reload lost palettes")
	}
}

func TestSnapshot(t *testing.T) {
	s := newSession(t, 5, 4, WithPath("a.png"))
	s.SetColor(red)
	click(s, canvas.Cell{X: 0, Y: 0})
	snap := s.Snapshot()
	if snap.Width != 5 || snap.Height != 4 || snap.Painted != 1 {
		t.Fatalf("size/painted wrong: %+v", snap)
	}
	if !snap.CanUndo || snap.CanRedo || snap.UndoDepth != 1 {
		t.Fatalf("history flags wrong: %+v", snap)
	}
	if snap.ToolName != "Pencil" || snap.Tool != tools.KindPencil || snap.Color != red {
		t.Fatalf("tool/color wrong: %+v", snap)
	}
	if snap.Hovered != (canvas.Cell{X: 0, Y: 0}) || snap.Zoom != viewport.DefaultZoom {
		t.Fatalf("view wrong: %+v", snap)
	}
	if snap.Path != "a.png" || !snap.Dirty || snap.Palette != "Default" {
		t.Fatalf("file info wrong: %+v", snap)
	}
}

func TestReplayHelpers(t *testing.T) {
	c := canvas.New(2, 1)
	c.Set(0, 0, red)
	cmd := history.NewCommand("Pencil",
		[]canvas.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]canvas.Color{red, canvas.Invisible}, blue)
	Apply(c, cmd)
	if c.At(0, 0) != blue || c.At(1, 0) != blue {
		t.Fatal("apply failed")
	}
	Revert(c, cmd)
	if c.At(0, 0) != red || c.At(1, 0) != canvas.Invisible {
		t.Fatal("revert failed")
	}
}
