package session

import (
	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/tools"
	"github.com/example/spritery/internal/viewport"
)

// Snapshot is a read-only copy of what the presentation layer shows.
type Snapshot struct {
	Hovered   canvas.Cell
	Zoom      float64
	Pan       viewport.Vec
	Tool      tools.Kind
	ToolName  string
	Color     canvas.Color
	Width     int
	Height    int
	Painted   int
	CanUndo   bool
	CanRedo   bool
	UndoDepth int
	RedoDepth int
	Palette   string
	Swatch    int
	Path      string
	Dirty     bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Hovered:   s.hovered,
		Zoom:      s.view.Zoom,
		Pan:       s.view.Pan,
		Tool:      s.tool.Kind(),
		ToolName:  s.tool.Name(),
		Color:     s.color,
		Width:     s.canvas.Width(),
		Height:    s.canvas.Height(),
		Painted:   s.canvas.Width()*s.canvas.Height() - s.canvas.Count(canvas.Invisible),
		CanUndo:   s.history.CanUndo(),
		CanRedo:   s.history.CanRedo(),
		UndoDepth: s.history.UndoLen(),
		RedoDepth: s.history.RedoLen(),
		Palette:   s.palettes.Current().Name,
		Swatch:    s.swatch,
		Path:      s.path,
		Dirty:     s.dirty,
	}
}
