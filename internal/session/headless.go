package session

import (
	"fmt"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/history"
	"github.com/example/spritery/internal/tools"
)

// Stroke runs tool k over cells as one gesture without going through the
// viewport: the first cell is pressed, the pointer is dragged through the
// rest and released on the last. It returns the recorded command, or nil
// when nothing changed. The tool stays selected afterwards.
func (s *Session) Stroke(k tools.Kind, cells ...canvas.Cell) (*history.Command, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("stroke: no cells")
	}
	for _, c := range cells {
		if !s.canvas.Contains(c) {
			return nil, fmt.Errorf("stroke: cell %v outside %dx%d canvas", c, s.canvas.Width(), s.canvas.Height())
		}
	}
	if err := s.SelectTool(k); err != nil {
		return nil, err
	}
	var last *history.Command
	keep := func(cmd *history.Command) {
		if cmd != nil {
			last = cmd
		}
	}
	for i, c := range cells {
		keep(s.feed(c, tools.Pointer{Down: true, Pressed: i == 0}))
	}
	keep(s.feed(cells[len(cells)-1], tools.Pointer{Released: true}))
	return last, nil
}
