package tools

import (
	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/history"
)

// stroke accumulates a freehand gesture. Every cell is recorded at most
// once with the color it held when the stroke first reached it.
type stroke struct {
	label  string
	to     canvas.Color
	pixels []canvas.Cell
	from   []canvas.Color
	seen   map[canvas.Cell]struct{}
	last   canvas.Cell
	active bool
}

func newStroke(label string) stroke {
	return stroke{label: label, last: canvas.NoCell}
}

// update paints toward target while the pointer is held and returns a
// command once the pointer is released.
func (s *stroke) update(ctx Context, target canvas.Color) *history.Command {
	if ctx.Pointer.Down || ctx.Pointer.Pressed {
		if !s.active {
			s.begin(target)
		}
		if ctx.hovering() {
			if s.last.Valid() {
				s.line(ctx.Canvas, s.last, ctx.Cell)
			} else {
				s.paint(ctx.Canvas, ctx.Cell)
			}
			s.last = ctx.Cell
		} else {
			s.last = canvas.NoCell
		}
	}
	if ctx.Pointer.Released && s.active {
		return s.commit()
	}
	return nil
}

func (s *stroke) begin(target canvas.Color) {
	s.to = target
	s.pixels = nil
	s.from = nil
	s.seen = make(map[canvas.Cell]struct{})
	s.last = canvas.NoCell
	s.active = true
}

func (s *stroke) paint(c *canvas.Canvas, cell canvas.Cell) {
	if _, ok := s.seen[cell]; ok {
		return
	}
	prior := c.AtCell(cell)
	if prior == s.to {
		return
	}
	s.seen[cell] = struct{}{}
	s.pixels = append(s.pixels, cell)
	s.from = append(s.from, prior)
	c.SetCell(cell, s.to)
}

// line paints every cell on the Bresenham line from a to b inclusive.
func (s *stroke) line(c *canvas.Canvas, a, b canvas.Cell) {
	x0, y0 := a.X, a.Y
	dx := abs(b.X - x0)
	dy := abs(b.Y - y0)
	sx, sy := -1, -1
	if x0 < b.X {
		sx = 1
	}
	if y0 < b.Y {
		sy = 1
	}
	err := dx - dy
	for {
		s.paint(c, canvas.Cell{X: x0, Y: y0})
		if x0 == b.X && y0 == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *stroke) commit() *history.Command {
	var cmd *history.Command
	if len(s.pixels) > 0 {
		cmd = history.NewCommand(s.label, s.pixels, s.from, s.to)
	}
	s.pixels = nil
	s.from = nil
	s.seen = nil
	s.last = canvas.NoCell
	s.active = false
	return cmd
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Pencil paints the active color under the pointer.
type Pencil struct{ stroke stroke }

// NewPencil returns an idle pencil.
func NewPencil() *Pencil { return &Pencil{stroke: newStroke(KindPencil.String())} }

func (p *Pencil) Kind() Kind   { return KindPencil }
func (p *Pencil) Name() string { return KindPencil.String() }

func (p *Pencil) Update(ctx Context) Outcome {
	return Outcome{Command: p.stroke.update(ctx, ctx.Color)}
}

// Eraser paints canvas.Invisible under the pointer.
type Eraser struct{ stroke stroke }

// NewEraser returns an idle eraser.
func NewEraser() *Eraser { return &Eraser{stroke: newStroke(KindEraser.String())} }

func (e *Eraser) Kind() Kind   { return KindEraser }
func (e *Eraser) Name() string { return KindEraser.String() }

func (e *Eraser) Update(ctx Context) Outcome {
	return Outcome{Command: e.stroke.update(ctx, canvas.Invisible)}
}
