package history

import (
	"fmt"

	"github.com/example/spritery/internal/canvas"
	"github.com/google/uuid"
)

// Command is an immutable record of one completed edit gesture: the cells
// that changed, the color each held before, and the single color applied.
type Command struct {
	id     string
	label  string
	pixels []canvas.Cell
	from   []canvas.Color
	to     canvas.Color
}

// NewCommand validates and copies the gesture data. It panics when pixels
// and from differ in length or a cell is listed twice; both indicate a
// broken tool, not a user error.
func NewCommand(label string, pixels []canvas.Cell, from []canvas.Color, to canvas.Color) *Command {
	if len(pixels) != len(from) {
		panic(fmt.Sprintf("history: command has %d pixels but %d source colors", len(pixels), len(from)))
	}
	if p, dup := firstDuplicate(pixels); dup {
		panic(fmt.Sprintf("history: cell %v recorded twice", p))
	}
	c := &Command{
		id:     uuid.NewString(),
		label:  label,
		pixels: make([]canvas.Cell, len(pixels)),
		from:   make([]canvas.Color, len(from)),
		to:     to,
	}
	copy(c.pixels, pixels)
	copy(c.from, from)
	return c
}

// firstDuplicate reports the first cell that appears twice. Cells are
// marked in a bitmap over their bounding box, falling back to a map when
// the box is sparse.
func firstDuplicate(pixels []canvas.Cell) (canvas.Cell, bool) {
	if len(pixels) < 2 {
		return canvas.Cell{}, false
	}
	minX, minY := pixels[0].X, pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range pixels[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	w, h := maxX-minX+1, maxY-minY+1
	if area := w * h; area > 0 && area <= 4*len(pixels)+1024 {
		seen := make([]bool, area)
		for _, p := range pixels {
			i := (p.Y-minY)*w + (p.X - minX)
			if seen[i] {
				return p, true
			}
			seen[i] = true
		}
		return canvas.Cell{}, false
	}
	seen := make(map[canvas.Cell]struct{}, len(pixels))
	for _, p := range pixels {
		if _, dup := seen[p]; dup {
			return p, true
		}
		seen[p] = struct{}{}
	}
	return canvas.Cell{}, false
}

// ID uniquely identifies the command.
func (c *Command) ID() string { return c.id }

// Label names the tool that produced the command.
func (c *Command) Label() string { return c.label }

// Len returns the number of cells changed.
func (c *Command) Len() int { return len(c.pixels) }

// To returns the color applied to every cell.
func (c *Command) To() canvas.Color { return c.to }

// Cell returns the i-th changed cell and the color it held before.
func (c *Command) Cell(i int) (canvas.Cell, canvas.Color) { return c.pixels[i], c.from[i] }

// Pixels returns a copy of the changed cells in recording order.
func (c *Command) Pixels() []canvas.Cell {
	out := make([]canvas.Cell, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// From returns a copy of the prior colors, parallel to Pixels.
func (c *Command) From() []canvas.Color {
	out := make([]canvas.Color, len(c.from))
	copy(out, c.from)
	return out
}

func (c *Command) String() string {
	return fmt.Sprintf("%s action: %d pixels", c.label, len(c.pixels))
}
