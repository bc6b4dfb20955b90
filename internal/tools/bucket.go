package tools

import (
	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/history"
	"gopkg.in/eapache/queue.v1"
)

// Bucket flood fills the 4-connected region sharing the color of the
// pressed cell.
type Bucket struct{}

// NewBucket returns a bucket tool.
func NewBucket() *Bucket { return &Bucket{} }

func (b *Bucket) Kind() Kind   { return KindBucket }
func (b *Bucket) Name() string { return KindBucket.String() }

func (b *Bucket) Update(ctx Context) Outcome {
	if !ctx.Pointer.Pressed || !ctx.hovering() {
		return Outcome{}
	}
	return Outcome{Command: Fill(ctx.Canvas, ctx.Cell, ctx.Color)}
}

// Fill repaints the region around start that matches start's color with
// to. It returns nil when nothing changed. The region is walked as
// horizontal spans: each queued seed grows into the widest matching run on
// its row, and the rows above and below queue one seed per run they share
// with it.
func Fill(c *canvas.Canvas, start canvas.Cell, to canvas.Color) *history.Command {
	match := c.AtCell(start)
	if match == to {
		return nil
	}
	w, h := c.Width(), c.Height()
	visited := make([]bool, w*h)
	fillable := func(x, y int) bool {
		return !visited[y*w+x] && c.At(x, y) == match
	}

	var pixels []canvas.Cell
	q := queue.New()
	q.Add(start)
	for q.Length() > 0 {
		seed := q.Remove().(canvas.Cell)
		y := seed.Y
		if !fillable(seed.X, y) {
			continue
		}
		x0, x1 := seed.X, seed.X
		for x0 > 0 && fillable(x0-1, y) {
			x0--
		}
		for x1 < w-1 && fillable(x1+1, y) {
			x1++
		}
		for x := x0; x <= x1; x++ {
			visited[y*w+x] = true
			pixels = append(pixels, canvas.Cell{X: x, Y: y})
		}
		for _, ny := range [2]int{y - 1, y + 1} {
			if ny < 0 || ny >= h {
				continue
			}
			inRun := false
			for x := x0; x <= x1; x++ {
				if !fillable(x, ny) {
					inRun = false
					continue
				}
				if !inRun {
					q.Add(canvas.Cell{X: x, Y: ny})
					inRun = true
				}
			}
		}
	}

	// every cell of the region held match before the fill
	from := make([]canvas.Color, len(pixels))
	for i, p := range pixels {
		from[i] = match
		c.SetCell(p, to)
	}
	return history.NewCommand(KindBucket.String(), pixels, from, to)
}
