package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/theme"
	"github.com/example/spritery/internal/tools"
	"github.com/example/spritery/internal/viewport"
)

const (
	checkerSize = 8
	// grid lines are skipped when cells are smaller than this on screen
	minGridCell = 4
	lineHeight  = 14
)

// Options control what Draw puts on screen. Theme colors are taken as
// straight alpha.
type Options struct {
	Theme  *theme.Theme
	Grid   bool
	Status bool
	Shadow Shadow
}

// Draw renders the full editor window for s into dst.
func Draw(dst *image.RGBA, l Layout, s *session.Session, opts Options) {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	snap := s.Snapshot()
	g := s.Viewport().Frame(l.Canvas, snap.Width, snap.Height)

	DrawCanvas(dst, g, s.Canvas(), snap.Hovered, th, opts)
	drawToolbar(dst, l, snap, th)
	drawPalette(dst, l, s.Palettes().Current(), snap.Swatch, th)
	if opts.Status {
		drawStatus(dst, l.Canvas, StatusLines(snap), th)
	}
}

// DrawCanvas draws the canvas area only: background, shadow, checkerboard,
// the scaled pixels, the grid and the hovered cell.
func DrawCanvas(dst *image.RGBA, g viewport.Geometry, c *canvas.Canvas, hovered canvas.Cell, th *theme.Theme, opts Options) {
	area := g.Bounds.Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	fill(dst, area, th.Background)

	dr := g.Canvas.Image()
	drawShadow(dst, dr, area, opts.Shadow)
	drawChecker(dst, dr, area, th.CheckerLight, th.CheckerDark)

	sub := dst.SubImage(area).(*image.RGBA)
	src := c.ToImage()
	xdraw.NearestNeighbor.Scale(sub, dr, src, src.Bounds(), xdraw.Over, nil)

	if opts.Grid && g.CellSize.X >= minGridCell && g.CellSize.Y >= minGridCell {
		drawGrid(dst, g, area, color.NRGBA(th.Grid))
	}
	if hovered.Valid() && c.Contains(hovered) {
		hr := g.CellRect(hovered).Image().Intersect(area)
		draw.Draw(dst, hr, image.NewUniform(color.NRGBA(th.Hover)), image.Point{}, draw.Over)
	}
	outline(dst, dr.Inset(-1), area, th.CanvasBorder, 1)
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// outline draws a border of the given width just inside r, clipped to clip.
func outline(dst draw.Image, r, clip image.Rectangle, c color.Color, width int) {
	u := image.NewUniform(c)
	for _, side := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, side.Intersect(clip), u, image.Point{}, draw.Over)
	}
}

// drawChecker tiles r with alternating squares anchored at r.Min. Only the
// part inside clip is visited.
func drawChecker(dst draw.Image, r, clip image.Rectangle, light, dark color.Color) {
	vis := r.Intersect(clip)
	if vis.Empty() {
		return
	}
	lu, du := image.NewUniform(light), image.NewUniform(dark)
	x0 := r.Min.X + (vis.Min.X-r.Min.X)/checkerSize*checkerSize
	y0 := r.Min.Y + (vis.Min.Y-r.Min.Y)/checkerSize*checkerSize
	for y := y0; y < vis.Max.Y; y += checkerSize {
		for x := x0; x < vis.Max.X; x += checkerSize {
			u := lu
			if ((x-r.Min.X)/checkerSize+(y-r.Min.Y)/checkerSize)%2 == 1 {
				u = du
			}
			tile := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(vis)
			draw.Draw(dst, tile, u, image.Point{}, draw.Src)
		}
	}
}

func drawGrid(dst draw.Image, g viewport.Geometry, clip image.Rectangle, c color.Color) {
	cells := g.VisibleCells()
	if cells.Empty() {
		return
	}
	vis := g.Canvas.Image().Intersect(clip)
	u := image.NewUniform(c)
	for x := cells.Min.X + 1; x < cells.Max.X; x++ {
		sx := int(g.Canvas.Min.X + float64(x)*g.CellSize.X)
		line := image.Rect(sx, vis.Min.Y, sx+1, vis.Max.Y).Intersect(vis)
		draw.Draw(dst, line, u, image.Point{}, draw.Over)
	}
	for y := cells.Min.Y + 1; y < cells.Max.Y; y++ {
		sy := int(g.Canvas.Min.Y + float64(y)*g.CellSize.Y)
		line := image.Rect(vis.Min.X, sy, vis.Max.X, sy+1).Intersect(vis)
		draw.Draw(dst, line, u, image.Point{}, draw.Over)
	}
}

func drawToolbar(dst *image.RGBA, l Layout, snap session.Snapshot, th *theme.Theme) {
	fill(dst, l.Toolbar, th.ToolbarBackground)
	for _, t := range tools.All() {
		r := l.ToolButton(t.Kind())
		if r.Empty() {
			continue
		}
		bg := th.ButtonBackground
		if t.Kind() == snap.Tool {
			bg = th.ButtonActive
		}
		fill(dst, r, bg)
		drawText(dst, r.Min.X+6, r.Min.Y+(r.Dy()+10)/2, t.Name(), th.ButtonText)
	}
	if r := l.ColorPreview(); !r.Empty() {
		drawColorBox(dst, r, snap.Color, th.SwatchBorder, th)
	}
}

func drawPalette(dst *image.RGBA, l Layout, p *palette.Palette, selected int, th *theme.Theme) {
	fill(dst, l.Palette, th.ToolbarBackground)
	n := p.Len()
	for i := 0; i < n; i++ {
		r := l.Swatch(i)
		if r.Empty() {
			break
		}
		drawColorBox(dst, r, p.Color(i), th.SwatchBorder, th)
		if i == selected {
			outline(dst, r.Inset(-2), l.Palette, th.SwatchSelected, 2)
		}
	}
	if p.Name == "" || l.Palette.Empty() {
		return
	}
	w := textWidth(p.Name)
	x := l.Palette.Max.X - margin - w
	if last := l.Swatch(n - 1); n > 0 && x < last.Max.X+margin {
		return
	}
	drawText(dst, x, l.Palette.Min.Y+(l.Palette.Dy()+10)/2, p.Name, th.Foreground)
}

// drawColorBox shows c over a checkerboard so invisible colors stay
// recognisable.
func drawColorBox(dst *image.RGBA, r image.Rectangle, c canvas.Color, border color.RGBA, th *theme.Theme) {
	drawChecker(dst, r, r, th.CheckerLight, th.CheckerDark)
	draw.Draw(dst, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
	outline(dst, r, r, border, 1)
}

// StatusLines formats the overlay text for snap.
func StatusLines(snap session.Snapshot) []string {
	cell := "-"
	if snap.Hovered.Valid() {
		cell = snap.Hovered.String()
	}
	file := snap.Path
	if file == "" {
		file = "untitled"
	}
	if snap.Dirty {
		file += " *"
	}
	return []string{
		"Cell: " + cell,
		fmt.Sprintf("Sprite: %dx%d", snap.Width, snap.Height),
		fmt.Sprintf("Pixels: %d", snap.Painted),
		fmt.Sprintf("Pan: %.0f,%.0f", snap.Pan.X, snap.Pan.Y),
		fmt.Sprintf("Zoom: %.1f", snap.Zoom),
		"Tool: " + snap.ToolName,
		"Color: " + snap.Color.String(),
		fmt.Sprintf("History: %d/%d", snap.UndoDepth, snap.RedoDepth),
		"File: " + file,
	}
}

func drawStatus(dst *image.RGBA, area image.Rectangle, lines []string, th *theme.Theme) {
	w := 0
	for _, s := range lines {
		w = max(w, textWidth(s))
	}
	box := image.Rect(0, 0, w+12, len(lines)*lineHeight+8).Add(area.Min.Add(image.Pt(6, 6)))
	box = box.Intersect(area)
	if box.Empty() {
		return
	}
	draw.Draw(dst, box, image.NewUniform(color.NRGBA(th.StatusBackground)), image.Point{}, draw.Over)
	sub := dst.SubImage(box).(*image.RGBA)
	for i, s := range lines {
		drawText(sub, box.Min.X+6, box.Min.Y+4+(i+1)*lineHeight-3, s, th.StatusText)
	}
}

func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
