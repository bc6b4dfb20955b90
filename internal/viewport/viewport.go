package viewport

import (
	"image"
	"math"

	"github.com/example/spritery/internal/canvas"
)

const (
	DefaultZoom     = 20
	DefaultZoomStep = 0.75
	DefaultMinZoom  = 3
	DefaultMaxZoom  = 90
)

// Vec is a point or offset in screen space.
type Vec struct {
	X, Y float64
}

// Rect is a screen space rectangle with float edges.
type Rect struct {
	Min, Max Vec
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies in r. Max edges are exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Image rounds r outward to an integer rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

// Map linearly maps value from [fromMin, fromMax] to [toMin, toMax].
func Map(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return (value-fromMin)*(toMax-toMin)/(fromMax-fromMin) + toMin
}

// Viewport holds the user controlled pan and zoom. Pan is measured from the
// center of the viewport bounds, so it stays meaningful when the window is
// resized.
type Viewport struct {
	Zoom    float64
	Pan     Vec
	MinZoom float64
	MaxZoom float64
}

// New returns a centered viewport with the default zoom limits.
func New() *Viewport {
	return &Viewport{Zoom: DefaultZoom, MinZoom: DefaultMinZoom, MaxZoom: DefaultMaxZoom}
}

// ZoomIn increases the zoom by step, stopping at MaxZoom.
func (v *Viewport) ZoomIn(step float64) {
	v.Zoom = math.Min(v.Zoom+step, v.MaxZoom)
}

// ZoomOut decreases the zoom by step, stopping at MinZoom.
func (v *Viewport) ZoomOut(step float64) {
	v.Zoom = math.Max(v.Zoom-step, v.MinZoom)
}

// SetZoom sets the zoom clamped to the limits. NaN is ignored.
func (v *Viewport) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	v.Zoom = math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
}

// CanZoomIn reports whether ZoomIn would change the zoom.
func (v *Viewport) CanZoomIn() bool { return v.Zoom < v.MaxZoom }

// CanZoomOut reports whether ZoomOut would change the zoom.
func (v *Viewport) CanZoomOut() bool { return v.Zoom > v.MinZoom }

// Center moves the canvas back to the middle of the viewport.
func (v *Viewport) Center() { v.Pan = Vec{} }

// PanBy shifts the canvas on screen.
func (v *Viewport) PanBy(dx, dy float64) {
	v.Pan.X += dx
	v.Pan.Y += dy
}

// FitZoom sets the largest zoom within limits at which a w by h canvas fits
// inside bounds, then centers it.
func (v *Viewport) FitZoom(bounds image.Rectangle, w, h int) {
	if w <= 0 || h <= 0 || bounds.Empty() {
		return
	}
	zx := float64(bounds.Dx()) / float64(w)
	zy := float64(bounds.Dy()) / float64(h)
	v.SetZoom(math.Min(zx, zy))
	v.Center()
}

// Geometry is the screen layout of a canvas for one frame. It must be
// rebuilt with Frame whenever bounds, zoom, pan or the canvas size change.
type Geometry struct {
	Bounds   image.Rectangle
	Canvas   Rect
	CellSize Vec
	Columns  int
	Rows     int
}

// Frame computes the canvas placement inside bounds for a w by h canvas.
func (v *Viewport) Frame(bounds image.Rectangle, w, h int) Geometry {
	cx := float64(bounds.Min.X+bounds.Max.X)/2 + v.Pan.X
	cy := float64(bounds.Min.Y+bounds.Max.Y)/2 + v.Pan.Y
	sw := float64(w) * v.Zoom
	sh := float64(h) * v.Zoom
	return Geometry{
		Bounds: bounds,
		Canvas: Rect{
			Min: Vec{cx - sw/2, cy - sh/2},
			Max: Vec{cx + sw/2, cy + sh/2},
		},
		CellSize: Vec{sw / float64(w), sh / float64(h)},
		Columns:  w,
		Rows:     h,
	}
}

// ScreenToCell returns the cell under p, or canvas.NoCell when p is outside
// the viewport bounds or the canvas rectangle.
func (g Geometry) ScreenToCell(p Vec) canvas.Cell {
	if !image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y))).In(g.Bounds) {
		return canvas.NoCell
	}
	if !g.Canvas.Contains(p) {
		return canvas.NoCell
	}
	x := int(Map(p.X, g.Canvas.Min.X, g.Canvas.Max.X, 0, float64(g.Columns)))
	y := int(Map(p.Y, g.Canvas.Min.Y, g.Canvas.Max.Y, 0, float64(g.Rows)))
	// float rounding at the far edge can land on Columns or Rows
	if x >= g.Columns {
		x = g.Columns - 1
	}
	if y >= g.Rows {
		y = g.Rows - 1
	}
	return canvas.Cell{X: x, Y: y}
}

// CellRect returns the screen rectangle covered by cell.
func (g Geometry) CellRect(cell canvas.Cell) Rect {
	x := g.Canvas.Min.X + float64(cell.X)*g.CellSize.X
	y := g.Canvas.Min.Y + float64(cell.Y)*g.CellSize.Y
	return Rect{Min: Vec{x, y}, Max: Vec{x + g.CellSize.X, y + g.CellSize.Y}}
}

// VisibleCells returns the range of cells that intersect the viewport
// bounds as a half-open rectangle in cell space.
func (g Geometry) VisibleCells() image.Rectangle {
	if g.CellSize.X <= 0 || g.CellSize.Y <= 0 {
		return image.Rectangle{}
	}
	x0 := int(math.Floor((float64(g.Bounds.Min.X) - g.Canvas.Min.X) / g.CellSize.X))
	y0 := int(math.Floor((float64(g.Bounds.Min.Y) - g.Canvas.Min.Y) / g.CellSize.Y))
	x1 := int(math.Ceil((float64(g.Bounds.Max.X) - g.Canvas.Min.X) / g.CellSize.X))
	y1 := int(math.Ceil((float64(g.Bounds.Max.Y) - g.Canvas.Min.Y) / g.CellSize.Y))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, g.Columns, g.Rows))
}
