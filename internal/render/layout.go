// Package render composes editor frames: the toolbar, the zoomed canvas
// over a checkerboard, the palette strip and the status overlay.
package render

import (
	"image"

	"github.com/example/spritery/internal/tools"
)

const (
	ToolbarHeight = 28
	PaletteHeight = 28

	buttonWidth = 84
	buttonGap   = 4
	swatchSize  = 20
	swatchGap   = 4
	margin      = 4
)

// Layout splits a window into the toolbar, canvas area and palette strip.
type Layout struct {
	Size    image.Point
	Toolbar image.Rectangle
	Canvas  image.Rectangle
	Palette image.Rectangle
}

// NewLayout lays out a window of the given size. Windows too short for the
// bars leave an empty canvas area.
func NewLayout(size image.Point) Layout {
	w, h := max(size.X, 0), max(size.Y, 0)
	top := min(ToolbarHeight, h)
	bottom := max(h-PaletteHeight, top)
	return Layout{
		Size:    image.Pt(w, h),
		Toolbar: image.Rect(0, 0, w, top),
		Canvas:  image.Rect(0, top, w, bottom),
		Palette: image.Rect(0, bottom, w, h),
	}
}

// ToolButton returns the toolbar button of tool k.
func (l Layout) ToolButton(k tools.Kind) image.Rectangle {
	x := l.Toolbar.Min.X + margin + int(k)*(buttonWidth+buttonGap)
	y := l.Toolbar.Min.Y + margin
	return image.Rect(x, y, x+buttonWidth, l.Toolbar.Max.Y-margin).Intersect(l.Toolbar)
}

// ToolAt reports the tool whose button contains p.
func (l Layout) ToolAt(p image.Point) (tools.Kind, bool) {
	for _, t := range tools.All() {
		r := l.ToolButton(t.Kind())
		if !r.Empty() && p.In(r) {
			return t.Kind(), true
		}
	}
	return 0, false
}

// ColorPreview returns the box at the right of the toolbar showing the
// drawing color.
func (l Layout) ColorPreview() image.Rectangle {
	size := ToolbarHeight - 2*margin
	x := l.Toolbar.Max.X - margin - size
	return image.Rect(x, l.Toolbar.Min.Y+margin, x+size, l.Toolbar.Min.Y+margin+size).Intersect(l.Toolbar)
}

// Swatch returns the rectangle of palette entry i.
func (l Layout) Swatch(i int) image.Rectangle {
	x := l.Palette.Min.X + margin + i*(swatchSize+swatchGap)
	y := l.Palette.Min.Y + margin
	return image.Rect(x, y, x+swatchSize, y+swatchSize).Intersect(l.Palette)
}

// SwatchAt reports which of n palette entries contains p.
func (l Layout) SwatchAt(p image.Point, n int) (int, bool) {
	if !p.In(l.Palette) {
		return 0, false
	}
	for i := 0; i < n; i++ {
		r := l.Swatch(i)
		if r.Empty() {
			break
		}
		if p.In(r) {
			return i, true
		}
	}
	return 0, false
}
