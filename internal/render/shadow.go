package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shadow describes the soft drop shadow drawn under the canvas.
type Shadow struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadow returns the shadow used by the editor window.
func DefaultShadow() Shadow {
	return Shadow{Radius: 6, Offset: image.Pt(4, 4), Opacity: 0.45}
}

// drawShadow darkens dst under r grown by the blur radius and shifted by
// the offset, clipped to clip.
func drawShadow(dst draw.Image, r, clip image.Rectangle, s Shadow) {
	if s.Opacity <= 0 || r.Empty() {
		return
	}
	opacity := s.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := max(s.Radius, 0)

	padded := r.Inset(-radius).Add(s.Offset)
	area := padded.Intersect(clip)
	if area.Empty() {
		return
	}
	// the mask only needs to cover what is visible, plus the radius so the
	// blur near the clip edge is still correct
	maskRect := area.Inset(-radius).Intersect(padded)
	mask := image.NewGray(maskRect.Sub(maskRect.Min))
	solid := r.Add(s.Offset).Intersect(maskRect).Sub(maskRect.Min)
	draw.Draw(mask, solid, image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)

	blurred := blurGray(mask, radius)
	alpha := uint8(opacity*255 + 0.5)
	draw.DrawMask(dst, area, image.NewUniform(color.RGBA{A: alpha}), image.Point{},
		blurred, area.Min.Sub(maskRect.Min), draw.Over)
}

// blurGray is a separable box blur using running sums per row and column.
func blurGray(src *image.Gray, radius int) *image.Gray {
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	boxPass(w, h, radius, func(x, y int) int { return int(src.Pix[y*src.Stride+x]) },
		func(x, y int, v uint8) { tmp.Pix[y*tmp.Stride+x] = v })
	boxPass(h, w, radius, func(y, x int) int { return int(tmp.Pix[y*tmp.Stride+x]) },
		func(y, x int, v uint8) { out.Pix[y*out.Stride+x] = v })
	return out
}

// boxPass averages along the first axis of a n by lines grid.
func boxPass(n, lines, radius int, get func(i, line int) int, set func(i, line int, v uint8)) {
	prefix := make([]int, n+1)
	for line := 0; line < lines; line++ {
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + get(i, line)
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			set(i, line, uint8((prefix[hi+1]-prefix[lo])/(hi-lo+1)))
		}
	}
}
