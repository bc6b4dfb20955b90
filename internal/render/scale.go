package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/example/spritery/internal/canvas"
)

// Scale returns c enlarged by an integer factor with hard pixel edges.
// Factors below one are treated as one.
func Scale(c *canvas.Canvas, factor int) *image.NRGBA {
	factor = max(factor, 1)
	src := c.ToImage()
	if factor == 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width()*factor, c.Height()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
