package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// MaxSize is the largest width or height a canvas may have.
const MaxSize = 1024

// Color is an 8-bit per channel, non-premultiplied RGBA value.
type Color struct {
	R, G, B, A uint8
}

// Invisible marks a pixel that has not been painted.
var Invisible = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns the color as a standard library color.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// FromColor converts any color to a Color without premultiplication loss
// for color.NRGBA inputs.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (c Color) String() string {
	if c == Invisible {
		return "invisible"
	}
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Cell is a pixel coordinate in canvas space.
type Cell struct {
	X, Y int
}

// NoCell is the hovered cell when the pointer is not over the canvas.
var NoCell = Cell{X: -1, Y: -1}

// Valid reports whether c is not the NoCell sentinel.
func (c Cell) Valid() bool { return c != NoCell }

func (c Cell) String() string { return fmt.Sprintf("%d:%d", c.X, c.Y) }

// Canvas is a fixed-size grid of colors stored row-major.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// New returns a canvas with every pixel set to Invisible. Dimensions are
// clamped to [1, MaxSize]; an oversized request is silently reduced.
func New(width, height int) *Canvas {
	width = clampSize(width)
	height = clampSize(height)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

func clampSize(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxSize {
		return MaxSize
	}
	return v
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle in cell space.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// Contains reports whether cell lies on the canvas.
func (c *Canvas) Contains(cell Cell) bool {
	return cell.X >= 0 && cell.Y >= 0 && cell.X < c.width && cell.Y < c.height
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		panic(fmt.Sprintf("canvas: pixel %d:%d out of bounds %dx%d", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// At returns the color at x, y. It panics when the coordinates are outside
// the canvas.
func (c *Canvas) At(x, y int) Color { return c.pixels[c.index(x, y)] }

// Set paints a single pixel. It panics when the coordinates are outside
// the canvas. No history is recorded.
func (c *Canvas) Set(x, y int, col Color) { c.pixels[c.index(x, y)] = col }

// AtCell is At for a Cell.
func (c *Canvas) AtCell(cell Cell) Color { return c.At(cell.X, cell.Y) }

// SetCell is Set for a Cell.
func (c *Canvas) SetCell(cell Cell, col Color) { c.Set(cell.X, cell.Y, col) }

// IsEmpty reports whether every pixel is Invisible.
func (c *Canvas) IsEmpty() bool {
	for _, p := range c.pixels {
		if p != Invisible {
			return false
		}
	}
	return true
}

// Count returns how many pixels hold col.
func (c *Canvas) Count(col Color) int {
	n := 0
	for _, p := range c.pixels {
		if p == col {
			n++
		}
	}
	return n
}

// Pixels returns a copy of the row-major pixel data.
func (c *Canvas) Pixels() []Color {
	out := make([]Color, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{width: c.width, height: c.height, pixels: c.Pixels()}
}

// Equal reports whether both canvases have the same size and pixels.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.width != o.width || c.height != o.height {
		return false
	}
	for i := range c.pixels {
		if c.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}

// ToImage copies the canvas into a new non-premultiplied image.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	for y := 0; y < c.height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			i := x * 4
			row[i+0] = p.R
			row[i+1] = p.G
			row[i+2] = p.B
			row[i+3] = p.A
		}
	}
	return img
}

// FromImage builds a canvas from img. Images larger than MaxSize are
// cropped to the top-left MaxSize square region. Fully transparent pixels
// become Invisible whatever their color channels hold.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = image.NewNRGBA(b)
		draw.Draw(src, b, img, b.Min, draw.Src)
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			n := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if n.A == 0 {
				continue
			}
			c.pixels[y*c.width+x] = Color{R: n.R, G: n.G, B: n.B, A: n.A}
		}
	}
	return c
}
