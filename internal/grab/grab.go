// Package grab copies a rectangle of the desktop into a canvas so existing
// artwork on screen can be traced or edited as a sprite.
package grab

import (
	"errors"
	"fmt"
	"image"

	"github.com/example/spritery/internal/canvas"
)

// ErrUnsupported is returned on platforms without a screen backend.
var ErrUnsupported = errors.New("screen grab is not supported on this platform")

// screenImageFn reads rect from the screen. Tests replace it.
var screenImageFn = screenImage

// Region grabs rect from the screen. The rectangle is clipped to the
// screen and must fit in a canvas.
func Region(rect image.Rectangle) (*canvas.Canvas, error) {
	rect = rect.Canon()
	if rect.Empty() {
		return nil, fmt.Errorf("grab: empty region %v", rect)
	}
	if rect.Dx() > canvas.MaxSize || rect.Dy() > canvas.MaxSize {
		return nil, fmt.Errorf("grab: region %dx%d exceeds %d pixels", rect.Dx(), rect.Dy(), canvas.MaxSize)
	}
	img, err := screenImageFn(rect)
	if err != nil {
		return nil, fmt.Errorf("grab: %w", err)
	}
	return canvas.FromImage(img), nil
}

// Pixel returns the screen color at p.
func Pixel(p image.Point) (canvas.Color, error) {
	c, err := Region(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	if err != nil {
		return canvas.Invisible, err
	}
	return c.At(0, 0), nil
}
