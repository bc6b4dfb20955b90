// Package clipboard copies canvases to and from the system clipboard as
// PNG data.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/codec"
)

// ErrEmpty is returned when the clipboard holds no data of the requested
// kind.
var ErrEmpty = errors.New("clipboard is empty")

// backend moves raw bytes in and out of the clipboard.
type backend interface {
	writeImage(png []byte) error
	readImage() ([]byte, error)
	writeText(text string) error
	readText() (string, error)
}

// current is replaced in tests.
var current backend = system{}

// WriteCanvas places c on the clipboard as a PNG image.
func WriteCanvas(c *canvas.Canvas) error {
	data, err := codec.EncodeBytes(c, codec.PNG)
	if err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	return current.writeImage(data)
}

// ReadCanvas decodes the clipboard image into a new canvas, cropped to
// canvas.MaxSize.
func ReadCanvas() (*canvas.Canvas, error) {
	data, err := current.readImage()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("read image: %w", ErrEmpty)
	}
	c, err := codec.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return c, nil
}

// WriteColor places the textual form of col on the clipboard.
func WriteColor(col canvas.Color) error {
	return current.writeText(col.String())
}

// ReadText returns clipboard text.
func ReadText() (string, error) {
	s, err := current.readText()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("read text: %w", ErrEmpty)
	}
	return s, nil
}
