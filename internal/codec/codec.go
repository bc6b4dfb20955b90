// Package codec converts canvases to and from flat raster image files.
package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/spritery/internal/canvas"
	"golang.org/x/image/bmp"
)

// Format names a supported image encoding.
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// ErrUnknownFormat is returned when a file name or stream does not map to a
// supported format.
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists the supported encodings.
func Formats() []Format { return []Format{PNG, BMP} }

// FormatFromPath picks a format from the file extension. Paths without an
// extension are treated as PNG.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Encode writes c to w. Pixel values are written exactly; Invisible pixels
// become fully transparent black. BMP keeps the alpha channel only when a
// pixel is not opaque.
func Encode(w io.Writer, c *canvas.Canvas, f Format) error {
	return EncodeImage(w, c.ToImage(), f)
}

// EncodeImage writes any image in format f, for output that is not a
// canvas such as scaled previews.
func EncodeImage(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Decode reads a PNG or BMP image. Images larger than canvas.MaxSize are
// cropped.
func Decode(r io.Reader) (*canvas.Canvas, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnknownFormat, err)
		}
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	f := Format(name)
	if f != PNG && f != BMP {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return canvas.FromImage(img), f, nil
}

// ImportFile loads a canvas from path.
func ImportFile(path string) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	c, _, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c, nil
}

// ExportFile writes c to path, choosing the format from the extension.
func ExportFile(path string, c *canvas.Canvas) error {
	return ExportImage(path, c.ToImage())
}

// ExportImage writes img to path, choosing the format from the extension
// and creating missing directories.
func ExportImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := EncodeImage(bw, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// EncodeBytes is Encode into a byte slice.
func EncodeBytes(c *canvas.Canvas, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes is Decode from a byte slice.
func DecodeBytes(data []byte) (*canvas.Canvas, error) {
	c, _, err := Decode(bytes.NewReader(data))
	return c, err
}
