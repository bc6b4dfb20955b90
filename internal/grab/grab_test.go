package grab

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/example/spritery/internal/canvas"
	"github.com/jezek/xgb/xproto"
)

func stubScreen(t *testing.T, fn func(image.Rectangle) (image.Image, error)) {
	t.Helper()
	original := screenImageFn
	screenImageFn = fn
	t.Cleanup(func() { screenImageFn = original })
}

func TestRegion(t *testing.T) {
	var asked image.Rectangle
	stubScreen(t, func(r image.Rectangle) (image.Image, error) {
		asked = r
		img := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		img.Set(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		return img, nil
	})
	c, err := Region(image.Rect(12, 8, 10, 10))
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if asked != image.Rect(10, 8, 12, 10) {
		t.Fatalf("asked for %v, want canonical rectangle", asked)
	}
	if c.Width() != 2 || c.Height() != 2 {
		t.Fatalf("size %dx%d, want 2x2", c.Width(), c.Height())
	}
	if got := c.At(1, 0); got != (canvas.Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestRegionLimits(t *testing.T) {
	stubScreen(t, func(image.Rectangle) (image.Image, error) {
		t.Fatalf("screen should not be read")
		return nil, nil
	})
	if _, err := Region(image.Rectangle{}); err == nil {
		t.Fatalf("expected error for empty region")
	}
	if _, err := Region(image.Rect(0, 0, canvas.MaxSize+1, 4)); err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestPixelWrapsBackendError(t *testing.T) {
	sentinel := errors.New("no display")
	stubScreen(t, func(image.Rectangle) (image.Image, error) { return nil, sentinel })
	if _, err := Pixel(image.Pt(3, 3)); !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestDecodeZPixmap(t *testing.T) {
	formats := []xproto.Format{{Depth: 24, BitsPerPixel: 32}, {Depth: 32, BitsPerPixel: 32}}
	data := []byte{
		0x30, 0x20, 0x10, 0x00, 0x03, 0x02, 0x01, 0x00,
		0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	img, err := decodeZPixmap(formats, &xproto.GetImageReply{Depth: 24, Data: data}, 2, 2)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Fatalf("pixel 0,0 = %v", got)
	}
	if got := img.NRGBAAt(1, 1); got.A != 0xFF {
		t.Fatalf("depth 24 pixel should be opaque, got %v", got)
	}

	img, err = decodeZPixmap(formats, &xproto.GetImageReply{Depth: 32, Data: data}, 2, 2)
	if err != nil {
		t.Fatalf("decode depth 32: %v", err)
	}
	if got := img.NRGBAAt(0, 0).A; got != 0 {
		t.Fatalf("depth 32 alpha = %d, want 0", got)
	}
}

func TestDecodeZPixmapErrors(t *testing.T) {
	formats := []xproto.Format{{Depth: 16, BitsPerPixel: 16}}
	cases := map[string]*xproto.GetImageReply{
		"empty":     {Depth: 16},
		"depth":     {Depth: 24, Data: make([]byte, 8)},
		"too small": {Depth: 16, Data: make([]byte, 8)},
	}
	for name, reply := range cases {
		if _, err := decodeZPixmap(formats, reply, 2, 2); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
