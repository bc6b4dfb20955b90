package main

import (
	"errors"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/spritery/internal/canvas"
)

func TestGrabSavesRegion(t *testing.T) {
	original := grabRegionFn
	var asked image.Rectangle
	grabRegionFn = func(r image.Rectangle) (*canvas.Canvas, error) {
		asked = r
		c := canvas.New(r.Dx(), r.Dy())
		c.Set(0, 0, canvas.Color{R: 255, A: 255})
		return c, nil
	}
	t.Cleanup(func() { grabRegionFn = original })

	r, stdout, _ := testRoot(t)
	path := filepath.Join(t.TempDir(), "g.png")
	if err := r.Run([]string{"grab", "-x", "5", "-y", "6", "-width", "3", "-height", "2", path}); err != nil {
		t.Fatalf("grab: %v", err)
	}
	if asked != image.Rect(5, 6, 8, 8) {
		t.Fatalf("asked for %v", asked)
	}
	c := readCanvas(t, path)
	if c.Width() != 3 || c.At(0, 0) != (canvas.Color{R: 255, A: 255}) {
		t.Fatalf("unexpected grabbed canvas %dx%d", c.Width(), c.Height())
	}
	if !strings.Contains(stdout.String(), "grabbed 3x2") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestGrabError(t *testing.T) {
	original := grabRegionFn
	sentinel := errors.New("no display")
	grabRegionFn = func(image.Rectangle) (*canvas.Canvas, error) { return nil, sentinel }
	t.Cleanup(func() { grabRegionFn = original })

	r, _, _ := testRoot(t)
	if err := r.Run([]string{"grab", filepath.Join(t.TempDir(), "g.png")}); !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
