package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/spritery/internal/canvas"
)

func TestDrawLineWritesFile(t *testing.T) {
	r, _, _ := testRoot(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeCanvas(t, in, canvas.New(4, 4))

	if err := r.Run([]string{"draw", "-o", out, "-color", "#00ff00", in, "line", "0", "0", "3", "3"}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	c := readCanvas(t, out)
	green := canvas.Color{G: 255, A: 255}
	for i := 0; i < 4; i++ {
		if got := c.At(i, i); got != green {
			t.Fatalf("pixel %d,%d = %v, want %v", i, i, got, green)
		}
	}
	if got := c.Count(green); got != 4 {
		t.Fatalf("green pixels = %d, want 4", got)
	}
	if !readCanvas(t, in).IsEmpty() {
		t.Fatalf("input file was modified")
	}
}

func TestDrawFillInPlace(t *testing.T) {
	r, _, _ := testRoot(t)
	path := filepath.Join(t.TempDir(), "f.png")
	c := canvas.New(3, 3)
	c.Set(1, 0, canvas.Color{A: 255})
	c.Set(1, 1, canvas.Color{A: 255})
	c.Set(1, 2, canvas.Color{A: 255})
	writeCanvas(t, path, c)

	if err := r.Run([]string{"draw", "-color", "blue", path, "fill", "0", "0"}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	got := readCanvas(t, path)
	blue := canvas.Color{B: 255, A: 255}
	if n := got.Count(blue); n != 3 {
		t.Fatalf("blue pixels = %d, want 3 (left column only)", n)
	}
	if got.At(2, 0) != canvas.Invisible {
		t.Fatalf("fill crossed the black wall")
	}
}

func TestDrawScaleExport(t *testing.T) {
	r, _, _ := testRoot(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "big.png")
	writeCanvas(t, in, canvas.New(2, 2))
	if err := r.Run([]string{"draw", "-scale", "3", "-o", out, in, "pixel", "1", "1"}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	c := readCanvas(t, out)
	if c.Width() != 6 || c.Height() != 6 {
		t.Fatalf("scaled size = %dx%d, want 6x6", c.Width(), c.Height())
	}
	black := canvas.Color{A: 255}
	if got := c.Count(black); got != 9 {
		t.Fatalf("black pixels = %d, want 9", got)
	}
}

func TestDrawPickPrintsColor(t *testing.T) {
	r, stdout, _ := testRoot(t)
	path := filepath.Join(t.TempDir(), "p.png")
	c := canvas.New(2, 2)
	c.Set(1, 0, canvas.Color{R: 0x12, G: 0x34, B: 0x56, A: 255})
	writeCanvas(t, path, c)
	if err := r.Run([]string{"draw", path, "pick", "1", "0"}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "#123456" {
		t.Fatalf("picked %q, want #123456", got)
	}
}

func TestDrawOutsideCanvas(t *testing.T) {
	r, _, _ := testRoot(t)
	path := filepath.Join(t.TempDir(), "o.png")
	writeCanvas(t, path, canvas.New(2, 2))
	err := r.Run([]string{"draw", path, "pixel", "5", "5"})
	if err == nil || !strings.Contains(err.Error(), "outside") {
		t.Fatalf("expected outside error, got %v", err)
	}
}

func TestParseDrawErrors(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"a.png", "spray", "1", "1"}, "unknown draw operation"},
		{[]string{"a.png", "line", "1", "1"}, "requires 4 integer arguments"},
		{[]string{"a.png", "pixel", "x", "1"}, "invalid integer"},
		{[]string{"-scale", "0", "a.png", "pixel", "1", "1"}, "scale"},
	}
	for _, tc := range cases {
		_, err := parseDrawCmd(tc.args, nil)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("parseDrawCmd(%v) = %v, want error containing %q", tc.args, err, tc.want)
		}
	}
}
