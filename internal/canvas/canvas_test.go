package canvas

import (
	"image"
	"image/color"
	"testing"
)

func TestNewInitialisesInvisible(t *testing.T) {
	c := New(3, 2)
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("unexpected size %dx%d", c.Width(), c.Height())
	}
	if !c.IsEmpty() {
		t.Fatal("expected new canvas to be empty")
	}
	if got := c.Count(Invisible); got != 6 {
		t.Fatalf("expected 6 invisible pixels, got %d", got)
	}
}

func TestNewClampsDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 5, 1, 5},
		{-3, -3, 1, 1},
		{2048, 10, MaxSize, 10},
		{10, 5000, 10, MaxSize},
		{MaxSize, MaxSize, MaxSize, MaxSize},
	}
	for _, tt := range tests {
		c := New(tt.w, tt.h)
		if c.Width() != tt.wantW || c.Height() != tt.wantH {
			t.Errorf("New(%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, c.Width(), c.Height(), tt.wantW, tt.wantH)
		}
	}
}

func TestSetThenGet(t *testing.T) {
	c := New(5, 4)
	red := Color{R: 255, A: 255}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			col := Color{R: uint8(x), G: uint8(y), B: 7, A: 255}
			c.Set(x, y, col)
			if got := c.At(x, y); got != col {
				t.Fatalf("At(%d,%d) = %v, want %v", x, y, got, col)
			}
		}
	}
	c.SetCell(Cell{X: 4, Y: 3}, red)
	if got := c.AtCell(Cell{X: 4, Y: 3}); got != red {
		t.Fatalf("AtCell = %v, want %v", got, red)
	}
	if c.IsEmpty() {
		t.Fatal("painted canvas reported empty")
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	c := New(2, 2)
	cases := []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, NoCell}
	for _, cell := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %v", cell)
				}
			}()
			c.AtCell(cell)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic on set for %v", cell)
				}
			}()
			c.SetCell(cell, Invisible)
		}()
	}
}

func TestContains(t *testing.T) {
	c := New(3, 3)
	if !c.Contains(Cell{2, 2}) {
		t.Error("expected 2:2 inside")
	}
	if c.Contains(Cell{3, 0}) || c.Contains(NoCell) {
		t.Error("expected cells outside")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(2, 2)
	c.Set(0, 0, Color{G: 200, A: 255})
	d := c.Clone()
	if !c.Equal(d) {
		t.Fatal("clone differs from original")
	}
	d.Set(1, 1, Color{B: 1, A: 255})
	if c.Equal(d) {
		t.Fatal("mutating clone changed original")
	}
}

func TestImageRoundTrip(t *testing.T) {
	c := New(3, 2)
	c.Set(0, 0, Color{R: 10, G: 20, B: 30, A: 40})
	c.Set(2, 1, Color{R: 255, G: 128, B: 1, A: 255})
	img := c.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 40}) {
		t.Fatalf("semi transparent pixel altered: %+v", got)
	}
	back := FromImage(img)
	if !back.Equal(c) {
		t.Fatal("image round trip lost data")
	}
}

func TestFromImageNormalisesTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	c := FromImage(img)
	if c.At(0, 0) != Invisible {
		t.Fatalf("expected invisible, got %v", c.At(0, 0))
	}
}

func TestFromImageCropsOversized(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, MaxSize+10, 4))
	c := FromImage(img)
	if c.Width() != MaxSize || c.Height() != 4 {
		t.Fatalf("unexpected size %dx%d", c.Width(), c.Height())
	}
}

func TestColorString(t *testing.T) {
	if got := (Color{R: 255, A: 255}).String(); got != "#FF0000" {
		t.Errorf("got %q", got)
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 4}).String(); got != "#01020304" {
		t.Errorf("got %q", got)
	}
	if got := Invisible.String(); got != "invisible" {
		t.Errorf("got %q", got)
	}
}
