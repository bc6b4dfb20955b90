package assets

import (
	"testing"

	"github.com/example/spritery/internal/canvas"
)

func TestPalettes(t *testing.T) {
	ps, err := Palettes()
	if err != nil {
		t.Fatalf("Palettes: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d palettes", len(ps))
	}
	if ps[0].Name != "Game Boy" || ps[1].Name != "PICO-8" {
		t.Fatalf("names %q %q", ps[0].Name, ps[1].Name)
	}
	if n := ps[1].Len(); n != 16 {
		t.Errorf("PICO-8 has %d colors", n)
	}
	if got := ps[0].Color(0); got != (canvas.Color{R: 0x0F, G: 0x38, B: 0x0F, A: 255}) {
		t.Errorf("first Game Boy color %v", got)
	}
	if ps[0].Swatches[0].Name != "Darkest" {
		t.Errorf("swatch name %q", ps[0].Swatches[0].Name)
	}
}

func TestPalettesReturnsCopies(t *testing.T) {
	ps, _ := Palettes()
	ps[0].Swatches[0].Color = canvas.Invisible
	again, _ := Palettes()
	if again[0].Swatches[0].Color == canvas.Invisible {
		t.Error("caller modified the built-in palette")
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if len(names) != 2 || names[1] != "PICO-8" {
		t.Errorf("got %v", names)
	}
}
