// Package palette holds named color collections and reads them from
// paint.net text files and YAML.
package palette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/spritery/internal/canvas"
	"golang.org/x/image/colornames"
)

// Swatch is one palette entry. Name may be empty.
type Swatch struct {
	Name  string
	Color canvas.Color
}

// Palette is an ordered list of swatches.
type Palette struct {
	Name        string
	Description string
	Source      string
	Swatches    []Swatch
}

// Len returns the number of swatches.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Swatches)
}

// Color returns the swatch color at i, wrapping around in both directions.
// An empty palette yields canvas.Invisible.
func (p *Palette) Color(i int) canvas.Color {
	n := p.Len()
	if n == 0 {
		return canvas.Invisible
	}
	return p.Swatches[((i%n)+n)%n].Color
}

// Index returns the position of col, or -1.
func (p *Palette) Index(col canvas.Color) int {
	if p == nil {
		return -1
	}
	for i, s := range p.Swatches {
		if s.Color == col {
			return i
		}
	}
	return -1
}

// Add appends col unless it is already present and returns its index.
func (p *Palette) Add(col canvas.Color, name string) int {
	if idx := p.Index(col); idx >= 0 {
		if name != "" && p.Swatches[idx].Name == "" {
			p.Swatches[idx].Name = name
		}
		return idx
	}
	p.Swatches = append(p.Swatches, Swatch{Name: name, Color: col})
	return len(p.Swatches) - 1
}

// Default returns the built-in sixteen color palette.
func Default() *Palette {
	return &Palette{
		Name:        "Default",
		Description: "Basic sixteen colors",
		Swatches: []Swatch{
			{"Black", canvas.Color{R: 0, G: 0, B: 0, A: 255}},
			{"White", canvas.Color{R: 255, G: 255, B: 255, A: 255}},
			{"Red", canvas.Color{R: 255, A: 255}},
			{"Lime", canvas.Color{G: 255, A: 255}},
			{"Blue", canvas.Color{B: 255, A: 255}},
			{"Yellow", canvas.Color{R: 255, G: 255, A: 255}},
			{"Cyan", canvas.Color{G: 255, B: 255, A: 255}},
			{"Magenta", canvas.Color{R: 255, B: 255, A: 255}},
			{"Maroon", canvas.Color{R: 128, A: 255}},
			{"Green", canvas.Color{G: 128, A: 255}},
			{"Navy", canvas.Color{B: 128, A: 255}},
			{"Olive", canvas.Color{R: 128, G: 128, A: 255}},
			{"Teal", canvas.Color{G: 128, B: 128, A: 255}},
			{"Purple", canvas.Color{R: 128, B: 128, A: 255}},
			{"Silver", canvas.Color{R: 192, G: 192, B: 192, A: 255}},
			{"Gray", canvas.Color{R: 128, G: 128, B: 128, A: 255}},
		},
	}
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA, a CSS color name, or
// "invisible"/"transparent".
func ParseColor(s string) (canvas.Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch lower {
	case "":
		return canvas.Invisible, fmt.Errorf("empty color")
	case "invisible", "transparent", "none":
		return canvas.Invisible, nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return canvas.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return canvas.Invisible, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return canvas.Invisible, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return canvas.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return canvas.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorNames lists the CSS names ParseColor understands, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
