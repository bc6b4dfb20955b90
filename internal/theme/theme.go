package theme

import (
	"fmt"
	"image/color"
	"reflect"
	"strings"
)

// Theme holds the colors the editor window is drawn with.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // behind the canvas
	Foreground color.RGBA // text

	// Toolbar and palette strip
	ToolbarBackground color.RGBA
	ButtonBackground  color.RGBA
	ButtonActive      color.RGBA
	ButtonText        color.RGBA
	SwatchBorder      color.RGBA
	SwatchSelected    color.RGBA

	// Canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
	Grid         color.RGBA
	Hover        color.RGBA
	CanvasBorder color.RGBA

	// Status overlay
	StatusBackground color.RGBA
	StatusText       color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Background:        color.RGBA{96, 96, 104, 255},
		Foreground:        color.RGBA{0, 0, 0, 255},
		ToolbarBackground: color.RGBA{220, 220, 220, 255},
		ButtonBackground:  color.RGBA{200, 200, 200, 255},
		ButtonActive:      color.RGBA{150, 170, 220, 255},
		ButtonText:        color.RGBA{0, 0, 0, 255},
		SwatchBorder:      color.RGBA{40, 40, 40, 255},
		SwatchSelected:    color.RGBA{255, 255, 255, 255},
		CheckerLight:      color.RGBA{220, 220, 220, 255},
		CheckerDark:       color.RGBA{192, 192, 192, 255},
		Grid:              color.RGBA{0, 0, 0, 48},
		Hover:             color.RGBA{255, 255, 255, 96},
		CanvasBorder:      color.RGBA{0, 0, 0, 255},
		StatusBackground:  color.RGBA{0, 0, 0, 160},
		StatusText:        color.RGBA{255, 255, 255, 255},
	}
}

// Clone returns a copy of t.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}

var rgbaType = reflect.TypeOf(color.RGBA{})

// ColorFields lists the names of the color settings in declaration order.
func ColorFields() []string {
	typ := reflect.TypeOf(Theme{})
	var out []string
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type == rgbaType {
			out = append(out, typ.Field(i).Name)
		}
	}
	return out
}

// Set assigns a color setting by case-insensitive name. Name sets the
// theme name. Unknown keys are ignored so older builds accept newer files.
func (t *Theme) Set(key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Type != rgbaType || !strings.EqualFold(f.Name, key) {
			continue
		}
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Get returns a color setting by case-insensitive name.
func (t *Theme) Get(key string) (color.RGBA, bool) {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Type == rgbaType && strings.EqualFold(f.Name, key) {
			return val.Field(i).Interface().(color.RGBA), true
		}
	}
	return color.RGBA{}, false
}

// Format renders every setting as one "Key<sep>#hex" line, the layout
// Parse and the config file read back.
func (t *Theme) Format(sep string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name%s%s\n", sep, t.Name)
	for _, name := range ColorFields() {
		c, _ := t.Get(name)
		fmt.Fprintf(&sb, "%s%s%s\n", name, sep, Hex(c))
	}
	return sb.String()
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
