package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/example/spritery/internal/theme"
	"github.com/example/spritery/internal/viewport"
)

// Notify holds which events raise desktop notifications.
type Notify struct {
	Save   bool
	Copy   bool
	Export bool
}

// View holds the viewport defaults.
type View struct {
	Zoom     float64
	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64
	PanStep  float64
}

// Config holds the application configuration.
type Config struct {
	Theme      string
	Palette    string
	PaletteDir string
	SaveDir    string
	Width      int
	Height     int
	View       View
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// DefaultPanStep is how far one pan key moves the canvas, in screen pixels.
const DefaultPanStep = 20

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Width:  32,
		Height: 32,
		View: View{
			Zoom:     viewport.DefaultZoom,
			MinZoom:  viewport.DefaultMinZoom,
			MaxZoom:  viewport.DefaultMaxZoom,
			ZoomStep: viewport.DefaultZoomStep,
			PanStep:  DefaultPanStep,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Viewport builds a viewport from the configured zoom settings.
func (c *Config) Viewport() *viewport.Viewport {
	v := viewport.New()
	if validZoom(c.View.MinZoom) && validZoom(c.View.MaxZoom) {
		v.MinZoom = c.View.MinZoom
		v.MaxZoom = c.View.MaxZoom
	}
	if v.MinZoom > v.MaxZoom {
		v.MinZoom, v.MaxZoom = v.MaxZoom, v.MinZoom
	}
	if validZoom(c.View.Zoom) {
		v.SetZoom(c.View.Zoom)
	}
	return v
}

func validZoom(z float64) bool {
	return z > 0 && !math.IsInf(z, 0)
}

// String renders the configuration in RC format. Parsing the result
// yields an equal Config.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Palette != "" {
		fmt.Fprintf(&sb, "palette = %s\n", c.Palette)
	}
	if c.PaletteDir != "" {
		fmt.Fprintf(&sb, "palette_dir = %s\n", c.PaletteDir)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	sb.WriteString("\n")

	sb.WriteString("[viewport]\n")
	fmt.Fprintf(&sb, "zoom = %g\n", c.View.Zoom)
	fmt.Fprintf(&sb, "min_zoom = %g\n", c.View.MinZoom)
	fmt.Fprintf(&sb, "max_zoom = %g\n", c.View.MaxZoom)
	fmt.Fprintf(&sb, "zoom_step = %g\n", c.View.ZoomStep)
	fmt.Fprintf(&sb, "pan_step = %g\n", c.View.PanStep)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	sb.WriteString("\n")

	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		sb.WriteString(c.Themes[name].Format(": "))
		sb.WriteString("\n")
	}
	return sb.String()
}
