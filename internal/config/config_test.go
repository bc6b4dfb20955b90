package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/spritery/internal/viewport"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
palette = "Pico 8"
palette_dir = /tmp/palettes
save_dir = /tmp/sprites
width = 16
height: 24

[viewport]
zoom = 12
min_zoom = 2
max_zoom = 60
zoom_step = 1.5
pan_step = 8

[notify]
save = true
copy = false
export = true

[theme.my_custom_theme]
Background = #111111
Grid: #FFFFFF40
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Theme != "my_custom_theme" || cfg.Palette != "Pico 8" {
		t.Errorf("root strings: %q %q", cfg.Theme, cfg.Palette)
	}
	if cfg.PaletteDir != "/tmp/palettes" || cfg.SaveDir != "/tmp/sprites" {
		t.Errorf("dirs: %q %q", cfg.PaletteDir, cfg.SaveDir)
	}
	if cfg.Width != 16 || cfg.Height != 24 {
		t.Errorf("size %dx%d", cfg.Width, cfg.Height)
	}
	want := View{Zoom: 12, MinZoom: 2, MaxZoom: 60, ZoomStep: 1.5, PanStep: 8}
	if cfg.View != want {
		t.Errorf("view %+v", cfg.View)
	}
	if cfg.Notify != (Notify{Save: true, Export: true}) {
		t.Errorf("notify %+v", cfg.Notify)
	}
	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("theme not loaded")
	}
	if th.Background != (color.RGBA{0x11, 0x11, 0x11, 255}) || th.Grid != (color.RGBA{255, 255, 255, 0x40}) {
		t.Errorf("theme colors %+v %+v", th.Background, th.Grid)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"width = wide\n",
		"width = 1025\n",
		"[viewport]\nzoom = -1\n",
		"[viewport]\nmin_zoom = NaN\n",
		"[viewport]\nzoom = Inf\n",
		"[viewport]\nmax_zoom = -Inf\n",
		"[notify]\nsave = maybe\n",
		"[theme.x]\nGrid = red\n",
	}
	for _, in := range tests {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
palette = default
save_dir = /home/user/sprites
width = 64
height = 48

[viewport]
zoom = 7.5
max_zoom = 40

[notify]
save = true
copy = false
export = true

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("circular parse failed: %v\n%s", err, cfg.String())
	}
	if cfg.Theme != cfg2.Theme || cfg.Palette != cfg2.Palette || cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Width != cfg2.Width || cfg.Height != cfg2.Height {
		t.Errorf("size mismatch")
	}
	if cfg.View != cfg2.View {
		t.Errorf("view mismatch: %+v vs %+v", cfg.View, cfg2.View)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	t1, t2 := cfg.Themes["custom"], cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatal("custom theme missing")
	}
	if *t1 != *t2 {
		t.Errorf("theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestViewport(t *testing.T) {
	cfg := New()
	cfg.View.Zoom = 500
	cfg.View.MinZoom = 50
	cfg.View.MaxZoom = 5
	v := cfg.Viewport()
	if v.MinZoom != 5 || v.MaxZoom != 50 {
		t.Fatalf("limits %v..%v", v.MinZoom, v.MaxZoom)
	}
	if v.Zoom != 50 {
		t.Fatalf("zoom %v not clamped", v.Zoom)
	}
}

func TestViewportIgnoresNonFiniteZoom(t *testing.T) {
	cfg := New()
	cfg.View.MinZoom = math.NaN()
	cfg.View.Zoom = math.Inf(1)
	v := cfg.Viewport()
	if v.MinZoom != viewport.DefaultMinZoom || v.MaxZoom != viewport.DefaultMaxZoom {
		t.Fatalf("limits %v..%v, want defaults", v.MinZoom, v.MaxZoom)
	}
	if v.Zoom != viewport.DefaultZoom {
		t.Fatalf("zoom %v, want default", v.Zoom)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	wd := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })

	if got := NewLoader("dev", "").ConfigPath(); got != "" {
		t.Fatalf("expected no config, got %q", got)
	}
	cfg, err := NewLoader("dev", "").Load()
	if err != nil || cfg.Width != 32 {
		t.Fatalf("defaults: %+v %v", cfg, err)
	}

	user := UserPath()
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("width = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewLoader("1.0", "").ConfigPath(); got != user {
		t.Fatalf("expected user config %q, got %q", user, got)
	}

	local := filepath.Join(wd, ".spriteryrc")
	if err := os.WriteFile(local, []byte("width = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewLoader("1.0", "").ConfigPath(); got != user {
		t.Fatalf("release build must ignore local rc, got %q", got)
	}
	cfg, err = NewLoader("dev", "").Load()
	if err != nil || cfg.Width != 20 {
		t.Fatalf("dev build should read local rc: %+v %v", cfg, err)
	}

	override := filepath.Join(wd, "override.rc")
	if err := os.WriteFile(override, []byte("width = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewLoader("dev", override).Load()
	if err != nil || cfg.Width != 30 {
		t.Fatalf("override should win: %+v %v", cfg, err)
	}
}
