package config

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/theme"
)

// Parse reads RC formatted configuration: "key = value" or "key: value"
// lines grouped under [section] headers. Lines starting with # or // are
// comments. Unknown keys and sections are ignored.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case current != nil:
			err = current.Set(key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		case section == "viewport":
			err = setViewField(&cfg.View, key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			name := section
			if name == "" {
				name = "root"
			}
			return nil, fmt.Errorf("line %d in [%s]: %w", lineNo, name, err)
		}
	}
	return cfg, scanner.Err()
}

// splitKeyValue splits on the first '=' or, failing that, the first ':'.
func splitKeyValue(line string) (string, string, bool) {
	sep := "="
	if !strings.Contains(line, "=") {
		sep = ":"
	}
	key, value, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return strings.TrimSpace(key), value, true
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "palette":
		cfg.Palette = value
	case "palette_dir":
		cfg.PaletteDir = value
	case "save_dir":
		cfg.SaveDir = value
	case "width", "height":
		// bounded by canvas.MaxSize, the largest canvas that can be made
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > canvas.MaxSize {
			return fmt.Errorf("invalid size for key %s: %q (1-%d)", key, value, canvas.MaxSize)
		}
		if strings.EqualFold(key, "width") {
			cfg.Width = n
		} else {
			cfg.Height = n
		}
	}
	return nil
}

func setViewField(v *View, key, value string) error {
	var dst *float64
	switch strings.ToLower(key) {
	case "zoom":
		dst = &v.Zoom
	case "min_zoom":
		dst = &v.MinZoom
	case "max_zoom":
		dst = &v.MaxZoom
	case "zoom_step":
		dst = &v.ZoomStep
	case "pan_step":
		dst = &v.PanStep
	default:
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("invalid number for key %s: %q", key, value)
	}
	*dst = f
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	case "export":
		n.Export = b
	}
	return nil
}
