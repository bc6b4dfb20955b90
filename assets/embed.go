// Package assets carries the palettes built into the binary.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/example/spritery/internal/palette"
)

//go:embed palettes/*.txt palettes/*.yaml
var embeddedPalettes embed.FS

var (
	loadOnce sync.Once
	loadErr  error
	builtin  []*palette.Palette
)

func loadPalettes() {
	entries, err := fs.ReadDir(embeddedPalettes, "palettes")
	if err != nil {
		loadErr = err
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		data, err := embeddedPalettes.ReadFile(path.Join("palettes", name))
		if err != nil {
			loadErr = err
			return
		}
		var p *palette.Palette
		switch path.Ext(name) {
		case ".txt":
			p, err = palette.ParsePaintNet(bytes.NewReader(data))
		case ".yaml":
			p, err = palette.ParseYAML(bytes.NewReader(data))
		default:
			continue
		}
		if err != nil {
			loadErr = fmt.Errorf("palette %s: %w", name, err)
			return
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(name, path.Ext(name))
		}
		p.Source = "builtin:" + name
		builtin = append(builtin, p)
	}
	sort.Slice(builtin, func(i, j int) bool { return builtin[i].Name < builtin[j].Name })
}

func ensurePalettes() error {
	loadOnce.Do(loadPalettes)
	return loadErr
}

// Palettes returns fresh copies of the built-in palettes sorted by name.
func Palettes() ([]*palette.Palette, error) {
	if err := ensurePalettes(); err != nil {
		return nil, err
	}
	out := make([]*palette.Palette, len(builtin))
	for i, p := range builtin {
		c := *p
		c.Swatches = append([]palette.Swatch(nil), p.Swatches...)
		out[i] = &c
	}
	return out, nil
}

// PaletteNames lists the built-in palette names.
func PaletteNames() []string {
	if err := ensurePalettes(); err != nil {
		return nil
	}
	names := make([]string, len(builtin))
	for i, p := range builtin {
		names[i] = p.Name
	}
	return names
}
