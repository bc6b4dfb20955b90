package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupported is returned for files that are not palettes.
var ErrUnsupported = errors.New("unsupported palette file")

// IsPaletteFile reports whether path has a palette extension.
func IsPaletteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads a palette, picking the parser from the extension. A
// palette without a name is named after its file.
func LoadFile(path string) (*Palette, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parse func(io.Reader) (*Palette, error)
	switch ext {
	case ".txt":
		parse = ParsePaintNet
	case ".yaml", ".yml":
		parse = ParseYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	p.Source = path
	return p, nil
}

// SaveFile writes p to path in the format implied by its extension.
func SaveFile(path string, p *Palette) error {
	var write func(io.Writer, *Palette) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		write = WritePaintNet
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, p); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadDir reads every palette file in dir, sorted by file name. Files that
// fail to parse are skipped and reported together in the returned error;
// the successfully loaded palettes are still returned.
func LoadDir(dir string) ([]*Palette, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	var (
		out  []*Palette
		errs []error
	)
	for _, e := range entries {
		if e.IsDir() || !IsPaletteFile(e.Name()) {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, p)
	}
	return out, errors.Join(errs...)
}

// Library is the set of palettes the editor can cycle through. It always
// holds at least one palette.
type Library struct {
	palettes []*Palette
	current  int
}

// NewLibrary returns a library of ps, or of Default when ps is empty.
func NewLibrary(ps ...*Palette) *Library {
	l := &Library{}
	l.Replace(ps)
	return l
}

// Replace swaps the palettes, keeping the current selection by name when
// it still exists.
func (l *Library) Replace(ps []*Palette) {
	var name string
	if len(l.palettes) > 0 {
		name = l.palettes[l.current].Name
	}
	l.palettes = nil
	for _, p := range ps {
		if p != nil {
			l.palettes = append(l.palettes, p)
		}
	}
	if len(l.palettes) == 0 {
		l.palettes = []*Palette{Default()}
	}
	l.current = 0
	if name != "" {
		l.Select(name)
	}
}

// Current returns the selected palette.
func (l *Library) Current() *Palette { return l.palettes[l.current] }

// Len returns the number of palettes.
func (l *Library) Len() int { return len(l.palettes) }

// Palettes returns the palettes in order.
func (l *Library) Palettes() []*Palette {
	out := make([]*Palette, len(l.palettes))
	copy(out, l.palettes)
	return out
}

// Next selects the following palette, wrapping at the end.
func (l *Library) Next() *Palette {
	l.current = (l.current + 1) % len(l.palettes)
	return l.Current()
}

// Prev selects the preceding palette, wrapping at the start.
func (l *Library) Prev() *Palette {
	l.current = (l.current - 1 + len(l.palettes)) % len(l.palettes)
	return l.Current()
}

// Select chooses the palette with the given name, ignoring case.
func (l *Library) Select(name string) bool {
	for i, p := range l.palettes {
		if strings.EqualFold(p.Name, name) {
			l.current = i
			return true
		}
	}
	return false
}
