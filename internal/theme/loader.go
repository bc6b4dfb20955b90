package theme

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/*.theme
var embedded embed.FS

// Loader finds themes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Extra holds themes defined inline in the config file.
	Extra map[string]*Theme
}

// NewLoader creates a Loader with the standard search directories.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "spritery", "themes"),
		SystemDir: "/usr/share/spritery/themes",
	}
}

// Load resolves name in order: existing file path, config defined theme,
// built-in theme, ConfigDir, SystemDir. An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}
	if t, ok := l.Extra[name]; ok {
		return t.Clone(), nil
	}
	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if f, err := embedded.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

// Names lists the built-in and config defined themes.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	entries, _ := embedded.ReadDir("defaults")
	for _, e := range entries {
		seen[strings.TrimSuffix(e.Name(), ".theme")] = true
	}
	for name := range l.Extra {
		seen[name] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseNamed(f, strings.TrimSuffix(filepath.Base(path), ".theme"))
}

func parseNamed(r io.Reader, fallback string) (*Theme, error) {
	t, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if t.Name == "" || t.Name == "Default" {
		t.Name = fallback
	}
	return t, nil
}
