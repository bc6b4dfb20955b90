package config

import (
	"os"
	"path/filepath"
)

// Loader finds and reads the configuration file.
type Loader struct {
	Version      string // "dev" enables ./.spriteryrc
	OverridePath string
}

// NewLoader creates a new Loader.
func NewLoader(version, overridePath string) *Loader {
	return &Loader{Version: version, OverridePath: overridePath}
}

// Load reads the first configuration file found, or returns defaults when
// there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.ConfigPath()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ConfigPath returns the file Load would read, or "". The search order is
// the override path, ./.spriteryrc for dev builds, then
// ~/.config/spritery/config.rc.
func (l *Loader) ConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			local := filepath.Join(wd, ".spriteryrc")
			if _, err := os.Stat(local); err == nil {
				return local
			}
		}
	}
	if path := UserPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// UserPath is the per-user configuration file location.
func UserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "spritery", "config.rc")
}
