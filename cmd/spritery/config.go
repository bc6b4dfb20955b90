package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/spritery/internal/config"
)

// configCmd shows or writes the effective configuration.
type configCmd struct {
	command
	action string
	output string
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	c := &configCmd{command: newCommand(r, "config")}
	c.fs.Usage = usageFunc(c)
	c.fs.StringVar(&c.output, "o", "", "file written by save (defaults to the user config file)")
	if err := c.fs.Parse(args); err != nil {
		return nil, err
	}
	c.action = "print"
	switch c.fs.NArg() {
	case 0:
	case 1:
		c.action = c.fs.Arg(0)
	default:
		return nil, &UsageError{of: c}
	}
	switch c.action {
	case "print", "path", "save":
	default:
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	switch c.action {
	case "path":
		path := config.NewLoader(version, configPathOverride).ConfigPath()
		if path == "" {
			path = config.UserPath()
			fmt.Fprintf(c.stdout, "%s (not present)\n", path)
			return nil
		}
		fmt.Fprintln(c.stdout, path)
		return nil
	case "save":
		path := c.output
		if path == "" {
			path = config.UserPath()
		}
		if path == "" {
			return fmt.Errorf("config save: no user config directory")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("config save: %w", err)
		}
		if err := os.WriteFile(path, []byte(c.config.String()), 0o644); err != nil {
			return fmt.Errorf("config save: %w", err)
		}
		fmt.Fprintf(c.stdout, "wrote %s\n", path)
		return nil
	}
	fmt.Fprint(c.stdout, c.config.String())
	return nil
}
