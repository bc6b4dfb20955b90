package main

import (
	"path/filepath"

	"github.com/example/spritery/internal/codec"
	"github.com/example/spritery/internal/tui"
)

// viewCmd shows an image in the terminal.
type viewCmd struct {
	command
	file string
}

func parseViewCmd(args []string, r *root) (*viewCmd, error) {
	v := &viewCmd{command: newCommand(r, "view")}
	v.fs.Usage = usageFunc(v)
	if err := v.fs.Parse(args); err != nil {
		return nil, err
	}
	if v.fs.NArg() != 1 {
		return nil, &UsageError{of: v}
	}
	v.file = v.fs.Arg(0)
	return v, nil
}

func (v *viewCmd) Run() error {
	c, err := codec.ImportFile(v.file)
	if err != nil {
		return err
	}
	return tui.Show(c, filepath.Base(v.file))
}
