package main

import (
	"fmt"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/codec"
)

// infoCmd prints size and color statistics for image files.
type infoCmd struct {
	command
	files []string
}

func parseInfoCmd(args []string, r *root) (*infoCmd, error) {
	i := &infoCmd{command: newCommand(r, "info")}
	i.fs.Usage = usageFunc(i)
	if err := i.fs.Parse(args); err != nil {
		return nil, err
	}
	if i.fs.NArg() == 0 {
		return nil, &UsageError{of: i}
	}
	i.files = i.fs.Args()
	return i, nil
}

// Stats summarises a canvas.
type Stats struct {
	Width   int
	Height  int
	Painted int
	Colors  int
}

func canvasStats(c *canvas.Canvas) Stats {
	seen := map[canvas.Color]struct{}{}
	painted := 0
	for _, col := range c.Pixels() {
		if col == canvas.Invisible {
			continue
		}
		painted++
		seen[col] = struct{}{}
	}
	return Stats{Width: c.Width(), Height: c.Height(), Painted: painted, Colors: len(seen)}
}

func (i *infoCmd) Run() error {
	for _, path := range i.files {
		format, err := codec.FormatFromPath(path)
		if err != nil {
			return err
		}
		c, err := codec.ImportFile(path)
		if err != nil {
			return err
		}
		s := canvasStats(c)
		fmt.Fprintf(i.stdout, "%s: %s %dx%d, %d painted pixels, %d colors\n",
			path, format, s.Width, s.Height, s.Painted, s.Colors)
	}
	return nil
}
