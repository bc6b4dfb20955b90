package main

import (
	"fmt"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/tools"
)

// newCmd writes a blank or solid canvas to a file.
type newCmd struct {
	command
	width  int
	height int
	fill   string
	file   string
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	n := &newCmd{command: newCommand(r, "new")}
	n.fs.Usage = usageFunc(n)
	w, h := session.DefaultWidth, session.DefaultHeight
	if r != nil {
		w, h = r.config.Width, r.config.Height
	}
	n.fs.IntVar(&n.width, "width", w, "canvas width in pixels (1-1024)")
	n.fs.IntVar(&n.height, "height", h, "canvas height in pixels (1-1024)")
	n.fs.StringVar(&n.fill, "fill", "", "fill color; empty leaves the canvas invisible")
	if err := n.fs.Parse(args); err != nil {
		return nil, err
	}
	if n.fs.NArg() != 1 {
		return nil, &UsageError{of: n}
	}
	n.file = n.fs.Arg(0)
	if n.width < 1 || n.height < 1 || n.width > canvas.MaxSize || n.height > canvas.MaxSize {
		return nil, fmt.Errorf("canvas size %dx%d outside 1-%d", n.width, n.height, canvas.MaxSize)
	}
	return n, nil
}

func (n *newCmd) Run() error {
	sess := n.newSession()
	sess.NewCanvas(n.width, n.height)
	if n.fill != "" {
		col, err := palette.ParseColor(n.fill)
		if err != nil {
			return err
		}
		sess.SetColor(col)
		if _, err := sess.Stroke(tools.KindBucket, canvas.Cell{}); err != nil {
			return err
		}
	}
	path := n.outputPath(n.file)
	if err := sess.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(n.stdout, "created %s (%dx%d)\n", path, n.width, n.height)
	return nil
}
