package main

import (
	"fmt"
	"image"

	"github.com/example/spritery/internal/grab"
)

var grabRegionFn = grab.Region

// grabCmd saves a rectangle of the screen as a sprite.
type grabCmd struct {
	command
	x, y   int
	width  int
	height int
	file   string
}

func parseGrabCmd(args []string, r *root) (*grabCmd, error) {
	g := &grabCmd{command: newCommand(r, "grab")}
	g.fs.Usage = usageFunc(g)
	g.fs.IntVar(&g.x, "x", 0, "left edge of the region in screen pixels")
	g.fs.IntVar(&g.y, "y", 0, "top edge of the region in screen pixels")
	g.fs.IntVar(&g.width, "width", 32, "region width")
	g.fs.IntVar(&g.height, "height", 32, "region height")
	if err := g.fs.Parse(args); err != nil {
		return nil, err
	}
	if g.fs.NArg() != 1 {
		return nil, &UsageError{of: g}
	}
	g.file = g.fs.Arg(0)
	if g.width < 1 || g.height < 1 {
		return nil, fmt.Errorf("region size %dx%d must be positive", g.width, g.height)
	}
	return g, nil
}

func (g *grabCmd) Run() error {
	c, err := grabRegionFn(image.Rect(g.x, g.y, g.x+g.width, g.y+g.height))
	if err != nil {
		return err
	}
	sess := g.newSession()
	path := g.outputPath(g.file)
	sess.Replace(c, path)
	if err := sess.Save(""); err != nil {
		return err
	}
	fmt.Fprintf(g.stdout, "grabbed %dx%d into %s\n", c.Width(), c.Height(), path)
	return nil
}
