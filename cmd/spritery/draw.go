package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/clipboard"
	"github.com/example/spritery/internal/codec"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/render"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/tools"
)

// drawCmd applies one editing operation to an image file without opening
// a window.
type drawCmd struct {
	command
	file        string
	output      string
	colorSpec   string
	scale       int
	toClipboard bool
	op          string
	cells       []canvas.Cell
}

// drawOps maps operation names to the tool they use and the number of
// integer arguments they take.
var drawOps = map[string]struct {
	tool tools.Kind
	args int
}{
	"pixel": {tools.KindPencil, 2},
	"line":  {tools.KindPencil, 4},
	"fill":  {tools.KindBucket, 2},
	"erase": {tools.KindEraser, 2},
	"pick":  {tools.KindColorPicker, 2},
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	d := &drawCmd{command: newCommand(r, "draw")}
	d.fs.Usage = usageFunc(d)
	d.fs.StringVar(&d.output, "o", "", "output file (defaults to the input file)")
	d.fs.StringVar(&d.colorSpec, "color", "black", "drawing color: name, #RRGGBB, #RRGGBBAA or invisible")
	d.fs.IntVar(&d.scale, "scale", 1, "enlarge the written image by this factor")
	d.fs.BoolVar(&d.toClipboard, "to-clipboard", false, "also copy the result to the clipboard")
	if err := d.fs.Parse(args); err != nil {
		return nil, err
	}
	pos := d.fs.Args()
	if len(pos) < 2 {
		return nil, &UsageError{of: d}
	}
	d.file = pos[0]
	d.op = strings.ToLower(pos[1])
	spec, ok := drawOps[d.op]
	if !ok {
		return nil, fmt.Errorf("unknown draw operation %q", pos[1])
	}
	nums, err := expectInts(pos[2:], spec.args, d.op)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(nums); i += 2 {
		d.cells = append(d.cells, canvas.Cell{X: nums[i], Y: nums[i+1]})
	}
	if d.scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1")
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	col, err := palette.ParseColor(d.colorSpec)
	if err != nil {
		return err
	}
	sess := d.newSession(session.WithColor(col))
	if err := sess.Open(d.file); err != nil {
		return err
	}
	if _, err := sess.Stroke(drawOps[d.op].tool, d.cells...); err != nil {
		return err
	}
	if d.op == "pick" {
		fmt.Fprintln(d.stdout, sess.Color())
		return nil
	}
	if err := d.write(sess); err != nil {
		return err
	}
	if d.toClipboard {
		if err := clipboard.WriteCanvas(sess.Canvas()); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		d.notifier.Copy(filepath.Base(d.file))
	}
	return nil
}

func (d *drawCmd) write(sess *session.Session) error {
	out := d.output
	if out == "" {
		out = d.file
	}
	if d.scale == 1 {
		return sess.Save(out)
	}
	if err := codec.ExportImage(out, render.Scale(sess.Canvas(), d.scale)); err != nil {
		return err
	}
	d.notifier.Export(out)
	return nil
}
