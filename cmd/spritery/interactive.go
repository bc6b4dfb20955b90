package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/clipboard"
	"github.com/example/spritery/internal/codec"
	"github.com/example/spritery/internal/history"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/render"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/tools"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// interactiveCmd edits one canvas through typed commands.
type interactiveCmd struct {
	command
	execs commandList
	file  string
	stdin io.Reader
	sess  *session.Session
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	i := &interactiveCmd{command: newCommand(r, "interactive"), stdin: os.Stdin}
	i.fs.Usage = usageFunc(i)
	i.fs.Var(&i.execs, "e", "execute a command and exit (may be specified multiple times)")
	if err := i.fs.Parse(args); err != nil {
		return nil, err
	}
	switch i.fs.NArg() {
	case 0:
	case 1:
		i.file = i.fs.Arg(0)
	default:
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	i.sess = i.newSession()
	if i.file != "" {
		if err := i.sess.Open(i.file); err != nil {
			return err
		}
	} else {
		i.sess.NewCanvas(i.config.Width, i.config.Height)
	}
	if len(i.execs) > 0 {
		for _, line := range i.execs {
			done, err := i.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(i.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// strokeOps are the commands that run a tool over cells.
var strokeOps = map[string]tools.Kind{
	"pixel": tools.KindPencil,
	"line":  tools.KindPencil,
	"fill":  tools.KindBucket,
	"erase": tools.KindEraser,
	"pick":  tools.KindColorPicker,
}

// executeLine runs one command. done reports a request to leave.
func (i *interactiveCmd) executeLine(line string) (done bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	name, rest := strings.ToLower(args[0]), args[1:]
	if k, ok := strokeOps[name]; ok {
		return false, i.stroke(name, k, rest)
	}
	switch name {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprintln(i.stdout, "commands: new W H, open FILE, save [FILE], export FILE [SCALE], pixel X Y, line X1 Y1 X2 Y2,")
		fmt.Fprintln(i.stdout, "  fill X Y, erase X Y, pick X Y, color [COLOR], swatch N, tool [NAME], undo, redo,")
		fmt.Fprintln(i.stdout, "  palette [next|prev|list|NAME], copy, paste, info, exit")
	case "new":
		n, err := expectInts(rest, 2, "new")
		if err != nil {
			return false, err
		}
		i.sess.NewCanvas(n[0], n[1])
		i.info()
	case "open":
		if len(rest) != 1 {
			return false, fmt.Errorf("open requires a file")
		}
		if err := i.sess.Open(rest[0]); err != nil {
			return false, err
		}
		i.info()
	case "save":
		path := ""
		if len(rest) > 0 {
			path = i.outputPath(rest[0])
		}
		if err := i.sess.Save(path); err != nil {
			return false, err
		}
		fmt.Fprintf(i.stdout, "saved %s\n", i.sess.Path())
	case "export":
		return false, i.export(rest)
	case "color":
		if len(rest) == 0 {
			fmt.Fprintln(i.stdout, i.sess.Color())
			return false, nil
		}
		col, err := palette.ParseColor(strings.Join(rest, " "))
		if err != nil {
			return false, err
		}
		i.sess.SetColor(col)
	case "swatch":
		n, err := expectInts(rest, 1, "swatch")
		if err != nil {
			return false, err
		}
		fmt.Fprintln(i.stdout, i.sess.SelectPaletteColor(n[0]))
	case "tool":
		if len(rest) == 0 {
			fmt.Fprintln(i.stdout, i.sess.Tool().Name())
			return false, nil
		}
		k, err := tools.ByName(rest[0])
		if err != nil {
			return false, err
		}
		return false, i.sess.SelectTool(k)
	case "undo":
		return false, i.sess.Undo()
	case "redo":
		return false, i.sess.Redo()
	case "palette":
		return false, i.palette(rest)
	case "copy":
		if err := clipboard.WriteCanvas(i.sess.Canvas()); err != nil {
			return false, fmt.Errorf("copy: %w", err)
		}
		i.notifier.Copy(i.label())
	case "paste":
		c, err := clipboard.ReadCanvas()
		if err != nil {
			return false, fmt.Errorf("paste: %w", err)
		}
		i.sess.Replace(c, "")
		i.info()
	case "info":
		i.info()
	default:
		return false, fmt.Errorf("unknown command %q", args[0])
	}
	return false, nil
}

func (i *interactiveCmd) stroke(op string, k tools.Kind, args []string) error {
	n := 2
	if op == "line" {
		n = 4
	}
	nums, err := expectInts(args, n, op)
	if err != nil {
		return err
	}
	cells := make([]canvas.Cell, 0, n/2)
	for j := 0; j < n; j += 2 {
		cells = append(cells, canvas.Cell{X: nums[j], Y: nums[j+1]})
	}
	cmd, err := i.sess.Stroke(k, cells...)
	if err != nil {
		return err
	}
	switch {
	case k == tools.KindColorPicker:
		fmt.Fprintln(i.stdout, i.sess.Color())
	case cmd == nil:
		fmt.Fprintln(i.stdout, "no change")
	default:
		fmt.Fprintln(i.stdout, describe(cmd))
	}
	return nil
}

func describe(cmd *history.Command) string {
	return fmt.Sprintf("%s: %d pixels -> %v", cmd.Label(), cmd.Len(), cmd.To())
}

func (i *interactiveCmd) export(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("export requires a file and an optional scale")
	}
	scale := 1
	if len(args) == 2 {
		n, err := expectInts(args[1:], 1, "export")
		if err != nil {
			return err
		}
		scale = n[0]
	}
	if scale < 1 {
		return errors.New("export: scale must be at least 1")
	}
	path := i.outputPath(args[0])
	if err := codec.ExportImage(path, render.Scale(i.sess.Canvas(), scale)); err != nil {
		return err
	}
	i.notifier.Export(path)
	fmt.Fprintf(i.stdout, "exported %s\n", path)
	return nil
}

func (i *interactiveCmd) palette(args []string) error {
	lib := i.sess.Palettes()
	if len(args) == 0 {
		fmt.Fprintln(i.stdout, lib.Current().Name)
		return nil
	}
	switch strings.ToLower(args[0]) {
	case "next":
		fmt.Fprintln(i.stdout, i.sess.PaletteNext().Name)
	case "prev":
		fmt.Fprintln(i.stdout, i.sess.PalettePrev().Name)
	case "list":
		for _, p := range lib.Palettes() {
			fmt.Fprintf(i.stdout, "%s (%d colors)\n", p.Name, p.Len())
		}
	default:
		name := strings.Join(args, " ")
		if !lib.Select(name) {
			return fmt.Errorf("unknown palette %q", name)
		}
		i.sess.SetColor(i.sess.Color())
		fmt.Fprintln(i.stdout, lib.Current().Name)
	}
	return nil
}

func (i *interactiveCmd) label() string {
	if p := i.sess.Path(); p != "" {
		return filepath.Base(p)
	}
	return "sprite"
}

func (i *interactiveCmd) info() {
	snap := i.sess.Snapshot()
	name := snap.Path
	if name == "" {
		name = "untitled"
	}
	if snap.Dirty {
		name += " *"
	}
	fmt.Fprintf(i.stdout, "%s: %dx%d, %d painted, tool %s, color %v, history %d/%d\n",
		name, snap.Width, snap.Height, snap.Painted, snap.ToolName, snap.Color,
		snap.UndoDepth, snap.RedoDepth)
}
