package main

import (
	"fmt"
	"strings"

	"github.com/example/spritery/internal/palette"
)

// paletteCmd lists, prints and converts palettes.
type paletteCmd struct {
	command
	action string
	args   []string
}

func parsePaletteCmd(args []string, r *root) (*paletteCmd, error) {
	p := &paletteCmd{command: newCommand(r, "palette")}
	p.fs.Usage = usageFunc(p)
	if err := p.fs.Parse(args); err != nil {
		return nil, err
	}
	if p.fs.NArg() < 1 {
		return nil, &UsageError{of: p}
	}
	p.action = p.fs.Arg(0)
	p.args = p.fs.Args()[1:]
	want := map[string]int{"list": 0, "show": 1, "convert": 2, "export": 2}
	n, ok := want[p.action]
	if !ok || len(p.args) != n {
		return nil, &UsageError{of: p}
	}
	return p, nil
}

func (p *paletteCmd) Run() error {
	switch p.action {
	case "list":
		return p.list()
	case "show":
		pal, err := p.find(p.args[0])
		if err != nil {
			return err
		}
		return palette.WritePaintNet(p.stdout, pal)
	case "convert":
		pal, err := palette.LoadFile(p.args[0])
		if err != nil {
			return err
		}
		return p.export(pal, p.args[1])
	case "export":
		pal, err := p.find(p.args[0])
		if err != nil {
			return err
		}
		return p.export(pal, p.args[1])
	}
	return &UsageError{of: p}
}

func (p *paletteCmd) list() error {
	lib := p.palettes()
	current := lib.Current().Name
	for _, pal := range lib.Palettes() {
		mark := " "
		if pal.Name == current {
			mark = "*"
		}
		fmt.Fprintf(p.stdout, "%s %-16s %3d colors  %s\n", mark, pal.Name, pal.Len(), pal.Source)
	}
	return nil
}

func (p *paletteCmd) find(name string) (*palette.Palette, error) {
	for _, pal := range p.palettes().Palettes() {
		if strings.EqualFold(pal.Name, name) {
			return pal, nil
		}
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

func (p *paletteCmd) export(pal *palette.Palette, out string) error {
	path := p.outputPath(out)
	if err := palette.SaveFile(path, pal); err != nil {
		return err
	}
	fmt.Fprintf(p.stdout, "wrote %s (%d colors)\n", path, pal.Len())
	p.notifier.Export(path)
	return nil
}
