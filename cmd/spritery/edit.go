package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/spritery/internal/appstate"
	"github.com/example/spritery/internal/canvas"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/session"
)

// editCmd opens the editor window, optionally on a file.
type editCmd struct {
	command
	file   string
	grid   bool
	status bool
	watch  bool
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	e := &editCmd{command: newCommand(r, "edit")}
	e.fs.Usage = usageFunc(e)
	e.fs.BoolVar(&e.grid, "grid", false, "show the pixel grid")
	e.fs.BoolVar(&e.status, "status", true, "show the status overlay")
	e.fs.BoolVar(&e.watch, "watch", true, "reload palettes when the palette directory changes")
	if err := e.fs.Parse(args); err != nil {
		return nil, err
	}
	switch e.fs.NArg() {
	case 0:
	case 1:
		e.file = e.fs.Arg(0)
	default:
		return nil, &UsageError{of: e}
	}
	return e, nil
}

// loadSession opens the file when it exists. A missing file starts a blank
// canvas that will be saved there.
func (e *editCmd) loadSession() (*session.Session, error) {
	sess := e.newSession()
	if e.file == "" {
		sess.NewCanvas(e.config.Width, e.config.Height)
		return sess, nil
	}
	path := e.outputPath(e.file)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		sess.Replace(canvas.New(e.config.Width, e.config.Height), path)
		return sess, nil
	}
	if err := sess.Open(path); err != nil {
		return nil, err
	}
	return sess, nil
}

func (e *editCmd) Run() error {
	sess, err := e.loadSession()
	if err != nil {
		return err
	}
	title := "Spritery"
	if p := sess.Path(); p != "" {
		title = fmt.Sprintf("Spritery - %s", filepath.Base(p))
	}
	opts := []appstate.Option{
		appstate.WithSession(sess),
		appstate.WithTheme(e.theme()),
		appstate.WithTitle(title),
		appstate.WithGrid(e.grid),
		appstate.WithStatus(e.status),
		appstate.WithSteps(e.config.View.ZoomStep, e.config.View.PanStep),
		appstate.WithNewSize(e.config.Width, e.config.Height),
		appstate.WithLogger(e.logger),
	}
	if dir := e.config.PaletteDir; e.watch && dir != "" {
		w, err := palette.NewWatcher(dir)
		if err != nil {
			e.warnf("watch %s: %v", dir, err)
		} else {
			defer w.Close()
			opts = append(opts, appstate.WithPaletteWatcher(w, e.loadPalettes))
		}
	}
	appstate.New(opts...).Run()
	return nil
}
