package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/spritery/assets"
	"github.com/example/spritery/internal/config"
	"github.com/example/spritery/internal/notify"
	"github.com/example/spritery/internal/palette"
	"github.com/example/spritery/internal/platform"
	"github.com/example/spritery/internal/session"
	"github.com/example/spritery/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	config       *config.Config
	notifier     *notify.Notifier
	logger       *log.Logger
	stdout       io.Writer
	stderr       io.Writer
	saveAlerts   bool
	copyAlerts   bool
	exportAlerts bool
	themeName    string
	paletteName  string
	verbose      bool
}

func (r *root) Program() string { return r.program }

func (r *root) FlagSet() *flag.FlagSet { return r.fs }

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(r.program + " " + name)
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("spritery", flag.ContinueOnError),
		program:  "spritery",
		config:   cfg,
		notifier: notify.New(notify.LoadPreferences()),
		logger:   log.New(io.Discard, "", 0),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a sprite")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting")
	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, light or a theme file)")
	r.fs.StringVar(&r.paletteName, "palette", "", "palette selected at start")
	r.fs.BoolVar(&r.verbose, "v", false, "log editing actions to stderr")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.notifier.Enable(notify.EventExport, r.exportAlerts)
	if r.verbose {
		r.logger = log.New(r.stderr, "", log.LstdFlags)
	}
	r.notifier.WithLogger(r.logger)

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "new":
		cmd, err = parseNewCmd(subArgs, r)
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "info":
		cmd, err = parseInfoCmd(subArgs, r)
	case "view":
		cmd, err = parseViewCmd(subArgs, r)
	case "palette":
		cmd, err = parsePaletteCmd(subArgs, r)
	case "grab":
		cmd, err = parseGrabCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd, err = parseVersionCmd(subArgs, r)
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) warnf(format string, args ...any) {
	fmt.Fprintf(r.stderr, "warning: "+format+"\n", args...)
}

// theme resolves the theme name from the flag, SPRITERY_THEME and the
// config, in that order.
func (r *root) theme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SPRITERY_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	loader := theme.NewLoader()
	loader.Extra = r.config.Themes
	t, err := loader.Load(name)
	if err != nil {
		if name != "" && !strings.EqualFold(name, "default") {
			r.warnf("failed to load theme %q: %v. using default.", name, err)
		}
		return theme.Default()
	}
	return t
}

// loadPalettes collects the default palette, the built-in ones and those
// in the configured palette directory.
func (r *root) loadPalettes() ([]*palette.Palette, error) {
	ps := []*palette.Palette{palette.Default()}
	builtin, err := assets.Palettes()
	if err != nil {
		return ps, fmt.Errorf("built-in palettes: %w", err)
	}
	ps = append(ps, builtin...)
	if dir := r.config.PaletteDir; dir != "" {
		loaded, err := palette.LoadDir(dir)
		ps = append(ps, loaded...)
		if err != nil {
			return ps, fmt.Errorf("palettes in %s: %w", dir, err)
		}
	}
	return ps, nil
}

// palettes returns the palette library with the requested palette
// selected.
func (r *root) palettes() *palette.Library {
	ps, err := r.loadPalettes()
	if err != nil {
		r.warnf("%v", err)
	}
	lib := palette.NewLibrary(ps...)
	name := r.paletteName
	if name == "" {
		name = r.config.Palette
	}
	if name != "" && !lib.Select(name) {
		r.warnf("unknown palette %q", name)
	}
	return lib
}

// newSession builds a session wired to the configured viewport,
// palettes, notifications and native dialogs.
func (r *root) newSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithViewport(r.config.Viewport()),
		session.WithPalettes(r.palettes()),
		session.WithNotifier(r.notifier),
		session.WithDialogs(platform.NativeDialogs()),
		session.WithLogger(r.logger),
	}
	return session.New(append(base, opts...)...)
}

// outputPath places bare file names in the configured save directory.
func (r *root) outputPath(path string) string {
	if r.config.SaveDir == "" || path == "" || filepath.IsAbs(path) || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(r.config.SaveDir, path)
}
