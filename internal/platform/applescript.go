package platform

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
)

// AppleScript implements Dialogs with osascript on macOS.
type AppleScript struct {
	run runner
}

// NewAppleScript returns osascript backed dialogs. osascript exits with
// status 1 and reports error -128 when the user cancels.
func NewAppleScript() *AppleScript { return &AppleScript{run: execRunner(1, "-128")} }

func (a *AppleScript) ChooseFile(ctx context.Context, title string, patterns []string) (string, error) {
	script := fmt.Sprintf("POSIX path of (choose file with prompt %q", title)
	if types := extensions(patterns); len(types) > 0 {
		script += " of type {" + strings.Join(types, ", ") + "}"
	}
	script += ")"
	return a.ask(ctx, script)
}

func (a *AppleScript) ChooseFileName(ctx context.Context, title, suggested string) (string, error) {
	script := fmt.Sprintf("POSIX path of (choose file name with prompt %q", title)
	if suggested != "" {
		script += fmt.Sprintf(" default name %q", filepath.Base(suggested))
	}
	script += ")"
	return a.ask(ctx, script)
}

// ChooseColor uses the system color panel, which has no alpha; the
// returned color is opaque.
func (a *AppleScript) ChooseColor(ctx context.Context, title string, initial color.NRGBA) (color.NRGBA, bool, error) {
	script := fmt.Sprintf("choose color default color {%d, %d, %d}",
		int(initial.R)*257, int(initial.G)*257, int(initial.B)*257)
	out, err := a.ask(ctx, script)
	if err != nil || out == "" {
		return color.NRGBA{}, false, err
	}
	parts := strings.Split(out, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, false, fmt.Errorf("unexpected color reply %q", out)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 65535 {
			return color.NRGBA{}, false, fmt.Errorf("unexpected color reply %q", out)
		}
		ch[i] = uint8(v / 257)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, true, nil
}

func (a *AppleScript) ask(ctx context.Context, script string) (string, error) {
	out, err := a.run(ctx, "osascript", "-e", script)
	if errors.Is(err, errCancelled) {
		return "", nil
	}
	return out, err
}

// extensions turns "*.png" patterns into quoted AppleScript type names.
func extensions(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		ext := strings.TrimPrefix(strings.TrimPrefix(p, "*"), ".")
		if ext == "" || strings.ContainsAny(ext, "*?") {
			continue
		}
		out = append(out, strconv.Quote(ext))
	}
	return out
}
