package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"os/exec"
	"strings"
)

// ErrUnsupported is returned by dialogs on hosts without a dialog helper.
var ErrUnsupported = errors.New("native dialogs are not supported on this platform")

// Dialogs opens native pickers. A cancelled dialog returns a zero value
// and a nil error.
type Dialogs interface {
	// ChooseFile asks for an existing file. Patterns such as "*.png"
	// restrict the selection.
	ChooseFile(ctx context.Context, title string, patterns []string) (string, error)
	// ChooseFileName asks for a path to write, starting at suggested.
	ChooseFileName(ctx context.Context, title, suggested string) (string, error)
	// ChooseColor asks for a color. ok is false when cancelled.
	ChooseColor(ctx context.Context, title string, initial color.NRGBA) (c color.NRGBA, ok bool, err error)
}

// runner executes a helper program and returns its trimmed stdout.
type runner func(ctx context.Context, name string, args ...string) (string, error)

// errCancelled is what a runner reports when the helper signals the user
// dismissed the dialog.
var errCancelled = errors.New("dialog cancelled")

func execRunner(cancelCode int, cancelText string) runner {
	return func(ctx context.Context, name string, args ...string) (string, error) {
		var stdout, stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err := cmd.Run()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && exitErr.ExitCode() == cancelCode {
				if cancelText == "" || strings.Contains(stderr.String(), cancelText) {
					return "", errCancelled
				}
			}
			msg := strings.TrimSpace(stderr.String())
			if msg != "" {
				return "", fmt.Errorf("%s: %w: %s", name, err, msg)
			}
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return strings.TrimSpace(stdout.String()), nil
	}
}

// unsupported is the Dialogs of hosts with no helper.
type unsupported struct{}

func (unsupported) ChooseFile(context.Context, string, []string) (string, error) {
	return "", ErrUnsupported
}

func (unsupported) ChooseFileName(context.Context, string, string) (string, error) {
	return "", ErrUnsupported
}

func (unsupported) ChooseColor(context.Context, string, color.NRGBA) (color.NRGBA, bool, error) {
	return color.NRGBA{}, false, ErrUnsupported
}

// Unsupported returns Dialogs that always fail with ErrUnsupported.
func Unsupported() Dialogs { return unsupported{} }
