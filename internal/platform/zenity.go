package platform

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Zenity implements Dialogs with the zenity helper found on most Linux
// desktops.
type Zenity struct {
	run runner
}

// NewZenity returns zenity backed dialogs.
func NewZenity() *Zenity { return &Zenity{run: execRunner(1, "")} }

func (z *Zenity) ChooseFile(ctx context.Context, title string, patterns []string) (string, error) {
	args := []string{"--file-selection", "--title=" + title}
	if len(patterns) > 0 {
		args = append(args, "--file-filter=Images | "+strings.Join(patterns, " "))
	}
	return z.ask(ctx, args...)
}

func (z *Zenity) ChooseFileName(ctx context.Context, title, suggested string) (string, error) {
	args := []string{"--file-selection", "--save", "--confirm-overwrite", "--title=" + title}
	if suggested != "" {
		args = append(args, "--filename="+suggested)
	}
	return z.ask(ctx, args...)
}

func (z *Zenity) ChooseColor(ctx context.Context, title string, initial color.NRGBA) (color.NRGBA, bool, error) {
	out, err := z.ask(ctx, "--color-selection", "--show-palette", "--title="+title,
		fmt.Sprintf("--color=rgba(%d,%d,%d,%s)", initial.R, initial.G, initial.B, alphaString(initial.A)))
	if err != nil || out == "" {
		return color.NRGBA{}, false, err
	}
	c, err := parseCSSColor(out)
	if err != nil {
		return color.NRGBA{}, false, err
	}
	return c, true, nil
}

func (z *Zenity) ask(ctx context.Context, args ...string) (string, error) {
	out, err := z.run(ctx, "zenity", args...)
	if errors.Is(err, errCancelled) {
		return "", nil
	}
	return out, err
}

func alphaString(a uint8) string {
	return strconv.FormatFloat(float64(a)/255, 'f', 3, 64)
}

// parseCSSColor reads the rgb(...) or rgba(...) strings zenity prints, and
// #RRGGBB.
func parseCSSColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	var body string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[5 : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[4 : len(s)-1]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		ch[i] = uint8(v)
	}
	c := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c, nil
}
