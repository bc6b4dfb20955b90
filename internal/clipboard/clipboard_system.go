//go:build windows || (cgo && (linux || freebsd || openbsd || netbsd || dragonfly || darwin))

package clipboard

import (
	"errors"
	"os"
	"runtime"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")
)

func needsDisplay() bool {
	return runtime.GOOS != "windows" && runtime.GOOS != "darwin"
}

func ensureInit() error {
	initOnce.Do(func() {
		if needsDisplay() && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

type system struct{}

func (system) writeImage(png []byte) error {
	if err := ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}

func (system) readImage() ([]byte, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtImage), nil
}

func (system) writeText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (system) readText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
