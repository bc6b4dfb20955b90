//go:build !(windows || (cgo && (linux || freebsd || openbsd || netbsd || dragonfly || darwin)))

package clipboard

import "errors"

var errUnsupported = errors.New("clipboard needs cgo on this platform")

type system struct{}

func (system) writeImage([]byte) error    { return errUnsupported }
func (system) readImage() ([]byte, error) { return nil, errUnsupported }
func (system) writeText(string) error     { return errUnsupported }
func (system) readText() (string, error)  { return "", errUnsupported }
