//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package grab

import "image"

func screenImage(image.Rectangle) (image.Image, error) { return nil, ErrUnsupported }
