//go:build linux || freebsd || openbsd || netbsd || dragonfly

package grab

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

func screenImage(rect image.Rectangle) (image.Image, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}
	rect = rect.Intersect(image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels)))
	if rect.Empty() {
		return nil, fmt.Errorf("region outside the %dx%d screen", screen.WidthInPixels, screen.HeightInPixels)
	}

	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(screen.Root),
		int16(rect.Min.X), int16(rect.Min.Y), uint16(rect.Dx()), uint16(rect.Dy()), ^uint32(0)).Reply()
	if err != nil {
		return nil, fmt.Errorf("screen pixels: %w", err)
	}
	return decodeZPixmap(setup.PixmapFormats, reply, rect.Dx(), rect.Dy())
}
