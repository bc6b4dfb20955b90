package grab

import (
	"fmt"
	"image"

	"github.com/jezek/xgb/xproto"
)

// decodeZPixmap converts a BGR(X) ZPixmap reply to an opaque image. Only
// depth 32 carries alpha; the padding byte of depth 24 is ignored.
func decodeZPixmap(formats []xproto.Format, reply *xproto.GetImageReply, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty geometry %dx%d", width, height)
	}
	if reply == nil || len(reply.Data) == 0 {
		return nil, fmt.Errorf("screen pixels: empty image data")
	}

	bitsPerPixel := 0
	for _, format := range formats {
		if format.Depth == reply.Depth {
			bitsPerPixel = int(format.BitsPerPixel)
			break
		}
	}
	if bitsPerPixel == 0 {
		return nil, fmt.Errorf("unsupported depth %d", reply.Depth)
	}
	bytesPerPixel := bitsPerPixel / 8
	if bytesPerPixel < 3 {
		return nil, fmt.Errorf("unsupported pixel format %d bpp", bitsPerPixel)
	}

	stride := len(reply.Data) / height
	if stride*height != len(reply.Data) || stride < width*bytesPerPixel {
		return nil, fmt.Errorf("screen pixels: unexpected stride")
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := reply.Data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			off := x * bytesPerPixel
			a := byte(0xFF)
			if reply.Depth == 32 && bytesPerPixel >= 4 {
				a = row[off+3]
			}
			pix := img.PixOffset(x, y)
			img.Pix[pix+0] = row[off+2]
			img.Pix[pix+1] = row[off+1]
			img.Pix[pix+2] = row[off]
			img.Pix[pix+3] = a
		}
	}
	return img, nil
}
