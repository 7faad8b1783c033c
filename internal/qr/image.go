package qr

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

func scale(src image.Image, size int) image.Image {
	if src.Bounds().Dx() == size {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	// QR codes are flat black/white, lossless keeps them scannable
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
