package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize resamples src to width×height with the Catmull-Rom kernel.
// The result keeps straight alpha. When src already has the requested size
// it is copied unchanged.
func Resize(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst, nil
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
