// Package mask rasterizes coverage masks for icon shapes.
package mask

import (
	"image"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that a quarter curve
// approximates a circular arc.
const kappa = 0.5522847498

// RoundedRect returns a width×height coverage mask of a rectangle with
// circular corners of the given radius. Coverage is anti-aliased: 255 inside,
// 0 outside, partial along the arcs. The radius is clamped to half the
// shorter side; a radius <= 0 yields a fully covered mask.
func RoundedRect(width, height int, radius float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	if radius <= 0 {
		for i := range dst.Pix {
			dst.Pix[i] = 0xff
		}
		return dst
	}

	w, h := float32(width), float32(height)
	r := float32(min(radius, float64(min(width, height))/2))
	k := r * kappa

	var z vector.Rasterizer
	z.Reset(width, height)

	z.MoveTo(r, 0)
	z.LineTo(w-r, 0)
	z.CubeTo(w-r+k, 0, w, r-k, w, r)
	z.LineTo(w, h-r)
	z.CubeTo(w, h-r+k, w-r+k, h, w-r, h)
	z.LineTo(r, h)
	z.CubeTo(r-k, h, 0, h-r+k, 0, h-r)
	z.LineTo(0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.ClosePath()

	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
