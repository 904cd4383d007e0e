package iconkit

import "image/color"

// DetectCornerRadius measures the transparent run at the left end of the
// top row, scanning from x = 0 up to the horizontal center. The first pixel
// with non-zero alpha ends the run and its x is the radius. If the whole
// left half of the row is transparent, or p is nil, the radius is 0.
//
// The measurement assumes a square image with symmetric rounded corners.
func DetectCornerRadius(p *Pixmap) int {
	if p == nil {
		return 0
	}
	center := p.width / 2
	for x := range center {
		if p.AlphaAt(x, 0) > 0 {
			return x
		}
	}
	return 0
}

// donorOffsets is the fixed search order around a pixel, scaled by the
// offset: right, left, down, up, diagonal down-right. The first opaque hit
// wins.
var donorOffsets = [...]struct{ dx, dy int }{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{1, 1},
}

// Inpaint fills every pixel of src that is not fully opaque and returns the
// result as a new RGBA pixmap in which every pixel has alpha 255.
//
// Opaque pixels are copied through. For a non-opaque pixel the search walks
// offsets 1..radius+margin, where radius is DetectCornerRadius(src), and at
// each offset tries the neighbours in donorOffsets order with coordinates
// clamped to the image. The first neighbour with alpha 255 in src donates
// its color; if none does, the fallback color is used. Donors are always
// read from src, never from already filled output, so the result does not
// depend on the order pixels are visited.
func Inpaint(src *Pixmap, opts ...InpaintOption) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	o := defaultInpaintOptions()
	for _, opt := range opts {
		opt(&o)
	}

	radius := DetectCornerRadius(src)
	limit := radius + o.searchMargin

	out, err := NewPixmap(src.width, src.height, FormatRGBA)
	if err != nil {
		return nil, err
	}

	var donated, fallback int
	for y := range src.height {
		for x := range src.width {
			c := src.NRGBAAt(x, y)
			if c.A == 255 {
				out.SetNRGBA(x, y, c)
				continue
			}
			if d, ok := findDonor(src, x, y, limit); ok {
				out.SetNRGBA(x, y, d)
				donated++
				continue
			}
			out.SetRGB(x, y, o.fallback)
			fallback++
		}
	}

	Logger().Debug("iconkit: inpaint done",
		"radius", radius,
		"limit", limit,
		"donated", donated,
		"fallback", fallback)
	return out, nil
}

// findDonor returns the first fully opaque pixel in the search pattern
// around (x, y), reaching out to limit pixels.
func findDonor(src *Pixmap, x, y, limit int) (color.NRGBA, bool) {
	maxX, maxY := src.width-1, src.height-1
	for offset := 1; offset <= limit; offset++ {
		for _, d := range donorOffsets {
			cx := clampInt(x+d.dx*offset, 0, maxX)
			cy := clampInt(y+d.dy*offset, 0, maxY)
			if c := src.NRGBAAt(cx, cy); c.A == 255 {
				return c, true
			}
		}
	}
	return color.NRGBA{}, false
}

// clampInt clamps an int to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
