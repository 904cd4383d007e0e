package iconkit

import (
	"fmt"

	"github.com/gogpu/iconkit/internal/mask"
)

// RoundCorners returns an RGBA copy of p whose corners are cut to a radius
// of the given size. Each pixel's alpha is scaled by the anti-aliased
// coverage of a rounded rectangle, so pixels fully outside an arc become
// transparent and the interior is untouched. The radius is clamped to half
// the shorter side.
//
// RoundCorners is the inverse preparation of Inpaint: it produces the
// rounded-corner asset that Inpaint later flattens back to a square.
func RoundCorners(p *Pixmap, radius int) (*Pixmap, error) {
	if p == nil {
		return nil, ErrNilPixmap
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	out := p.ToRGBA()
	m := mask.RoundedRect(p.width, p.height, float64(radius))
	for y := range out.height {
		for x := range out.width {
			cov := uint32(m.AlphaAt(x, y).A)
			if cov == 255 {
				continue
			}
			c := out.NRGBAAt(x, y)
			c.A = uint8((uint32(c.A)*cov + 127) / 255)
			out.SetNRGBA(x, y, c)
		}
	}

	Logger().Debug("iconkit: corners rounded", "radius", radius,
		"width", out.width, "height", out.height)
	return out, nil
}
