package iconkit

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is an opaque color with 8-bit red, green and blue components.
type RGB struct {
	R, G, B uint8
}

// Named colors used by the icon pipeline.
var (
	// GradientTopLeft is the purple start of the background gradient.
	GradientTopLeft = RGB{R: 165, G: 90, B: 220}

	// GradientBottomRight is the blue end of the background gradient.
	GradientBottomRight = RGB{R: 91, G: 136, B: 241}

	// FallbackFill is used by Inpaint when no opaque donor is in reach.
	FallbackFill = RGB{R: 91, G: 136, B: 241}
)

// NRGBA returns c as a fully opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String formats the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates each channel from c to other at t and floors the result.
// t is clamped to [0, 1], so the result never leaves the channel range
// spanned by the two endpoints.
func (c RGB) Lerp(other RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Floor(float64(a) + (float64(b)-float64(a))*t)
	return uint8(clamp255(v))
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 clamps a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
