package iconkit

import (
	"fmt"
	"image/color"
)

// FeatureFilter selects reference pixels to copy onto the background.
// A pixel matches when alpha, red and green are strictly above their
// minimums and blue is strictly below MaxBlue.
type FeatureFilter struct {
	MinAlpha uint8
	MinRed   uint8
	MinGreen uint8
	MaxBlue  uint8
}

// BoltFilter returns the filter that picks the yellow lightning bolt out of
// the previous icon.
func BoltFilter() FeatureFilter {
	return FeatureFilter{
		MinAlpha: 200,
		MinRed:   200,
		MinGreen: 200,
		MaxBlue:  150,
	}
}

// Match reports whether c is a feature pixel.
func (f FeatureFilter) Match(c color.NRGBA) bool {
	return c.A > f.MinAlpha && c.G > f.MinGreen && c.R > f.MinRed && c.B < f.MaxBlue
}

// Overlay copies the feature pixels of ref over base and returns the result
// as a new RGB pixmap. Neither input is modified. A ref of a different size
// is resampled to the size of base first.
func Overlay(base, ref *Pixmap, filter FeatureFilter) (*Pixmap, error) {
	if base == nil || ref == nil {
		return nil, ErrNilPixmap
	}

	if ref.width != base.width || ref.height != base.height {
		Logger().Debug("iconkit: resampling overlay reference",
			"from_width", ref.width, "from_height", ref.height,
			"to_width", base.width, "to_height", base.height)
		resized, err := ref.Resize(base.width, base.height)
		if err != nil {
			return nil, err
		}
		ref = resized
	}

	out := base.ToRGB()
	copied := 0
	for y := range out.height {
		for x := range out.width {
			c := ref.NRGBAAt(x, y)
			if !filter.Match(c) {
				continue
			}
			out.SetRGB(x, y, RGB{R: c.R, G: c.G, B: c.B})
			copied++
		}
	}

	Logger().Debug("iconkit: overlay applied", "copied", copied,
		"total", out.width*out.height)
	return out, nil
}

// ComposeIcon renders the gradient background and overlays the features
// of the image at refPath. If the reference cannot be loaded the failure is
// logged and the plain gradient is returned without error.
func ComposeIcon(size int, params GradientParams, refPath string, filter FeatureFilter) (*Pixmap, error) {
	bg, err := Compose(size, params)
	if err != nil {
		return nil, err
	}

	ref, err := LoadPixmap(refPath)
	if err != nil {
		Logger().Warn("iconkit: overlay reference unavailable, using gradient only",
			"path", refPath, "error", err)
		return bg, nil
	}

	out, err := Overlay(bg, ref, filter)
	if err != nil {
		return nil, fmt.Errorf("iconkit: overlay: %w", err)
	}
	return out, nil
}
