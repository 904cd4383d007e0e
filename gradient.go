package iconkit

import (
	"fmt"
	"math"
)

// weightEpsilon is the tolerance when checking that blend weights sum to 1.
const weightEpsilon = 1e-9

// GradientParams describes the diagonal icon background.
//
// The interpolation parameter at (x, y) is
//
//	t = WeightX*x/(size-1) + WeightY*y/(size-1)
//
// so the top-left pixel is exactly TopLeft and the bottom-right pixel is
// exactly BottomRight. Unequal weights tilt the gradient towards one axis.
type GradientParams struct {
	TopLeft     RGB     // Color at t = 0
	BottomRight RGB     // Color at t = 1
	WeightX     float64 // Contribution of the normalized x position
	WeightY     float64 // Contribution of the normalized y position
}

// DefaultGradient returns the purple-to-blue icon background, weighted 0.7
// horizontally and 0.3 vertically.
func DefaultGradient() GradientParams {
	return GradientParams{
		TopLeft:     GradientTopLeft,
		BottomRight: GradientBottomRight,
		WeightX:     0.7,
		WeightY:     0.3,
	}
}

// Validate checks that the weights are non-negative and sum to 1.
func (g GradientParams) Validate() error {
	if g.WeightX < 0 || g.WeightY < 0 || math.Abs(g.WeightX+g.WeightY-1) > weightEpsilon {
		return fmt.Errorf("%w: x=%v y=%v", ErrInvalidWeights, g.WeightX, g.WeightY)
	}
	return nil
}

// T returns the interpolation parameter for (x, y) in a size×size grid.
func (g GradientParams) T(x, y, size int) float64 {
	if size <= 1 {
		return 0
	}
	d := float64(size - 1)
	return clamp01(g.WeightX*(float64(x)/d) + g.WeightY*(float64(y)/d))
}

// ColorAt returns the gradient color for (x, y) in a size×size grid.
func (g GradientParams) ColorAt(x, y, size int) RGB {
	return g.TopLeft.Lerp(g.BottomRight, g.T(x, y, size))
}

// Compose renders a size×size opaque gradient background.
// The result has no alpha channel.
func Compose(size int, params GradientParams) (*Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pm, err := NewPixmap(size, size, FormatRGB)
	if err != nil {
		return nil, err
	}
	for y := range size {
		for x := range size {
			pm.SetRGB(x, y, params.ColorAt(x, y, size))
		}
	}

	Logger().Debug("iconkit: gradient composed",
		"size", size,
		"from", params.TopLeft.String(),
		"to", params.BottomRight.String())
	return pm, nil
}
