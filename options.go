package iconkit

// DefaultSearchMargin is how far past the corner radius Inpaint looks for
// an opaque donor pixel.
const DefaultSearchMargin = 50

// InpaintOption configures Inpaint.
//
// Example:
//
//	out, err := iconkit.Inpaint(icon,
//	    iconkit.WithSearchMargin(20),
//	    iconkit.WithFallback(iconkit.RGB{R: 0, G: 0, B: 0}))
type InpaintOption func(*inpaintOptions)

// inpaintOptions holds the configuration for a single Inpaint call.
type inpaintOptions struct {
	searchMargin int
	fallback     RGB
}

// defaultInpaintOptions returns the default inpaint options.
func defaultInpaintOptions() inpaintOptions {
	return inpaintOptions{
		searchMargin: DefaultSearchMargin,
		fallback:     FallbackFill,
	}
}

// WithSearchMargin sets how many pixels beyond the detected corner radius
// the donor search covers. Negative values are treated as 0.
func WithSearchMargin(margin int) InpaintOption {
	return func(o *inpaintOptions) {
		o.searchMargin = max(margin, 0)
	}
}

// WithFallback sets the color used when no opaque donor is found.
func WithFallback(c RGB) InpaintOption {
	return func(o *inpaintOptions) {
		o.fallback = c
	}
}
