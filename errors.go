package iconkit

import "errors"

// Common errors for iconkit operations.
var (
	// ErrInvalidSize is returned when a width, height or size is non-positive.
	ErrInvalidSize = errors.New("iconkit: invalid size")

	// ErrInvalidWeights is returned when gradient blend weights are negative
	// or do not sum to 1.
	ErrInvalidWeights = errors.New("iconkit: invalid gradient weights")

	// ErrNilPixmap is returned when a required pixmap argument is nil.
	ErrNilPixmap = errors.New("iconkit: nil pixmap")

	// ErrInvalidRadius is returned for a negative corner radius.
	ErrInvalidRadius = errors.New("iconkit: invalid corner radius")

	// ErrFormat is returned for an unknown pixel format.
	ErrFormat = errors.New("iconkit: unknown pixel format")
)
