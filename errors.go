package tracer

import "errors"

// Errors returned by the compositor, warp and loader.
var (
	// ErrNilBuffer is returned when a required pixel buffer is nil.
	ErrNilBuffer = errors.New("tracer: nil pixel buffer")

	// ErrSizeMismatch is returned when two buffers that must share
	// dimensions do not.
	ErrSizeMismatch = errors.New("tracer: buffer dimensions differ")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("tracer: invalid dimensions")

	// ErrDataTooSmall is returned when raw pixel data is shorter than
	// width*height*4 bytes.
	ErrDataTooSmall = errors.New("tracer: data buffer too small")

	// ErrUnknownEvent is returned when an event kind name is not recognized.
	ErrUnknownEvent = errors.New("tracer: unknown event kind")
)
