package filters

import "errors"

// Sentinel errors returned by buffer construction, pixel accessors,
// compositing, and filter-spec parsing. All of them signal programmer or
// configuration mistakes; none are retried or silently corrected.
var (
	// ErrInvalidDimensions is returned when a pixel buffer is constructed
	// from data whose length does not equal width*height*4.
	ErrInvalidDimensions = errors.New("filters: data length does not match width*height*4")

	// ErrIndexOutOfRange is returned by channel accessors called with a
	// negative or out-of-bounds coordinate or channel index.
	ErrIndexOutOfRange = errors.New("filters: pixel coordinate or channel out of range")

	// ErrDimensionMismatch is returned when compositing buffers of unequal size.
	ErrDimensionMismatch = errors.New("filters: pixmap dimensions do not match")

	// ErrInvalidBlendMode is returned for a blend mode name or value outside
	// the recognized set.
	ErrInvalidBlendMode = errors.New("filters: unrecognized blend mode")
)
