package features

import "errors"

// Predefined errors for the features package.
var (
	// ErrInvalidFeature indicates a value that does not satisfy the
	// feature contract (nil reference or missing ID).
	ErrInvalidFeature = errors.New("invalid feature")

	// ErrFeatureNotFound indicates the layer has no feature with the
	// requested ID.
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrMalformedInput indicates serialized input is missing required
	// fields or has the wrong shape.
	ErrMalformedInput = errors.New("malformed input")
)
