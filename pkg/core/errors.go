package core

import "errors"

// Construction-time precondition failures for malformed scene data. These are
// fail-fast: a well-formed scene never produces them, and silently degrading
// the render would corrupt output without signal.
var (
	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = errors.New("degenerate vector: cannot normalize zero-length vector")

	// ErrNonInvertibleTransform is returned when a singular matrix is used
	// where an invertible transform is required.
	ErrNonInvertibleTransform = errors.New("non-invertible transform: matrix is singular")

	// ErrInvalidShapeParameters is returned when shape bounds are malformed,
	// e.g. a cylinder whose minimum exceeds its maximum.
	ErrInvalidShapeParameters = errors.New("invalid shape parameters")
)
