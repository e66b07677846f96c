package orbital

import "errors"

// Domain errors for density and overlap evaluation.
var (
	// ErrInvalidAlpha indicates a non-positive or non-finite orbital exponent.
	ErrInvalidAlpha = errors.New("orbital: alpha must be positive and finite")

	// ErrInvalidSeparation indicates a negative or non-finite internuclear distance.
	ErrInvalidSeparation = errors.New("orbital: separation R must be non-negative and finite")

	// ErrEmptyRange indicates an empty coordinate range.
	ErrEmptyRange = errors.New("orbital: coordinate range is empty")

	// ErrNonFiniteRange indicates a coordinate range containing NaN or Inf.
	ErrNonFiniteRange = errors.New("orbital: coordinate range contains non-finite values")

	// ErrNotIncreasing indicates a coordinate range that is not strictly increasing.
	ErrNotIncreasing = errors.New("orbital: coordinate range must be strictly increasing")
)
