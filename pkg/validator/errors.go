package validator

import "errors"

var (
	// ErrInvalidBounds is returned when a range has its bounds in the wrong order.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidPattern is returned when a regular expression cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
)
