package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension indicates non-conformable operands.
	ErrDimension = errors.New("linalg: dimension mismatch")

	// ErrSingular indicates a matrix with no inverse; hard and
	// non-retryable, the requested system has no solution.
	ErrSingular = errors.New("linalg: singular matrix")
)

// DimensionError reports the shapes that failed to conform.
type DimensionError struct {
	Op                     string
	LeftRows, LeftCols     int
	RightRows, RightCols   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("linalg: %s on %dx%d and %dx%d operands",
		e.Op, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimension
}
