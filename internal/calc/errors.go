package calc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a calculator input that fails domain
// validation before any kernel call is made.
var ErrInvalidInput = errors.New("calc: invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
