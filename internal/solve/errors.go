package solve

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoConvergence indicates the Newton iteration exhausted its budget
	// or its derivative underflowed before |NPV| met tolerance. Non-fatal:
	// callers substitute a product-chosen default and attach a warning.
	ErrNoConvergence = errors.New("solve: rate iteration did not converge")

	// ErrSeriesTooShort indicates a cash-flow series with fewer than two
	// flows, for which a rate of return is meaningless.
	ErrSeriesTooShort = errors.New("solve: cash-flow series needs at least two flows")
)

// ConvergenceError carries the state of a failed solve for diagnostics
// and warning messages.
type ConvergenceError struct {
	Iterations int
	Residual   decimal.Decimal
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("solve: no convergence after %d iterations (residual %s)",
		e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}
