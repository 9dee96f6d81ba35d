package decmath

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDomain indicates an argument outside a function's mathematical domain
// (negative sqrt, non-positive log, acosh below 1). These used to be silent
// sentinel returns in the per-product implementations this package
// replaces; an explicit error keeps a caller that skipped validation from
// receiving a plausible-looking wrong number.
var ErrDomain = errors.New("decmath: argument outside function domain")

// DomainError reports which function rejected which argument.
type DomainError struct {
	Func string
	Arg  decimal.Decimal
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("decmath: %s undefined for argument %s", e.Func, e.Arg)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
