package decmath

import "github.com/shopspring/decimal"

// lnIterations is the fixed Newton budget for inverting Exp. The initial
// guess lands within ~0.7 of the root, so convergence is quadratic from
// the first step; 35 iterations keeps the budget unconditional.
const lnIterations = 35

// Ln returns the natural logarithm of x via Newton's method on
// exp(y) = x, i.e. y <- y - 1 + x/exp(y).
//
// Ln(1) = 0 exactly. Non-positive arguments return a DomainError.
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	if x.Sign() <= 0 {
		return decimal.Decimal{}, &DomainError{Func: "ln", Arg: x}
	}
	if x.Equal(one) {
		return zero, nil
	}

	// Initial guess: scale the argument into (0.5, 2) by powers of e,
	// counting each scale step as one unit of the log, then add x-1 as
	// the near-1 first-order estimate.
	guess := zero
	scaled := x
	for scaled.Cmp(two) >= 0 {
		scaled = div(scaled, E)
		guess = guess.Add(one)
	}
	for scaled.Cmp(half) <= 0 {
		scaled = scaled.Mul(E).Round(DivisionPrecision)
		guess = guess.Sub(one)
	}
	guess = guess.Add(scaled.Sub(one))

	y := guess
	for i := 0; i < lnIterations; i++ {
		y = y.Sub(one).Add(div(x, Exp(y)))
	}
	return y, nil
}
