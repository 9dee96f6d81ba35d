package decmath

import "github.com/shopspring/decimal"

// expTaylorTerms is the series length on the reduced argument. With
// |reduced| <= 2 the 29th term is below 2^29/29! ~ 6e-23, past what
// DivisionPrecision can hold.
const expTaylorTerms = 30

// Exp returns e**x.
//
// The argument is reduced by repeated halving until |x| <= 2 (counting k
// halvings), the Taylor series is summed on the reduced argument, and the
// reduction is undone by squaring k times using exp(x) = exp(x/2)**2.
// Reduction bounds the precision the series needs regardless of |x|.
func Exp(x decimal.Decimal) decimal.Decimal {
	reduced := x
	halvings := 0
	for reduced.Abs().Cmp(two) > 0 {
		reduced = div(reduced, two)
		halvings++
	}

	term := one
	sum := one
	for n := 1; n < expTaylorTerms; n++ {
		term = div(term.Mul(reduced), decimal.NewFromInt(int64(n)))
		sum = sum.Add(term)
	}

	for i := 0; i < halvings; i++ {
		// Round after each squaring: decimal multiplication is exact, so
		// the scale would otherwise double per squaring.
		sum = sum.Mul(sum).Round(DivisionPrecision)
	}
	return sum
}
