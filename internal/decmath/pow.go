package decmath

import "github.com/shopspring/decimal"

const powFracTerms = 15

// powFracTail stops the series once a term's magnitude drops below it.
var powFracTail = decimal.New(1, -11)

// PowFrac returns base**frac for frac in [0, 1] and base near 1, via the
// binomial series (1+x)**f = sum C(f,k) x**k with x = base-1. The series
// is truncated at powFracTerms terms, exiting early once a term falls
// below 1e-11.
//
// The calculators use it to discount a stub first coupon period when
// settlement falls between coupon dates, where base = 1+yield stays well
// inside the series' convergence region.
func PowFrac(base, frac decimal.Decimal) (decimal.Decimal, error) {
	if base.Sign() <= 0 {
		return decimal.Decimal{}, &DomainError{Func: "powfrac", Arg: base}
	}
	if frac.IsNegative() || frac.Cmp(one) > 0 {
		return decimal.Decimal{}, &DomainError{Func: "powfrac", Arg: frac}
	}
	if frac.IsZero() || base.Equal(one) {
		return one, nil
	}
	if frac.Equal(one) {
		return base, nil
	}

	x := base.Sub(one)
	coef := one // C(f,k), built incrementally
	xPow := one
	sum := one
	for k := 1; k <= powFracTerms; k++ {
		kd := decimal.NewFromInt(int64(k))
		coef = div(coef.Mul(frac.Sub(kd.Sub(one))), kd)
		xPow = xPow.Mul(x).Round(DivisionPrecision)
		term := coef.Mul(xPow).Round(DivisionPrecision)
		sum = sum.Add(term)
		if term.Abs().Cmp(powFracTail) < 0 {
			break
		}
	}
	return sum, nil
}
