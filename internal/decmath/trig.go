package decmath

import "github.com/shopspring/decimal"

// cosTaylorTerms covers the worst reduced argument (just under 2*pi): the
// final term is ~ (2*pi)^40/40! ~ 1e-16 of the leading one.
const cosTaylorTerms = 20

// Cos returns cos(x), reducing the argument modulo 2*pi before summing
// the alternating Taylor series.
func Cos(x decimal.Decimal) decimal.Decimal {
	turns := div(x, TwoPi).Floor()
	r := x.Sub(turns.Mul(TwoPi)).Round(DivisionPrecision)

	r2 := r.Mul(r).Round(DivisionPrecision)
	term := one
	sum := one
	for n := 1; n < cosTaylorTerms; n++ {
		term = div(term.Mul(r2), decimal.NewFromInt(int64(2*n-1)*int64(2*n))).Neg()
		sum = sum.Add(term)
	}
	return sum
}

// Sinh returns (e**x - e**-x) / 2.
func Sinh(x decimal.Decimal) decimal.Decimal {
	return div(Exp(x).Sub(Exp(x.Neg())), two)
}

// Cosh returns (e**x + e**-x) / 2.
func Cosh(x decimal.Decimal) decimal.Decimal {
	return div(Exp(x).Add(Exp(x.Neg())), two)
}

// Acosh returns ln(x + sqrt(x**2 - 1)) for x >= 1. Arguments below 1
// return a DomainError.
func Acosh(x decimal.Decimal) (decimal.Decimal, error) {
	if x.Cmp(one) < 0 {
		return decimal.Decimal{}, &DomainError{Func: "acosh", Arg: x}
	}
	s, err := Sqrt(x.Mul(x).Sub(one))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Ln(x.Add(s))
}
