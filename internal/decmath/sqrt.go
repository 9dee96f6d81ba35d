package decmath

import "github.com/shopspring/decimal"

// sqrtIterations is the unconditional Newton budget. Twenty updates from
// a seed within half a decade of the root converge to well past
// DivisionPrecision at every magnitude; running them all keeps the cost
// and the result independent of the input.
const sqrtIterations = 20

// sqrtSeed returns 10^ceil(e/2) for x in [10^e, 10^(e+1)), which is
// within a factor of sqrt(10) of the root at every magnitude.
func sqrtSeed(x decimal.Decimal) decimal.Decimal {
	e := x.NumDigits() + int(x.Exponent()) - 1
	h := e / 2
	if e%2 != 0 && e > 0 {
		h++
	}
	return decimal.New(1, int32(h))
}

// Sqrt returns the square root of x via Newton's method.
//
// Sqrt(0) = 0 and Sqrt(1) = 1 exactly. Negative arguments return a
// DomainError.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	if x.IsNegative() {
		return decimal.Decimal{}, &DomainError{Func: "sqrt", Arg: x}
	}
	if x.IsZero() {
		return zero, nil
	}
	if x.Equal(one) {
		return one, nil
	}

	y := sqrtSeed(x)
	for i := 0; i < sqrtIterations; i++ {
		y = div(y.Add(div(x, y)), two)
	}
	return y, nil
}
