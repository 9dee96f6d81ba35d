package decmath

import "github.com/shopspring/decimal"

// Abramowitz & Stegun 26.2.17 tail-polynomial coefficients for the CDF.
var (
	cdfP = decimal.RequireFromString("0.2316419")
	cdfB = []decimal.Decimal{
		decimal.RequireFromString("0.319381530"),
		decimal.RequireFromString("-0.356563782"),
		decimal.RequireFromString("1.781477937"),
		decimal.RequireFromString("-1.821255978"),
		decimal.RequireFromString("1.330274429"),
	}
)

// Abramowitz & Stegun 26.2.23 rational-polynomial coefficients for the
// inverse CDF.
var (
	invC0 = decimal.RequireFromString("2.515517")
	invC1 = decimal.RequireFromString("0.802853")
	invC2 = decimal.RequireFromString("0.010328")
	invD1 = decimal.RequireFromString("1.432788")
	invD2 = decimal.RequireFromString("0.189269")
	invD3 = decimal.RequireFromString("0.001308")

	// Probabilities are clamped to this band before inversion; beyond it
	// the approximation diverges. Callers pass validated confidence
	// levels, and a tail quantile request has no better answer to give,
	// so the clamp degrades gracefully instead of erroring.
	invPFloor = decimal.New(1, -7)              // 1e-7
	invPCeil  = one.Sub(decimal.New(1, -7))     // 1 - 1e-7
)

// NormPDF returns the standard normal density exp(-x**2/2) / sqrt(2*pi).
func NormPDF(x decimal.Decimal) decimal.Decimal {
	return div(Exp(div(x.Mul(x), two).Neg()), SqrtTwoPi)
}

// NormCDF returns the standard normal cumulative probability using the
// Abramowitz-Stegun 26.2.17 polynomial tail, reflected for x < 0.
func NormCDF(x decimal.Decimal) decimal.Decimal {
	if x.IsNegative() {
		return one.Sub(NormCDF(x.Neg()))
	}
	t := div(one, one.Add(cdfP.Mul(x)))
	poly := zero
	tp := one
	for _, b := range cdfB {
		tp = tp.Mul(t).Round(DivisionPrecision)
		poly = poly.Add(b.Mul(tp))
	}
	return one.Sub(NormPDF(x).Mul(poly)).Round(DivisionPrecision)
}

// NormInvCDF returns the x with NormCDF(x) = p, via the Abramowitz-Stegun
// 26.2.23 approximation with t = sqrt(-2*ln(p)) and the p <-> 1-p
// symmetry. p is silently clamped to (1e-7, 1-1e-7).
func NormInvCDF(p decimal.Decimal) decimal.Decimal {
	if p.Cmp(invPFloor) < 0 {
		p = invPFloor
	}
	if p.Cmp(invPCeil) > 0 {
		p = invPCeil
	}

	tail := p
	negate := true
	if p.Cmp(half) > 0 {
		tail = one.Sub(p)
		negate = false
	}

	lnTail, _ := Ln(tail) // tail in [1e-7, 0.5], never a domain error
	t, _ := Sqrt(two.Neg().Mul(lnTail))

	num := invC0.Add(invC1.Mul(t)).Add(invC2.Mul(t).Mul(t).Round(DivisionPrecision))
	den := one.Add(invD1.Mul(t)).
		Add(invD2.Mul(t).Mul(t).Round(DivisionPrecision)).
		Add(invD3.Mul(t).Mul(t).Mul(t).Round(DivisionPrecision))
	x := t.Sub(div(num, den))

	if negate {
		return x.Neg()
	}
	return x
}
