package solve

import "github.com/shopspring/decimal"

// CashFlow is one (period, amount) pair. Periods count whole compounding
// intervals from valuation time; amounts are signed (outflows negative).
type CashFlow struct {
	Period int
	Amount decimal.Decimal
}

// Series is an ordered cash-flow sequence, ascending by period.
type Series []CashFlow

// divisionPrecision mirrors the kernel-wide decimal division rounding.
const divisionPrecision = 28

var one = decimal.New(1, 0)

// NPV returns the net present value of s at the given periodic rate.
// The discount factor (1+r)^t is built up by repeated multiplication
// across periods.
func NPV(s Series, rate decimal.Decimal) decimal.Decimal {
	npv, _ := npvDerivative(s, rate)
	return npv
}

// npvDerivative returns NPV(r) and its analytic derivative
// d/dr NPV = sum -t*CF_t/(1+r)^(t+1).
func npvDerivative(s Series, rate decimal.Decimal) (npv, deriv decimal.Decimal) {
	onePlus := one.Add(rate)
	factor := one // (1+r)^period, advanced as the series walks forward
	period := 0

	for _, cf := range s {
		for period < cf.Period {
			factor = factor.Mul(onePlus).Round(divisionPrecision)
			period++
		}
		pv := cf.Amount.DivRound(factor, divisionPrecision)
		npv = npv.Add(pv)

		t := decimal.NewFromInt(int64(cf.Period))
		d := t.Neg().Mul(cf.Amount).
			DivRound(factor.Mul(onePlus), divisionPrecision)
		deriv = deriv.Add(d)
	}
	return npv, deriv
}
