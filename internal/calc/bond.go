package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/decmath"
	"github.com/san-kum/finquant/internal/solve"
)

// Bond describes a fixed-coupon bond by whole coupon periods remaining.
// StubFraction, when positive, is the fraction of a period between
// settlement and the first coupon; zero means settlement on schedule.
type Bond struct {
	Face         decimal.Decimal
	CouponRate   decimal.Decimal // annual
	Frequency    int             // coupons per year
	Periods      int             // whole coupon periods to maturity
	StubFraction decimal.Decimal
}

// BondPricing annotates a priced bond.
type BondPricing struct {
	DirtyPrice      decimal.Decimal
	CleanPrice      decimal.Decimal
	AccruedInterest decimal.Decimal
}

func (b *Bond) Validate() error {
	if b.Face.Sign() <= 0 {
		return invalidf("bond face must be positive, got %s", b.Face)
	}
	if b.CouponRate.IsNegative() {
		return invalidf("bond coupon rate must be non-negative, got %s", b.CouponRate)
	}
	if b.Frequency <= 0 {
		return invalidf("bond frequency must be positive, got %d", b.Frequency)
	}
	if b.Periods < 1 {
		return invalidf("bond needs at least one period to maturity, got %d", b.Periods)
	}
	if b.StubFraction.IsNegative() || b.StubFraction.Cmp(one) >= 0 {
		return invalidf("bond stub fraction must be in [0,1), got %s", b.StubFraction)
	}
	return nil
}

func (b *Bond) coupon() decimal.Decimal {
	return div(b.Face.Mul(b.CouponRate), decimal.NewFromInt(int64(b.Frequency)))
}

// PriceFromYield discounts the coupon and redemption flows at the given
// annual yield. A stub first period is discounted with the fractional
// power (1+y)^stub via the binomial-series kernel.
func (b *Bond) PriceFromYield(annualYield decimal.Decimal) (*BondPricing, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	y := div(annualYield, decimal.NewFromInt(int64(b.Frequency)))
	onePlus := one.Add(y)
	c := b.coupon()

	pv := decimal.Zero
	factor := one
	for t := 1; t <= b.Periods; t++ {
		factor = factor.Mul(onePlus).Round(divisionPrecision)
		pv = pv.Add(div(c, factor))
	}
	pv = pv.Add(div(b.Face, factor))

	accrued := decimal.Zero
	if b.StubFraction.Sign() > 0 {
		stub, err := decmath.PowFrac(onePlus, b.StubFraction)
		if err != nil {
			return nil, err
		}
		// Flows sit one full period out in the whole-period sum; pull
		// them back to the stub settlement date.
		pv = div(pv.Mul(onePlus), stub)
		accrued = c.Mul(one.Sub(b.StubFraction)).Round(divisionPrecision)
	}

	return &BondPricing{
		DirtyPrice:      pv,
		CleanPrice:      pv.Sub(accrued),
		AccruedInterest: accrued,
	}, nil
}

// YieldToMaturity solves the annual yield equating the discounted flows
// to price. Settlement is assumed on a coupon date (no stub).
func (b *Bond) YieldToMaturity(price decimal.Decimal) (decimal.Decimal, error) {
	if err := b.Validate(); err != nil {
		return decimal.Decimal{}, err
	}
	if price.Sign() <= 0 {
		return decimal.Decimal{}, invalidf("bond price must be positive, got %s", price)
	}
	return b.solveYield(price, b.Periods, b.Face)
}

// YieldToCall solves the annual yield assuming redemption at callPrice
// after callPeriod coupon periods.
func (b *Bond) YieldToCall(price, callPrice decimal.Decimal, callPeriod int) (decimal.Decimal, error) {
	if err := b.Validate(); err != nil {
		return decimal.Decimal{}, err
	}
	if callPeriod < 1 || callPeriod > b.Periods {
		return decimal.Decimal{}, invalidf("call period %d outside 1..%d", callPeriod, b.Periods)
	}
	if callPrice.Sign() <= 0 {
		return decimal.Decimal{}, invalidf("call price must be positive, got %s", callPrice)
	}
	return b.solveYield(price, callPeriod, callPrice)
}

func (b *Bond) solveYield(price decimal.Decimal, horizon int, redemption decimal.Decimal) (decimal.Decimal, error) {
	c := b.coupon()
	series := make(solve.Series, 0, horizon+1)
	series = append(series, solve.CashFlow{Period: 0, Amount: price.Neg()})
	for t := 1; t < horizon; t++ {
		series = append(series, solve.CashFlow{Period: t, Amount: c})
	}
	series = append(series, solve.CashFlow{Period: horizon, Amount: c.Add(redemption)})

	cfg := solve.DefaultConfig()
	cfg.MaxIterations = 40

	guess := div(b.CouponRate, decimal.NewFromInt(int64(b.Frequency)))
	periodic, err := solve.Rate(series, guess, cfg)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return periodic.Mul(decimal.NewFromInt(int64(b.Frequency))), nil
}
