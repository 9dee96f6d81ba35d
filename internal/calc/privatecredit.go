package calc

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/solve"
)

// Tranche describes a private-credit tranche bought at PurchasePrice with
// an upfront fee rebated to the investor at close.
type Tranche struct {
	Principal      decimal.Decimal
	CouponRate     decimal.Decimal // annual
	Frequency      int             // payments per year
	TermPeriods    int
	PurchasePrice  decimal.Decimal
	UpfrontFeeRate decimal.Decimal // of principal, reduces net outlay
	CallPeriod     int             // 0 = non-callable
	CallPremium    decimal.Decimal // of principal, added at call
}

// TrancheYield annotates solved yields. When the iteration fails to
// converge the affected yield falls back to the nominal coupon rate and a
// warning explains the substitution; the computation never aborts.
type TrancheYield struct {
	YieldToMaturity decimal.Decimal
	YieldToCall     decimal.Decimal // zero when non-callable
	NetOutlay       decimal.Decimal
	Warnings        []string
}

func (tr *Tranche) Validate() error {
	if tr.Principal.Sign() <= 0 {
		return invalidf("tranche principal must be positive, got %s", tr.Principal)
	}
	if tr.CouponRate.IsNegative() {
		return invalidf("tranche coupon must be non-negative, got %s", tr.CouponRate)
	}
	if tr.Frequency <= 0 {
		return invalidf("tranche frequency must be positive, got %d", tr.Frequency)
	}
	if tr.TermPeriods < 1 {
		return invalidf("tranche term must be at least one period, got %d", tr.TermPeriods)
	}
	if tr.PurchasePrice.Sign() <= 0 {
		return invalidf("tranche purchase price must be positive, got %s", tr.PurchasePrice)
	}
	if tr.UpfrontFeeRate.IsNegative() || tr.UpfrontFeeRate.Cmp(one) >= 0 {
		return invalidf("upfront fee rate must be in [0,1), got %s", tr.UpfrontFeeRate)
	}
	if tr.CallPeriod < 0 || tr.CallPeriod > tr.TermPeriods {
		return invalidf("call period %d outside 0..%d", tr.CallPeriod, tr.TermPeriods)
	}
	return nil
}

// Compute solves yield-to-maturity and, for callable tranches,
// yield-to-call, both annualized.
func (tr *Tranche) Compute() (*TrancheYield, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	outlay := tr.PurchasePrice.Sub(tr.Principal.Mul(tr.UpfrontFeeRate)).Round(divisionPrecision)
	if outlay.Sign() <= 0 {
		return nil, invalidf("upfront fee exceeds purchase price")
	}

	res := &TrancheYield{NetOutlay: outlay}

	ytm, err := tr.solve(outlay, tr.TermPeriods, tr.Principal)
	if err != nil {
		if !errors.Is(err, solve.ErrNoConvergence) {
			return nil, err
		}
		ytm = tr.CouponRate
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("yield-to-maturity iteration failed (%v); using nominal coupon %s", err, tr.CouponRate))
	}
	res.YieldToMaturity = ytm

	if tr.CallPeriod > 0 {
		redemption := tr.Principal.Add(tr.Principal.Mul(tr.CallPremium)).Round(divisionPrecision)
		ytc, err := tr.solve(outlay, tr.CallPeriod, redemption)
		if err != nil {
			if !errors.Is(err, solve.ErrNoConvergence) {
				return nil, err
			}
			ytc = tr.CouponRate
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("yield-to-call iteration failed (%v); using nominal coupon %s", err, tr.CouponRate))
		}
		res.YieldToCall = ytc
	}

	return res, nil
}

func (tr *Tranche) solve(outlay decimal.Decimal, horizon int, redemption decimal.Decimal) (decimal.Decimal, error) {
	freq := decimal.NewFromInt(int64(tr.Frequency))
	coupon := div(tr.Principal.Mul(tr.CouponRate), freq)

	series := make(solve.Series, 0, horizon+1)
	series = append(series, solve.CashFlow{Period: 0, Amount: outlay.Neg()})
	for t := 1; t < horizon; t++ {
		series = append(series, solve.CashFlow{Period: t, Amount: coupon})
	}
	series = append(series, solve.CashFlow{Period: horizon, Amount: coupon.Add(redemption)})

	cfg := solve.DefaultConfig()
	cfg.MaxIterations = 30

	periodic, err := solve.Rate(series, div(tr.CouponRate, freq), cfg)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return periodic.Mul(freq), nil
}
