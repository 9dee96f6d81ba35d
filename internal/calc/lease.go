package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/solve"
)

// Lease is a fixed-payment lease measured at commencement. FairValue,
// when positive, lets Compute back out the implicit periodic rate
// instead of using DiscountRate directly.
type Lease struct {
	Payment      decimal.Decimal // per period, in arrears
	Periods      int
	DiscountRate decimal.Decimal // periodic; ignored when FairValue set
	FairValue    decimal.Decimal
}

// LeasePeriod is one row of the amortization schedule.
type LeasePeriod struct {
	Period    int
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// LeaseResult annotates the measured liability.
type LeaseResult struct {
	PresentValue decimal.Decimal
	Rate         decimal.Decimal // the rate used (given or implicit)
	Schedule     []LeasePeriod
}

func (l *Lease) Validate() error {
	if l.Payment.Sign() <= 0 {
		return invalidf("lease payment must be positive, got %s", l.Payment)
	}
	if l.Periods < 1 {
		return invalidf("lease needs at least one period, got %d", l.Periods)
	}
	if l.FairValue.IsNegative() {
		return invalidf("fair value must be non-negative, got %s", l.FairValue)
	}
	if l.FairValue.IsZero() && l.DiscountRate.Sign() <= 0 {
		return invalidf("either a positive discount rate or a fair value is required")
	}
	return nil
}

// Compute measures the lease liability and builds the period-by-period
// interest/principal split. With a fair value supplied, the implicit
// rate is solved from the payment stream first.
func (l *Lease) Compute() (*LeaseResult, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	rate := l.DiscountRate
	if l.FairValue.Sign() > 0 {
		series := make(solve.Series, 0, l.Periods+1)
		series = append(series, solve.CashFlow{Period: 0, Amount: l.FairValue.Neg()})
		for t := 1; t <= l.Periods; t++ {
			series = append(series, solve.CashFlow{Period: t, Amount: l.Payment})
		}
		cfg := solve.DefaultConfig()
		cfg.MaxIterations = 40
		solved, err := solve.Rate(series, decimal.RequireFromString("0.05"), cfg)
		if err != nil {
			return nil, err
		}
		rate = solved
	}

	onePlus := one.Add(rate)
	pv := decimal.Zero
	factor := one
	for t := 1; t <= l.Periods; t++ {
		factor = factor.Mul(onePlus).Round(divisionPrecision)
		pv = pv.Add(div(l.Payment, factor))
	}

	schedule := make([]LeasePeriod, 0, l.Periods)
	balance := pv
	for t := 1; t <= l.Periods; t++ {
		interest := balance.Mul(rate).Round(divisionPrecision)
		principal := l.Payment.Sub(interest)
		balance = balance.Sub(principal)
		if t == l.Periods {
			// Absorb residual rounding into the final row.
			principal = principal.Add(balance)
			balance = decimal.Zero
		}
		schedule = append(schedule, LeasePeriod{
			Period:    t,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}

	return &LeaseResult{PresentValue: pv, Rate: rate, Schedule: schedule}, nil
}
