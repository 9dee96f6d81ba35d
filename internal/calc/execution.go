package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/decmath"
)

// ExecutionPlan sets up an Almgren-Chriss optimal liquidation of
// TotalShares over Periods intervals spanning Horizon (in trading days or
// any consistent time unit).
type ExecutionPlan struct {
	TotalShares  decimal.Decimal
	Periods      int
	Horizon      decimal.Decimal
	RiskAversion decimal.Decimal // lambda
	Volatility   decimal.Decimal // sigma, per sqrt(time unit)
	TempImpact   decimal.Decimal // eta, temporary impact coefficient
}

// Trajectory is the solved execution schedule: Holdings[j] is the
// position after j intervals (Holdings[0] = TotalShares,
// Holdings[Periods] = 0) and Trades[j] the shares sold in interval j+1.
type Trajectory struct {
	Kappa    decimal.Decimal // urgency parameter
	Holdings []decimal.Decimal
	Trades   []decimal.Decimal
}

func (p *ExecutionPlan) Validate() error {
	if p.TotalShares.Sign() <= 0 {
		return invalidf("total shares must be positive, got %s", p.TotalShares)
	}
	if p.Periods < 1 {
		return invalidf("need at least one trading period, got %d", p.Periods)
	}
	if p.Horizon.Sign() <= 0 {
		return invalidf("horizon must be positive, got %s", p.Horizon)
	}
	if p.RiskAversion.Sign() <= 0 || p.Volatility.Sign() <= 0 || p.TempImpact.Sign() <= 0 {
		return invalidf("risk aversion, volatility and impact must all be positive")
	}
	return nil
}

// Compute derives the urgency kappa from acosh and shapes the holdings
// with the sinh ratio x_j = X * sinh(kappa*(T - t_j)) / sinh(kappa*T):
// high risk aversion front-loads the selling, low risk aversion
// approaches a straight line.
func (p *ExecutionPlan) Compute() (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tau := div(p.Horizon, decimal.NewFromInt(int64(p.Periods)))

	// kappaTilde^2 = lambda*sigma^2/eta; kappa = acosh(kappaTilde^2*tau^2/2 + 1)/tau
	kt2 := div(p.RiskAversion.Mul(p.Volatility).Mul(p.Volatility), p.TempImpact)
	arg := div(kt2.Mul(tau).Mul(tau), two).Add(one)
	kappaTau, err := decmath.Acosh(arg)
	if err != nil {
		return nil, err
	}
	kappa := div(kappaTau, tau)

	denom := decmath.Sinh(kappa.Mul(p.Horizon).Round(divisionPrecision))
	holdings := make([]decimal.Decimal, p.Periods+1)
	for j := 0; j <= p.Periods; j++ {
		remaining := p.Horizon.Sub(tau.Mul(decimal.NewFromInt(int64(j)))).Round(divisionPrecision)
		num := decmath.Sinh(kappa.Mul(remaining).Round(divisionPrecision))
		holdings[j] = div(p.TotalShares.Mul(num), denom)
	}
	holdings[0] = p.TotalShares // sinh ratio is exactly 1 at j=0; pin it
	holdings[p.Periods] = decimal.Zero

	trades := make([]decimal.Decimal, p.Periods)
	for j := 0; j < p.Periods; j++ {
		trades[j] = holdings[j].Sub(holdings[j+1])
	}

	return &Trajectory{Kappa: kappa, Holdings: holdings, Trades: trades}, nil
}

// VolumeCurve returns n normalized intraday volume weights following the
// default U shape 1 + amplitude*cos(2*pi*u), u in [0,1]: heavy at the
// open and close, light midday. Weights sum to 1.
func VolumeCurve(n int, amplitude decimal.Decimal) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, invalidf("volume curve needs at least one bucket, got %d", n)
	}
	if amplitude.IsNegative() || amplitude.Cmp(one) > 0 {
		return nil, invalidf("volume amplitude must be in [0,1], got %s", amplitude)
	}

	weights := make([]decimal.Decimal, n)
	total := decimal.Zero
	denom := decimal.NewFromInt(int64(n))
	for i := 0; i < n; i++ {
		// Bucket midpoint in [0,1].
		u := div(decimal.NewFromInt(int64(2*i+1)), denom.Mul(two))
		w := one.Add(amplitude.Mul(decmath.Cos(decmath.TwoPi.Mul(u).Round(divisionPrecision))))
		weights[i] = w
		total = total.Add(w)
	}
	for i := range weights {
		weights[i] = div(weights[i], total)
	}
	return weights, nil
}
