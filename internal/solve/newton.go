package solve

import "github.com/shopspring/decimal"

// Config parameterizes one solve. Products differ only in these guard
// rails, not in the iteration itself.
type Config struct {
	MaxIterations int
	Tolerance     decimal.Decimal // convergence bound on |NPV|
	MinRate       decimal.Decimal // working-rate clamp, lower
	MaxRate       decimal.Decimal // working-rate clamp, upper
}

// DefaultConfig returns the guard rails most calculators use: 50
// iterations, 1e-7 tolerance, rate clamped to [-0.99, 10].
func DefaultConfig() Config {
	return Config{
		MaxIterations: 50,
		Tolerance:     decimal.New(1, -7),
		MinRate:       decimal.RequireFromString("-0.99"),
		MaxRate:       decimal.New(10, 0),
	}
}

// Rate finds the periodic rate at which NPV(s) vanishes, starting from
// guess, via Newton-Raphson with the analytic derivative. The working
// rate is clamped to [cfg.MinRate, cfg.MaxRate] every iteration to keep
// a bad step from diverging.
//
// Returns a *ConvergenceError (wrapping ErrNoConvergence) if the budget
// is exhausted or the derivative underflows to zero, and ErrSeriesTooShort
// for series with fewer than two flows.
func Rate(s Series, guess decimal.Decimal, cfg Config) (decimal.Decimal, error) {
	if len(s) < 2 {
		return decimal.Decimal{}, ErrSeriesTooShort
	}

	r := clamp(guess, cfg.MinRate, cfg.MaxRate)
	residual := decimal.Decimal{}

	for i := 0; i < cfg.MaxIterations; i++ {
		npv, deriv := npvDerivative(s, r)
		residual = npv

		if npv.Abs().Cmp(cfg.Tolerance) < 0 {
			return r, nil
		}
		if deriv.IsZero() {
			return decimal.Decimal{}, &ConvergenceError{
				Iterations: i,
				Residual:   residual,
			}
		}

		r = clamp(r.Sub(npv.DivRound(deriv, divisionPrecision)), cfg.MinRate, cfg.MaxRate)
	}

	return decimal.Decimal{}, &ConvergenceError{
		Iterations: cfg.MaxIterations,
		Residual:   residual,
	}
}

func clamp(r, lo, hi decimal.Decimal) decimal.Decimal {
	if r.Cmp(lo) < 0 {
		return lo
	}
	if r.Cmp(hi) > 0 {
		return hi
	}
	return r
}
