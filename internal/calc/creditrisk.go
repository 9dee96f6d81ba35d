package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/decmath"
)

// CreditPortfolio is a homogeneous loan pool under the Vasicek
// single-factor model.
type CreditPortfolio struct {
	Exposure    decimal.Decimal // total exposure at default
	PD          decimal.Decimal // unconditional default probability
	LGD         decimal.Decimal // loss given default, fraction
	Correlation decimal.Decimal // asset correlation rho
	Confidence  decimal.Decimal // loss quantile, e.g. 0.999
}

// CreditRisk annotates the portfolio loss distribution.
type CreditRisk struct {
	ExpectedLoss   decimal.Decimal
	WorstCasePD    decimal.Decimal // conditional PD at the confidence level
	QuantileLoss   decimal.Decimal
	UnexpectedLoss decimal.Decimal // quantile minus expected, the capital charge
}

func (c *CreditPortfolio) Validate() error {
	if c.Exposure.Sign() <= 0 {
		return invalidf("exposure must be positive, got %s", c.Exposure)
	}
	if c.PD.Sign() <= 0 || c.PD.Cmp(one) >= 0 {
		return invalidf("PD must be in (0,1), got %s", c.PD)
	}
	if c.LGD.IsNegative() || c.LGD.Cmp(one) > 0 {
		return invalidf("LGD must be in [0,1], got %s", c.LGD)
	}
	if c.Correlation.IsNegative() || c.Correlation.Cmp(one) >= 0 {
		return invalidf("correlation must be in [0,1), got %s", c.Correlation)
	}
	if c.Confidence.Sign() <= 0 || c.Confidence.Cmp(one) >= 0 {
		return invalidf("confidence must be in (0,1), got %s", c.Confidence)
	}
	return nil
}

// Compute evaluates the Vasicek worst-case default rate
//
//	WCDR = CDF( (InvCDF(PD) + sqrt(rho)*InvCDF(q)) / sqrt(1-rho) )
//
// and the loss figures that follow from it.
func (c *CreditPortfolio) Compute() (*CreditRisk, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sqrtRho, err := decmath.Sqrt(c.Correlation)
	if err != nil {
		return nil, err
	}
	sqrtOneMinusRho, err := decmath.Sqrt(one.Sub(c.Correlation))
	if err != nil {
		return nil, err
	}

	z := decmath.NormInvCDF(c.PD).Add(sqrtRho.Mul(decmath.NormInvCDF(c.Confidence)))
	wcdr := decmath.NormCDF(div(z, sqrtOneMinusRho))

	expected := c.Exposure.Mul(c.LGD).Mul(c.PD).Round(divisionPrecision)
	quantile := c.Exposure.Mul(c.LGD).Mul(wcdr).Round(divisionPrecision)

	return &CreditRisk{
		ExpectedLoss:   expected,
		WorstCasePD:    wcdr,
		QuantileLoss:   quantile,
		UnexpectedLoss: quantile.Sub(expected),
	}, nil
}
