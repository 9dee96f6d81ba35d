package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/decmath"
)

// PoolPosition describes a liquidity-pool stake: the advertised APR, how
// often rewards compound (0 means continuously), and the price ratio of
// the paired assets since entry (1 = unchanged).
type PoolPosition struct {
	APR             decimal.Decimal
	CompoundsPerYear int
	PriceRatio      decimal.Decimal
}

// PoolYield annotates the position economics.
type PoolYield struct {
	APY             decimal.Decimal
	ImpermanentLoss decimal.Decimal // <= 0, relative to holding
}

func (p *PoolPosition) Validate() error {
	if p.APR.IsNegative() {
		return invalidf("APR must be non-negative, got %s", p.APR)
	}
	if p.CompoundsPerYear < 0 {
		return invalidf("compounds per year must be non-negative, got %d", p.CompoundsPerYear)
	}
	if p.PriceRatio.Sign() <= 0 {
		return invalidf("price ratio must be positive, got %s", p.PriceRatio)
	}
	return nil
}

// Compute converts APR to APY (continuous compounding through Exp when
// CompoundsPerYear is 0, otherwise (1+r/n)^n by repeated multiplication)
// and evaluates impermanent loss 2*sqrt(ratio)/(1+ratio) - 1.
func (p *PoolPosition) Compute() (*PoolYield, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var apy decimal.Decimal
	if p.CompoundsPerYear == 0 {
		apy = decmath.Exp(p.APR).Sub(one)
	} else {
		n := decimal.NewFromInt(int64(p.CompoundsPerYear))
		base := one.Add(div(p.APR, n))
		acc := one
		for i := 0; i < p.CompoundsPerYear; i++ {
			acc = acc.Mul(base).Round(divisionPrecision)
		}
		apy = acc.Sub(one)
	}

	sqrtRatio, err := decmath.Sqrt(p.PriceRatio)
	if err != nil {
		return nil, err
	}
	il := div(two.Mul(sqrtRatio), one.Add(p.PriceRatio)).Sub(one)

	return &PoolYield{APY: apy, ImpermanentLoss: il}, nil
}

// APRFromAPY inverts the continuous-compounding conversion: ln(1+apy).
func APRFromAPY(apy decimal.Decimal) (decimal.Decimal, error) {
	if apy.Cmp(decimal.New(-1, 0)) <= 0 {
		return decimal.Decimal{}, invalidf("APY must exceed -100%%, got %s", apy)
	}
	return decmath.Ln(one.Add(apy))
}
