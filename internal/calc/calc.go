package calc

import "github.com/shopspring/decimal"

const divisionPrecision = 28

var (
	one = decimal.New(1, 0)
	two = decimal.New(2, 0)
)

func div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, divisionPrecision)
}
