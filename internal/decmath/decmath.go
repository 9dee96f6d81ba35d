package decmath

import "github.com/shopspring/decimal"

// DivisionPrecision is the number of fractional digits every division in
// the kernel rounds to. It is applied per call site via DivRound so the
// package never mutates the shopspring global.
const DivisionPrecision = 28

var (
	zero = decimal.Zero
	one  = decimal.New(1, 0)
	two  = decimal.New(2, 0)
	half = decimal.New(5, -1)

	// Pi and E to 35 significant digits, comfortably past DivisionPrecision.
	Pi        = decimal.RequireFromString("3.14159265358979323846264338327950288")
	TwoPi     = decimal.RequireFromString("6.28318530717958647692528676655900577")
	E         = decimal.RequireFromString("2.71828182845904523536028747135266250")
	SqrtTwoPi = decimal.RequireFromString("2.50662827463100050241576528481104525")
)

// div is the kernel-wide division: quotient rounded at DivisionPrecision.
func div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, DivisionPrecision)
}
