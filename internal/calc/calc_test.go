package calc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// near reports |got - want| <= tol.
func near(t *testing.T, got decimal.Decimal, want, tol string) bool {
	t.Helper()
	return got.Sub(dec(want)).Abs().Cmp(dec(tol)) <= 0
}
