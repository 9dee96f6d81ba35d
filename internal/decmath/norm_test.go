package decmath

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormCDFKnownValues(t *testing.T) {
	if got := NormCDF(decimal.Zero); !within(t, got, half, decimal.RequireFromString("0.001")) {
		t.Errorf("NormCDF(0) = %s; want 0.5", got)
	}
	if got := NormCDF(decimal.New(5, 0)); got.Cmp(decimal.RequireFromString("0.999")) <= 0 {
		t.Errorf("NormCDF(5) = %s; want > 0.999", got)
	}
	if got := NormCDF(decimal.New(-5, 0)); got.Cmp(decimal.RequireFromString("0.001")) >= 0 {
		t.Errorf("NormCDF(-5) = %s; want < 0.001", got)
	}
}

func TestNormCDFReflection(t *testing.T) {
	tol := decimal.RequireFromString("0.000001")
	for _, c := range []string{"0.3", "1", "1.96", "3"} {
		x := decimal.RequireFromString(c)
		sum := NormCDF(x).Add(NormCDF(x.Neg()))
		if !within(t, sum, decimal.New(1, 0), tol) {
			t.Errorf("NormCDF(%s)+NormCDF(-%s) = %s; want 1", c, c, sum)
		}
	}
}

func TestNormPDFPeak(t *testing.T) {
	// 1/sqrt(2*pi) = 0.39894...
	want := decimal.RequireFromString("0.398942")
	if got := NormPDF(decimal.Zero); !within(t, got, want, decimal.RequireFromString("0.000001")) {
		t.Errorf("NormPDF(0) = %s; want ~%s", got, want)
	}

	x := decimal.RequireFromString("1.7")
	if a, b := NormPDF(x), NormPDF(x.Neg()); !a.Equal(b) {
		t.Errorf("NormPDF not symmetric: %s vs %s", a, b)
	}
}

func TestNormInvCDFRoundTrip(t *testing.T) {
	tol := decimal.RequireFromString("0.005")
	for _, c := range []string{"0.01", "0.05", "0.25", "0.5", "0.75", "0.95", "0.99"} {
		p := decimal.RequireFromString(c)
		got := NormCDF(NormInvCDF(p))
		if !within(t, got, p, tol) {
			t.Errorf("NormCDF(NormInvCDF(%s)) = %s", c, got)
		}
	}
}

func TestNormInvCDFClamps(t *testing.T) {
	// Out-of-range probabilities clamp instead of erroring; the result
	// must stay finite and ordered.
	lo := NormInvCDF(decimal.Zero)
	hi := NormInvCDF(decimal.New(1, 0))
	if lo.Sign() >= 0 || hi.Sign() <= 0 {
		t.Errorf("clamped quantiles not ordered: %s, %s", lo, hi)
	}
	if lo.Abs().Cmp(decimal.New(10, 0)) > 0 || hi.Abs().Cmp(decimal.New(10, 0)) > 0 {
		t.Errorf("clamped quantiles diverged: %s, %s", lo, hi)
	}
}

func TestNormInvCDFMedian(t *testing.T) {
	got := NormInvCDF(half)
	if got.Abs().Cmp(decimal.RequireFromString("0.001")) > 0 {
		t.Errorf("NormInvCDF(0.5) = %s; want ~0", got)
	}
}
