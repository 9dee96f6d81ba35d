package decmath

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPowFracEndpoints(t *testing.T) {
	base := decimal.RequireFromString("1.045")

	got, err := PowFrac(base, decimal.Zero)
	if err != nil || !got.Equal(decimal.New(1, 0)) {
		t.Errorf("PowFrac(base, 0) = %s, %v; want 1", got, err)
	}

	got, err = PowFrac(base, decimal.New(1, 0))
	if err != nil || !got.Equal(base) {
		t.Errorf("PowFrac(base, 1) = %s, %v; want base", got, err)
	}

	got, err = PowFrac(decimal.New(1, 0), decimal.RequireFromString("0.37"))
	if err != nil || !got.Equal(decimal.New(1, 0)) {
		t.Errorf("PowFrac(1, f) = %s, %v; want 1", got, err)
	}
}

func TestPowFracHalfMatchesSqrt(t *testing.T) {
	tol := decimal.RequireFromString("0.0000001")
	for _, c := range []string{"1.02", "1.05", "0.97", "1.10"} {
		base := decimal.RequireFromString(c)
		got, err := PowFrac(base, half)
		if err != nil {
			t.Fatalf("PowFrac(%s, 0.5): %v", c, err)
		}
		want, _ := Sqrt(base)
		if !within(t, got, want, tol) {
			t.Errorf("PowFrac(%s, 0.5) = %s; Sqrt = %s", c, got, want)
		}
	}
}

func TestPowFracStubDiscount(t *testing.T) {
	// (1.03)^0.4 = 1.0118937... , a typical stub-period discount base.
	got, err := PowFrac(decimal.RequireFromString("1.03"), decimal.RequireFromString("0.4"))
	if err != nil {
		t.Fatal(err)
	}
	want := decimal.RequireFromString("1.0118937")
	if !within(t, got, want, decimal.RequireFromString("0.000001")) {
		t.Errorf("PowFrac(1.03, 0.4) = %s; want ~%s", got, want)
	}
}

func TestPowFracDomain(t *testing.T) {
	if _, err := PowFrac(decimal.New(-1, 0), half); !errors.Is(err, ErrDomain) {
		t.Errorf("PowFrac(-1, 0.5) error = %v; want ErrDomain", err)
	}
	if _, err := PowFrac(decimal.New(2, 0), decimal.New(2, 0)); !errors.Is(err, ErrDomain) {
		t.Errorf("PowFrac(2, 2) error = %v; want ErrDomain", err)
	}
}
