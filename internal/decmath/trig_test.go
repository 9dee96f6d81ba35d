package decmath

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCosKnownValues(t *testing.T) {
	tol := decimal.RequireFromString("0.000001")

	if got := Cos(decimal.Zero); !within(t, got, decimal.New(1, 0), tol) {
		t.Errorf("Cos(0) = %s; want 1", got)
	}
	if got := Cos(Pi); !within(t, got, decimal.New(-1, 0), tol) {
		t.Errorf("Cos(pi) = %s; want -1", got)
	}
	if got := Cos(div(Pi, two)); !within(t, got, decimal.Zero, tol) {
		t.Errorf("Cos(pi/2) = %s; want 0", got)
	}
}

func TestCosPeriodic(t *testing.T) {
	tol := decimal.RequireFromString("0.00000001")
	x := decimal.RequireFromString("1.25")
	if a, b := Cos(x), Cos(x.Add(TwoPi)); !within(t, a, b, tol) {
		t.Errorf("Cos(1.25) = %s but Cos(1.25+2pi) = %s", a, b)
	}
}

func TestHyperbolicIdentity(t *testing.T) {
	tol := decimal.RequireFromString("0.0000001")
	for _, c := range []string{"-3", "-0.5", "0", "0.1", "1", "2.5"} {
		x := decimal.RequireFromString(c)
		ch, sh := Cosh(x), Sinh(x)
		got := ch.Mul(ch).Sub(sh.Mul(sh))
		if !within(t, got, decimal.New(1, 0), tol) {
			t.Errorf("cosh^2(%s)-sinh^2(%s) = %s; want 1", c, c, got)
		}
	}
}

func TestAcoshInvertsCosh(t *testing.T) {
	tol := decimal.RequireFromString("0.0001")
	for _, c := range []string{"1.0001", "1.5", "2", "10"} {
		x := decimal.RequireFromString(c)
		y, err := Acosh(x)
		if err != nil {
			t.Fatalf("Acosh(%s): %v", c, err)
		}
		if got := Cosh(y); !within(t, got, x, tol) {
			t.Errorf("Cosh(Acosh(%s)) = %s", c, got)
		}
	}
}

func TestAcoshDomain(t *testing.T) {
	if _, err := Acosh(decimal.RequireFromString("0.5")); !errors.Is(err, ErrDomain) {
		t.Errorf("Acosh(0.5) error = %v; want ErrDomain", err)
	}
}
