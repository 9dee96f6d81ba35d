package decmath

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// within reports whether got is inside tol of want (absolute).
func within(t *testing.T, got, want, tol decimal.Decimal) bool {
	t.Helper()
	return got.Sub(want).Abs().Cmp(tol) <= 0
}

func TestSqrtSquaresBack(t *testing.T) {
	cases := []string{"0.0001", "0.25", "2", "10", "144", "98765.4321", "1000000"}
	relTol := decimal.RequireFromString("0.0000001")

	for _, c := range cases {
		x := decimal.RequireFromString(c)
		r, err := Sqrt(x)
		if err != nil {
			t.Fatalf("Sqrt(%s): %v", c, err)
		}
		back := r.Mul(r)
		relErr := back.Sub(x).Abs().DivRound(x, DivisionPrecision)
		if relErr.Cmp(relTol) > 0 {
			t.Errorf("Sqrt(%s)^2 = %s, relative error %s", c, back, relErr)
		}
	}
}

func TestSqrtExtremeMagnitudes(t *testing.T) {
	// Magnitudes where a naive x/2 seed would exhaust the iteration
	// budget walking down (or up) to scale.
	cases := []string{
		"1e-10", "1.5e-10", "2e-10", "5e-10",
		"1e10", "1.5e10", "2e10",
		"1e-22", "1e22", "3.7e19", "3.7e-19",
	}
	relTol := decimal.RequireFromString("0.0000001")

	for _, c := range cases {
		x := decimal.RequireFromString(c)
		r, err := Sqrt(x)
		if err != nil {
			t.Fatalf("Sqrt(%s): %v", c, err)
		}
		back := r.Mul(r)
		relErr := back.Sub(x).Abs().DivRound(x, DivisionPrecision)
		if relErr.Cmp(relTol) > 0 {
			t.Errorf("Sqrt(%s)^2 = %s, relative error %s", c, back, relErr)
		}
	}
}

func TestSqrtSeedWithinHalfDecade(t *testing.T) {
	// The seed must bracket the root to within a factor of sqrt(10) so
	// the fixed budget always converges.
	cases := []struct {
		in   string
		seed string
	}{
		{"2", "1"},
		{"0.25", "1"},
		{"98765.4321", "100"},
		{"1e-10", "0.00001"},
		{"1.5e-10", "0.00001"},
		{"1e22", "1e11"},
		{"1e-22", "1e-11"},
	}

	for _, c := range cases {
		x := decimal.RequireFromString(c.in)
		want := decimal.RequireFromString(c.seed)
		if got := sqrtSeed(x); !got.Equal(want) {
			t.Errorf("sqrtSeed(%s) = %s; want %s", c.in, got, want)
		}
	}
}

func TestSqrtFixedPoints(t *testing.T) {
	r, err := Sqrt(decimal.Zero)
	if err != nil || !r.IsZero() {
		t.Errorf("Sqrt(0) = %s, %v; want 0", r, err)
	}

	r, err = Sqrt(decimal.New(1, 0))
	if err != nil || !r.Equal(decimal.New(1, 0)) {
		t.Errorf("Sqrt(1) = %s, %v; want 1", r, err)
	}
}

func TestSqrtNegative(t *testing.T) {
	_, err := Sqrt(decimal.New(-4, 0))
	if !errors.Is(err, ErrDomain) {
		t.Errorf("Sqrt(-4) error = %v; want ErrDomain", err)
	}

	var de *DomainError
	if !errors.As(err, &de) || de.Func != "sqrt" {
		t.Errorf("expected DomainError for sqrt, got %v", err)
	}
}

func TestSqrtDeterministic(t *testing.T) {
	x := decimal.RequireFromString("2")
	a, _ := Sqrt(x)
	b, _ := Sqrt(x)
	if a.String() != b.String() {
		t.Errorf("Sqrt(2) not reproducible: %s vs %s", a, b)
	}
}
