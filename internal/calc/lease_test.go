package calc

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLeasePresentValue(t *testing.T) {
	l := &Lease{Payment: dec("1000"), Periods: 5, DiscountRate: dec("0.06")}
	r, err := l.Compute()
	if err != nil {
		t.Fatal(err)
	}

	// 5-period annuity of 1000 at 6%: 4212.3638.
	if !near(t, r.PresentValue, "4212.3638", "0.001") {
		t.Errorf("PV = %s; want ~4212.3638", r.PresentValue)
	}
	if !r.Rate.Equal(dec("0.06")) {
		t.Errorf("rate = %s; want the given 0.06", r.Rate)
	}
}

func TestLeaseSchedule(t *testing.T) {
	l := &Lease{Payment: dec("1000"), Periods: 5, DiscountRate: dec("0.06")}
	r, err := l.Compute()
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Schedule) != 5 {
		t.Fatalf("schedule has %d rows; want 5", len(r.Schedule))
	}

	// First-period interest is PV * rate.
	if !near(t, r.Schedule[0].Interest, "252.7418", "0.001") {
		t.Errorf("first interest = %s; want ~252.7418", r.Schedule[0].Interest)
	}

	// Balance amortizes to exactly zero and principal sums to the PV.
	if !r.Schedule[4].Balance.IsZero() {
		t.Errorf("final balance = %s; want 0", r.Schedule[4].Balance)
	}
	principal := decimal.Zero
	for _, row := range r.Schedule {
		principal = principal.Add(row.Principal)
	}
	if !near(t, principal, "4212.3638", "0.001") {
		t.Errorf("principal total = %s; want the PV", principal)
	}

	// Interest declines as the balance amortizes.
	for i := 1; i < 5; i++ {
		if r.Schedule[i].Interest.Cmp(r.Schedule[i-1].Interest) >= 0 {
			t.Errorf("interest not declining at row %d", i)
		}
	}
}

func TestLeaseImplicitRate(t *testing.T) {
	l := &Lease{Payment: dec("1000"), Periods: 5, FairValue: dec("4212.3638")}
	r, err := l.Compute()
	if err != nil {
		t.Fatal(err)
	}
	if !near(t, r.Rate, "0.06", "0.0005") {
		t.Errorf("implicit rate = %s; want ~0.06", r.Rate)
	}
}

func TestLeaseValidation(t *testing.T) {
	l := &Lease{Payment: dec("1000"), Periods: 5}
	if _, err := l.Compute(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("no rate or fair value: err = %v; want ErrInvalidInput", err)
	}

	l = &Lease{Payment: dec("0"), Periods: 5, DiscountRate: dec("0.06")}
	if _, err := l.Compute(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero payment: err = %v; want ErrInvalidInput", err)
	}
}
