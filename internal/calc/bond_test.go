package calc

import (
	"errors"
	"testing"
)

func newTestBond() *Bond {
	return &Bond{
		Face:       dec("100"),
		CouponRate: dec("0.06"),
		Frequency:  2,
		Periods:    10,
	}
}

func TestBondParPricing(t *testing.T) {
	b := newTestBond()
	p, err := b.PriceFromYield(dec("0.06"))
	if err != nil {
		t.Fatal(err)
	}
	if !near(t, p.DirtyPrice, "100", "0.000001") {
		t.Errorf("par bond priced at %s; want 100", p.DirtyPrice)
	}
	if !p.AccruedInterest.IsZero() {
		t.Errorf("no stub, but accrued = %s", p.AccruedInterest)
	}
}

func TestBondDiscountPremium(t *testing.T) {
	b := newTestBond()

	disc, err := b.PriceFromYield(dec("0.08"))
	if err != nil {
		t.Fatal(err)
	}
	if disc.DirtyPrice.Cmp(dec("100")) >= 0 {
		t.Errorf("yield above coupon should price below par, got %s", disc.DirtyPrice)
	}

	prem, err := b.PriceFromYield(dec("0.04"))
	if err != nil {
		t.Fatal(err)
	}
	if prem.DirtyPrice.Cmp(dec("100")) <= 0 {
		t.Errorf("yield below coupon should price above par, got %s", prem.DirtyPrice)
	}
}

func TestBondStubPricing(t *testing.T) {
	b := newTestBond()
	b.StubFraction = dec("0.5")

	p, err := b.PriceFromYield(dec("0.06"))
	if err != nil {
		t.Fatal(err)
	}
	// Par flows pulled back half a period: 100 * 1.03^0.5 = 101.48892.
	if !near(t, p.DirtyPrice, "101.48892", "0.0001") {
		t.Errorf("stub dirty price = %s; want ~101.48892", p.DirtyPrice)
	}
	if !near(t, p.AccruedInterest, "1.5", "0.0000001") {
		t.Errorf("accrued = %s; want 1.5", p.AccruedInterest)
	}
	if !p.CleanPrice.Equal(p.DirtyPrice.Sub(p.AccruedInterest)) {
		t.Errorf("clean %s != dirty %s - accrued %s", p.CleanPrice, p.DirtyPrice, p.AccruedInterest)
	}
}

func TestBondYieldToMaturity(t *testing.T) {
	b := newTestBond()

	ytm, err := b.YieldToMaturity(dec("100"))
	if err != nil {
		t.Fatal(err)
	}
	if !near(t, ytm, "0.06", "0.0001") {
		t.Errorf("YTM at par = %s; want ~0.06", ytm)
	}

	ytm, err = b.YieldToMaturity(dec("95"))
	if err != nil {
		t.Fatal(err)
	}
	if ytm.Cmp(dec("0.06")) <= 0 {
		t.Errorf("YTM below par = %s; want above coupon", ytm)
	}
}

func TestBondYieldToCall(t *testing.T) {
	b := newTestBond()

	ytc, err := b.YieldToCall(dec("98"), dec("102"), 4)
	if err != nil {
		t.Fatal(err)
	}
	// Discount purchase plus call premium over a short horizon: yield
	// must clear the coupon.
	if ytc.Cmp(dec("0.06")) <= 0 {
		t.Errorf("YTC = %s; want above coupon", ytc)
	}

	if _, err := b.YieldToCall(dec("98"), dec("102"), 11); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("call period past maturity: err = %v; want ErrInvalidInput", err)
	}
}

func TestBondValidation(t *testing.T) {
	b := newTestBond()
	b.Face = dec("-5")
	if _, err := b.PriceFromYield(dec("0.05")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative face: err = %v; want ErrInvalidInput", err)
	}

	b = newTestBond()
	b.StubFraction = dec("1")
	if _, err := b.PriceFromYield(dec("0.05")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("stub of 1: err = %v; want ErrInvalidInput", err)
	}
}
