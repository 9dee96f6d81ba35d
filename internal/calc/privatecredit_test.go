package calc

import (
	"errors"
	"testing"
)

func newTestTranche() *Tranche {
	return &Tranche{
		Principal:      dec("1000"),
		CouponRate:     dec("0.10"),
		Frequency:      1,
		TermPeriods:    5,
		PurchasePrice:  dec("980"),
		UpfrontFeeRate: dec("0.02"),
	}
}

func TestTrancheYieldToMaturity(t *testing.T) {
	r, err := newTestTranche().Compute()
	if err != nil {
		t.Fatal(err)
	}

	// Bought at 960 net for par flows: yield clears the 10% coupon.
	if r.YieldToMaturity.Cmp(dec("0.10")) <= 0 {
		t.Errorf("YTM = %s; want above coupon", r.YieldToMaturity)
	}
	if r.YieldToMaturity.Cmp(dec("0.15")) >= 0 {
		t.Errorf("YTM = %s; implausibly high", r.YieldToMaturity)
	}
	if !near(t, r.NetOutlay, "960", "0.0000001") {
		t.Errorf("net outlay = %s; want 960", r.NetOutlay)
	}
	if !r.YieldToCall.IsZero() {
		t.Errorf("non-callable tranche reported YTC %s", r.YieldToCall)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestTrancheYieldToCall(t *testing.T) {
	tr := newTestTranche()
	tr.CallPeriod = 2
	tr.CallPremium = dec("0.01")

	r, err := tr.Compute()
	if err != nil {
		t.Fatal(err)
	}

	// The purchase discount and call premium are earned over two periods
	// instead of five, so YTC beats YTM.
	if r.YieldToCall.Cmp(r.YieldToMaturity) <= 0 {
		t.Errorf("YTC %s should exceed YTM %s", r.YieldToCall, r.YieldToMaturity)
	}
}

func TestTrancheValidation(t *testing.T) {
	tr := newTestTranche()
	tr.UpfrontFeeRate = dec("1")
	if _, err := tr.Compute(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("fee rate 1: err = %v; want ErrInvalidInput", err)
	}

	tr = newTestTranche()
	tr.CallPeriod = 9
	if _, err := tr.Compute(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("call past term: err = %v; want ErrInvalidInput", err)
	}
}
