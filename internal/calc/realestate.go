package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/solve"
)

// PropertyInvestment models a hold-and-sell income property with an
// interest-only loan. NOI holds one net operating income per hold year.
type PropertyInvestment struct {
	PurchasePrice   decimal.Decimal
	LoanAmount      decimal.Decimal
	InterestRate    decimal.Decimal // annual, interest-only
	NOI             []decimal.Decimal
	ExitCapRate     decimal.Decimal
	SellingCostRate decimal.Decimal
}

// PropertyResult annotates the investment outcome.
type PropertyResult struct {
	NetSaleProceeds decimal.Decimal
	UnleveredIRR    decimal.Decimal
	LeveredIRR      decimal.Decimal
	EquityMultiple  decimal.Decimal
}

func (p *PropertyInvestment) Validate() error {
	if p.PurchasePrice.Sign() <= 0 {
		return invalidf("purchase price must be positive, got %s", p.PurchasePrice)
	}
	if p.LoanAmount.IsNegative() || p.LoanAmount.Cmp(p.PurchasePrice) >= 0 {
		return invalidf("loan must be in [0, purchase price), got %s", p.LoanAmount)
	}
	if p.InterestRate.IsNegative() {
		return invalidf("interest rate must be non-negative, got %s", p.InterestRate)
	}
	if len(p.NOI) < 1 {
		return invalidf("need at least one year of NOI")
	}
	if p.ExitCapRate.Sign() <= 0 {
		return invalidf("exit cap rate must be positive, got %s", p.ExitCapRate)
	}
	if p.SellingCostRate.IsNegative() || p.SellingCostRate.Cmp(one) >= 0 {
		return invalidf("selling cost rate must be in [0,1), got %s", p.SellingCostRate)
	}
	return nil
}

// Compute values the hold: terminal value caps the final-year NOI, then
// unlevered and levered IRRs come from the shared root finder.
func (p *PropertyInvestment) Compute() (*PropertyResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := len(p.NOI)
	terminal := div(p.NOI[n-1], p.ExitCapRate)
	netSale := terminal.Mul(one.Sub(p.SellingCostRate)).Round(divisionPrecision)

	unlevered := make(solve.Series, 0, n+1)
	unlevered = append(unlevered, solve.CashFlow{Period: 0, Amount: p.PurchasePrice.Neg()})
	for i, noi := range p.NOI {
		amt := noi
		if i == n-1 {
			amt = amt.Add(netSale)
		}
		unlevered = append(unlevered, solve.CashFlow{Period: i + 1, Amount: amt})
	}

	equity := p.PurchasePrice.Sub(p.LoanAmount)
	debtService := p.LoanAmount.Mul(p.InterestRate).Round(divisionPrecision)

	levered := make(solve.Series, 0, n+1)
	levered = append(levered, solve.CashFlow{Period: 0, Amount: equity.Neg()})
	distributions := decimal.Zero
	for i, noi := range p.NOI {
		amt := noi.Sub(debtService)
		if i == n-1 {
			amt = amt.Add(netSale).Sub(p.LoanAmount)
		}
		distributions = distributions.Add(amt)
		levered = append(levered, solve.CashFlow{Period: i + 1, Amount: amt})
	}

	cfg := solve.DefaultConfig()
	cfg.MaxIterations = 40
	guess := decimal.RequireFromString("0.08")

	uirr, err := solve.Rate(unlevered, guess, cfg)
	if err != nil {
		return nil, err
	}
	lirr, err := solve.Rate(levered, guess, cfg)
	if err != nil {
		return nil, err
	}

	return &PropertyResult{
		NetSaleProceeds: netSale,
		UnleveredIRR:    uirr,
		LeveredIRR:      lirr,
		EquityMultiple:  div(distributions, equity),
	}, nil
}
