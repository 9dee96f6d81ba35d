package config

var Presets = map[string]map[string]*Config{
	"bond": {
		"par": {
			Calculator: "bond",
			Bond: BondConfig{
				Face: "100", CouponRate: "0.06", Frequency: 2,
				Periods: 10, Yield: "0.06",
			},
		},
		"discount": {
			Calculator: "bond",
			Bond: BondConfig{
				Face: "100", CouponRate: "0.04", Frequency: 2,
				Periods: 20, Yield: "0.055",
			},
		},
		"stub": {
			Calculator: "bond",
			Bond: BondConfig{
				Face: "100", CouponRate: "0.06", Frequency: 2,
				Periods: 10, StubFraction: "0.5", Yield: "0.06",
			},
		},
		"solve_yield": {
			Calculator: "bond",
			Bond: BondConfig{
				Face: "100", CouponRate: "0.05", Frequency: 2,
				Periods: 16, Price: "96.50",
			},
		},
	},
	"real_estate": {
		"stabilized": {
			Calculator: "real_estate",
			RealEstate: RealEstateConfig{
				PurchasePrice: "1000000", LoanAmount: "600000", InterestRate: "0.05",
				NOI:         []string{"70000", "72000", "74000", "76000", "78000"},
				ExitCapRate: "0.065", SellingCostRate: "0.02",
			},
		},
		"all_cash": {
			Calculator: "real_estate",
			RealEstate: RealEstateConfig{
				PurchasePrice: "1000000",
				NOI:           []string{"65000", "67000", "69000", "71000", "73000"},
				ExitCapRate:   "0.07", SellingCostRate: "0.02",
			},
		},
	},
	"private_credit": {
		"senior": {
			Calculator: "private_credit",
			PrivateCredit: TrancheConfig{
				Principal: "1000000", CouponRate: "0.09", Frequency: 4,
				TermPeriods: 20, PurchasePrice: "980000", UpfrontFeeRate: "0.02",
			},
		},
		"callable": {
			Calculator: "private_credit",
			PrivateCredit: TrancheConfig{
				Principal: "1000000", CouponRate: "0.11", Frequency: 4,
				TermPeriods: 28, PurchasePrice: "1000000", UpfrontFeeRate: "0.015",
				CallPeriod: 8, CallPremium: "0.02",
			},
		},
	},
	"black_litterman": {
		"two_asset": {
			Calculator: "black_litterman",
			BlackLitterman: BLConfig{
				RiskAversion: "3", Tau: "0.05",
				Sigma: [][]string{
					{"0.04", "0.012"},
					{"0.012", "0.09"},
				},
				MarketWeights: []string{"0.6", "0.4"},
				Views:         [][]string{{"1", "-1"}},
				ViewReturns:   []string{"0.02"},
				ViewVariances: []string{"0.001"},
			},
		},
		"equilibrium": {
			Calculator: "black_litterman",
			BlackLitterman: BLConfig{
				RiskAversion: "2.5", Tau: "0.05",
				Sigma: [][]string{
					{"0.04", "0.012"},
					{"0.012", "0.09"},
				},
				MarketWeights: []string{"0.6", "0.4"},
			},
		},
	},
	"execution": {
		"relaxed": {
			Calculator: "execution",
			Execution: ExecutionConfig{
				TotalShares: "100000", Periods: 10, Horizon: "10",
				RiskAversion: "0.001", Volatility: "0.3", TempImpact: "0.1",
			},
		},
		"urgent": {
			Calculator: "execution",
			Execution: ExecutionConfig{
				TotalShares: "100000", Periods: 10, Horizon: "10",
				RiskAversion: "0.1", Volatility: "0.3", TempImpact: "0.1",
			},
		},
	},
	"credit_risk": {
		"basel": {
			Calculator: "credit_risk",
			CreditRisk: CreditRiskConfig{
				Exposure: "1000000", PD: "0.02", LGD: "0.45",
				Correlation: "0.15", Confidence: "0.999",
			},
		},
		"subprime": {
			Calculator: "credit_risk",
			CreditRisk: CreditRiskConfig{
				Exposure: "500000", PD: "0.08", LGD: "0.6",
				Correlation: "0.1", Confidence: "0.99",
			},
		},
	},
	"lease": {
		"office": {
			Calculator: "lease",
			Lease: LeaseConfig{
				Payment: "1000", Periods: 5, DiscountRate: "0.06",
			},
		},
		"implicit": {
			Calculator: "lease",
			Lease: LeaseConfig{
				Payment: "1000", Periods: 5, FairValue: "4212.3638",
			},
		},
	},
	"defi_yield": {
		"continuous": {
			Calculator: "defi_yield",
			DefiYield: PoolConfig{
				APR: "0.10", CompoundsPerYear: 0, PriceRatio: "1",
			},
		},
		"volatile_pair": {
			Calculator: "defi_yield",
			DefiYield: PoolConfig{
				APR: "0.25", CompoundsPerYear: 365, PriceRatio: "2",
			},
		},
	},
}

func GetPreset(calculator, preset string) *Config {
	calcPresets, ok := Presets[calculator]
	if !ok {
		return nil
	}
	cfg, ok := calcPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(calculator string) []string {
	calcPresets, ok := Presets[calculator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(calcPresets))
	for name := range calcPresets {
		names = append(names, name)
	}
	return names
}
