package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config selects a calculator and carries one section per product.
// Numeric fields are decimal strings, not floats: scenario files feed an
// exact-decimal kernel and must not pick up binary rounding on the way in.
type Config struct {
	Calculator string `yaml:"calculator"`

	Bond           BondConfig       `yaml:"bond"`
	RealEstate     RealEstateConfig `yaml:"real_estate"`
	PrivateCredit  TrancheConfig    `yaml:"private_credit"`
	BlackLitterman BLConfig         `yaml:"black_litterman"`
	Execution      ExecutionConfig  `yaml:"execution"`
	CreditRisk     CreditRiskConfig `yaml:"credit_risk"`
	Lease          LeaseConfig      `yaml:"lease"`
	DefiYield      PoolConfig       `yaml:"defi_yield"`
}

type BondConfig struct {
	Face         string `yaml:"face"`
	CouponRate   string `yaml:"coupon_rate"`
	Frequency    int    `yaml:"frequency"`
	Periods      int    `yaml:"periods"`
	StubFraction string `yaml:"stub_fraction"`
	Yield        string `yaml:"yield"` // price from this when set
	Price        string `yaml:"price"` // solve yield from this when set
}

type RealEstateConfig struct {
	PurchasePrice   string   `yaml:"purchase_price"`
	LoanAmount      string   `yaml:"loan_amount"`
	InterestRate    string   `yaml:"interest_rate"`
	NOI             []string `yaml:"noi"`
	ExitCapRate     string   `yaml:"exit_cap_rate"`
	SellingCostRate string   `yaml:"selling_cost_rate"`
}

type TrancheConfig struct {
	Principal      string `yaml:"principal"`
	CouponRate     string `yaml:"coupon_rate"`
	Frequency      int    `yaml:"frequency"`
	TermPeriods    int    `yaml:"term_periods"`
	PurchasePrice  string `yaml:"purchase_price"`
	UpfrontFeeRate string `yaml:"upfront_fee_rate"`
	CallPeriod     int    `yaml:"call_period"`
	CallPremium    string `yaml:"call_premium"`
}

type BLConfig struct {
	RiskAversion  string     `yaml:"risk_aversion"`
	Tau           string     `yaml:"tau"`
	Sigma         [][]string `yaml:"sigma"`
	MarketWeights []string   `yaml:"market_weights"`
	Views         [][]string `yaml:"views"`        // rows of P
	ViewReturns   []string   `yaml:"view_returns"` // Q
	ViewVariances []string   `yaml:"view_variances"`
}

type ExecutionConfig struct {
	TotalShares  string `yaml:"total_shares"`
	Periods      int    `yaml:"periods"`
	Horizon      string `yaml:"horizon"`
	RiskAversion string `yaml:"risk_aversion"`
	Volatility   string `yaml:"volatility"`
	TempImpact   string `yaml:"temp_impact"`
}

type CreditRiskConfig struct {
	Exposure    string `yaml:"exposure"`
	PD          string `yaml:"pd"`
	LGD         string `yaml:"lgd"`
	Correlation string `yaml:"correlation"`
	Confidence  string `yaml:"confidence"`
}

type LeaseConfig struct {
	Payment      string `yaml:"payment"`
	Periods      int    `yaml:"periods"`
	DiscountRate string `yaml:"discount_rate"`
	FairValue    string `yaml:"fair_value"`
}

type PoolConfig struct {
	APR              string `yaml:"apr"`
	CompoundsPerYear int    `yaml:"compounds_per_year"`
	PriceRatio       string `yaml:"price_ratio"`
}

// Calculators lists the recognized calculator names.
func Calculators() []string {
	return []string{
		"bond", "real_estate", "private_credit", "black_litterman",
		"execution", "credit_risk", "lease", "defi_yield",
	}
}

// DefaultConfig returns a runnable bond scenario.
func DefaultConfig() *Config {
	return &Config{
		Calculator: "bond",
		Bond: BondConfig{
			Face:       "100",
			CouponRate: "0.06",
			Frequency:  2,
			Periods:    10,
			Yield:      "0.065",
		},
	}
}

// Load reads a yaml scenario over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the scenario as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseDec converts a decimal string, mapping "" to zero so optional
// fields can be omitted from scenario files.
func ParseDec(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("config: field %s: %w", field, err)
	}
	return d, nil
}

// ParseDecSlice converts a slice of decimal strings.
func ParseDecSlice(field string, ss []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		d, err := ParseDec(fmt.Sprintf("%s[%d]", field, i), s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
