package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/san-kum/finquant/internal/calc"
	"github.com/san-kum/finquant/internal/config"
	"github.com/san-kum/finquant/internal/linalg"
	"github.com/san-kum/finquant/internal/storage"
	"github.com/san-kum/finquant/internal/tui"
	"github.com/san-kum/finquant/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finquant",
		Short: "exact-decimal financial calculators",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the run browser when no command given
			return tui.Run(storage.New(dataDir))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".finquant", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [calculator]",
		Short: "run a calculator",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCalculator,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [calculator]",
		Short: "list available presets for a calculator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range config.Calculators() {
					fmt.Println(name)
				}
				return nil
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for calculator: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "browse stored runs interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(storage.New(dataDir))
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCalculator(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Calculator = args[0]
	}

	if preset != "" {
		pcfg := config.GetPreset(cfg.Calculator, preset)
		if pcfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(cfg.Calculator))
		}
		cfg = pcfg
	}

	results, series, warnings, err := dispatch(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Calculator, preset, results, series)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(cfg.Calculator))
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s %s\n",
			viz.MetricLabel.Render(fmt.Sprintf("%-20s", name)),
			viz.MetricValue.Render(results[name].String()))
	}
	for _, w := range warnings {
		fmt.Println("  " + viz.Subtle.Render("warning: "+w))
	}
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

func dispatch(cfg *config.Config) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	switch cfg.Calculator {
	case "bond":
		return runBond(cfg.Bond)
	case "real_estate":
		return runRealEstate(cfg.RealEstate)
	case "private_credit":
		return runPrivateCredit(cfg.PrivateCredit)
	case "black_litterman":
		return runBlackLitterman(cfg.BlackLitterman)
	case "execution":
		return runExecution(cfg.Execution)
	case "credit_risk":
		return runCreditRisk(cfg.CreditRisk)
	case "lease":
		return runLease(cfg.Lease)
	case "defi_yield":
		return runDefiYield(cfg.DefiYield)
	}
	return nil, nil, nil, fmt.Errorf("unknown calculator: %s (available: %v)",
		cfg.Calculator, config.Calculators())
}

func runBond(c config.BondConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	face, err := config.ParseDec("bond.face", c.Face)
	if err != nil {
		return nil, nil, nil, err
	}
	coupon, err := config.ParseDec("bond.coupon_rate", c.CouponRate)
	if err != nil {
		return nil, nil, nil, err
	}
	stub, err := config.ParseDec("bond.stub_fraction", c.StubFraction)
	if err != nil {
		return nil, nil, nil, err
	}

	b := &calc.Bond{
		Face:         face,
		CouponRate:   coupon,
		Frequency:    c.Frequency,
		Periods:      c.Periods,
		StubFraction: stub,
	}

	results := make(map[string]decimal.Decimal)

	if c.Yield != "" {
		y, err := config.ParseDec("bond.yield", c.Yield)
		if err != nil {
			return nil, nil, nil, err
		}
		pricing, err := b.PriceFromYield(y)
		if err != nil {
			return nil, nil, nil, err
		}
		results["dirty_price"] = pricing.DirtyPrice
		results["clean_price"] = pricing.CleanPrice
		results["accrued_interest"] = pricing.AccruedInterest
	}

	if c.Price != "" {
		price, err := config.ParseDec("bond.price", c.Price)
		if err != nil {
			return nil, nil, nil, err
		}
		ytm, err := b.YieldToMaturity(price)
		if err != nil {
			return nil, nil, nil, err
		}
		results["yield_to_maturity"] = ytm
	}

	if len(results) == 0 {
		return nil, nil, nil, fmt.Errorf("bond scenario needs a yield or a price")
	}
	return results, nil, nil, nil
}

func runRealEstate(c config.RealEstateConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	price, err := config.ParseDec("real_estate.purchase_price", c.PurchasePrice)
	if err != nil {
		return nil, nil, nil, err
	}
	loan, err := config.ParseDec("real_estate.loan_amount", c.LoanAmount)
	if err != nil {
		return nil, nil, nil, err
	}
	rate, err := config.ParseDec("real_estate.interest_rate", c.InterestRate)
	if err != nil {
		return nil, nil, nil, err
	}
	noi, err := config.ParseDecSlice("real_estate.noi", c.NOI)
	if err != nil {
		return nil, nil, nil, err
	}
	exitCap, err := config.ParseDec("real_estate.exit_cap_rate", c.ExitCapRate)
	if err != nil {
		return nil, nil, nil, err
	}
	selling, err := config.ParseDec("real_estate.selling_cost_rate", c.SellingCostRate)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &calc.PropertyInvestment{
		PurchasePrice:   price,
		LoanAmount:      loan,
		InterestRate:    rate,
		NOI:             noi,
		ExitCapRate:     exitCap,
		SellingCostRate: selling,
	}
	r, err := p.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{
		"net_sale_proceeds": r.NetSaleProceeds,
		"unlevered_irr":     r.UnleveredIRR,
		"levered_irr":       r.LeveredIRR,
		"equity_multiple":   r.EquityMultiple,
	}
	series := map[string][]decimal.Decimal{"noi": noi}
	return results, series, nil, nil
}

func runPrivateCredit(c config.TrancheConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	principal, err := config.ParseDec("private_credit.principal", c.Principal)
	if err != nil {
		return nil, nil, nil, err
	}
	coupon, err := config.ParseDec("private_credit.coupon_rate", c.CouponRate)
	if err != nil {
		return nil, nil, nil, err
	}
	price, err := config.ParseDec("private_credit.purchase_price", c.PurchasePrice)
	if err != nil {
		return nil, nil, nil, err
	}
	fee, err := config.ParseDec("private_credit.upfront_fee_rate", c.UpfrontFeeRate)
	if err != nil {
		return nil, nil, nil, err
	}
	premium, err := config.ParseDec("private_credit.call_premium", c.CallPremium)
	if err != nil {
		return nil, nil, nil, err
	}

	tr := &calc.Tranche{
		Principal:      principal,
		CouponRate:     coupon,
		Frequency:      c.Frequency,
		TermPeriods:    c.TermPeriods,
		PurchasePrice:  price,
		UpfrontFeeRate: fee,
		CallPeriod:     c.CallPeriod,
		CallPremium:    premium,
	}
	r, err := tr.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{
		"yield_to_maturity": r.YieldToMaturity,
		"net_outlay":        r.NetOutlay,
	}
	if c.CallPeriod > 0 {
		results["yield_to_call"] = r.YieldToCall
	}
	return results, nil, r.Warnings, nil
}

func runBlackLitterman(c config.BLConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	lambda, err := config.ParseDec("black_litterman.risk_aversion", c.RiskAversion)
	if err != nil {
		return nil, nil, nil, err
	}
	tau, err := config.ParseDec("black_litterman.tau", c.Tau)
	if err != nil {
		return nil, nil, nil, err
	}
	sigma, err := parseMatrix("black_litterman.sigma", c.Sigma)
	if err != nil {
		return nil, nil, nil, err
	}
	weights, err := config.ParseDecSlice("black_litterman.market_weights", c.MarketWeights)
	if err != nil {
		return nil, nil, nil, err
	}

	bl := &calc.BlackLitterman{
		RiskAversion:  lambda,
		Tau:           tau,
		Sigma:         sigma,
		MarketWeights: linalg.Vector(weights),
	}

	if len(c.Views) > 0 {
		p, err := parseMatrix("black_litterman.views", c.Views)
		if err != nil {
			return nil, nil, nil, err
		}
		q, err := config.ParseDecSlice("black_litterman.view_returns", c.ViewReturns)
		if err != nil {
			return nil, nil, nil, err
		}
		variances, err := config.ParseDecSlice("black_litterman.view_variances", c.ViewVariances)
		if err != nil {
			return nil, nil, nil, err
		}
		bl.P = p
		bl.Q = linalg.Vector(q)
		bl.Omega = linalg.Diagonal(linalg.Vector(variances))
	}

	r, err := bl.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{
		"portfolio_variance": r.PortfolioVariance,
	}
	series := map[string][]decimal.Decimal{
		"equilibrium": r.Equilibrium,
		"posterior":   r.Posterior,
		"weights":     r.Weights,
	}
	return results, series, nil, nil
}

func parseMatrix(field string, rows [][]string) (*linalg.Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("config: field %s: empty matrix", field)
	}
	m := linalg.NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("config: field %s: ragged row %d", field, i)
		}
		for j, cell := range row {
			v, err := config.ParseDec(fmt.Sprintf("%s[%d][%d]", field, i, j), cell)
			if err != nil {
				return nil, err
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func runExecution(c config.ExecutionConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	shares, err := config.ParseDec("execution.total_shares", c.TotalShares)
	if err != nil {
		return nil, nil, nil, err
	}
	horizon, err := config.ParseDec("execution.horizon", c.Horizon)
	if err != nil {
		return nil, nil, nil, err
	}
	lambda, err := config.ParseDec("execution.risk_aversion", c.RiskAversion)
	if err != nil {
		return nil, nil, nil, err
	}
	vol, err := config.ParseDec("execution.volatility", c.Volatility)
	if err != nil {
		return nil, nil, nil, err
	}
	eta, err := config.ParseDec("execution.temp_impact", c.TempImpact)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &calc.ExecutionPlan{
		TotalShares:  shares,
		Periods:      c.Periods,
		Horizon:      horizon,
		RiskAversion: lambda,
		Volatility:   vol,
		TempImpact:   eta,
	}
	tr, err := p.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{"kappa": tr.Kappa}
	series := map[string][]decimal.Decimal{
		"holdings": tr.Holdings,
		"trades":   tr.Trades,
	}
	return results, series, nil, nil
}

func runCreditRisk(c config.CreditRiskConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	exposure, err := config.ParseDec("credit_risk.exposure", c.Exposure)
	if err != nil {
		return nil, nil, nil, err
	}
	pd, err := config.ParseDec("credit_risk.pd", c.PD)
	if err != nil {
		return nil, nil, nil, err
	}
	lgd, err := config.ParseDec("credit_risk.lgd", c.LGD)
	if err != nil {
		return nil, nil, nil, err
	}
	rho, err := config.ParseDec("credit_risk.correlation", c.Correlation)
	if err != nil {
		return nil, nil, nil, err
	}
	confidence, err := config.ParseDec("credit_risk.confidence", c.Confidence)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &calc.CreditPortfolio{
		Exposure:    exposure,
		PD:          pd,
		LGD:         lgd,
		Correlation: rho,
		Confidence:  confidence,
	}
	r, err := p.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{
		"expected_loss":   r.ExpectedLoss,
		"worst_case_pd":   r.WorstCasePD,
		"quantile_loss":   r.QuantileLoss,
		"unexpected_loss": r.UnexpectedLoss,
	}
	return results, nil, nil, nil
}

func runLease(c config.LeaseConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	payment, err := config.ParseDec("lease.payment", c.Payment)
	if err != nil {
		return nil, nil, nil, err
	}
	rate, err := config.ParseDec("lease.discount_rate", c.DiscountRate)
	if err != nil {
		return nil, nil, nil, err
	}
	fair, err := config.ParseDec("lease.fair_value", c.FairValue)
	if err != nil {
		return nil, nil, nil, err
	}

	l := &calc.Lease{
		Payment:      payment,
		Periods:      c.Periods,
		DiscountRate: rate,
		FairValue:    fair,
	}
	r, err := l.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{
		"present_value": r.PresentValue,
		"rate":          r.Rate,
	}
	interest := make([]decimal.Decimal, len(r.Schedule))
	principal := make([]decimal.Decimal, len(r.Schedule))
	balance := make([]decimal.Decimal, len(r.Schedule))
	for i, row := range r.Schedule {
		interest[i] = row.Interest
		principal[i] = row.Principal
		balance[i] = row.Balance
	}
	series := map[string][]decimal.Decimal{
		"interest":  interest,
		"principal": principal,
		"balance":   balance,
	}
	return results, series, nil, nil
}

func runDefiYield(c config.PoolConfig) (map[string]decimal.Decimal, map[string][]decimal.Decimal, []string, error) {
	apr, err := config.ParseDec("defi_yield.apr", c.APR)
	if err != nil {
		return nil, nil, nil, err
	}
	ratio, err := config.ParseDec("defi_yield.price_ratio", c.PriceRatio)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &calc.PoolPosition{
		APR:              apr,
		CompoundsPerYear: c.CompoundsPerYear,
		PriceRatio:       ratio,
	}
	r, err := p.Compute()
	if err != nil {
		return nil, nil, nil, err
	}

	results := map[string]decimal.Decimal{
		"apy":              r.APY,
		"impermanent_loss": r.ImpermanentLoss,
	}
	return results, nil, nil, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCALCULATOR\tPRESET\tTIME\tRESULTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Calculator,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Results),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("run %s has no series to plot", runID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("calculator: %s\n\n", meta.Calculator)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(viz.Line(series[name], 10, 80, name))
		fmt.Println()
	}

	return nil
}
