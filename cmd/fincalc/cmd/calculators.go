package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

func newLoanCmd(opts *rootOptions) *cobra.Command {
	p := config.ExampleLoan()
	var name string

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Level payment and yearly amortization for a loan",
		Example: `  fincalc loan --principal 15000 --rate 7.5 --years 5
  fincalc loan --principal 8000 --rate 6 --years 2 --payments-per-year 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCalculator(cmd, domain.CalculationRequest{Name: name, Kind: domain.KindLoan, Loan: p}, nil)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "label for the report")
	f.Var(newDecimalValue(&p.Principal), "principal", "amount borrowed")
	f.Var(newDecimalValue(&p.AnnualRatePercent), "rate", "annual interest rate in percent")
	f.Var(newDecimalValue(&p.TermYears), "years", "loan term in years")
	f.IntVar(&p.PaymentsPerYear, "payments-per-year", p.PaymentsPerYear, "payments per year")
	return cmd
}

func newMortgageCmd(opts *rootOptions) *cobra.Command {
	p := config.ExampleMortgage()
	var (
		name        string
		estimatePMI bool
	)

	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Monthly housing payment with taxes, insurance, HOA and PMI",
		Example: `  fincalc mortgage --price 300000 --down 60000 --rate 6.5
  fincalc mortgage --price 400000 --down 20000 --estimate-pmi --format html -o mortgage.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.CalculationRequest{Name: name, Kind: domain.KindMortgage, Mortgage: p}
			return opts.runCalculator(cmd, req, func() {
				if estimatePMI {
					p.PMIMonthly = calculation.EstimateMonthlyPMI(p.HomePrice, p.DownPayment)
				}
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "label for the report")
	f.Var(newDecimalValue(&p.HomePrice), "price", "home price")
	f.Var(newDecimalValue(&p.DownPayment), "down", "down payment")
	f.Var(newDecimalValue(&p.AnnualRatePercent), "rate", "annual interest rate in percent")
	f.IntVar(&p.TermYears, "years", p.TermYears, "mortgage term in years")
	f.Var(newDecimalValue(&p.PropertyTaxAnnual), "property-tax", "annual property tax")
	f.Var(newDecimalValue(&p.HomeInsuranceAnnual), "insurance", "annual home insurance")
	f.Var(newDecimalValue(&p.HOAMonthly), "hoa", "monthly HOA fee")
	f.Var(newDecimalValue(&p.PMIMonthly), "pmi", "monthly PMI")
	f.BoolVar(&estimatePMI, "estimate-pmi", false, "estimate PMI at 0.7% a year of the loan when less than 20% is put down")
	return cmd
}

func newCompoundCmd(opts *rootOptions) *cobra.Command {
	p := config.ExampleCompound()
	var name string

	cmd := &cobra.Command{
		Use:     "compound",
		Aliases: []string{"compound-interest"},
		Short:   "Compound interest on a deposit with monthly contributions",
		Example: `  fincalc compound --principal 10000 --monthly 200 --rate 7 --years 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCalculator(cmd, domain.CalculationRequest{Name: name, Kind: domain.KindCompound, Compound: p}, nil)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "label for the report")
	f.Var(newDecimalValue(&p.Principal), "principal", "initial deposit")
	f.Var(newDecimalValue(&p.MonthlyContribution), "monthly", "monthly contribution")
	f.Var(newDecimalValue(&p.AnnualRatePercent), "rate", "annual interest rate in percent")
	f.IntVar(&p.Years, "years", p.Years, "years to grow")
	f.IntVar(&p.CompoundsPerYear, "compounds-per-year", p.CompoundsPerYear, "compounding periods per year for the deposit")
	return cmd
}

func newInvestmentCmd(opts *rootOptions) *cobra.Command {
	p := config.ExampleInvestment()
	p.Currency = ""
	var name string

	cmd := &cobra.Command{
		Use:   "investment",
		Short: "Investment growth, return on contributions and inflation-adjusted value",
		Example: `  fincalc investment --initial 10000 --contribution 500 --rate 8 --years 10 --inflation 3
  fincalc investment --timing beginning --investment-currency EUR`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCalculator(cmd, domain.CalculationRequest{Name: name, Kind: domain.KindInvestment, Investment: p}, nil)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "label for the report")
	f.Var(newDecimalValue(&p.InitialAmount), "initial", "initial investment")
	f.Var(newDecimalValue(&p.PeriodicContribution), "contribution", "contribution per period")
	f.IntVar(&p.ContributionsPerYear, "contributions-per-year", p.ContributionsPerYear, "contributions per year")
	f.Var(newDecimalValue(&p.AnnualRatePercent), "rate", "expected annual return in percent")
	f.IntVar(&p.Years, "years", p.Years, "investment horizon in years")
	f.Var(newDecimalValue(&p.InflationRatePercent), "inflation", "annual inflation in percent")
	f.StringVar((*string)(&p.ContributionTiming), "timing", string(p.ContributionTiming), "contribution timing (end, beginning)")
	f.StringVar(&p.Currency, "investment-currency", "", "currency of this investment (default --currency)")
	return cmd
}

func newRetirementCmd(opts *rootOptions) *cobra.Command {
	p := config.ExampleRetirement()
	var name string

	cmd := &cobra.Command{
		Use:     "retirement",
		Short:   "Projected retirement savings against a 25x income goal",
		Example: `  fincalc retirement --age 35 --retire-at 65 --savings 50000 --monthly 500 --return 7 --income 60000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCalculator(cmd, domain.CalculationRequest{Name: name, Kind: domain.KindRetirement, Retirement: p}, nil)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "label for the report")
	f.IntVar(&p.CurrentAge, "age", p.CurrentAge, "current age")
	f.IntVar(&p.RetirementAge, "retire-at", p.RetirementAge, "retirement age")
	f.Var(newDecimalValue(&p.CurrentSavings), "savings", "current retirement savings")
	f.Var(newDecimalValue(&p.MonthlyContribution), "monthly", "monthly contribution")
	f.Var(newDecimalValue(&p.ExpectedReturnPercent), "return", "expected annual return in percent")
	f.Var(newDecimalValue(&p.DesiredAnnualRetirementIncome), "income", "desired annual retirement income")
	return cmd
}

func newBudgetCmd(opts *rootOptions) *cobra.Command {
	p := config.ExampleBudget()
	var name string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Monthly budget breakdown and savings rate",
		Example: `  fincalc budget --income 5000 --category Housing=1500 --category "Food & Groceries=600"
  fincalc budget --category "Pet Care=80,Childcare=900"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCalculator(cmd, domain.CalculationRequest{Name: name, Kind: domain.KindBudget, Budget: p}, nil)
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "label for the report")
	f.Var(newDecimalValue(&p.MonthlyIncome), "income", "monthly income")
	f.Var(&categoriesValue{categories: &p.Categories}, "category", "set a category amount as Name=Amount (repeatable)")
	return cmd
}
