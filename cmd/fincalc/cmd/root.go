package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/output"
)

// rootOptions holds the persistent flags and the settings resolved from them.
type rootOptions struct {
	format   string
	output   string
	currency string
	locale   string
	verbose  bool
	save     bool
	restore  bool

	app    config.AppConfig
	logger calculation.Logger
}

// NewRootCmd builds the fincalc command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: calculation.NopLogger{}}

	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Personal finance calculators",
		Long: `fincalc answers everyday money questions from the command line.

Calculators:
  loan        - level payment and amortization schedule
  mortgage    - monthly housing cost with escrow, HOA and PMI
  compound    - compound interest with monthly contributions
  investment  - investment growth with inflation adjustment
  retirement  - retirement savings against the 25x goal
  budget      - monthly budget breakdown and savings rate

Inputs can be saved with --save and restored with --restore. Saved inputs
expire after FINCALC_FRESHNESS (default 7 days).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.format, "format", "f", "console", "output format ("+formatHelp()+")")
	pf.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	pf.StringVar(&opts.currency, "currency", "", "ISO 4217 currency code (default FINCALC_CURRENCY or USD)")
	pf.StringVar(&opts.locale, "locale", "", "BCP 47 locale for number formatting (default FINCALC_LOCALE or en-US)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	pf.BoolVar(&opts.save, "save", false, "save the inputs of this calculation")
	pf.BoolVar(&opts.restore, "restore", false, "start from the last saved inputs; explicit flags still win")

	rootCmd.AddCommand(
		newLoanCmd(opts),
		newMortgageCmd(opts),
		newCompoundCmd(opts),
		newInvestmentCmd(opts),
		newRetirementCmd(opts),
		newBudgetCmd(opts),
		newRunCmd(opts),
		newExampleCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

// resolve merges environment settings with the persistent flags
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	app, err := config.LoadAppConfig()
	if err != nil {
		return err
	}
	o.app = app
	if o.currency == "" {
		o.currency = app.Currency
	}
	if o.locale == "" {
		o.locale = app.Locale
	}
	if err := config.ValidateCurrency(o.currency); err != nil {
		return err
	}

	level := app.LogLevel
	if o.verbose {
		level = "debug"
	}
	o.logger = newSlogLogger(cmd.ErrOrStderr(), level)
	return nil
}

func formatHelp() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}

func (o *rootOptions) engine() *calculation.Engine {
	e := calculation.NewEngine()
	e.SetLogger(o.logger)
	e.Debug = o.verbose
	return e
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
