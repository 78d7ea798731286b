package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TwistedSD/Financial-Calculators/internal/config"
)

// errCalculationsFailed is returned by run --strict when requests in a file failed.
var errCalculationsFailed = errors.New("some calculations failed")

func newRunCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run every calculation in a YAML, TOML or JSON request file",
		Long: `Runs a batch of calculations from a request file. A request that fails is
reported in place and the rest of the file still runs.`,
		Example: `  fincalc run requests.yaml
  fincalc run requests.toml --format html -o report.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			batch, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("currency") {
				batch.Currency = opts.currency
			}
			if cmd.Flags().Changed("locale") {
				batch.Locale = opts.locale
			}

			results, err := opts.engine().RunBatch(cmd.Context(), batch)
			if err != nil {
				return err
			}
			if err := opts.render(cmd, results); err != nil {
				return err
			}
			if strict && results.FailedCount() > 0 {
				return fmt.Errorf("%w: %d of %d", errCalculationsFailed, results.FailedCount(), len(results.Outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any calculation fails")
	return cmd
}

func newExampleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example request file covering every calculator",
		Example: `  fincalc example > requests.yaml
  fincalc run requests.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			batch := config.NewInputParser().CreateExampleBatch()
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(batch); err != nil {
				return fmt.Errorf("failed to encode example: %w", err)
			}
			return enc.Close()
		},
	}
}
