package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	"github.com/TwistedSD/Financial-Calculators/internal/output"
	"github.com/TwistedSD/Financial-Calculators/internal/store"
)

// runCalculator restores and saves inputs as requested, runs one calculation
// and renders it. prepare runs after inputs are final and before calculating.
func (o *rootOptions) runCalculator(cmd *cobra.Command, req domain.CalculationRequest, prepare func()) error {
	ctx := cmd.Context()
	kind := req.Kind

	var st store.Store
	if o.save || o.restore {
		s, err := store.Open(ctx, o.app)
		if err != nil {
			return fmt.Errorf("open %s store: %w", o.app.Store, err)
		}
		defer s.Close()
		st = s
	}

	if o.restore {
		found, err := restoreInputs(ctx, cmd, st, kind, req.Params(kind))
		if err != nil {
			return err
		}
		if found {
			o.logger.Infof("restored saved %s inputs", kind)
		} else {
			o.logger.Infof("no saved %s inputs, using flags and defaults", kind)
		}
	}
	if prepare != nil {
		prepare()
	}
	config.ApplyRequestDefaults(&req, o.currency)
	if err := config.ValidateRequest(&req); err != nil {
		return err
	}

	outcome, err := o.engine().Run(ctx, req)
	if err != nil {
		return err
	}

	if o.save {
		if err := st.Save(ctx, kind, req.Params(kind)); err != nil {
			return fmt.Errorf("save %s inputs: %w", kind, err)
		}
		o.logger.Infof("saved %s inputs", kind)
	}

	results := &domain.BatchResult{Currency: o.currency, Locale: o.locale, Outcomes: []domain.CalculationOutcome{outcome}}
	return o.render(cmd, results)
}

// render writes results in the selected format to stdout or to --output
func (o *rootOptions) render(cmd *cobra.Command, results *domain.BatchResult) error {
	if o.output != "" {
		path, err := output.GenerateReport(results, o.format, o.output)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	f := output.GetFormatterByName(o.format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", output.ErrUnsupportedFormat, o.format,
			strings.Join(output.AvailableFormatterNames(), ", "), strings.Join(output.AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
