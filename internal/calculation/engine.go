package calculation

import (
	"context"
	"fmt"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// Engine dispatches calculation requests to the calculators
type Engine struct {
	Debug  bool // log every result in detail
	Logger Logger
}

// NewEngine creates a new calculation engine
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Run computes one request. The returned outcome always carries an ID and kind;
// on failure its Error field is set and the error is also returned.
func (e *Engine) Run(ctx context.Context, req domain.CalculationRequest) (domain.CalculationOutcome, error) {
	outcome := domain.CalculationOutcome{ID: idFunc(), Name: req.Name, Kind: req.Kind}
	if err := ctx.Err(); err != nil {
		outcome.Error = err.Error()
		return outcome, err
	}

	kind, err := req.ResolveKind()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
		outcome.Error = err.Error()
		return outcome, err
	}
	outcome.Kind = kind
	log := withPrefix(e.logger(), fmt.Sprintf("[%s %s]", kind, outcome.Title()))

	switch kind {
	case domain.KindLoan:
		outcome.Loan, err = CalculateLoan(*req.Loan)
	case domain.KindMortgage:
		outcome.Mortgage, err = CalculateMortgage(*req.Mortgage)
	case domain.KindCompound:
		outcome.Compound, err = CalculateCompoundInterest(*req.Compound)
	case domain.KindInvestment:
		outcome.Investment, err = CalculateInvestment(*req.Investment)
	case domain.KindRetirement:
		outcome.Retirement, err = CalculateRetirement(*req.Retirement)
	case domain.KindBudget:
		outcome.Budget, err = CalculateBudget(*req.Budget)
	default:
		err = fmt.Errorf("%w: unsupported calculator %q", ErrInvalidInput, kind)
	}
	if err != nil {
		log.Warnf("calculation failed: %v", err)
		outcome.Error = err.Error()
		return outcome, err
	}

	log.Debugf("calculation completed")
	if e.Debug {
		e.logResult(log, &outcome)
	}
	return outcome, nil
}

// RunBatch computes every request in order. A failing request records its error
// in its own outcome and does not affect the others; only cancellation of ctx
// stops the batch early.
func (e *Engine) RunBatch(ctx context.Context, batch *domain.Batch) (*domain.BatchResult, error) {
	if batch == nil {
		return nil, fmt.Errorf("%w: batch is nil", ErrInvalidInput)
	}
	result := &domain.BatchResult{
		Currency: batch.Currency,
		Locale:   batch.Locale,
		Outcomes: make([]domain.CalculationOutcome, 0, len(batch.Requests)),
	}
	for i, req := range batch.Requests {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch stopped at request %d: %w", i+1, err)
		}
		outcome, _ := e.Run(ctx, req)
		result.Outcomes = append(result.Outcomes, outcome)
	}
	if failed := result.FailedCount(); failed > 0 {
		e.logger().Warnf("%d of %d calculations failed", failed, len(result.Outcomes))
	} else {
		e.logger().Infof("%d calculations completed", len(result.Outcomes))
	}
	return result, nil
}

func (e *Engine) logResult(log Logger, o *domain.CalculationOutcome) {
	switch {
	case o.Loan != nil:
		log.Debugf("payment=%s total_paid=%s total_interest=%s rows=%d",
			o.Loan.Payment.MonthlyPayment.StringFixed(2), o.Loan.Payment.TotalPaid.StringFixed(2),
			o.Loan.Payment.TotalInterest.StringFixed(2), len(o.Loan.Schedule))
	case o.Mortgage != nil:
		log.Debugf("loan=%s p&i=%s monthly_total=%s", o.Mortgage.LoanAmount.StringFixed(2),
			o.Mortgage.MonthlyPrincipalInterest.StringFixed(2), o.Mortgage.MonthlyTotal.StringFixed(2))
	case o.Compound != nil:
		log.Debugf("future_value=%s interest=%s", o.Compound.FutureValue.StringFixed(2), o.Compound.TotalInterest.StringFixed(2))
	case o.Investment != nil:
		log.Debugf("future_value=%s roi=%s%%", o.Investment.FutureValue.StringFixed(2), o.Investment.ReturnOnInvestmentPercent.StringFixed(2))
	case o.Retirement != nil:
		log.Debugf("projected=%s goal=%s status=%s", o.Retirement.ProjectedSavings.StringFixed(2),
			o.Retirement.SavingsGoal.StringFixed(2), o.Retirement.Status)
	case o.Budget != nil:
		log.Debugf("expenses=%s remaining=%s", o.Budget.TotalExpenses.StringFixed(2), o.Budget.Remaining.StringFixed(2))
	}
}
