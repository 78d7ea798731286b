package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

func runFile(t *testing.T, path string) *domain.BatchResult {
	t.Helper()
	batch, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	results, err := calculation.NewEngine().RunBatch(context.Background(), batch)
	require.NoError(t, err)
	return results
}

func TestEndToEndCalculation(t *testing.T) {
	results := runFile(t, "../testdata/example_requests.yaml")

	require.Len(t, results.Outcomes, 6)
	assert.Zero(t, results.FailedCount())

	kinds := make([]domain.Kind, 0, len(results.Outcomes))
	for _, o := range results.Outcomes {
		kinds = append(kinds, o.Kind)
		assert.NotEmpty(t, o.ID)
	}
	assert.Equal(t, domain.Kinds(), kinds)
}

func TestBasicCalculations(t *testing.T) {
	results := runFile(t, "../testdata/example_requests.yaml")
	byName := map[string]domain.CalculationOutcome{}
	for _, o := range results.Outcomes {
		byName[o.Name] = o
	}

	loan := byName["Car loan"].Loan
	require.NotNil(t, loan)
	assert.Equal(t, "300.57", loan.Payment.MonthlyPayment.StringFixed(2))
	assert.True(t, loan.Schedule.TotalPrincipal().Sub(decimal.NewFromInt(15000)).Abs().LessThan(decimal.RequireFromString("0.01")))

	mortgage := byName["Home purchase"].Mortgage
	require.NotNil(t, mortgage)
	assert.Equal(t, "1916.96", mortgage.MonthlyTotal.StringFixed(2))

	compound := byName["Savings account"].Compound
	require.NotNil(t, compound)
	assert.Equal(t, "144572.72", compound.FutureValue.StringFixed(2))

	investment := byName["Brokerage account"].Investment
	require.NotNil(t, investment)
	assert.Equal(t, "113062.27", investment.FutureValue.StringFixed(2))
	assert.Equal(t, "USD", investment.Currency)

	retirement := byName["Retirement plan"].Retirement
	require.NotNil(t, retirement)
	assert.Equal(t, domain.StatusBehind, retirement.Status)

	budget := byName["Monthly budget"].Budget
	require.NotNil(t, budget)
	assert.True(t, budget.SavingsRatePercent.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Food & Groceries", budget.Breakdown[2].Category)
}

func TestFailuresAreIsolated(t *testing.T) {
	results := runFile(t, "../testdata/example_requests.toml")

	assert.Equal(t, "EUR", results.Currency)
	assert.Equal(t, "de-DE", results.Locale)
	require.Len(t, results.Outcomes, 3)
	assert.False(t, results.Outcomes[0].Failed())
	assert.True(t, results.Outcomes[1].Failed())
	assert.Contains(t, results.Outcomes[1].Error, "retirement_age")
	assert.False(t, results.Outcomes[2].Failed())
	assert.True(t, results.Outcomes[2].Budget.Remaining.IsZero())
}
