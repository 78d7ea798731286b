package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	"github.com/TwistedSD/Financial-Calculators/internal/output"
)

func useTempStore(t *testing.T) {
	t.Helper()
	t.Setenv("FINCALC_STORE", config.StoreSQLite)
	t.Setenv("FINCALC_SQLITE_PATH", filepath.Join(t.TempDir(), "fincalc.db"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func executeJSON(t *testing.T, args ...string) domain.BatchResult {
	t.Helper()
	out, err := execute(t, append(args, "--format", "json")...)
	require.NoError(t, err)
	var results domain.BatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results.Outcomes, 1)
	return results
}

func TestLoanCommand(t *testing.T) {
	results := executeJSON(t, "loan", "--principal", "15,000", "--rate", "7.5%", "--years", "5", "--name", "Car")

	outcome := results.Outcomes[0]
	assert.Equal(t, "Car", outcome.Name)
	require.NotNil(t, outcome.Loan)
	assert.Equal(t, "300.57", outcome.Loan.Payment.MonthlyPayment.StringFixed(2))
	assert.Equal(t, 60, outcome.Loan.Payment.NumberOfPayments)
	assert.Equal(t, "USD", results.Currency)
}

func TestMortgageCommandEstimatesPMI(t *testing.T) {
	results := executeJSON(t, "mortgage", "--price", "300000", "--down", "30000", "--estimate-pmi")

	m := results.Outcomes[0].Mortgage
	require.NotNil(t, m)
	assert.True(t, decimal.RequireFromString("157.5").Equal(m.MonthlyPMI), m.MonthlyPMI.String())
	assert.True(t, decimal.NewFromInt(270000).Equal(m.LoanAmount))
}

func TestBudgetCommandCategories(t *testing.T) {
	results := executeJSON(t, "budget", "--category", "housing=1600", "--category", "Pet Care=80")

	b := results.Outcomes[0].Budget
	require.NotNil(t, b)
	assert.True(t, decimal.NewFromInt(4180).Equal(b.TotalExpenses), b.TotalExpenses.String())
	assert.True(t, decimal.NewFromInt(820).Equal(b.Remaining))
	require.Len(t, b.Breakdown, 9)
	assert.Equal(t, "Housing", b.Breakdown[0].Category)
	assert.Equal(t, "Pet Care", b.Breakdown[8].Category)
}

func TestDefaultsMatchExamples(t *testing.T) {
	results := executeJSON(t, "compound")
	c := results.Outcomes[0].Compound
	require.NotNil(t, c)
	assert.Equal(t, "144572.72", c.FutureValue.StringFixed(2))

	results = executeJSON(t, "retirement")
	r := results.Outcomes[0].Retirement
	require.NotNil(t, r)
	assert.Equal(t, domain.StatusBehind, r.Status)
}

func TestSaveAndRestore(t *testing.T) {
	useTempStore(t)

	executeJSON(t, "loan", "--principal", "20000", "--rate", "5", "--years", "4", "--save")

	results := executeJSON(t, "loan", "--restore", "--years", "3")
	loan := results.Outcomes[0].Loan
	require.NotNil(t, loan)
	assert.True(t, decimal.NewFromInt(20000).Equal(loan.Principal), loan.Principal.String())
	assert.Equal(t, 36, loan.Payment.NumberOfPayments)

	// Restoring another calculator with nothing saved falls back to defaults.
	results = executeJSON(t, "mortgage", "--restore")
	require.NotNil(t, results.Outcomes[0].Mortgage)
	assert.True(t, decimal.NewFromInt(240000).Equal(results.Outcomes[0].Mortgage.LoanAmount))
}

func TestRestoreBudgetKeepsExplicitCategories(t *testing.T) {
	useTempStore(t)

	executeJSON(t, "budget", "--income", "6000", "--category", "Travel=250", "--save")

	results := executeJSON(t, "budget", "--restore", "--category", "Travel=300")
	b := results.Outcomes[0].Budget
	require.NotNil(t, b)
	assert.True(t, decimal.NewFromInt(6000).Equal(b.Income))
	last := b.Breakdown[len(b.Breakdown)-1]
	assert.Equal(t, "Travel", last.Category)
	assert.True(t, decimal.NewFromInt(300).Equal(last.Amount))
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "loan", "--principal", "0")
	assert.ErrorIs(t, err, calculation.ErrInvalidInput)

	_, err = execute(t, "loan", "--format", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, err = execute(t, "loan", "--rate", "lots")
	assert.Error(t, err)

	_, err = execute(t, "budget", "--currency", "DOLLARS")
	assert.Error(t, err)

	_, err = execute(t, "investment", "--investment-currency", "XYZ", "--format", "csv")
	assert.ErrorIs(t, err, calculation.ErrInvalidInput)
	assert.ErrorContains(t, err, "ISO 4217")
}

func TestOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loan.csv")
	out, err := execute(t, "loan", "--format", "csv", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "ID,Name,Kind,Metric,Value,Currency,Error"))
}

func TestRunCommand(t *testing.T) {
	content := "requests:\n" +
		"  - name: Car\n" +
		"    loan: {principal: 15000, annual_rate_percent: 7.5, term_years: 5}\n" +
		"  - name: Too late\n" +
		"    retirement: {current_age: 70, retirement_age: 65}\n"
	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, "run", path, "--format", "json", "--currency", "EUR")
	require.NoError(t, err)
	var results domain.BatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, "EUR", results.Currency)
	require.Len(t, results.Outcomes, 2)
	assert.Equal(t, 1, results.FailedCount())

	_, err = execute(t, "run", path, "--format", "json", "--strict")
	assert.ErrorIs(t, err, errCalculationsFailed)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExampleCommand(t *testing.T) {
	out, err := execute(t, "example")
	require.NoError(t, err)
	assert.Contains(t, out, "Car loan")

	batch, err := config.NewInputParser().Parse([]byte(out), "yaml")
	require.NoError(t, err)
	assert.Len(t, batch.Requests, 6)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fincalc v"+Version)
}

func TestDecimalValue(t *testing.T) {
	var d decimal.Decimal
	v := newDecimalValue(&d)

	require.NoError(t, v.Set("$1,500.25"))
	assert.Equal(t, "1500.25", v.String())
	require.NoError(t, v.Set("7.5%"))
	assert.Equal(t, "7.5", d.String())
	assert.Error(t, v.Set("seven"))
	assert.Equal(t, "decimal", v.Type())
}

func TestCategoriesValue(t *testing.T) {
	categories := domain.ExpenseCategories{{Name: "Housing", Amount: decimal.NewFromInt(1500)}}
	v := &categoriesValue{categories: &categories}

	require.NoError(t, v.Set("HOUSING=1800, Gym=40"))
	require.Len(t, categories, 2)
	assert.True(t, decimal.NewFromInt(1800).Equal(categories[0].Amount))
	assert.Equal(t, "Gym", categories[1].Name)
	assert.Equal(t, "HOUSING=1800,Gym=40", v.String())

	assert.Error(t, v.Set("=5"))
	assert.Error(t, v.Set("Gym"))
	assert.Error(t, v.Set("Gym=free"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("Warning").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}
