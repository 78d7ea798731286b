package calculation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

func plannerCategories() domain.ExpenseCategories {
	return domain.ExpenseCategories{
		{Name: "Housing", Amount: d("1500")},
		{Name: "Utilities", Amount: d("200")},
		{Name: "Food & Groceries", Amount: d("600")},
		{Name: "Transportation", Amount: d("400")},
		{Name: "Insurance", Amount: d("300")},
		{Name: "Debt Payments", Amount: d("500")},
		{Name: "Entertainment", Amount: d("300")},
		{Name: "Other", Amount: d("200")},
	}
}

func TestCalculateBudget(t *testing.T) {
	result, err := CalculateBudget(domain.BudgetParameters{MonthlyIncome: d("5000"), Categories: plannerCategories()})
	require.NoError(t, err)

	assert.True(t, result.TotalExpenses.Equal(d("4000")))
	assert.True(t, result.Remaining.Equal(d("1000")))
	assert.True(t, result.SavingsRatePercent.Equal(d("20")))

	require.Len(t, result.Breakdown, 8)
	for i, c := range plannerCategories() {
		assert.Equal(t, c.Name, result.Breakdown[i].Category, "breakdown keeps input order")
	}
	assert.True(t, result.Breakdown[0].PercentOfTotal.Equal(d("37.5")))
	assert.True(t, result.Breakdown[7].PercentOfTotal.Equal(d("5")))
}

func TestCalculateBudgetEdgeCases(t *testing.T) {
	t.Run("over budget", func(t *testing.T) {
		result, err := CalculateBudget(domain.BudgetParameters{MonthlyIncome: d("3000"), Categories: plannerCategories()})
		require.NoError(t, err)
		assert.True(t, result.Remaining.Equal(d("-1000")))
		assert.True(t, result.SavingsRatePercent.IsNegative())
	})

	t.Run("no income", func(t *testing.T) {
		result, err := CalculateBudget(domain.BudgetParameters{Categories: plannerCategories()})
		require.NoError(t, err)
		assert.True(t, result.SavingsRatePercent.IsZero())
	})

	t.Run("no expenses", func(t *testing.T) {
		result, err := CalculateBudget(domain.BudgetParameters{MonthlyIncome: d("5000"), Categories: DefaultBudgetCategories()})
		require.NoError(t, err)
		assert.True(t, result.TotalExpenses.IsZero())
		assert.True(t, result.SavingsRatePercent.Equal(d("100")))
		for _, line := range result.Breakdown {
			assert.True(t, line.PercentOfTotal.IsZero(), line.Category)
		}
	})

	t.Run("negative category", func(t *testing.T) {
		_, err := CalculateBudget(domain.BudgetParameters{
			MonthlyIncome: d("5000"),
			Categories:    domain.ExpenseCategories{{Name: "Refund", Amount: d("-10")}},
		})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestDefaultBudgetCategories(t *testing.T) {
	categories := DefaultBudgetCategories()
	require.Len(t, categories, 8)
	assert.Equal(t, "Housing", categories[0].Name)
	assert.Equal(t, "Food & Groceries", categories[2].Name)
	assert.Equal(t, "Other", categories[7].Name)
}
