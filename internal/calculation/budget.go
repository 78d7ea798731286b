package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

// DefaultBudgetCategories returns the planner's standard categories with zero amounts.
func DefaultBudgetCategories() domain.ExpenseCategories {
	names := []string{
		"Housing",
		"Utilities",
		"Food & Groceries",
		"Transportation",
		"Insurance",
		"Debt Payments",
		"Entertainment",
		"Other",
	}
	out := make(domain.ExpenseCategories, 0, len(names))
	for _, name := range names {
		out = append(out, domain.ExpenseCategory{Name: name, Amount: decimal.Zero})
	}
	return out
}

// CalculateBudget totals the categories, reports what is left of the income, and
// gives each category's share of total expenses in input order.
func CalculateBudget(params domain.BudgetParameters) (*domain.BudgetResult, error) {
	if params.MonthlyIncome.IsNegative() {
		return nil, invalid("monthly_income", "must not be negative")
	}
	total := decimal.Zero
	for _, c := range params.Categories {
		if c.Amount.IsNegative() {
			return nil, invalid("categories."+c.Name, "must not be negative")
		}
		total = total.Add(c.Amount)
	}

	remaining := params.MonthlyIncome.Sub(total)
	breakdown := make([]domain.BudgetLine, 0, len(params.Categories))
	for _, c := range params.Categories {
		breakdown = append(breakdown, domain.BudgetLine{
			Category:       c.Name,
			Amount:         c.Amount,
			PercentOfTotal: pdec.PercentOf(c.Amount, total),
		})
	}

	return &domain.BudgetResult{
		Income:             params.MonthlyIncome,
		TotalExpenses:      total,
		Remaining:          remaining,
		SavingsRatePercent: pdec.PercentOf(remaining, params.MonthlyIncome),
		Breakdown:          breakdown,
	}, nil
}
