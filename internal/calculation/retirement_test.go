package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

func TestCalculateRetirement(t *testing.T) {
	base := domain.RetirementParameters{
		CurrentAge:                    35,
		RetirementAge:                 65,
		CurrentSavings:                d("50000"),
		MonthlyContribution:           d("500"),
		ExpectedReturnPercent:         d("7"),
		DesiredAnnualRetirementIncome: d("60000"),
	}

	tests := []struct {
		name    string
		income  decimal.Decimal
		goal    decimal.Decimal
		onTrack bool
		percent decimal.Decimal
		status  domain.RetirementStatus
	}{
		{name: "behind", income: d("60000"), goal: d("1500000"), onTrack: false, percent: d("67.72"), status: domain.StatusBehind},
		{name: "close", income: d("50000"), goal: d("1250000"), onTrack: false, percent: d("81.26"), status: domain.StatusClose},
		{name: "on track", income: d("40000"), goal: d("1000000"), onTrack: true, percent: d("101.58"), status: domain.StatusOnTrack},
		{name: "no income needed", income: decimal.Zero, goal: decimal.Zero, onTrack: true, percent: d("100"), status: domain.StatusOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := base
			params.DesiredAnnualRetirementIncome = tt.income
			result, err := CalculateRetirement(params)
			require.NoError(t, err)

			assert.Equal(t, 30, result.YearsToRetirement)
			assert.Equal(t, 65, result.RetirementAge)
			assertNear(t, d("1015810.37"), result.ProjectedSavings, "projected savings")
			assert.True(t, result.TotalContributions.Equal(d("230000")))
			assert.True(t, tt.goal.Equal(result.SavingsGoal), "goal %s", result.SavingsGoal)
			assert.Equal(t, tt.onTrack, result.OnTrack)
			assertNear(t, tt.percent, result.PercentOfGoal, "percent of goal")
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func TestCalculateRetirementInvalidAges(t *testing.T) {
	tests := []struct {
		name    string
		current int
		retire  int
	}{
		{name: "same age", current: 65, retire: 65},
		{name: "already retired", current: 70, retire: 65},
		{name: "negative age", current: -1, retire: 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateRetirement(domain.RetirementParameters{CurrentAge: tt.current, RetirementAge: tt.retire})
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}
