package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

// SavingsGoalMultiple turns desired annual income into a nest-egg target (the 4% rule).
const SavingsGoalMultiple = 25

// closeThresholdPercent is the share of the goal reported as "close".
var closeThresholdPercent = decimal.NewFromInt(75)

// CalculateRetirement projects savings at retirement with monthly compounding
// and compares them with SavingsGoalMultiple times the desired income.
func CalculateRetirement(params domain.RetirementParameters) (*domain.RetirementResult, error) {
	if params.CurrentAge < 0 {
		return nil, invalid("current_age", "must not be negative")
	}
	if params.RetirementAge <= params.CurrentAge {
		return nil, invalid("retirement_age", "must be greater than current age")
	}
	if params.CurrentSavings.IsNegative() {
		return nil, invalid("current_savings", "must not be negative")
	}
	if params.MonthlyContribution.IsNegative() {
		return nil, invalid("monthly_contribution", "must not be negative")
	}
	if params.DesiredAnnualRetirementIncome.IsNegative() {
		return nil, invalid("desired_annual_retirement_income", "must not be negative")
	}
	if err := checkGrowthRate("expected_return_percent", params.ExpectedReturnPercent); err != nil {
		return nil, err
	}

	years := params.RetirementAge - params.CurrentAge
	months := years * pdec.MonthsPerYear
	r, err := PeriodicRate(params.ExpectedReturnPercent, pdec.MonthsPerYear)
	if err != nil {
		return nil, err
	}

	projected := FutureValueLumpSum(params.CurrentSavings, r, months).
		Add(FutureValueAnnuity(params.MonthlyContribution, r, months))
	goal := params.DesiredAnnualRetirementIncome.Mul(decimal.NewFromInt(SavingsGoalMultiple))

	onTrack := projected.GreaterThanOrEqual(goal)
	percent := pdec.Hundred
	if !goal.IsZero() {
		percent = pdec.PercentOf(projected, goal)
	}

	status := domain.StatusBehind
	switch {
	case onTrack:
		status = domain.StatusOnTrack
	case percent.GreaterThanOrEqual(closeThresholdPercent):
		status = domain.StatusClose
	}

	return &domain.RetirementResult{
		RetirementAge:      params.RetirementAge,
		YearsToRetirement:  years,
		ProjectedSavings:   projected,
		SavingsGoal:        goal,
		TotalContributions: params.CurrentSavings.Add(params.MonthlyContribution.Mul(decimal.NewFromInt(int64(months)))),
		OnTrack:            onTrack,
		PercentOfGoal:      percent,
		Status:             status,
	}, nil
}
