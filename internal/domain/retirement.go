package domain

import (
	"github.com/shopspring/decimal"
)

// RetirementStatus labels how a projection compares with its goal
type RetirementStatus string

const (
	StatusOnTrack RetirementStatus = "on_track"
	StatusClose   RetirementStatus = "close"
	StatusBehind  RetirementStatus = "behind"
)

// RetirementParameters describes savings built up until a target age
type RetirementParameters struct {
	CurrentAge                    int             `yaml:"current_age" json:"current_age" toml:"current_age"`
	RetirementAge                 int             `yaml:"retirement_age" json:"retirement_age" toml:"retirement_age"`
	CurrentSavings                decimal.Decimal `yaml:"current_savings" json:"current_savings" toml:"current_savings"`
	MonthlyContribution           decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
	ExpectedReturnPercent         decimal.Decimal `yaml:"expected_return_percent" json:"expected_return_percent" toml:"expected_return_percent"`
	DesiredAnnualRetirementIncome decimal.Decimal `yaml:"desired_annual_retirement_income" json:"desired_annual_retirement_income" toml:"desired_annual_retirement_income"`
}

// RetirementResult compares projected savings with the 25x goal
type RetirementResult struct {
	RetirementAge      int              `yaml:"retirement_age" json:"retirement_age"`
	YearsToRetirement  int              `yaml:"years_to_retirement" json:"years_to_retirement"`
	ProjectedSavings   decimal.Decimal  `yaml:"projected_savings" json:"projected_savings"`
	SavingsGoal        decimal.Decimal  `yaml:"savings_goal" json:"savings_goal"`
	TotalContributions decimal.Decimal  `yaml:"total_contributions" json:"total_contributions"`
	OnTrack            bool             `yaml:"on_track" json:"on_track"`
	PercentOfGoal      decimal.Decimal  `yaml:"percent_of_goal" json:"percent_of_goal"`
	Status             RetirementStatus `yaml:"status" json:"status"`
}
