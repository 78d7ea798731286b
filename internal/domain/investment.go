package domain

import (
	"github.com/shopspring/decimal"
)

// ContributionTiming selects when periodic contributions are credited
type ContributionTiming string

const (
	// TimingEnd credits contributions at the end of each period (ordinary annuity).
	TimingEnd ContributionTiming = "end"
	// TimingBeginning credits contributions at the start of each period (annuity due).
	TimingBeginning ContributionTiming = "beginning"
)

// CompoundParameters describes a savings balance with monthly deposits
type CompoundParameters struct {
	Principal           decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent" toml:"annual_rate_percent"`
	Years               int             `yaml:"years" json:"years" toml:"years"`
	CompoundsPerYear    int             `yaml:"compounds_per_year,omitempty" json:"compounds_per_year,omitempty" toml:"compounds_per_year"`
}

// CompoundResult is the outcome of a compound interest calculation
type CompoundResult struct {
	FutureValue        decimal.Decimal `yaml:"future_value" json:"future_value"`
	TotalContributions decimal.Decimal `yaml:"total_contributions" json:"total_contributions"`
	TotalInterest      decimal.Decimal `yaml:"total_interest" json:"total_interest"`
}

// InvestmentParameters describes a lump sum plus a stream of periodic contributions
type InvestmentParameters struct {
	InitialAmount        decimal.Decimal    `yaml:"initial_amount" json:"initial_amount" toml:"initial_amount"`
	PeriodicContribution decimal.Decimal    `yaml:"periodic_contribution" json:"periodic_contribution" toml:"periodic_contribution"`
	ContributionsPerYear int                `yaml:"contributions_per_year,omitempty" json:"contributions_per_year,omitempty" toml:"contributions_per_year"`
	AnnualRatePercent    decimal.Decimal    `yaml:"annual_rate_percent" json:"annual_rate_percent" toml:"annual_rate_percent"`
	Years                int                `yaml:"years" json:"years" toml:"years"`
	InflationRatePercent decimal.Decimal    `yaml:"inflation_rate_percent,omitempty" json:"inflation_rate_percent,omitempty" toml:"inflation_rate_percent"`
	ContributionTiming   ContributionTiming `yaml:"contribution_timing,omitempty" json:"contribution_timing,omitempty" toml:"contribution_timing"`
	Currency             string             `yaml:"currency,omitempty" json:"currency,omitempty" toml:"currency"`
}

// InvestmentResult is the outcome of an investment projection
type InvestmentResult struct {
	FutureValue               decimal.Decimal `yaml:"future_value" json:"future_value"`
	TotalContributed          decimal.Decimal `yaml:"total_contributed" json:"total_contributed"`
	TotalGrowth               decimal.Decimal `yaml:"total_growth" json:"total_growth"`
	ReturnOnInvestmentPercent decimal.Decimal `yaml:"return_on_investment_percent" json:"return_on_investment_percent"`
	InflationAdjustedValue    decimal.Decimal `yaml:"inflation_adjusted_value" json:"inflation_adjusted_value"`
	Currency                  string          `yaml:"currency,omitempty" json:"currency,omitempty"`
}
