package domain

import (
	"github.com/shopspring/decimal"
)

// MortgageParameters describes a home purchase financed by a fixed-rate mortgage.
// Escrow items are annual amounts; HOA and PMI are already monthly.
type MortgageParameters struct {
	HomePrice           decimal.Decimal `yaml:"home_price" json:"home_price" toml:"home_price"`
	DownPayment         decimal.Decimal `yaml:"down_payment" json:"down_payment" toml:"down_payment"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent" toml:"annual_rate_percent"`
	TermYears           int             `yaml:"term_years" json:"term_years" toml:"term_years"`
	PropertyTaxAnnual   decimal.Decimal `yaml:"property_tax_annual" json:"property_tax_annual" toml:"property_tax_annual"`
	HomeInsuranceAnnual decimal.Decimal `yaml:"home_insurance_annual" json:"home_insurance_annual" toml:"home_insurance_annual"`
	HOAMonthly          decimal.Decimal `yaml:"hoa_monthly" json:"hoa_monthly" toml:"hoa_monthly"`
	PMIMonthly          decimal.Decimal `yaml:"pmi_monthly" json:"pmi_monthly" toml:"pmi_monthly"`
}

// LoanAmount is the financed part of the price
func (p MortgageParameters) LoanAmount() decimal.Decimal {
	return p.HomePrice.Sub(p.DownPayment)
}

// MortgageResult breaks the monthly housing payment into its components
type MortgageResult struct {
	LoanAmount               decimal.Decimal      `yaml:"loan_amount" json:"loan_amount"`
	DownPaymentPercent       decimal.Decimal      `yaml:"down_payment_percent" json:"down_payment_percent"`
	NumberOfPayments         int                  `yaml:"number_of_payments" json:"number_of_payments"`
	MonthlyPrincipalInterest decimal.Decimal      `yaml:"monthly_principal_interest" json:"monthly_principal_interest"`
	MonthlyPropertyTax       decimal.Decimal      `yaml:"monthly_property_tax" json:"monthly_property_tax"`
	MonthlyHomeInsurance     decimal.Decimal      `yaml:"monthly_home_insurance" json:"monthly_home_insurance"`
	MonthlyHOA               decimal.Decimal      `yaml:"monthly_hoa" json:"monthly_hoa"`
	MonthlyPMI               decimal.Decimal      `yaml:"monthly_pmi" json:"monthly_pmi"`
	MonthlyTotal             decimal.Decimal      `yaml:"monthly_total" json:"monthly_total"`
	TotalPayment             decimal.Decimal      `yaml:"total_payment" json:"total_payment"`
	TotalInterest            decimal.Decimal      `yaml:"total_interest" json:"total_interest"`
	Schedule                 AmortizationSchedule `yaml:"schedule" json:"schedule"`
}
