package domain

import (
	"github.com/shopspring/decimal"
)

// LoanParameters describes a fully amortizing, fixed-payment loan
type LoanParameters struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent" toml:"annual_rate_percent"`
	TermYears         decimal.Decimal `yaml:"term_years" json:"term_years" toml:"term_years"`
	PaymentsPerYear   int             `yaml:"payments_per_year,omitempty" json:"payments_per_year,omitempty" toml:"payments_per_year"`
}

// PaymentResult holds the level payment and the totals it implies
type PaymentResult struct {
	MonthlyPayment   decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	TotalPaid        decimal.Decimal `yaml:"total_paid" json:"total_paid"`
	TotalInterest    decimal.Decimal `yaml:"total_interest" json:"total_interest"`
	NumberOfPayments int             `yaml:"number_of_payments" json:"number_of_payments"`
}

// AmortizationRow aggregates one year of monthly payments
type AmortizationRow struct {
	Period              int             `yaml:"period" json:"period"`
	StartBalance        decimal.Decimal `yaml:"start_balance" json:"start_balance"`
	PaymentAmount       decimal.Decimal `yaml:"payment_amount" json:"payment_amount"`
	TotalPaidThisPeriod decimal.Decimal `yaml:"total_paid_this_period" json:"total_paid_this_period"`
	PrincipalPaid       decimal.Decimal `yaml:"principal_paid" json:"principal_paid"`
	InterestPaid        decimal.Decimal `yaml:"interest_paid" json:"interest_paid"`
	EndBalance          decimal.Decimal `yaml:"end_balance" json:"end_balance"`
}

// AmortizationSchedule is the ordered sequence of yearly rows
type AmortizationSchedule []AmortizationRow

// TotalPrincipal sums principal repaid across all rows
func (s AmortizationSchedule) TotalPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s {
		total = total.Add(row.PrincipalPaid)
	}
	return total
}

// TotalInterest sums interest paid across all rows
func (s AmortizationSchedule) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s {
		total = total.Add(row.InterestPaid)
	}
	return total
}

// Final returns the last row, or false for an empty schedule.
func (s AmortizationSchedule) Final() (AmortizationRow, bool) {
	if len(s) == 0 {
		return AmortizationRow{}, false
	}
	return s[len(s)-1], true
}

// LoanResult is the outcome of a loan calculation
type LoanResult struct {
	Principal decimal.Decimal      `yaml:"principal" json:"principal"`
	Payment   PaymentResult        `yaml:"payment" json:"payment"`
	Schedule  AmortizationSchedule `yaml:"schedule" json:"schedule"`
}
