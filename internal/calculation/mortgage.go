package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

var (
	// pmiAnnualRate is the yearly PMI estimate as a fraction of the loan amount.
	pmiAnnualRate = decimal.NewFromFloat(0.007)
	// pmiThresholdPercent is the down payment share at which PMI is no longer charged.
	pmiThresholdPercent = decimal.NewFromInt(20)
)

// CalculateMortgage splits the monthly housing cost into principal and interest,
// escrow items, HOA dues and PMI, and produces the loan's yearly schedule.
func CalculateMortgage(params domain.MortgageParameters) (*domain.MortgageResult, error) {
	if params.TermYears <= 0 {
		return nil, invalid("term_years", "must be greater than zero")
	}
	if params.AnnualRatePercent.IsNegative() {
		return nil, invalid("annual_rate_percent", "must not be negative")
	}
	loanAmount := params.LoanAmount()
	if !loanAmount.IsPositive() {
		return nil, invalid("down_payment", "must be less than the home price")
	}

	n := params.TermYears * pdec.MonthsPerYear
	r, err := PeriodicRate(params.AnnualRatePercent, pdec.MonthsPerYear)
	if err != nil {
		return nil, err
	}
	months := decimal.NewFromInt(pdec.MonthsPerYear)

	pi := AmortizedPayment(loanAmount, r, n)
	tax := params.PropertyTaxAnnual.Div(months)
	insurance := params.HomeInsuranceAnnual.Div(months)
	monthlyTotal := pdec.Sum(pi, tax, insurance, params.HOAMonthly, params.PMIMonthly)
	count := decimal.NewFromInt(int64(n))

	return &domain.MortgageResult{
		LoanAmount:               loanAmount,
		DownPaymentPercent:       pdec.PercentOf(params.DownPayment, params.HomePrice),
		NumberOfPayments:         n,
		MonthlyPrincipalInterest: pi,
		MonthlyPropertyTax:       tax,
		MonthlyHomeInsurance:     insurance,
		MonthlyHOA:               params.HOAMonthly,
		MonthlyPMI:               params.PMIMonthly,
		MonthlyTotal:             monthlyTotal,
		TotalPayment:             monthlyTotal.Mul(count),
		TotalInterest:            pi.Mul(count).Sub(loanAmount),
		Schedule:                 GenerateAmortizationSchedule(loanAmount, r, n, pi),
	}, nil
}

// EstimateMonthlyPMI returns the customary PMI estimate for a purchase, or zero
// when the down payment reaches 20% of the price.
func EstimateMonthlyPMI(homePrice, downPayment decimal.Decimal) decimal.Decimal {
	if !homePrice.IsPositive() {
		return decimal.Zero
	}
	if pdec.PercentOf(downPayment, homePrice).GreaterThanOrEqual(pmiThresholdPercent) {
		return decimal.Zero
	}
	loan := pdec.ClampZero(homePrice.Sub(downPayment))
	return loan.Mul(pmiAnnualRate).Div(decimal.NewFromInt(pdec.MonthsPerYear))
}
