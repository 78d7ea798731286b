package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

// CalculateLoan computes the level payment, totals and yearly schedule of a loan.
func CalculateLoan(params domain.LoanParameters) (*domain.LoanResult, error) {
	if !params.Principal.IsPositive() {
		return nil, invalid("principal", "must be greater than zero")
	}
	if !params.TermYears.IsPositive() {
		return nil, invalid("term_years", "must be greater than zero")
	}
	if params.AnnualRatePercent.IsNegative() {
		return nil, invalid("annual_rate_percent", "must not be negative")
	}
	perYear, err := frequency("payments_per_year", params.PaymentsPerYear)
	if err != nil {
		return nil, err
	}

	n := int(params.TermYears.Mul(decimal.NewFromInt(int64(perYear))).Round(0).IntPart())
	if n < 1 {
		return nil, invalid("term_years", "is shorter than one payment")
	}
	r, err := PeriodicRate(params.AnnualRatePercent, perYear)
	if err != nil {
		return nil, err
	}

	payment := AmortizedPayment(params.Principal, r, n)
	totalPaid := payment.Mul(decimal.NewFromInt(int64(n)))

	return &domain.LoanResult{
		Principal: params.Principal,
		Payment: domain.PaymentResult{
			MonthlyPayment:   payment,
			TotalPaid:        totalPaid,
			TotalInterest:    totalPaid.Sub(params.Principal),
			NumberOfPayments: n,
		},
		Schedule: amortize(params.Principal, r, n, payment, perYear),
	}, nil
}

// GenerateAmortizationSchedule simulates n monthly payments and aggregates them
// into one row per year. The last row holds only the months that remain.
func GenerateAmortizationSchedule(principal, periodicRate decimal.Decimal, numberOfPayments int, payment decimal.Decimal) domain.AmortizationSchedule {
	return amortize(principal, periodicRate, numberOfPayments, payment, pdec.MonthsPerYear)
}

// amortize groups periodsPerRow payments per row. Generation stops after the row
// in which the balance reaches zero, and never emits more than ceil(n/periodsPerRow)
// rows even when the payment cannot cover the interest.
func amortize(principal, r decimal.Decimal, n int, payment decimal.Decimal, periodsPerRow int) domain.AmortizationSchedule {
	if n <= 0 || periodsPerRow <= 0 {
		return nil
	}
	rows := (n + periodsPerRow - 1) / periodsPerRow
	schedule := make(domain.AmortizationSchedule, 0, rows)

	balance := principal
	remaining := n
	for period := 1; period <= rows; period++ {
		start := balance
		principalPaid := decimal.Zero
		interestPaid := decimal.Zero

		for m := 0; m < min(periodsPerRow, remaining); m++ {
			if !balance.IsPositive() {
				break
			}
			interest := balance.Mul(r).Round(internalPrecision)
			portion := payment.Sub(interest)
			if portion.GreaterThan(balance) {
				portion = balance
			}
			balance = balance.Sub(portion)
			principalPaid = principalPaid.Add(portion)
			interestPaid = interestPaid.Add(interest)
		}
		remaining -= periodsPerRow

		schedule = append(schedule, domain.AmortizationRow{
			Period:              period,
			StartBalance:        start,
			PaymentAmount:       payment,
			TotalPaidThisPeriod: principalPaid.Add(interestPaid),
			PrincipalPaid:       principalPaid,
			InterestPaid:        interestPaid,
			EndBalance:          pdec.ClampZero(balance),
		})
		if !balance.IsPositive() {
			break
		}
	}
	return schedule
}
