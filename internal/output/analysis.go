package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// BatchSummary aggregates a batch for report footers.
type BatchSummary struct {
	Calculations int
	Failed       int
	// MonthlyObligations sums loan payments and full mortgage payments.
	MonthlyObligations decimal.Decimal
	// LargestObligation names the request with the biggest monthly payment.
	LargestObligation      string
	LargestMonthlyPayment  decimal.Decimal
	LargestShareOfPayments decimal.Decimal
}

// AnalyzeBatch counts outcomes and ranks the recurring monthly payments.
func AnalyzeBatch(results *domain.BatchResult) BatchSummary {
	summary := BatchSummary{Calculations: len(results.Outcomes), Failed: results.FailedCount()}

	type ranked struct {
		name    string
		payment decimal.Decimal
	}
	var ranks []ranked
	for i := range results.Outcomes {
		o := &results.Outcomes[i]
		switch {
		case o.Loan != nil:
			ranks = append(ranks, ranked{o.Title(), o.Loan.Payment.MonthlyPayment})
		case o.Mortgage != nil:
			ranks = append(ranks, ranked{o.Title(), o.Mortgage.MonthlyTotal})
		}
	}
	if len(ranks) == 0 {
		return summary
	}

	total := decimal.Zero
	for _, r := range ranks {
		total = total.Add(r.payment)
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].payment.GreaterThan(ranks[j].payment) })
	best := ranks[0]
	share := decimal.Zero
	if !total.IsZero() {
		share = best.payment.Div(total).Mul(decimal.NewFromInt(100))
	}
	summary.MonthlyObligations = total
	summary.LargestObligation = best.name
	summary.LargestMonthlyPayment = best.payment
	summary.LargestShareOfPayments = share
	return summary
}
