package output

import (
	"fmt"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// kindAssumptions lists the modelling conventions behind each calculator.
var kindAssumptions = map[domain.Kind][]string{
	domain.KindLoan: {
		"Fixed rate, level payments, interest compounded once per payment period",
	},
	domain.KindMortgage: {
		"Monthly payments over the full term; property tax and insurance are spread evenly over 12 months",
		"PMI and HOA dues are flat monthly add-ons",
	},
	domain.KindCompound: {
		"Monthly deposits are credited at the end of each month",
	},
	domain.KindInvestment: {
		"The initial amount compounds once a year",
		"Inflation-adjusted value is in today's money",
	},
	domain.KindRetirement: {
		"Savings compound monthly until retirement",
		fmt.Sprintf("Savings goal is %dx the desired annual income", calculation.SavingsGoalMultiple),
		"75% of the goal or more is reported as getting close",
	},
	domain.KindBudget: {
		"Savings rate is the unspent share of income",
	},
}

// GenerateAssumptions lists the conventions relevant to the kinds in a batch, in
// calculator order and without duplicates.
func GenerateAssumptions(results *domain.BatchResult) []string {
	present := make(map[domain.Kind]bool)
	for i := range results.Outcomes {
		if !results.Outcomes[i].Failed() {
			present[results.Outcomes[i].Kind] = true
		}
	}
	var out []string
	for _, kind := range domain.Kinds() {
		if present[kind] {
			out = append(out, kindAssumptions[kind]...)
		}
	}
	return out
}
