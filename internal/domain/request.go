package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies a calculator
type Kind string

const (
	KindLoan       Kind = "loan"
	KindMortgage   Kind = "mortgage"
	KindCompound   Kind = "compound"
	KindInvestment Kind = "investment"
	KindRetirement Kind = "retirement"
	KindBudget     Kind = "budget"
)

// Kinds returns every calculator kind in a stable order
func Kinds() []Kind {
	return []Kind{KindLoan, KindMortgage, KindCompound, KindInvestment, KindRetirement, KindBudget}
}

// ParseKind resolves a user supplied calculator name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "compound-interest", "compound_interest":
		return KindCompound, nil
	}
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	names := make([]string, 0, len(Kinds()))
	for _, known := range Kinds() {
		names = append(names, string(known))
	}
	sort.Strings(names)
	return "", fmt.Errorf("unknown calculator %q (expected one of %s)", s, strings.Join(names, ", "))
}

// CalculationRequest carries the parameters for exactly one calculator
type CalculationRequest struct {
	Name       string                `yaml:"name,omitempty" json:"name,omitempty" toml:"name"`
	Kind       Kind                  `yaml:"kind,omitempty" json:"kind,omitempty" toml:"kind"`
	Loan       *LoanParameters       `yaml:"loan,omitempty" json:"loan,omitempty" toml:"loan"`
	Mortgage   *MortgageParameters   `yaml:"mortgage,omitempty" json:"mortgage,omitempty" toml:"mortgage"`
	Compound   *CompoundParameters   `yaml:"compound,omitempty" json:"compound,omitempty" toml:"compound"`
	Investment *InvestmentParameters `yaml:"investment,omitempty" json:"investment,omitempty" toml:"investment"`
	Retirement *RetirementParameters `yaml:"retirement,omitempty" json:"retirement,omitempty" toml:"retirement"`
	Budget     *BudgetParameters     `yaml:"budget,omitempty" json:"budget,omitempty" toml:"budget"`
}

// ResolveKind returns the explicit kind, or infers it from the single parameter
// section that is present.
func (r *CalculationRequest) ResolveKind() (Kind, error) {
	var present []Kind
	if r.Loan != nil {
		present = append(present, KindLoan)
	}
	if r.Mortgage != nil {
		present = append(present, KindMortgage)
	}
	if r.Compound != nil {
		present = append(present, KindCompound)
	}
	if r.Investment != nil {
		present = append(present, KindInvestment)
	}
	if r.Retirement != nil {
		present = append(present, KindRetirement)
	}
	if r.Budget != nil {
		present = append(present, KindBudget)
	}

	if r.Kind != "" {
		kind, err := ParseKind(string(r.Kind))
		if err != nil {
			return "", err
		}
		for _, p := range present {
			if p == kind {
				return kind, nil
			}
		}
		return "", fmt.Errorf("request kind %q has no %s parameters", kind, kind)
	}

	switch len(present) {
	case 0:
		return "", fmt.Errorf("request has no calculator parameters")
	case 1:
		return present[0], nil
	default:
		return "", fmt.Errorf("request has parameters for several calculators; set kind explicitly")
	}
}

// Batch is a request file: several calculations sharing display settings
type Batch struct {
	Currency string               `yaml:"currency,omitempty" json:"currency,omitempty" toml:"currency"`
	Locale   string               `yaml:"locale,omitempty" json:"locale,omitempty" toml:"locale"`
	Requests []CalculationRequest `yaml:"requests" json:"requests" toml:"requests"`
}

// CalculationOutcome is the result of one request. Exactly one result pointer is
// set on success; Error is set instead on failure.
type CalculationOutcome struct {
	ID         string            `yaml:"id" json:"id"`
	Name       string            `yaml:"name,omitempty" json:"name,omitempty"`
	Kind       Kind              `yaml:"kind" json:"kind"`
	Loan       *LoanResult       `yaml:"loan,omitempty" json:"loan,omitempty"`
	Mortgage   *MortgageResult   `yaml:"mortgage,omitempty" json:"mortgage,omitempty"`
	Compound   *CompoundResult   `yaml:"compound,omitempty" json:"compound,omitempty"`
	Investment *InvestmentResult `yaml:"investment,omitempty" json:"investment,omitempty"`
	Retirement *RetirementResult `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	Budget     *BudgetResult     `yaml:"budget,omitempty" json:"budget,omitempty"`
	Error      string            `yaml:"error,omitempty" json:"error,omitempty"`
}

// Failed reports whether the request could not be computed
func (o *CalculationOutcome) Failed() bool {
	return o.Error != ""
}

// Title returns the display name of the outcome
func (o *CalculationOutcome) Title() string {
	if o.Name != "" {
		return o.Name
	}
	return string(o.Kind)
}

// BatchResult collects the outcomes of a batch in request order
type BatchResult struct {
	Currency string               `yaml:"currency" json:"currency"`
	Locale   string               `yaml:"locale" json:"locale"`
	Outcomes []CalculationOutcome `yaml:"outcomes" json:"outcomes"`
}

// FailedCount returns how many outcomes carry an error
func (b *BatchResult) FailedCount() int {
	n := 0
	for i := range b.Outcomes {
		if b.Outcomes[i].Failed() {
			n++
		}
	}
	return n
}

// NewRequest returns a request for kind with an empty parameter section allocated
func NewRequest(kind Kind) CalculationRequest {
	req := CalculationRequest{Kind: kind}
	switch kind {
	case KindLoan:
		req.Loan = &LoanParameters{}
	case KindMortgage:
		req.Mortgage = &MortgageParameters{}
	case KindCompound:
		req.Compound = &CompoundParameters{}
	case KindInvestment:
		req.Investment = &InvestmentParameters{}
	case KindRetirement:
		req.Retirement = &RetirementParameters{}
	case KindBudget:
		req.Budget = &BudgetParameters{}
	}
	return req
}

// Params returns a pointer to the parameter section named by kind, or nil when
// that section is absent.
func (r *CalculationRequest) Params(kind Kind) any {
	switch {
	case kind == KindLoan && r.Loan != nil:
		return r.Loan
	case kind == KindMortgage && r.Mortgage != nil:
		return r.Mortgage
	case kind == KindCompound && r.Compound != nil:
		return r.Compound
	case kind == KindInvestment && r.Investment != nil:
		return r.Investment
	case kind == KindRetirement && r.Retirement != nil:
		return r.Retirement
	case kind == KindBudget && r.Budget != nil:
		return r.Budget
	}
	return nil
}
