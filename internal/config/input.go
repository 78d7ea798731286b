package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

const (
	// DefaultCurrency is used when a request file names none
	DefaultCurrency = "USD"
	// DefaultLocale is used when a request file names none
	DefaultLocale = "en-US"
	// DefaultMortgageTermYears is the term substituted for an unset mortgage term
	DefaultMortgageTermYears = 30
	monthly                  = 12
)

// InputParser handles parsing of calculation request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch from a YAML, JSON or TOML file chosen by extension
func (ip *InputParser) LoadFromFile(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	batch, err := ip.Parse(data, formatFromExtension(filename))
	if err != nil {
		return nil, err
	}

	ip.ApplyDefaults(batch)

	if err := ip.ValidateBatch(batch); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return batch, nil
}

func formatFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// Parse decodes a batch in the given format (yaml, json or toml). Unknown keys are rejected.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Batch, error) {
	var batch domain.Batch
	switch format {
	case "toml":
		md, err := toml.Decode(string(data), &batch)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, fmt.Errorf("failed to parse TOML: unknown keys %s", strings.Join(keys, ", "))
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&batch); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml", "yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&batch); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	return &batch, nil
}

// ApplyDefaults substitutes defaults for unset fields. Missing amounts stay zero;
// frequencies become monthly and an unset mortgage term becomes 30 years.
func (ip *InputParser) ApplyDefaults(batch *domain.Batch) {
	if batch.Currency == "" {
		batch.Currency = DefaultCurrency
	}
	if batch.Locale == "" {
		batch.Locale = DefaultLocale
	}
	for i := range batch.Requests {
		ApplyRequestDefaults(&batch.Requests[i], batch.Currency)
	}
}

// ApplyRequestDefaults fills the unset fields of one request
func ApplyRequestDefaults(req *domain.CalculationRequest, currencyCode string) {
	if req.Loan != nil && req.Loan.PaymentsPerYear == 0 {
		req.Loan.PaymentsPerYear = monthly
	}
	if req.Mortgage != nil && req.Mortgage.TermYears == 0 {
		req.Mortgage.TermYears = DefaultMortgageTermYears
	}
	if req.Compound != nil && req.Compound.CompoundsPerYear == 0 {
		req.Compound.CompoundsPerYear = monthly
	}
	if inv := req.Investment; inv != nil {
		if inv.ContributionsPerYear == 0 {
			inv.ContributionsPerYear = monthly
		}
		if inv.ContributionTiming == "" {
			inv.ContributionTiming = domain.TimingEnd
		}
		if inv.Currency == "" {
			inv.Currency = currencyCode
		}
	}
}

// ValidateBatch checks the structure of a batch: every request must name exactly
// one calculator and display settings must be recognised. Parameter values are
// checked per request so that one bad request does not reject the file.
func (ip *InputParser) ValidateBatch(batch *domain.Batch) error {
	if len(batch.Requests) == 0 {
		return fmt.Errorf("no requests provided")
	}
	if err := ValidateCurrency(batch.Currency); err != nil {
		return err
	}
	if _, err := language.Parse(batch.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", batch.Locale, err)
	}

	for i := range batch.Requests {
		if err := ValidateRequest(&batch.Requests[i]); err != nil {
			return fmt.Errorf("request %d validation failed: %w", i+1, err)
		}
	}
	return nil
}

// ValidateRequest checks that a request names exactly one calculator and that an
// investment's own currency, when set, is a known code.
func ValidateRequest(req *domain.CalculationRequest) error {
	kind, err := req.ResolveKind()
	if err != nil {
		return err
	}
	if kind == domain.KindInvestment && req.Investment.Currency != "" {
		if err := ValidateCurrency(req.Investment.Currency); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCurrency checks an ISO 4217 currency code
func ValidateCurrency(code string) error {
	if _, err := currency.ParseISO(code); err != nil {
		return &calculation.InputError{Field: "currency", Reason: fmt.Sprintf("%q is not an ISO 4217 code", code)}
	}
	return nil
}

// CreateExampleBatch returns one request per calculator using the planner's
// starting values
func (ip *InputParser) CreateExampleBatch() *domain.Batch {
	return &domain.Batch{
		Currency: DefaultCurrency,
		Locale:   DefaultLocale,
		Requests: []domain.CalculationRequest{
			{Name: "Car loan", Loan: ExampleLoan()},
			{Name: "Home purchase", Mortgage: ExampleMortgage()},
			{Name: "Savings account", Compound: ExampleCompound()},
			{Name: "Brokerage account", Investment: ExampleInvestment()},
			{Name: "Retirement plan", Retirement: ExampleRetirement()},
			{Name: "Monthly budget", Budget: ExampleBudget()},
		},
	}
}

// ExampleLoan is the loan calculator's starting input
func ExampleLoan() *domain.LoanParameters {
	return &domain.LoanParameters{
		Principal:         decimal.NewFromInt(15000),
		AnnualRatePercent: decimal.RequireFromString("7.5"),
		TermYears:         decimal.NewFromInt(5),
		PaymentsPerYear:   monthly,
	}
}

// ExampleMortgage is the mortgage calculator's starting input
func ExampleMortgage() *domain.MortgageParameters {
	return &domain.MortgageParameters{
		HomePrice:           decimal.NewFromInt(300000),
		DownPayment:         decimal.NewFromInt(60000),
		AnnualRatePercent:   decimal.RequireFromString("6.5"),
		TermYears:           DefaultMortgageTermYears,
		PropertyTaxAnnual:   decimal.NewFromInt(3600),
		HomeInsuranceAnnual: decimal.NewFromInt(1200),
	}
}

// ExampleCompound is the compound interest calculator's starting input
func ExampleCompound() *domain.CompoundParameters {
	return &domain.CompoundParameters{
		Principal:           decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(200),
		AnnualRatePercent:   decimal.NewFromInt(7),
		Years:               20,
		CompoundsPerYear:    monthly,
	}
}

// ExampleInvestment is the investment calculator's starting input
func ExampleInvestment() *domain.InvestmentParameters {
	return &domain.InvestmentParameters{
		InitialAmount:        decimal.NewFromInt(10000),
		PeriodicContribution: decimal.NewFromInt(500),
		ContributionsPerYear: monthly,
		AnnualRatePercent:    decimal.NewFromInt(8),
		Years:                10,
		InflationRatePercent: decimal.NewFromInt(3),
		ContributionTiming:   domain.TimingEnd,
		Currency:             DefaultCurrency,
	}
}

// ExampleRetirement is the retirement calculator's starting input
func ExampleRetirement() *domain.RetirementParameters {
	return &domain.RetirementParameters{
		CurrentAge:                    35,
		RetirementAge:                 65,
		CurrentSavings:                decimal.NewFromInt(50000),
		MonthlyContribution:           decimal.NewFromInt(500),
		ExpectedReturnPercent:         decimal.NewFromInt(7),
		DesiredAnnualRetirementIncome: decimal.NewFromInt(60000),
	}
}

// ExampleBudget is the budget planner's starting input
func ExampleBudget() *domain.BudgetParameters {
	amounts := []int64{1500, 200, 600, 400, 300, 500, 300, 200}
	categories := calculation.DefaultBudgetCategories()
	for i := range categories {
		categories[i].Amount = decimal.NewFromInt(amounts[i])
	}
	return &domain.BudgetParameters{MonthlyIncome: decimal.NewFromInt(5000), Categories: categories}
}
