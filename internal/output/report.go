package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// MetricKind selects how a metric value is rendered
type MetricKind int

const (
	MetricMoney MetricKind = iota
	MetricPercent
	MetricCount
	MetricText
)

// Metric is one labelled figure of a calculation result
type Metric struct {
	Key    string
	Label  string
	Kind   MetricKind
	Amount decimal.Decimal
	Count  int
	Text   string
}

func money(key, label string, v decimal.Decimal) Metric {
	return Metric{Key: key, Label: label, Kind: MetricMoney, Amount: v}
}

func percent(key, label string, v decimal.Decimal) Metric {
	return Metric{Key: key, Label: label, Kind: MetricPercent, Amount: v}
}

func count(key, label string, n int) Metric {
	return Metric{Key: key, Label: label, Kind: MetricCount, Count: n}
}

func text(key, label, v string) Metric {
	return Metric{Key: key, Label: label, Kind: MetricText, Text: v}
}

// Section is the render-ready view of one outcome shared by all formatters
type Section struct {
	ID       string
	Title    string
	Kind     domain.Kind
	Currency string
	Error    string
	Metrics  []Metric
	Schedule domain.AmortizationSchedule
	Budget   []domain.BudgetLine
}

// Failed reports whether the outcome carried an error
func (s Section) Failed() bool { return s.Error != "" }

// BuildSections converts outcomes into sections in request order
func BuildSections(results *domain.BatchResult) []Section {
	sections := make([]Section, 0, len(results.Outcomes))
	for i := range results.Outcomes {
		sections = append(sections, Summarize(&results.Outcomes[i], results.Currency))
	}
	return sections
}

// Summarize lists the figures of one outcome. Investment results may name their
// own currency; everything else uses the batch currency.
func Summarize(o *domain.CalculationOutcome, currencyCode string) Section {
	s := Section{ID: o.ID, Title: o.Title(), Kind: o.Kind, Currency: currencyCode, Error: o.Error}

	switch {
	case o.Loan != nil:
		r := o.Loan
		s.Metrics = []Metric{
			money("principal", "Loan amount", r.Principal),
			money("monthly_payment", "Monthly payment", r.Payment.MonthlyPayment),
			money("total_paid", "Total paid", r.Payment.TotalPaid),
			money("total_interest", "Total interest", r.Payment.TotalInterest),
			count("number_of_payments", "Number of payments", r.Payment.NumberOfPayments),
		}
		s.Schedule = r.Schedule
	case o.Mortgage != nil:
		r := o.Mortgage
		s.Metrics = []Metric{
			money("loan_amount", "Loan amount", r.LoanAmount),
			percent("down_payment_percent", "Down payment", r.DownPaymentPercent),
			money("monthly_principal_interest", "Principal & interest", r.MonthlyPrincipalInterest),
			money("monthly_property_tax", "Property tax", r.MonthlyPropertyTax),
			money("monthly_home_insurance", "Home insurance", r.MonthlyHomeInsurance),
			money("monthly_hoa", "HOA dues", r.MonthlyHOA),
			money("monthly_pmi", "PMI", r.MonthlyPMI),
			money("monthly_total", "Monthly total", r.MonthlyTotal),
			money("total_payment", "Total of all payments", r.TotalPayment),
			money("total_interest", "Total interest", r.TotalInterest),
			count("number_of_payments", "Number of payments", r.NumberOfPayments),
		}
		s.Schedule = r.Schedule
	case o.Compound != nil:
		r := o.Compound
		s.Metrics = []Metric{
			money("future_value", "Future value", r.FutureValue),
			money("total_contributions", "Total contributions", r.TotalContributions),
			money("total_interest", "Interest earned", r.TotalInterest),
		}
	case o.Investment != nil:
		r := o.Investment
		if r.Currency != "" {
			s.Currency = r.Currency
		}
		s.Metrics = []Metric{
			money("future_value", "Future value", r.FutureValue),
			money("total_contributed", "Total contributed", r.TotalContributed),
			money("total_growth", "Total growth", r.TotalGrowth),
			percent("return_on_investment_percent", "Return on investment", r.ReturnOnInvestmentPercent),
			money("inflation_adjusted_value", "Inflation-adjusted value", r.InflationAdjustedValue),
		}
	case o.Retirement != nil:
		r := o.Retirement
		s.Metrics = []Metric{
			count("years_to_retirement", "Years to retirement", r.YearsToRetirement),
			money("projected_savings", "Projected savings", r.ProjectedSavings),
			money("savings_goal", "Savings goal", r.SavingsGoal),
			money("total_contributions", "Total contributions", r.TotalContributions),
			percent("percent_of_goal", "Percent of goal", r.PercentOfGoal),
			text("status", "Status", StatusLabel(r.Status)),
		}
	case o.Budget != nil:
		r := o.Budget
		s.Metrics = []Metric{
			money("income", "Monthly income", r.Income),
			money("total_expenses", "Total expenses", r.TotalExpenses),
			money("remaining", "Remaining", r.Remaining),
			percent("savings_rate_percent", "Savings rate", r.SavingsRatePercent),
		}
		s.Budget = r.Breakdown
	}
	return s
}

// StatusLabel turns a retirement status into display text
func StatusLabel(status domain.RetirementStatus) string {
	switch status {
	case domain.StatusOnTrack:
		return "On track"
	case domain.StatusClose:
		return "Getting close"
	case domain.StatusBehind:
		return "Needs attention"
	}
	return string(status)
}

// moneyFormatters caches one CurrencyFormatter per currency for a batch
type moneyFormatters struct {
	base  *CurrencyFormatter
	cache map[string]*CurrencyFormatter
}

func newMoneyFormatters(results *domain.BatchResult) (*moneyFormatters, error) {
	code := results.Currency
	if code == "" {
		code = "USD"
	}
	locale := results.Locale
	if locale == "" {
		locale = "en-US"
	}
	base, err := NewCurrencyFormatter(code, locale)
	if err != nil {
		return nil, err
	}
	return &moneyFormatters{base: base, cache: map[string]*CurrencyFormatter{base.Code(): base}}, nil
}

func (m *moneyFormatters) For(code string) *CurrencyFormatter {
	if code == "" {
		return m.base
	}
	if f, ok := m.cache[code]; ok {
		return f
	}
	f, err := m.base.WithCurrency(code)
	if err != nil {
		return m.base
	}
	m.cache[code] = f
	return f
}

// GenerateReport formats results with the named formatter and writes them to
// filename, or to a timestamped file when filename is empty.
func GenerateReport(results *domain.BatchResult, format, filename string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	if filename == "" {
		return WriteFormatted(f, results, ExtensionFor(f))
	}
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
