package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with one card per calculation.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": FormatPercentage,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlMetric struct {
	Label string
	Value string
}

type htmlRow struct {
	Period                                            int
	Start, Principal, Interest, TotalPaid, EndBalance string
}

type htmlBudgetLine struct {
	Category string
	Amount   string
	Share    decimal.Decimal
}

type htmlSection struct {
	ID       string
	Title    string
	Kind     domain.Kind
	Error    string
	Metrics  []htmlMetric
	Schedule []htmlRow
	Budget   []htmlBudgetLine
	// ChartBalances feeds the balance sparkline.
	ChartBalances []float64
}

func (h HTMLFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	formatters, err := newMoneyFormatters(results)
	if err != nil {
		return nil, err
	}

	sections := BuildSections(results)
	view := make([]htmlSection, 0, len(sections))
	for _, s := range sections {
		money := formatters.For(s.Currency)
		hs := htmlSection{ID: s.ID, Title: s.Title, Kind: s.Kind, Error: s.Error}
		for _, m := range s.Metrics {
			hs.Metrics = append(hs.Metrics, htmlMetric{Label: m.Label, Value: FormatMetric(m, money)})
		}
		for _, row := range s.Schedule {
			hs.Schedule = append(hs.Schedule, htmlRow{
				Period:     row.Period,
				Start:      money.Format(row.StartBalance),
				Principal:  money.Format(row.PrincipalPaid),
				Interest:   money.Format(row.InterestPaid),
				TotalPaid:  money.Format(row.TotalPaidThisPeriod),
				EndBalance: money.Format(row.EndBalance),
			})
			hs.ChartBalances = append(hs.ChartBalances, row.EndBalance.Round(2).InexactFloat64())
		}
		for _, line := range s.Budget {
			hs.Budget = append(hs.Budget, htmlBudgetLine{Category: line.Category, Amount: money.Format(line.Amount), Share: line.PercentOfTotal})
		}
		view = append(view, hs)
	}

	data := struct {
		Currency    string
		Sections    []htmlSection
		Summary     BatchSummary
		Obligations string
		Largest     string
		Assumptions []string
	}{
		Currency:    formatters.base.Code(),
		Sections:    view,
		Summary:     AnalyzeBatch(results),
		Assumptions: GenerateAssumptions(results),
	}
	data.Obligations = formatters.base.Format(data.Summary.MonthlyObligations)
	data.Largest = formatters.base.Format(data.Summary.LargestMonthlyPayment)

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
