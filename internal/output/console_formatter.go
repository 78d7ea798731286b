package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(26)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	tableHeader  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCell    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// ConsoleFormatter renders a human readable summary with schedules and budget breakdowns.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	formatters, err := newMoneyFormatters(results)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, headingStyle.Render("FINANCIAL CALCULATIONS"))
	fmt.Fprintln(&buf, "======================")

	for _, s := range BuildSections(results) {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("%s (%s)", s.Title, s.Kind)))
		if s.Failed() {
			fmt.Fprintln(&buf, "  "+errorStyle.Render("error: "+s.Error))
			continue
		}
		money := formatters.For(s.Currency)
		for _, m := range s.Metrics {
			fmt.Fprintf(&buf, "  %s %s\n", labelStyle.Render(m.Label), FormatMetric(m, money))
		}
		if len(s.Schedule) > 0 {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, scheduleTable(s.Schedule, money))
		}
		if len(s.Budget) > 0 {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, budgetTable(s.Budget, money))
		}
	}

	summary := AnalyzeBatch(results)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%d calculations, %d failed\n", summary.Calculations, summary.Failed)
	if summary.LargestObligation != "" {
		money := formatters.For("")
		fmt.Fprintf(&buf, "Monthly obligations: %s (largest: %s at %s, %s)\n",
			money.Format(summary.MonthlyObligations), summary.LargestObligation,
			money.Format(summary.LargestMonthlyPayment), FormatPercentage(summary.LargestShareOfPayments))
	}
	return buf.Bytes(), nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			return tableCell
		})
}

func scheduleTable(schedule domain.AmortizationSchedule, money *CurrencyFormatter) string {
	t := newTable("Year", "Start balance", "Principal", "Interest", "Total paid", "End balance")
	for _, row := range schedule {
		t.Row(
			strconv.Itoa(row.Period),
			money.Format(row.StartBalance),
			money.Format(row.PrincipalPaid),
			money.Format(row.InterestPaid),
			money.Format(row.TotalPaidThisPeriod),
			money.Format(row.EndBalance),
		)
	}
	return t.String()
}

func budgetTable(lines []domain.BudgetLine, money *CurrencyFormatter) string {
	t := newTable("Category", "Amount", "Share")
	for _, line := range lines {
		t.Row(line.Category, money.Format(line.Amount), FormatPercentage(line.PercentOfTotal))
	}
	return t.String()
}
