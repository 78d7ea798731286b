package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var defaultMoney = mustCurrencyFormatter("USD", "en-US")

func mustCurrencyFormatter(code, locale string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(code, locale)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatCurrency formats a decimal as whole US dollars. FormatMetric falls back
// to it when no currency formatter is given.
func FormatCurrency(amount decimal.Decimal) string { return defaultMoney.Format(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMetric renders a metric for people, using money for amounts.
func FormatMetric(m Metric, money *CurrencyFormatter) string {
	switch m.Kind {
	case MetricMoney:
		if money == nil {
			return FormatCurrency(m.Amount)
		}
		return money.Format(m.Amount)
	case MetricPercent:
		return FormatPercentage(m.Amount)
	case MetricCount:
		return strconv.Itoa(m.Count)
	default:
		return m.Text
	}
}

// RawMetric renders a metric for machines: cents for money, two decimals for percentages.
func RawMetric(m Metric) string {
	switch m.Kind {
	case MetricMoney, MetricPercent:
		return m.Amount.StringFixed(2)
	case MetricCount:
		return strconv.Itoa(m.Count)
	default:
		return m.Text
	}
}
