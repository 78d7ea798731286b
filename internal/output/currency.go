package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders whole-unit money amounts with a locale's digit
// grouping and the currency's symbol, e.g. "$15,000" or "-$1,235".
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
}

// NewCurrencyFormatter builds a formatter for an ISO 4217 code and a BCP 47 locale.
func NewCurrencyFormatter(code, locale string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return newCurrencyFormatter(code, message.NewPrinter(tag))
}

func newCurrencyFormatter(code string, p *message.Printer) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	return &CurrencyFormatter{
		printer: p,
		unit:    unit,
		symbol:  p.Sprint(currency.Symbol(unit)),
	}, nil
}

// WithCurrency returns a formatter for another currency in the same locale.
func (f *CurrencyFormatter) WithCurrency(code string) (*CurrencyFormatter, error) {
	if code == "" || code == f.Code() {
		return f, nil
	}
	return newCurrencyFormatter(code, f.printer)
}

// Code returns the ISO currency code
func (f *CurrencyFormatter) Code() string {
	return f.unit.String()
}

// Format rounds to whole units (half away from zero) and renders the amount.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(rounded.IntPart()))
}

// Number renders a plain integer with the locale's grouping
func (f *CurrencyFormatter) Number(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}
