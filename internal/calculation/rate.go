package calculation

import (
	"github.com/shopspring/decimal"

	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

// internalPrecision bounds the scale of growth factors and per-period interest so
// long schedules do not accumulate thousands of digits.
const internalPrecision = 20

// PeriodicRate converts an annual percentage into the rate for one period.
func PeriodicRate(annualRatePercent decimal.Decimal, periodsPerYear int) (decimal.Decimal, error) {
	if periodsPerYear < 1 {
		return decimal.Zero, invalid("periods_per_year", "must be at least 1")
	}
	if annualRatePercent.IsZero() {
		return decimal.Zero, nil
	}
	return pdec.FromPercent(annualRatePercent).Div(decimal.NewFromInt(int64(periodsPerYear))), nil
}

// frequency substitutes monthly for an unset frequency and rejects negatives.
func frequency(field string, perYear int) (int, error) {
	switch {
	case perYear == 0:
		return pdec.MonthsPerYear, nil
	case perYear < 0:
		return 0, invalid(field, "must not be negative")
	}
	return perYear, nil
}

// growthFactor returns (1+r)^n for n >= 0.
func growthFactor(r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || r.IsZero() {
		return pdec.One()
	}
	return pdec.One().Add(r).Pow(decimal.NewFromInt(int64(n))).Round(internalPrecision)
}
