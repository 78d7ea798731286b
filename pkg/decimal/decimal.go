package decimal

import (
	"github.com/shopspring/decimal"
)

// Hundred is the percent scale factor.
var Hundred = decimal.NewFromInt(100)

// MonthsPerYear is the fixed monthly frequency every calculator defaults to.
const MonthsPerYear = 12

// Zero returns a zero amount
func Zero() decimal.Decimal {
	return decimal.Zero
}

// One returns 1
func One() decimal.Decimal {
	return decimal.NewFromInt(1)
}

// FromPercent converts a percentage (7.5) into a fraction (0.075)
func FromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(Hundred)
}

// PercentOf returns part/whole*100, or zero when whole is zero.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(Hundred)
}

// Round rounds an amount to cents
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum adds all values
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// WithinTolerance reports whether |a-b| <= tol.
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}

// WithinRelative reports whether a and b differ by at most rel relative to the
// larger magnitude. Two values that are both within rel of zero are equal.
func WithinRelative(a, b, rel decimal.Decimal) bool {
	scale := decimal.Max(a.Abs(), b.Abs(), One())
	return a.Sub(b).Abs().LessThanOrEqual(scale.Mul(rel))
}
