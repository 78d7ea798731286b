package calculation

import (
	"github.com/shopspring/decimal"
)

// The functions below take a per-period rate r and a period count n. A zero rate
// is handled explicitly instead of dividing by zero.

// FutureValueLumpSum returns pv·(1+r)^n.
func FutureValueLumpSum(pv, r decimal.Decimal, n int) decimal.Decimal {
	return pv.Mul(growthFactor(r, n))
}

// FutureValueAnnuity returns the value after n end-of-period contributions of c.
func FutureValueAnnuity(c, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if r.IsZero() {
		return c.Mul(decimal.NewFromInt(int64(n)))
	}
	return c.Mul(growthFactor(r, n).Sub(decimal.NewFromInt(1))).Div(r)
}

// FutureValueAnnuityDue is FutureValueAnnuity with contributions credited at the
// start of each period.
func FutureValueAnnuityDue(c, r decimal.Decimal, n int) decimal.Decimal {
	return FutureValueAnnuity(c, r, n).Mul(decimal.NewFromInt(1).Add(r))
}

// AmortizedPayment returns the level payment that retires principal p in n periods.
func AmortizedPayment(p, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if r.IsZero() {
		return p.Div(decimal.NewFromInt(int64(n)))
	}
	factor := growthFactor(r, n)
	denominator := factor.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return p.Div(decimal.NewFromInt(int64(n)))
	}
	return p.Mul(r).Mul(factor).Div(denominator)
}

// PresentValueAnnuity returns today's value of n end-of-period payments of c.
func PresentValueAnnuity(c, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if r.IsZero() {
		return c.Mul(decimal.NewFromInt(int64(n)))
	}
	discount := decimal.NewFromInt(1).Div(growthFactor(r, n))
	return c.Mul(decimal.NewFromInt(1).Sub(discount)).Div(r)
}

// PresentValue discounts fv back n periods at rate r.
func PresentValue(fv, r decimal.Decimal, n int) decimal.Decimal {
	if r.IsZero() || n <= 0 {
		return fv
	}
	factor := growthFactor(r, n)
	if factor.IsZero() {
		return decimal.Zero
	}
	return fv.Div(factor)
}
