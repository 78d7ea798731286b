package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

var cent = decimal.NewFromFloat(0.01)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertNear checks that two amounts agree to the cent
func assertNear(t *testing.T, expected, actual decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, pdec.WithinTolerance(expected, actual, cent),
		"%s: expected %s, got %s", msg, expected.StringFixed(4), actual.StringFixed(4))
}

func TestPeriodicRate(t *testing.T) {
	tests := []struct {
		name     string
		percent  decimal.Decimal
		periods  int
		expected decimal.Decimal
	}{
		{name: "monthly 7.5%", percent: d("7.5"), periods: 12, expected: d("0.00625")},
		{name: "quarterly 8%", percent: d("8"), periods: 4, expected: d("0.02")},
		{name: "annual 5%", percent: d("5"), periods: 1, expected: d("0.05")},
		{name: "zero rate", percent: decimal.Zero, periods: 12, expected: decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PeriodicRate(tt.percent, tt.periods)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}

	_, err := PeriodicRate(d("5"), 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestAnnuityMath(t *testing.T) {
	r := d("0.07").Div(decimal.NewFromInt(12))

	t.Run("lump sum", func(t *testing.T) {
		assertNear(t, d("10000"), FutureValueLumpSum(d("10000"), r, 0), "zero periods")
		assertNear(t, d("11025"), FutureValueLumpSum(d("10000"), d("0.05"), 2), "two years at 5%")
	})

	t.Run("ordinary annuity", func(t *testing.T) {
		assertNear(t, d("2050"), FutureValueAnnuity(d("1000"), d("0.05"), 2), "two payments at 5%")
		assert.True(t, FutureValueAnnuity(d("200"), decimal.Zero, 240).Equal(d("48000")), "zero rate is c*n")
		assert.True(t, FutureValueAnnuity(d("200"), r, 0).IsZero())
	})

	t.Run("annuity due credits one extra period", func(t *testing.T) {
		ordinary := FutureValueAnnuity(d("1000"), d("0.05"), 2)
		due := FutureValueAnnuityDue(d("1000"), d("0.05"), 2)
		assertNear(t, d("2152.50"), due, "two payments at 5% in advance")
		assert.True(t, due.GreaterThan(ordinary))
	})

	t.Run("amortized payment", func(t *testing.T) {
		assertNear(t, d("536.82"), AmortizedPayment(d("100000"), d("0.05").Div(decimal.NewFromInt(12)), 360), "100k 30y at 5%")
		assert.True(t, AmortizedPayment(d("12000"), decimal.Zero, 12).Equal(d("1000")))
	})

	t.Run("present value inverts future value", func(t *testing.T) {
		fv := FutureValueLumpSum(d("5000"), r, 120)
		assertNear(t, d("5000"), PresentValue(fv, r, 120), "round trip")
		assert.True(t, PresentValue(d("123.456"), decimal.Zero, 10).Equal(d("123.456")))
	})

	t.Run("present value of payments matches the amortized principal", func(t *testing.T) {
		monthly := d("0.05").Div(decimal.NewFromInt(12))
		payment := AmortizedPayment(d("100000"), monthly, 360)
		assertNear(t, d("100000"), PresentValueAnnuity(payment, monthly, 360), "PV of the level payment")
		assert.True(t, PresentValueAnnuity(d("100"), decimal.Zero, 12).Equal(d("1200")))
	})
}
