package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFormatter(t *testing.T) {
	f, err := NewCurrencyFormatter("USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "USD", f.Code())
	assert.Equal(t, "$113,062", f.Format(decimal.NewFromFloat(113062.27)))
	assert.Equal(t, "$0", f.Format(decimal.Zero))
	assert.Equal(t, "1,500,000", f.Number(1500000))
}

func TestCurrencyFormatterWithCurrency(t *testing.T) {
	f, err := NewCurrencyFormatter("USD", "en-US")
	require.NoError(t, err)

	same, err := f.WithCurrency("")
	require.NoError(t, err)
	assert.Same(t, f, same)

	eur, err := f.WithCurrency("EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", eur.Code())
	assert.Equal(t, "€2,500", eur.Format(decimal.NewFromInt(2500)))

	_, err = f.WithCurrency("DOLLARS")
	assert.Error(t, err)
}

func TestNewCurrencyFormatterErrors(t *testing.T) {
	_, err := NewCurrencyFormatter("DOLLARS", "en-US")
	assert.ErrorContains(t, err, "invalid currency")

	_, err = NewCurrencyFormatter("USD", "!!")
	assert.ErrorContains(t, err, "invalid locale")
}
