package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(1234.567), "$1,235"},
		{decimal.NewFromInt(15000), "$15,000"},
		{decimal.NewFromFloat(-1234.5), "-$1,235"},
		{decimal.NewFromFloat(0.4), "$0"},
		{decimal.NewFromFloat(1015810.37), "$1,015,810"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatMetric(t *testing.T) {
	cases := []struct {
		m    Metric
		want string
		raw  string
	}{
		{money("a", "A", decimal.NewFromFloat(300.5692)), "$301", "300.57"},
		{percent("b", "B", decimal.NewFromFloat(67.7207)), "67.72%", "67.72"},
		{count("c", "C", 360), "360", "360"},
		{text("d", "D", "On track"), "On track", "On track"},
	}
	for _, c := range cases {
		if got := FormatMetric(c.m, nil); got != c.want {
			t.Errorf("FormatMetric(%s) = %q, want %q", c.m.Key, got, c.want)
		}
		if got := RawMetric(c.m); got != c.raw {
			t.Errorf("RawMetric(%s) = %q, want %q", c.m.Key, got, c.raw)
		}
	}
}

func TestFormatMetricMoneyFallback(t *testing.T) {
	m := money("future_value", "Future value", decimal.NewFromFloat(113062.27))

	if got, want := FormatMetric(m, nil), FormatCurrency(m.Amount); got != want {
		t.Errorf("FormatMetric without formatter = %q, want %q", got, want)
	}

	eur, err := NewCurrencyFormatter("EUR", "en-US")
	if err != nil {
		t.Fatalf("NewCurrencyFormatter: %v", err)
	}
	if got := FormatMetric(m, eur); got != "€113,062" {
		t.Errorf("FormatMetric with EUR = %q, want %q", got, "€113,062")
	}
}
