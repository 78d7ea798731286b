package output

import (
	"bytes"
	"encoding/csv"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// CSVSummarizer writes one row per result figure, in request order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "Name", "Kind", "Metric", "Value", "Currency", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range BuildSections(results) {
		if s.Failed() {
			if err := w.Write([]string{s.ID, s.Title, string(s.Kind), "", "", "", s.Error}); err != nil {
				return nil, err
			}
			continue
		}
		for _, m := range s.Metrics {
			cur := ""
			if m.Kind == MetricMoney {
				cur = s.Currency
			}
			if err := w.Write([]string{s.ID, s.Title, string(s.Kind), m.Key, RawMetric(m), cur, ""}); err != nil {
				return nil, err
			}
		}
		for _, line := range s.Budget {
			row := []string{s.ID, s.Title, string(s.Kind), "category:" + line.Category, line.Amount.StringFixed(2), s.Currency, ""}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
