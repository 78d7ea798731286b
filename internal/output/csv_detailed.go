package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// CSVScheduleExporter writes the yearly amortization rows of every loan and mortgage.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "schedule-csv" }

func (c CSVScheduleExporter) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "Name", "Year", "StartBalance", "PaymentAmount", "TotalPaid", "PrincipalPaid", "InterestPaid", "EndBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range BuildSections(results) {
		for _, row := range s.Schedule {
			record := []string{
				s.ID,
				s.Title,
				strconv.Itoa(row.Period),
				row.StartBalance.StringFixed(2),
				row.PaymentAmount.StringFixed(2),
				row.TotalPaidThisPeriod.StringFixed(2),
				row.PrincipalPaid.StringFixed(2),
				row.InterestPaid.StringFixed(2),
				row.EndBalance.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
